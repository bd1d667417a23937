// SPDX-License-Identifier: EPL-2.0

// Package altest provides a recording driver.Driver for tests.
package altest

import (
	"sync"

	"github.com/unknownbruhhaha/linear-model-allen/driver"
)

// DataCall records one BufferData invocation.
type DataCall struct {
	Name   uint32
	Format driver.Format
	Data   []byte
	Freq   int32
}

// Recorder is a test double for driver.Driver. It records every call,
// returns canned values for the typed getters, and can inject failures.
//
// It also instruments the current-context protocol: a native buffer call
// leaves the error register "pending" until GetError drains it, and a
// context switch while a check is pending is recorded as a violation —
// exactly the interleaving the device lock must prevent.
type Recorder struct {
	mu sync.Mutex

	exts map[string]bool

	// Canned getter results.
	FloatVal  float32
	Float3Val [3]float32
	IntVal    int32
	IntVec    []int32

	// Err is returned by the next GetError, then cleared.
	Err driver.ErrorCode
	// FailGen makes GenBuffers allocate nothing and set OutOfMemory.
	FailGen bool

	// Recorded calls.
	Calls       []string
	GenCount    int
	DeleteCalls [][]uint32
	DataCalls   []DataCall
	IntWrites   map[driver.Param][]int32
	VecWrites   map[driver.Param][][]int32

	// Violations counts context switches made while an error check was
	// pending.
	Violations int

	nextBuffer   uint32
	nextContext  uintptr
	pendingCheck bool
}

// NewRecorder returns a recorder reporting the given extensions.
func NewRecorder(exts ...string) *Recorder {
	r := &Recorder{
		exts:      make(map[string]bool, len(exts)),
		IntWrites: make(map[driver.Param][]int32),
		VecWrites: make(map[driver.Param][][]int32),
	}
	for _, e := range exts {
		r.exts[e] = true
	}
	return r
}

// CallCount returns how many times the named call was recorded.
func (r *Recorder) CallCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, c := range r.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// record notes a native buffer call: its result is not valid until the
// error register is drained.
func (r *Recorder) record(name string) {
	r.Calls = append(r.Calls, name)
	r.pendingCheck = true
}

func (r *Recorder) OpenDevice(name string) (uintptr, error) { return 1, nil }
func (r *Recorder) CloseDevice(dev uintptr) error           { return nil }

func (r *Recorder) CreateContext(dev uintptr) (uintptr, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextContext++
	return r.nextContext, nil
}

func (r *Recorder) DestroyContext(ctx uintptr) {}

func (r *Recorder) MakeContextCurrent(ctx uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pendingCheck {
		r.Violations++
	}
	r.Calls = append(r.Calls, "MakeContextCurrent")
	return true
}

func (r *Recorder) IsExtensionPresent(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.exts[name]
}

func (r *Recorder) GetError() driver.ErrorCode {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls = append(r.Calls, "GetError")
	r.pendingCheck = false
	err := r.Err
	r.Err = driver.NoError
	return err
}

func (r *Recorder) GenBuffers(n int32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("GenBuffers")
	r.GenCount++
	if r.FailGen {
		r.Err = driver.OutOfMemory
		return make([]uint32, n)
	}
	names := make([]uint32, n)
	for i := range names {
		r.nextBuffer++
		names[i] = r.nextBuffer
	}
	return names
}

func (r *Recorder) DeleteBuffers(names []uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("DeleteBuffers")
	r.DeleteCalls = append(r.DeleteCalls, append([]uint32(nil), names...))
}

func (r *Recorder) BufferData(name uint32, format driver.Format, data []byte, freq int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("BufferData")
	r.DataCalls = append(r.DataCalls, DataCall{
		Name:   name,
		Format: format,
		Data:   append([]byte(nil), data...),
		Freq:   freq,
	})
}

func (r *Recorder) Bufferf(name uint32, param driver.Param, value float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("Bufferf")
	r.FloatVal = value
}

func (r *Recorder) GetBufferf(name uint32, param driver.Param) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("GetBufferf")
	return r.FloatVal
}

func (r *Recorder) Buffer3f(name uint32, param driver.Param, value [3]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("Buffer3f")
	r.Float3Val = value
}

func (r *Recorder) GetBuffer3f(name uint32, param driver.Param) [3]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("GetBuffer3f")
	return r.Float3Val
}

func (r *Recorder) Bufferi(name uint32, param driver.Param, value int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("Bufferi")
	r.IntWrites[param] = append(r.IntWrites[param], value)
}

func (r *Recorder) GetBufferi(name uint32, param driver.Param) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("GetBufferi")
	return r.IntVal
}

func (r *Recorder) Bufferiv(name uint32, param driver.Param, values []int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("Bufferiv")
	r.VecWrites[param] = append(r.VecWrites[param], append([]int32(nil), values...))
}

func (r *Recorder) GetBufferiv(name uint32, param driver.Param, dst []int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record("GetBufferiv")
	copy(dst, r.IntVec)
}
