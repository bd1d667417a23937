// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"sync"

	"github.com/unknownbruhhaha/linear-model-allen/driver"
)

// AllExtensions is the capability set a default software subsystem reports.
var AllExtensions = []string{
	"AL_EXT_float32",
	"AL_double",
	"AL_SOFT_loop_points",
}

type bufferState struct {
	data       []byte
	format     driver.Format
	frequency  int32
	bits       int32
	channels   int32
	loopPoints [2]int32
}

// Driver is a pure-Go, in-memory implementation of driver.Driver.
//
// It keeps the same observable semantics as a native subsystem: handles are
// opaque integers valid only inside the driver's own tables, and the error
// register holds the first error raised since it was last drained.
type Driver struct {
	mu sync.Mutex

	exts    map[string]bool
	lastErr driver.ErrorCode

	nextDevice  uintptr
	nextContext uintptr
	nextBuffer  uint32

	devices  map[uintptr]bool
	contexts map[uintptr]uintptr // context -> device
	current  uintptr
	buffers  map[uint32]*bufferState
}

// New returns a software subsystem reporting every extension in
// AllExtensions.
func New() *Driver {
	return NewWithExtensions(AllExtensions...)
}

// NewWithExtensions returns a software subsystem reporting exactly the given
// extensions.
func NewWithExtensions(exts ...string) *Driver {
	d := &Driver{
		exts:     make(map[string]bool, len(exts)),
		devices:  make(map[uintptr]bool),
		contexts: make(map[uintptr]uintptr),
		buffers:  make(map[uint32]*bufferState),
	}
	for _, e := range exts {
		d.exts[e] = true
	}
	return d
}

// setError records code unless an earlier error is still undrained.
func (d *Driver) setError(code driver.ErrorCode) {
	if d.lastErr == driver.NoError {
		d.lastErr = code
	}
}

func (d *Driver) OpenDevice(name string) (uintptr, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextDevice++
	h := d.nextDevice
	d.devices[h] = true
	return h, nil
}

func (d *Driver) CloseDevice(dev uintptr) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.devices, dev)
	return nil
}

func (d *Driver) CreateContext(dev uintptr) (uintptr, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextContext++
	h := d.nextContext
	d.contexts[h] = dev
	return h, nil
}

func (d *Driver) DestroyContext(ctx uintptr) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.contexts, ctx)
	if d.current == ctx {
		d.current = 0
	}
}

func (d *Driver) MakeContextCurrent(ctx uintptr) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if ctx != 0 {
		if _, ok := d.contexts[ctx]; !ok {
			return false
		}
	}
	d.current = ctx
	return true
}

func (d *Driver) IsExtensionPresent(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.exts[name]
}

func (d *Driver) GetError() driver.ErrorCode {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.lastErr
	d.lastErr = driver.NoError
	return err
}

func (d *Driver) GenBuffers(n int32) []uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n < 0 {
		d.setError(driver.InvalidValue)
		return nil
	}
	names := make([]uint32, n)
	for i := range names {
		d.nextBuffer++
		d.buffers[d.nextBuffer] = &bufferState{}
		names[i] = d.nextBuffer
	}
	return names
}

func (d *Driver) DeleteBuffers(names []uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, name := range names {
		if _, ok := d.buffers[name]; !ok {
			d.setError(driver.InvalidName)
			return
		}
	}
	for _, name := range names {
		delete(d.buffers, name)
	}
}

// formatInfo returns bit width and channel count for a format, with ok=false
// for unknown codes.
func formatInfo(format driver.Format) (bits, channels int32, ok bool) {
	switch format {
	case driver.FormatMono8:
		return 8, 1, true
	case driver.FormatStereo8:
		return 8, 2, true
	case driver.FormatMono16:
		return 16, 1, true
	case driver.FormatStereo16:
		return 16, 2, true
	case driver.FormatMonoFloat32:
		return 32, 1, true
	case driver.FormatStereoFloat32:
		return 32, 2, true
	case driver.FormatMonoDouble:
		return 64, 1, true
	case driver.FormatStereoDouble:
		return 64, 2, true
	}
	return 0, 0, false
}

func (d *Driver) BufferData(name uint32, format driver.Format, data []byte, freq int32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf, ok := d.buffers[name]
	if !ok {
		d.setError(driver.InvalidName)
		return
	}
	bits, channels, ok := formatInfo(format)
	if !ok {
		d.setError(driver.InvalidEnum)
		return
	}
	if freq <= 0 {
		d.setError(driver.InvalidValue)
		return
	}
	frame := bits / 8 * channels
	if int32(len(data))%frame != 0 {
		d.setError(driver.InvalidValue)
		return
	}

	// Copy: the incoming slice is borrowed and must not be retained.
	buf.data = append(buf.data[:0], data...)
	buf.format = format
	buf.frequency = freq
	buf.bits = bits
	buf.channels = channels
	buf.loopPoints = [2]int32{0, int32(len(data)) / frame}
}

func (d *Driver) lockedBuffer(name uint32) *bufferState {
	buf, ok := d.buffers[name]
	if !ok {
		d.setError(driver.InvalidName)
		return nil
	}
	return buf
}

func (d *Driver) Bufferf(name uint32, param driver.Param, value float32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.lockedBuffer(name) == nil {
		return
	}
	// No writable float buffer parameters exist in the core set.
	d.setError(driver.InvalidEnum)
}

func (d *Driver) GetBufferf(name uint32, param driver.Param) float32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.lockedBuffer(name) == nil {
		return 0
	}
	d.setError(driver.InvalidEnum)
	return 0
}

func (d *Driver) Buffer3f(name uint32, param driver.Param, value [3]float32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.lockedBuffer(name) == nil {
		return
	}
	d.setError(driver.InvalidEnum)
}

func (d *Driver) GetBuffer3f(name uint32, param driver.Param) [3]float32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.lockedBuffer(name) == nil {
		return [3]float32{}
	}
	d.setError(driver.InvalidEnum)
	return [3]float32{}
}

func (d *Driver) Bufferi(name uint32, param driver.Param, value int32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.lockedBuffer(name) == nil {
		return
	}
	// Frequency, size, bits and channels are read-only.
	d.setError(driver.InvalidEnum)
}

func (d *Driver) GetBufferi(name uint32, param driver.Param) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf := d.lockedBuffer(name)
	if buf == nil {
		return 0
	}
	switch param {
	case driver.Frequency:
		return buf.frequency
	case driver.Bits:
		return buf.bits
	case driver.Channels:
		return buf.channels
	case driver.Size:
		return int32(len(buf.data))
	}
	d.setError(driver.InvalidEnum)
	return 0
}

func (d *Driver) Bufferiv(name uint32, param driver.Param, values []int32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf := d.lockedBuffer(name)
	if buf == nil {
		return
	}
	switch param {
	case driver.LoopPoints:
		if !d.exts["AL_SOFT_loop_points"] {
			d.setError(driver.InvalidEnum)
			return
		}
		if len(values) != 2 || values[0] < 0 || values[1] < values[0] {
			d.setError(driver.InvalidValue)
			return
		}
		buf.loopPoints = [2]int32{values[0], values[1]}
	default:
		d.setError(driver.InvalidEnum)
	}
}

func (d *Driver) GetBufferiv(name uint32, param driver.Param, dst []int32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf := d.lockedBuffer(name)
	if buf == nil {
		return
	}
	switch param {
	case driver.LoopPoints:
		if !d.exts["AL_SOFT_loop_points"] {
			d.setError(driver.InvalidEnum)
			return
		}
		if len(dst) != 2 {
			d.setError(driver.InvalidValue)
			return
		}
		dst[0] = buf.loopPoints[0]
		dst[1] = buf.loopPoints[1]
	default:
		d.setError(driver.InvalidEnum)
	}
}
