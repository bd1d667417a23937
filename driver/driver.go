// SPDX-License-Identifier: EPL-2.0

package driver

// Format identifies a native sample format: width, representation and
// channel count in a single constant, consumed by BufferData.
type Format int32

// Buffer data formats. The float and double formats are only valid when the
// corresponding extension is present on the context.
const (
	FormatMono8    Format = 0x1100
	FormatMono16   Format = 0x1101
	FormatStereo8  Format = 0x1102
	FormatStereo16 Format = 0x1103

	// AL_EXT_float32
	FormatMonoFloat32   Format = 0x10010
	FormatStereoFloat32 Format = 0x10011

	// AL_double
	FormatMonoDouble   Format = 0x10012
	FormatStereoDouble Format = 0x10013
)

// Param identifies a native buffer parameter for the typed get/set calls.
type Param int32

const (
	Frequency Param = 0x2001
	Bits      Param = 0x2002
	Channels  Param = 0x2003
	Size      Param = 0x2004

	// AL_SOFT_loop_points; a 2-element integer vector [start, end) in samples.
	LoopPoints Param = 0x2015
)

// ErrorCode is the value drained from the native error register.
type ErrorCode int32

const (
	NoError          ErrorCode = 0
	InvalidName      ErrorCode = 0xA001
	InvalidEnum      ErrorCode = 0xA002
	InvalidValue     ErrorCode = 0xA003
	InvalidOperation ErrorCode = 0xA004
	OutOfMemory      ErrorCode = 0xA005
)

// Driver is the function table of the native audio subsystem.
//
// Calls report failure only through the error register: the caller must
// drain GetError after each call, while still holding whatever serialization
// makes the relevant context current. The data slice passed to BufferData is
// borrowed for the duration of the call and must not be retained.
type Driver interface {
	OpenDevice(name string) (uintptr, error)
	CloseDevice(dev uintptr) error
	CreateContext(dev uintptr) (uintptr, error)
	DestroyContext(ctx uintptr)
	MakeContextCurrent(ctx uintptr) bool
	IsExtensionPresent(name string) bool

	// GetError drains and returns the error register of the current context.
	GetError() ErrorCode

	GenBuffers(n int32) []uint32
	DeleteBuffers(names []uint32)
	BufferData(name uint32, format Format, data []byte, freq int32)

	Bufferf(name uint32, param Param, value float32)
	GetBufferf(name uint32, param Param) float32
	Buffer3f(name uint32, param Param, value [3]float32)
	GetBuffer3f(name uint32, param Param) [3]float32
	Bufferi(name uint32, param Param, value int32)
	GetBufferi(name uint32, param Param) int32
	Bufferiv(name uint32, param Param, values []int32)
	GetBufferiv(name uint32, param Param, dst []int32)
}
