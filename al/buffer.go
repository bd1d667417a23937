// SPDX-License-Identifier: EPL-2.0

package al

import (
	"log"

	"github.com/unknownbruhhaha/linear-model-allen/driver"
)

// Buffer owns one native audio buffer handle, bound to the context that
// created it.
//
// Exactly one Buffer exists per handle. Always use it through the pointer
// returned by [Context.NewBuffer]; copying the value would break the
// release-exactly-once guarantee.
type Buffer struct {
	handle  uint32
	context *Context
}

func (b *Buffer) drv() driver.Driver { return b.context.dev.drv }

// Handle returns the raw native identifier, for binding the buffer to a
// playback source. The handle stays owned by the Buffer.
func (b *Buffer) Handle() uint32 { return b.handle }

// Data fills the buffer with the given samples, replacing any previous
// contents along with the buffer's format and frequency metadata.
//
// The payload is borrowed for the duration of the call. Float encodings are
// gated: SamplesF32 requires ExtFloat32 and SamplesF64 requires ExtDouble;
// if the gate fails no native call is made.
func (b *Buffer) Data(data BufferData, channels Channels, sampleRate int32) error {
	unlock := b.context.makeCurrent()
	defer unlock()

	format, err := resolveFormat(b.context, data, channels)
	if err != nil {
		return err
	}

	b.drv().BufferData(b.handle, format, data.bytes(), sampleRate)
	return b.context.checkError()
}

// Frequency returns the sample rate of the buffer's contents in Hz.
func (b *Buffer) Frequency() (int32, error) {
	return b.IntProps().Get(driver.Frequency)
}

// Size returns the size of the buffer's contents in bytes.
func (b *Buffer) Size() (int32, error) {
	return b.IntProps().Get(driver.Size)
}

// Bits returns the bit depth of the buffer's contents.
func (b *Buffer) Bits() (int32, error) {
	return b.IntProps().Get(driver.Bits)
}

// Channels returns the channel layout of the buffer's contents.
func (b *Buffer) Channels() (Channels, error) {
	return b.ChannelProps().Get(driver.Channels)
}

// LoopPoints returns the buffer's [start, end) loop points in samples.
// Requires ExtLoopPoints; without it the call fails before touching the
// native layer.
func (b *Buffer) LoopPoints() ([2]int32, error) {
	if err := b.context.requireExtension(ExtLoopPoints); err != nil {
		return [2]int32{}, err
	}

	unlock := b.context.makeCurrent()
	defer unlock()

	var points [2]int32
	b.drv().GetBufferiv(b.handle, driver.LoopPoints, points[:])
	if err := b.context.checkError(); err != nil {
		return [2]int32{}, err
	}
	return points, nil
}

// SetLoopPoints sets the buffer's [start, end) loop points in samples.
// Requires ExtLoopPoints.
func (b *Buffer) SetLoopPoints(points [2]int32) error {
	if err := b.context.requireExtension(ExtLoopPoints); err != nil {
		return err
	}

	unlock := b.context.makeCurrent()
	defer unlock()

	b.drv().Bufferiv(b.handle, driver.LoopPoints, points[:])
	return b.context.checkError()
}

// Destroy releases the native handle. Release is best-effort: a native
// failure is logged, not returned, since nothing useful can be done with it
// at this point. Destroy is safe to call more than once; only the first call
// releases the handle.
func (b *Buffer) Destroy() {
	if b.handle == 0 {
		return
	}
	handle := b.handle
	b.handle = 0

	unlock := b.context.makeCurrent()
	b.drv().DeleteBuffers([]uint32{handle})
	err := b.context.checkError()
	unlock()

	if err != nil {
		log.Printf("al: releasing buffer %d failed: %v", handle, err)
	}
}
