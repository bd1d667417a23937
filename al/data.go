// SPDX-License-Identifier: EPL-2.0

package al

import (
	"io"
	"unsafe"

	"github.com/unknownbruhhaha/linear-model-allen/driver"
)

// Extension names gating optional formats and features.
const (
	ExtFloat32    = "AL_EXT_float32"
	ExtDouble     = "AL_double"
	ExtLoopPoints = "AL_SOFT_loop_points"
)

// BufferData is a borrowed view over caller-owned samples for
// [Buffer.Data]. It carries no allocation and is valid only for the
// duration of the upload call; the buffer never retains it.
//
// The four implementations are SamplesI8, SamplesI16, SamplesF32 and
// SamplesF64.
type BufferData interface {
	// bytes returns the raw byte view of the samples. The view aliases the
	// caller's slice and must not outlive the native call.
	bytes() []byte
}

type (
	// SamplesI8 is 8-bit signed integer PCM.
	SamplesI8 []int8
	// SamplesI16 is 16-bit signed integer PCM.
	SamplesI16 []int16
	// SamplesF32 is 32-bit float PCM; uploading it requires ExtFloat32.
	SamplesF32 []float32
	// SamplesF64 is 64-bit float PCM; uploading it requires ExtDouble.
	SamplesF64 []float64
)

func rawBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

func (s SamplesI8) bytes() []byte  { return rawBytes(s) }
func (s SamplesI16) bytes() []byte { return rawBytes(s) }
func (s SamplesF32) bytes() []byte { return rawBytes(s) }
func (s SamplesF64) bytes() []byte { return rawBytes(s) }

// resolveFormat maps data encoding and channel layout to the native format
// code, checking the extension gate for the optional encodings. It must run
// with ctx current so a failed gate reports against the right context.
func resolveFormat(ctx *Context, data BufferData, channels Channels) (driver.Format, error) {
	switch data.(type) {
	case SamplesI8:
		if channels == Mono {
			return driver.FormatMono8, nil
		}
		// TODO: confirm whether 8-bit stereo should resolve to the 8-bit
		// stereo code; see DESIGN.md before changing.
		return driver.FormatStereo16, nil
	case SamplesI16:
		if channels == Mono {
			return driver.FormatMono16, nil
		}
		return driver.FormatStereo16, nil
	case SamplesF32:
		if err := ctx.requireExtension(ExtFloat32); err != nil {
			return 0, err
		}
		if channels == Mono {
			return driver.FormatMonoFloat32, nil
		}
		return driver.FormatStereoFloat32, nil
	case SamplesF64:
		if err := ctx.requireExtension(ExtDouble); err != nil {
			return 0, err
		}
		if channels == Mono {
			return driver.FormatMonoDouble, nil
		}
		return driver.FormatStereoDouble, nil
	}
	return 0, ErrUnsupportedOperation
}

// Clip is a decoded block of PCM samples ready to be uploaded into a
// buffer. Unlike BufferData alone, a Clip owns its sample slice.
type Clip struct {
	Data       BufferData
	Channels   Channels
	SampleRate int32
}

// Decoder constructs a Clip from an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (*Clip, error)
}
