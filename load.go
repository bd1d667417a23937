// SPDX-License-Identifier: EPL-2.0

package allen

import (
	"errors"
	"fmt"
	"io"

	"github.com/unknownbruhhaha/linear-model-allen/al"
	"github.com/unknownbruhhaha/linear-model-allen/utils"
)

var ErrInvalidTargetRate = errors.New("target sample rate must be positive")

// LoadBuffer decodes one clip from r using dec and uploads it into a fresh
// buffer on ctx. On upload failure the buffer is destroyed before the error
// is returned, so no handle leaks.
func LoadBuffer(ctx *al.Context, dec al.Decoder, r io.Reader) (*al.Buffer, error) {
	clip, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding clip: %w", err)
	}

	buf, err := ctx.NewBuffer()
	if err != nil {
		return nil, err
	}
	if err := buf.Data(clip.Data, clip.Channels, clip.SampleRate); err != nil {
		buf.Destroy()
		return nil, fmt.Errorf("uploading clip: %w", err)
	}
	return buf, nil
}

// Resample converts a decoded clip to targetRate using cubic interpolation,
// preserving the clip's encoding and channel layout. A clip already at
// targetRate is returned unchanged.
func Resample(clip *al.Clip, targetRate int32) (*al.Clip, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidTargetRate
	}
	if clip.SampleRate == targetRate {
		return clip, nil
	}

	in := samplesToFloat(clip.Data)
	channels := int(clip.Channels.Count())
	frames := len(in) / channels
	if frames == 0 {
		return &al.Clip{Data: clip.Data, Channels: clip.Channels, SampleRate: targetRate}, nil
	}

	ratio := float64(clip.SampleRate) / float64(targetRate)
	outFrames := int(float64(frames) / ratio)
	out := make([]float32, outFrames*channels)

	for ch := 0; ch < channels; ch++ {
		for i := 0; i < outFrames; i++ {
			pos := float64(i) * ratio
			idx := int(pos)
			frac := float32(pos - float64(idx))

			y0 := frameSample(in, channels, ch, idx-1, frames)
			y1 := frameSample(in, channels, ch, idx, frames)
			y2 := frameSample(in, channels, ch, idx+1, frames)
			y3 := frameSample(in, channels, ch, idx+2, frames)

			out[i*channels+ch] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
		}
	}

	return &al.Clip{
		Data:       floatsToEncoding(out, clip.Data),
		Channels:   clip.Channels,
		SampleRate: targetRate,
	}, nil
}

// frameSample reads one channel of one frame, clamping the frame index to
// the clip's edges for the interpolation neighborhood.
func frameSample(s []float32, channels, ch, frame, frames int) float32 {
	if frame < 0 {
		frame = 0
	}
	if frame >= frames {
		frame = frames - 1
	}
	return s[frame*channels+ch]
}

func samplesToFloat(data al.BufferData) []float32 {
	switch d := data.(type) {
	case al.SamplesI8:
		out := make([]float32, len(d))
		for i, v := range d {
			out[i] = float32(v) / 128.0
		}
		return out
	case al.SamplesI16:
		out := make([]float32, len(d))
		for i, v := range d {
			out[i] = utils.Int16ToFloat32(v)
		}
		return out
	case al.SamplesF32:
		return append([]float32(nil), d...)
	case al.SamplesF64:
		out := make([]float32, len(d))
		for i, v := range d {
			out[i] = float32(v)
		}
		return out
	}
	return nil
}

// floatsToEncoding converts back to the dynamic encoding of like.
func floatsToEncoding(in []float32, like al.BufferData) al.BufferData {
	switch like.(type) {
	case al.SamplesI8:
		out := make(al.SamplesI8, len(in))
		for i, v := range in {
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			out[i] = int8(v * 127.0)
		}
		return out
	case al.SamplesI16:
		out := make(al.SamplesI16, len(in))
		for i, v := range in {
			out[i] = utils.Float32ToInt16(v)
		}
		return out
	case al.SamplesF64:
		out := make(al.SamplesF64, len(in))
		for i, v := range in {
			out[i] = float64(v)
		}
		return out
	}
	return al.SamplesF32(in)
}
