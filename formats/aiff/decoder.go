// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/unknownbruhhaha/linear-model-allen/al"
	"github.com/unknownbruhhaha/linear-model-allen/utils"
)

// aiffReader is an interface over goaiff.Decoder to allow testing.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode reads a PCM 16-bit AIFF stream and returns a clip ready for
// Buffer.Data.
func (Decoder) Decode(r io.Reader) (*al.Clip, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires an io.ReadSeeker, so buffer the stream.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}
	channels, err := layoutFor(format.NumChannels)
	if err != nil {
		return nil, err
	}

	samples, err := readAll(dec, format)
	if err != nil {
		return nil, err
	}

	return &al.Clip{
		Data:       al.SamplesI16(samples),
		Channels:   channels,
		SampleRate: int32(format.SampleRate),
	}, nil
}

// readAll drains the decoder into one int16 slice.
func readAll(dec aiffReader, format *goaudio.Format) ([]int16, error) {
	var all []int16
	buf := &goaudio.IntBuffer{Data: make([]int, 4096), Format: format}
	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			all = append(all, utils.IntsToInt16(buf.Data[:n])...)
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading aiff pcm: %w", err)
		}
		if err == io.EOF || n == 0 {
			return all, nil
		}
	}
}

func layoutFor(numChannels int) (al.Channels, error) {
	switch numChannels {
	case 1:
		return al.Mono, nil
	case 2:
		return al.Stereo, nil
	}
	return 0, fmt.Errorf("%w: %d channels", ErrUnsupportedChannelCount, numChannels)
}

// readSeeker implements io.ReadSeeker for in-memory data
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
