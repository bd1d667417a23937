// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/unknownbruhhaha/linear-model-allen/al"
	"github.com/unknownbruhhaha/linear-model-allen/utils"
)

type Decoder struct{}

// Decode reads a PCM 16-bit WAV stream and returns a clip ready for
// Buffer.Data.
func (Decoder) Decode(r io.Reader) (*al.Clip, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires an io.ReadSeeker, so buffer the stream.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav pcm: %w", err)
	}

	channels, err := layoutFor(pcm.Format.NumChannels)
	if err != nil {
		return nil, err
	}

	return &al.Clip{
		Data:       al.SamplesI16(utils.IntsToInt16(pcm.Data)),
		Channels:   channels,
		SampleRate: int32(pcm.Format.SampleRate),
	}, nil
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
