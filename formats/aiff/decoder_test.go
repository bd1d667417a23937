// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/unknownbruhhaha/linear-model-allen/al"
)

// mockAiffReader simulates goaiff.Decoder for testing readAll.
type mockAiffReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
	fail    bool
}

func (m *mockAiffReader) Format() *goaudio.Format { return m.format }

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.fail {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	if m.offset >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}
	mock := &mockAiffReader{format: format, samples: []int{0, 1000, -1000, 0}}

	got, err := readAll(mock, format)
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}
	want := []int16{0, 1000, -1000, 0}
	if len(got) != len(want) {
		t.Fatalf("readAll() returned %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestReadAll_Error(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}
	mock := &mockAiffReader{format: format, samples: []int{1}, fail: true}

	if _, err := readAll(mock, format); err == nil {
		t.Error("readAll() succeeded on a failing reader")
	}
}

func TestLayoutFor(t *testing.T) {
	t.Parallel()

	if got, err := layoutFor(1); err != nil || got != al.Mono {
		t.Errorf("layoutFor(1) = %v, %v, want mono, nil", got, err)
	}
	if got, err := layoutFor(2); err != nil || got != al.Stereo {
		t.Errorf("layoutFor(2) = %v, %v, want stereo, nil", got, err)
	}
	if _, err := layoutFor(6); !errors.Is(err, ErrUnsupportedChannelCount) {
		t.Errorf("layoutFor(6) error = %v, want ErrUnsupportedChannelCount", err)
	}
}

func TestDecoder_NotAiff(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not a FORM chunk, just bytes long enough to parse")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_Empty(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() of empty input succeeded")
	}
}
