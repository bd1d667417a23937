// SPDX-License-Identifier: EPL-2.0

package allen

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/unknownbruhhaha/linear-model-allen/al"
	"github.com/unknownbruhhaha/linear-model-allen/driver/soft"
	"github.com/unknownbruhhaha/linear-model-allen/formats/wav"
)

func newSoftContext(t *testing.T) *al.Context {
	t.Helper()

	dev, err := al.OpenDevice(soft.New(), "")
	if err != nil {
		t.Fatalf("OpenDevice() error = %v", err)
	}
	ctx, err := dev.NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return ctx
}

func TestLoadBuffer(t *testing.T) {
	t.Parallel()

	var wavData bytes.Buffer
	if err := wav.WritePCM16(&wavData, 44100, 1, []int16{0, 1000, -1000, 0}); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	buf, err := LoadBuffer(newSoftContext(t), wav.Decoder{}, &wavData)
	if err != nil {
		t.Fatalf("LoadBuffer() error = %v", err)
	}
	defer buf.Destroy()

	if rate, err := buf.Frequency(); err != nil || rate != 44100 {
		t.Errorf("Frequency() = %d, %v, want 44100, nil", rate, err)
	}
	if ch, err := buf.Channels(); err != nil || ch != al.Mono {
		t.Errorf("Channels() = %v, %v, want mono, nil", ch, err)
	}
	if size, err := buf.Size(); err != nil || size != 8 {
		t.Errorf("Size() = %d, %v, want 8, nil", size, err)
	}
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (failingDecoder) Decode(r io.Reader) (*al.Clip, error) {
	return nil, errors.New("decode failed")
}

func TestLoadBuffer_DecodeError(t *testing.T) {
	t.Parallel()

	_, err := LoadBuffer(newSoftContext(t), failingDecoder{}, bytes.NewReader(nil))
	if err == nil {
		t.Error("LoadBuffer() succeeded with a failing decoder")
	}
}

// floatClipDecoder returns a float clip, which needs AL_EXT_float32 to upload.
type floatClipDecoder struct{}

func (floatClipDecoder) Decode(r io.Reader) (*al.Clip, error) {
	return &al.Clip{Data: al.SamplesF32{0, 0.5}, Channels: al.Mono, SampleRate: 44100}, nil
}

func TestLoadBuffer_UploadFailure(t *testing.T) {
	t.Parallel()

	dev, err := al.OpenDevice(soft.NewWithExtensions(), "") // no extensions
	if err != nil {
		t.Fatalf("OpenDevice() error = %v", err)
	}
	ctx, err := dev.NewContext()
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	_, err = LoadBuffer(ctx, floatClipDecoder{}, bytes.NewReader(nil))
	if !errors.Is(err, al.ErrMissingExtension) {
		t.Fatalf("LoadBuffer() error = %v, want ErrMissingExtension", err)
	}
}

func TestResample_Downsample(t *testing.T) {
	t.Parallel()

	// A constant signal must stay constant through interpolation.
	in := make(al.SamplesI16, 100)
	for i := range in {
		in[i] = 1000
	}
	clip := &al.Clip{Data: in, Channels: al.Mono, SampleRate: 44100}

	got, err := Resample(clip, 22050)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if got.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", got.SampleRate)
	}
	out, ok := got.Data.(al.SamplesI16)
	if !ok {
		t.Fatalf("Data is %T, want al.SamplesI16", got.Data)
	}
	if len(out) != 50 {
		t.Errorf("resampled to %d samples, want 50", len(out))
	}
	for i, v := range out {
		// One quantization step of slack for the float round trip.
		if v < 999 || v > 1001 {
			t.Fatalf("sample %d = %d, want ~1000", i, v)
		}
	}
}

func TestResample_PreservesEncodingAndLayout(t *testing.T) {
	t.Parallel()

	clip := &al.Clip{
		Data:       al.SamplesF32{0, 0, 0.5, 0.5, 1, 1, 0.5, 0.5},
		Channels:   al.Stereo,
		SampleRate: 48000,
	}

	got, err := Resample(clip, 24000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if _, ok := got.Data.(al.SamplesF32); !ok {
		t.Errorf("Data is %T, want al.SamplesF32", got.Data)
	}
	if got.Channels != al.Stereo {
		t.Errorf("Channels = %v, want stereo", got.Channels)
	}
}

func TestResample_SameRate(t *testing.T) {
	t.Parallel()

	clip := &al.Clip{Data: al.SamplesI16{1, 2}, Channels: al.Mono, SampleRate: 8000}
	got, err := Resample(clip, 8000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if got != clip {
		t.Error("Resample() at the same rate should return the clip unchanged")
	}
}

func TestResample_InvalidRate(t *testing.T) {
	t.Parallel()

	clip := &al.Clip{Data: al.SamplesI16{1}, Channels: al.Mono, SampleRate: 8000}
	if _, err := Resample(clip, 0); !errors.Is(err, ErrInvalidTargetRate) {
		t.Errorf("Resample(0) error = %v, want ErrInvalidTargetRate", err)
	}
}
