// SPDX-License-Identifier: EPL-2.0

package al

import (
	"errors"
	"testing"

	"github.com/unknownbruhhaha/linear-model-allen/driver"
	"github.com/unknownbruhhaha/linear-model-allen/internal/altest"
)

func TestFloatProps_GetSet(t *testing.T) {
	t.Parallel()

	rec := altest.NewRecorder()
	buf := newTestBuffer(t, rec)
	props := buf.FloatProps()

	if err := props.Set(driver.Param(0x3000), 1.5); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := props.Get(driver.Param(0x3000))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 1.5 {
		t.Errorf("Get() = %v, want 1.5", got)
	}
}

func TestFloat3Props_GetSet(t *testing.T) {
	t.Parallel()

	rec := altest.NewRecorder()
	buf := newTestBuffer(t, rec)
	props := buf.Float3Props()

	want := [3]float32{1, -2, 3}
	if err := props.Set(driver.Param(0x3001), want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := props.Get(driver.Param(0x3001))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != want {
		t.Errorf("Get() = %v, want %v", got, want)
	}
}

func TestIntProps_Get(t *testing.T) {
	t.Parallel()

	rec := altest.NewRecorder()
	rec.IntVal = 22050
	buf := newTestBuffer(t, rec)

	got, err := buf.IntProps().Get(driver.Frequency)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 22050 {
		t.Errorf("Get() = %d, want 22050", got)
	}
}

func TestChannelProps_GetDecodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int32
		want  Channels
	}{
		{1, Mono},
		{2, Stereo},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want.String(), func(t *testing.T) {
			t.Parallel()

			rec := altest.NewRecorder()
			rec.IntVal = tt.count
			buf := newTestBuffer(t, rec)

			got, err := buf.ChannelProps().Get(driver.Channels)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Get() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProps_ErrorPropagation(t *testing.T) {
	t.Parallel()

	rec := altest.NewRecorder()
	buf := newTestBuffer(t, rec)

	rec.Err = driver.InvalidValue
	if _, err := buf.IntProps().Get(driver.Frequency); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Get() error = %v, want ErrInvalidValue", err)
	}

	rec.Err = driver.InvalidEnum
	if err := buf.FloatProps().Set(driver.Param(0x3000), 1); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("Set() error = %v, want ErrInvalidEnum", err)
	}
}
