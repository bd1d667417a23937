// SPDX-License-Identifier: EPL-2.0

package al

import (
	"errors"
	"testing"

	"github.com/unknownbruhhaha/linear-model-allen/driver"
)

func TestTranslateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code driver.ErrorCode
		want error
	}{
		{"no error", driver.NoError, nil},
		{"invalid name", driver.InvalidName, ErrInvalidName},
		{"invalid enum", driver.InvalidEnum, ErrInvalidEnum},
		{"invalid value", driver.InvalidValue, ErrInvalidValue},
		{"invalid operation", driver.InvalidOperation, ErrInvalidOperation},
		{"out of memory", driver.OutOfMemory, ErrOutOfMemory},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := translateError(tt.code); !errors.Is(got, tt.want) {
				t.Errorf("translateError(0x%X) = %v, want %v", int32(tt.code), got, tt.want)
			}
		})
	}
}

func TestTranslateError_UnknownCode(t *testing.T) {
	t.Parallel()

	err := translateError(driver.ErrorCode(0xBEEF))
	if err == nil {
		t.Fatal("translateError() = nil for unknown code")
	}
}

func TestSentinels_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrAllocation,
		ErrMissingExtension,
		ErrUnsupportedOperation,
		ErrInvariantViolation,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches %v", a, b)
			}
		}
	}
}
