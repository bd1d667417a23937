// SPDX-License-Identifier: EPL-2.0

package al

import (
	"errors"
	"testing"
)

func TestChannels_Count(t *testing.T) {
	t.Parallel()

	if Mono.Count() != 1 {
		t.Errorf("Mono.Count() = %d, want 1", Mono.Count())
	}
	if Stereo.Count() != 2 {
		t.Errorf("Stereo.Count() = %d, want 2", Stereo.Count())
	}
}

func TestChannelsFromCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count   int32
		want    Channels
		wantErr bool
	}{
		{1, Mono, false},
		{2, Stereo, false},
		{0, 0, true},
		{3, 0, true},
		{-1, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		got, err := channelsFromCount(tt.count)
		if tt.wantErr {
			if !errors.Is(err, ErrInvariantViolation) {
				t.Errorf("channelsFromCount(%d) error = %v, want ErrInvariantViolation", tt.count, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("channelsFromCount(%d) = %v, %v, want %v, nil", tt.count, got, err, tt.want)
		}
	}
}

func TestChannels_String(t *testing.T) {
	t.Parallel()

	if Mono.String() != "mono" || Stereo.String() != "stereo" {
		t.Errorf("String() = %q, %q, want mono, stereo", Mono, Stereo)
	}
}
