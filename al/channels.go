// SPDX-License-Identifier: EPL-2.0

package al

import "fmt"

// Channels is a channel layout. Values match the native channel-count
// encoding, so Mono reads back from the channel-count parameter as 1 and
// Stereo as 2.
type Channels int32

const (
	// Mono is one audio channel.
	Mono Channels = 1
	// Stereo is two audio channels, one left and one right.
	Stereo Channels = 2
)

// Count returns the number of channels in the layout.
func (c Channels) Count() int32 { return int32(c) }

func (c Channels) String() string {
	switch c {
	case Mono:
		return "mono"
	case Stereo:
		return "stereo"
	}
	return fmt.Sprintf("Channels(%d)", int32(c))
}

// channelsFromCount decodes a native channel count. Only the driver ever
// produces this value, so anything outside the enumerated set is an
// invariant violation, not a user error.
func channelsFromCount(v int32) (Channels, error) {
	switch Channels(v) {
	case Mono, Stereo:
		return Channels(v), nil
	}
	return 0, fmt.Errorf("%w: channel count %d", ErrInvariantViolation, v)
}
