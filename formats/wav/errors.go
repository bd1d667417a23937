package wav

import "errors"

var (
	ErrNotWavFile              = errors.New("not a WAV file")
	ErrOnlyPCM16bitSupported   = errors.New("only PCM 16-bit supported")
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")
)
