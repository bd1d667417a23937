package aiff

import "errors"

var (
	ErrNotAiffFile             = errors.New("not an AIFF file")
	ErrOnlyPCM16bitSupported   = errors.New("only PCM 16-bit supported")
	ErrUnsupportedAiffLayout   = errors.New("unsupported AIFF layout")
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")
)
