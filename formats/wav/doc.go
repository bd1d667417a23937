// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM 16-bit WAV streams into clips ready for buffer
// upload, and encodes 16-bit samples back to WAV.
//
// Decoding is built on github.com/go-audio/wav:
//
//	clip, err := wav.Decoder{}.Decode(file)
//	buf, _ := ctx.NewBuffer()
//	err = buf.Data(clip.Data, clip.Channels, clip.SampleRate)
//
// Only uncompressed 16-bit PCM with one or two channels is supported;
// anything else fails with ErrOnlyPCM16bitSupported or
// ErrUnsupportedChannelCount.
package wav
