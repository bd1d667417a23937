// SPDX-License-Identifier: EPL-2.0

// Package allen loads audio into native buffers.
//
// The heavy lifting lives in the subpackages: al wraps the context-bound
// native subsystem (devices, contexts, buffers, parameter access), driver
// defines the native function table, driver/soft is a pure-Go subsystem, and
// formats/wav and formats/aiff decode PCM containers into upload-ready
// clips. This package ties them together.
//
// # Quick start
//
//	dev, _ := al.OpenDevice(soft.New(), "")
//	ctx, _ := dev.NewContext()
//
//	file, _ := os.Open("audio.wav")
//	buf, err := allen.LoadBuffer(ctx, wav.Decoder{}, file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer buf.Destroy()
//
// # Decoder registry
//
// When the format is picked at runtime, register decoders by key:
//
//	reg := allen.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("aiff", aiff.Decoder{})
//	dec, ok := reg.Get(strings.TrimPrefix(filepath.Ext(path), "."))
//
// # Resampling
//
// Devices often want a fixed rate; Resample converts a decoded clip before
// upload using cubic interpolation, preserving encoding and channel layout:
//
//	clip, _ = allen.Resample(clip, 48000)
package allen
