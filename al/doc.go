// SPDX-License-Identifier: EPL-2.0

// Package al wraps the context-bound native audio subsystem with safe
// resource ownership.
//
// The native API is a table of free functions operating on integer handles,
// with two pieces of ambient state: the current context, and an error
// register scoped to it. This package turns that into Go values:
//
//   - Device owns the serialization lock for one native subsystem instance.
//   - Context makes itself current, scoped to the lock, for every call made
//     through it.
//   - Buffer owns exactly one native buffer handle for its whole life.
//
// # Creating and filling a buffer
//
//	dev, _ := al.OpenDevice(soft.New(), "")
//	ctx, _ := dev.NewContext()
//	buf, _ := ctx.NewBuffer()
//	defer buf.Destroy()
//
//	samples := al.SamplesI16{0, 1000, -1000, 0}
//	err := buf.Data(samples, al.Mono, 44100)
//
// The payload types (SamplesI8, SamplesI16, SamplesF32, SamplesF64) are
// borrowed views over caller-owned slices; nothing is retained after Data
// returns. The float encodings are gated on the ExtFloat32 and ExtDouble
// extensions and fail with ErrMissingExtension when absent.
//
// # Parameter access
//
// Buffer parameters share one generic protocol, Properties[T], instantiated
// per value shape (float32, [3]float32, int32, Channels). The common
// parameters have fixed accessors:
//
//	rate, _ := buf.Frequency()
//	size, _ := buf.Size()
//	depth, _ := buf.Bits()
//	layout, _ := buf.Channels()
//
// # Locking
//
// Every operation holds the device lock across the native call and the error
// check that follows it. The error register is current-context state, so
// releasing the lock between the two would let another context switch in and
// corrupt error reporting. Callers never deal with the lock directly.
//
// # Errors
//
// All failures are sentinel errors (or wrap one), tested with errors.Is:
// ErrAllocation, ErrMissingExtension, ErrUnsupportedOperation,
// ErrInvariantViolation, and the translations of the native error register
// such as ErrInvalidValue. Buffer.Destroy is the one exception: release
// failure is logged, never returned.
package al
