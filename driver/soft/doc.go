// SPDX-License-Identifier: EPL-2.0

// Package soft is a pure-Go, in-memory implementation of driver.Driver.
//
// It exists for two reasons: it lets the module work end to end without a
// native library, and it gives tests a subsystem with real semantics — an
// error register that keeps the first error until drained, handles valid
// only inside its own tables, and format metadata derived from uploads.
//
// The extension set is fixed at construction: New reports everything in
// AllExtensions, NewWithExtensions reports exactly what it is given.
package soft
