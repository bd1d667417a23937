// SPDX-License-Identifier: EPL-2.0

// Package driver defines the narrow interface to the native audio subsystem.
//
// The subsystem is a stateful, context-bound API: a single context is
// "current" at any time, and the error register records the outcome of the
// most recent call on whichever context is current. Everything above this
// package (see the al package) is responsible for serializing access so that
// a call and its error check always run under the same current context.
//
// Driver is a function table. Implementations include the pure-Go software
// subsystem in driver/soft; a cgo binding to a real library would implement
// the same table.
package driver
