// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PCM 16-bit AIFF streams into clips ready for buffer
// upload, built on github.com/go-audio/aiff.
//
// Only uncompressed 16-bit PCM with one or two channels is supported.
package aiff
