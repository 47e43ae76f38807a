// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitio implements bit-level access to byte-oriented, seekable
// streams.
//
// A Writer or Reader wraps a stream that it borrows rather than inherits
// from, so byte-level and bit-level traffic may be freely interleaved on the
// same channel. Within each byte, bits are ordered least-significant first:
// the first bit written to a fresh byte occupies bit 0.
//
// Partial bytes are durable. The Writer flushes the byte it is filling after
// every single bit, seeking back and overwriting it in place as further bits
// accumulate. Symmetrically, the Reader watches the underlying stream offset
// and reloads its cached byte whenever some other activity has moved the
// stream. This allows, for example, a textual header to be written through
// Write, followed immediately by a bit-packed payload through WriteBit, with
// no alignment or flush calls in between.
package bitio

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bitio: " + string(e) }

// ErrInvalid is returned by Writer.WriteBit when the value passed is
// something other than 0 or 1.
var ErrInvalid error = Error("bit value must be 0 or 1")

var errSeek error = Error("seek to invalid offset")
