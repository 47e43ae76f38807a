// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huff: " + string(e) }

// ErrCorrupt is returned when a header or model could not have been
// produced by this package: the header violates its grammar, a symbol falls
// outside the alphabet, the model lacks the EOF entry, or a code lookup
// misses. Payloads cut off mid-stream are reported as io.ErrUnexpectedEOF
// instead, so callers can tell corruption from truncation.
var ErrCorrupt error = Error("stream is corrupted")
