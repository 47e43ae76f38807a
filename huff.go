// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huff implements the huff compressed file format, a classical
// Huffman coding of whole files.
//
// A .huf file carries a textual frequency-model header followed immediately
// by the bit-packed payload; there is no magic number and no length prefix.
// The header lists every symbol of the source with its occurrence count,
// which is exactly the information needed to rebuild the coding tree on the
// decoding side. The payload is the concatenation of each source byte's
// code, least-significant bit first within each byte, terminated by the code
// of the reserved end-of-stream symbol.
//
// The pipeline is BuildModel, BuildTree, BuildCodeTable, then Encode or
// Decode; Compress and Decompress drive the whole pipeline for files.
package huff

import "fmt"

// A Symbol is a unit of the coding alphabet: a literal byte value in
// [0, 255], or one of the two reserved markers.
type Symbol int

const (
	// EOF is the end-of-stream symbol. Every frequency model carries it
	// with count 1, and every payload ends with its code. Decoding it is
	// the only normal way for a decode to terminate.
	EOF Symbol = 256

	// Internal marks non-leaf tree nodes. It never appears in data,
	// models, or code tables.
	Internal Symbol = 257
)

// String renders the symbol the way dumps and viewers print it: literal
// bytes as quoted characters with common escapes, reserved markers by name.
func (s Symbol) String() string {
	switch s {
	case EOF:
		return "EOF"
	case Internal:
		return "N/A"
	case 0:
		return `'\0'`
	case '\b':
		return `'\b'`
	case '\t':
		return `'\t'`
	case '\n':
		return `'\n'`
	case '\f':
		return `'\f'`
	case '\r':
		return `'\r'`
	}
	if s < 0 || s > EOF {
		return fmt.Sprintf("<%d>", int(s))
	}
	if s < 0x20 || s >= 0x7f {
		return fmt.Sprintf(`'\%d'`, int(s))
	}
	return "'" + string(rune(s)) + "'"
}
