// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of common routines shared by the
// bit-stream and coding layers.
//
// For performance reasons, these helpers lack strong error checking and
// require that the caller ensure that strict invariants are kept.
package internal

// GetBit reports the nth bit of b, where bit 0 is the least significant.
// All bit-level I/O in this library is least-significant-bit first.
func GetBit(b byte, n uint) int {
	return int(b>>n) & 1
}

// SetBit returns b with the nth bit set.
func SetBit(b byte, n uint) byte {
	return b | 1<<n
}
