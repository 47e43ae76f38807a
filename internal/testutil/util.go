// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"io"
	"io/ioutil"

	"github.com/dsnet/golib/bits"
)

// ResizeData resizes the input. If n < 0, then the original input will be
// returned as is. If n <= len(input), then the input slice will be truncated.
// However, if n > len(input), then the input will be replicated to fill in
// the missing bytes, but each replicated string will be XORed by some byte
// mask to avoid favoring algorithms with large LZ77 windows.
//
// If n > len(input), then len(input) must be > 0.
func ResizeData(input []byte, n int) []byte {
	if n < 0 {
		return input
	}
	if len(input) >= n {
		return input[:n]
	}
	if len(input) == 0 {
		panic("unable to replicate an empty string")
	}

	var mask byte
	output := make([]byte, n)
	for i := range output {
		idx := i % len(input)
		output[i] = input[idx] ^ mask
		if idx == len(input)-1 {
			mask++
		}
	}
	return output
}

// MustLoadFile must load a file or else panics.
func MustLoadFile(file string) []byte {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDecodeBits packs a string of '0' and '1' runes into bytes,
// least-significant bit first, padding the final partial byte with zeros.
// Spaces and newlines are ignored so long strings can be grouped for
// readability. Any other rune panics.
func MustDecodeBits(s string) []byte {
	var bb bits.Buffer
	for _, c := range s {
		switch c {
		case '0', '1':
			if _, err := bb.WriteBits(uint(c-'0'), 1); err != nil {
				panic(err)
			}
		case ' ', '\n', '\t':
			// Grouping only.
		default:
			panic("invalid bit string")
		}
	}
	return bb.Bytes()
}

// Rand implements a deterministic pseudo-random number generator.
// This differs from math/rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// BuggyReader returns Err after N bytes have been read from R.
type BuggyReader struct {
	R   io.Reader
	N   int64 // Number of valid bytes to read
	Err error // Return this error after N bytes
}

func (br *BuggyReader) Read(buf []byte) (int, error) {
	if int64(len(buf)) > br.N {
		buf = buf[:br.N]
	}
	n, err := br.R.Read(buf)
	br.N -= int64(n)
	if err == nil && br.N <= 0 {
		return n, br.Err
	}
	return n, err
}

// BuggyWriter returns Err after N bytes have been written to W.
type BuggyWriter struct {
	W   io.Writer
	N   int64 // Number of valid bytes to write
	Err error // Return this error after N bytes
}

func (bw *BuggyWriter) Write(buf []byte) (int, error) {
	if int64(len(buf)) > bw.N {
		buf = buf[:bw.N]
	}
	n, err := bw.W.Write(buf)
	bw.N -= int64(n)
	if err == nil && bw.N <= 0 {
		return n, bw.Err
	}
	return n, err
}

// BuggyStream wraps an io.ReadWriteSeeker and returns Err from every
// operation once N total Read/Write/Seek calls have completed.
type BuggyStream struct {
	S   io.ReadWriteSeeker
	N   int64 // Number of valid operations
	Err error // Return this error afterwards
}

func (bs *BuggyStream) Read(buf []byte) (int, error) {
	if bs.N <= 0 {
		return 0, bs.Err
	}
	bs.N--
	return bs.S.Read(buf)
}

func (bs *BuggyStream) Write(buf []byte) (int, error) {
	if bs.N <= 0 {
		return 0, bs.Err
	}
	bs.N--
	return bs.S.Write(buf)
}

func (bs *BuggyStream) Seek(offset int64, whence int) (int64, error) {
	if bs.N <= 0 {
		return 0, bs.Err
	}
	bs.N--
	return bs.S.Seek(offset, whence)
}
