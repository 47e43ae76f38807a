// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"io"

	"github.com/dsnet/huff/internal"
)

// Reader reads individual bits from an underlying io.ReadSeeker.
//
// Bytes are loaded from the stream lazily, one at a time. The Reader tracks
// the stream offset at which it loaded its cached byte; if byte-level reads
// or seeks move the stream in the meantime, the cache is discarded and the
// next ReadBit loads fresh from wherever the stream now points.
type Reader struct {
	rs io.ReadSeeker

	cur     byte  // The byte currently being consumed
	nbits   uint  // Next bit to serve from cur; 8 means cur is spent
	lastOff int64 // Stream offset just after loading cur
	cnt     int64 // Total number of bits read

	arr [1]byte
}

// NewReader returns a new Reader consuming bits from rs.
func NewReader(rs io.ReadSeeker) *Reader {
	r := new(Reader)
	r.Reset(rs)
	return r
}

// Reset discards the Reader's state and makes it equivalent to the result
// of NewReader called with rs.
func (r *Reader) Reset(rs io.ReadSeeker) {
	*r = Reader{rs: rs, nbits: 8}
}

// ReadBit reads a single bit, returning 0 or 1. It returns io.EOF once the
// underlying stream is exhausted.
func (r *Reader) ReadBit() (int, error) {
	off, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	if r.lastOff != off || r.nbits == 8 {
		// Either cur was spent, or byte-level traffic moved the stream
		// since the last load.
		if _, err := io.ReadFull(r.rs, r.arr[:]); err != nil {
			if err == io.ErrUnexpectedEOF {
				err = io.EOF
			}
			return 0, err
		}
		r.cur, r.nbits = r.arr[0], 0
		r.lastOff = off + 1
	}
	v := internal.GetBit(r.cur, r.nbits)
	r.nbits++
	r.cnt++
	return v, nil
}

// Read reads len(p) bytes directly from the underlying stream, invalidating
// the cached byte.
func (r *Reader) Read(p []byte) (int, error) {
	return r.rs.Read(p)
}

// ReadByte reads a single byte directly from the underlying stream,
// invalidating the cached byte.
func (r *Reader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(r.rs, r.arr[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}
	return r.arr[0], nil
}

// Rewind seeks the underlying stream back to its beginning. No cache state
// needs clearing: the next ReadBit notices the position change and reloads.
func (r *Reader) Rewind() error {
	_, err := r.rs.Seek(0, io.SeekStart)
	return err
}

// BitsRead reports the total number of bits read through ReadBit.
func (r *Reader) BitsRead() int64 {
	return r.cnt
}

// Size reports the total byte length of the underlying stream. The current
// stream position is probed and restored, so the cached byte remains valid.
func (r *Reader) Size() (int64, error) {
	cur, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := r.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	_, err = r.rs.Seek(cur, io.SeekStart)
	return end, err
}
