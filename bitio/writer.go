// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"io"

	"github.com/dsnet/huff/internal"
)

// Writer writes individual bits to an underlying io.WriteSeeker.
//
// The Writer tracks the stream offset of its last bit write. Byte-level
// writes through Write and WriteByte deliberately do not update that mark,
// so the next WriteBit notices the stream has moved and abandons the
// in-progress byte rather than corrupting unrelated data.
type Writer struct {
	ws io.WriteSeeker

	cur     byte  // The byte currently being filled
	nbits   uint  // Number of bits filled in cur; 8 means cur is complete
	lastOff int64 // Stream offset just after our last bit write
	cnt     int64 // Total number of bits written

	arr [1]byte
}

// NewWriter returns a new Writer emitting bits to ws.
func NewWriter(ws io.WriteSeeker) *Writer {
	w := new(Writer)
	w.Reset(ws)
	return w
}

// Reset discards the Writer's state and makes it equivalent to the result
// of NewWriter called with ws.
func (w *Writer) Reset(ws io.WriteSeeker) {
	*w = Writer{ws: ws, nbits: 8}
}

// WriteBit writes a single bit. The value v must be 0 or 1; anything else
// fails with ErrInvalid.
//
// The first bit of each byte appends that byte to the stream immediately.
// Later bits seek back one byte and overwrite it in place, so the stream is
// byte-consistent after every call rather than only at 8-bit boundaries.
// Writing a 0 into a byte already on the stream needs no rewrite since the
// vacated slot is already zero.
func (w *Writer) WriteBit(v int) error {
	if v != 0 && v != 1 {
		return ErrInvalid
	}
	off, err := w.ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if w.lastOff != off || w.nbits == 8 {
		// Either cur was completed, or byte-level traffic moved the
		// stream since the last bit write. Start a fresh byte.
		w.cur, w.nbits = 0, 0
	}
	if v == 1 {
		w.cur = internal.SetBit(w.cur, w.nbits)
	}
	switch {
	case w.nbits == 0:
		if err := w.writeByte(w.cur); err != nil {
			return err
		}
		off++
	case v == 1:
		if _, err := w.ws.Seek(-1, io.SeekCurrent); err != nil {
			return err
		}
		if err := w.writeByte(w.cur); err != nil {
			return err
		}
	}
	w.nbits++
	w.lastOff = off
	w.cnt++
	return nil
}

// Write writes len(p) bytes directly to the underlying stream, invalidating
// any in-progress partial byte.
func (w *Writer) Write(p []byte) (int, error) {
	return w.ws.Write(p)
}

// WriteByte writes a single byte directly to the underlying stream,
// invalidating any in-progress partial byte.
func (w *Writer) WriteByte(c byte) error {
	return w.writeByte(c)
}

// WriteString writes s directly to the underlying stream, invalidating any
// in-progress partial byte.
func (w *Writer) WriteString(s string) (int, error) {
	return io.WriteString(w.ws, s)
}

// BitsWritten reports the total number of bits written through WriteBit.
func (w *Writer) BitsWritten() int64 {
	return w.cnt
}

// Size reports the total byte length of the underlying stream. The current
// stream position is probed and restored, so an in-progress partial byte
// remains valid.
func (w *Writer) Size() (int64, error) {
	cur, err := w.ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := w.ws.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	_, err = w.ws.Seek(cur, io.SeekStart)
	return end, err
}

func (w *Writer) writeByte(c byte) error {
	w.arr[0] = c
	_, err := w.ws.Write(w.arr[:])
	return err
}
