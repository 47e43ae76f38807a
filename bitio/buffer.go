// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import "io"

// Buffer is an in-memory byte stream implementing io.ReadWriteSeeker.
// It serves the role an *os.File plays for Writer and Reader when no file
// is wanted; the standard library offers no seekable in-memory writer.
//
// The zero value is an empty buffer ready for use.
type Buffer struct {
	data []byte
	off  int64
}

// NewBuffer returns a Buffer whose initial contents are data. The new
// Buffer takes ownership of data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

func (b *Buffer) Read(p []byte) (int, error) {
	if b.off >= int64(len(b.data)) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, b.data[b.off:])
	b.off += int64(n)
	return n, nil
}

// Write writes p at the current offset, growing the buffer as needed.
// Writing after a seek past the end zero-fills the gap, matching file
// semantics.
func (b *Buffer) Write(p []byte) (int, error) {
	if end := b.off + int64(len(p)); end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	n := copy(b.data[b.off:], p)
	b.off += int64(n)
	return n, nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.off + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, errSeek
	}
	if abs < 0 {
		return 0, errSeek
	}
	b.off = abs
	return abs, nil
}

// Bytes returns the buffer contents. The slice remains valid only until the
// next Write.
func (b *Buffer) Bytes() []byte { return b.data }

// Len reports the byte length of the buffer contents.
func (b *Buffer) Len() int { return len(b.data) }

// Reset truncates the buffer and moves the offset back to zero.
func (b *Buffer) Reset() {
	b.data, b.off = b.data[:0], 0
}
