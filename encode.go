// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"bufio"
	"io"
	"os"

	"github.com/dsnet/huff/bitio"
)

// Encode writes the code of every byte read from src to bw, followed by the
// code of the EOF symbol, which terminates the logical message. It returns
// the emitted bits as a string of '0' and '1' runes; the length of that
// string is the payload size in bits.
//
// Every byte of src must have an entry in the table, as must EOF; a missing
// entry fails with ErrCorrupt. This cannot happen when the table descends
// from the model that counted src.
func Encode(bw *bitio.Writer, table CodeTable, src io.ByteReader) (string, error) {
	var enc []byte
	for {
		c, err := src.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return string(enc), err
		}
		code, ok := table[Symbol(c)]
		if !ok {
			return string(enc), ErrCorrupt
		}
		if err := writeCode(bw, code); err != nil {
			return string(enc), err
		}
		enc = append(enc, code...)
	}

	code, ok := table[EOF]
	if !ok {
		return string(enc), ErrCorrupt
	}
	if err := writeCode(bw, code); err != nil {
		return string(enc), err
	}
	enc = append(enc, code...)
	return string(enc), nil
}

func writeCode(bw *bitio.Writer, code string) error {
	for i := 0; i < len(code); i++ {
		if err := bw.WriteBit(int(code[i] - '0')); err != nil {
			return err
		}
	}
	return nil
}

// Compress compresses the file at path into path+".huf": the serialized
// frequency model as a textual header, immediately followed by the
// bit-packed payload. It returns the payload bit string, so the total
// compressed size is the header length plus the bit count rounded up to
// whole bytes.
//
// Both files are closed before Compress returns, so the output may be
// reopened immediately.
func Compress(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	m, err := BuildModel(bufio.NewReader(src))
	if err != nil {
		return "", err
	}
	tree, err := BuildTree(m)
	if err != nil {
		return "", err
	}
	table := BuildCodeTable(tree)

	// Second pass over the source emits the payload.
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	dst, err := os.Create(path + ".huf")
	if err != nil {
		return "", err
	}
	bw := bitio.NewWriter(dst)
	if _, err := bw.WriteString(m.String()); err != nil {
		dst.Close()
		return "", err
	}
	enc, err := Encode(bw, table, bufio.NewReader(src))
	if err != nil {
		dst.Close()
		return "", err
	}
	return enc, dst.Close()
}
