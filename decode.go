// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/huff/bitio"
)

// Decode walks the tree once per code read from br, emitting the byte of
// every non-EOF leaf reached, until the EOF symbol is decoded. The decoded
// bytes are written to dst and also returned as a string.
//
// A payload that runs out before the EOF symbol is decoded fails with
// io.ErrUnexpectedEOF; whatever was decoded up to that point is still
// written to dst and returned. Decoding a childless root never descends: an
// EOF root stops instantly without consuming any bits, while any other leaf
// root resolves every bit read to one copy of its symbol.
func Decode(br *bitio.Reader, root *Node, dst io.Writer) (string, error) {
	if root == nil {
		return "", ErrCorrupt
	}
	var dec []byte
	node := root
	for node.Sym != EOF {
		v, err := br.ReadBit()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			dst.Write(dec) // The decode error takes precedence
			return string(dec), err
		}
		if !node.Leaf() {
			if v == 0 {
				node = node.Zero
			} else {
				node = node.One
			}
			if node == nil {
				return string(dec), ErrCorrupt
			}
		}
		if node.Leaf() && node.Sym != EOF {
			dec = append(dec, byte(node.Sym))
			node = root
		}
	}
	if _, err := dst.Write(dec); err != nil {
		return string(dec), err
	}
	return string(dec), nil
}

// Decompress decompresses the file at path, which must end in ".huf", and
// writes the original bytes to a sibling file: the ".huf" suffix is dropped
// and "_unc" is inserted before the first extension dot, so "a.txt.huf"
// becomes "a_unc.txt" and "data.huf" becomes "data_unc". It returns the
// decoded content as a string.
//
// Both files are closed before Decompress returns, so the output may be
// reopened immediately.
func Decompress(path string) (string, error) {
	if !strings.HasSuffix(path, ".huf") {
		return "", ErrCorrupt
	}
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	br := bitio.NewReader(src)
	m, err := ParseModel(br)
	if err != nil {
		return "", err
	}
	tree, err := BuildTree(m)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(outputName(path))
	if err != nil {
		return "", err
	}
	dec, err := Decode(br, tree, dst)
	if err != nil {
		dst.Close()
		return dec, err
	}
	return dec, dst.Close()
}

// outputName derives the decompressed file name, leaving any directory
// untouched: "dir/a.tar.gz.huf" becomes "dir/a_unc.tar.gz".
func outputName(path string) string {
	dir, base := filepath.Split(strings.TrimSuffix(path, ".huf"))
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return dir + base[:i] + "_unc" + base[i:]
	}
	return dir + base + "_unc"
}
