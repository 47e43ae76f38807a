// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_hf_lib

package bench

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/dsnet/huff"
	"github.com/dsnet/huff/bitio"
)

func init() {
	RegisterEncoder(FormatHuff, "hf",
		func(w io.Writer, lvl int) io.WriteCloser {
			return &hufWriter{w: w} // Huffman coding has no levels
		})
	RegisterDecoder(FormatHuff, "hf",
		func(r io.Reader) io.ReadCloser {
			return &hufReader{r: r}
		})
}

// hufWriter adapts the two-pass whole-message codec to a streaming
// interface by buffering everything written and compressing on Close.
type hufWriter struct {
	w   io.Writer
	buf bytes.Buffer
}

func (hw *hufWriter) Write(p []byte) (int, error) {
	return hw.buf.Write(p)
}

func (hw *hufWriter) Close() error {
	m, err := huff.BuildModel(bytes.NewReader(hw.buf.Bytes()))
	if err != nil {
		return err
	}
	tree, err := huff.BuildTree(m)
	if err != nil {
		return err
	}

	out := new(bitio.Buffer)
	bw := bitio.NewWriter(out)
	if _, err := bw.WriteString(m.String()); err != nil {
		return err
	}
	if _, err := huff.Encode(bw, huff.BuildCodeTable(tree), bytes.NewReader(hw.buf.Bytes())); err != nil {
		return err
	}
	_, err = hw.w.Write(out.Bytes())
	return err
}

// hufReader decompresses the whole stream on the first Read and serves the
// result from memory.
type hufReader struct {
	r   io.Reader
	dec *bytes.Reader
}

func (hr *hufReader) Read(p []byte) (int, error) {
	if hr.dec == nil {
		data, err := ioutil.ReadAll(hr.r)
		if err != nil {
			return 0, err
		}
		br := bitio.NewReader(bitio.NewBuffer(data))
		m, err := huff.ParseModel(br)
		if err != nil {
			return 0, err
		}
		tree, err := huff.BuildTree(m)
		if err != nil {
			return 0, err
		}
		buf := new(bytes.Buffer)
		if _, err := huff.Decode(br, tree, buf); err != nil {
			return 0, err
		}
		hr.dec = bytes.NewReader(buf.Bytes())
	}
	return hr.dec.Read(p)
}

func (hr *hufReader) Close() error { return nil }
