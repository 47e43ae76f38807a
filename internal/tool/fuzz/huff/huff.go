// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package huff

import (
	"bytes"

	hf "github.com/dsnet/huff"
	"github.com/dsnet/huff/bitio"
)

func Fuzz(data []byte) int {
	ddata, ok := testDecompress(data)
	if ok {
		testRoundTrip(ddata)
		return 1
	}
	testRoundTrip(data)
	return 0
}

// testDecompress attempts to decode the input as a model header followed by
// a bit-packed payload. Corrupted and truncated streams must fail with an
// error, never a panic.
func testDecompress(data []byte) ([]byte, bool) {
	br := bitio.NewReader(bitio.NewBuffer(data))
	m, err := hf.ParseModel(br)
	if err != nil {
		return nil, false
	}
	tree, err := hf.BuildTree(m)
	if err != nil {
		return nil, false
	}
	buf := new(bytes.Buffer)
	if _, err := hf.Decode(br, tree, buf); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// testRoundTrip encodes the input data and then decodes it, checking that the
// data was losslessly preserved.
func testRoundTrip(want []byte) {
	m, err := hf.BuildModel(bytes.NewReader(want))
	if err != nil {
		panic(err)
	}
	tree, err := hf.BuildTree(m)
	if err != nil {
		panic(err)
	}

	buf := new(bitio.Buffer)
	bw := bitio.NewWriter(buf)
	if _, err := bw.WriteString(m.String()); err != nil {
		panic(err)
	}
	if _, err := hf.Encode(bw, hf.BuildCodeTable(tree), bytes.NewReader(want)); err != nil {
		panic(err)
	}

	got, ok := testDecompress(buf.Bytes())
	if !bytes.Equal(got, want) || !ok {
		panic("mismatching bytes")
	}
}
