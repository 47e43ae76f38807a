// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"
	"testing"

	"github.com/dsnet/huff/bitio"
	"github.com/dsnet/huff/internal/testutil"
)

func TestDecode(t *testing.T) {
	vectors := []struct {
		bits   string         // Payload bytes, spelled out as bits
		model  FrequencyModel // Model the coding tree is built from
		output string         // Expected decoded output
		nbits  int64          // Expected number of bits consumed
		err    error
	}{{
		// An EOF root terminates before touching the payload.
		bits:  "",
		model: FrequencyModel{EOF: 1},
	}, {
		bits:  "10101010",
		model: FrequencyModel{EOF: 1},
	}, {
		// The padding bits after the EOF code are never read.
		bits:   "00101100",
		model:  FrequencyModel{'a': 2, 'b': 1, EOF: 1},
		output: "aab",
		nbits:  6,
	}, {
		bits:   "11110000",
		model:  FrequencyModel{'a': 4, EOF: 1},
		output: "aaaa",
		nbits:  5,
	}, {
		// An empty payload cannot reach the EOF symbol.
		bits:  "",
		model: FrequencyModel{'a': 2, 'b': 1, EOF: 1},
		err:   io.ErrUnexpectedEOF,
	}, {
		// Without an EOF code the walk decodes pad bits as data and then
		// falls off the end of the stream.
		bits:   "00100000",
		model:  FrequencyModel{'a': 2, 'b': 1, EOF: 1},
		output: "aabaaaa",
		nbits:  8,
		err:    io.ErrUnexpectedEOF,
	}}

	for i, v := range vectors {
		tree, err := BuildTree(v.model)
		if err != nil {
			t.Fatalf("test %d, BuildTree error: got %v", i, err)
		}

		br := bitio.NewReader(bitio.NewBuffer(testutil.MustDecodeBits(v.bits)))
		dst := new(bytes.Buffer)
		dec, err := Decode(br, tree, dst)
		if err != v.err {
			t.Errorf("test %d, error mismatch: got %v, want %v", i, err, v.err)
		}
		if dec != v.output {
			t.Errorf("test %d, output mismatch: got %q, want %q", i, dec, v.output)
		}
		if dst.String() != v.output {
			t.Errorf("test %d, stream mismatch: got %q, want %q", i, dst.String(), v.output)
		}
		if got := br.BitsRead(); got != v.nbits {
			t.Errorf("test %d, BitsRead mismatch: got %d, want %d", i, got, v.nbits)
		}
	}
}

// TestDecodeLeafRoot decodes against a hand-built tree whose root is a
// literal leaf. Every bit resolves to that symbol without descending, and
// the stream necessarily ends in truncation.
func TestDecodeLeafRoot(t *testing.T) {
	root := &Node{Sym: 'a', Count: 8}
	dst := new(bytes.Buffer)
	dec, err := Decode(bitio.NewReader(bitio.NewBuffer([]byte{0x00})), root, dst)
	if err != io.ErrUnexpectedEOF {
		t.Errorf("error mismatch: got %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if want := "aaaaaaaa"; dec != want {
		t.Errorf("output mismatch: got %q, want %q", dec, want)
	}
	if want := "aaaaaaaa"; dst.String() != want {
		t.Errorf("stream mismatch: got %q, want %q", dst.String(), want)
	}
}

func TestDecodeBadTree(t *testing.T) {
	br := bitio.NewReader(bitio.NewBuffer([]byte{0x01}))
	if _, err := Decode(br, nil, ioutil.Discard); err != ErrCorrupt {
		t.Errorf("error mismatch: got %v, want %v", err, ErrCorrupt)
	}

	// An internal node missing its one branch.
	root := &Node{Sym: Internal, Count: 2, Zero: &Node{Sym: 'a', Count: 1}}
	if _, err := Decode(br, root, ioutil.Discard); err != ErrCorrupt {
		t.Errorf("error mismatch: got %v, want %v", err, ErrCorrupt)
	}
}

func TestDecodeSinkFailure(t *testing.T) {
	errFake := errors.New("fake error")
	tree, err := BuildTree(FrequencyModel{'a': 2, 'b': 1, EOF: 1})
	if err != nil {
		t.Fatalf("BuildTree error: got %v", err)
	}

	br := bitio.NewReader(bitio.NewBuffer(testutil.MustDecodeBits("001011")))
	dst := &testutil.BuggyWriter{W: ioutil.Discard, N: 0, Err: errFake}
	dec, err := Decode(br, tree, dst)
	if err != errFake {
		t.Errorf("error mismatch: got %v, want %v", err, errFake)
	}
	if dec != "aab" {
		t.Errorf("output mismatch: got %q, want %q", dec, "aab")
	}
}
