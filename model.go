// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"io"
	"sort"
	"strconv"

	"github.com/dsnet/golib/errs"
)

// FrequencyModel maps every symbol occurring in some source to its
// occurrence count. A model is built once, serialized into the compressed
// file's header, rebuilt from that header when decompressing, and never
// mutated in between.
type FrequencyModel map[Symbol]int

// BuildModel reads src to exhaustion, counting every byte, and then sets
// the EOF count to its fixed value of 1. An empty source yields the
// single-entry model {256:1}, which is valid and degenerate.
func BuildModel(src io.ByteReader) (FrequencyModel, error) {
	m := make(FrequencyModel)
	for {
		c, err := src.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		m[Symbol(c)]++
	}
	m[EOF] = 1
	return m, nil
}

// Symbols returns the model's symbols in ascending order.
func (m FrequencyModel) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(m))
	for s := range m {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// String renders the model in its header form: '{' then sym:count pairs
// joined by ", " then '}'. Symbols are enumerated in ascending order, so
// the rendering is deterministic; ParseModel accepts any order.
func (m FrequencyModel) String() string {
	b := []byte{'{'}
	for i, s := range m.Symbols() {
		if i > 0 {
			b = append(b, ',', ' ')
		}
		b = strconv.AppendInt(b, int64(s), 10)
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(m[s]), 10)
	}
	b = append(b, '}')
	return string(b)
}

// ParseModel reads a serialized model from src, one byte at a time,
// consuming exactly the header and nothing past its closing brace; the bit
// payload of a compressed file starts at the very next byte.
//
// Grammar violations and out-of-range symbols fail with ErrCorrupt. A
// source that dries up mid-header fails with io.ErrUnexpectedEOF.
func ParseModel(src io.ByteReader) (m FrequencyModel, err error) {
	defer errs.Recover(&err)

	next := func() byte {
		c, err := src.ReadByte()
		if err == io.EOF {
			errs.Panic(io.ErrUnexpectedEOF)
		}
		if err != nil {
			errs.Panic(err)
		}
		return c
	}

	m = make(FrequencyModel)
	errs.Assert(next() == '{', ErrCorrupt)
	c := next()
	if c == '}' {
		return m, nil // Empty model
	}
	for {
		var sym, cnt int
		sym, c = scanInt(c, next)
		errs.Assert(c == ':', ErrCorrupt)
		cnt, c = scanInt(next(), next)
		errs.Assert(c == ',' || c == '}', ErrCorrupt)
		errs.Assert(sym <= int(EOF), ErrCorrupt)
		m[Symbol(sym)] = cnt
		if c == '}' {
			return m, nil
		}
		errs.Assert(next() == ' ', ErrCorrupt) // Pairs are joined by ", "
		c = next()
	}
}

// scanInt parses a decimal integer byte by byte, starting from c and
// pulling further bytes from next. It returns the value and the first
// non-digit byte, which terminates the number.
func scanInt(c byte, next func() byte) (int, byte) {
	errs.Assert(c >= '0' && c <= '9', ErrCorrupt)
	var v int
	for c >= '0' && c <= '9' {
		v = 10*v + int(c-'0')
		errs.Assert(v < 1<<31, ErrCorrupt)
		c = next()
	}
	return v, c
}
