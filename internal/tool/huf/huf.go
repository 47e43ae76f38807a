// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huf implements the rendering logic of the huf command-line tool.
// It prints frequency models, coding trees, code tables, and raw bit dumps
// in a form meant for human inspection.
package huf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dsnet/golib/bits"
	"github.com/dsnet/huff"
)

// FormatModel renders m one symbol per line in ascending symbol order.
//
//	97:	'a'	-->	2
//	98:	'b'	-->	1
//	256:	EOF	-->	1
func FormatModel(m huff.FrequencyModel) string {
	var ss []string
	for _, sym := range m.Symbols() {
		ss = append(ss, fmt.Sprintf("%d:\t%s\t-->\t%d", int(sym), sym, m[sym]))
	}
	return strings.Join(ss, "\n")
}

// FormatCodes renders t one symbol per line in ascending symbol order,
// in the same shape as FormatModel with the code in place of the count.
func FormatCodes(t huff.CodeTable) string {
	var ss []string
	for sym := huff.Symbol(0); sym <= huff.EOF; sym++ {
		code, ok := t[sym]
		if !ok {
			continue
		}
		ss = append(ss, fmt.Sprintf("%d:\t%s\t-->\t%s", int(sym), sym, code))
	}
	return strings.Join(ss, "\n")
}

// FormatTree renders the tree one node per line, children indented one space
// beneath their parent, zero branch before one branch.
func FormatTree(root *huff.Node) string {
	var ss []string
	var walk func(n *huff.Node, indent string)
	walk = func(n *huff.Node, indent string) {
		if n == nil {
			return
		}
		s := indent + "{" + n.Sym.String()
		if n.Sym != huff.Internal {
			s += fmt.Sprintf("(%d)", int(n.Sym))
		}
		ss = append(ss, fmt.Sprintf("%s, count=%d}", s, n.Count))
		walk(n.Zero, indent+" ")
		walk(n.One, indent+" ")
	}
	walk(root, "")
	return strings.Join(ss, "\n")
}

// FormatBits renders every bit of data in stream order, least-significant
// bit of each byte first, grouped eight bits to a word and eight words to a
// line. This is the order the payload bits of a .huf file are consumed in,
// so the dump of a compressed file shows the header bytes followed by the
// exact code sequence.
func FormatBits(data []byte) string {
	var br bits.Reader
	br.Reset(bytes.NewReader(data))

	var ss []string
	var line []byte
	for i := 0; ; i++ {
		v, err := br.ReadBit()
		if err != nil {
			break
		}
		if v {
			line = append(line, '1')
		} else {
			line = append(line, '0')
		}
		switch {
		case (i+1)%64 == 0:
			ss = append(ss, string(line))
			line = line[:0]
		case (i+1)%8 == 0:
			line = append(line, ' ')
		}
	}
	if len(line) > 0 {
		ss = append(ss, string(line))
	}
	return strings.Join(ss, "\n")
}
