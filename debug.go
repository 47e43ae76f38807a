// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build debug

package huff

import (
	"fmt"
	"strings"
)

// String renders the tree one node per line, children indented one space
// beneath their parent, zero branch first.
func (n *Node) String() string {
	var ss []string
	var walk func(n *Node, indent string)
	walk = func(n *Node, indent string) {
		if n == nil {
			return
		}
		s := indent + "{" + n.Sym.String()
		if n.Sym != Internal {
			s += fmt.Sprintf("(%d)", int(n.Sym))
		}
		ss = append(ss, fmt.Sprintf("%s, count=%d}", s, n.Count))
		walk(n.Zero, indent+" ")
		walk(n.One, indent+" ")
	}
	walk(n, "")
	return strings.Join(ss, "\n")
}

// String renders the table one symbol per line in ascending symbol order.
func (t CodeTable) String() string {
	var maxLen int
	for _, code := range t {
		if maxLen < len(code) {
			maxLen = len(code)
		}
	}
	var ss []string
	for sym := Symbol(0); sym <= EOF; sym++ {
		code, ok := t[sym]
		if !ok {
			continue
		}
		ss = append(ss, fmt.Sprintf("\t%3d: %-6s %*s", int(sym), sym.String(), maxLen, code))
	}
	return "{\n" + strings.Join(ss, "\n") + "\n}"
}
