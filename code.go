// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

// CodeTable maps every literal symbol of a coding tree to its code: the
// path from the root to that symbol's leaf, written as a string of '0' and
// '1' runes for the zero and one branches. Codes are prefix-free by
// construction since leaves share no paths.
type CodeTable map[Symbol]string

// BuildCodeTable derives the code table for the given tree by depth-first
// traversal, zero branch before one branch.
//
// A childless root is its own leaf and maps to the code "0"; the empty code
// is disallowed since zero-length codes cannot be told apart on a bit
// channel.
func BuildCodeTable(root *Node) CodeTable {
	t := make(CodeTable)
	if root == nil {
		return t
	}
	if root.Leaf() {
		if root.Sym != Internal {
			t[root.Sym] = "0"
		}
		return t
	}
	buildCodes(root, "", t)
	return t
}

func buildCodes(n *Node, path string, t CodeTable) {
	if n.Zero != nil {
		buildCodes(n.Zero, path+"0", t)
	}
	if n.One != nil {
		buildCodes(n.One, path+"1", t)
	}
	if n.Sym != Internal {
		t[n.Sym] = path
	}
}
