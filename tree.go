// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"container/heap"

	"github.com/dsnet/huff/internal"
)

// A Node is a single vertex in a Huffman coding tree. Leaves carry the
// symbol they encode, while internal nodes carry the Internal marker and
// the sum of the counts beneath them.
type Node struct {
	Sym   Symbol
	Count int
	Zero  *Node // Subtree reached by reading a 0 bit
	One   *Node // Subtree reached by reading a 1 bit
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool { return n.Zero == nil && n.One == nil }

// BuildTree constructs the coding tree for the given model by greedy
// merging. The two lowest-count subtrees are repeatedly joined under a new
// internal parent, where the first subtree removed becomes the zero branch
// and the second becomes the one branch.
//
// Ties between equal counts are broken by insertion order. All leaves are
// inserted in ascending symbol order before any merging occurs, and merged
// parents are inserted in creation order after the leaves. Thus, the shape
// of the tree is deterministic for any given model.
//
// The model must contain the EOF symbol with a count of at least one and
// must not contain any symbols outside the range [0, EOF]; otherwise,
// ErrCorrupt is returned.
func BuildTree(m FrequencyModel) (*Node, error) {
	if m[EOF] < 1 {
		return nil, ErrCorrupt
	}

	var h nodeHeap
	for i, sym := range m.Symbols() {
		if sym < 0 || sym > EOF {
			return nil, ErrCorrupt
		}
		heap.Push(&h, heapEntry{&Node{Sym: sym, Count: m[sym]}, i})
	}
	for seq := len(h); len(h) > 1; seq++ {
		zero := heap.Pop(&h).(heapEntry).node
		one := heap.Pop(&h).(heapEntry).node
		heap.Push(&h, heapEntry{&Node{
			Sym:   Internal,
			Count: zero.Count + one.Count,
			Zero:  zero,
			One:   one,
		}, seq})
	}

	root := h[0].node
	if internal.Debug || internal.GoFuzz {
		verifyTree(root)
	}
	return root, nil
}

// verifyTree panics if the tree violates its structural invariants.
// The call above is compiled in only for debug and fuzz builds.
func verifyTree(n *Node) {
	if n.Leaf() {
		if n.Sym < 0 || n.Sym > EOF {
			panic("huff: leaf with reserved symbol")
		}
		return
	}
	if n.Sym != Internal || n.Zero == nil || n.One == nil {
		panic("huff: malformed internal node")
	}
	verifyTree(n.Zero)
	verifyTree(n.One)
	if n.Count != n.Zero.Count+n.One.Count {
		panic("huff: mismatching subtree counts")
	}
}

// heapEntry pairs a subtree with the sequence number of its insertion,
// which serves as the tie-breaker between equal counts.
type heapEntry struct {
	node *Node
	seq  int
}

type nodeHeap []heapEntry

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].node.Count != h[j].node.Count {
		return h[i].node.Count < h[j].node.Count
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(v interface{}) { *h = append(*h, v.(heapEntry)) }
func (h *nodeHeap) Pop() interface{} {
	v := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return v
}

var _ heap.Interface = (*nodeHeap)(nil)
