// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"bytes"
	"testing"

	"github.com/dsnet/huff/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestBuildTree(t *testing.T) {
	vectors := []struct {
		model FrequencyModel
		tree  *Node
		err   error
	}{{
		// The EOF symbol is mandatory.
		model: FrequencyModel{},
		err:   ErrCorrupt,
	}, {
		model: FrequencyModel{'a': 2},
		err:   ErrCorrupt,
	}, {
		model: FrequencyModel{'a': 2, EOF: 0},
		err:   ErrCorrupt,
	}, {
		// Symbols beyond the alphabet cannot be coded.
		model: FrequencyModel{Internal: 1, EOF: 1},
		err:   ErrCorrupt,
	}, {
		model: FrequencyModel{-1: 1, EOF: 1},
		err:   ErrCorrupt,
	}, {
		// Degenerate model of an empty source.
		model: FrequencyModel{EOF: 1},
		tree:  &Node{Sym: EOF, Count: 1},
	}, {
		// Equal counts resolve by insertion order: 'b' and EOF merge first,
		// and that parent then loses the tie against the older 'a' leaf.
		model: FrequencyModel{'a': 2, 'b': 1, EOF: 1},
		tree: &Node{Sym: Internal, Count: 4,
			Zero: &Node{Sym: 'a', Count: 2},
			One: &Node{Sym: Internal, Count: 2,
				Zero: &Node{Sym: 'b', Count: 1},
				One:  &Node{Sym: EOF, Count: 1},
			},
		},
	}, {
		// A four-way tie pairs neighbors in ascending symbol order.
		model: FrequencyModel{'a': 1, 'b': 1, 'c': 1, EOF: 1},
		tree: &Node{Sym: Internal, Count: 4,
			Zero: &Node{Sym: Internal, Count: 2,
				Zero: &Node{Sym: 'a', Count: 1},
				One:  &Node{Sym: 'b', Count: 1},
			},
			One: &Node{Sym: Internal, Count: 2,
				Zero: &Node{Sym: 'c', Count: 1},
				One:  &Node{Sym: EOF, Count: 1},
			},
		},
	}, {
		// A dominant symbol ends up alone on the one branch.
		model: FrequencyModel{'a': 10, 'b': 1, EOF: 1},
		tree: &Node{Sym: Internal, Count: 12,
			Zero: &Node{Sym: Internal, Count: 2,
				Zero: &Node{Sym: 'b', Count: 1},
				One:  &Node{Sym: EOF, Count: 1},
			},
			One: &Node{Sym: 'a', Count: 10},
		},
	}}

	for i, v := range vectors {
		tree, err := BuildTree(v.model)
		if err != v.err {
			t.Errorf("test %d, error mismatch: got %v, want %v", i, err, v.err)
		}
		if diff := cmp.Diff(v.tree, tree); diff != "" {
			t.Errorf("test %d, tree mismatch (-want +got):\n%s", i, diff)
		}
	}
}

// TestTreeWeights tests the structural invariants that hold for any model:
// every internal node has two children and carries the sum of their counts,
// and every model symbol appears on exactly one leaf.
func TestTreeWeights(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 10; i++ {
		data := rand.Bytes(1 + rand.Intn(1<<12))
		model, err := BuildModel(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("test %d, BuildModel error: got %v", i, err)
		}
		tree, err := BuildTree(model)
		if err != nil {
			t.Fatalf("test %d, BuildTree error: got %v", i, err)
		}

		var leaves int
		var walk func(n *Node)
		walk = func(n *Node) {
			if n.Leaf() {
				leaves++
				if n.Sym == Internal {
					t.Errorf("test %d, leaf carries the internal marker", i)
				}
				if n.Count != model[n.Sym] {
					t.Errorf("test %d, symbol %v count mismatch: got %d, want %d", i, n.Sym, n.Count, model[n.Sym])
				}
				return
			}
			if n.Zero == nil || n.One == nil {
				t.Fatalf("test %d, internal node with a single child", i)
			}
			if n.Sym != Internal {
				t.Errorf("test %d, internal node carries symbol %v", i, n.Sym)
			}
			if n.Count != n.Zero.Count+n.One.Count {
				t.Errorf("test %d, count mismatch: got %d, want %d", i, n.Count, n.Zero.Count+n.One.Count)
			}
			walk(n.Zero)
			walk(n.One)
		}
		walk(tree)

		if leaves != len(model) {
			t.Errorf("test %d, leaf count mismatch: got %d, want %d", i, leaves, len(model))
		}
		if tree.Count != len(data)+1 {
			t.Errorf("test %d, root count mismatch: got %d, want %d", i, tree.Count, len(data)+1)
		}
	}
}
