// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// Visit is called by Walk for every node in preorder. depth is 0 at the
// root; side is "L" or "R" for children and "" for the root.
type Visit[K any] func(key K, height, depth int, side string) bool

// Walk calls fn for every node in preorder, including its cached height and
// position. It stops early when fn returns false.
func (t *Tree[K]) Walk(fn Visit[K]) {
	t.walk(t.root, 0, "", fn)
}

func (t *Tree[K]) walk(id nodeID, depth int, side string, fn Visit[K]) bool {
	if id == none {
		return true
	}
	n := &t.nodes[id]
	return fn(n.key, n.height, depth, side) &&
		t.walk(n.left, depth+1, "L", fn) &&
		t.walk(n.right, depth+1, "R", fn)
}

// Fprint writes the tree structure to w, one node per line, with children
// indented below their parent.
//
//	20 (h=2)
//	├── L 10 (h=1)
//	└── R 30 (h=1)
func (t *Tree[K]) Fprint(w io.Writer) error {
	if t.root == none {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return t.fprint(w, t.root, "", "", "")
}

func (t *Tree[K]) fprint(w io.Writer, id nodeID, prefix, branch, side string) error {
	n := &t.nodes[id]

	label := fmt.Sprintf("%v (h=%d)", n.key, n.height)
	if side != "" {
		label = side + " " + label
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label); err != nil {
		return err
	}

	var childPrefix string
	switch branch {
	case "":
	case "└── ":
		childPrefix = prefix + strings.Repeat(" ", 4)
	default:
		childPrefix = prefix + "│   "
	}

	switch {
	case n.left != none && n.right != none:
		if err := t.fprint(w, n.left, childPrefix, "├── ", "L"); err != nil {
			return err
		}
		return t.fprint(w, n.right, childPrefix, "└── ", "R")
	case n.left != none:
		return t.fprint(w, n.left, childPrefix, "└── ", "L")
	case n.right != none:
		return t.fprint(w, n.right, childPrefix, "└── ", "R")
	}
	return nil
}
