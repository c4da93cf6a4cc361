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

// Package avl implements an ordered set of unique keys stored in a
// height-balanced (AVL) binary search tree.
//
// Nodes live in an arena owned by the tree and refer to their children by
// integer handle. Insert, Delete and Search run in O(log n).
package avl

import "cmp"

// Tree is an AVL tree of unique keys ordered by cmp.Compare.
//
// The zero value is an empty tree ready to use.
//
// Tree is not safe for concurrent use by multiple goroutines. If multiple
// goroutines access a tree concurrently, and at least one of them modifies the
// tree, access must be synchronized externally.
type Tree[K cmp.Ordered] struct {
	nodes []node[K] // nodes[0] is the null slot
	free  []nodeID
	root  nodeID
	size  int
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{nodes: make([]node[K], 1)}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// Height returns the height of the tree; 0 when empty.
func (t *Tree[K]) Height() int {
	return t.height(t.root)
}

// Root returns the key stored at the root.
func (t *Tree[K]) Root() (K, bool) {
	if t.root == none {
		var zero K
		return zero, false
	}
	return t.nodes[t.root].key, true
}

// Clear removes all keys and drops the arena.
func (t *Tree[K]) Clear() {
	*t = Tree[K]{}
}

// Insert adds key to the tree and reports whether it was added. Inserting a
// key that is already present leaves the tree untouched.
func (t *Tree[K]) Insert(key K) bool {
	root, inserted := t.insert(t.root, key)
	t.root = root
	return inserted
}

func (t *Tree[K]) insert(id nodeID, key K) (nodeID, bool) {
	if id == none {
		return t.alloc(key), true
	}

	// alloc may grow the arena, so the child handle is stored only after the
	// recursive call has returned.
	switch c := cmp.Compare(key, t.nodes[id].key); {
	case c < 0:
		child, inserted := t.insert(t.nodes[id].left, key)
		if !inserted {
			return id, false
		}
		t.nodes[id].left = child
	case c > 0:
		child, inserted := t.insert(t.nodes[id].right, key)
		if !inserted {
			return id, false
		}
		t.nodes[id].right = child
	default:
		return id, false
	}

	t.updateHeight(id)
	return t.rebalanceInsert(id, key), true
}

// Delete removes key from the tree and reports whether it was present.
// Deleting a missing key is a no-op.
func (t *Tree[K]) Delete(key K) bool {
	root, deleted := t.delete(t.root, key)
	t.root = root
	return deleted
}

func (t *Tree[K]) delete(id nodeID, key K) (nodeID, bool) {
	if id == none {
		return none, false
	}

	switch c := cmp.Compare(key, t.nodes[id].key); {
	case c < 0:
		child, deleted := t.delete(t.nodes[id].left, key)
		if !deleted {
			return id, false
		}
		t.nodes[id].left = child
	case c > 0:
		child, deleted := t.delete(t.nodes[id].right, key)
		if !deleted {
			return id, false
		}
		t.nodes[id].right = child
	default:
		n := &t.nodes[id]
		switch {
		case n.left == none && n.right == none:
			t.release(id)
			return none, true
		case n.left == none:
			child := n.right
			t.release(id)
			return child, true
		case n.right == none:
			child := n.left
			t.release(id)
			return child, true
		}

		// Two children: take over the successor's key and remove the
		// successor instead. It has no left child, so the recursion ends
		// in one of the cases above.
		succ := t.nodes[t.findMin(n.right)].key
		n.key = succ
		child, _ := t.delete(n.right, succ)
		t.nodes[id].right = child
	}

	t.updateHeight(id)
	return t.rebalance(id), true
}
