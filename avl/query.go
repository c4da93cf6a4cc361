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

import "cmp"

// Search reports whether key is stored in the tree.
func (t *Tree[K]) Search(key K) bool {
	return t.find(key) != none
}

// Contains is an alias of Search.
func (t *Tree[K]) Contains(key K) bool {
	return t.find(key) != none
}

func (t *Tree[K]) find(key K) nodeID {
	id := t.root
	for id != none {
		n := &t.nodes[id]
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			id = n.left
		case c > 0:
			id = n.right
		default:
			return id
		}
	}
	return none
}

// findMin requires id != none.
func (t *Tree[K]) findMin(id nodeID) nodeID {
	for t.nodes[id].left != none {
		id = t.nodes[id].left
	}
	return id
}

// findMax requires id != none.
func (t *Tree[K]) findMax(id nodeID) nodeID {
	for t.nodes[id].right != none {
		id = t.nodes[id].right
	}
	return id
}

func (t *Tree[K]) keyOf(id nodeID) (K, bool) {
	if id == none {
		var zero K
		return zero, false
	}
	return t.nodes[id].key, true
}

// Min returns the smallest key. The bool is false when the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	if t.root == none {
		return t.keyOf(none)
	}
	return t.keyOf(t.findMin(t.root))
}

// Max returns the largest key. The bool is false when the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	if t.root == none {
		return t.keyOf(none)
	}
	return t.keyOf(t.findMax(t.root))
}

// Successor returns the next larger key after key. The bool is false when
// key is not in the tree or is the largest key.
func (t *Tree[K]) Successor(key K) (K, bool) {
	// last ancestor where the descent went left
	turn := none
	id := t.root
	for id != none {
		n := &t.nodes[id]
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			turn = id
			id = n.left
		case c > 0:
			id = n.right
		default:
			if n.right != none {
				return t.keyOf(t.findMin(n.right))
			}
			return t.keyOf(turn)
		}
	}
	return t.keyOf(none)
}

// Predecessor returns the next smaller key before key. The bool is false
// when key is not in the tree or is the smallest key.
func (t *Tree[K]) Predecessor(key K) (K, bool) {
	turn := none
	id := t.root
	for id != none {
		n := &t.nodes[id]
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			id = n.left
		case c > 0:
			turn = id
			id = n.right
		default:
			if n.left != none {
				return t.keyOf(t.findMax(n.left))
			}
			return t.keyOf(turn)
		}
	}
	return t.keyOf(none)
}

// Floor returns the greatest key less than or equal to key.
func (t *Tree[K]) Floor(key K) (K, bool) {
	best := none
	id := t.root
	for id != none {
		n := &t.nodes[id]
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			id = n.left
		case c > 0:
			best = id
			id = n.right
		default:
			return n.key, true
		}
	}
	return t.keyOf(best)
}

// Ceiling returns the least key greater than or equal to key.
func (t *Tree[K]) Ceiling(key K) (K, bool) {
	best := none
	id := t.root
	for id != none {
		n := &t.nodes[id]
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			best = id
			id = n.left
		case c > 0:
			id = n.right
		default:
			return n.key, true
		}
	}
	return t.keyOf(best)
}
