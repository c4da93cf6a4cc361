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
	"cmp"
	"iter"
)

// The sequences below walk the tree each time they are ranged over. The tree
// must not be modified while a walk is in progress.

// InOrder yields the keys in ascending order.
func (t *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.inorder(t.root, yield)
	}
}

// PreOrder yields each key before the keys of its subtrees.
func (t *Tree[K]) PreOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.preorder(t.root, yield)
	}
}

// PostOrder yields each key after the keys of its subtrees.
func (t *Tree[K]) PostOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.postorder(t.root, yield)
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.InOrder() {
		keys = append(keys, k)
	}
	return keys
}

func (t *Tree[K]) inorder(id nodeID, yield func(K) bool) bool {
	if id == none {
		return true
	}
	n := &t.nodes[id]
	return t.inorder(n.left, yield) && yield(n.key) && t.inorder(n.right, yield)
}

func (t *Tree[K]) preorder(id nodeID, yield func(K) bool) bool {
	if id == none {
		return true
	}
	n := &t.nodes[id]
	return yield(n.key) && t.preorder(n.left, yield) && t.preorder(n.right, yield)
}

func (t *Tree[K]) postorder(id nodeID, yield func(K) bool) bool {
	if id == none {
		return true
	}
	n := &t.nodes[id]
	return t.postorder(n.left, yield) && t.postorder(n.right, yield) && yield(n.key)
}

// Range yields, in ascending order, every key k with lo <= k < hi.
func (t *Tree[K]) Range(lo, hi K) iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ascend(t.root, lo, &hi, yield)
	}
}

// From yields, in ascending order, every key k with k >= lo.
func (t *Tree[K]) From(lo K) iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ascend(t.root, lo, nil, yield)
	}
}

// ascend visits the keys of the subtree at id within [lo, hi), skipping
// subtrees that lie entirely outside the bounds. A nil hi is unbounded.
func (t *Tree[K]) ascend(id nodeID, lo K, hi *K, yield func(K) bool) bool {
	if id == none {
		return true
	}
	n := &t.nodes[id]

	aboveLo := cmp.Compare(n.key, lo) >= 0
	belowHi := hi == nil || cmp.Less(n.key, *hi)

	if aboveLo && !t.ascend(n.left, lo, hi, yield) {
		return false
	}
	if aboveLo && belowHi && !yield(n.key) {
		return false
	}
	if belowHi {
		return t.ascend(n.right, lo, hi, yield)
	}
	return true
}
