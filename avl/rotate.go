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

// Every rotation returns the new root of the rotated subtree. Linking it into
// the former parent (or the tree root) is the caller's job.

func (t *Tree[K]) rotateLeft(id nodeID) nodeID {
	pivot := t.nodes[id].right
	if pivot == none {
		return id
	}

	t.nodes[id].right = t.nodes[pivot].left
	t.nodes[pivot].left = id

	// id now hangs below pivot, so its height has to be fixed first.
	t.updateHeight(id)
	t.updateHeight(pivot)

	return pivot
}

func (t *Tree[K]) rotateRight(id nodeID) nodeID {
	pivot := t.nodes[id].left
	if pivot == none {
		return id
	}

	t.nodes[id].left = t.nodes[pivot].right
	t.nodes[pivot].right = id

	t.updateHeight(id)
	t.updateHeight(pivot)

	return pivot
}

func (t *Tree[K]) rotateLeftRight(id nodeID) nodeID {
	t.nodes[id].left = t.rotateLeft(t.nodes[id].left)
	return t.rotateRight(id)
}

func (t *Tree[K]) rotateRightLeft(id nodeID) nodeID {
	t.nodes[id].right = t.rotateRight(t.nodes[id].right)
	return t.rotateLeft(id)
}

// rebalanceInsert restores balance at id on the way back from inserting key.
// The case is picked by comparing key with the heavy child, which is only
// valid right after an insert of key below id.
func (t *Tree[K]) rebalanceInsert(id nodeID, key K) nodeID {
	bf := t.balanceFactor(id)
	switch {
	case bf > 1:
		if cmp.Less(key, t.nodes[t.nodes[id].left].key) {
			return t.rotateRight(id)
		}
		return t.rotateLeftRight(id)
	case bf < -1:
		if cmp.Less(t.nodes[t.nodes[id].right].key, key) {
			return t.rotateLeft(id)
		}
		return t.rotateRightLeft(id)
	}
	return id
}

// rebalance restores balance at id using the balance factor of the heavy
// child. Deletion has no inserted key to compare against, so it uses this.
func (t *Tree[K]) rebalance(id nodeID) nodeID {
	bf := t.balanceFactor(id)

	// Left-heavy
	if bf > 1 {
		if t.balanceFactor(t.nodes[id].left) >= 0 {
			return t.rotateRight(id)
		}
		return t.rotateLeftRight(id)
	}

	// Right-heavy
	if bf < -1 {
		if t.balanceFactor(t.nodes[id].right) <= 0 {
			return t.rotateLeft(id)
		}
		return t.rotateRightLeft(id)
	}

	return id
}
