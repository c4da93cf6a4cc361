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

// nodeID is a handle into the node arena of a Tree.
type nodeID int32

// none is the null handle. Slot 0 of the arena is reserved for it and never
// holds a live node, so its height reads as 0.
const none nodeID = 0

type node[K cmp.Ordered] struct {
	key    K
	left   nodeID // owned
	right  nodeID // owned
	height int    // leaf = 1
}

// alloc places key in a fresh leaf, reusing a released slot when one exists.
func (t *Tree[K]) alloc(key K) nodeID {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node[K]{})
	}

	var id nodeID
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		id = nodeID(len(t.nodes))
		t.nodes = append(t.nodes, node[K]{})
	}

	t.nodes[id] = node[K]{key: key, height: 1}
	t.size++
	return id
}

// release destroys the node at id. The caller must already have unlinked it.
func (t *Tree[K]) release(id nodeID) {
	t.nodes[id] = node[K]{}
	t.free = append(t.free, id)
	t.size--
}

func (t *Tree[K]) height(id nodeID) int {
	if id == none {
		return 0
	}
	return t.nodes[id].height
}

func (t *Tree[K]) updateHeight(id nodeID) {
	n := &t.nodes[id]
	n.height = max(t.height(n.left), t.height(n.right)) + 1
}

func (t *Tree[K]) balanceFactor(id nodeID) int {
	if id == none {
		return 0
	}
	n := &t.nodes[id]
	return t.height(n.left) - t.height(n.right)
}
