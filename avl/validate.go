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
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("key order violated")
	ErrBalance = errors.New("node out of balance")
	ErrHeight  = errors.New("cached height is stale")
	ErrCount   = errors.New("node count mismatch")
)

// Validate walks the whole tree and returns the first broken invariant, or
// nil when the tree is a well-formed AVL tree.
func (t *Tree[K]) Validate() error {
	count, _, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: reachable %d, recorded %d", ErrCount, count, t.size)
	}
	if len(t.nodes) > 0 && len(t.nodes)-1 != t.size+len(t.free) {
		return fmt.Errorf("%w: %d slots, %d live, %d free", ErrCount, len(t.nodes)-1, t.size, len(t.free))
	}
	return nil
}

// check verifies the subtree at id, whose keys must lie strictly between lo
// and hi (nil bounds are open), and returns its node count and height.
func (t *Tree[K]) check(id nodeID, lo, hi *K) (int, int, error) {
	if id == none {
		return 0, 0, nil
	}
	n := &t.nodes[id]

	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not greater than %v", ErrOrder, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not less than %v", ErrOrder, n.key, *hi)
	}

	lc, lh, err := t.check(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.check(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}

	if h := max(lh, rh) + 1; n.height != h {
		return 0, 0, fmt.Errorf("%w: node %v has height %d, want %d", ErrHeight, n.key, n.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("%w: node %v has balance factor %d", ErrBalance, n.key, bf)
	}
	return lc + rc + 1, n.height, nil
}
