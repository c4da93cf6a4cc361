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

package main

import (
	"fmt"
	"io"

	"github.com/cybrota/avlindex/avl"
)

// runDemo seeds a tree with keys and prints it in the requested order.
func runDemo(w io.Writer, keys []int, order string, showTree bool) error {
	tree := avl.New[int]()
	for _, k := range keys {
		tree.Insert(k)
	}

	name, seq, err := traversal(tree, order)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s: %s\n", name, formatKeys(seq)); err != nil {
		return err
	}

	if showTree {
		return tree.Fprint(w)
	}
	return nil
}
