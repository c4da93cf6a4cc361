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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlindex %s**

An in-memory ordered index built on a self-balancing AVL tree.
Every insert and delete rebalances the tree with rotations, so lookups stay logarithmic.

Built with Go %s

# 1. Commands
* demo: seed a tree with the configured keys and print a traversal
* exec: run an operation script from a file or stdin
* index: load lines into a string index and search it by prefix
* bench: insert and delete random keys while checking the tree invariants
* config: show (and create) ~/.avlindex.yaml

# 2. Script operations
* insert K..., delete K..., search K...
* min, max, succ K, pred K, floor K, ceil K
* range LO HI, print [in|pre|post], tree, check, len, height
* Lines starting with # are comments. Keys may be quoted like shell words.

# 3. Semantics
* Inserting a key that is already present does nothing
* Deleting a missing key does nothing
* succ and pred print none when the key is missing or has no neighbour

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
