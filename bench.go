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
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/cybrota/avlindex/avl"
	"github.com/schollz/progressbar/v3"
)

// Full validation is O(n), so it only runs every checkEvery operations.
const checkEvery = 1024

type benchResult struct {
	Inserted   int
	Deleted    int
	Remaining  int
	Height     int
	MaxHeight  int
	InsertTime time.Duration
	DeleteTime time.Duration
}

// avlHeightBound is the largest height an AVL tree with n nodes can have.
func avlHeightBound(n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Floor(1.4405*math.Log2(float64(n)+2) - 0.3277))
}

// runBench inserts count distinct keys in random order, deletes half of
// them, and checks the tree invariants along the way.
func runBench(count int, seed int64, showProgress bool) (benchResult, error) {
	var res benchResult
	if count <= 0 {
		return res, fmt.Errorf("count must be positive, got %d", count)
	}

	rng := rand.New(rand.NewSource(seed))
	keys := rng.Perm(count)
	deletes := count / 2

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(count+deletes,
			progressbar.OptionSetDescription("🌳 Inserting..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
	}

	tree := avl.New[int]()

	start := time.Now()
	for i, k := range keys {
		if tree.Insert(k) {
			res.Inserted++
		}
		if bar != nil {
			bar.Add(1)
		}
		if (i+1)%checkEvery == 0 {
			if err := tree.Validate(); err != nil {
				return res, fmt.Errorf("after %d inserts: %w", i+1, err)
			}
		}
	}
	res.InsertTime = time.Since(start)

	if err := tree.Validate(); err != nil {
		return res, fmt.Errorf("after inserts: %w", err)
	}
	res.Height = tree.Height()
	res.MaxHeight = avlHeightBound(tree.Len())
	if res.Height > res.MaxHeight {
		return res, fmt.Errorf("%w: height %d exceeds bound %d for %d keys", avl.ErrBalance, res.Height, res.MaxHeight, tree.Len())
	}

	if bar != nil {
		bar.Describe("🌳 Deleting...")
	}
	start = time.Now()
	for i, k := range keys[:deletes] {
		if tree.Delete(k) {
			res.Deleted++
		}
		if bar != nil {
			bar.Add(1)
		}
		if (i+1)%checkEvery == 0 {
			if err := tree.Validate(); err != nil {
				return res, fmt.Errorf("after %d deletes: %w", i+1, err)
			}
		}
	}
	res.DeleteTime = time.Since(start)

	if bar != nil {
		bar.Finish()
	}

	if err := tree.Validate(); err != nil {
		return res, fmt.Errorf("after deletes: %w", err)
	}
	res.Remaining = tree.Len()

	for _, k := range keys[deletes:] {
		if !tree.Search(k) {
			return res, fmt.Errorf("key %d lost after deletes", k)
		}
	}

	log.Printf("bench: %d inserts in %s, %d deletes in %s", res.Inserted, res.InsertTime, res.Deleted, res.DeleteTime)
	return res, nil
}
