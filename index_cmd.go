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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/avlindex/index"
)

// loadIndex inserts every non-blank line of r into a new index and returns
// it together with the number of lines read.
func loadIndex(r io.Reader, cfg index.Config) (*index.Index, int, error) {
	ix := index.New(cfg)

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lines := 0
	for scanner.Scan() {
		lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ix.Insert(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, lines, err
	}

	return ix, lines, nil
}

// runIndex loads r and prints every key starting with match, one per line.
func runIndex(r io.Reader, w io.Writer, cfg index.Config, match string, showStats bool) error {
	ix, lines, err := loadIndex(r, cfg)
	if err != nil {
		return fmt.Errorf("failed to load index: %w", err)
	}

	res := ix.SearchPrefix(match)
	if len(res) > 0 {
		if _, err := fmt.Fprintln(w, strings.Join(res, "\n")); err != nil {
			return err
		}
	}

	if showStats {
		st := ix.Stats()
		_, err := fmt.Fprintf(w, "lines %d, keys %d, height %d, matches %d, filter %d bits/%d hashes\n",
			lines, st.Keys, st.Height, len(res), st.FilterBits, st.FilterHashes)
		return err
	}
	return nil
}
