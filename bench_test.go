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
	"bytes"
	"strings"
	"testing"

	"github.com/cybrota/avlindex/index"
	"github.com/stretchr/testify/require"
)

func TestAVLHeightBound(t *testing.T) {
	// minimum node count for each height: N(h) = N(h-1) + N(h-2) + 1
	tests := []struct{ n, bound int }{
		{0, 0}, {1, 1}, {2, 2}, {4, 3}, {7, 4}, {12, 5}, {20, 6}, {33, 7},
	}
	for _, tc := range tests {
		require.Equal(t, tc.bound, avlHeightBound(tc.n), "n=%d", tc.n)
	}
}

func TestRunBench(t *testing.T) {
	res, err := runBench(3000, 42, false)
	require.NoError(t, err)
	require.Equal(t, 3000, res.Inserted)
	require.Equal(t, 1500, res.Deleted)
	require.Equal(t, 1500, res.Remaining)
	require.LessOrEqual(t, res.Height, res.MaxHeight)
	require.GreaterOrEqual(t, res.Height, 12)

	_, err = runBench(0, 1, false)
	require.Error(t, err)
}

func TestRunIndex(t *testing.T) {
	input := `git status
git commit -m "wip"

ls -la
git status
go test ./...
`
	var out bytes.Buffer
	require.NoError(t, runIndex(strings.NewReader(input), &out, index.DefaultConfig(), "git", true))
	require.Equal(t, "git commit -m \"wip\"\ngit status\n"+
		"lines 6, keys 4, height 3, matches 2, filter 65536 bits/4 hashes\n", out.String())

	out.Reset()
	require.NoError(t, runIndex(strings.NewReader(input), &out, index.DefaultConfig(), "", false))
	require.Equal(t, "git commit -m \"wip\"\ngit status\ngo test ./...\nls -la\n", out.String())

	out.Reset()
	require.NoError(t, runIndex(strings.NewReader(input), &out, index.DefaultConfig(), "docker", false))
	require.Empty(t, out.String())
}
