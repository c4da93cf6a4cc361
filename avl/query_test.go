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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	tree := New[int]()
	_, ok := tree.Min()
	require.False(t, ok)
	_, ok = tree.Max()
	require.False(t, ok)

	tree = build(40, 20, 60, 10, 30, 50, 70)
	lo, ok := tree.Min()
	require.True(t, ok)
	require.Equal(t, 10, lo)
	hi, ok := tree.Max()
	require.True(t, ok)
	require.Equal(t, 70, hi)
}

func TestSuccessorPredecessor(t *testing.T) {
	tree := New[int]()
	for i := 1; i <= 10; i++ {
		tree.Insert(i)
	}

	for i := 1; i < 10; i++ {
		next, ok := tree.Successor(i)
		require.True(t, ok)
		require.Equal(t, i+1, next)
	}
	for i := 2; i <= 10; i++ {
		prev, ok := tree.Predecessor(i)
		require.True(t, ok)
		require.Equal(t, i-1, prev)
	}

	_, ok := tree.Successor(10)
	require.False(t, ok, "largest key has no successor")
	_, ok = tree.Predecessor(1)
	require.False(t, ok, "smallest key has no predecessor")

	_, ok = tree.Successor(42)
	require.False(t, ok, "missing key")
	_, ok = tree.Predecessor(0)
	require.False(t, ok, "missing key")

	empty := New[int]()
	_, ok = empty.Successor(1)
	require.False(t, ok)
	_, ok = empty.Predecessor(1)
	require.False(t, ok)
}

func TestSuccessorThroughAncestor(t *testing.T) {
	// 40(20(10,25),50)
	tree := build(10, 20, 30, 40, 50, 25)
	tree.Delete(30)

	next, ok := tree.Successor(25)
	require.True(t, ok)
	require.Equal(t, 40, next)

	prev, ok := tree.Predecessor(50)
	require.True(t, ok)
	require.Equal(t, 40, prev)

	prev, ok = tree.Predecessor(40)
	require.True(t, ok)
	require.Equal(t, 25, prev)
}

func TestSearchAfterDelete(t *testing.T) {
	tree := build(5, 3, 8, 1, 4, 7, 9)
	require.True(t, tree.Search(4))
	require.True(t, tree.Contains(9))
	require.False(t, tree.Search(6))

	tree.Delete(4)
	tree.Delete(5)
	require.False(t, tree.Search(4))
	require.False(t, tree.Search(5))
	for _, k := range []int{1, 3, 7, 8, 9} {
		require.True(t, tree.Search(k), "key %d", k)
	}
}

func TestFloorCeiling(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 100; i += 2 {
		tree.Insert(i)
	}

	tests := []struct {
		key            int
		floor, ceiling int
		hasFloor       bool
		hasCeiling     bool
	}{
		{key: 15, floor: 14, ceiling: 16, hasFloor: true, hasCeiling: true},
		{key: 16, floor: 16, ceiling: 16, hasFloor: true, hasCeiling: true},
		{key: 0, floor: 0, ceiling: 0, hasFloor: true, hasCeiling: true},
		{key: -1, ceiling: 0, hasCeiling: true},
		{key: 99, floor: 98, hasFloor: true},
	}
	for _, tc := range tests {
		floor, ok := tree.Floor(tc.key)
		require.Equal(t, tc.hasFloor, ok, "floor(%d)", tc.key)
		require.Equal(t, tc.floor, floor, "floor(%d)", tc.key)

		ceiling, ok := tree.Ceiling(tc.key)
		require.Equal(t, tc.hasCeiling, ok, "ceiling(%d)", tc.key)
		require.Equal(t, tc.ceiling, ceiling, "ceiling(%d)", tc.key)
	}
}

func TestTraversals(t *testing.T) {
	tree := build(10, 20, 30, 40, 50, 25)

	require.Equal(t, []int{10, 20, 25, 30, 40, 50}, collect(tree.InOrder()))
	require.Equal(t, []int{30, 20, 10, 25, 40, 50}, collect(tree.PreOrder()))
	require.Equal(t, []int{10, 25, 20, 50, 40, 30}, collect(tree.PostOrder()))

	t.Run("restartable", func(t *testing.T) {
		seq := tree.InOrder()
		require.Equal(t, collect(seq), collect(seq))
	})

	t.Run("early stop", func(t *testing.T) {
		var got []int
		for k := range tree.PostOrder() {
			got = append(got, k)
			if len(got) == 3 {
				break
			}
		}
		require.Equal(t, []int{10, 25, 20}, got)
	})

	t.Run("empty", func(t *testing.T) {
		empty := New[int]()
		require.Empty(t, collect(empty.InOrder()))
		require.Empty(t, collect(empty.PreOrder()))
		require.Empty(t, collect(empty.PostOrder()))
	})
}

func TestRange(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 100; i += 2 {
		tree.Insert(i)
	}

	require.Equal(t, []int{10, 12, 14, 16, 18}, collect(tree.Range(10, 20)))
	require.Equal(t, []int{12, 14, 16, 18, 20}, collect(tree.Range(11, 21)))
	require.Empty(t, collect(tree.Range(20, 20)))
	require.Empty(t, collect(tree.Range(200, 300)))
	require.Equal(t, []int{90, 92, 94, 96, 98}, collect(tree.From(89)))
	require.Equal(t, tree.Keys(), collect(tree.From(-5)))

	var got []int
	for k := range tree.From(50) {
		if k > 56 {
			break
		}
		got = append(got, k)
	}
	require.Equal(t, []int{50, 52, 54, 56}, got)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New[int]().Fprint(&buf))
	require.Equal(t, "(empty)\n", buf.String())

	buf.Reset()
	require.NoError(t, build(10, 20, 30, 5).Fprint(&buf))
	require.Equal(t, "20 (h=3)\n"+
		"├── L 10 (h=2)\n"+
		"│   └── L 5 (h=1)\n"+
		"└── R 30 (h=1)\n", buf.String())
}

func TestWalk(t *testing.T) {
	tree := build(10, 20, 30, 5)

	type visit struct {
		key, height, depth int
		side               string
	}
	var got []visit
	tree.Walk(func(key, height, depth int, side string) bool {
		got = append(got, visit{key, height, depth, side})
		return true
	})
	require.Equal(t, []visit{
		{20, 3, 0, ""},
		{10, 2, 1, "L"},
		{5, 1, 2, "L"},
		{30, 1, 1, "R"},
	}, got)
}
