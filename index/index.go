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

// Package index is an ordered string index on top of an AVL tree. A bloom
// filter answers most negative lookups without touching the tree and prefix
// search results are cached until the next mutation.
package index

import (
	"slices"
	"strings"
	"time"

	"github.com/cybrota/avlindex/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

const (
	DefaultBloomSize   = 1 << 16
	DefaultBloomHashes = 4
	// Prefix results are dropped on every mutation anyway; the TTL only
	// bounds how long an idle index keeps them around.
	DefaultCacheTTL = 30 * time.Minute
)

type Config struct {
	BloomSize   uint          `yaml:"bloom_size"`
	BloomHashes uint          `yaml:"bloom_hashes"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
}

func DefaultConfig() Config {
	return Config{
		BloomSize:   DefaultBloomSize,
		BloomHashes: DefaultBloomHashes,
		CacheTTL:    DefaultCacheTTL,
	}
}

// Stats is a snapshot of the index internals.
type Stats struct {
	Keys           int
	Height         int
	CachedPrefixes int
	FilterBits     uint
	FilterHashes   uint
}

// Index is not safe for concurrent use.
type Index struct {
	tree     *avl.Tree[string]
	filter   *bloom.BloomFilter
	prefixes *cache.Cache
	ttl      time.Duration
}

// New returns an empty index. Zero fields in cfg fall back to the defaults.
func New(cfg Config) *Index {
	def := DefaultConfig()
	if cfg.BloomSize == 0 {
		cfg.BloomSize = def.BloomSize
	}
	if cfg.BloomHashes == 0 {
		cfg.BloomHashes = def.BloomHashes
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = def.CacheTTL
	}

	return &Index{
		tree:     avl.New[string](),
		filter:   bloom.New(cfg.BloomSize, cfg.BloomHashes),
		prefixes: cache.New(cfg.CacheTTL, cfg.CacheTTL/6),
		ttl:      cfg.CacheTTL,
	}
}

// Insert adds key and reports whether it was new.
func (ix *Index) Insert(key string) bool {
	if !ix.tree.Insert(key) {
		return false
	}
	ix.filter.AddString(key)
	ix.prefixes.Flush()
	return true
}

// Delete removes key and reports whether it was present. The key stays in
// the bloom filter, which only costs a tree descent on later lookups.
func (ix *Index) Delete(key string) bool {
	if !ix.filter.TestString(key) {
		return false
	}
	if !ix.tree.Delete(key) {
		return false
	}
	ix.prefixes.Flush()
	return true
}

func (ix *Index) Contains(key string) bool {
	if !ix.filter.TestString(key) {
		return false
	}
	return ix.tree.Contains(key)
}

// SearchPrefix returns, in ascending order, every key starting with prefix.
func (ix *Index) SearchPrefix(prefix string) []string {
	if v, ok := ix.prefixes.Get(prefix); ok {
		return slices.Clone(v.([]string))
	}

	var results []string
	for key := range ix.tree.From(prefix) {
		if !strings.HasPrefix(key, prefix) {
			break
		}
		results = append(results, key)
	}

	ix.prefixes.Set(prefix, results, ix.ttl)
	return slices.Clone(results)
}

func (ix *Index) Min() (string, bool) { return ix.tree.Min() }
func (ix *Index) Max() (string, bool) { return ix.tree.Max() }

// Next returns the key following key in sort order.
func (ix *Index) Next(key string) (string, bool) {
	if !ix.filter.TestString(key) {
		return "", false
	}
	return ix.tree.Successor(key)
}

// Prev returns the key preceding key in sort order.
func (ix *Index) Prev(key string) (string, bool) {
	if !ix.filter.TestString(key) {
		return "", false
	}
	return ix.tree.Predecessor(key)
}

func (ix *Index) Len() int { return ix.tree.Len() }

func (ix *Index) Keys() []string { return ix.tree.Keys() }

// Validate checks the underlying tree invariants.
func (ix *Index) Validate() error { return ix.tree.Validate() }

func (ix *Index) Stats() Stats {
	return Stats{
		Keys:           ix.tree.Len(),
		Height:         ix.tree.Height(),
		CachedPrefixes: ix.prefixes.ItemCount(),
		FilterBits:     ix.filter.Cap(),
		FilterHashes:   ix.filter.K(),
	}
}
