// cache.go -
// Copyright (C) 2016  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package cache stores the results of formula conversions in memory,
// so that formulas which occur repeatedly are only converted once.
package cache

import (
	"encoding/base64"
	"flag"
	"log"
	"sort"
	"sync"

	"github.com/dustin/go-humanize"
	"golang.org/x/crypto/sha3"
)

var (
	noCache = flag.Bool("formula-no-cache", false,
		"disable the formula conversion cache")
	cacheLimit = flag.Int64("formula-cache-limit", 8<<20,
		"maximum size of the formula conversion cache in bytes")
)

// Cache maps conversion keys to converted formulas.  The total size of
// the stored data is kept below a limit by discarding the least
// recently used entries.  A Cache can be used concurrently.  All
// methods can be called on a nil *Cache, which behaves like an empty
// cache that discards everything.
type Cache struct {
	name  string
	limit int64

	mu      sync.Mutex
	entries map[string]*entry
	total   int64
	clock   uint64
	hits    int
	misses  int
	pruned  int
}

// New creates a cache using the limit given by the -formula-cache-limit
// command line flag.  If caching is disabled with -formula-no-cache,
// nil is returned.
func New(name string) *Cache {
	if *noCache {
		return nil
	}
	return NewWithLimit(name, *cacheLimit)
}

// NewWithLimit creates a cache which holds up to limit bytes of data.
func NewWithLimit(name string, limit int64) *Cache {
	return &Cache{
		name:    name,
		limit:   limit,
		entries: make(map[string]*entry),
	}
}

// Get returns the value previously stored for key.
func (c *Cache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	hash := hashKey(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[hash]
	if !ok {
		c.misses++
		return "", false
	}
	c.hits++
	c.clock++
	e.Used = c.clock
	return e.Value, true
}

// Put stores value under the given key.  Any preexisting value for
// the same key is replaced.
func (c *Cache) Put(key, value string) {
	if c == nil {
		return
	}
	hash := hashKey(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[hash]; ok {
		c.total -= old.Size
	}
	c.clock++
	e := &entry{
		Value: value,
		Size:  int64(len(hash) + len(value)),
		Used:  c.clock,
	}
	c.entries[hash] = e
	c.total += e.Size
	if c.total > c.limit {
		c.prune(c.limit * 3 / 4)
	}
}

// Len returns the number of entries in the cache.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Size returns the total number of bytes stored in the cache.
func (c *Cache) Size() int64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Prune removes the least recently used entries until at most limit
// bytes are left in the cache.  If limit < 0, all entries are
// removed.  The number of removed entries is returned.
func (c *Cache) Prune(limit int64) int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prune(limit)
}

func (c *Cache) prune(limit int64) int {
	var of oldestFirst
	for hash, e := range c.entries {
		of = append(of, pruneEntry{key: hash, entry: e})
	}
	sort.Sort(of)

	var pruneCount int
	var pruneBytes int64
	for _, pe := range of {
		if c.total <= limit {
			break
		}
		delete(c.entries, pe.key)
		pruneCount++
		pruneBytes += pe.Size
		c.total -= pe.Size
	}
	if pruneCount > 0 {
		log.Printf("cache %s: removed %s (%d objects)",
			c.name, humanize.Bytes(uint64(pruneBytes)), pruneCount)
	}
	c.pruned += pruneCount
	return pruneCount
}

// Close logs usage statistics and releases all entries.
func (c *Cache) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hits+c.misses > 0 {
		log.Printf("cache %s: %s in %d objects, %d hits, %d misses, %d pruned",
			c.name, humanize.Bytes(uint64(c.total)), len(c.entries),
			c.hits, c.misses, c.pruned)
	}
	c.entries = make(map[string]*entry)
	c.total = 0
}

func hashKey(key string) string {
	h := sha3.NewShake128()
	h.Write([]byte(key))
	buf := make([]byte, 15)
	h.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}

type entry struct {
	Value string
	Size  int64
	Used  uint64
}

type pruneEntry struct {
	key string
	*entry
}

type oldestFirst []pruneEntry

func (of oldestFirst) Len() int { return len(of) }
func (of oldestFirst) Less(i, j int) bool {
	return of[i].Used < of[j].Used
}
func (of oldestFirst) Swap(i, j int) { of[i], of[j] = of[j], of[i] }
