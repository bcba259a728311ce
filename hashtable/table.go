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

// Package hashtable implements a string-keyed map of float64 values with a
// fixed number of buckets and separate chaining.
package hashtable

import (
	"errors"

	"github.com/willf/bloom"
)

// DefaultSize is the bucket count used when none is configured.
const DefaultSize = 101

var ErrInvalidSize = errors.New("hashtable: bucket count must be positive")

// Entry is one key/value pair in a bucket chain.
type Entry struct {
	Key   string
	Value float64
	next  *Entry
}

// Next returns the following entry of the same chain, or nil.
func (e *Entry) Next() *Entry {
	return e.next
}

// Table is a chained hash table. The bucket count is fixed at construction.
// A key is stored in at most one entry across the whole table.
type Table struct {
	buckets  []*Entry
	count    int
	fullScan bool
	filter   *bloom.BloomFilter
}

type Option func(*Table)

// WithFullScan makes Search walk every chain of every bucket instead of
// only the chain the key hashes to. Both give the same answer because keys
// are unique; the full scan is kept for parity with tables whose entries
// may have been placed under a different hash.
func WithFullScan() Option {
	return func(t *Table) {
		t.fullScan = true
	}
}

// WithBloomFilter puts a bloom filter of the given size in front of Search
// so that most lookups of absent keys skip the chain walk. Deleted keys
// stay in the filter until DeleteAll; they only cost a walk.
func WithBloomFilter(bits, hashes uint) Option {
	return func(t *Table) {
		if bits > 0 && hashes > 0 {
			t.filter = bloom.New(bits, hashes)
		}
	}
}

// New returns an empty table with size buckets.
func New(size int, opts ...Option) (*Table, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	t := &Table{buckets: make([]*Entry, size)}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Hash maps key onto a bucket index in [0, size): one plus the sum of the
// key's bytes, modulo size. Keys that are permutations of each other
// always collide.
func Hash(key string, size int) int {
	result := 1
	for i := 0; i < len(key); i++ {
		result += int(key[i])
	}
	return result % size
}

func (t *Table) hash(key string) int {
	return Hash(key, len(t.buckets))
}

// Init empties every bucket. Entries still linked are dropped, not
// released; use DeleteAll on a populated table.
func (t *Table) Init() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.count = 0
	if t.filter != nil {
		t.filter.ClearAll()
	}
}

// Search returns the entry stored under key, or nil.
func (t *Table) Search(key string) *Entry {
	if t.filter != nil && !t.filter.TestString(key) {
		return nil
	}

	if !t.fullScan {
		return findInChain(t.buckets[t.hash(key)], key)
	}

	for _, head := range t.buckets {
		if e := findInChain(head, key); e != nil {
			return e
		}
	}
	return nil
}

func findInChain(e *Entry, key string) *Entry {
	for ; e != nil; e = e.next {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// Insert stores value under key. An existing entry is updated in place;
// otherwise a new entry is put at the head of the key's chain.
func (t *Table) Insert(key string, value float64) {
	if e := t.Search(key); e != nil {
		e.Value = value
		return
	}

	i := t.hash(key)
	t.buckets[i] = &Entry{Key: key, Value: value, next: t.buckets[i]}
	t.count++
	if t.filter != nil {
		t.filter.AddString(key)
	}
}

// Get returns a pointer to the value stored under key, or nil. The
// pointer stays valid until the entry is deleted.
func (t *Table) Get(key string) *float64 {
	e := t.Search(key)
	if e == nil {
		return nil
	}
	return &e.Value
}

// Delete unlinks the entry stored under key. It walks only the key's own
// chain and does nothing when the key is absent.
func (t *Table) Delete(key string) {
	i := t.hash(key)

	var prev *Entry
	for e := t.buckets[i]; e != nil; prev, e = e, e.next {
		if e.Key != key {
			continue
		}
		if prev == nil {
			t.buckets[i] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		t.count--
		return
	}
}

// DeleteAll releases every entry and leaves the table as New returned it.
func (t *Table) DeleteAll() {
	for i, e := range t.buckets {
		for e != nil {
			next := e.next
			e.next = nil
			e = next
		}
		t.buckets[i] = nil
	}
	t.count = 0
	if t.filter != nil {
		t.filter.ClearAll()
	}
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return t.count
}

// Size returns the bucket count.
func (t *Table) Size() int {
	return len(t.buckets)
}

// Bucket returns the head of chain i, or nil when i is out of range.
func (t *Table) Bucket(i int) *Entry {
	if i < 0 || i >= len(t.buckets) {
		return nil
	}
	return t.buckets[i]
}

// Each calls fn for every entry, bucket by bucket and head to tail within
// a chain. fn must not insert or delete.
func (t *Table) Each(fn func(bucket int, e *Entry)) {
	for i, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			fn(i, e)
		}
	}
}
