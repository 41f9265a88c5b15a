// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package treemap implements an ordered map with unique keys on an
// unbalanced binary search tree.
package treemap

import (
	"github.com/anacrolix/generics"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/bst"
	"github.com/ajwerner/bst/internal/abstract"
)

type tree[K, V any] = abstract.Tree[K, V, abstract.Unique]

// Entry is a key and its value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map from K to V. Entries are ordered by key alone. It
// must be created with Make or MakeOrdered.
type Map[K, V any] struct {
	t tree[K, V]
}

// Make returns a map ordered by cmp holding entries. An entry whose key
// equals that of an earlier entry is dropped.
func Make[K, V any](cmp func(K, K) int, entries ...Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{t: abstract.MakeTree[K, V, abstract.Unique](cmp)}
	m.InsertMany(entries...)
	return m
}

// MakeOrdered is Make with the natural ordering of K.
func MakeOrdered[K constraints.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	return Make(bst.Compare[K], entries...)
}

// At returns the value stored for k. If k is absent it returns an error
// for which errors.Is(err, bst.ErrKeyNotFound) holds.
func (m *Map[K, V]) At(k K) (V, error) {
	it := m.t.Find(k)
	if !it.Valid() {
		var zero V
		return zero, errors.Wrapf(abstract.ErrKeyNotFound, "key %v", k)
	}
	return it.Value(), nil
}

// Get returns the value stored for k, if any. It never modifies m.
func (m *Map[K, V]) Get(k K) generics.Option[V] {
	it := m.t.Find(k)
	if !it.Valid() {
		return generics.None[V]()
	}
	return generics.Some(it.Value())
}

// Index returns a pointer to the value stored for k. If k is absent an
// entry holding the zero value is inserted first, so a lookup of a missing
// key grows the map. The pointer is valid until the entry is erased or the
// map is cleared. Storage of erased entries is reused by any Map[K, V], so a
// pointer kept past that point may alias an unrelated entry.
func (m *Map[K, V]) Index(k K) *V {
	var zero V
	it, _ := m.t.Insert(k, zero)
	return it.ValuePtr()
}

// Insert adds k with value v. If k is already present the map is unchanged,
// the returned iterator is at the existing entry and inserted is false.
func (m *Map[K, V]) Insert(k K, v V) (it Iterator[K, V], inserted bool) {
	i, inserted := m.t.Insert(k, v)
	return Iterator[K, V]{i}, inserted
}

// InsertOrAssign stores v for k, overwriting any existing value. inserted
// reports whether k was absent.
func (m *Map[K, V]) InsertOrAssign(k K, v V) (it Iterator[K, V], inserted bool) {
	i, inserted := m.t.Insert(k, v)
	if !inserted {
		i.SetValue(v)
	}
	return Iterator[K, V]{i}, inserted
}

// InsertMany inserts each entry in turn and returns how many were added.
func (m *Map[K, V]) InsertMany(entries ...Entry[K, V]) (added int) {
	for _, e := range entries {
		if _, ok := m.t.Insert(e.Key, e.Value); ok {
			added++
		}
	}
	return added
}

// Erase removes the entry at it. It returns bst.ErrInvalidIterator if it is
// End or not an iterator into m.
func (m *Map[K, V]) Erase(it Iterator[K, V]) error {
	return m.t.Erase(it.it)
}

// Delete removes the entry for k and reports whether there was one.
func (m *Map[K, V]) Delete(k K) bool {
	it := m.t.Find(k)
	if !it.Valid() {
		return false
	}
	return m.t.Erase(it) == nil
}

// Find returns an iterator at the entry for k, or End.
func (m *Map[K, V]) Find(k K) Iterator[K, V] { return Iterator[K, V]{m.t.Find(k)} }

// Contains returns whether m holds an entry for k.
func (m *Map[K, V]) Contains(k K) bool { return m.t.Contains(k) }

// Count returns 1 if m holds an entry for k and 0 otherwise.
func (m *Map[K, V]) Count(k K) int { return m.t.Count(k) }

// LowerBound returns an iterator at the first entry with a key not less
// than k.
func (m *Map[K, V]) LowerBound(k K) Iterator[K, V] { return Iterator[K, V]{m.t.LowerBound(k)} }

// UpperBound returns an iterator at the first entry with a key greater
// than k.
func (m *Map[K, V]) UpperBound(k K) Iterator[K, V] { return Iterator[K, V]{m.t.UpperBound(k)} }

func (m *Map[K, V]) Begin() Iterator[K, V] { return Iterator[K, V]{m.t.Begin()} }
func (m *Map[K, V]) End() Iterator[K, V]   { return Iterator[K, V]{m.t.End()} }
func (m *Map[K, V]) Last() Iterator[K, V]  { return Iterator[K, V]{m.t.Last()} }
func (m *Map[K, V]) Len() int              { return m.t.Len() }
func (m *Map[K, V]) Empty() bool           { return m.t.Empty() }
func (m *Map[K, V]) MaxSize() int          { return m.t.MaxSize() }
func (m *Map[K, V]) Height() int           { return m.t.Height() }

// Clear removes all entries.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Swap exchanges the contents of m and o.
func (m *Map[K, V]) Swap(o *Map[K, V]) { m.t.Swap(&o.t) }

// Merge moves the entries of o into m and leaves o empty. Where both hold
// an entry for the same key the entry of m is kept and the value from o is
// dropped. Merges written in terms of insert-or-assign, as in some C++
// container libraries, let the value from o win instead; to get that rule
// call InsertOrAssign for each entry of o.
func (m *Map[K, V]) Merge(o *Map[K, V]) { m.t.Merge(&o.t) }

// Clone returns a copy of m. Values are copied by assignment.
func (m *Map[K, V]) Clone() *Map[K, V] { return &Map[K, V]{t: m.t.Clone()} }

// Move returns a map holding the entries of m and leaves m empty.
func (m *Map[K, V]) Move() *Map[K, V] { return &Map[K, V]{t: m.t.Move()} }

// Keys returns the keys in order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for it := m.Begin(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// Entries returns the entries in key order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.Len())
	for it := m.Begin(); it.Valid(); it.Next() {
		entries = append(entries, it.Entry())
	}
	return entries
}

// Walk visits the entries in pre-order with their depth and side until fn
// returns false.
func (m *Map[K, V]) Walk(fn func(depth int, side bst.Side, k K, v V) bool) {
	m.t.Walk(fn)
}

// String describes the shape of the underlying tree by key.
func (m *Map[K, V]) String() string { return m.t.String() }
