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

// Package multiset implements an ordered collection of keys which may hold
// several keys that compare equal. Equal keys iterate in the order they
// were inserted.
package multiset

import (
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/bst"
	"github.com/ajwerner/bst/internal/abstract"
)

type tree[K any] = abstract.Tree[K, struct{}, abstract.Multi]

// Multiset is an ordered collection of keys allowing duplicates. It must be
// created with Make or MakeOrdered.
type Multiset[K any] struct {
	t tree[K]
}

// Make returns a multiset ordered by cmp holding items.
func Make[K any](cmp func(K, K) int, items ...K) *Multiset[K] {
	m := &Multiset[K]{t: abstract.MakeTree[K, struct{}, abstract.Multi](cmp)}
	m.InsertMany(items...)
	return m
}

// MakeOrdered is Make with the natural ordering of K.
func MakeOrdered[K constraints.Ordered](items ...K) *Multiset[K] {
	return Make(bst.Compare[K], items...)
}

// Insert adds k after any keys equal to it and returns its position.
func (m *Multiset[K]) Insert(k K) Iterator[K] {
	it, _ := m.t.Insert(k, struct{}{})
	return Iterator[K]{it}
}

// InsertMany inserts each of keys in turn.
func (m *Multiset[K]) InsertMany(keys ...K) {
	for _, k := range keys {
		m.t.Insert(k, struct{}{})
	}
}

// Erase removes the single key at it. It returns bst.ErrInvalidIterator if
// it is End or not an iterator into m.
func (m *Multiset[K]) Erase(it Iterator[K]) error {
	return m.t.Erase(it.it)
}

// EraseAll removes every key equal to k and returns how many were removed.
func (m *Multiset[K]) EraseAll(k K) (removed int) {
	for it := m.t.Find(k); it.Valid(); it = m.t.Find(k) {
		if err := m.t.Erase(it); err != nil {
			panic(err)
		}
		removed++
	}
	return removed
}

// Find returns an iterator at the first key equal to k, or End.
func (m *Multiset[K]) Find(k K) Iterator[K] { return Iterator[K]{m.t.Find(k)} }

// Contains returns whether a key equal to k is present.
func (m *Multiset[K]) Contains(k K) bool { return m.t.Contains(k) }

// Count returns the number of keys equal to k.
func (m *Multiset[K]) Count(k K) int { return m.t.Count(k) }

// LowerBound returns an iterator at the first key not less than k.
func (m *Multiset[K]) LowerBound(k K) Iterator[K] { return Iterator[K]{m.t.LowerBound(k)} }

// UpperBound returns an iterator at the first key greater than k.
func (m *Multiset[K]) UpperBound(k K) Iterator[K] { return Iterator[K]{m.t.UpperBound(k)} }

// EqualRange returns the half-open range [lo, hi) of keys equal to k. The
// range is empty, with lo equal to hi, when k is absent.
func (m *Multiset[K]) EqualRange(k K) (lo, hi Iterator[K]) {
	return m.LowerBound(k), m.UpperBound(k)
}

func (m *Multiset[K]) Begin() Iterator[K]  { return Iterator[K]{m.t.Begin()} }
func (m *Multiset[K]) End() Iterator[K]    { return Iterator[K]{m.t.End()} }
func (m *Multiset[K]) Last() Iterator[K]   { return Iterator[K]{m.t.Last()} }
func (m *Multiset[K]) Len() int            { return m.t.Len() }
func (m *Multiset[K]) Empty() bool         { return m.t.Empty() }
func (m *Multiset[K]) MaxSize() int        { return m.t.MaxSize() }
func (m *Multiset[K]) Height() int         { return m.t.Height() }
func (m *Multiset[K]) Clear()              { m.t.Clear() }
func (m *Multiset[K]) Swap(o *Multiset[K]) { m.t.Swap(&o.t) }

// Merge moves the keys of o into m and leaves o empty. Keys from o follow
// the keys of m they compare equal to.
func (m *Multiset[K]) Merge(o *Multiset[K]) { m.t.Merge(&o.t) }

// Clone returns an independent copy of m.
func (m *Multiset[K]) Clone() *Multiset[K] { return &Multiset[K]{t: m.t.Clone()} }

// Move returns a multiset holding the keys of m and leaves m empty.
func (m *Multiset[K]) Move() *Multiset[K] { return &Multiset[K]{t: m.t.Move()} }

// Keys returns the keys in order.
func (m *Multiset[K]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for it := m.Begin(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// Walk visits the keys in pre-order with their depth and side until fn
// returns false.
func (m *Multiset[K]) Walk(fn func(depth int, side bst.Side, k K) bool) {
	m.t.Walk(func(depth int, side bst.Side, k K, _ struct{}) bool {
		return fn(depth, side, k)
	})
}

func (m *Multiset[K]) String() string { return m.t.String() }

// Iterator is a position in a Multiset.
type Iterator[K any] struct {
	it abstract.Iterator[K, struct{}]
}

func (it *Iterator[K]) Next()                   { it.it.Next() }
func (it *Iterator[K]) Prev()                   { it.it.Prev() }
func (it Iterator[K]) Valid() bool              { return it.it.Valid() }
func (it Iterator[K]) Key() K                   { return it.it.Key() }
func (it Iterator[K]) Equal(o Iterator[K]) bool { return it.it.Equal(o.it) }
