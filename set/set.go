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

// Package set implements an ordered set of unique keys on an unbalanced
// binary search tree.
package set

import (
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/bst"
	"github.com/ajwerner/bst/internal/abstract"
)

type tree[K any] = abstract.Tree[K, struct{}, abstract.Unique]

// Set is an ordered collection of keys in which no two keys compare equal.
// It must be created with Make or MakeOrdered.
type Set[K any] struct {
	t tree[K]
}

// Make returns a set ordered by cmp holding items. Items equal to an
// earlier item are dropped.
func Make[K any](cmp func(K, K) int, items ...K) *Set[K] {
	s := &Set[K]{t: abstract.MakeTree[K, struct{}, abstract.Unique](cmp)}
	s.InsertMany(items...)
	return s
}

// MakeOrdered is Make with the natural ordering of K.
func MakeOrdered[K constraints.Ordered](items ...K) *Set[K] {
	return Make(bst.Compare[K], items...)
}

// Insert adds k. If an equal key is present the set is unchanged, and the
// returned iterator is at that key and inserted is false.
func (s *Set[K]) Insert(k K) (it Iterator[K], inserted bool) {
	i, inserted := s.t.Insert(k, struct{}{})
	return Iterator[K]{i}, inserted
}

// InsertMany inserts each of keys in turn and returns how many were added.
func (s *Set[K]) InsertMany(keys ...K) (added int) {
	for _, k := range keys {
		if _, ok := s.Insert(k); ok {
			added++
		}
	}
	return added
}

// Erase removes the key at it. It returns bst.ErrInvalidIterator if it is
// End or not an iterator into s.
func (s *Set[K]) Erase(it Iterator[K]) error {
	return s.t.Erase(it.it)
}

// Find returns an iterator at the key equal to k, or End.
func (s *Set[K]) Find(k K) Iterator[K] { return Iterator[K]{s.t.Find(k)} }

// Contains returns whether a key equal to k is present.
func (s *Set[K]) Contains(k K) bool { return s.t.Contains(k) }

// LowerBound returns an iterator at the first key not less than k.
func (s *Set[K]) LowerBound(k K) Iterator[K] { return Iterator[K]{s.t.LowerBound(k)} }

// UpperBound returns an iterator at the first key greater than k.
func (s *Set[K]) UpperBound(k K) Iterator[K] { return Iterator[K]{s.t.UpperBound(k)} }

// Begin returns an iterator at the smallest key, or End if s is empty.
func (s *Set[K]) Begin() Iterator[K] { return Iterator[K]{s.t.Begin()} }

// End returns the iterator one past the largest key.
func (s *Set[K]) End() Iterator[K] { return Iterator[K]{s.t.End()} }

// Last returns an iterator at the largest key, or End if s is empty.
func (s *Set[K]) Last() Iterator[K] { return Iterator[K]{s.t.Last()} }

func (s *Set[K]) Len() int     { return s.t.Len() }
func (s *Set[K]) Empty() bool  { return s.t.Empty() }
func (s *Set[K]) MaxSize() int { return s.t.MaxSize() }
func (s *Set[K]) Height() int  { return s.t.Height() }

// Clear removes all keys.
func (s *Set[K]) Clear() { s.t.Clear() }

// Swap exchanges the contents of s and o.
func (s *Set[K]) Swap(o *Set[K]) { s.t.Swap(&o.t) }

// Merge moves the keys of o into s, keeping the key of s where both hold
// equal keys, and leaves o empty.
func (s *Set[K]) Merge(o *Set[K]) { s.t.Merge(&o.t) }

// Clone returns an independent copy of s.
func (s *Set[K]) Clone() *Set[K] { return &Set[K]{t: s.t.Clone()} }

// Move returns a set holding the keys of s and leaves s empty.
func (s *Set[K]) Move() *Set[K] { return &Set[K]{t: s.t.Move()} }

// Keys returns the keys in order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.Len())
	for it := s.Begin(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// Walk visits the keys in pre-order along with their depth and the side of
// their parent they hang from, until fn returns false.
func (s *Set[K]) Walk(fn func(depth int, side bst.Side, k K) bool) {
	s.t.Walk(func(depth int, side bst.Side, k K, _ struct{}) bool {
		return fn(depth, side, k)
	})
}

// String describes the shape of the underlying tree.
func (s *Set[K]) String() string { return s.t.String() }

// Iterator is a position in a Set. Keys cannot be modified through it.
type Iterator[K any] struct {
	it abstract.Iterator[K, struct{}]
}

func (it *Iterator[K]) Next()                   { it.it.Next() }
func (it *Iterator[K]) Prev()                   { it.it.Prev() }
func (it Iterator[K]) Valid() bool              { return it.it.Valid() }
func (it Iterator[K]) Key() K                   { return it.it.Key() }
func (it Iterator[K]) Equal(o Iterator[K]) bool { return it.it.Equal(o.it) }
