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

package treemap

import "github.com/ajwerner/bst/internal/abstract"

// Iterator is a position in a Map. The value of the entry it points to may
// be modified through it. The key may not.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V]
}

func (it *Iterator[K, V]) Next()                      { it.it.Next() }
func (it *Iterator[K, V]) Prev()                      { it.it.Prev() }
func (it Iterator[K, V]) Valid() bool                 { return it.it.Valid() }
func (it Iterator[K, V]) Key() K                      { return it.it.Key() }
func (it Iterator[K, V]) Value() V                    { return it.it.Value() }
func (it Iterator[K, V]) Equal(o Iterator[K, V]) bool { return it.it.Equal(o.it) }

// Entry returns the key and value at the current position.
func (it Iterator[K, V]) Entry() Entry[K, V] {
	return Entry[K, V]{Key: it.it.Key(), Value: it.it.Value()}
}

// SetValue replaces the value at the current position.
func (it Iterator[K, V]) SetValue(v V) { it.it.SetValue(v) }

// ValuePtr returns a pointer to the value at the current position. The
// same caveat as for Map.Index applies once the entry is erased.
func (it Iterator[K, V]) ValuePtr() *V { return it.it.ValuePtr() }

// ReadOnly returns a ConstIterator at the same position.
func (it Iterator[K, V]) ReadOnly() ConstIterator[K, V] {
	return ConstIterator[K, V]{it.it.ReadOnly()}
}

// ConstIterator is a position in a Map that cannot modify it.
type ConstIterator[K, V any] struct {
	it abstract.ConstIterator[K, V]
}

func (it *ConstIterator[K, V]) Next()                           { it.it.Next() }
func (it *ConstIterator[K, V]) Prev()                           { it.it.Prev() }
func (it ConstIterator[K, V]) Valid() bool                      { return it.it.Valid() }
func (it ConstIterator[K, V]) Key() K                           { return it.it.Key() }
func (it ConstIterator[K, V]) Value() V                         { return it.it.Value() }
func (it ConstIterator[K, V]) Equal(o ConstIterator[K, V]) bool { return it.it.Equal(o.it) }
