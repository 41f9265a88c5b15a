// Copyright 2018 The Cockroach Authors.
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

package abstract

// Iterator is a position in a Tree: an element, or End. Iterators are
// values; copies move independently. Two iterators are equal, by Equal or
// by ==, when they are at the same element.
//
// An Iterator remains valid while its element is in the tree, whatever is
// inserted or erased around it. It must not be used once its element is
// erased, or after Clear or Merge.
type Iterator[K, V any] struct {
	end *node[K, V]
	n   *node[K, V]
}

// Next moves the Iterator to the following element, or to End after the
// maximum. Next at End stays at End.
func (i *Iterator[K, V]) Next() {
	if i.n == nil {
		return
	}
	if n := i.n.next(); n != nil {
		i.n = n
	} else {
		i.n = i.end
	}
}

// Prev moves the Iterator to the preceding element. Prev at End moves to
// the maximum, and Prev at the minimum moves to End.
func (i *Iterator[K, V]) Prev() {
	if i.n == nil {
		return
	}
	if n := i.n.prev(); n != nil {
		i.n = n
	} else {
		i.n = i.end
	}
}

// Valid returns whether the Iterator is at an element, rather than at End.
func (i Iterator[K, V]) Valid() bool {
	return i.n != nil && !i.n.sentinel
}

// Equal returns whether i and o are at the same element.
func (i Iterator[K, V]) Equal(o Iterator[K, V]) bool {
	return i.n == o.n
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i Iterator[K, V]) Key() K {
	i.mustBeValid()
	return i.n.key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i Iterator[K, V]) Value() V {
	i.mustBeValid()
	return i.n.value
}

// ValuePtr returns a pointer to the value stored at the Iterator's current
// position. It remains usable while the element is in the tree. Erased
// nodes are recycled by every tree with the same key and value types, so
// after the element is erased the pointer may refer to the value of an
// unrelated element, possibly in another tree.
func (i Iterator[K, V]) ValuePtr() *V {
	i.mustBeValid()
	return &i.n.value
}

// SetValue replaces the value at the Iterator's current position. Keys
// cannot be modified in place as that could break the ordering.
func (i Iterator[K, V]) SetValue(v V) {
	i.mustBeValid()
	i.n.value = v
}

// ReadOnly returns a ConstIterator at the same position.
func (i Iterator[K, V]) ReadOnly() ConstIterator[K, V] {
	return ConstIterator[K, V]{it: i}
}

func (i Iterator[K, V]) mustBeValid() {
	if !i.Valid() {
		panic("abstract: dereference of an invalid iterator")
	}
}

// ConstIterator traverses like an Iterator but cannot modify values.
type ConstIterator[K, V any] struct {
	it Iterator[K, V]
}

// Next moves to the following element. See Iterator.Next.
func (i *ConstIterator[K, V]) Next() { i.it.Next() }

// Prev moves to the preceding element. See Iterator.Prev.
func (i *ConstIterator[K, V]) Prev() { i.it.Prev() }

// Valid returns whether the ConstIterator is at an element.
func (i ConstIterator[K, V]) Valid() bool { return i.it.Valid() }

// Equal returns whether i and o are at the same element.
func (i ConstIterator[K, V]) Equal(o ConstIterator[K, V]) bool { return i.it.Equal(o.it) }

// Key returns the key at the current position.
func (i ConstIterator[K, V]) Key() K { return i.it.Key() }

// Value returns the value at the current position.
func (i ConstIterator[K, V]) Value() V { return i.it.Value() }
