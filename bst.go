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

package bst

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/ajwerner/bst/internal/abstract"
)

var (
	// ErrKeyNotFound is returned by lookups which do not insert, such as a
	// treemap's At, when the key is absent. Test for it with errors.Is.
	ErrKeyNotFound = abstract.ErrKeyNotFound

	// ErrInvalidIterator is returned by Erase when given End, an iterator
	// into another container, or any iterator of an empty container.
	ErrInvalidIterator = abstract.ErrInvalidIterator
)

// Side identifies how a node hangs off its parent. It is reported by the
// containers' Walk methods.
type Side = abstract.Side

const (
	Root  = abstract.Root
	Left  = abstract.Left
	Right = abstract.Right
)

// Compare is the comparison function for ordered types. It orders values
// by <, except that a NaN is less than any other float and equal to any
// other NaN, which keeps float keys in a strict weak order.
func Compare[T constraints.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}
