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

// Policy decides what a Tree does with a key which compares equal to a key
// it already holds. It is satisfied only by Unique and Multi.
type Policy interface {
	Unique | Multi

	allowDuplicates() bool
}

// Unique rejects a key equal to one already present. Insert reports the
// existing element and false.
type Unique struct{}

// Multi accepts every key. Equal keys are placed in the right subtree of
// their equals so that iteration visits them in insertion order.
type Multi struct{}

func (Unique) allowDuplicates() bool { return false }

func (Multi) allowDuplicates() bool { return true }

// Side identifies how a node hangs off its parent during a Walk.
type Side int

const (

	// Root is the side reported for the root of the tree.
	Root Side = iota

	// Left is reported for a left child.
	Left

	// Right is reported for a right child.
	Right
)

func (s Side) String() string {
	switch s {
	case Root:
		return "root"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
