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

// Package bst holds what is shared by the ordered containers built on an
// unbalanced binary search tree: the set, multiset and treemap packages.
//
// Every container keeps a sentinel node one past its maximum which serves
// as End, so iterators move in both directions using parent links alone
// and stay valid while their element is in the container. Nothing
// rebalances the tree; sorted input degrades it into a chain. Whole-tree
// walks (Clear, Clone, Merge, String) use an explicit stack so that such a
// chain does not exhaust the goroutine stack.
//
// The containers are not safe for concurrent use.
package bst
