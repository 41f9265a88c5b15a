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

package main

import (
	"github.com/xlab/treeprint"

	"github.com/ajwerner/bst"
)

type walkFunc = func(depth int, side bst.Side, label string) bool

// renderShape draws the tree visited in pre-order by walk. Each child is
// tagged with the side of its parent it hangs from.
func renderShape(walk func(walkFunc)) string {
	var root treeprint.Tree
	var branches []treeprint.Tree
	walk(func(depth int, side bst.Side, label string) bool {
		if depth == 0 {
			root = treeprint.NewWithRoot(label)
			branches = append(branches[:0], root)
			return true
		}
		b := branches[depth-1].AddMetaBranch(side, label)
		branches = append(branches[:depth], b)
		return true
	})
	if root == nil {
		return "(empty)\n"
	}
	return root.String()
}
