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

// node is an element of the tree, or the tree's sentinel.
//
// A node owns its children. parent is a back-reference which is only
// followed while iterating or relinking. The sentinel hangs off the right
// of the maximum node and its parent is that maximum; in an empty tree its
// parent is the sentinel itself.
type node[K, V any] struct {
	key      K
	value    V
	left     *node[K, V]
	right    *node[K, V]
	parent   *node[K, V]
	sentinel bool
}

// rightChild returns the right child of n, treating the sentinel as absent.
func (n *node[K, V]) rightChild() *node[K, V] {
	if n.right != nil && n.right.sentinel {
		return nil
	}
	return n.right
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.rightChild() == nil
}

// min returns the leftmost node of the subtree rooted at n. The sentinel
// has no left child so min of the sentinel is the sentinel.
func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost non-sentinel node of the subtree rooted at n.
func (n *node[K, V]) max() *node[K, V] {
	for r := n.rightChild(); r != nil; r = n.rightChild() {
		n = r
	}
	return n
}

// next returns the in-order successor of n. The successor of the maximum
// is the sentinel and the sentinel is its own successor. It returns nil
// only for a node which is not linked into a tree.
func (n *node[K, V]) next() *node[K, V] {
	if n.sentinel {
		return n
	}
	if n.right != nil {
		return n.right.min()
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if n == p.left {
			return p
		}
	}
	return nil
}

// prev returns the in-order predecessor of n. The predecessor of the
// sentinel is the maximum, or the sentinel itself when the tree is empty.
// It returns nil for the minimum.
func (n *node[K, V]) prev() *node[K, V] {
	if n.sentinel {
		return n.parent
	}
	if n.left != nil {
		return n.left.max()
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if n == p.right {
			return p
		}
	}
	return nil
}

func (n *node[K, V]) side() Side {
	switch {
	case n.parent == nil:
		return Root
	case n.parent.left == n:
		return Left
	default:
		return Right
	}
}
