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

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
)

// Tree is a binary search tree ordered by a comparison function. The policy
// P decides whether keys which compare equal may coexist.
//
// Nothing rebalances the tree. Keys inserted in sorted order produce a
// chain whose height equals its length, so lookups degrade to O(n). Walks
// over the whole tree use an explicit stack and are not limited by the
// depth.
//
// A Tree must be created with MakeTree. It is not safe for concurrent use;
// callers which share one must serialize access to it.
type Tree[K, V any, P Policy] struct {
	root   *node[K, V]
	end    *node[K, V]
	length int
	cfg    config[K, V]
}

// MakeTree constructs an empty tree ordered by cmp, which must return a
// negative number, zero or a positive number when its first argument is
// less than, equal to or greater than its second.
func MakeTree[K, V any, P Policy](cmp func(K, K) int) Tree[K, V, P] {
	t := Tree[K, V, P]{cfg: makeConfig[K, V](cmp)}
	t.init()
	return t
}

func (t *Tree[K, V, P]) init() {
	if t.end != nil {
		return
	}
	t.end = &node[K, V]{sentinel: true}
	t.resetEnd()
}

// resetEnd puts the sentinel back into its empty-tree state.
func (t *Tree[K, V, P]) resetEnd() {
	t.end.parent = t.end
	t.end.left = nil
	t.end.right = nil
	t.root = t.end
}

// anchorEnd hangs the sentinel off max, which must be the maximum node.
func (t *Tree[K, V, P]) anchorEnd(max *node[K, V]) {
	max.right = t.end
	t.end.parent = max
}

func (t *Tree[K, V, P]) iter(n *node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{end: t.end, n: n}
}

// Begin returns an iterator at the minimum element, or End if the tree is
// empty.
func (t *Tree[K, V, P]) Begin() Iterator[K, V] {
	return t.iter(t.root.min())
}

// End returns the iterator one past the maximum element.
func (t *Tree[K, V, P]) End() Iterator[K, V] {
	return t.iter(t.end)
}

// Last returns an iterator at the maximum element, or End if the tree is
// empty.
func (t *Tree[K, V, P]) Last() Iterator[K, V] {
	return t.iter(t.end.prev())
}

// Len returns the number of elements in the tree.
func (t *Tree[K, V, P]) Len() int {
	return t.length
}

// Empty returns whether the tree holds no elements.
func (t *Tree[K, V, P]) Empty() bool {
	return t.root == t.end
}

// MaxSize returns the number of nodes which would fill half of the address
// space. It is informational; nothing enforces it.
func (t *Tree[K, V, P]) MaxSize() int {
	var n node[K, V]
	return int(^uintptr(0) / unsafe.Sizeof(n) / 2)
}

// Insert adds k with its value v. Under Unique, if an equal key is present
// the tree is unchanged and the existing element is returned along with
// false. Under Multi the insertion always happens and the new element is
// ordered after all elements equal to it.
func (t *Tree[K, V, P]) Insert(k K, v V) (Iterator[K, V], bool) {
	var p P
	n, inserted := t.insert(k, v, p.allowDuplicates())
	return t.iter(n), inserted
}

func (t *Tree[K, V, P]) insert(k K, v V, dup bool) (*node[K, V], bool) {
	if t.root == t.end {
		n := t.cfg.np.get(k, v)
		t.root = n
		t.anchorEnd(n)
		t.length++
		return n, true
	}
	cur := t.root
	for {
		c := t.cfg.cmp(k, cur.key)
		if c == 0 && !dup {
			return cur, false
		}
		if c < 0 {
			if cur.left != nil {
				cur = cur.left
				continue
			}
			n := t.cfg.np.get(k, v)
			n.parent = cur
			cur.left = n
			t.length++
			return n, true
		}
		if r := cur.rightChild(); r != nil {
			cur = r
			continue
		}
		n := t.cfg.np.get(k, v)
		n.parent = cur
		if cur.right == t.end {
			// cur was the maximum; the new node takes over the sentinel.
			t.anchorEnd(n)
		}
		cur.right = n
		t.length++
		return n, true
	}
}

// Find returns an iterator at an element equal to k, or End if there is
// none. When several elements are equal to k it returns the first of them.
func (t *Tree[K, V, P]) Find(k K) Iterator[K, V] {
	n := t.lowerBound(k)
	if n == t.end || t.cfg.cmp(k, n.key) != 0 {
		return t.End()
	}
	return t.iter(n)
}

// Contains returns whether an element equal to k is present.
func (t *Tree[K, V, P]) Contains(k K) bool {
	return t.Find(k).Valid()
}

// LowerBound returns an iterator at the first element which is not less
// than k, or End.
func (t *Tree[K, V, P]) LowerBound(k K) Iterator[K, V] {
	return t.iter(t.lowerBound(k))
}

// UpperBound returns an iterator at the first element which is greater than
// k, or End.
func (t *Tree[K, V, P]) UpperBound(k K) Iterator[K, V] {
	return t.iter(t.upperBound(k))
}

func (t *Tree[K, V, P]) lowerBound(k K) *node[K, V] {
	best := t.end
	for n := t.root; n != nil && n != t.end; {
		if t.cfg.cmp(n.key, k) >= 0 {
			best, n = n, n.left
		} else {
			n = n.rightChild()
		}
	}
	return best
}

func (t *Tree[K, V, P]) upperBound(k K) *node[K, V] {
	best := t.end
	for n := t.root; n != nil && n != t.end; {
		if t.cfg.cmp(n.key, k) > 0 {
			best, n = n, n.left
		} else {
			n = n.rightChild()
		}
	}
	return best
}

// Count returns the number of elements equal to k.
func (t *Tree[K, V, P]) Count(k K) int {
	var c int
	for n := t.lowerBound(k); n != t.end && t.cfg.cmp(k, n.key) == 0; n = n.next() {
		c++
	}
	return c
}

// Erase removes the element at it. Iterators at other elements remain
// valid; it and any copy of it must not be used afterwards.
//
// ErrInvalidIterator is returned, and the tree left untouched, if the tree
// is empty or it is End, a zero Iterator, an iterator into another tree, or
// an iterator whose element was already erased. Erased nodes are recycled,
// so a stale iterator is only detected while its node is not back in t.
func (t *Tree[K, V, P]) Erase(it Iterator[K, V]) error {
	switch {
	case it.n == nil:
		return errors.Wrap(ErrInvalidIterator, "zero iterator")
	case it.end != t.end:
		return errors.Wrap(ErrInvalidIterator, "iterator belongs to another tree")
	case t.length == 0:
		return errors.Wrap(ErrInvalidIterator, "erase from empty tree")
	case it.n == t.end:
		return errors.Wrap(ErrInvalidIterator, "erase at end")
	case !t.holds(it.n):
		return errors.Wrap(ErrInvalidIterator, "element not in tree")
	}
	t.erase(it.n)
	return nil
}

// holds returns whether n is reachable from the root of t.
func (t *Tree[K, V, P]) holds(n *node[K, V]) bool {
	for n.parent != nil {
		n = n.parent
	}
	return n == t.root
}

func (t *Tree[K, V, P]) erase(n *node[K, V]) {
	// Unhook the sentinel so that the structural cases below only see real
	// children; it is anchored again once the shape is settled.
	max := t.end.parent
	max.right = nil

	switch {
	case n.left == nil && n.right == nil:
		t.replace(n, nil)
	case n.left == nil:
		t.replace(n, n.right)
	case n.right == nil:
		t.replace(n, n.left)
	default:
		// Splice the in-order successor into n's place. It has no left
		// child; its right child takes its old slot.
		s := n.right.min()
		if s.parent != n {
			t.replace(s, s.right)
			s.right = n.right
			s.right.parent = s
		}
		t.replace(n, s)
		s.left = n.left
		s.left.parent = s
	}
	t.length--

	switch {
	case t.length == 0:
		t.resetEnd()
	case n == max:
		t.anchorEnd(t.root.max())
	default:
		t.anchorEnd(max)
	}
	t.cfg.np.put(n)
}

// replace links c, which may be nil, into the slot n occupies under n's
// parent, or makes it the root.
func (t *Tree[K, V, P]) replace(n, c *node[K, V]) {
	p := n.parent
	switch {
	case p == nil:
		t.root = c
	case p.left == n:
		p.left = c
	default:
		p.right = c
	}
	if c != nil {
		c.parent = p
	}
}

// Clear removes all elements. The nodes are returned to the pool so any
// outstanding iterator other than End becomes invalid.
func (t *Tree[K, V, P]) Clear() {
	if t.root != t.end {
		var s iterStack[*node[K, V]]
		s.push(t.root)
		for s.len() > 0 {
			n := s.pop()
			if n.left != nil {
				s.push(n.left)
			}
			if r := n.rightChild(); r != nil {
				s.push(r)
			}
			t.cfg.np.put(n)
		}
	}
	t.length = 0
	t.resetEnd()
}

// Clone returns a deep copy of the tree with the same shape and its own
// sentinel. The copies are independent.
func (t *Tree[K, V, P]) Clone() Tree[K, V, P] {
	c := Tree[K, V, P]{cfg: t.cfg}
	c.init()
	if t.root == t.end {
		return c
	}
	np := t.cfg.np
	c.root = np.get(t.root.key, t.root.value)
	max := c.root
	var s iterStack[clonePair[K, V]]
	s.push(clonePair[K, V]{src: t.root, dst: c.root})
	for s.len() > 0 {
		f := s.pop()
		if l := f.src.left; l != nil {
			d := np.get(l.key, l.value)
			d.parent = f.dst
			f.dst.left = d
			s.push(clonePair[K, V]{src: l, dst: d})
		}
		if r := f.src.rightChild(); r != nil {
			d := np.get(r.key, r.value)
			d.parent = f.dst
			f.dst.right = d
			s.push(clonePair[K, V]{src: r, dst: d})
		} else if f.src.right == t.end {
			max = f.dst
		}
	}
	c.anchorEnd(max)
	c.length = t.length
	return c
}

// Move returns a tree which takes over the elements and sentinel of t. t is
// left empty, with a new sentinel, and remains usable. Iterators obtained
// from t before the call refer to the returned tree.
func (t *Tree[K, V, P]) Move() Tree[K, V, P] {
	m := *t
	t.end = nil
	t.length = 0
	t.init()
	return m
}

// Swap exchanges the contents of t and o, comparators included. Iterators
// follow their elements into the other tree.
func (t *Tree[K, V, P]) Swap(o *Tree[K, V, P]) {
	*t, *o = *o, *t
}

// Merge moves every element of o into t. The result is rebuilt from
// scratch by inserting the elements of t and then those of o into a new
// tree under P, so under Unique an element of t wins over an equal element
// of o, and under Multi elements of o follow their equals from t. o is left
// empty. Merging a tree into itself does nothing.
//
// All iterators into t and o are invalidated.
func (t *Tree[K, V, P]) Merge(o *Tree[K, V, P]) {
	if o == t {
		return
	}
	merged := Tree[K, V, P]{cfg: t.cfg}
	merged.init()
	var p P
	dup := p.allowDuplicates()
	add := func(n *node[K, V]) bool {
		merged.insert(n.key, n.value, dup)
		return true
	}
	// Pre-order feeding reproduces each source's shape rather than the
	// chain in-order feeding would build, and visits equal keys in the
	// order they iterate.
	t.walk(add)
	o.walk(add)
	t.Clear()
	o.Clear()
	*t = merged
}

// walkDepth visits the nodes in pre-order until fn returns false. The depth
// of the root is 0.
func (t *Tree[K, V, P]) walkDepth(fn func(n *node[K, V], depth int) bool) {
	if t.root == t.end {
		return
	}
	var s iterStack[iterFrame[K, V]]
	s.push(iterFrame[K, V]{node: t.root})
	for s.len() > 0 {
		f := s.pop()
		if !fn(f.node, f.pos) {
			return
		}
		if r := f.rightChild(); r != nil {
			s.push(iterFrame[K, V]{node: r, pos: f.pos + 1})
		}
		if l := f.left; l != nil {
			s.push(iterFrame[K, V]{node: l, pos: f.pos + 1})
		}
	}
}

func (t *Tree[K, V, P]) walk(fn func(n *node[K, V]) bool) {
	t.walkDepth(func(n *node[K, V], _ int) bool { return fn(n) })
}

// Walk visits the elements in pre-order, reporting the depth of each and
// which side of its parent it hangs from, until fn returns false. It
// exposes the shape of the tree for debugging and rendering.
func (t *Tree[K, V, P]) Walk(fn func(depth int, side Side, k K, v V) bool) {
	t.walkDepth(func(n *node[K, V], depth int) bool {
		return fn(depth, n.side(), n.key, n.value)
	})
}

// Height returns the number of nodes on the longest path from the root to
// a leaf.
func (t *Tree[K, V, P]) Height() int {
	var h int
	t.walkDepth(func(_ *node[K, V], depth int) bool {
		if depth+1 > h {
			h = depth + 1
		}
		return true
	})
	return h
}

// String returns a string description of the shape of the tree. A node
// with children is written as (left)key(right) and a leaf as its key, so
// {5:{3,8}} is "(3)5(8)". The empty tree is ";".
func (t *Tree[K, V, P]) String() string {
	if t.root == t.end {
		return ";"
	}
	var b strings.Builder
	var s iterStack[iterFrame[K, V]]
	s.push(iterFrame[K, V]{node: t.root})
	for s.len() > 0 {
		f := s.pop()
		switch f.pos {
		case 0:
			if f.isLeaf() {
				fmt.Fprint(&b, f.key)
				continue
			}
			b.WriteString("(")
			s.push(iterFrame[K, V]{node: f.node, pos: 1})
			if f.left != nil {
				s.push(iterFrame[K, V]{node: f.left})
			}
		case 1:
			fmt.Fprintf(&b, ")%v(", f.key)
			s.push(iterFrame[K, V]{node: f.node, pos: 2})
			if r := f.rightChild(); r != nil {
				s.push(iterFrame[K, V]{node: r})
			}
		default:
			b.WriteString(")")
		}
	}
	return b.String()
}
