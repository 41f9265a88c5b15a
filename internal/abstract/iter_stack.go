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

// iterStack is a LIFO of frames. The walks over the whole tree (release,
// clone, merge, printing) push onto it instead of recursing, so a tree
// which degenerated into a chain does not grow the goroutine stack.
type iterStack[F any] struct {
	a    iterStackArr[F]
	aLen int16 // -1 when using s
	s    []F
}

const iterStackDepth = 16

// Used to avoid allocations for stacks below a certain size.
type iterStackArr[F any] [iterStackDepth]F

// iterFrame is a node and an integer whose meaning depends on the walk:
// the depth of the node, or how much of the node has been printed.
type iterFrame[K, V any] struct {
	*node[K, V]
	pos int
}

// clonePair links a node of the source tree to its copy.
type clonePair[K, V any] struct {
	src, dst *node[K, V]
}

func (is *iterStack[F]) push(f F) {
	if is.aLen == -1 {
		is.s = append(is.s, f)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]F, int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = f
		is.aLen = -1
	} else {
		is.a[is.aLen] = f
		is.aLen++
	}
}

func (is *iterStack[F]) pop() F {
	if is.aLen == -1 {
		f := is.s[len(is.s)-1]
		is.s = is.s[:len(is.s)-1]
		return f
	}
	is.aLen--
	return is.a[is.aLen]
}

func (is *iterStack[F]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}
