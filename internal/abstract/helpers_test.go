package abstract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

type uniqueInts = Tree[int, struct{}, Unique]

func makeUnique(keys ...int) uniqueInts {
	t := MakeTree[int, struct{}, Unique](intCmp)
	for _, k := range keys {
		t.Insert(k, struct{}{})
	}
	return t
}

// keys collects the keys of t by iterating from Begin to End.
func keys[K, V any, P Policy](t *Tree[K, V, P]) []K {
	var out []K
	for it := t.Begin(); it.Valid(); it.Next() {
		out = append(out, it.Key())
	}
	return out
}

// keysBackwards collects the keys of t by iterating from Last to End.
func keysBackwards[K, V any, P Policy](t *Tree[K, V, P]) []K {
	var out []K
	for it := t.Last(); it.Valid(); it.Prev() {
		out = append(out, it.Key())
	}
	return out
}

// linearLowerBound scans from Begin for the first key not less than k.
func linearLowerBound[K, V any, P Policy](t *Tree[K, V, P], k K) Iterator[K, V] {
	it := t.Begin()
	for it.Valid() && t.Compare(it.Key(), k) < 0 {
		it.Next()
	}
	return it
}

// linearUpperBound scans from Begin for the first key greater than k.
func linearUpperBound[K, V any, P Policy](t *Tree[K, V, P], k K) Iterator[K, V] {
	it := t.Begin()
	for it.Valid() && t.Compare(it.Key(), k) <= 0 {
		it.Next()
	}
	return it
}

// verify checks the structural invariants of t: ordering, parent links,
// the position of the sentinel and the element count.
func verify[K, V any, P Policy](tb testing.TB, t *Tree[K, V, P]) {
	tb.Helper()
	var p P
	dup := p.allowDuplicates()
	if t.root == t.end {
		require.Zero(tb, t.length)
		require.Same(tb, t.end, t.end.parent)
		require.False(tb, t.Begin().Valid())
		return
	}
	require.Nil(tb, t.root.parent)
	require.Nil(tb, t.end.left)
	require.True(tb, t.end.sentinel)
	max := t.root.max()
	require.Same(tb, max, t.end.parent)
	require.Same(tb, t.end, max.right)

	var count, sentinelLinks int
	t.walk(func(n *node[K, V]) bool {
		count++
		require.False(tb, n.sentinel)
		if n.right == t.end {
			sentinelLinks++
		}
		if l := n.left; l != nil {
			require.Same(tb, n, l.parent)
			require.Negative(tb, t.cfg.cmp(l.max().key, n.key))
		}
		if r := n.rightChild(); r != nil {
			require.Same(tb, n, r.parent)
			c := t.cfg.cmp(r.min().key, n.key)
			if dup {
				require.GreaterOrEqual(tb, c, 0)
			} else {
				require.Positive(tb, c)
			}
		}
		return true
	})
	require.Equal(tb, t.length, count)
	require.Equal(tb, 1, sentinelLinks)

	ks := keys(t)
	require.Len(tb, ks, t.length)
	for i := 1; i < len(ks); i++ {
		c := t.cfg.cmp(ks[i-1], ks[i])
		if dup {
			require.LessOrEqual(tb, c, 0)
		} else {
			require.Negative(tb, c)
		}
	}
}
