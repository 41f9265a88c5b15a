package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajwerner/bst"
	"github.com/ajwerner/bst/set"
)

func TestRenderShape(t *testing.T) {
	s := set.Make(keyCompare(true), "50", "30", "70", "20")
	out := renderShape(func(fn walkFunc) {
		s.Walk(func(depth int, side bst.Side, k string) bool {
			return fn(depth, side, k)
		})
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "50", lines[0])
	require.Contains(t, lines[1], "left")
	require.Contains(t, lines[1], "30")
	require.Contains(t, lines[2], "20")
	require.Contains(t, lines[3], "right")
	require.Contains(t, lines[3], "70")

	empty := set.Make(keyCompare(false))
	require.Equal(t, "(empty)\n", renderShape(func(fn walkFunc) {
		empty.Walk(func(depth int, side bst.Side, k string) bool {
			return fn(depth, side, k)
		})
	}))
}

func TestKeyCompare(t *testing.T) {
	require.Negative(t, keyCompare(true)("9", "10"))
	require.Positive(t, keyCompare(false)("9", "10"))
	require.Zero(t, keyCompare(true)("007", "7"))

	require.NoError(t, checkKeys(true, []string{"1", "-2"}))
	require.Error(t, checkKeys(true, []string{"1", "x"}))
	require.NoError(t, checkKeys(false, []string{"x"}))
}

func TestParseEntries(t *testing.T) {
	entries, err := parseEntries([]string{"a=1", "b=", "c=x=y"})
	require.NoError(t, err)
	require.Equal(t, "c", entries[2].Key)
	require.Equal(t, "x=y", entries[2].Value)
	require.Equal(t, "", entries[1].Value)

	_, err = parseEntries([]string{"nope"})
	require.Error(t, err)
}
