package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"bstree"}, args...))
	return out.String(), err
}

func TestRunSet(t *testing.T) {
	out, err := runApp(t, "set", "--numeric", "--erase", "1", "10", "0", "1", "2", "1")
	require.NoError(t, err)
	require.Equal(t, "0 2 10\n", out)

	out, err = runApp(t, "set", "10", "9", "2")
	require.NoError(t, err)
	require.Equal(t, "10 2 9\n", out)
}

func TestRunRejectsNonNumericFlagKeys(t *testing.T) {
	for _, args := range [][]string{
		{"set", "--numeric", "--erase", "abc", "0", "1", "2"},
		{"multiset", "--numeric", "--erase", "abc", "0", "1", "2"},
		{"map", "--numeric", "--erase", "abc", "0=a", "1=b"},
		{"map", "--numeric", "--get", "abc", "0=a", "1=b"},
	} {
		out, err := runApp(t, args...)
		require.Error(t, err, "%v", args)
		require.Contains(t, err.Error(), "abc")
		require.Empty(t, out)
	}
}

func TestRunMultiset(t *testing.T) {
	out, err := runApp(t, "multiset", "--numeric", "--erase", "3", "3", "1", "3", "2")
	require.NoError(t, err)
	require.Equal(t, "1 2 3\n", out)
}

func TestRunMap(t *testing.T) {
	out, err := runApp(t, "map", "--numeric", "--get", "2", "--get", "5", "--erase", "3",
		"3=c", "2=b", "10=j", "2=B")
	require.NoError(t, err)
	require.Equal(t, "2=B\n10=j\n2: B\n5: not found\n", out)
}

func TestRunShape(t *testing.T) {
	out, err := runApp(t, "set", "--shape", "b", "a", "c")
	require.NoError(t, err)
	require.Contains(t, out, "a b c\n")
	require.Contains(t, out, "[left]")
	require.Contains(t, out, "[right]")
}
