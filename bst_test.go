package bst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	require.Equal(t, -1, Compare(1, 2))
	require.Equal(t, 0, Compare(2, 2))
	require.Equal(t, 1, Compare(3, 2))
	require.Equal(t, -1, Compare("a", "b"))
	require.Equal(t, 1, Compare(2.5, -math.MaxFloat64))

	nan := math.NaN()
	require.Equal(t, -1, Compare(nan, -math.MaxFloat64))
	require.Equal(t, 1, Compare(1.0, nan))
	require.Zero(t, Compare(nan, math.NaN()))
}

func TestSideString(t *testing.T) {
	require.Equal(t, "root", Root.String())
	require.Equal(t, "left", Left.String())
	require.Equal(t, "right", Right.String())
}
