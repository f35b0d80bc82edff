package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntNBounds(t *testing.T) {
	src := NewSource()

	for _, n := range []int{1, 2, 10, 256, 1_000_000} {
		for i := 0; i < 50; i++ {
			v, err := src.IntN(n)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, n)
		}
	}
}

func TestIntNOne(t *testing.T) {
	src := NewSource()

	v, err := src.IntN(1)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestIntNInvalid(t *testing.T) {
	src := NewSource()

	for _, n := range []int{0, -1, -100} {
		_, err := src.IntN(n)
		assert.Error(t, err)
	}
}

func TestIntNCoversRange(t *testing.T) {
	src := NewSource()

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v, err := src.IntN(4)
		require.NoError(t, err)
		seen[v] = true
	}
	// 500 draws over 4 values miss one with probability ~4*(3/4)^500.
	assert.Len(t, seen, 4)
}
