package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueIDs(t *testing.T) {
	rng := NewRNG(4711)

	ids := rng.UniqueIDs(1000, 10000)
	require.Len(t, ids, 1000)
	assert.True(t, slices.IsSorted(ids))
	assert.Equal(t, len(ids), len(slices.Compact(slices.Clone(ids))))
	assert.GreaterOrEqual(t, ids[0], 1)
	assert.LessOrEqual(t, ids[len(ids)-1], 10000)

	assert.Len(t, rng.UniqueIDs(50, 10), 10)
	assert.Nil(t, rng.UniqueIDs(0, 10))
	assert.Nil(t, rng.UniqueIDs(5, 0))
}

func TestIDs(t *testing.T) {
	ids := NewRNG(7).IDs(20, 100)
	require.Len(t, ids, 20)
	assert.Equal(t, ids, NewRNG(7).IDs(20, 100))

	for _, id := range ids {
		assert.Less(t, id, 100)
		assert.GreaterOrEqual(t, id, 0)
	}

	assert.Nil(t, NewRNG(7).IDs(0, 100))
	assert.Nil(t, NewRNG(7).IDs(5, 0))
}

func TestUniqueIDs_Deterministic(t *testing.T) {
	a := NewRNG(1).UniqueIDs(100, 1000)
	b := NewRNG(1).UniqueIDs(100, 1000)
	assert.Equal(t, a, b)
}
