package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
	}
}

// UniqueIDs returns count distinct IDs drawn from [1, maxID], sorted
// ascending. count is clamped to maxID.
func (r *RNG) UniqueIDs(count, maxID int) []int {
	if count <= 0 || maxID <= 0 {
		return nil
	}
	count = min(count, maxID)

	r.mu.Lock()
	perm := r.rand.Perm(maxID)
	r.mu.Unlock()

	ids := perm[:count]
	for i := range ids {
		ids[i]++
	}
	slices.Sort(ids)
	return ids
}

// IDs returns count IDs drawn from [0, maxID) with repetition allowed, in
// generation order.
func (r *RNG) IDs(count, maxID int) []int {
	if count <= 0 || maxID <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, count)
	for i := range ids {
		ids[i] = r.rand.Intn(maxID)
	}
	return ids
}
