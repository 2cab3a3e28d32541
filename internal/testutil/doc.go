// Package testutil provides deterministic random data for tests and the
// benchmark harness.
//
// All generators are seeded so that runs are reproducible:
//
//	rng := testutil.NewRNG(42)
//	ids := rng.UniqueIDs(1000, 10000) // sorted, unique, in [1, 10000]
package testutil
