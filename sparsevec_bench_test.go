package sparsevec

import (
	"testing"

	"github.com/hupe1980/sparsevec/internal/testutil"
)

const (
	benchObjects = 1000
	benchMaxID   = 10000
)

func BenchmarkVector_Insert(b *testing.B) {
	ids := testutil.NewRNG(42).UniqueIDs(benchObjects, benchMaxID)

	b.ReportAllocs()
	for b.Loop() {
		v := New[int]()
		for _, id := range ids {
			v.Insert(id, id)
		}
	}
}

func BenchmarkVector_Get(b *testing.B) {
	ids := testutil.NewRNG(42).UniqueIDs(benchObjects, benchMaxID)
	v := New[int]()
	for _, id := range ids {
		v.Insert(id, id)
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, id := range ids {
			if _, err := v.Get(id); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkVector_Find(b *testing.B) {
	rng := testutil.NewRNG(42)
	v := New[int]()
	for _, id := range rng.UniqueIDs(benchObjects, benchMaxID) {
		v.Insert(id, id)
	}
	// lookups drawn from the whole ID space, so most of them miss
	lookups := rng.IDs(benchObjects, benchMaxID)

	b.ReportAllocs()
	for b.Loop() {
		hits := 0
		for _, id := range lookups {
			if !v.Find(id).Equal(v.End()) {
				hits++
			}
		}
		_ = hits
	}
}

func BenchmarkVector_Iterate(b *testing.B) {
	ids := testutil.NewRNG(42).UniqueIDs(benchObjects, benchMaxID)
	v := New[int]()
	for _, id := range ids {
		v.Insert(id, id)
	}

	b.ReportAllocs()
	for b.Loop() {
		sum := 0
		for it := v.Begin(); !it.Done(); it.Next() {
			sum += *it.Value()
		}
		_ = sum
	}
}

func BenchmarkVector_Erase(b *testing.B) {
	ids := testutil.NewRNG(42).UniqueIDs(benchObjects, benchMaxID)

	b.ReportAllocs()
	for b.Loop() {
		b.StopTimer()
		v := New[int]()
		for _, id := range ids {
			v.Insert(id, id)
		}
		b.StartTimer()

		for _, id := range ids[:benchObjects/10] {
			v.Erase(id)
		}
	}
}
