// Package sparsevec provides a sparse, index-addressable array for Go.
//
// A Vector stores only the indices that were actually assigned, while keeping
// O(1) random access by non-negative integer index. It targets key spaces that
// are large but thinly populated (object IDs up to hundreds of thousands with
// a few thousand live entries), where a dense slice wastes memory and a map is
// slower and less cache friendly.
//
// # Layout
//
// Two backing stores are kept:
//
//   - Dense store: the populated values, contiguous, in first-insertion order
//   - Slot table: indexed by external index, each entry absent or a dense position
//
// plus a high-water mark (the largest index referenced) that bounds iteration.
//
// # Quick Start
//
//	v := sparsevec.New[string]()
//	v.Insert(5, "five")
//	*v.Ref(100_000) = "large"  // populates with the zero value, then assigns
//
//	s, err := v.Get(7)         // err is an *OutOfRangeError
//	if errors.Is(err, sparsevec.ErrOutOfRange) { ... }
//
//	for i, val := range v.All() {  // ascending index order
//	    fmt.Println(i, *val)
//	}
//
// # Complexity
//
//   - Ref, Insert, PushBack, Get, At, Contains: amortized O(1)
//   - Erase, PopBack: O(SlotLen()), the slot table is rewritten after the dense
//     store is compacted
//   - Retain, Resize: O(SlotLen() + Len()) however many values are dropped
//   - MemoryUsage, Capacity: O(1)
//
// # Memory Accounting
//
// MemoryUsage reports capacity-based byte counts for both stores. Value types
// that own heap storage can implement Footprinter so that the per-value size
// includes it.
package sparsevec
