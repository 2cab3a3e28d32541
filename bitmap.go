package sparsevec

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap returns the populated indices as a new roaring bitmap.
//
// The bitmap is a snapshot; later mutations of v are not reflected.
func (v *Vector[T]) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for i := range v.Indices() {
		bm.Add(uint32(i))
	}
	return bm
}

// Retain erases every populated index that is not in bm.
//
// Unlike repeated Erase calls, Retain compacts the dense store in a single
// pass regardless of how many indices are dropped.
func (v *Vector[T]) Retain(bm *roaring.Bitmap) {
	if bm == nil {
		v.compact(func(int) bool { return false })
		return
	}
	v.compact(func(i int) bool { return bm.Contains(uint32(i)) })
}
