package sparsevec

import (
	"iter"
	"math"
	"slices"
)

// slot is a slot-table entry: 0 marks an absent index, any other value is
// the dense-store position plus one.
type slot uint32

const absent slot = 0

// maxLen bounds the slot table and the dense store so that every position
// fits a slot.
const maxLen = math.MaxUint32

// Vector is a sparse, index-addressable array.
//
// Values live in a dense store in first-insertion order; a slot table indexed
// by external index maps each populated index to its dense-store position.
// Iteration walks the slot table and yields values in ascending index order.
//
// The zero value is an empty Vector ready to use. A Vector is not safe for
// concurrent use.
//
// Pointers returned by Ref, At and Iterator.Value stay valid until the next
// call that adds or removes values.
type Vector[T any] struct {
	values   []T
	slots    []slot
	maxIndex int // high-water mark
}

// New creates an empty Vector.
func New[T any](optFns ...Option) *Vector[T] {
	o := applyOptions(optFns)

	v := &Vector[T]{}
	if o.length > 0 {
		v.slots = make([]slot, o.length)
	}
	if o.capacity > 0 {
		v.values = make([]T, 0, o.capacity)
	}
	return v
}

// NewSized creates a Vector whose slot table holds n absent slots.
func NewSized[T any](n int) *Vector[T] {
	return New[T](WithLen(n))
}

// Len returns the population count.
func (v *Vector[T]) Len() int { return len(v.values) }

// Empty reports whether no index is populated.
func (v *Vector[T]) Empty() bool { return len(v.values) == 0 }

// HighWater returns the largest index referenced by a write access,
// insertion, append or reservation.
func (v *Vector[T]) HighWater() int { return v.maxIndex }

// SlotLen returns the slot-table length.
func (v *Vector[T]) SlotLen() int { return len(v.slots) }

// MaxLen returns the largest slot-table length the Vector can address.
func (v *Vector[T]) MaxLen() int {
	return int(min(uint64(math.MaxInt), maxLen))
}

// Capacity returns how many values the dense store holds without
// reallocating.
func (v *Vector[T]) Capacity() int { return cap(v.values) }

// Ref returns a pointer to the value at index i, appending a zero T to the
// dense store if i is not yet populated.
//
// Ref panics with an *OutOfRangeError if i is negative or not addressable.
func (v *Vector[T]) Ref(i int) *T {
	v.mustAddress(i)
	v.touch(i)

	s := v.slots[i]
	if s == absent {
		var zero T
		s = v.appendValue(zero)
		v.slots[i] = s
	}
	return &v.values[s-1]
}

// Get returns a copy of the value at index i.
//
// Get never populates i; an absent index yields an *OutOfRangeError.
func (v *Vector[T]) Get(i int) (T, error) {
	pos, ok := v.lookup(i)
	if !ok {
		var zero T
		return zero, v.outOfRange(i)
	}
	return v.values[pos], nil
}

// At returns a pointer to the value at index i, or an *OutOfRangeError if
// i is absent or beyond the slot table.
func (v *Vector[T]) At(i int) (*T, error) {
	pos, ok := v.lookup(i)
	if !ok {
		return nil, v.outOfRange(i)
	}
	return &v.values[pos], nil
}

// Insert stores value at index i. A populated index is overwritten in place.
//
// Insert panics with an *OutOfRangeError if i is negative or not addressable.
func (v *Vector[T]) Insert(i int, value T) {
	v.mustAddress(i)
	v.touch(i)

	if s := v.slots[i]; s != absent {
		v.values[s-1] = value
		return
	}
	v.slots[i] = v.appendValue(value)
}

// PushBack appends value at index SlotLen() and returns that index.
//
// The new index is the slot-table length, not HighWater()+1: after a
// Resize or NewSized that grew the table past the last populated index,
// the appended value lands beyond the unused range.
//
// PushBack raises the high-water mark to the new index so the value is
// reached by iteration, Back and PopBack.
func (v *Vector[T]) PushBack(value T) int {
	i := len(v.slots)
	v.mustAddress(i)

	v.slots = append(v.slots, v.appendValue(value))
	if i > v.maxIndex {
		v.maxIndex = i
	}
	return i
}

// Erase removes the value at index i. Absent or out of range indices are
// ignored.
//
// The dense store stays contiguous, so every slot that referenced a later
// position is shifted down: Erase costs O(SlotLen()).
func (v *Vector[T]) Erase(i int) {
	pos, ok := v.lookup(i)
	if !ok {
		return
	}

	last := len(v.values) - 1
	v.values = slices.Delete(v.values, pos, pos+1)
	v.slots[i] = absent

	if pos == last {
		return
	}
	removed := slot(pos + 1)
	for j, s := range v.slots {
		if s > removed {
			v.slots[j] = s - 1
		}
	}
}

// PopBack removes the value at the highest populated index and trims the
// trailing absent slots before it. It is a no-op on an empty Vector.
func (v *Vector[T]) PopBack() {
	if len(v.values) == 0 {
		return
	}

	n := len(v.slots)
	for n > 0 && v.slots[n-1] == absent {
		n--
	}
	v.slots = v.slots[:n]
	v.maxIndex = min(v.maxIndex, n-1)

	v.Erase(n - 1)
}

// Front returns the value at the lowest populated index. This follows index
// order, not the dense store's insertion order.
func (v *Vector[T]) Front() (T, bool) {
	for _, val := range v.All() {
		return *val, true
	}
	var zero T
	return zero, false
}

// Back returns the value at the highest populated index. This follows index
// order, not the dense store's insertion order.
func (v *Vector[T]) Back() (T, bool) {
	for i := min(v.maxIndex, len(v.slots)-1); i >= 0; i-- {
		if s := v.slots[i]; s != absent {
			return v.values[s-1], true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether index i is populated.
func (v *Vector[T]) Contains(i int) bool {
	_, ok := v.lookup(i)
	return ok
}

// Find returns an iterator positioned at index i, or End() if i is not
// populated.
func (v *Vector[T]) Find(i int) Iterator[T] {
	if !v.Contains(i) {
		return v.End()
	}
	return Iterator[T]{v: v, idx: i}
}

// Reserve makes indices [0, n) addressable without further slot-table
// growth and raises the high-water mark to n-1 if it is lower.
//
// The dense store is not grown; use Grow to preallocate values.
func (v *Vector[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	v.mustAddress(n - 1)

	v.growSlots(n)
	if n-1 > v.maxIndex {
		v.maxIndex = n - 1
	}
}

// Grow makes room for n more values in the dense store.
func (v *Vector[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	v.values = slices.Grow(v.values, n)
}

// ShrinkToFit releases dense-store overallocation and trims the slot table
// to HighWater()+1 entries.
func (v *Vector[T]) ShrinkToFit() {
	if cap(v.values) > len(v.values) {
		values := make([]T, len(v.values))
		copy(values, v.values)
		v.values = values
	}

	n := len(v.slots)
	if n > 0 {
		n = min(n, v.maxIndex+1)
	}
	if cap(v.slots) > n {
		slots := make([]slot, n)
		copy(slots, v.slots)
		v.slots = slots
	}
}

// Resize sets the slot-table length to n. Shrinking erases every populated
// index >= n and clamps the high-water mark to n-1.
func (v *Vector[T]) Resize(n int) {
	n = max(n, 0)
	if n >= len(v.slots) {
		if n > 0 {
			v.mustAddress(n - 1)
		}
		v.growSlots(n)
		return
	}

	v.compact(func(i int) bool { return i < n })
	v.slots = v.slots[:n]
	v.maxIndex = max(min(v.maxIndex, n-1), 0)
}

// Clear removes all values and empties the slot table. Capacity is kept.
func (v *Vector[T]) Clear() {
	clear(v.values)
	v.values = v.values[:0]
	v.slots = v.slots[:0]
	v.maxIndex = 0
}

// Swap exchanges the contents of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}

// MemoryUsage returns the bytes held by the dense store and by the slot
// table, computed from their capacities.
//
// The per-value size is Footprint() when T implements Footprinter and
// unsafe.Sizeof(T) otherwise.
func (v *Vector[T]) MemoryUsage() (values, slots uintptr) {
	return uintptr(cap(v.values)) * valueSize[T](), uintptr(cap(v.slots)) * slotSize
}

// All returns the populated indices and pointers to their values in
// ascending index order. The Vector must not be modified during iteration,
// except through the yielded pointers.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		end := min(v.maxIndex+1, len(v.slots))
		for i := 0; i < end; i++ {
			s := v.slots[i]
			if s == absent {
				continue
			}
			if !yield(i, &v.values[s-1]) {
				return
			}
		}
	}
}

// Values returns copies of the values in ascending index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.All() {
			if !yield(*val) {
				return
			}
		}
	}
}

// Indices returns the populated indices in ascending order.
func (v *Vector[T]) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range v.All() {
			if !yield(i) {
				return
			}
		}
	}
}

func (v *Vector[T]) lookup(i int) (int, bool) {
	if i < 0 || i >= len(v.slots) {
		return 0, false
	}
	s := v.slots[i]
	if s == absent {
		return 0, false
	}
	return int(s - 1), true
}

func (v *Vector[T]) mustAddress(i int) {
	if i < 0 || uint64(i) >= maxLen {
		panic(v.outOfRange(i))
	}
}

// touch raises the high-water mark to i and makes slot i addressable.
func (v *Vector[T]) touch(i int) {
	if i > v.maxIndex {
		v.maxIndex = i
	}
	v.growSlots(i + 1)
}

// growSlots extends the slot table to n entries. Reused capacity may hold
// stale entries from an earlier shrink, so the new range is cleared.
func (v *Vector[T]) growSlots(n int) {
	old := len(v.slots)
	if n <= old {
		return
	}
	v.slots = slices.Grow(v.slots, n-old)[:n]
	clear(v.slots[old:])
}

func (v *Vector[T]) appendValue(value T) slot {
	if uint64(len(v.values)) >= maxLen {
		panic("sparsevec: dense store full")
	}
	v.values = append(v.values, value)
	return slot(len(v.values))
}

// compact drops every populated index for which keep reports false and
// rewrites the surviving slots in one pass over each store.
func (v *Vector[T]) compact(keep func(i int) bool) {
	remap := make([]slot, len(v.values))
	for i, s := range v.slots {
		if s != absent && keep(i) {
			remap[s-1] = 1
		}
	}

	w := 0
	for pos := range v.values {
		if remap[pos] == absent {
			continue
		}
		v.values[w] = v.values[pos]
		w++
		remap[pos] = slot(w)
	}
	clear(v.values[w:])
	v.values = v.values[:w]

	for i, s := range v.slots {
		if s != absent {
			v.slots[i] = remap[s-1]
		}
	}
}
