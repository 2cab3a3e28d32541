package sparsevec

// Iterator is a forward cursor over the populated indices of a Vector in
// ascending order.
//
// An iterator is positioned either on a populated index or at End(), which
// is one past the high-water mark. Calling Value at End() panics.
type Iterator[T any] struct {
	v   *Vector[T]
	idx int
}

// Begin returns an iterator at the lowest populated index, or End() if the
// Vector is empty.
func (v *Vector[T]) Begin() Iterator[T] {
	it := Iterator[T]{v: v}
	it.seek()
	return it
}

// End returns the iterator one past the high-water mark.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, idx: v.maxIndex + 1}
}

// Index returns the external index the iterator is positioned at.
func (it Iterator[T]) Index() int { return it.idx }

// Value returns a pointer to the value at the iterator's index.
func (it Iterator[T]) Value() *T {
	return &it.v.values[it.v.slots[it.idx]-1]
}

// Done reports whether the iterator has moved past the high-water mark.
func (it Iterator[T]) Done() bool { return it.idx > it.v.maxIndex }

// Equal reports whether both iterators walk the same Vector and sit at the
// same index.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.idx == other.idx
}

// Next advances to the next populated index and returns the iterator.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.idx++
	it.seek()
	return it
}

// PostNext advances the iterator and returns its position before the move.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.Next()
	return prev
}

// seek moves forward until a populated slot or one past the high-water mark.
func (it *Iterator[T]) seek() {
	v := it.v
	for it.idx <= v.maxIndex && (it.idx >= len(v.slots) || v.slots[it.idx] == absent) {
		it.idx++
	}
}
