package sparsevec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	v := New[int]()
	*v.Ref(0) = 0
	*v.Ref(5) = 50
	*v.Ref(10) = 100

	it := v.Begin()
	assert.Equal(t, 0, *it.Value())

	it.Next()
	assert.Equal(t, 50, *it.Value())
	assert.Equal(t, 5, it.Index())

	prev := it.PostNext()
	assert.Equal(t, 50, *prev.Value())
	assert.Equal(t, 100, *it.Value())

	sum := 0
	for it = v.Begin(); !it.Equal(v.End()); it.Next() {
		sum += *it.Value()
	}
	assert.Equal(t, 150, sum)
	assert.True(t, it.Done())

	it1, it2, it3 := v.Begin(), v.Begin(), v.End()
	assert.True(t, it1.Equal(it2))
	it2.Next()
	assert.False(t, it1.Equal(it2))
	assert.False(t, it1.Equal(it3))
}

func TestIterator_IndexOrder(t *testing.T) {
	v := New[string]()
	v.Insert(5, "five")
	v.Insert(10, "ten")
	v.Insert(0, "zero")

	var got []string
	for it := v.Begin(); !it.Done(); it.Next() {
		got = append(got, *it.Value())
	}
	assert.Equal(t, []string{"zero", "five", "ten"}, got)
}

func TestIterator_EmptyContainer(t *testing.T) {
	var v Vector[int]
	assert.True(t, v.Begin().Equal(v.End()))

	sized := NewSized[int](100)
	assert.True(t, sized.Begin().Equal(sized.End()))

	for range v.All() {
		t.Fatal("empty vector yielded a value")
	}
}

func TestIterator_DifferentContainers(t *testing.T) {
	a, b := New[int](), New[int]()
	a.Insert(1, 1)
	b.Insert(1, 1)

	assert.False(t, a.Begin().Equal(b.Begin()))
	assert.True(t, a.End().Equal(a.End()))
}

func TestIterator_MutateThroughValue(t *testing.T) {
	v := New[int]()
	v.Insert(2, 1)
	v.Insert(4, 2)

	for it := v.Begin(); !it.Equal(v.End()); it.Next() {
		*it.Value() *= 10
	}
	for _, p := range v.All() {
		*p++
	}

	var got []int
	for val := range v.Values() {
		got = append(got, val)
	}
	assert.Equal(t, []int{11, 21}, got)
}

func TestFind(t *testing.T) {
	v := New[int]()
	v.Insert(3, 30)
	v.Insert(8, 80)

	it := v.Find(8)
	require.False(t, it.Equal(v.End()))
	assert.Equal(t, 80, *it.Value())
	assert.Equal(t, 8, it.Index())

	it = v.Find(3)
	it.Next()
	assert.Equal(t, 8, it.Index())
	it.Next()
	assert.True(t, it.Equal(v.End()))

	assert.True(t, v.Find(4).Equal(v.End()))
	assert.True(t, v.Find(500).Equal(v.End()))
	assert.True(t, v.Find(-2).Equal(v.End()))
	assert.Equal(t, 2, v.Len())
}

func TestAll_EarlyBreak(t *testing.T) {
	v := New[int]()
	for i := 0; i < 10; i++ {
		v.Insert(i*3, i)
	}

	var seen []int
	for i := range v.Indices() {
		if i > 6 {
			break
		}
		seen = append(seen, i)
	}
	assert.Equal(t, []int{0, 3, 6}, seen)
}
