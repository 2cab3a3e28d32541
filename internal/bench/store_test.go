package bench

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	for _, kind := range AllKinds {
		t.Run(string(kind), func(t *testing.T) {
			s, err := NewStore(kind, 100)
			require.NoError(t, err)
			assert.Equal(t, kind, s.Kind())

			s.Set(7, NewPayload(7))
			s.Set(42, NewPayload(42))
			s.Set(7, NewPayload(7))
			s.Set(250, NewPayload(250))

			assert.Equal(t, 3, s.Len())

			p, ok := s.Lookup(42)
			require.True(t, ok)
			assert.Equal(t, 42, p.ID)
			assert.Len(t, p.Data, PayloadDim)
			assert.Equal(t, float64(42), p.Data[PayloadDim-1])

			_, ok = s.Lookup(8)
			assert.False(t, ok)
			_, ok = s.Lookup(10_000)
			assert.False(t, ok)

			assert.Equal(t, []uint32{7, 42, 250}, s.Bitmap().ToArray())
			assert.Positive(t, s.Memory().Total())
		})
	}

	_, err := NewStore("btree", 10)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("sparse")
	require.NoError(t, err)
	assert.Equal(t, KindSparse, k)

	_, err = ParseKind("vector")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestPayloadFootprint(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(Payload{})+8000, Payload{}.Footprint())
}

func TestSparseStoreMemory(t *testing.T) {
	s, err := NewStore(KindSparse, 0)
	require.NoError(t, err)

	s.Set(3, NewPayload(3))
	m := s.Memory()
	assert.Equal(t, Payload{}.Footprint(), m.Values)
	assert.Positive(t, m.Index)
	assert.Equal(t, m.Values+m.Index, m.Total())
}
