package bench

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/sparsevec"
)

// PayloadDim is the number of float64 values owned by every Payload.
const PayloadDim = 1000

// Payload is a large value with heap storage, sized like a typical object
// record keyed by ID.
type Payload struct {
	ID   int
	Data []float64
}

// NewPayload creates a Payload whose data is filled with id.
func NewPayload(id int) Payload {
	data := make([]float64, PayloadDim)
	for i := range data {
		data[i] = float64(id)
	}
	return Payload{ID: id, Data: data}
}

// Footprint implements sparsevec.Footprinter.
func (Payload) Footprint() uintptr {
	return unsafe.Sizeof(Payload{}) + PayloadDim*unsafe.Sizeof(float64(0))
}

// heapBytes is the part of the footprint that lives outside the struct.
const heapBytes = PayloadDim * unsafe.Sizeof(float64(0))

// Kind identifies a container implementation.
type Kind string

const (
	// KindDense is a slice indexed by ID with an empty Payload for gaps.
	KindDense Kind = "dense"
	// KindMap is a Go map keyed by ID.
	KindMap Kind = "map"
	// KindSparse is a sparsevec.Vector.
	KindSparse Kind = "sparse"
)

// AllKinds lists every supported kind in report order.
var AllKinds = []Kind{KindDense, KindMap, KindSparse}

// ParseKind converts a name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(AllKinds, k) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Memory is an estimate of the bytes held by a store.
type Memory struct {
	// Values covers the stored payloads including their heap data.
	Values uintptr
	// Index covers lookup structures (the sparse slot table).
	Index uintptr
}

// Total returns Values + Index.
func (m Memory) Total() uintptr { return m.Values + m.Index }

// Store is the common surface every benchmarked container exposes.
type Store interface {
	Kind() Kind
	Set(id int, p Payload)
	Lookup(id int) (Payload, bool)
	Len() int
	Memory() Memory
	// Bitmap returns the populated IDs.
	Bitmap() *roaring.Bitmap
}

// NewStore creates an empty store of the given kind. maxID pre-sizes the
// dense store.
func NewStore(kind Kind, maxID int) (Store, error) {
	switch kind {
	case KindDense:
		return &denseStore{items: make([]Payload, maxID+1)}, nil
	case KindMap:
		return &mapStore{items: make(map[int]Payload)}, nil
	case KindSparse:
		return &sparseStore{v: sparsevec.New[Payload]()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

type denseStore struct {
	items []Payload
	n     int
}

func (s *denseStore) Kind() Kind { return KindDense }

func (s *denseStore) Set(id int, p Payload) {
	if id >= len(s.items) {
		s.items = slices.Grow(s.items, id+1-len(s.items))[:id+1]
	}
	if s.items[id].Data == nil {
		s.n++
	}
	s.items[id] = p
}

func (s *denseStore) Lookup(id int) (Payload, bool) {
	if id < 0 || id >= len(s.items) || s.items[id].Data == nil {
		return Payload{}, false
	}
	return s.items[id], true
}

func (s *denseStore) Len() int { return s.n }

func (s *denseStore) Memory() Memory {
	return Memory{
		Values: uintptr(cap(s.items))*unsafe.Sizeof(Payload{}) + uintptr(s.n)*heapBytes,
	}
}

func (s *denseStore) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for id, p := range s.items {
		if p.Data != nil {
			bm.Add(uint32(id))
		}
	}
	return bm
}

type mapStore struct {
	items map[int]Payload
}

func (s *mapStore) Kind() Kind { return KindMap }

func (s *mapStore) Set(id int, p Payload) { s.items[id] = p }

func (s *mapStore) Lookup(id int) (Payload, bool) {
	p, ok := s.items[id]
	return p, ok
}

func (s *mapStore) Len() int { return len(s.items) }

// Memory approximates the map as key plus payload per entry; bucket
// overhead is not visible from Go.
func (s *mapStore) Memory() Memory {
	return Memory{
		Values: uintptr(len(s.items)) * (unsafe.Sizeof(int(0)) + Payload{}.Footprint()),
	}
}

func (s *mapStore) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for id := range s.items {
		bm.Add(uint32(id))
	}
	return bm
}

type sparseStore struct {
	v *sparsevec.Vector[Payload]
}

func (s *sparseStore) Kind() Kind { return KindSparse }

func (s *sparseStore) Set(id int, p Payload) { *s.v.Ref(id) = p }

func (s *sparseStore) Lookup(id int) (Payload, bool) {
	it := s.v.Find(id)
	if it.Equal(s.v.End()) {
		return Payload{}, false
	}
	return *it.Value(), true
}

func (s *sparseStore) Len() int { return s.v.Len() }

func (s *sparseStore) Memory() Memory {
	values, slots := s.v.MemoryUsage()
	return Memory{Values: values, Index: slots}
}

func (s *sparseStore) Bitmap() *roaring.Bitmap { return s.v.Bitmap() }
