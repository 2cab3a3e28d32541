package sparsevec

import (
	"reflect"
	"unsafe"
)

// Footprinter is implemented by value types that know their own memory
// footprint, including heap storage they own (slices, maps, buffers).
//
// When T implements Footprinter (on the value or pointer receiver),
// MemoryUsage reports Footprint() of a zero T per dense-store slot instead
// of unsafe.Sizeof(T). Pointer element types always use the pointer size.
type Footprinter interface {
	Footprint() uintptr
}

// valueSize returns the per-value accounting size for T.
func valueSize[T any]() uintptr {
	var zero T
	if reflect.TypeFor[T]().Kind() == reflect.Pointer {
		return unsafe.Sizeof(zero)
	}
	if f, ok := any(zero).(Footprinter); ok {
		return f.Footprint()
	}
	if f, ok := any(&zero).(Footprinter); ok {
		return f.Footprint()
	}
	return unsafe.Sizeof(zero)
}

// slotSize is the size of one slot-table entry.
const slotSize = unsafe.Sizeof(slot(0))
