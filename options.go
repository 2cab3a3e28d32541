package sparsevec

type options struct {
	length   int
	capacity int
}

// Option configures Vector construction.
type Option func(*options)

// WithLen pre-sizes the slot table to n absent slots.
//
// No value storage is allocated.
func WithLen(n int) Option {
	return func(o *options) {
		o.length = n
	}
}

// WithCapacity preallocates room for n values in the dense store.
//
// It is a hint for callers that know their population up front; the slot
// table is unaffected.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func applyOptions(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.length < 0 {
		o.length = 0
	}
	if o.capacity < 0 {
		o.capacity = 0
	}
	return o
}
