package bench

import "errors"

var (
	// ErrUnknownKind is returned for an unsupported container kind.
	ErrUnknownKind = errors.New("unknown container kind")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrMismatch is returned when a store does not hold exactly the
	// generated IDs after the add phase.
	ErrMismatch = errors.New("store content mismatch")
)
