package page

import "errors"

var (
	// ErrOffsetOutOfBounds signals an in-page offset outside 1…Len.
	ErrOffsetOutOfBounds = errors.New("page: offset out of bounds")
	// ErrNotPowerOfTwo signals an invalid page capacity for address translation.
	ErrNotPowerOfTwo = errors.New("page: capacity is not a power of two")
)
