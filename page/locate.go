package page

import (
	"fmt"
	"math/bits"
)

// Locate maps a 1-based global index to a page id and a 1-based offset
// within that page, for pages holding capacity slots each.
//
//	pageID = ((i-1) div capacity) + 1
//	offset = ((i-1) mod capacity) + 1
//
// capacity must be a power of two. Indices below 1 are not checked.
func Locate(i, capacity int) (pageID, offset int) {
	shift := uint(bits.TrailingZeros(uint(capacity)))
	mask := capacity - 1
	return ((i - 1) >> shift) + 1, ((i - 1) & mask) + 1
}

// Global is the inverse of Locate: it returns the global index of slot
// offset in page pageID.
func Global(pageID, offset, capacity int) int {
	return (pageID-1)*capacity + offset
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Geometry caches the shift and mask for a fixed page capacity.
//
// The zero value is not usable; create one with NewGeometry.
type Geometry struct {
	capacity int
	shift    uint
	mask     int
}

// NewGeometry creates an address translator for pages of the given capacity.
func NewGeometry(capacity int) (Geometry, error) {
	if !IsPowerOfTwo(capacity) {
		return Geometry{}, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, capacity)
	}
	return Geometry{
		capacity: capacity,
		shift:    uint(bits.TrailingZeros(uint(capacity))),
		mask:     capacity - 1,
	}, nil
}

// Capacity returns the number of slots per page.
func (g Geometry) Capacity() int {
	return g.capacity
}

// Locate translates global index i into (pageID, offset).
func (g Geometry) Locate(i int) (pageID, offset int) {
	return ((i - 1) >> g.shift) + 1, ((i - 1) & g.mask) + 1
}

// Global translates (pageID, offset) into a global index.
func (g Geometry) Global(pageID, offset int) int {
	return (pageID-1)<<g.shift + offset
}

// First returns the global index of the first slot of page pageID.
func (g Geometry) First(pageID int) int {
	return g.Global(pageID, 1)
}

// Last returns the global index of the last addressable slot of page pageID.
func (g Geometry) Last(pageID int) int {
	return g.Global(pageID, g.capacity)
}
