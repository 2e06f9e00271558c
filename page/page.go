package page

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Slot is a single page position: either a value or a hole.
//
// A hole is distinct from the zero value of T. Bulk transforms hand slots
// to client functions, holes included.
type Slot[T any] struct {
	Value T
	Empty bool
}

// Hole returns an empty slot.
func Hole[T any]() Slot[T] {
	return Slot[T]{Empty: true}
}

// Filled returns a slot holding v.
func Filled[T any](v T) Slot[T] {
	return Slot[T]{Value: v}
}

// Page is a densely indexed slot array with positions 1…Len().
//
// Values live in a slice; holes are tracked in a Roaring bitmap of 0-based
// offsets, which stays small for the usual case of few removals. A page is
// not safe for concurrent use, but distinct pages may be mutated by
// distinct goroutines.
type Page[T any] struct {
	vals  []T
	holes *roaring.Bitmap
}

// New creates an empty page with room for hint slots before the backing
// array has to grow.
func New[T any](hint int) *Page[T] {
	if hint < 0 {
		hint = 0
	}
	return &Page[T]{
		vals:  make([]T, 0, hint),
		holes: roaring.New(),
	}
}

// NewFilled creates a page of n slots, each holding v.
func NewFilled[T any](n int, v T) *Page[T] {
	p := New[T](n)
	p.vals = p.vals[:n]
	for k := range p.vals {
		p.vals[k] = v
	}
	return p
}

// NewHoles creates a page of n empty slots.
func NewHoles[T any](n int) *Page[T] {
	p := New[T](n)
	p.vals = p.vals[:n]
	if n > 0 {
		p.holes.AddRange(0, uint64(n))
	}
	return p
}

// FromValues creates a page holding a copy of vs.
func FromValues[T any](vs ...T) *Page[T] {
	p := New[T](len(vs))
	p.vals = append(p.vals, vs...)
	return p
}

// Len returns the number of slots in use, holes included.
func (p *Page[T]) Len() int {
	if p == nil {
		return 0
	}
	return len(p.vals)
}

// Cap returns the capacity of the current backing array.
func (p *Page[T]) Cap() int {
	if p == nil {
		return 0
	}
	return cap(p.vals)
}

// Holes returns the number of empty slots.
func (p *Page[T]) Holes() int {
	if p == nil {
		return 0
	}
	return int(p.holes.GetCardinality())
}

// Occupied returns the number of slots holding a value.
func (p *Page[T]) Occupied() int {
	return p.Len() - p.Holes()
}

func (p *Page[T]) inRange(offset int) bool {
	return offset >= 1 && offset <= len(p.vals)
}

func (p *Page[T]) isHole(k int) bool {
	return p.holes.Contains(uint32(k))
}

// At returns the value at offset. The boolean is false if offset is out of
// range or the slot is a hole.
func (p *Page[T]) At(offset int) (T, bool) {
	var zero T
	if p == nil || !p.inRange(offset) || p.isHole(offset-1) {
		return zero, false
	}
	return p.vals[offset-1], true
}

// SlotAt returns the slot at offset. The boolean is false only if offset is
// out of range.
func (p *Page[T]) SlotAt(offset int) (Slot[T], bool) {
	if p == nil || !p.inRange(offset) {
		return Slot[T]{}, false
	}
	return p.slot(offset - 1), true
}

func (p *Page[T]) slot(k int) Slot[T] {
	if p.isHole(k) {
		return Hole[T]()
	}
	return Filled(p.vals[k])
}

// Set stores v at offset, filling a hole if there was one.
func (p *Page[T]) Set(offset int, v T) error {
	if p == nil || !p.inRange(offset) {
		return ErrOffsetOutOfBounds
	}
	p.vals[offset-1] = v
	p.holes.Remove(uint32(offset - 1))
	return nil
}

// SetSlot stores s at offset. An empty slot turns the position into a hole.
func (p *Page[T]) SetSlot(offset int, s Slot[T]) error {
	if p == nil || !p.inRange(offset) {
		return ErrOffsetOutOfBounds
	}
	p.store(offset-1, s)
	return nil
}

func (p *Page[T]) store(k int, s Slot[T]) {
	if s.Empty {
		var zero T
		p.vals[k] = zero
		p.holes.Add(uint32(k))
		return
	}
	p.vals[k] = s.Value
	p.holes.Remove(uint32(k))
}

// Clear turns the slot at offset into a hole. It reports whether the slot
// held a value before.
func (p *Page[T]) Clear(offset int) (bool, error) {
	if p == nil || !p.inRange(offset) {
		return false, ErrOffsetOutOfBounds
	}
	k := offset - 1
	if p.isHole(k) {
		return false, nil
	}
	var zero T
	p.vals[k] = zero // release references held by the slot
	p.holes.Add(uint32(k))
	return true, nil
}

// Append adds v behind the last slot, unless the page already holds limit
// slots. The boolean is false if the append would exceed limit; in that case
// the page is unchanged.
func (p *Page[T]) Append(v T, limit int) bool {
	if len(p.vals) >= limit {
		return false
	}
	p.vals = append(p.vals, v)
	return true
}

// IndexFunc returns the offset of the first value satisfying pred, or 0.
// Holes never match.
func (p *Page[T]) IndexFunc(pred func(T) bool) int {
	if p == nil {
		return 0
	}
	for k, v := range p.vals {
		if p.isHole(k) {
			continue
		}
		if pred(v) {
			return k + 1
		}
	}
	return 0
}

// Each visits values in ascending offset order, skipping holes.
//
// Iteration stops early if fn returns false. Each reports whether the walk
// completed.
func (p *Page[T]) Each(fn func(offset int, v T) bool) bool {
	if p == nil {
		return true
	}
	if p.holes.IsEmpty() {
		for k, v := range p.vals {
			if !fn(k+1, v) {
				return false
			}
		}
		return true
	}
	for k, v := range p.vals {
		if p.isHole(k) {
			continue
		}
		if !fn(k+1, v) {
			return false
		}
	}
	return true
}

// Transform replaces every slot, holes included, with fn(base+offset, slot).
// base is the global index preceding the first slot of the page.
func (p *Page[T]) Transform(base int, fn func(i int, s Slot[T]) Slot[T]) {
	if p == nil {
		return
	}
	for k := range p.vals {
		p.store(k, fn(base+k+1, p.slot(k)))
	}
}

// TransformErr is like Transform, but stops at the first error returned by
// fn. Slots visited before the failing one keep their new contents.
func (p *Page[T]) TransformErr(base int, fn func(i int, s Slot[T]) (Slot[T], error)) error {
	if p == nil {
		return nil
	}
	for k := range p.vals {
		s, err := fn(base+k+1, p.slot(k))
		if err != nil {
			return err
		}
		p.store(k, s)
	}
	return nil
}

// Update replaces the slot at offset with fn(i, slot). It is a no-op if
// offset is out of range.
func (p *Page[T]) Update(offset, i int, fn func(i int, s Slot[T]) Slot[T]) bool {
	if p == nil || !p.inRange(offset) {
		return false
	}
	k := offset - 1
	p.store(k, fn(i, p.slot(k)))
	return true
}
