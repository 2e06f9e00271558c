package page

// Summary aggregates page-level occupancy figures.
type Summary struct {
	Pages    uint64
	Slots    uint64
	Holes    uint64
	Capacity uint64 // allocated slots, i.e. sum of backing array capacities
}

// Occupied returns the number of slots holding a value.
func (s Summary) Occupied() uint64 {
	return s.Slots - s.Holes
}

// Summary returns occupancy figures for this page.
func (p *Page[T]) Summary() Summary {
	if p == nil {
		return Summary{}
	}
	return Summary{
		Pages:    1,
		Slots:    uint64(p.Len()),
		Holes:    uint64(p.Holes()),
		Capacity: uint64(p.Cap()),
	}
}

// Monoid aggregates page summaries.
//
// Add is associative and Zero is its neutral element.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries.
func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Pages:    left.Pages + right.Pages,
		Slots:    left.Slots + right.Slots,
		Holes:    left.Holes + right.Holes,
		Capacity: left.Capacity + right.Capacity,
	}
}
