package segarray

import "fmt"

// Check validates structural invariants of the page table.
//
// It is intended for tests and debugging. A difference between the element
// count and the number of occupied slots is not an error, as the count is a
// running tally (see GetTotalLen).
func (a *Array[T]) Check() error {
	if a == nil {
		return fmt.Errorf("%w: nil array", ErrIllegalArguments)
	}
	if a.geom.Capacity() != a.cfg.PageLimit {
		return fmt.Errorf("%w: address geometry does not match page limit %d",
			ErrInvalidConfig, a.cfg.PageLimit)
	}
	for k, p := range a.pages {
		if p == nil {
			return fmt.Errorf("%w: nil page at id %d", ErrCorruptPageTable, k+1)
		}
		if p.Len() > a.cfg.PageLimit {
			return fmt.Errorf("%w: page %d holds %d slots, limit is %d",
				ErrCorruptPageTable, k+1, p.Len(), a.cfg.PageLimit)
		}
		if p.Holes() > p.Len() {
			return fmt.Errorf("%w: page %d has more holes than slots", ErrCorruptPageTable, k+1)
		}
	}
	if a.count < 0 {
		return fmt.Errorf("%w: negative element count %d", ErrCorruptPageTable, a.count)
	}
	if occupied := a.Recount(); occupied != a.count {
		tracer().Debugf("segarray: element count %d differs from %d occupied slots", a.count, occupied)
	}
	return nil
}
