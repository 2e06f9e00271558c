package segarray

import "github.com/npillmayer/segarray/page"

// GetValueAtIndex returns the element at global index i.
//
// The boolean is false if the page for i does not exist, if i lies beyond
// the page's length, or if the slot is a hole. i must be positive.
func (a *Array[T]) GetValueAtIndex(i int) (T, bool) {
	p, off := a.locate(i)
	return p.At(off) // nil pages answer with "not found"
}

// Replace overwrites the slot at global index i with v, filling a hole if
// there is one. It is a no-op if the slot does not exist.
//
// Replace does not adjust the element count.
func (a *Array[T]) Replace(i int, v T) {
	p, off := a.locate(i)
	if p == nil {
		return
	}
	_ = p.Set(off, v) // out-of-range offsets are a no-op
}

// InsertBack appends v behind the last slot of the array.
//
// If the last page is full (or there is no page yet), a new page with
// GrowthHint capacity is created and appended to the page table. The backing
// array of a page grows as needed, up to PageLimit slots. Inserting into a
// nil array is a no-op.
func (a *Array[T]) InsertBack(v T) {
	if a == nil {
		return
	}
	n := len(a.pages)
	if n > 0 && a.pages[n-1].Append(v, a.cfg.PageLimit) {
		a.count++
		return
	}
	p := page.New[T](a.cfg.GrowthHint)
	err := a.SetPage(n+1, p)
	mustHold(err == nil, "InsertBack: cannot append page")
	tracer().Debugf("segarray: started page %d with capacity %d", n+1, a.cfg.GrowthHint)
	ok := p.Append(v, a.cfg.PageLimit)
	mustHold(ok, "InsertBack: fresh page rejected append")
	a.count++
}

// RemoveIndex turns the slot at global index i into a hole.
//
// No other element moves. The element count is decremented only if the slot
// held a value. Removing a missing slot is a no-op.
func (a *Array[T]) RemoveIndex(i int) {
	p, off := a.locate(i)
	if p == nil {
		return
	}
	if wasSet, err := p.Clear(off); err == nil && wasSet {
		a.count--
	}
}

// locate returns the page for global index i, or nil, together with the
// offset of i within that page.
func (a *Array[T]) locate(i int) (*page.Page[T], int) {
	if a == nil {
		return nil, 0
	}
	pageID, off := a.geom.Locate(i)
	p, _ := a.GetPage(pageID)
	return p, off
}
