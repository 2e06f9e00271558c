package segarray

import (
	"fmt"
	"math"

	"github.com/npillmayer/segarray/page"
)

// TransformRange replaces the slots at global indices start, start+step,
// start+2*step, … up to and including end with fn(i, slot). Holes are passed
// to fn as empty slots.
//
// Indices on pages which do not exist, or beyond the length of their page,
// are skipped silently. An end below start is a no-op. start and step must
// be positive.
//
// The element count is not adjusted.
func (a *Array[T]) TransformRange(start, end, step int, fn func(i int, s page.Slot[T]) page.Slot[T]) error {
	if a == nil || fn == nil {
		return fmt.Errorf("%w: nil array or transform", ErrIllegalArguments)
	}
	if start < 1 || step < 1 {
		return fmt.Errorf("%w: range start=%d step=%d", ErrIllegalArguments, start, step)
	}
	if end < start {
		return nil
	}
	startPage, _ := a.geom.Locate(start)
	endPage, _ := a.geom.Locate(end)
	if startPage == endPage {
		a.stride(startPage, start, end, step, fn)
		return nil
	}
	tracer().Debugf("segarray: range transform [%d…%d] spans pages %d…%d", start, end, startPage, endPage)
	// first page
	a.stride(startPage, start, a.geom.Last(startPage), step, fn)
	// middle pages; pages beyond the page table cannot hold any slot
	for pageID := startPage + 1; pageID < endPage && pageID <= len(a.pages); pageID++ {
		first := align(a.geom.First(pageID), start, step)
		a.stride(pageID, first, a.geom.Last(pageID), step, fn)
	}
	// last page
	a.stride(endPage, align(a.geom.First(endPage), start, step), end, step, fn)
	return nil
}

// stride applies fn to from, from+step, … ≤ to, all of which must lie on
// page pageID.
func (a *Array[T]) stride(pageID, from, to, step int, fn func(int, page.Slot[T]) page.Slot[T]) {
	p, ok := a.GetPage(pageID)
	if !ok {
		return
	}
	if from > to {
		return
	}
	for i := from; ; i += step {
		_, off := a.geom.Locate(i)
		if !p.Update(off, i, fn) {
			break // past the page's length; later offsets are, too
		}
		if to-i < step { // i+step would pass to, or overflow
			break
		}
	}
}

// align returns the smallest index ≥ first which is congruent to start
// modulo step. first must not be smaller than start. If no such index is
// representable, align returns math.MaxInt, which lies beyond every page.
func align(first, start, step int) int {
	r := (first - start) % step
	if r == 0 {
		return first
	}
	if first > math.MaxInt-(step-r) {
		return math.MaxInt
	}
	return first + step - r
}
