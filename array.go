package segarray

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/guiguan/caster"
	"github.com/npillmayer/segarray/page"
)

// Array is a segmented array of elements of type T.
//
// Elements are addressed by global 1-based indices. Internally they live in
// a table of pages with ids 1…PageCount(), each page holding at most
// PageLimit slots. The page table grows by appending pages only, so page ids
// never have gaps.
//
//	Operation          |   Cost
//	-------------------+-----------------
//	GetValueAtIndex    |   O(1)
//	InsertBack         |   O(1) amortized
//	RemoveIndex        |   O(1)
//	Replace            |   O(1)
//	Iterate, Find      |   O(n)
//	TransformRange     |   O((end-start)/step)
//
// Create arrays with New. An Array is not safe for concurrent use; see
// ParallelTransform for the one operation which uses goroutines internally.
type Array[T any] struct {
	cfg   Config
	geom  page.Geometry
	pages []*page.Page[T]
	count int            // running tally, see GetTotalLen
	cast  *caster.Caster // page event broadcaster, nil until first Watch
}

// New creates a segmented array. Without options the array is empty and uses
// the default configuration.
func New[T any](opts ...Option[T]) (*Array[T], error) {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.validate(); err != nil {
		return nil, err
	}
	if o.size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrIllegalArguments, o.size)
	}
	cfg := o.cfg.normalized()
	geom, err := page.NewGeometry(cfg.PageLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	a := &Array[T]{cfg: cfg, geom: geom}
	if o.size > 0 {
		a.presize(o.size, o.fill, o.holes)
	}
	return a, nil
}

// presize creates ceil(n/PageLimit) pages, the last one sized to the
// remainder.
func (a *Array[T]) presize(n int, fill T, holes bool) {
	limit := a.cfg.PageLimit
	mkpage := func(size int) *page.Page[T] {
		if holes {
			return page.NewHoles[T](size)
		}
		return page.NewFilled(size, fill)
	}
	pageID := 1
	for ; n > 0; n -= limit {
		err := a.SetPage(pageID, mkpage(min(n, limit)))
		mustHold(err == nil, "presize: cannot append page")
		pageID++
	}
	tracer().Debugf("segarray: pre-sized to %d slots in %d pages", a.count, len(a.pages))
}

// Config returns a copy of the effective array configuration.
func (a *Array[T]) Config() Config {
	if a == nil {
		return Config{}
	}
	return a.cfg
}

// PageCount returns the number of pages in the page table.
func (a *Array[T]) PageCount() int {
	if a == nil {
		return 0
	}
	return len(a.pages)
}

// GetPage returns the page with id pageID. The boolean is false if no such
// page exists.
//
// The page is still owned by the array; clients must not retain it across
// calls which may replace pages.
func (a *Array[T]) GetPage(pageID int) (*page.Page[T], bool) {
	if a == nil || pageID < 1 || pageID > len(a.pages) {
		return nil, false
	}
	return a.pages[pageID-1], true
}

// SetPage replaces the page with id pageID, or appends p as a new last page
// if pageID is PageCount()+1. Other page ids are rejected with ErrPageGap.
//
// The element count is adjusted by the difference in page lengths, holes
// included. The array takes ownership of p.
func (a *Array[T]) SetPage(pageID int, p *page.Page[T]) error {
	if a == nil || p == nil {
		return fmt.Errorf("%w: nil array or page", ErrIllegalArguments)
	}
	if p.Len() > a.cfg.PageLimit {
		return fmt.Errorf("%w: %d slots, limit is %d", ErrPageTooLarge, p.Len(), a.cfg.PageLimit)
	}
	n := len(a.pages)
	switch {
	case pageID >= 1 && pageID <= n:
		old := a.pages[pageID-1]
		a.pages[pageID-1] = p
		a.count += p.Len() - old.Len()
		a.publish(PageEvent{Kind: PageReplaced, PageID: pageID})
	case pageID == n+1:
		a.pages = append(a.pages, p)
		a.count += p.Len()
		a.publish(PageEvent{Kind: PageCreated, PageID: pageID})
	default:
		return fmt.Errorf("%w: page id %d with %d pages present", ErrPageGap, pageID, n)
	}
	return nil
}

// GetTotalLen returns the element count.
//
// The count is a running tally: SetPage adjusts it by page length deltas,
// InsertBack and RemoveIndex by one. Replace and the bulk transforms never
// touch it. It may therefore differ from the number of non-empty slots,
// which is what Recount returns.
func (a *Array[T]) GetTotalLen() int {
	if a == nil {
		return 0
	}
	return a.count
}

// Recount counts the slots currently holding a value. It does not modify
// the tally returned by GetTotalLen.
func (a *Array[T]) Recount() int {
	return int(a.Summary().Occupied())
}

// Summary aggregates occupancy figures over all pages.
func (a *Array[T]) Summary() page.Summary {
	m := page.Monoid{}
	sum := m.Zero()
	if a == nil {
		return sum
	}
	for _, p := range a.pages {
		sum = m.Add(sum, p.Summary())
	}
	return sum
}
