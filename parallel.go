package segarray

import (
	"context"
	"fmt"

	"github.com/npillmayer/segarray/page"
	"golang.org/x/sync/errgroup"
)

// ParallelTransform replaces every slot of every page with fn(i, slot),
// where i is the slot's global index. Holes are passed to fn as empty slots
// and fn may return empty slots to create holes.
//
// The pages are partitioned into contiguous ranges of ceil(P/W) pages, P
// being the page count and W the worker count, and each range is handled by
// its own goroutine. ParallelTransform returns after all of them have
// finished. fn must be safe to call from multiple goroutines.
//
// W is workers[0] if given and positive, Config.Workers otherwise. A worker
// count of 1 transforms all pages on the calling goroutine.
// The element count is not adjusted.
func (a *Array[T]) ParallelTransform(fn func(i int, s page.Slot[T]) page.Slot[T], workers ...int) {
	if a == nil || fn == nil {
		return
	}
	err := a.eachPageParallel(a.workerCount(workers), func(pageID int, p *page.Page[T]) error {
		p.Transform(a.geom.Global(pageID, 0), fn)
		return nil
	})
	mustHold(err == nil, "ParallelTransform: infallible transform reported an error")
}

// ParallelTransformErr is the fallible variant of ParallelTransform.
//
// The first error returned by fn stops its worker; the remaining workers
// stop at their next page boundary. Pages already transformed keep their
// new contents, so the array is partially transformed in this case. The
// error returned is the first one encountered, annotated with its page id.
func (a *Array[T]) ParallelTransformErr(fn func(i int, s page.Slot[T]) (page.Slot[T], error),
	workers ...int) error {
	//
	if a == nil || fn == nil {
		return fmt.Errorf("%w: nil array or transform", ErrIllegalArguments)
	}
	return a.eachPageParallel(a.workerCount(workers), func(pageID int, p *page.Page[T]) error {
		if err := p.TransformErr(a.geom.Global(pageID, 0), fn); err != nil {
			return fmt.Errorf("transform of page %d: %w", pageID, err)
		}
		return nil
	})
}

func (a *Array[T]) workerCount(workers []int) int {
	if len(workers) > 0 && workers[0] > 0 {
		return workers[0]
	}
	return a.cfg.Workers
}

// eachPageParallel calls visit for every page, partitioning the page table
// into w contiguous ranges which are visited concurrently. Ranges never
// overlap, therefore visit may mutate its page without synchronization.
func (a *Array[T]) eachPageParallel(w int, visit func(pageID int, p *page.Page[T]) error) error {
	P := len(a.pages)
	if P == 0 {
		return nil
	}
	if w <= 1 {
		for k, p := range a.pages {
			if err := visit(k+1, p); err != nil {
				return err
			}
			a.publish(PageEvent{Kind: PageTransformed, PageID: k + 1})
		}
		return nil
	}
	span := (P + w - 1) / w
	tracer().Debugf("segarray: transforming %d pages with %d workers, %d pages each", P, w, span)
	g, ctx := errgroup.WithContext(context.Background())
	for k := 1; k <= w; k++ {
		from, to := (k-1)*span+1, min(k*span, P)
		if from > to {
			break // fewer pages than workers
		}
		g.Go(func() error {
			for pageID := from; pageID <= to; pageID++ {
				if ctx.Err() != nil {
					return nil // a sibling worker failed
				}
				if err := visit(pageID, a.pages[pageID-1]); err != nil {
					return err
				}
				a.publish(PageEvent{Kind: PageTransformed, PageID: pageID})
			}
			return nil
		})
	}
	return g.Wait()
}
