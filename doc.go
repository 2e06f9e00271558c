/*
Package segarray implements a segmented array: a single, logically contiguous
and arbitrarily large sequence, which is stored internally in pages of fixed
maximum capacity.

Segmented Arrays

Many environments put a ceiling on the size of a single native container.
A segmented array lifts this ceiling by spreading elements over a table of
pages, each holding at most PageLimit slots. Clients address elements by a
global, 1-based index; the array translates it to a page id and an offset
within that page:

	pageID = ((i-1) div PageLimit) + 1
	offset = ((i-1) mod PageLimit) + 1

PageLimit is a power of two, so translation reduces to a shift and a mask.

Elements are appended at the back. Removing an element leaves a hole at its
position; no other element moves, and every global index keeps its identity.
Holes are invisible to iteration and search.

Bulk Mutation

Two operations mutate many slots at once:

  - ParallelTransform applies a function to every slot of every page, using
    a small pool of goroutines. Each goroutine owns a contiguous, disjoint
    range of pages, so pages need no locking.
  - TransformRange applies a function to a strided range of global indices,
    page by page.

Neither operation, nor any other, is safe for concurrent use with other
mutations of the same array.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segarray

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segarray'
func tracer() tracing.Trace {
	return tracing.Select("segarray")
}

// ArrayError is an error type for the segarray module
type ArrayError string

func (e ArrayError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ArrayError("illegal arguments")

// ErrInvalidConfig is flagged for an unusable array configuration.
const ErrInvalidConfig = ArrayError("invalid configuration")

// ErrPageGap is flagged whenever a page would be stored beyond the end of the
// page table, leaving a gap in the page id sequence.
const ErrPageGap = ArrayError("page id would leave a gap in the page table")

// ErrPageTooLarge is flagged for pages holding more than PageLimit slots.
const ErrPageTooLarge = ArrayError("page exceeds page limit")

// ErrCorruptPageTable is reported by Check for broken structural invariants.
const ErrCorruptPageTable = ArrayError("corrupt page table")

func mustHold(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
