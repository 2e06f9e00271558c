package segarray

import "iter"

// Iterate visits all elements in ascending index order, skipping holes.
//
// fn receives the global index and the value of each element. Iteration
// halts as soon as fn returns true.
func (a *Array[T]) Iterate(fn func(i int, v T) (stop bool)) {
	if a == nil || fn == nil {
		return
	}
	for k, p := range a.pages {
		pageID := k + 1
		completed := p.Each(func(off int, v T) bool {
			return !fn(a.geom.Global(pageID, off), v)
		})
		if !completed {
			return
		}
	}
}

// All returns an iterator over (index, value) pairs in ascending index
// order, skipping holes.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a.Iterate(func(i int, v T) bool {
			return !yield(i, v)
		})
	}
}

// FindFunc returns the lowest global index whose value satisfies pred.
// Holes never match.
func (a *Array[T]) FindFunc(pred func(T) bool) (int, bool) {
	if a == nil || pred == nil {
		return 0, false
	}
	for k, p := range a.pages {
		if off := p.IndexFunc(pred); off > 0 {
			return a.geom.Global(k+1, off), true
		}
	}
	return 0, false
}

// Find returns the lowest global index of a slot equal to v. The boolean is
// false if no slot matches.
func Find[T comparable](a *Array[T], v T) (int, bool) {
	return a.FindFunc(func(x T) bool {
		return x == v
	})
}
