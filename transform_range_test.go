package segarray

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segarray/page"
)

func touched(t *testing.T, a *Array[int], start, end, step int) []int {
	t.Helper()
	var seen []int
	err := a.TransformRange(start, end, step, func(i int, s page.Slot[int]) page.Slot[int] {
		seen = append(seen, i)
		return s
	})
	if err != nil {
		t.Fatalf("unexpected TransformRange error: %v", err)
	}
	return seen
}

func TestTransformRangeIgnoresPageLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segarray")
	defer teardown()
	//
	for _, limit := range []int{1, 2, 4, 8, 16} {
		a := newSmallArray(t, limit, WithSize(20, 0))
		seen := touched(t, a, 2, 9, 3)
		if !slices.Equal(seen, []int{2, 5, 8}) {
			t.Fatalf("page limit %d: expected {2,5,8}, touched %v", limit, seen)
		}
	}
}

func TestTransformRangeMatchesNaiveStride(t *testing.T) {
	a := newSmallArray(t, 4, WithSize(50, 0))
	for _, r := range [][3]int{
		{1, 50, 1}, {1, 50, 7}, {3, 4, 1}, {3, 3, 5}, {4, 5, 1},
		{6, 45, 4}, {2, 50, 9}, {13, 40, 13}, {1, 49, 16},
	} {
		start, end, step := r[0], r[1], r[2]
		var want []int
		for i := start; i <= end; i += step {
			want = append(want, i)
		}
		if seen := touched(t, a, start, end, step); !slices.Equal(seen, want) {
			t.Fatalf("range %v: expected %v, touched %v", r, want, seen)
		}
	}
}

func TestTransformRangeUpdatesValues(t *testing.T) {
	a := newSmallArray[int](t, 4)
	for k := 1; k <= 12; k++ {
		a.InsertBack(k)
	}
	a.RemoveIndex(7)
	err := a.TransformRange(3, 11, 2, func(i int, s page.Slot[int]) page.Slot[int] {
		if s.Empty {
			return page.Filled(700)
		}
		return page.Filled(s.Value * 100)
	})
	if err != nil {
		t.Fatalf("unexpected TransformRange error: %v", err)
	}
	want := []int{1, 2, 300, 4, 500, 6, 700, 8, 900, 10, 1100, 12}
	for k, w := range want {
		if v, ok := a.GetValueAtIndex(k + 1); !ok || v != w {
			t.Fatalf("index %d: expected %d, got %d (%v)", k+1, w, v, ok)
		}
	}
	if a.GetTotalLen() != 11 {
		t.Fatalf("TransformRange must not touch the count, got %d", a.GetTotalLen())
	}
}

func TestTransformRangeSkipsMissingSlots(t *testing.T) {
	a := newSmallArray[int](t, 4)
	for k := 1; k <= 6; k++ { // page 2 holds 5,6 only
		a.InsertBack(k)
	}
	seen := touched(t, a, 1, 40, 2)
	if !slices.Equal(seen, []int{1, 3, 5}) {
		t.Fatalf("expected {1,3,5}, touched %v", seen)
	}
	if seen := touched(t, a, 100, 200, 1); len(seen) != 0 {
		t.Fatalf("expected nothing touched beyond the page table, got %v", seen)
	}
	if seen := touched(t, a, 5, 4, 1); len(seen) != 0 {
		t.Fatalf("expected empty range to touch nothing, got %v", seen)
	}
}

func TestTransformRangeRejectsIllegalArguments(t *testing.T) {
	a := newSmallArray[int](t, 4)
	id := func(i int, s page.Slot[int]) page.Slot[int] { return s }
	if err := a.TransformRange(0, 4, 1, id); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments for start 0, got %v", err)
	}
	if err := a.TransformRange(1, 4, 0, id); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments for step 0, got %v", err)
	}
}

func TestTransformRangeHugeStep(t *testing.T) {
	a := newSmallArray(t, 4, WithSize(8, 0))
	for _, r := range [][3]int{
		{1, 8, math.MaxInt}, {2, 8, math.MaxInt - 1}, {3, math.MaxInt, math.MaxInt / 2},
		{1, math.MaxInt, 5},
	} {
		start, end, step := r[0], r[1], r[2]
		var want []int
		for i := start; i <= 8; i += step {
			want = append(want, i)
			if end-i < step {
				break
			}
		}
		if seen := touched(t, a, start, end, step); !slices.Equal(seen, want) {
			t.Fatalf("range %v: expected %v, touched %v", r, want, seen)
		}
	}
}

func TestAlignSaturates(t *testing.T) {
	if got := align(9, 1, 4); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := align(10, 1, 4); got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}
	if got := align(math.MaxInt-1, 2, math.MaxInt-1); got != math.MaxInt {
		t.Fatalf("expected saturation at MaxInt, got %d", got)
	}
}
