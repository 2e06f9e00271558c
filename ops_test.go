package segarray

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segarray/page"
)

func TestInsertBackKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segarray")
	defer teardown()
	//
	a := newSmallArray[int](t, 8)
	const N = 100
	for k := 1; k <= N; k++ {
		a.InsertBack(k * 10)
	}
	if a.GetTotalLen() != N {
		t.Fatalf("expected %d elements, got %d", N, a.GetTotalLen())
	}
	for k := 1; k <= N; k++ {
		v, ok := a.GetValueAtIndex(k)
		if !ok || v != k*10 {
			t.Fatalf("index %d: expected %d, got %d (%v)", k, k*10, v, ok)
		}
	}
	if a.PageCount() != 13 {
		t.Fatalf("expected ceil(100/8)=13 pages, got %d", a.PageCount())
	}
	if err := a.Check(); err != nil {
		t.Fatalf("unexpected Check error: %v", err)
	}
}

func TestInsertBackCrossesPageBoundary(t *testing.T) {
	a := newSmallArray[string](t, 4)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		a.InsertBack(s)
	}
	if a.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", a.PageCount())
	}
	p1, _ := a.GetPage(1)
	p2, _ := a.GetPage(2)
	if p1.Len() != 4 || p2.Len() != 1 {
		t.Fatalf("expected page sizes 4 and 1, got %d and %d", p1.Len(), p2.Len())
	}
	if v, ok := p2.At(1); !ok || v != "e" {
		t.Fatalf("expected index 5 at page 2, offset 1, got %q", v)
	}
	if v, _ := a.GetValueAtIndex(5); v != "e" {
		t.Fatalf("expected 'e' at index 5, got %q", v)
	}
}

func TestInsertBackGrowsPresizedLastPage(t *testing.T) {
	a := newSmallArray(t, 4, WithSize(6, 0))
	a.InsertBack(7)
	a.InsertBack(8)
	a.InsertBack(9)
	if a.PageCount() != 3 || a.GetTotalLen() != 9 {
		t.Fatalf("unexpected layout: pages=%d len=%d", a.PageCount(), a.GetTotalLen())
	}
	if v, _ := a.GetValueAtIndex(8); v != 8 {
		t.Fatalf("expected 8 at index 8, got %d", v)
	}
	if v, _ := a.GetValueAtIndex(9); v != 9 {
		t.Fatalf("expected 9 at index 9, got %d", v)
	}
}

func TestRemoveIndexLeavesTombstone(t *testing.T) {
	a := newSmallArray[string](t, 4)
	a.InsertBack("a")
	a.InsertBack("b")
	a.RemoveIndex(1)
	if _, ok := a.GetValueAtIndex(1); ok {
		t.Fatalf("expected index 1 to be absent after removal")
	}
	if v, ok := a.GetValueAtIndex(2); !ok || v != "b" {
		t.Fatalf("expected 'b' to stay at index 2, got %q", v)
	}
	if a.GetTotalLen() != 1 {
		t.Fatalf("expected count 1, got %d", a.GetTotalLen())
	}
	a.RemoveIndex(1) // already a hole
	if a.GetTotalLen() != 1 {
		t.Fatalf("removing a hole must not change the count, got %d", a.GetTotalLen())
	}
	a.RemoveIndex(99) // page absent
	a.RemoveIndex(3)  // beyond page length
	if a.GetTotalLen() != 1 {
		t.Fatalf("removing missing slots must be a no-op, got %d", a.GetTotalLen())
	}
}

func TestReplace(t *testing.T) {
	a := newSmallArray[int](t, 4)
	for i := range 5 {
		a.InsertBack(i)
	}
	a.Replace(5, 50)
	if v, _ := a.GetValueAtIndex(5); v != 50 {
		t.Fatalf("expected 50 at index 5, got %d", v)
	}
	a.Replace(6, 60)  // beyond last page's length
	a.Replace(100, 1) // page absent
	if _, ok := a.GetValueAtIndex(6); ok {
		t.Fatalf("Replace must not extend the array")
	}
	a.RemoveIndex(2)
	a.Replace(2, 20)
	if v, ok := a.GetValueAtIndex(2); !ok || v != 20 {
		t.Fatalf("expected Replace to fill hole, got %d, %v", v, ok)
	}
	if a.GetTotalLen() != 4 {
		t.Fatalf("Replace must not touch the count, got %d", a.GetTotalLen())
	}
	if a.Recount() != 5 {
		t.Fatalf("expected 5 occupied slots, got %d", a.Recount())
	}
}

func TestNilArrayIsPermissive(t *testing.T) {
	var a *Array[int]
	if _, ok := a.GetValueAtIndex(1); ok {
		t.Fatalf("nil array should not hold values")
	}
	a.Replace(1, 1)
	a.RemoveIndex(1)
	a.Iterate(func(int, int) bool { return false })
	a.InsertBack(1)
	if err := a.SetPage(1, page.FromValues(1)); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments for SetPage on nil array, got %v", err)
	}
	if a.GetTotalLen() != 0 || a.PageCount() != 0 {
		t.Fatalf("nil array should be empty")
	}
	if a.Config() != (Config{}) {
		t.Fatalf("nil array should have a zero config, got %+v", a.Config())
	}
}
