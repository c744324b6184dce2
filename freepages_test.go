package pagearena

import "testing"

func TestFreePageIndexInsertRemove(t *testing.T) {
	f := newFreePageIndex(8)
	for i := pageNo(0); i < 8; i++ {
		f.insert(i)
	}
	if f.len() != 8 {
		t.Fatalf("len() = %d, want 8", f.len())
	}

	f.remove(3)
	if f.contains(3) {
		t.Error("page 3 still reported as free after remove")
	}
	if f.len() != 7 {
		t.Fatalf("len() = %d, want 7", f.len())
	}
}

func TestFreePageIndexAnyReturnsLowest(t *testing.T) {
	f := newFreePageIndex(8)
	for _, p := range []pageNo{5, 2, 7, 0, 3} {
		f.insert(p)
	}
	got, ok := f.any()
	if !ok || got != 0 {
		t.Errorf("any() = (%d, %v), want (0, true)", got, ok)
	}
}

func TestFreePageIndexFirstFitRun(t *testing.T) {
	f := newFreePageIndex(8)
	for _, p := range []pageNo{0, 1, 3, 4, 5, 7} {
		f.insert(p)
	}

	head, ok := f.firstFitRun(3)
	if !ok || head != 3 {
		t.Errorf("firstFitRun(3) = (%d, %v), want (3, true)", head, ok)
	}

	head, ok = f.firstFitRun(2)
	if !ok || head != 0 {
		t.Errorf("firstFitRun(2) = (%d, %v), want (0, true)", head, ok)
	}

	if _, ok := f.firstFitRun(4); ok {
		t.Error("firstFitRun(4) should fail: no run of 4 consecutive free pages exists")
	}
}

func TestFreePageIndexFirstFitRunZero(t *testing.T) {
	f := newFreePageIndex(4)
	f.insert(0)
	if _, ok := f.firstFitRun(0); ok {
		t.Error("firstFitRun(0) should report no run")
	}
}
