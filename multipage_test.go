package pagearena

import "testing"

func TestAllocMultiPageRunLength(t *testing.T) {
	a := newTestArena(t)

	addr, err := a.Alloc(800) // ceil(800/256) = 4 pages
	if err != nil {
		t.Fatal(err)
	}
	if addr != 0 {
		t.Errorf("addr = %d, want 0", addr)
	}

	for i := pageNo(0); i < 4; i++ {
		desc := a.pages[i]
		if desc.role != roleMultiPageMember {
			t.Errorf("page %d role = %v, want MultiPageMember", i, desc.role)
		}
		if desc.runLength != 4 {
			t.Errorf("page %d runLength = %d, want 4", i, desc.runLength)
		}
	}

	// A subsequent small allocation must land past the run, on page 4.
	small, err := a.Alloc(16)
	if err != nil {
		t.Fatal(err)
	}
	if a.pageOf(small) != 4 {
		t.Errorf("small alloc landed on page %d, want 4", a.pageOf(small))
	}
}

func TestAllocMultiPageFirstFitFromLowestAddress(t *testing.T) {
	a := newTestArena(t)

	// Carve out page 0 and page 2 as small-block pages, leaving 1, 3..7 free.
	if _, err := a.Alloc(16); err != nil { // page 0
		t.Fatal(err)
	}
	a.subdivide(2, 16, a.cfg.classIndexOf(16)) // force page 2 into use directly

	addr, err := a.Alloc(3 * a.cfg.PageBytes) // needs a run of 3
	if err != nil {
		t.Fatal(err)
	}

	// The lowest run of length 3 among {1, 3,4,5,6,7} starts at page 3.
	if got, want := a.pageOf(addr), pageNo(3); got != want {
		t.Errorf("run head = page %d, want page %d", got, want)
	}
}

func TestAllocMultiPageOutOfMemory(t *testing.T) {
	a := newTestArena(t)

	if _, err := a.Alloc(5 * a.cfg.PageBytes); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Alloc(4 * a.cfg.PageBytes); !IsOutOfMemory(err) {
		t.Errorf("alloc requiring a longer run than remains = %v, want ErrOutOfMemory", err)
	}
}

func TestFreeMultiPageReturnsAllMembersToFree(t *testing.T) {
	a := newTestArena(t)

	addr, err := a.Alloc(800) // 4 pages
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Free(addr); err != nil {
		t.Fatal(err)
	}

	for i := pageNo(0); i < 4; i++ {
		if a.pages[i].role != roleFree {
			t.Errorf("page %d role = %v, want Free", i, a.pages[i].role)
		}
		if !a.free.contains(i) {
			t.Errorf("page %d missing from free-page index", i)
		}
	}
}
