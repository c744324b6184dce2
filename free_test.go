package pagearena

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFreeSmallBlockRoundTrip(t *testing.T) {
	a := newTestArena(t)

	addr, err := a.Alloc(15)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Free(addr); err != nil {
		t.Fatal(err)
	}

	// Allocating the same size again must reuse the just-freed block.
	addr2, err := a.Alloc(15)
	if err != nil {
		t.Fatal(err)
	}
	if addr2 != addr {
		t.Errorf("reused addr = %d, want %d", addr2, addr)
	}
}

func TestFreeDoubleFreeFails(t *testing.T) {
	a := newTestArena(t)

	addr, err := a.Alloc(15)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Free(addr); err != nil {
		t.Fatal(err)
	}
	if err := a.Free(addr); !IsInvalidAddress(err) {
		t.Errorf("second Free() = %v, want ErrInvalidAddress", err)
	}
}

func TestFreeForeignAddressFails(t *testing.T) {
	a := newTestArena(t)

	if err := a.Free(Addr(a.cfg.ArenaBytes)); !IsInvalidAddress(err) {
		t.Errorf("Free(out of range) = %v, want ErrInvalidAddress", err)
	}
}

func TestFreeMisalignedSmallAddressFails(t *testing.T) {
	a := newTestArena(t)

	if _, err := a.Alloc(15); err != nil {
		t.Fatal(err)
	}
	if err := a.Free(5); !IsInvalidAddress(err) {
		t.Errorf("Free(misaligned) = %v, want ErrInvalidAddress", err)
	}
}

func TestFreeNonHeadMultiPageAddressFails(t *testing.T) {
	a := newTestArena(t)

	head, err := a.Alloc(800) // 4 pages
	if err != nil {
		t.Fatal(err)
	}

	midRun := head + Addr(a.cfg.PageBytes) // second page of the run
	if err := a.Free(midRun); !IsInvalidAddress(err) {
		t.Errorf("Free(non-head run member) = %v, want ErrInvalidAddress", err)
	}

	if err := a.Free(head); err != nil {
		t.Errorf("Free(run head) = %v, want nil", err)
	}
}

func TestFreeAllocFreeRestoresState(t *testing.T) {
	a := newTestArena(t)

	before := a.Stats()

	addr, err := a.Alloc(15)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Free(addr); err != nil {
		t.Fatal(err)
	}

	// An alloc/free pair changes only the per-call tallies, the byte totals
	// of the one request, and the count of the one page it put into
	// service — in particular it must not look like a second page was ever
	// put into service.
	want := before
	want.BytesRequested = 15
	want.BytesGranted = 16 // rounded up to class 16
	want.AllocSuccesses = 1
	want.FreeCalls = 1
	want.PagesSmallHigh = 1

	got := a.Stats()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Stats() after alloc/free mismatch (-want +got):\n%s", diff)
	}

	if !a.free.contains(a.pageOf(addr)) {
		t.Error("page not back in the free-page index after alloc/free pair")
	}
}

func snapshotPages(a *Arena) []pageDesc {
	out := make([]pageDesc, len(a.pages))
	copy(out, a.pages)
	return out
}
