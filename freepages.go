package pagearena

import (
	"github.com/Giulio2002/pagearena/internal/bitset"
	"github.com/google/btree"
)

// freePageIndex is the free-page index of §3: "an ordered sequence of page
// indices currently in the free role, maintained in ascending order so
// that contiguous-run searches are linear."
//
// The ascending order (§3 invariant 4) falls directly out of btree.BTreeG's
// in-order iteration, rather than out of a hand-maintained sorted-insert
// loop over a slice — exactly the balanced-structure option §9 anticipates
// for large PAGE_COUNT. A parallel bitset gives O(1) membership checks
// (used by invariant checking in tests; the free path dispatches on the
// page descriptor's role instead).
type freePageIndex struct {
	tree *btree.BTreeG[pageNo]
	mem  *bitset.Bitset
}

func newFreePageIndex(pageCount uint32) *freePageIndex {
	return &freePageIndex{
		tree: btree.NewG(32, func(a, b pageNo) bool { return a < b }),
		mem:  bitset.New(pageCount),
	}
}

func (f *freePageIndex) insert(p pageNo) {
	f.tree.ReplaceOrInsert(p)
	f.mem.Set(uint32(p))
}

func (f *freePageIndex) remove(p pageNo) {
	f.tree.Delete(p)
	f.mem.Clear(uint32(p))
}

func (f *freePageIndex) contains(p pageNo) bool {
	return f.mem.Test(uint32(p))
}

func (f *freePageIndex) len() int {
	return f.tree.Len()
}

// any returns the lowest-numbered free page, or ok=false if none.
func (f *freePageIndex) any() (pageNo, bool) {
	return f.tree.Min()
}

// firstFitRun scans the free-page index in ascending order (§4.3) and
// returns the head of the lowest-address run of k strictly consecutive
// free pages, or ok=false if no such run exists.
func (f *freePageIndex) firstFitRun(k uint32) (head pageNo, ok bool) {
	if k == 0 {
		return 0, false
	}

	var runStart pageNo
	var runLen uint32
	var prev pageNo
	haveRun := false

	f.tree.Ascend(func(p pageNo) bool {
		if haveRun && p == prev+1 {
			runLen++
		} else {
			runStart = p
			runLen = 1
		}
		haveRun = true
		prev = p
		if runLen == k {
			head = runStart
			ok = true
			return false // stop: first-fit from lowest address
		}
		return true
	})

	return head, ok
}
