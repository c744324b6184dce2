package pagearena

// allocMultiPage implements §4.3's contiguous multi-page allocator:
// first-fit from the lowest address over the free-page index.
func (a *Arena) allocMultiPage(k uint32) (Addr, error) {
	if k == 0 {
		k = 1
	}
	if k > uint32(len(a.pages)) {
		return 0, NewError(ErrOutOfMemory)
	}

	head, ok := a.free.firstFitRun(k)
	if !ok {
		return 0, NewError(ErrOutOfMemory)
	}

	for i := uint32(0); i < k; i++ {
		p := head + pageNo(i)
		desc := &a.pages[p]
		desc.role = roleMultiPageMember
		desc.runLength = k
		desc.remaining = k - i
		a.free.remove(p)
	}

	a.stats.PagesMultiHigh += k
	a.stats.BytesGranted += uint64(k) * uint64(a.cfg.PageBytes)
	return Addr(a.pageBase(head)), nil
}

// releaseMultiPage frees all pages of the run headed at p (§4.4, MultiPage
// case). The caller must have already verified p is a live run head.
func (a *Arena) releaseMultiPage(p pageNo) {
	desc := a.pages[p]
	for i := uint32(0); i < desc.runLength; i++ {
		member := p + pageNo(i)
		a.pages[member] = pageDesc{role: roleFree}
		a.free.insert(member)
	}
}
