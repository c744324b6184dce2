package pagearena

// Free releases a block previously returned by Alloc or Realloc. Freeing an
// address that is not the head of a currently live block — a double-free,
// a foreign pointer, or a non-head multi-page address — fails with
// ErrInvalidAddress and leaves all allocator structures untouched (§4.4,
// §7).
func (a *Arena) Free(addr Addr) error {
	if !a.valid() {
		return NewError(ErrConfiguration)
	}
	a.stats.FreeCalls++

	if !a.inRange(addr, 0) {
		return NewError(ErrInvalidAddress)
	}

	p := a.pageOf(addr)
	desc := &a.pages[p]

	switch desc.role {
	case roleSmallBlock:
		return a.freeSmall(p, desc, addr)
	case roleMultiPageMember:
		if desc.remaining != desc.runLength {
			// addr names a non-head member of a multi-page run (§4.4).
			return NewError(ErrInvalidAddress)
		}
		a.releaseMultiPage(p)
		return nil
	default: // roleFree
		return NewError(ErrInvalidAddress)
	}
}

func (a *Arena) freeSmall(p pageNo, desc *pageDesc, addr Addr) error {
	blockOff := uint32(addr) - a.pageBase(p)
	if blockOff%desc.classSize != 0 {
		return NewError(ErrInvalidAddress)
	}

	blockIdx := blockOff / desc.classSize
	if desc.taken != nil && !desc.taken.Test(blockIdx) {
		return NewError(ErrInvalidAddress) // double-free
	}

	wasFull := desc.freeCount == 0
	a.writeLink(p, blockOff, desc.freeHead)
	desc.freeHead = blockOff
	desc.freeCount++
	if desc.taken != nil {
		desc.taken.Clear(blockIdx)
	}

	slot := a.cfg.classIndexOf(desc.classSize)
	if wasFull {
		a.class.addPartial(slot, p)
	}

	if desc.freeCount == a.cfg.blocksPerPage(desc.classSize) {
		a.class.removePartial(slot, p)
		a.pages[p] = pageDesc{role: roleFree}
		a.free.insert(p)
	}

	return nil
}
