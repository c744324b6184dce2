package pagearena

// Realloc implements §4.5: it always allocates a fresh block, copies the
// overlapping prefix of payload bytes, and frees the original — it never
// grows or shrinks a block in place, even when the new size would still
// fit the old one.
func (a *Arena) Realloc(addr Addr, newSize uint32) (Addr, error) {
	if !a.valid() {
		return 0, NewError(ErrConfiguration)
	}
	a.stats.ReallocCalls++

	oldSize, err := a.livePayloadSize(addr)
	if err != nil {
		return 0, err
	}

	newAddr, err := a.Alloc(newSize)
	if err != nil {
		// Original block remains live and untouched.
		return 0, err
	}

	newPayload, _ := a.livePayloadSize(newAddr)
	n := oldSize
	if newPayload < n {
		n = newPayload
	}

	data := a.buf.Data()
	copy(data[newAddr:uint32(newAddr)+n], data[addr:uint32(addr)+n])

	if err := a.Free(addr); err != nil {
		// The original block was valid moments ago and nothing else in
		// this single-threaded allocator can have touched it meanwhile;
		// this would indicate a structural bug, not a caller error.
		return 0, err
	}

	return newAddr, nil
}

// livePayloadSize returns the declared payload size of the live block
// starting at addr, or ErrInvalidAddress if addr is not the head of a
// currently live block.
func (a *Arena) livePayloadSize(addr Addr) (uint32, error) {
	if !a.inRange(addr, 0) {
		return 0, NewError(ErrInvalidAddress)
	}

	p := a.pageOf(addr)
	desc := &a.pages[p]

	switch desc.role {
	case roleSmallBlock:
		blockOff := uint32(addr) - a.pageBase(p)
		if blockOff%desc.classSize != 0 {
			return 0, NewError(ErrInvalidAddress)
		}
		blockIdx := blockOff / desc.classSize
		if desc.taken != nil && !desc.taken.Test(blockIdx) {
			return 0, NewError(ErrInvalidAddress)
		}
		return desc.classSize, nil
	case roleMultiPageMember:
		if desc.remaining != desc.runLength {
			return 0, NewError(ErrInvalidAddress)
		}
		return desc.runLength * a.cfg.PageBytes, nil
	default:
		return 0, NewError(ErrInvalidAddress)
	}
}
