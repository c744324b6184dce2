package pagearena

import "encoding/binary"

// Alloc returns the starting address of a block of at least n usable
// bytes, or an *Error wrapping ErrOutOfMemory if the arena cannot satisfy
// the request (spec §6, §4.1).
func (a *Arena) Alloc(n uint32) (Addr, error) {
	if !a.valid() {
		return 0, NewError(ErrConfiguration)
	}
	if n == 0 {
		n = 1
	}

	a.stats.BytesRequested += uint64(n)

	var addr Addr
	var err error
	if a.cfg.isSmallPath(n) {
		addr, err = a.allocSmall(n)
	} else {
		addr, err = a.allocMultiPage(a.cfg.pagesNeeded(n))
	}

	if err != nil {
		a.stats.AllocFailures++
		return 0, err
	}
	a.stats.AllocSuccesses++
	return addr, nil
}

// allocSmall implements §4.2's small-block allocation contract.
func (a *Arena) allocSmall(n uint32) (Addr, error) {
	class, ok := a.cfg.closestClass(n)
	if !ok {
		// Guarded by isSmallPath at the call site; defensive only.
		return 0, NewError(ErrOutOfMemory)
	}
	slot := a.cfg.classIndexOf(class)

	p, ok := a.class.anyPartial(slot)
	if !ok {
		fresh, ok := a.free.any()
		if !ok {
			return 0, NewError(ErrOutOfMemory)
		}
		a.subdivide(fresh, class, slot)
		p = fresh
	}

	desc := &a.pages[p]
	blockOff := desc.freeHead
	desc.freeHead = a.readLink(p, blockOff)
	desc.freeCount--
	if desc.taken != nil {
		desc.taken.Set(blockOff / desc.classSize)
	}

	if desc.freeCount == 0 {
		a.class.removePartial(slot, p)
	}

	a.stats.BytesGranted += uint64(class)
	return Addr(a.pageBase(p) + blockOff), nil
}

// subdivide converts a fresh free page into a SmallBlockPage of the given
// class (§4.2.1).
func (a *Arena) subdivide(p pageNo, class uint32, classSlot int) {
	count := a.cfg.blocksPerPage(class)

	desc := &a.pages[p]
	desc.role = roleSmallBlock
	desc.classSize = class
	desc.freeCount = count
	desc.freeHead = 0
	desc.taken = newTakenBitset(count)

	base := a.pageBase(p)
	for i := uint32(0); i < count; i++ {
		off := i * class
		next := linkEnd
		if i+1 < count {
			next = (i + 1) * class
		}
		binary.LittleEndian.PutUint32(a.buf.Data()[base+off:], next)
	}

	a.free.remove(p)
	a.class.addPartial(classSlot, p)
	a.stats.PagesSmallHigh++
}

// readLink reads the link cell at page-relative offset off on page p.
func (a *Arena) readLink(p pageNo, off uint32) uint32 {
	base := a.pageBase(p)
	return binary.LittleEndian.Uint32(a.buf.Data()[base+off:])
}

// writeLink writes next into the link cell at page-relative offset off.
func (a *Arena) writeLink(p pageNo, off uint32, next uint32) {
	base := a.pageBase(p)
	binary.LittleEndian.PutUint32(a.buf.Data()[base+off:], next)
}
