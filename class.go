package pagearena

// smallPathThreshold is the boundary of §4.1's rule: small_path ⇔
// n_bytes < PAGE_BYTES/2.
func (c Config) smallPathThreshold() uint32 {
	return c.PageBytes / 2
}

// isSmallPath reports whether a request of n bytes takes the segregated
// small-block path rather than the multi-page path (§4.1).
func (c Config) isSmallPath(n uint32) bool {
	return n < c.smallPathThreshold()
}

// closestClass returns the smallest configured class size that is >= n,
// and ok=false if no class fits (the caller must use the multi-page path).
func (c Config) closestClass(n uint32) (class uint32, ok bool) {
	for _, sz := range c.Classes {
		if sz >= n {
			return sz, true
		}
	}
	return 0, false
}

// classIndexOf returns the slot of class size size in c.Classes, or -1.
func (c Config) classIndexOf(size uint32) int {
	for i, sz := range c.Classes {
		if sz == size {
			return i
		}
	}
	return -1
}

// pagesNeeded returns ⌈n / PAGE_BYTES⌉, the run length for the multi-page
// path (§4.1, §4.3).
func (c Config) pagesNeeded(n uint32) uint32 {
	return (n + c.PageBytes - 1) / c.PageBytes
}
