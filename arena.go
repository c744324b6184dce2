package pagearena

import (
	"github.com/Giulio2002/pagearena/mmap"
)

// arenaSignature marks a validly constructed Arena, mirroring the
// signature-guard pattern the teacher uses on its Env handle.
const arenaSignature uint32 = 0x50414745 // "PAGE"

// Stats is a running tally of allocator activity. It is not part of the
// dump contract of §4.6; it exists purely for operator/diagnostic use,
// updated at the same points the page descriptor table changes so it
// never requires its own traversal.
type Stats struct {
	BytesRequested  uint64
	BytesGranted    uint64
	AllocSuccesses  uint64
	AllocFailures   uint64
	FreeCalls       uint64
	ReallocCalls    uint64
	PagesFreeHigh   uint32 // high-water mark of pages ever simultaneously free
	PagesSmallHigh  uint32
	PagesMultiHigh  uint32
}

// Arena is a fixed-arena, two-tier memory allocator (spec §1–§3). It owns a
// single backing byte buffer obtained at construction time and is the sole
// source of allocatable bytes for every Alloc/Realloc call made against it.
//
// Arena is not safe for concurrent use: spec.md defines the allocator as
// single-threaded cooperative (§5), and Arena performs no locking.
type Arena struct {
	signature uint32
	cfg       Config
	buf       *mmap.Map

	pages []pageDesc
	free  *freePageIndex
	class *classIndex

	stats Stats
}

// New constructs an Arena backed by a fresh anonymous memory mapping sized
// per cfg.ArenaBytes. It fails with ErrConfiguration if cfg violates the
// tunable requirements of spec.md §6.
func New(cfg Config) (*Arena, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	buf, err := mmap.Anonymous(int(cfg.ArenaBytes))
	if err != nil {
		return nil, WrapError(ErrConfiguration, err)
	}

	pageCount := cfg.pageCount()
	a := &Arena{
		signature: arenaSignature,
		cfg:       cfg,
		buf:       buf,
		pages:     make([]pageDesc, pageCount),
		free:      newFreePageIndex(pageCount),
		class:     newClassIndex(len(cfg.Classes)),
	}

	for i := uint32(0); i < pageCount; i++ {
		a.free.insert(pageNo(i))
	}
	a.stats.PagesFreeHigh = pageCount

	return a, nil
}

// valid reports whether a is a properly constructed, not-yet-closed Arena.
func (a *Arena) valid() bool {
	return a != nil && a.signature == arenaSignature
}

// Close releases the arena's backing memory. The Arena must not be used
// afterward.
func (a *Arena) Close() error {
	if !a.valid() {
		return nil
	}
	a.signature = 0
	return a.buf.Close()
}

// Stats returns a snapshot of the allocator's running statistics.
func (a *Arena) Stats() Stats {
	return a.stats
}

// PageCount returns the number of pages the arena is partitioned into.
func (a *Arena) PageCount() int {
	return len(a.pages)
}

// Config returns the configuration the Arena was constructed with.
func (a *Arena) Config() Config {
	return a.cfg
}

func (a *Arena) pageBase(p pageNo) uint32 {
	return uint32(p) * a.cfg.PageBytes
}

func (a *Arena) pageOf(addr Addr) pageNo {
	return pageNo(uint32(addr) / a.cfg.PageBytes)
}

func (a *Arena) inRange(addr Addr, length uint32) bool {
	return uint32(addr) < a.cfg.ArenaBytes && uint64(addr)+uint64(length) <= uint64(a.cfg.ArenaBytes)
}
