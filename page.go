package pagearena

import "github.com/Giulio2002/pagearena/internal/bitset"

// pageNo identifies a page by its index in [0, PageCount).
type pageNo uint32

// Addr is a byte offset into the arena's backing buffer. It is the unit
// the allocator hands back to callers in place of a raw pointer.
type Addr uint32

// linkEnd is the free-list sentinel: "no next block on this page".
const linkEnd = ^uint32(0)

// pageRole is the role a page currently plays.
type pageRole uint8

const (
	roleFree pageRole = iota
	roleSmallBlock
	roleMultiPageMember
)

func (r pageRole) String() string {
	switch r {
	case roleFree:
		return "FREE"
	case roleSmallBlock:
		return "FILLED WITH BLOCKS"
	case roleMultiPageMember:
		return "PART OF A MULTIPAGE BLOCK"
	default:
		return "UNKNOWN"
	}
}

// pageDesc is one page descriptor table entry (§3 Page descriptor).
//
// Exactly one of the two field groups below is meaningful, selected by
// role:
//   - roleSmallBlock:       classSize, freeCount, freeHead, taken
//   - roleMultiPageMember:  runLength, remaining
type pageDesc struct {
	role pageRole

	// SmallBlockPage fields.
	classSize uint32
	freeCount uint32
	freeHead  uint32        // page-relative offset, or linkEnd
	taken     *bitset.Bitset // per-block taken/free bitmap, read by Dump and by the Free/Realloc address checks

	// MultiPageMember fields.
	runLength uint32
	remaining uint32
}

// blocksPerPage returns PAGE_BYTES / class_size for a SmallBlockPage.
func (c Config) blocksPerPage(classSize uint32) uint32 {
	return c.PageBytes / classSize
}

// newTakenBitset returns a bitset of the given block count with every
// block initially marked free (clear).
func newTakenBitset(count uint32) *bitset.Bitset {
	return bitset.New(count)
}
