package pagearena

import (
	"fmt"
	"io"
)

// Dump writes a human-readable snapshot of the page descriptor table to w,
// per spec §4.6 and §6. It is a read-only traversal: it never mutates the
// descriptor table, the free-page index, or the class index.
func (a *Arena) Dump(w io.Writer) error {
	if !a.valid() {
		return NewError(ErrConfiguration)
	}

	if _, err := fmt.Fprintln(w, "=== pagearena dump ==="); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "The amount of memory pages: %d\n", len(a.pages)); err != nil {
		return err
	}

	for i := range a.pages {
		p := pageNo(i)
		desc := &a.pages[p]

		if _, err := fmt.Fprintf(w, "Page #%d\n", i); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Address: %d; State: %s\n", a.pageBase(p), desc.role); err != nil {
			return err
		}

		switch desc.role {
		case roleSmallBlock:
			total := a.cfg.blocksPerPage(desc.classSize)
			taken := total - desc.freeCount
			if _, err := fmt.Fprintf(w, "Class size: %d; Total blocks: %d; Taken: %d; Free: %d\n",
				desc.classSize, total, taken, desc.freeCount); err != nil {
				return err
			}
			if err := dumpBlocks(w, desc, total); err != nil {
				return err
			}
		case roleMultiPageMember:
			position := desc.runLength - desc.remaining + 1
			if _, err := fmt.Fprintf(w, "Run length: %d; Position in run: %d/%d\n",
				desc.runLength, position, desc.runLength); err != nil {
				return err
			}
		}
	}

	return nil
}

func dumpBlocks(w io.Writer, desc *pageDesc, total uint32) error {
	if _, err := io.WriteString(w, "Blocks:"); err != nil {
		return err
	}
	for i := uint32(0); i < total; i++ {
		state := "free"
		if desc.taken != nil && desc.taken.Test(i) {
			state = "taken"
		}
		if _, err := fmt.Fprintf(w, " %s", state); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
