// Package pagearena is a fixed-arena, two-tier memory allocator over a
// single statically sized byte buffer.
//
// It never calls the host operating system after construction: the backing
// buffer is obtained once, at New, and every Alloc/Realloc/Free/Dump call
// afterward only reads and writes that buffer plus the allocator's own
// bookkeeping. It internally chooses between a segregated-fit small-object
// allocator keyed by per-page block classes and a contiguous multi-page
// allocator for larger requests.
//
// Key properties:
//   - Single fixed-size arena, partitioned into equally sized pages
//   - Segregated-fit small blocks for requests under half a page
//   - First-fit contiguous multi-page runs for larger requests
//   - Single-threaded, cooperative: no locking, no reentrancy
//
// Basic usage:
//
//	a, err := pagearena.New(pagearena.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//
//	p, err := a.Alloc(15)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err = a.Realloc(p, 30)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := a.Free(p); err != nil {
//	    log.Fatal(err)
//	}
package pagearena
