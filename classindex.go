package pagearena

import "github.com/Giulio2002/pagearena/internal/fastmap"

// classIndex is the Class → partial-pages index of §3: "a mapping from
// each supported small-block class size to the set of pages currently
// subdivided into that class and holding at least one free block."
//
// Indexed by class slot (the position of the class size in Config.Classes),
// not by the class size itself, since slots are dense and small.
type classIndex struct {
	buckets []fastmap.Uint32Set
}

func newClassIndex(numClasses int) *classIndex {
	return &classIndex{buckets: make([]fastmap.Uint32Set, numClasses)}
}

func (c *classIndex) addPartial(classSlot int, p pageNo) {
	c.buckets[classSlot].Add(uint32(p))
}

func (c *classIndex) removePartial(classSlot int, p pageNo) {
	c.buckets[classSlot].Remove(uint32(p))
}

func (c *classIndex) hasPartial(classSlot int, p pageNo) bool {
	return c.buckets[classSlot].Contains(uint32(p))
}

// anyPartial returns an arbitrary page with a free block of the given
// class, or ok=false if the bucket is empty.
func (c *classIndex) anyPartial(classSlot int) (pageNo, bool) {
	p, ok := c.buckets[classSlot].Any()
	return pageNo(p), ok
}
