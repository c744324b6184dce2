// Package fastmap provides a fast open-addressed set for page numbers.
// Uses fibonacci hashing for better distribution of sequential keys.
package fastmap

// Uint32Set is a fast set of uint32 page numbers, used by the class index
// to track which pages of a given class size currently hold a free block.
// Uses open addressing with linear probing, fibonacci hashing, and
// tombstones so that members can be removed in O(1) amortised time.
type Uint32Set struct {
	buckets []bucket
	count   int // live members
	tombs   int // deleted slots pending a rebuild
	mask    uint32
	hint    uint32 // scan start for Any(), amortises repeated calls
}

type bucket struct {
	key     uint32
	used    bool // slot holds a live member
	deleted bool // slot held a member that was removed (tombstone)
}

// Fibonacci hash constant: 2^32 / golden ratio
const fibHash32 = 2654435769

func (m *Uint32Set) hash(key uint32) uint32 {
	return key * fibHash32
}

// Contains reports whether key is a member of the set.
func (m *Uint32Set) Contains(key uint32) bool {
	if len(m.buckets) == 0 {
		return false
	}
	idx := m.hash(key) & m.mask
	for {
		b := &m.buckets[idx]
		if !b.used && !b.deleted {
			return false
		}
		if b.used && b.key == key {
			return true
		}
		idx = (idx + 1) & m.mask
	}
}

// Add inserts key into the set. Adding an existing key is a no-op.
func (m *Uint32Set) Add(key uint32) {
	if len(m.buckets) == 0 {
		m.buckets = make([]bucket, 16)
		m.mask = 15
	} else if m.count+m.tombs >= len(m.buckets)*3/4 {
		m.rebuild(len(m.buckets) * 2)
	}

	idx := m.hash(key) & m.mask
	insertAt := -1
	for {
		b := &m.buckets[idx]
		if b.used {
			if b.key == key {
				return
			}
		} else {
			if insertAt < 0 {
				insertAt = int(idx)
			}
			if !b.deleted {
				break // end of this key's probe chain
			}
		}
		idx = (idx + 1) & m.mask
	}

	slot := &m.buckets[insertAt]
	if slot.deleted {
		m.tombs--
	}
	slot.key = key
	slot.used = true
	slot.deleted = false
	m.count++
}

// Remove deletes key from the set, reporting whether it was present.
func (m *Uint32Set) Remove(key uint32) bool {
	if len(m.buckets) == 0 {
		return false
	}
	idx := m.hash(key) & m.mask
	for {
		b := &m.buckets[idx]
		if !b.used && !b.deleted {
			return false
		}
		if b.used && b.key == key {
			b.used = false
			b.deleted = true
			m.count--
			m.tombs++
			if idx < m.hint {
				m.hint = idx
			}
			return true
		}
		idx = (idx + 1) & m.mask
	}
}

// rebuild reallocates the backing array at newSize, dropping tombstones.
func (m *Uint32Set) rebuild(newSize int) {
	old := m.buckets
	m.buckets = make([]bucket, newSize)
	m.mask = uint32(newSize - 1)
	m.count = 0
	m.tombs = 0
	m.hint = 0
	for i := range old {
		if old[i].used {
			m.Add(old[i].key)
		}
	}
}

// Any returns an arbitrary member of the set, or (0, false) if empty.
func (m *Uint32Set) Any() (uint32, bool) {
	if m.count == 0 {
		return 0, false
	}
	n := uint32(len(m.buckets))
	for i := uint32(0); i < n; i++ {
		idx := (m.hint + i) % n
		if m.buckets[idx].used {
			m.hint = idx
			return m.buckets[idx].key, true
		}
	}
	return 0, false
}

// ForEach iterates over all members. fn must not mutate the set.
func (m *Uint32Set) ForEach(fn func(uint32)) {
	for i := range m.buckets {
		if m.buckets[i].used {
			fn(m.buckets[i].key)
		}
	}
}

// Clear removes all members but keeps the backing array.
func (m *Uint32Set) Clear() {
	clear(m.buckets)
	m.count = 0
	m.tombs = 0
	m.hint = 0
}

// Len returns the number of members.
func (m *Uint32Set) Len() int {
	return m.count
}
