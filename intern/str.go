package intern

import (
	"bytes"
	"iter"

	"github.com/cespare/xxhash/v2"

	"github.com/pavanmanishd/arena/v2"
)

// StrPool interns text. Each distinct byte sequence is stored once, with no
// alignment padding, so Occupied equals the total length of the distinct
// strings.
type StrPool struct {
	arena   *arena.Arena
	entries []arena.String
	buckets map[uint64][]int // xxhash64 of content -> entry ids
}

// NewStrPool creates a pool whose private arena holds capacity bytes.
func NewStrPool(capacity int, opts ...arena.Option) *StrPool {
	return &StrPool{
		arena:   arena.NewArena(capacity, opts...),
		buckets: make(map[uint64][]int),
	}
}

// Intern returns the canonical arena copy of s, storing it the first time
// it is seen. Returns ok == false when the pool's arena is full.
func (p *StrPool) Intern(s string) (arena.String, bool) {
	id, ok := p.InternID(s)
	if !ok {
		return arena.String{}, false
	}
	return p.entries[id], true
}

// InternBytes is Intern for byte content.
func (p *StrPool) InternBytes(b []byte) (arena.String, bool) {
	id, ok := p.InternBytesID(b)
	if !ok {
		return arena.String{}, false
	}
	return p.entries[id], true
}

// InternID is Intern returning the entry's insertion index instead.
func (p *StrPool) InternID(s string) (int, bool) {
	sum := xxhash.Sum64String(s)
	if id, ok := p.find(sum, len(s), func(b []byte) bool { return string(b) == s }); ok {
		return id, true
	}
	str, ok := arena.PushString(p.arena, s)
	if !ok {
		return 0, false
	}
	return p.add(sum, str), true
}

// InternBytesID is InternBytes returning the entry's insertion index instead.
func (p *StrPool) InternBytesID(b []byte) (int, bool) {
	sum := xxhash.Sum64(b)
	if id, ok := p.find(sum, len(b), func(e []byte) bool { return bytes.Equal(e, b) }); ok {
		return id, true
	}
	str, ok := arena.PushBytes(p.arena, b)
	if !ok {
		return 0, false
	}
	return p.add(sum, str), true
}

// Lookup returns the interned copy of s if there is one, without storing it.
func (p *StrPool) Lookup(s string) (arena.String, bool) {
	id, ok := p.find(xxhash.Sum64String(s), len(s), func(b []byte) bool { return string(b) == s })
	if !ok {
		return arena.String{}, false
	}
	return p.entries[id], true
}

// find compares lengths before contents so most mismatches are rejected
// without touching arena memory.
func (p *StrPool) find(sum uint64, n int, equal func([]byte) bool) (int, bool) {
	for _, id := range p.buckets[sum] {
		e := p.entries[id]
		if e.Len() == n && equal(e.Bytes()) {
			return id, true
		}
	}
	return 0, false
}

func (p *StrPool) add(sum uint64, s arena.String) int {
	id := len(p.entries)
	p.entries = append(p.entries, s)
	p.buckets[sum] = append(p.buckets[sum], id)
	return id
}

// Get returns the entry with insertion index id.
func (p *StrPool) Get(id int) arena.String {
	return p.entries[id]
}

// All iterates over the entries in insertion order.
func (p *StrPool) All() iter.Seq2[int, arena.String] {
	return func(yield func(int, arena.String) bool) {
		for id, s := range p.entries {
			if !yield(id, s) {
				return
			}
		}
	}
}

// Clear drops every entry and rewinds the arena. Strings returned before
// Clear become invalid.
func (p *StrPool) Clear() {
	p.arena.Clear()
	p.entries = p.entries[:0]
	clear(p.buckets)
}

// Release frees the pool's arena. The pool must not be used afterwards.
func (p *StrPool) Release() {
	p.arena.Release()
	p.entries = nil
	p.buckets = nil
}

// IsValid reports whether s came from this pool since its last Clear.
func (p *StrPool) IsValid(s arena.String) bool {
	return p.arena.IsValid(s)
}

// Len returns the number of distinct strings interned.
func (p *StrPool) Len() int { return len(p.entries) }

// Occupied returns the bytes consumed in the pool's arena.
func (p *StrPool) Occupied() int { return p.arena.Occupied() }

// Size returns the capacity of the pool's arena.
func (p *StrPool) Size() int { return p.arena.Size() }

// Generation returns the generation of the pool's arena.
func (p *StrPool) Generation() uint64 { return p.arena.Generation() }

// Metrics returns the statistics of the pool's arena.
func (p *StrPool) Metrics() arena.Metrics { return p.arena.Metrics() }
