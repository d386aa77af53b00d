package intern

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/pavanmanishd/arena/v2"
)

// ValuePool interns plain comparable values of type T. Values are equal when
// == says so, so NaN floats are never deduplicated.
type ValuePool[T comparable] struct {
	arena   *arena.Arena
	entries []arena.Handle[T]
	index   map[T]int
}

// NewValuePool creates a pool whose private arena holds capacity bytes.
// T must satisfy arena.IsPlain.
func NewValuePool[T comparable](capacity int, opts ...arena.Option) *ValuePool[T] {
	if !arena.IsPlain[T]() {
		panic(fmt.Sprintf("intern: type %s contains pointers", reflect.TypeFor[T]()))
	}
	return &ValuePool[T]{
		arena: arena.NewArena(capacity, opts...),
		index: make(map[T]int),
	}
}

// Intern returns the canonical handle for v, storing a copy of v the first
// time it is seen. Returns ok == false when the pool's arena is full.
func (p *ValuePool[T]) Intern(v T) (arena.Handle[T], bool) {
	id, ok := p.InternID(v)
	if !ok {
		return arena.Handle[T]{}, false
	}
	return p.entries[id], true
}

// InternID is Intern returning the entry's insertion index instead.
func (p *ValuePool[T]) InternID(v T) (int, bool) {
	if id, ok := p.index[v]; ok {
		return id, true
	}
	h, ok := arena.Push(p.arena, v)
	if !ok {
		return 0, false
	}
	id := len(p.entries)
	p.entries = append(p.entries, h)
	p.index[v] = id
	return id, true
}

// Lookup returns the handle for v if it has been interned, without storing it.
func (p *ValuePool[T]) Lookup(v T) (arena.Handle[T], bool) {
	id, ok := p.index[v]
	if !ok {
		return arena.Handle[T]{}, false
	}
	return p.entries[id], true
}

// Get returns the entry with insertion index id.
func (p *ValuePool[T]) Get(id int) arena.Handle[T] {
	return p.entries[id]
}

// All iterates over the entries in insertion order.
func (p *ValuePool[T]) All() iter.Seq2[int, arena.Handle[T]] {
	return func(yield func(int, arena.Handle[T]) bool) {
		for id, h := range p.entries {
			if !yield(id, h) {
				return
			}
		}
	}
}

// Clear drops every entry and rewinds the arena. Handles returned before
// Clear become invalid.
func (p *ValuePool[T]) Clear() {
	p.arena.Clear()
	p.entries = p.entries[:0]
	clear(p.index)
}

// Release frees the pool's arena. The pool must not be used afterwards.
func (p *ValuePool[T]) Release() {
	p.arena.Release()
	p.entries = nil
	p.index = nil
}

// IsValid reports whether h came from this pool since its last Clear.
func (p *ValuePool[T]) IsValid(h arena.Handle[T]) bool {
	return p.arena.IsValid(h)
}

// Len returns the number of distinct values interned.
func (p *ValuePool[T]) Len() int { return len(p.entries) }

// Occupied returns the bytes consumed in the pool's arena.
func (p *ValuePool[T]) Occupied() int { return p.arena.Occupied() }

// Size returns the capacity of the pool's arena.
func (p *ValuePool[T]) Size() int { return p.arena.Size() }

// Generation returns the generation of the pool's arena.
func (p *ValuePool[T]) Generation() uint64 { return p.arena.Generation() }

// Metrics returns the statistics of the pool's arena.
func (p *ValuePool[T]) Metrics() arena.Metrics { return p.arena.Metrics() }
