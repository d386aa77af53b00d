package arena

import (
	"iter"
	"unsafe"
)

// Reference is implemented by every handle the arena hands out, so that
// Arena.IsValid can check any of them.
type Reference interface {
	Owner() *Arena
	Offset() int
	ByteLen() int
	Generation() uint64
}

// Handle is a non-owning, typed view of count contiguous values of T living
// in an Arena. It records the arena generation it was created in; once the
// arena is cleared or released the handle is stale and every accessor that
// touches memory panics instead of returning reused bytes.
//
// Handles are comparable: two handles are equal exactly when they view the
// same bytes of the same arena generation.
// The zero Handle belongs to no arena and is never valid.
type Handle[T any] struct {
	arena *Arena
	off   int
	n     int
	gen   uint64
}

// Len returns the number of elements viewed by h.
func (h Handle[T]) Len() int {
	return h.n
}

// ByteLen returns the number of bytes viewed by h.
func (h Handle[T]) ByteLen() int {
	var zero T
	return h.n * int(unsafe.Sizeof(zero))
}

// Owner returns the arena h points into.
func (h Handle[T]) Owner() *Arena {
	return h.arena
}

// Offset returns the byte offset of the first element from the region base.
func (h Handle[T]) Offset() int {
	return h.off
}

// Generation returns the arena generation h was created in.
func (h Handle[T]) Generation() uint64 {
	return h.gen
}

// Addr returns the address of the first element. Equal addresses within a
// generation mean the same storage.
func (h Handle[T]) Addr() uintptr {
	if h.arena == nil {
		return 0
	}
	return h.arena.Base() + uintptr(h.off)
}

// Valid reports whether h may still be dereferenced: its arena has not been
// cleared or released since h was created.
func (h Handle[T]) Valid() bool {
	return h.arena != nil && h.arena.validSpan(h.off, h.ByteLen(), h.gen)
}

// Slice returns the viewed elements as a Go slice aliasing arena memory.
// The slice must not be used after the arena is cleared.
func (h Handle[T]) Slice() []T {
	h.mustValid()
	if h.n == 0 {
		return nil
	}
	if h.ByteLen() == 0 {
		return make([]T, h.n)
	}
	return unsafe.Slice(h.elem(0), h.n)
}

// At returns element i.
func (h Handle[T]) At(i int) T {
	return h.Slice()[i]
}

// Set stores v as element i.
func (h Handle[T]) Set(i int, v T) {
	h.Slice()[i] = v
}

// All iterates over the viewed elements with their indices.
func (h Handle[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range h.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone copies the viewed elements into a fresh allocation of the same
// arena and returns a handle to the copy. The result never aliases h.
// Returns ok == false when the arena cannot hold the copy.
func (h Handle[T]) Clone() (Handle[T], bool) {
	return PushSlice(h.arena, h.Slice())
}

func (h Handle[T]) elem(i int) *T {
	var zero T
	return (*T)(h.arena.pointer(h.off + i*int(unsafe.Sizeof(zero))))
}

func (h Handle[T]) mustValid() {
	if !h.Valid() {
		panic("arena: stale handle")
	}
}
