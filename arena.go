// Package arena implements a fixed-capacity region allocator (memory arena)
// with generation-tagged handles.
// Typical usage: create one arena per frame or request, allocate many plain
// values from it, then Clear() for O(1) reuse.
package arena

import (
	"math/bits"
	"unsafe"

	"go.uber.org/zap"
)

// DefaultCapacity is the region size used when NewArena is given a
// non-positive capacity (64 KiB).
const DefaultCapacity = 1 << 16

// maxAlign is the strictest alignment any Go type requires on supported
// platforms. Regions always start on a maxAlign boundary.
const maxAlign = 8

// Arena is a bump allocator over a single region whose size is fixed at
// construction. Not goroutine-safe.
type Arena struct {
	buf        []byte
	cursor     int
	generation uint64
	released   bool

	unmap       func([]byte) error // non-nil when the region is mmap-backed
	logger      *zap.Logger
	zeroOnClear bool

	allocs   uint64
	failures uint64
	padding  int
}

// NewArena creates an Arena backed by exactly capacity zeroed bytes.
// If capacity <= 0, DefaultCapacity is used.
func NewArena(capacity int, opts ...Option) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Arena{
		logger:      cfg.logger,
		zeroOnClear: cfg.zeroOnClear,
	}
	if cfg.mmap {
		buf, unmap, err := mapRegion(capacity)
		if err == nil {
			a.buf, a.unmap = buf, unmap
			return a
		}
		a.logger.Warn("arena: anonymous mapping failed, using heap region",
			zap.Int("capacity", capacity), zap.Error(err))
	}
	a.buf = heapRegion(capacity)
	return a
}

// heapRegion returns a zeroed region whose first byte is maxAlign-aligned.
// Backing the bytes with words keeps small regions out of the tiny allocator,
// which only guarantees the alignment of the requested size.
func heapRegion(capacity int) []byte {
	words := make([]uint64, (capacity+maxAlign-1)/maxAlign)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), capacity)
}

// reserve bumps the cursor past count elements of the given size and
// alignment and returns the offset of the first one. On failure the cursor
// is left untouched.
func (a *Arena) reserve(size, align uintptr, count int) (int, bool) {
	a.panicIfReleased()
	if count < 0 {
		a.exhausted(0, count)
		return 0, false
	}

	hi, n := bits.Mul(uint(size), uint(count))
	off := alignUp(uintptr(a.cursor), align)
	if hi != 0 || off > uintptr(len(a.buf)) || n > uint(uintptr(len(a.buf))-off) {
		a.exhausted(n, count)
		return 0, false
	}

	a.padding += int(off) - a.cursor
	a.cursor = int(off) + int(n)
	a.allocs++
	return int(off), true
}

func (a *Arena) exhausted(requested uint, count int) {
	a.failures++
	if ce := a.logger.Check(zap.DebugLevel, "arena exhausted"); ce != nil {
		ce.Write(
			zap.Uint("requested", requested),
			zap.Int("count", count),
			zap.Int("occupied", a.cursor),
			zap.Int("capacity", len(a.buf)),
			zap.Uint64("generation", a.generation),
		)
	}
}

// Clear makes the whole region available again and starts a new generation.
// Handles created before Clear report Valid() == false afterwards.
// The memory is not zeroed unless the arena was built WithZeroOnClear.
func (a *Arena) Clear() {
	a.panicIfReleased()
	if a.zeroOnClear {
		clear(a.buf[:a.cursor])
	}
	if ce := a.logger.Check(zap.DebugLevel, "arena cleared"); ce != nil {
		ce.Write(zap.Int("occupied", a.cursor), zap.Uint64("generation", a.generation))
	}
	a.cursor = 0
	a.padding = 0
	a.generation++
}

// Release drops the region and makes the arena unusable.
// Any subsequent allocation or Clear will panic. Release is idempotent.
func (a *Arena) Release() {
	if a.released {
		return
	}
	if a.unmap != nil {
		if err := a.unmap(a.buf); err != nil {
			a.logger.Warn("arena: unmap failed", zap.Error(err))
		}
		a.unmap = nil
	}
	a.logger.Debug("arena released", zap.Uint64("generation", a.generation))
	a.buf = nil
	a.cursor = 0
	a.padding = 0
	a.released = true
	a.generation++
}

// Occupied returns the number of bytes consumed in the current generation,
// alignment padding included.
func (a *Arena) Occupied() int {
	return a.cursor
}

// Size returns the fixed capacity of the region in bytes.
func (a *Arena) Size() int {
	return len(a.buf)
}

// IsFull reports whether every byte of the region has been handed out.
func (a *Arena) IsFull() bool {
	return a.Occupied() == a.Size()
}

// Remaining returns the number of unreserved bytes.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.cursor
}

// Generation returns the number of times the arena has been cleared or released.
func (a *Arena) Generation() uint64 {
	return a.generation
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a.released
}

// Base returns the address of the first byte of the region, or 0 once released.
func (a *Arena) Base() uintptr {
	if len(a.buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
}

// IsValid reports whether r was produced by this arena in its current
// generation and still lies within the region.
func (a *Arena) IsValid(r Reference) bool {
	if a == nil || r == nil || r.Owner() != a {
		return false
	}
	return a.validSpan(r.Offset(), r.ByteLen(), r.Generation())
}

func (a *Arena) validSpan(off, size int, gen uint64) bool {
	if a.released || gen != a.generation {
		return false
	}
	return off >= 0 && size >= 0 && off <= len(a.buf) && size <= len(a.buf)-off
}

// pointer returns the address off bytes into the region. off must be < Size().
func (a *Arena) pointer(off int) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(a.buf)), off)
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.released {
		panic("arena: use after Release()")
	}
}

// alignUp rounds off up to the next multiple of align, which must be a power of two.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}
