package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAccess(t *testing.T) {
	a := NewArena(1024)

	h, ok := Allocate[point](a, 3)
	require.True(t, ok)

	for i := range h.Len() {
		h.Set(i, point{float64(i), float64(i * 2)})
	}
	assert.Equal(t, point{2, 4}, h.At(2))

	s := h.Slice()
	s[1].x = 42
	assert.Equal(t, 42.0, h.At(1).x, "Slice aliases arena memory")

	assert.Panics(t, func() { h.At(3) })
	assert.Panics(t, func() { h.Set(-1, point{}) })
}

func TestHandleAllStopsEarly(t *testing.T) {
	a := NewArena(1024)
	h, ok := PushSlice(a, []int32{10, 20, 30, 40})
	require.True(t, ok)

	var seen []int32
	for i, v := range h.All() {
		if i == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int32{10, 20}, seen)
}

func TestHandleClone(t *testing.T) {
	a := NewArena(64)

	h, ok := PushSlice(a, []uint16{1, 2, 3, 4})
	require.True(t, ok)
	before := a.Occupied()

	c, ok := h.Clone()
	require.True(t, ok)
	assert.Equal(t, h.Slice(), c.Slice())
	assert.NotEqual(t, h.Addr(), c.Addr(), "clone must not alias the original")
	assert.Equal(t, before+h.ByteLen(), a.Occupied(), "clone costs a fresh allocation")

	c.Set(0, 100)
	assert.Equal(t, uint16(1), h.At(0))
}

func TestHandleCloneExhausted(t *testing.T) {
	a := NewArena(16)
	h, ok := PushSlice(a, []uint32{1, 2, 3})
	require.True(t, ok)

	_, ok = h.Clone()
	assert.False(t, ok)
	assert.Equal(t, 12, a.Occupied())
}

func TestHandleStaleAfterClear(t *testing.T) {
	a := NewArena(1024)
	h, ok := Push[uint64](a, 7)
	require.True(t, ok)
	require.True(t, h.Valid())

	a.Clear()

	assert.False(t, h.Valid())
	assert.False(t, a.IsValid(h))
	assert.PanicsWithValue(t, "arena: stale handle", func() { h.At(0) })
	assert.PanicsWithValue(t, "arena: stale handle", func() { h.Set(0, 1) })
	assert.PanicsWithValue(t, "arena: stale handle", func() { h.Slice() })
	assert.PanicsWithValue(t, "arena: stale handle", func() {
		for range h.All() {
		}
	})
	assert.PanicsWithValue(t, "arena: stale handle", func() { h.Clone() })

	fresh, ok := Push[uint64](a, 8)
	require.True(t, ok)
	assert.True(t, fresh.Valid())
	assert.Equal(t, h.Offset(), fresh.Offset())
	assert.Equal(t, uint64(8), fresh.At(0))
}

func TestHandleIdentity(t *testing.T) {
	a := NewArena(1024)
	h1, _ := Push[int32](a, 1)
	h2, _ := Push[int32](a, 1)
	alias := h1

	assert.True(t, h1 == alias)
	assert.False(t, h1 == h2, "equal contents in different storage are distinct handles")
	assert.Equal(t, a.Base()+uintptr(h2.Offset()), h2.Addr())
	assert.Same(t, a, h1.Owner())
	assert.Equal(t, a.Generation(), h1.Generation())
	assert.Equal(t, uintptr(0), Handle[int32]{}.Addr())
}
