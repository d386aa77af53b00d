package arena

import (
	"bytes"
	"errors"
)

var (
	// ErrExhausted is returned when a String append does not fit in the
	// capacity reserved for it.
	ErrExhausted = errors.New("arena: allocation exhausted")
	// ErrStale is returned when appending to a String whose arena has been
	// cleared or released since it was allocated.
	ErrStale = errors.New("arena: stale handle")
)

// String is UTF-8 text stored in an arena: a byte handle plus the number of
// bytes written so far. Strings made by PushString are full and immutable;
// strings made by AllocateString accept appends until their reserved
// capacity is used up.
type String struct {
	h   Handle[byte]
	len int
}

// PushString copies s into the arena.
func PushString(a *Arena, s string) (String, bool) {
	h, ok := Allocate[byte](a, len(s))
	if !ok {
		return String{}, false
	}
	if len(s) > 0 {
		copy(h.Slice(), s)
	}
	return String{h: h, len: len(s)}, true
}

// PushBytes copies b into the arena as text.
func PushBytes(a *Arena, b []byte) (String, bool) {
	h, ok := PushSlice(a, b)
	if !ok {
		return String{}, false
	}
	return String{h: h, len: len(b)}, true
}

// AllocateString reserves capacity bytes for text that is appended later
// through Write, WriteString, WriteByte or fmt.Fprintf.
func AllocateString(a *Arena, capacity int) (String, bool) {
	h, ok := Allocate[byte](a, capacity)
	if !ok {
		return String{}, false
	}
	return String{h: h}, true
}

// Len returns the number of bytes written.
func (s String) Len() int {
	return s.len
}

// Cap returns the number of bytes reserved.
func (s String) Cap() int {
	return s.h.Len()
}

// Bytes returns the written bytes, aliasing arena memory.
func (s String) Bytes() []byte {
	return s.h.Slice()[:s.len:s.len]
}

// String returns a copy of the text that stays usable after the arena is cleared.
func (s String) String() string {
	return string(s.Bytes())
}

// Equal reports whether s and o hold the same text.
func (s String) Equal(o String) bool {
	return s.len == o.len && bytes.Equal(s.Bytes(), o.Bytes())
}

// EqualString reports whether s holds the text t.
func (s String) EqualString(t string) bool {
	return s.len == len(t) && string(s.Bytes()) == t
}

// Handle returns the byte handle over the reserved capacity.
func (s String) Handle() Handle[byte] {
	return s.h
}

func (s String) Owner() *Arena { return s.h.Owner() }
func (s String) Offset() int { return s.h.Offset() }
func (s String) ByteLen() int { return s.h.ByteLen() }
func (s String) Generation() uint64 { return s.h.Generation() }
func (s String) Addr() uintptr { return s.h.Addr() }
func (s String) Valid() bool { return s.h.Valid() }

// Clone copies the written text into a fresh allocation of the same arena.
func (s String) Clone() (String, bool) {
	return PushBytes(s.h.arena, s.Bytes())
}

// Write appends p. It either appends all of p or nothing: when the reserved
// capacity cannot hold p it returns ErrExhausted and leaves s unchanged.
func (s *String) Write(p []byte) (int, error) {
	if err := s.reserve(len(p)); err != nil {
		return 0, err
	}
	s.len += copy(s.h.Slice()[s.len:], p)
	return len(p), nil
}

// WriteString appends t with the same all-or-nothing contract as Write.
func (s *String) WriteString(t string) (int, error) {
	if err := s.reserve(len(t)); err != nil {
		return 0, err
	}
	s.len += copy(s.h.Slice()[s.len:], t)
	return len(t), nil
}

// WriteByte appends c.
func (s *String) WriteByte(c byte) error {
	if err := s.reserve(1); err != nil {
		return err
	}
	s.h.Set(s.len, c)
	s.len++
	return nil
}

func (s *String) reserve(n int) error {
	if !s.h.Valid() {
		return ErrStale
	}
	if n > s.h.Len()-s.len {
		return ErrExhausted
	}
	return nil
}
