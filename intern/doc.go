// Package intern deduplicates plain values and strings into arena storage.
//
// A pool keeps one canonical copy of every distinct value it has seen in a
// private arena.Arena. Interning an equal value again returns the very same
// handle, so callers can compare interned values with == instead of
// comparing contents:
//
//	names := intern.NewStrPool(4 << 10)
//	a, _ := names.Intern("hello")
//	b, _ := names.Intern("hello")
//	a == b // true, same bytes in the arena
//
// Entries are never removed one at a time. Clear drops every entry and
// rewinds the arena together, after which previously returned handles
// report Valid() == false.
//
// Pools inherit the arena's threading model: one goroutine at a time.
package intern
