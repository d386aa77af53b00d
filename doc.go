// Package arena implements a fixed-capacity region allocator (memory arena)
// for Go, with generation-tagged handles and string storage.
//
// # Overview
//
// An arena owns one byte region whose size is chosen at construction and
// never changes. Allocations advance a single cursor past an aligned,
// non-overlapping range; nothing is freed individually. Clear rewinds the
// cursor in O(1) and starts a new generation. This is particularly useful for:
//
//   - Per-frame scratch data in game and render loops (vertices, indices)
//   - Request-scoped buffers with batch cleanup
//   - Interning tables that are rebuilt wholesale
//   - Keeping large plain-data working sets out of the garbage collector
//
// # Basic Usage
//
//	a := arena.NewArena(64 << 10)
//	defer a.Release()
//
//	// Allocate typed values
//	p, ok := arena.Push(a, Point{X: 1, Y: 2})
//	if !ok {
//		// region full: build a bigger arena or fail the operation
//	}
//	verts, ok := arena.PushSlice(a, []Vertex{...})
//
//	// Store text
//	name, ok := arena.PushString(a, "player")
//
//	// Reset for reuse (O(1) operation)
//	a.Clear()
//	p.Valid() // false: p was created in the previous generation
//
// # Handles and Generations
//
// Allocation functions return a Handle[T], a typed view of arena memory that
// remembers the generation it was created in. After Clear or Release the
// handle is stale: Valid and Arena.IsValid report false, and accessors that
// read or write memory (At, Set, Slice, All) panic rather than expose bytes
// that now belong to newer allocations. Slices obtained from Handle.Slice
// alias the region directly and carry no such check.
//
// Handle.Clone is a deep copy into a fresh allocation of the same arena,
// not a second view of the same bytes.
//
// # Plain Types
//
// Only pointer-free types can be stored: booleans, numbers, and arrays or
// structs of them. The garbage collector does not scan arena memory, so a
// Go pointer written there could be collected underneath it. Allocating any
// other type panics; IsPlain reports the rule for a given type.
//
// # Exhaustion
//
// A full region is reported by ok == false and leaves the arena untouched.
// Arenas never grow and never panic on exhaustion. String appends report
// ErrExhausted instead, and write nothing when the text does not fit.
//
// # Thread Safety
//
// Arena is not thread-safe. A single goroutine must own each arena (and
// every pool built on one) while it allocates or clears.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Occupied: %d of %d bytes\n", m.Occupied, m.Size)
//	fmt.Printf("Refused allocations: %d\n", m.Failures)
package arena
