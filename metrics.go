package arena

// Utilization returns the ratio of occupied bytes to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Size()
	if capacity == 0 {
		return 0
	}
	return float64(a.Occupied()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		Occupied:    a.Occupied(),
		Size:        a.Size(),
		Remaining:   a.Remaining(),
		Padding:     a.padding,
		Generation:  a.generation,
		Allocations: a.allocs,
		Failures:    a.failures,
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	Occupied    int     // Bytes handed out in the current generation
	Size        int     // Fixed capacity in bytes
	Remaining   int     // Bytes still available
	Padding     int     // Alignment padding within Occupied
	Generation  uint64  // Clears and releases so far
	Allocations uint64  // Successful reservations over the arena's lifetime
	Failures    uint64  // Reservations refused for lack of room
	Utilization float64 // Ratio of occupied to capacity (0.0-1.0)
}
