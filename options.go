package arena

import "go.uber.org/zap"

type config struct {
	logger      *zap.Logger
	mmap        bool
	zeroOnClear bool
}

// Option configures an Arena at construction.
type Option func(*config)

// WithLogger routes the arena's diagnostics (exhaustion, clears, release)
// to l. Arenas log nothing by default.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMmap backs the region with an anonymous private mapping instead of
// the Go heap, keeping large regions out of the garbage collector's view.
// Release unmaps the region. Where mapping is unavailable the heap is used.
func WithMmap() Option {
	return func(c *config) {
		c.mmap = true
	}
}

// WithZeroOnClear makes Clear zero the bytes handed out in the ending
// generation, so fresh allocations never observe stale contents.
func WithZeroOnClear() Option {
	return func(c *config) {
		c.zeroOnClear = true
	}
}
