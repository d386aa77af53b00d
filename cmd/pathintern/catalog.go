package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/intern"
)

var (
	errFragmentsFull = errors.New("fragment pool full")
	errPathsFull     = errors.New("path arena full")
)

// catalog stores every walked path as a list of fragment ids. Fragments
// repeat heavily across a tree, so each is interned once.
type catalog struct {
	fragments *intern.StrPool
	ids       *arena.Arena
	paths     []arena.Handle[uint32]
	scratch   []uint32
	seen      int // fragment bytes before deduplication
	logger    *zap.Logger
}

func newCatalog(fragmentBytes, pathBytes int, logger *zap.Logger, opts ...arena.Option) *catalog {
	opts = append(opts, arena.WithLogger(logger))
	return &catalog{
		fragments: intern.NewStrPool(fragmentBytes, opts...),
		ids:       arena.NewArena(pathBytes, opts...),
		logger:    logger,
	}
}

func (c *catalog) release() {
	c.fragments.Release()
	c.ids.Release()
}

// add records rel, a slash- or OS-separated path relative to the walk root.
func (c *catalog) add(rel string) error {
	c.scratch = c.scratch[:0]
	for _, frag := range splitPath(rel) {
		id, ok := c.fragments.InternID(frag)
		if !ok {
			return fmt.Errorf("%w after %d paths: interning %q", errFragmentsFull, len(c.paths), frag)
		}
		c.seen += len(frag)
		c.scratch = append(c.scratch, uint32(id))
	}
	h, ok := arena.PushSlice(c.ids, c.scratch)
	if !ok {
		return fmt.Errorf("%w after %d paths: storing %q", errPathsFull, len(c.paths), rel)
	}
	c.paths = append(c.paths, h)
	return nil
}

// walk adds every entry below root, root itself excluded.
func (c *catalog) walk(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Warn("skipping unreadable entry", zap.String("path", p), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return fmt.Errorf("relative path of %s: %w", p, err)
		}
		if rel == "." {
			return nil
		}
		return c.add(rel)
	})
}

// path rebuilds the i-th recorded path with forward slashes.
func (c *catalog) path(i int) string {
	var b strings.Builder
	for j, id := range c.paths[i].All() {
		if j > 0 {
			b.WriteByte('/')
		}
		b.Write(c.fragments.Get(int(id)).Bytes())
	}
	return b.String()
}

func (c *catalog) count() int {
	return len(c.paths)
}

func splitPath(p string) []string {
	parts := strings.Split(filepath.ToSlash(p), "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." {
			out = append(out, part)
		}
	}
	return out
}
