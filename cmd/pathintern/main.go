// Command pathintern walks a directory tree and stores every path as a list
// of interned fragments, reporting how much the deduplication saved.
//
//	pathintern -root ./src -print
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/pavanmanishd/arena/v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pathintern:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("pathintern", flag.ContinueOnError)
	root := flags.String("root", ".", "directory to walk")
	fragmentBytes := flags.Int("strings", 1<<20, "capacity of the fragment pool in bytes")
	pathBytes := flags.Int("paths", 1<<20, "capacity of the path arena in bytes")
	printPaths := flags.Bool("print", false, "print every path rebuilt from its fragments")
	useMmap := flags.Bool("mmap", false, "back both regions with anonymous memory mappings")
	verbose := flags.Bool("v", false, "development logging at debug level")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var opts []arena.Option
	if *useMmap {
		opts = append(opts, arena.WithMmap())
	}
	c := newCatalog(*fragmentBytes, *pathBytes, logger, opts...)
	defer c.release()

	if err := c.walk(*root); err != nil {
		return fmt.Errorf("walk %s: %w", *root, err)
	}
	logger.Info("walk complete",
		zap.String("root", *root),
		zap.Int("paths", c.count()),
		zap.Int("fragments", c.fragments.Len()),
	)

	if *printPaths {
		for i := range c.count() {
			fmt.Fprintln(out, c.path(i))
		}
	}
	report(out, c)
	return nil
}

func report(out io.Writer, c *catalog) {
	frag := c.fragments.Metrics()
	ids := c.ids.Metrics()
	fmt.Fprintf(out, "paths: %d\n", c.count())
	fmt.Fprintf(out, "fragments: %d distinct, %d bytes stored, %d bytes seen\n",
		c.fragments.Len(), frag.Occupied, c.seen)
	fmt.Fprintf(out, "fragment pool: %d/%d bytes (%.1f%%)\n", frag.Occupied, frag.Size, frag.Utilization*100)
	fmt.Fprintf(out, "path arena: %d/%d bytes (%.1f%%)\n", ids.Occupied, ids.Size, ids.Utilization*100)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
