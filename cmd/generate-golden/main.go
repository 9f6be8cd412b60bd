// Command generate-golden records determinism vectors for every catalog
// operation. fixbench --verify-golden replays them against later builds.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agbru/fixpoint/internal/catalog"
	"github.com/agbru/fixpoint/internal/config"
	"github.com/agbru/fixpoint/internal/golden"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "generate-golden:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("generate-golden", flag.ContinueOnError)
	path := fs.String("o", "testdata/golden.json", "Output file.")
	seed := fs.Uint64("seed", config.DefaultSeed, "Seed of the random inputs.")
	count := fs.Int("count", 64, "Random vectors per operation, in addition to the boundary values.")
	ops := fs.String("op", "all", "Operations to record (names or globs).")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count < 0 {
		return fmt.Errorf("count must not be negative")
	}

	selected, err := catalog.Default().Filter(*ops, catalog.AnyWidth, catalog.AnyTier)
	if err != nil {
		return err
	}
	f := golden.Generate(selected, *seed, *count)
	if err := golden.WriteFile(*path, f); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d vectors for %d operations to %s\n", len(f.Vectors), len(selected), *path)
	return nil
}
