package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var errSizeMismatch = errors.New("size mismatch")

// fillCmd implements subcommands.Command for the "fill" command.
type fillCmd struct {
	cfg *config

	container string
	elements  int
	workers   int
}

// Name implements subcommands.Command.
func (*fillCmd) Name() string {
	return "fill"
}

// Synopsis implements subcommands.Command.
func (*fillCmd) Synopsis() string {
	return "push elements concurrently and verify the resulting size"
}

// Usage implements subcommands.Command.
func (*fillCmd) Usage() string {
	return `fill [flags] - push -elements values from -workers goroutines, then compare sizes
`
}

// SetFlags implements subcommands.Command.
func (c *fillCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", c.cfg.Container, "container kind: vector, deque or list")
	f.IntVar(&c.elements, "elements", c.cfg.Elements, "number of pushes")
	f.IntVar(&c.workers, "workers", c.cfg.Workers, "number of pushing goroutines")
}

// Execute implements subcommands.Command.
func (c *fillCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() > 0 || c.workers <= 0 || c.elements < 0 {
		f.Usage()

		return subcommands.ExitUsageError
	}
	l := loggerFrom(args)

	s, err := newSequence(c.container)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitUsageError
	}
	size, err := fill(ctx, s, c.elements, c.workers)
	if err != nil {
		l.Error("fill failed", zap.Error(err))

		return subcommands.ExitFailure
	}
	l.Info("fill done",
		zap.String("container", c.container),
		zap.Int("size", size),
	)

	return subcommands.ExitSuccess
}

// fill pushes n values from workers goroutines and checks that the locked
// size and the size read inside a read batch both equal n
func fill(ctx context.Context, s sequence, n, workers int) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < n; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.PushBack(i)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var batched int
	s.ReadLock(func() {
		batched = s.SizeNoLock()
	})
	if size := s.Size(); size != n || batched != n {
		return size, fmt.Errorf("%w: pushed %d, size %d, size in batch %d", errSizeMismatch, n, size, batched)
	}

	return n, nil
}
