package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/subcommands"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	locked "github.com/ydb-platform/ydb-go-locked"
	"github.com/ydb-platform/ydb-go-locked/log"
	"github.com/ydb-platform/ydb-go-locked/trace"
)

// stressCmd implements subcommands.Command for the "stress" command.
type stressCmd struct {
	cfg *config

	container     string
	duration      time.Duration
	waitThreshold time.Duration
}

// Name implements subcommands.Command.
func (*stressCmd) Name() string {
	return "stress"
}

// Synopsis implements subcommands.Command.
func (*stressCmd) Synopsis() string {
	return "run an inserter, an eraser and a reader over one container"
}

// Usage implements subcommands.Command.
func (*stressCmd) Usage() string {
	return `stress [flags] - push markers, clear in batches and check the front under a shared lock until the duration elapses
`
}

// SetFlags implements subcommands.Command.
func (c *stressCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", c.cfg.Container, "container kind: vector, deque or list")
	f.DurationVar(&c.duration, "duration", c.cfg.Duration, "how long to run")
	f.DurationVar(&c.waitThreshold, "wait-threshold", c.cfg.WaitThreshold,
		"log acquisitions waiting longer than this, zero disables")
}

// Execute implements subcommands.Command.
func (c *stressCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", f.Args())

		return subcommands.ExitUsageError
	}
	l := loggerFrom(args)

	s, err := newSequence(c.container, lockOptions(l, c.waitThreshold)...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitUsageError
	}

	ctx, cancel := context.WithTimeout(ctx, c.duration)
	defer cancel()

	l.Info("stress started",
		zap.String("container", c.container),
		zap.Duration("duration", c.duration),
	)
	res, err := stress(ctx, s)
	if err != nil {
		l.Error("stress failed", zap.Error(err))

		return subcommands.ExitFailure
	}
	l.Info("stress done",
		zap.Int64("inserted", res.inserted),
		zap.Int64("cleared", res.cleared),
		zap.Int64("observed", res.observed),
		zap.Int64("empty", res.empty),
	)

	return subcommands.ExitSuccess
}

// lockOptions attaches slow acquisition logging when threshold is set
func lockOptions(l *zap.Logger, threshold time.Duration) []locked.Option {
	if threshold <= 0 {
		return nil
	}

	return []locked.Option{
		locked.WithTrace(log.Lock(log.Zap(l), trace.LockEvents, log.WithWaitThreshold(threshold))),
	}
}

type stressResult struct {
	inserted int64
	cleared  int64
	observed int64
	empty    int64
}

const (
	// marker is the only value the stress command stores
	marker = 1
	// prefill is how many markers the container holds before the run starts
	prefill = 4096
)

var errGarbage = errors.New("unexpected element")

// stress runs until ctx is done. The eraser clears under one exclusive lock
// and the reader peeks under one shared lock, so a reader must see either an
// empty container or the marker; anything else fails the run.
func stress(ctx context.Context, s sequence) (stressResult, error) {
	var inserted, cleared, observed, empty atomic.Int64

	for range prefill {
		s.PushBack(marker)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for ctx.Err() == nil {
			s.PushBack(marker)
			inserted.Add(1)
		}

		return nil
	})
	g.Go(func() error {
		for ctx.Err() == nil {
			s.WriteLock(s.eraseNoLock)
			cleared.Add(1)
			time.Sleep(time.Millisecond)
		}

		return nil
	})
	g.Go(func() error {
		for ctx.Err() == nil {
			var err error
			s.ReadLock(func() {
				if s.EmptyNoLock() {
					empty.Add(1)

					return
				}
				x, frontErr := s.FrontNoLock()
				switch {
				case frontErr != nil:
					err = frontErr
				case x != marker:
					err = fmt.Errorf("%w: front is %d", errGarbage, x)
				default:
					observed.Add(1)
				}
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return stressResult{}, err
	}

	return stressResult{
		inserted: inserted.Load(),
		cleared:  cleared.Load(),
		observed: observed.Load(),
		empty:    empty.Load(),
	}, nil
}
