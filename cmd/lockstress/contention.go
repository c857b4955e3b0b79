package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/subcommands"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	locked "github.com/ydb-platform/ydb-go-locked"
	"github.com/ydb-platform/ydb-go-locked/trace"
)

// contentionCmd implements subcommands.Command for the "contention" command.
type contentionCmd struct {
	cfg *config

	readers  int
	writers  int
	duration time.Duration
}

// Name implements subcommands.Command.
func (*contentionCmd) Name() string {
	return "contention"
}

// Synopsis implements subcommands.Command.
func (*contentionCmd) Synopsis() string {
	return "measure throughput and lock waits of readers and writers on one vector"
}

// Usage implements subcommands.Command.
func (*contentionCmd) Usage() string {
	return `contention [flags] - run -readers and -writers goroutines over one vector
`
}

// SetFlags implements subcommands.Command.
func (c *contentionCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.readers, "readers", c.cfg.Readers, "number of reading goroutines")
	f.IntVar(&c.writers, "writers", c.cfg.Writers, "number of writing goroutines")
	f.DurationVar(&c.duration, "duration", c.cfg.Duration, "how long to run")
}

// Execute implements subcommands.Command.
func (c *contentionCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() > 0 || c.readers < 0 || c.writers < 0 {
		f.Usage()

		return subcommands.ExitUsageError
	}
	l := loggerFrom(args)

	ctx, cancel := context.WithTimeout(ctx, c.duration)
	defer cancel()

	res, err := contention(ctx, c.readers, c.writers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return subcommands.ExitFailure
	}
	l.Info("contention done",
		zap.Int("readers", c.readers),
		zap.Int("writers", c.writers),
		zap.Int64("reads", res.reads),
		zap.Int64("writes", res.writes),
		zap.Float64("reads_per_second", float64(res.reads)/c.duration.Seconds()),
		zap.Float64("writes_per_second", float64(res.writes)/c.duration.Seconds()),
		zap.Duration("max_shared_wait", res.maxSharedWait),
		zap.Duration("max_exclusive_wait", res.maxExclusiveWait),
	)

	return subcommands.ExitSuccess
}

type contentionResult struct {
	reads            int64
	writes           int64
	maxSharedWait    time.Duration
	maxExclusiveWait time.Duration
}

// maxDuration keeps the largest value stored into it
type maxDuration struct {
	v atomic.Int64
}

func (m *maxDuration) observe(d time.Duration) {
	for {
		old := m.v.Load()
		if int64(d) <= old || m.v.CompareAndSwap(old, int64(d)) {
			return
		}
	}
}

func (m *maxDuration) load() time.Duration {
	return time.Duration(m.v.Load())
}

func contention(ctx context.Context, readers, writers int) (contentionResult, error) {
	var (
		reads, writes        atomic.Int64
		sharedWait, exclWait maxDuration
	)
	v := locked.NewVector[int](locked.WithTrace(trace.Lock{
		OnLock: func(info trace.LockStartInfo) func(trace.LockAcquiredInfo) func(trace.LockReleasedInfo) {
			wait := &sharedWait
			if info.Exclusive {
				wait = &exclWait
			}

			return func(info trace.LockAcquiredInfo) func(trace.LockReleasedInfo) {
				wait.observe(info.Wait)

				return nil
			}
		},
	}))

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < readers; i++ {
		g.Go(func() error {
			for ctx.Err() == nil {
				if n := v.Size(); n > 0 {
					_, _ = v.At(n - 1)
				}
				reads.Add(1)
			}

			return nil
		})
	}
	for i := 0; i < writers; i++ {
		g.Go(func() error {
			for j := 0; ctx.Err() == nil; j++ {
				if j%2 == 0 {
					v.PushBack(j)
				} else {
					_ = v.PopBack()
				}
				writes.Add(1)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return contentionResult{}, err
	}

	return contentionResult{
		reads:            reads.Load(),
		writes:           writes.Load(),
		maxSharedWait:    sharedWait.load(),
		maxExclusiveWait: exclWait.load(),
	}, nil
}
