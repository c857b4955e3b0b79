package locked

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ydb-platform/ydb-go-locked/containers"
	"github.com/ydb-platform/ydb-go-locked/log"
	"github.com/ydb-platform/ydb-go-locked/trace"
)

type lockEvent struct {
	id        string
	op        string
	exclusive bool
	wait      time.Duration
	held      time.Duration
	panicked  bool
	err       error
}

// recorder collects completed lock events
type recorder struct {
	mu     sync.Mutex
	events []lockEvent
}

func (r *recorder) add(e lockEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

func (r *recorder) all() []lockEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]lockEvent(nil), r.events...)
}

func (r *recorder) trace() trace.Lock {
	return trace.Lock{
		OnLock: func(start trace.LockStartInfo) func(trace.LockAcquiredInfo) func(trace.LockReleasedInfo) {
			return func(acquired trace.LockAcquiredInfo) func(trace.LockReleasedInfo) {
				return func(released trace.LockReleasedInfo) {
					r.add(lockEvent{
						id:        start.ID,
						op:        start.Op,
						exclusive: start.Exclusive,
						wait:      acquired.Wait,
						held:      released.Held,
					})
				}
			}
		},
		OnCallback: func(start trace.LockCallbackStartInfo) func(trace.LockCallbackDoneInfo) {
			return func(done trace.LockCallbackDoneInfo) {
				r.add(lockEvent{
					id:        start.ID,
					op:        "callback",
					exclusive: start.Exclusive,
					wait:      done.Wait,
					held:      done.Held,
					panicked:  done.Panicked,
					err:       done.Error,
				})
			}
		},
	}
}

// countingClock counts the reads of the current time
type countingClock struct {
	clockwork.Clock

	reads atomic.Int64
}

func (c *countingClock) Now() time.Time {
	c.reads.Add(1)

	return c.Clock.Now()
}

func (c *countingClock) Since(t time.Time) time.Duration {
	c.reads.Add(1)

	return c.Clock.Since(t)
}

func TestTrace(t *testing.T) {
	t.Run("CallbackOnlyLeavesOperationsUntraced", func(t *testing.T) {
		var (
			calls int
			clock = &countingClock{Clock: clockwork.NewFakeClock()}
			v     = NewVector[int](WithClock(clock), WithTrace(trace.Lock{
				OnCallback: func(trace.LockCallbackStartInfo) func(trace.LockCallbackDoneInfo) {
					calls++

					return nil
				},
			}))
		)
		v.PushBack(1)
		_ = v.Size()
		_, _ = v.Front()
		require.Zero(t, clock.reads.Load())
		require.Zero(t, calls)

		v.ReadLock(func() {})
		require.Equal(t, 1, calls)
		require.Positive(t, clock.reads.Load())
	})

	t.Run("Operations", func(t *testing.T) {
		var (
			r     recorder
			clock = clockwork.NewFakeClock()
			v     = NewVector[int](WithTrace(r.trace()), WithClock(clock), WithID("v1"))
		)
		v.PushBack(1)
		_ = v.Size()
		Exec(&v.Basic, NewOp("slow", ModeExclusive), func(*containers.Vector[int]) {
			clock.Advance(time.Second)
		})

		require.Equal(t, []lockEvent{
			{id: "v1", op: "push_back", exclusive: true},
			{id: "v1", op: "size", exclusive: false},
			{id: "v1", op: "slow", exclusive: true, held: time.Second},
		}, r.all())
	})

	t.Run("Callbacks", func(t *testing.T) {
		var (
			r     recorder
			clock = clockwork.NewFakeClock()
			v     = NewVector[int](WithTrace(r.trace()), WithClock(clock), WithID("v2"))
		)
		v.WriteLock(func() {
			clock.Advance(2 * time.Second)
		})
		require.Panics(t, func() {
			v.ReadLock(func() {
				panic("boom")
			})
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.Error(t, v.ReadLockContext(ctx, func() {}))

		events := r.all()
		require.Len(t, events, 3)
		require.Equal(t, lockEvent{id: "v2", op: "callback", exclusive: true, held: 2 * time.Second}, events[0])
		require.True(t, events[1].panicked)
		require.False(t, events[1].exclusive)
		require.ErrorIs(t, events[2].err, context.Canceled)
	})

	t.Run("Composed", func(t *testing.T) {
		var a, b recorder
		v := NewVector[int](WithTrace(a.trace()), WithTrace(b.trace()))
		v.PushBack(1)
		require.Len(t, a.all(), 1)
		require.Len(t, b.all(), 1)
		require.Equal(t, v.ID(), a.all()[0].id)
	})
}

func TestLogTrace(t *testing.T) {
	t.Run("Zap", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		l := log.Zap(zap.New(core))
		v := NewVector[int](
			WithID("v3"),
			WithTrace(log.Lock(l, trace.DetailsAll)),
		)
		v.PushBack(1)

		entries := logs.AllUntimed()
		require.Len(t, entries, 3)
		for _, e := range entries {
			require.Equal(t, "locked.lock.exclusive", e.LoggerName)
			require.Equal(t, "push_back", e.ContextMap()["op"])
			require.Equal(t, "v3", e.ContextMap()["id"])
		}
		require.Equal(t, "acquiring...", entries[0].Message)
		require.Equal(t, "acquired", entries[1].Message)
		require.Equal(t, "released", entries[2].Message)
	})

	t.Run("OnlyShared", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		v := NewVector[int](
			WithTrace(log.Lock(log.Zap(zap.New(core)), trace.LockSharedEvents)),
		)
		v.PushBack(1)
		_ = v.Size()
		v.ReadLock(func() {})

		entries := logs.AllUntimed()
		require.Len(t, entries, 3)
		require.Equal(t, "locked.lock.shared", entries[0].LoggerName)
	})

	t.Run("SlowAcquisition", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		v := NewVector[int](
			WithTrace(log.Lock(log.Zap(zap.New(core)), trace.LockEvents, log.WithWaitThreshold(blockTimeout/5))),
		)
		release := holdLock(t, v, ModeExclusive)
		pushed := started(func() { v.PushBack(1) })
		requireBlocked(t, pushed)
		release()
		<-pushed

		entries := logs.FilterMessage("slow acquisition").AllUntimed()
		require.Len(t, entries, 1)
		require.Equal(t, "push_back", entries[0].ContextMap()["op"])
	})
}
