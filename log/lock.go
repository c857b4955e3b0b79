package log

import (
	"context"

	"github.com/ydb-platform/ydb-go-locked/trace"
)

// Lock makes trace.Lock with logging events from details
func Lock(l Logger, d trace.Detailer, opts ...Option) (t trace.Lock) {
	options := lockOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	t.OnLock = func(info trace.LockStartInfo) func(trace.LockAcquiredInfo) func(trace.LockReleasedInfo) {
		mode, bit := "shared", trace.LockSharedEvents
		if info.Exclusive {
			mode, bit = "exclusive", trace.LockExclusiveEvents
		}
		if d.Details()&bit == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "locked", "lock", mode)
		id := info.ID
		op := info.Op
		l.Log(ctx, "acquiring...",
			String("id", id),
			String("op", op),
		)

		return func(info trace.LockAcquiredInfo) func(trace.LockReleasedInfo) {
			if options.waitThreshold > 0 && info.Wait >= options.waitThreshold {
				l.Log(WithLevel(ctx, WARN), "slow acquisition",
					String("id", id),
					String("op", op),
					Duration("wait", info.Wait),
					Duration("threshold", options.waitThreshold),
				)
			} else {
				l.Log(WithLevel(ctx, DEBUG), "acquired",
					String("id", id),
					String("op", op),
					Duration("wait", info.Wait),
				)
			}

			return func(info trace.LockReleasedInfo) {
				l.Log(ctx, "released",
					String("id", id),
					String("op", op),
					Duration("held", info.Held),
				)
			}
		}
	}
	t.OnCallback = func(info trace.LockCallbackStartInfo) func(trace.LockCallbackDoneInfo) {
		if d.Details()&trace.LockCallbackEvents == 0 {
			return nil
		}
		mode := "read"
		if info.Exclusive {
			mode = "write"
		}
		ctx := with(context.Background(), TRACE, "locked", "lock", "callback", mode)
		id := info.ID
		l.Log(ctx, "callback starting...",
			String("id", id),
		)

		return func(info trace.LockCallbackDoneInfo) {
			switch {
			case info.Error != nil:
				l.Log(WithLevel(ctx, WARN), "callback lock not acquired",
					String("id", id),
					Error(info.Error),
					Duration("wait", info.Wait),
				)
			case info.Panicked:
				l.Log(WithLevel(ctx, ERROR), "callback panicked, lock released",
					String("id", id),
					Duration("wait", info.Wait),
					Duration("held", info.Held),
				)
			default:
				l.Log(WithLevel(ctx, DEBUG), "callback done",
					String("id", id),
					Duration("wait", info.Wait),
					Duration("held", info.Held),
				)
			}
		}
	}

	return t
}
