package xsync

import (
	"context"

	"github.com/ydb-platform/ydb-go-locked/internal/xerrors"
)

// LockContext acquires l exclusively or gives up when ctx is done.
//
// The acquisition itself cannot be interrupted, so it runs in a helper
// goroutine. If ctx wins the race, the helper releases the lock right after
// it gets it and LockContext returns the context error. On success the
// caller owns the lock and must call Unlock.
func LockContext(ctx context.Context, l RWLocker) error {
	return acquireContext(ctx, l.Lock, l.Unlock)
}

// RLockContext is LockContext for shared acquisition.
func RLockContext(ctx context.Context, l RWLocker) error {
	return acquireContext(ctx, l.RLock, l.RUnlock)
}

func acquireContext(ctx context.Context, lock, unlock func()) error {
	if err := ctx.Err(); err != nil {
		return xerrors.WithStackTrace(err, xerrors.WithSkipDepth(1))
	}

	acquired := make(chan struct{})
	go func() {
		lock()
		close(acquired)
	}()

	select {
	case <-acquired:
		return nil
	case <-ctx.Done():
		select {
		case <-acquired:
			// both ready: keep the lock, the caller gets what it asked for
			return nil
		default:
		}
		go func() {
			<-acquired
			unlock()
		}()

		return xerrors.WithStackTrace(ctx.Err(), xerrors.WithSkipDepth(1))
	}
}
