package locked

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/ydb-go-locked/internal/config"
	"github.com/ydb-platform/ydb-go-locked/internal/xsync"
	"github.com/ydb-platform/ydb-go-locked/trace"
)

var defaultConfig = config.New(config.WithID("default"))

// Basic couples a container of type C with the reader/writer lock guarding it.
// It is the building block of the typed wrappers and of custom ones made with
// Do, Do2 and Exec.
//
// The zero value holds the zero container and an unlocked lock. A Basic must
// not be copied after first use.
type Basic[C any] struct {
	mu  xsync.RWMutex
	c   C
	cfg *config.Config
}

// NewBasic returns a wrapper over a zero C which init may fill in place
// before the wrapper is shared
func NewBasic[C any](init func(c *C), opts ...Option) *Basic[C] {
	b := &Basic[C]{}
	b.init(init, opts)

	return b
}

func (b *Basic[C]) init(init func(c *C), opts []Option) {
	b.cfg = config.New(opts...)
	if init != nil {
		init(&b.c)
	}
}

func (b *Basic[C]) config() *config.Config {
	if b.cfg == nil {
		return defaultConfig
	}

	return b.cfg
}

// ID is the container name reported in traces
func (b *Basic[C]) ID() string {
	return b.config().ID()
}

func (b *Basic[C]) lockFuncs(mode Mode) (lock, unlock func()) {
	if mode == ModeExclusive {
		return b.mu.Lock, b.mu.Unlock
	}

	return b.mu.RLock, b.mu.RUnlock
}

// acquire takes the lock for op and returns its release
func (b *Basic[C]) acquire(op Op) (release func()) {
	lock, unlock := b.lockFuncs(op.Mode())

	cfg := b.config()
	if !cfg.LockTraced() {
		lock()

		return unlock
	}

	var (
		clock      = cfg.Clock()
		start      = clock.Now()
		onAcquired = trace.LockOnLock(cfg.Trace(), cfg.ID(), op.Name(), op.Mode() == ModeExclusive)
	)
	lock()
	acquired := clock.Now()
	onReleased := onAcquired(acquired.Sub(start))

	return func() {
		unlock()
		onReleased(clock.Since(acquired))
	}
}

// ReadLock runs f with the lock held shared. Inside f only NoLock
// operations of the same container may be used. The lock is released when
// f returns or panics.
func (b *Basic[C]) ReadLock(f func()) {
	b.callback(ModeShared, f)
}

// WriteLock runs f with the lock held exclusively. Inside f only NoLock
// operations of the same container may be used. The lock is released when
// f returns or panics.
func (b *Basic[C]) WriteLock(f func()) {
	b.callback(ModeExclusive, f)
}

// View is ReadLock handing the raw container to f
func (b *Basic[C]) View(f func(c *C)) {
	b.callback(ModeShared, func() {
		f(&b.c)
	})
}

// Update is WriteLock handing the raw container to f
func (b *Basic[C]) Update(f func(c *C)) {
	b.callback(ModeExclusive, func() {
		f(&b.c)
	})
}

// ReadLockContext is ReadLock giving up when ctx is done before the lock
// is acquired. f is not called in that case and the context error is returned.
func (b *Basic[C]) ReadLockContext(ctx context.Context, f func()) error {
	return b.callbackContext(ctx, ModeShared, f)
}

// WriteLockContext is WriteLock giving up when ctx is done before the lock
// is acquired. f is not called in that case and the context error is returned.
func (b *Basic[C]) WriteLockContext(ctx context.Context, f func()) error {
	return b.callbackContext(ctx, ModeExclusive, f)
}

// Unsafe returns the guarded container without locking.
// It is safe to use only inside ReadLock or WriteLock.
func (b *Basic[C]) Unsafe() *C {
	return &b.c
}

func (b *Basic[C]) callback(mode Mode, f func()) {
	cfg := b.config()
	if !cfg.CallbackTraced() {
		if mode == ModeExclusive {
			b.mu.WithLock(f)
		} else {
			b.mu.WithRLock(f)
		}

		return
	}

	lock, unlock := b.lockFuncs(mode)
	var (
		clock  = cfg.Clock()
		start  = clock.Now()
		onDone = trace.LockOnCallback(cfg.Trace(), cfg.ID(), mode == ModeExclusive)
	)
	lock()
	runLocked(clock, start, unlock, onDone, f)
}

func (b *Basic[C]) callbackContext(ctx context.Context, mode Mode, f func()) error {
	var (
		cfg    = b.config()
		clock  = cfg.Clock()
		start  = clock.Now()
		onDone = trace.LockOnCallback(cfg.Trace(), cfg.ID(), mode == ModeExclusive)
	)

	acquire, unlock := xsync.RLockContext, b.mu.RUnlock
	if mode == ModeExclusive {
		acquire, unlock = xsync.LockContext, b.mu.Unlock
	}
	if err := acquire(ctx, &b.mu); err != nil {
		onDone(clock.Since(start), 0, err, false)

		return err
	}
	runLocked(clock, start, unlock, onDone, f)

	return nil
}

// runLocked calls f with the lock already held and releases it on every exit path
func runLocked(
	clock clockwork.Clock,
	start time.Time,
	unlock func(),
	onDone func(wait, held time.Duration, err error, panicked bool),
	f func(),
) {
	acquired := clock.Now()
	panicked := true
	defer func() {
		unlock()
		onDone(acquired.Sub(start), clock.Since(acquired), nil, panicked)
	}()

	f()
	panicked = false
}
