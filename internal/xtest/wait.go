package xtest

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

const commonWaitTimeout = time.Second

func CurrentFileLine() string {
	_, file, line, _ := runtime.Caller(1)

	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func WaitChannelClosed(t testing.TB, ch <-chan struct{}) {
	t.Helper()

	WaitChannelClosedWithTimeout(t, ch, commonWaitTimeout)
}

func WaitChannelClosedWithTimeout(t testing.TB, ch <-chan struct{}, timeout time.Duration) {
	t.Helper()

	select {
	case <-time.After(timeout):
		t.Fatal("failed to wait channel closed")
	case <-ch:
		// pass
	}
}

// SpinWaitCondition polls cond until it returns true or commonWaitTimeout
// elapses. If l is not nil, cond is called under it.
func SpinWaitCondition(tb testing.TB, l sync.Locker, cond func() bool) {
	tb.Helper()

	SpinWaitConditionWithTimeout(tb, l, commonWaitTimeout, cond)
}

func SpinWaitConditionWithTimeout(tb testing.TB, l sync.Locker, timeout time.Duration, cond func() bool) {
	tb.Helper()

	checkCondition := func() bool {
		if l != nil {
			l.Lock()
			defer l.Unlock()
		}

		return cond()
	}

	start := time.Now()
	for {
		if checkCondition() {
			return
		}

		if time.Since(start) > timeout {
			tb.Fatal("Condition not satisfied")
		}

		runtime.Gosched()
	}
}

// Blocked reports whether f stays running for at least d
func Blocked(f func(), d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()

	select {
	case <-done:
		return false
	case <-time.After(d):
		return true
	}
}
