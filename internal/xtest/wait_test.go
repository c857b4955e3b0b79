package xtest

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrentFileLine(t *testing.T) {
	require.Equal(t, "wait_test.go:14", CurrentFileLine())
}

func TestSpinWaitCondition(t *testing.T) {
	var (
		mu      sync.Mutex
		counter int
	)
	go func() {
		for i := 0; i < 10; i++ {
			mu.Lock()
			counter++
			mu.Unlock()
		}
	}()
	SpinWaitCondition(t, &mu, func() bool {
		return counter == 10
	})
}

func TestBlocked(t *testing.T) {
	require.False(t, Blocked(func() {}, time.Second))

	release := make(chan struct{})
	require.True(t, Blocked(func() { <-release }, 10*time.Millisecond))
	close(release)
}

func TestManyTimesRunsCleanup(t *testing.T) {
	var runs, cleanups atomic.Int64
	TestManyTimes(t, func(t testing.TB) {
		runs.Add(1)
		t.Cleanup(func() {
			cleanups.Add(1)
		})
	})
	require.Positive(t, runs.Load())
	require.Equal(t, runs.Load(), cleanups.Load())
}

func TestCallMethod(t *testing.T) {
	var b strings.Builder
	res := CallMethod(&b, "WriteString", "abc")
	require.Equal(t, []any{3, nil}, res)
	require.Equal(t, "abc", b.String())
	require.Panics(t, func() {
		CallMethod(&b, "Missing")
	})
}
