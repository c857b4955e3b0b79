//go:build deadlock

package xsync

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled is true if the deadlock detector is compiled in.
const DeadlockEnabled = true

func init() {
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

// RWMutex is the reader/writer lock used by every locked container.
// This variant reports lock order inversions and waits longer than
// deadlock.Opts.DeadlockTimeout.
type RWMutex struct {
	deadlock.RWMutex
}
