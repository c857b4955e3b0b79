//go:build !deadlock

package xsync

import "sync"

// DeadlockEnabled is true if the deadlock detector is compiled in.
const DeadlockEnabled = false

// RWMutex is the reader/writer lock used by every locked container.
// A blocked Lock call prevents new readers from acquiring the lock, so
// writers are not starved by a steady stream of readers.
//
// Build with -tags=deadlock to swap in github.com/sasha-s/go-deadlock.
type RWMutex struct { //nolint:gocritic
	sync.RWMutex
}
