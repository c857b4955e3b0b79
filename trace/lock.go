package trace

import (
	"time"
)

type (
	// Lock contains hooks for lock acquisitions made by locked containers.
	// Every hook may be nil; nil hooks cost a pointer check.
	Lock struct {
		// OnLock fires around a single locked operation: before acquisition,
		// after acquisition and after release.
		OnLock func(LockStartInfo) func(LockAcquiredInfo) func(LockReleasedInfo)
		// OnCallback fires around ReadLock/WriteLock (and View/Update) batches.
		OnCallback func(LockCallbackStartInfo) func(LockCallbackDoneInfo)
	}
	LockStartInfo struct {
		ID        string // container instance id
		Op        string // operation name from the classification table
		Exclusive bool
	}
	LockAcquiredInfo struct {
		Wait time.Duration
	}
	LockReleasedInfo struct {
		Held time.Duration
	}
	LockCallbackStartInfo struct {
		ID        string
		Exclusive bool
	}
	LockCallbackDoneInfo struct {
		Wait time.Duration
		Held time.Duration
		// Error is the acquisition error of the context-aware variants,
		// nil for the blocking ones
		Error error
		// Panicked reports that the callback exited with a panic
		Panicked bool
	}
)

// Details reports which events are set
func (t *Lock) Details() (d Details) {
	if t == nil {
		return 0
	}
	if t.OnLock != nil {
		d |= LockSharedEvents | LockExclusiveEvents
	}
	if t.OnCallback != nil {
		d |= LockCallbackEvents
	}

	return d
}
