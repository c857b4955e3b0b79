package config

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/ydb-go-locked/trace"
)

// Config holds per-container settings. It is immutable after New.
type Config struct {
	id    string
	trace *trace.Lock
	clock clockwork.Clock
}

func New(opts ...Option) *Config {
	c := defaults()
	for _, o := range opts {
		if o != nil {
			o(c)
		}
	}

	return c
}

func defaults() *Config {
	return &Config{
		id:    uuid.NewString(),
		trace: &trace.Lock{},
		clock: clockwork.NewRealClock(),
	}
}

// ID identifies the container instance in traces and logs
func (c *Config) ID() string {
	return c.id
}

// Trace defines trace over lock acquisitions
func (c *Config) Trace() *trace.Lock {
	return c.trace
}

// Clock measures lock wait and hold durations
func (c *Config) Clock() clockwork.Clock {
	return c.clock
}

// LockTraced reports whether single operations are traced.
// The clock is not read for untraced ones.
func (c *Config) LockTraced() bool {
	return c.trace.OnLock != nil
}

// CallbackTraced reports whether ReadLock/WriteLock batches are traced
func (c *Config) CallbackTraced() bool {
	return c.trace.OnCallback != nil
}
