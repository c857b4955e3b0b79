package config

import (
	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/ydb-go-locked/trace"
)

type Option func(c *Config)

// WithTrace appends t to the hooks already set
func WithTrace(t trace.Lock) Option {
	return func(c *Config) {
		c.trace = c.trace.Compose(&t)
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(c *Config) {
		c.clock = clock
	}
}

func WithID(id string) Option {
	return func(c *Config) {
		if id != "" {
			c.id = id
		}
	}
}
