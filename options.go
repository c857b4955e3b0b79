package locked

import (
	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/ydb-go-locked/internal/config"
	"github.com/ydb-platform/ydb-go-locked/trace"
)

// Option configures a locked container at construction
type Option = config.Option

// WithTrace appends lock event hooks. Repeated calls compose.
func WithTrace(t trace.Lock) Option {
	return config.WithTrace(t)
}

// WithClock sets the clock measuring wait and hold durations reported to traces
func WithClock(clock clockwork.Clock) Option {
	return config.WithClock(clock)
}

// WithID names the container in traces, a random uuid is used by default
func WithID(id string) Option {
	return config.WithID(id)
}
