package log

import (
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	_ simpleLoggerOption = minLevelOption(0)
	_ simpleLoggerOption = coloringOption{}
	_ simpleLoggerOption = clockOption{}
)

type minLevelOption Level

func (o minLevelOption) applySimpleOption(l *defaultLogger) {
	l.minLevel = Level(o)
}

func WithMinLevel(level Level) minLevelOption {
	return minLevelOption(level)
}

type coloringOption struct{}

func (coloringOption) applySimpleOption(l *defaultLogger) {
	l.coloring = true
}

func WithColoring() coloringOption {
	return coloringOption{}
}

type clockOption struct {
	clock clockwork.Clock
}

func (o clockOption) applySimpleOption(l *defaultLogger) {
	l.clock = o.clock
}

func WithClock(clock clockwork.Clock) clockOption {
	return clockOption{clock: clock}
}

// Option configures the Lock trace adapter
type Option func(o *lockOptions)

type lockOptions struct {
	waitThreshold time.Duration
}

// WithWaitThreshold makes acquisitions waiting at least d logged at WARN level.
// Zero disables the warning.
func WithWaitThreshold(d time.Duration) Option {
	return func(o *lockOptions) {
		o.waitThreshold = d
	}
}
