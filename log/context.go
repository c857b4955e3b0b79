package log

import (
	"context"
	"slices"
)

// scope is what a Log call takes from its context: the level and the
// logger names
type scope struct {
	level Level
	names []string
}

type ctxScopeKey struct{}

func scopeFromContext(ctx context.Context) scope {
	s, _ := ctx.Value(ctxScopeKey{}).(scope)

	return s
}

func WithLevel(ctx context.Context, lvl Level) context.Context {
	s := scopeFromContext(ctx)
	s.level = lvl

	return context.WithValue(ctx, ctxScopeKey{}, s)
}

func LevelFromContext(ctx context.Context) Level {
	return scopeFromContext(ctx).level
}

// WithNames appends names to the logger names of ctx.
// Sibling contexts never share the appended tail.
func WithNames(ctx context.Context, names ...string) context.Context {
	return with(ctx, LevelFromContext(ctx), names...)
}

func NamesFromContext(ctx context.Context) []string {
	names := scopeFromContext(ctx).names
	if names == nil {
		return []string{}
	}

	return slices.Clip(names)
}

// with sets the level and appends names in one context value
func with(ctx context.Context, lvl Level, names ...string) context.Context {
	s := scopeFromContext(ctx)

	return context.WithValue(ctx, ctxScopeKey{}, scope{
		level: lvl,
		names: append(slices.Clip(s.names), names...),
	})
}
