package log

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 17, 12, 30, 45, 123000000, time.UTC))

	for _, tt := range []struct {
		name string
		ctx  context.Context //nolint:containedctx
		msg  string
		args []Field
		exp  string
	}{
		{
			name: "Info",
			ctx:  with(context.Background(), INFO, "locked", "vector"),
			msg:  "created",
			exp:  "2024-05-17 12:30:45.123 INFO 'locked.vector' => created\n",
		},
		{
			name: "WithFields",
			ctx:  with(context.Background(), WARN, "locked", "lock", "exclusive"),
			msg:  "slow acquisition",
			args: []Field{String("id", "abc"), Duration("wait", time.Second)},
			exp:  "2024-05-17 12:30:45.123 WARN 'locked.lock.exclusive' => slow acquisition {\"id\":\"abc\",\"wait\":\"1s\"}\n",
		},
		{
			name: "BelowMinLevel",
			ctx:  with(context.Background(), DEBUG, "locked"),
			msg:  "skipped",
			exp:  "",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			l := Default(&b, WithClock(clock), WithMinLevel(INFO))
			l.Log(tt.ctx, tt.msg, tt.args...)
			require.Equal(t, tt.exp, b.String())
		})
	}
}

func TestDefaultLoggerColoring(t *testing.T) {
	var b bytes.Buffer
	l := Default(&b, WithColoring(), WithClock(clockwork.NewFakeClock()))
	l.Log(with(context.Background(), ERROR, "x"), "boom")
	require.Contains(t, b.String(), colorError)
	require.Contains(t, b.String(), colorReset)
}

func TestLevelFromString(t *testing.T) {
	for _, lvl := range []Level{TRACE, DEBUG, INFO, WARN, ERROR, FATAL, QUIET} {
		require.Equal(t, lvl, FromString(lvl.String()))
	}
	require.Equal(t, WARN, FromString("warn"))
	require.Equal(t, QUIET, FromString("unknown"))
}

func TestNamesFromContext(t *testing.T) {
	ctx := WithNames(context.Background(), "a")
	ctx1 := WithNames(ctx, "b")
	ctx2 := WithNames(ctx, "c")
	require.Equal(t, []string{"a", "b"}, NamesFromContext(ctx1))
	require.Equal(t, []string{"a", "c"}, NamesFromContext(ctx2))
	require.Equal(t, []string{}, NamesFromContext(context.Background()))
}

func TestScopeFromContext(t *testing.T) {
	ctx := with(context.Background(), WARN, "locked", "lock")
	require.Equal(t, WARN, LevelFromContext(ctx))

	named := WithNames(ctx, "exclusive")
	require.Equal(t, WARN, LevelFromContext(named), "names keep the level")
	require.Equal(t, []string{"locked", "lock", "exclusive"}, NamesFromContext(named))

	leveled := WithLevel(named, DEBUG)
	require.Equal(t, DEBUG, LevelFromContext(leveled))
	require.Equal(t, []string{"locked", "lock", "exclusive"}, NamesFromContext(leveled), "level keeps the names")
	require.Equal(t, WARN, LevelFromContext(named))
}
