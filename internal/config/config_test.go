package config

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-locked/trace"
)

func TestNew(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		cfg := New()
		require.NotNil(t, cfg)
		_, err := uuid.Parse(cfg.ID())
		require.NoError(t, err)
		require.NotNil(t, cfg.Trace())
		require.NotNil(t, cfg.Clock())
		require.False(t, cfg.LockTraced())
		require.False(t, cfg.CallbackTraced())
	})

	t.Run("UniqueIDs", func(t *testing.T) {
		require.NotEqual(t, New().ID(), New().ID())
	})

	t.Run("WithID", func(t *testing.T) {
		require.Equal(t, "vector-1", New(WithID("vector-1")).ID())
		require.NotEmpty(t, New(WithID("")).ID())
	})

	t.Run("WithClock", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		require.Equal(t, clock, New(WithClock(clock)).Clock())
	})

	t.Run("WithTraceComposes", func(t *testing.T) {
		var calls int
		hook := trace.Lock{
			OnCallback: func(trace.LockCallbackStartInfo) func(trace.LockCallbackDoneInfo) {
				calls++

				return nil
			},
		}
		cfg := New(WithTrace(hook), WithTrace(hook), nil)
		require.True(t, cfg.CallbackTraced())
		require.False(t, cfg.LockTraced(), "single operations stay untraced")
		trace.LockOnCallback(cfg.Trace(), cfg.ID(), false)(0, 0, nil, false)
		require.Equal(t, 2, calls)
	})

	t.Run("WithTraceKeepsUnsetHooksNil", func(t *testing.T) {
		cfg := New(WithTrace(trace.Lock{}), WithTrace(trace.Lock{
			OnLock: func(trace.LockStartInfo) func(trace.LockAcquiredInfo) func(trace.LockReleasedInfo) {
				return nil
			},
		}))
		require.True(t, cfg.LockTraced())
		require.False(t, cfg.CallbackTraced())
		require.Nil(t, cfg.Trace().OnCallback)
	})
}
