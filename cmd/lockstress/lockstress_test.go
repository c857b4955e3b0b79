package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ydb-platform/ydb-go-locked/internal/xtest"
)

func TestConfigLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lockstress.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
container = "deque"
duration = "250ms"
readers = 3
wait_threshold = "5ms"
`), 0o600))

	cfg := defaultConfig()
	require.NoError(t, cfg.load(path))
	require.Equal(t, "deque", cfg.Container)
	require.Equal(t, 250*time.Millisecond, cfg.Duration)
	require.Equal(t, 3, cfg.Readers)
	require.Equal(t, 5*time.Millisecond, cfg.WaitThreshold)
	require.Equal(t, defaultConfig().Writers, cfg.Writers, "absent keys keep defaults")

	require.Error(t, cfg.load(filepath.Join(t.TempDir(), "absent.toml")))
}

func TestNewSequence(t *testing.T) {
	for _, name := range []string{"vector", "deque", "list"} {
		t.Run(name, func(t *testing.T) {
			s, err := newSequence(name)
			require.NoError(t, err)
			s.PushBack(marker)
			s.ReadLock(func() {
				require.False(t, s.EmptyNoLock())
				front, err := s.FrontNoLock()
				require.NoError(t, err)
				require.Equal(t, marker, front)
			})
			s.WriteLock(s.eraseNoLock)
			require.Equal(t, 0, s.Size())
			s.PushBack(marker)
			s.Clear()
			require.Equal(t, 0, s.Size())
		})
	}
	_, err := newSequence("heap")
	require.ErrorIs(t, err, errUnknownContainer)
}

func TestStress(t *testing.T) {
	for _, name := range []string{"vector", "deque", "list"} {
		t.Run(name, func(t *testing.T) {
			s, err := newSequence(name, lockOptions(zap.NewNop(), time.Second)...)
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(xtest.Context(t), 100*time.Millisecond)
			defer cancel()
			res, err := stress(ctx, s)
			require.NoError(t, err)
			require.Positive(t, res.inserted)
			require.Positive(t, res.cleared)
			require.Positive(t, res.observed)
		})
	}
}

func TestFill(t *testing.T) {
	s, err := newSequence("list")
	require.NoError(t, err)
	size, err := fill(xtest.Context(t), s, 4096, 7)
	require.NoError(t, err)
	require.Equal(t, 4096, size)

	_, err = fill(xtest.Context(t), s, 1, 1)
	require.ErrorIs(t, err, errSizeMismatch)
}

func TestContention(t *testing.T) {
	ctx, cancel := context.WithTimeout(xtest.Context(t), 100*time.Millisecond)
	defer cancel()
	res, err := contention(ctx, 4, 2)
	require.NoError(t, err)
	require.Positive(t, res.reads)
	require.Positive(t, res.writes)
}

func TestMaxDuration(t *testing.T) {
	var m maxDuration
	m.observe(time.Second)
	m.observe(time.Millisecond)
	m.observe(2 * time.Second)
	require.Equal(t, 2*time.Second, m.load())
}
