package locked

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ydb-platform/ydb-go-locked/containers"
)

func TestDequeMatchesUnlocked(t *testing.T) {
	var (
		locked   = NewDeque[int]()
		unlocked containers.Deque[int]
		rnd      = rand.New(rand.NewSource(2)) //nolint:gosec
	)
	for i := 0; i < 2000; i++ {
		switch rnd.Intn(12) {
		case 0, 1:
			locked.PushBack(i)
			unlocked.PushBack(i)
		case 2, 3:
			locked.PushFront(i)
			unlocked.PushFront(i)
		case 4:
			requireSameError(t, unlocked.PopBack(), locked.PopBack())
		case 5:
			requireSameError(t, unlocked.PopFront(), locked.PopFront())
		case 6:
			pos := rnd.Intn(unlocked.Size() + 2)
			requireSameError(t, unlocked.Insert(pos, i, -i), locked.Insert(pos, i, -i))
		case 7:
			pos := rnd.Intn(unlocked.Size() + 1)
			requireSameError(t, unlocked.Erase(pos), locked.Erase(pos))
		case 8:
			first := rnd.Intn(unlocked.Size() + 1)
			last := first + rnd.Intn(4)
			requireSameError(t, unlocked.EraseRange(first, last), locked.EraseRange(first, last))
		case 9:
			n := rnd.Intn(unlocked.Size() + 3)
			requireSameError(t, unlocked.ResizeWith(n, -i), locked.ResizeWith(n, -i))
		case 10:
			pos := rnd.Intn(unlocked.Size() + 1)
			requireSameError(t, unlocked.Set(pos, i), locked.Set(pos, i))
		case 11:
			unlocked.ShrinkToFit()
			locked.ShrinkToFit()
		}
		require.Equal(t, unlocked.Size(), locked.Size())
		if diff := cmp.Diff(unlocked.Snapshot(), locked.Snapshot(), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("step %d (-unlocked +locked):\n%s", i, diff)
		}
	}
}

func TestDeque(t *testing.T) {
	t.Run("BothEnds", func(t *testing.T) {
		d := DequeOf([]int{2})
		d.PushFront(1)
		d.PushBack(3)
		require.Equal(t, []int{1, 2, 3}, d.Snapshot())

		require.NoError(t, d.PopFront())
		back, err := d.Back()
		require.NoError(t, err)
		require.Equal(t, 3, back)
		require.NoError(t, d.PopBack())
		require.NoError(t, d.PopBack())
		require.ErrorIs(t, d.PopFront(), containers.ErrEmpty)
	})

	t.Run("Positional", func(t *testing.T) {
		d := DequeN(3, 0)
		require.NoError(t, d.Insert(1, 7, 8))
		require.NoError(t, d.Set(0, 5))
		*d.Index(4) = 9
		require.Equal(t, []int{5, 7, 8, 0, 9}, d.Snapshot())
		require.NoError(t, d.EraseRange(1, 3))
		require.NoError(t, d.Erase(0))
		require.Equal(t, []int{0, 9}, d.Snapshot())
		require.ErrorIs(t, d.Erase(2), containers.ErrOutOfRange)
		require.Equal(t, 9, d.Get(1))
	})

	t.Run("ProducerConsumer", func(t *testing.T) {
		const n = 1000

		d := NewDeque[int]()
		var g errgroup.Group
		g.Go(func() error {
			for i := 0; i < n; i++ {
				d.PushBack(i)
			}

			return nil
		})
		popped := 0
		g.Go(func() error {
			for popped < n {
				d.WriteLock(func() {
					if !d.EmptyNoLock() {
						front, err := d.FrontNoLock()
						if err == nil && front == popped {
							popped++
						}
						_ = d.PopFrontNoLock()
					}
				})
			}

			return nil
		})
		require.NoError(t, g.Wait())
		require.True(t, d.Empty())
		require.Equal(t, n, popped)
	})

	t.Run("Swap", func(t *testing.T) {
		a, b := DequeOf([]string{"a"}), DequeOf([]string{"b", "c"})
		a.Swap(b)
		require.Equal(t, []string{"b", "c"}, a.Snapshot())
		require.Equal(t, []string{"a"}, b.Snapshot())
	})
}
