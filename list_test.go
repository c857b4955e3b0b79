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

// nth walks k elements from e, nil is the past-the-end position
func nth[T any](e *containers.Element[T], k int) *containers.Element[T] {
	for ; e != nil && k > 0; k-- {
		e = e.Next()
	}

	return e
}

func TestListMatchesUnlocked(t *testing.T) {
	var (
		locked   = NewList[int]()
		unlocked containers.List[int]
		rnd      = rand.New(rand.NewSource(3)) //nolint:gosec
		less     = func(a, b int) bool { return a < b }
	)
	for i := 0; i < 2000; i++ {
		switch rnd.Intn(12) {
		case 0, 1:
			locked.PushBack(i % 50)
			unlocked.PushBack(i % 50)
		case 2, 3:
			locked.PushFront(i % 50)
			unlocked.PushFront(i % 50)
		case 4:
			requireSameError(t, unlocked.PopBack(), locked.PopBack())
		case 5:
			requireSameError(t, unlocked.PopFront(), locked.PopFront())
		case 6:
			k := rnd.Intn(unlocked.Size() + 1)
			_, expected := unlocked.Insert(nth(unlocked.Begin(), k), i)
			_, actual := locked.Insert(nth(locked.Begin(), k), i)
			requireSameError(t, expected, actual)
		case 7:
			k := rnd.Intn(unlocked.Size() + 1)
			_, expected := unlocked.Erase(nth(unlocked.Begin(), k))
			_, actual := locked.Erase(nth(locked.Begin(), k))
			requireSameError(t, expected, actual)
		case 8:
			n := rnd.Intn(unlocked.Size() + 3)
			requireSameError(t, unlocked.ResizeWith(n, -i), locked.ResizeWith(n, -i))
		case 9:
			pred := func(v int) bool { return v%7 == 0 }
			require.Equal(t, unlocked.RemoveIf(pred), locked.RemoveIf(pred))
		case 10:
			eq := func(a, b int) bool { return a == b }
			require.Equal(t, unlocked.Unique(eq), locked.Unique(eq))
		case 11:
			if rnd.Intn(2) == 0 {
				unlocked.Reverse()
				locked.Reverse()
			} else {
				unlocked.Sort(less)
				locked.Sort(less)
			}
		}
		require.Equal(t, unlocked.Size(), locked.Size())
		if diff := cmp.Diff(unlocked.Snapshot(), locked.Snapshot(), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("step %d (-unlocked +locked):\n%s", i, diff)
		}
	}
}

func TestList(t *testing.T) {
	less := func(a, b int) bool { return a < b }

	t.Run("Positions", func(t *testing.T) {
		l := NewList[int]()
		l.WriteLock(func() {
			mid := l.PushBackNoLock(2)
			l.PushFrontNoLock(1)
			_, err := l.InsertNoLock(nil, 4)
			require.NoError(t, err)
			_, err = l.InsertNoLock(mid.Next(), 3)
			require.NoError(t, err)
		})
		require.Equal(t, []int{1, 2, 3, 4}, l.Snapshot())

		l.WriteLock(func() {
			for e := l.BeginNoLock(); e != l.EndNoLock(); {
				if e.Value%2 == 0 {
					next, err := l.EraseNoLock(e)
					require.NoError(t, err)
					e = next
				} else {
					e = e.Next()
				}
			}
		})
		require.Equal(t, []int{1, 3}, l.Snapshot())
		require.Equal(t, 2, l.Size())
	})

	t.Run("ForeignElement", func(t *testing.T) {
		a, b := ListOf([]int{1}), ListOf([]int{2})
		_, err := a.Erase(b.Begin())
		require.ErrorIs(t, err, containers.ErrForeignElement)
	})

	t.Run("ListOperations", func(t *testing.T) {
		a, b := ListOf([]int{1, 3, 5}), ListOf([]int{2, 4})
		a.Merge(b, less)
		require.Equal(t, []int{1, 2, 3, 4, 5}, a.Snapshot())
		require.True(t, b.Empty())

		require.NoError(t, b.Splice(nil, a))
		require.True(t, a.Empty())
		require.Equal(t, 5, b.Size())

		require.Equal(t, 2, b.RemoveIf(func(v int) bool { return v%2 == 0 }))
		b.PushBack(5)
		require.Equal(t, 1, b.Unique(func(x, y int) bool { return x == y }))
		b.Reverse()
		require.Equal(t, []int{5, 3, 1}, b.Snapshot())
		b.Sort(less)
		require.Equal(t, []int{1, 3, 5}, b.Snapshot())

		front, err := b.Front()
		require.NoError(t, err)
		require.Equal(t, 1, front)
		require.Equal(t, 5, b.CRBegin().Value())
	})

	t.Run("ConcurrentSplice", func(t *testing.T) {
		a, b := ListN(100, 1), ListN(100, 2)
		var g errgroup.Group
		for i := 0; i < 10; i++ {
			g.Go(func() error {
				return a.Splice(nil, b)
			})
			g.Go(func() error {
				return b.Splice(nil, a)
			})
		}
		require.NoError(t, g.Wait())
		require.Equal(t, 200, a.Size()+b.Size())
	})

	t.Run("Resize", func(t *testing.T) {
		l := NewList[string]()
		require.NoError(t, l.ResizeWith(2, "a"))
		require.NoError(t, l.Resize(3))
		require.Equal(t, []string{"a", "a", ""}, l.Snapshot())
		l.Clear()
		require.True(t, l.Empty())
	})
}
