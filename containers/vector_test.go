package containers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		var v Vector[int]
		require.True(t, v.Empty())
		require.Equal(t, 0, v.Size())
		require.Positive(t, v.MaxSize())
		require.True(t, v.Begin().Equal(v.End()))
		require.True(t, v.CBegin().Equal(v.CEnd()))
		require.True(t, v.RBegin().Equal(v.REnd()))

		_, err := v.At(0)
		require.ErrorIs(t, err, ErrOutOfRange)
		_, err = v.Front()
		require.ErrorIs(t, err, ErrEmpty)
		_, err = v.Back()
		require.ErrorIs(t, err, ErrEmpty)
		require.ErrorIs(t, v.PopBack(), ErrEmpty)
		require.Panics(t, func() { _ = v.Get(0) })
		require.Panics(t, func() { _ = v.Index(0) })
	})

	t.Run("Construct", func(t *testing.T) {
		v := NewVector(32, 7)
		require.Equal(t, 32, v.Size())
		require.Equal(t, 7, v.Get(0))
		require.Equal(t, 7, v.Get(31))

		require.Equal(t, []string{"a", "b"}, VectorOf("a", "b").Snapshot())
	})

	t.Run("ElementAccess", func(t *testing.T) {
		v := VectorOf(1, 2, 3)
		x, err := v.At(2)
		require.NoError(t, err)
		require.Equal(t, 3, x)

		*v.Index(0) = 10
		require.Equal(t, 10, v.Get(0))
		require.NoError(t, v.Set(1, 20))
		require.ErrorIs(t, v.Set(3, 0), ErrOutOfRange)
		require.Equal(t, []int{10, 20, 3}, v.Data())

		front, err := v.Front()
		require.NoError(t, err)
		require.Equal(t, 10, front)
		back, err := v.Back()
		require.NoError(t, err)
		require.Equal(t, 3, back)

		_, err = v.At(-1)
		require.ErrorIs(t, err, ErrOutOfRange)
		require.Contains(t, err.Error(), "at: position -1, size 3")
	})

	t.Run("Capacity", func(t *testing.T) {
		var v Vector[int]
		require.NoError(t, v.Reserve(100))
		require.GreaterOrEqual(t, v.Capacity(), 100)
		require.Equal(t, 0, v.Size())

		require.NoError(t, v.ResizeWith(5, 1))
		require.Equal(t, []int{1, 1, 1, 1, 1}, v.Snapshot())
		require.NoError(t, v.Resize(2))
		require.Equal(t, []int{1, 1}, v.Snapshot())
		require.ErrorIs(t, v.Resize(-1), ErrOutOfRange)

		v.ShrinkToFit()
		require.Equal(t, 2, v.Capacity())

		v.Clear()
		require.True(t, v.Empty())
		require.Equal(t, 2, v.Capacity())
		v.ShrinkToFit()
		require.Equal(t, 0, v.Capacity())
	})

	t.Run("Modifiers", func(t *testing.T) {
		v := VectorOf(1, 5)
		require.NoError(t, v.Insert(1, 2, 3, 4))
		require.Equal(t, []int{1, 2, 3, 4, 5}, v.Snapshot())
		require.NoError(t, v.Insert(5, 6))
		require.ErrorIs(t, v.Insert(7, 0), ErrOutOfRange)

		require.NoError(t, v.Erase(0))
		require.Equal(t, []int{2, 3, 4, 5, 6}, v.Snapshot())
		require.ErrorIs(t, v.Erase(5), ErrOutOfRange)
		require.NoError(t, v.EraseRange(1, 3))
		require.Equal(t, []int{2, 5, 6}, v.Snapshot())
		require.ErrorIs(t, v.EraseRange(2, 1), ErrOutOfRange)

		v.PushBack(7)
		require.NoError(t, v.PopBack())
		require.NoError(t, v.PopBack())
		require.Equal(t, []int{2, 5}, v.Snapshot())

		other := VectorOf(9)
		v.Swap(other)
		require.Equal(t, []int{9}, v.Snapshot())
		require.Equal(t, []int{2, 5}, other.Snapshot())

		v.Assign(3, 0)
		require.Equal(t, []int{0, 0, 0}, v.Snapshot())
		v.AssignSlice([]int{4})
		require.Equal(t, []int{4}, v.Snapshot())
	})

	t.Run("Iterators", func(t *testing.T) {
		v := VectorOf(1, 2, 3)

		var forward []int
		for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
			forward = append(forward, it.Value())
		}
		require.Equal(t, []int{1, 2, 3}, forward)

		var backward []int
		for it := v.CRBegin(); !it.Equal(v.CREnd()); it = it.Next() {
			backward = append(backward, it.Value())
		}
		require.Equal(t, []int{3, 2, 1}, backward)

		*v.Begin().Advance(1).Ptr() = 20
		require.Equal(t, 20, v.Get(1))
		require.Equal(t, 2, v.End().Prev().Index())
		require.Panics(t, func() { _ = v.End().Value() })

		require.False(t, v.Begin().Equal(VectorOf(1, 2, 3).Begin()))
	})

	t.Run("All", func(t *testing.T) {
		v := VectorOf("a", "b", "c")
		var got []string
		for i, s := range v.All() {
			if i == 2 {
				break
			}
			got = append(got, s)
		}
		require.Equal(t, []string{"a", "b"}, got)
	})
}
