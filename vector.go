package locked

import (
	"iter"

	"github.com/ydb-platform/ydb-go-locked/containers"
)

// Vector is a containers.Vector guarded by a reader/writer lock.
//
// Iterators and the slice returned by Data stay valid only while the caller
// holds the lock; obtain them with the NoLock variants inside ReadLock or
// WriteLock to use them safely.
type Vector[T any] struct {
	Basic[containers.Vector[T]]
}

func NewVector[T any](opts ...Option) *Vector[T] {
	v := &Vector[T]{}
	v.init(nil, opts)

	return v
}

// VectorN returns a vector of n copies of fill
func VectorN[T any](n int, fill T, opts ...Option) *Vector[T] {
	v := &Vector[T]{}
	v.init(func(c *containers.Vector[T]) {
		c.Assign(n, fill)
	}, opts)

	return v
}

// VectorOf returns a vector holding a copy of vals
func VectorOf[T any](vals []T, opts ...Option) *Vector[T] {
	v := &Vector[T]{}
	v.init(func(c *containers.Vector[T]) {
		c.AssignSlice(vals)
	}, opts)

	return v
}

func (v *Vector[T]) Assign(n int, fill T) {
	Exec(&v.Basic, OpAssign, func(c *containers.Vector[T]) {
		c.Assign(n, fill)
	})
}

func (v *Vector[T]) AssignNoLock(n int, fill T) {
	v.c.Assign(n, fill)
}

func (v *Vector[T]) AssignSlice(vals []T) {
	Exec(&v.Basic, OpAssign, func(c *containers.Vector[T]) {
		c.AssignSlice(vals)
	})
}

func (v *Vector[T]) AssignSliceNoLock(vals []T) {
	v.c.AssignSlice(vals)
}

func (v *Vector[T]) At(i int) (T, error) {
	return Do2(&v.Basic, OpAt, func(c *containers.Vector[T]) (T, error) {
		return c.At(i)
	})
}

func (v *Vector[T]) AtNoLock(i int) (T, error) {
	return v.c.At(i)
}

// Get is the unchecked read of element i, it panics if i is out of range
func (v *Vector[T]) Get(i int) T {
	return Do(&v.Basic, OpGet, func(c *containers.Vector[T]) T {
		return c.Get(i)
	})
}

func (v *Vector[T]) GetNoLock(i int) T {
	return v.c.Get(i)
}

// Index returns the address of element i. Writing through it is safe only
// while no other goroutine uses the vector.
func (v *Vector[T]) Index(i int) *T {
	return Do(&v.Basic, OpIndex, func(c *containers.Vector[T]) *T {
		return c.Index(i)
	})
}

func (v *Vector[T]) IndexNoLock(i int) *T {
	return v.c.Index(i)
}

func (v *Vector[T]) Set(i int, val T) error {
	return Do(&v.Basic, OpSet, func(c *containers.Vector[T]) error {
		return c.Set(i, val)
	})
}

func (v *Vector[T]) SetNoLock(i int, val T) error {
	return v.c.Set(i, val)
}

func (v *Vector[T]) Data() []T {
	return Do(&v.Basic, OpData, (*containers.Vector[T]).Data)
}

func (v *Vector[T]) DataNoLock() []T {
	return v.c.Data()
}

func (v *Vector[T]) Front() (T, error) {
	return Do2(&v.Basic, OpFront, (*containers.Vector[T]).Front)
}

func (v *Vector[T]) FrontNoLock() (T, error) {
	return v.c.Front()
}

func (v *Vector[T]) Back() (T, error) {
	return Do2(&v.Basic, OpBack, (*containers.Vector[T]).Back)
}

func (v *Vector[T]) BackNoLock() (T, error) {
	return v.c.Back()
}

func (v *Vector[T]) Empty() bool {
	return Do(&v.Basic, OpEmpty, (*containers.Vector[T]).Empty)
}

func (v *Vector[T]) EmptyNoLock() bool {
	return v.c.Empty()
}

func (v *Vector[T]) Size() int {
	return Do(&v.Basic, OpSize, (*containers.Vector[T]).Size)
}

func (v *Vector[T]) SizeNoLock() int {
	return v.c.Size()
}

func (v *Vector[T]) MaxSize() int {
	return Do(&v.Basic, OpMaxSize, (*containers.Vector[T]).MaxSize)
}

func (v *Vector[T]) MaxSizeNoLock() int {
	return v.c.MaxSize()
}

func (v *Vector[T]) Capacity() int {
	return Do(&v.Basic, OpCapacity, (*containers.Vector[T]).Capacity)
}

func (v *Vector[T]) CapacityNoLock() int {
	return v.c.Capacity()
}

func (v *Vector[T]) Reserve(n int) error {
	return Do(&v.Basic, OpReserve, func(c *containers.Vector[T]) error {
		return c.Reserve(n)
	})
}

func (v *Vector[T]) ReserveNoLock(n int) error {
	return v.c.Reserve(n)
}

func (v *Vector[T]) Resize(n int) error {
	return Do(&v.Basic, OpResize, func(c *containers.Vector[T]) error {
		return c.Resize(n)
	})
}

func (v *Vector[T]) ResizeNoLock(n int) error {
	return v.c.Resize(n)
}

func (v *Vector[T]) ResizeWith(n int, fill T) error {
	return Do(&v.Basic, OpResize, func(c *containers.Vector[T]) error {
		return c.ResizeWith(n, fill)
	})
}

func (v *Vector[T]) ResizeWithNoLock(n int, fill T) error {
	return v.c.ResizeWith(n, fill)
}

func (v *Vector[T]) ShrinkToFit() {
	Exec(&v.Basic, OpShrinkToFit, (*containers.Vector[T]).ShrinkToFit)
}

func (v *Vector[T]) ShrinkToFitNoLock() {
	v.c.ShrinkToFit()
}

func (v *Vector[T]) Clear() {
	Exec(&v.Basic, OpClear, (*containers.Vector[T]).Clear)
}

func (v *Vector[T]) ClearNoLock() {
	v.c.Clear()
}

func (v *Vector[T]) Insert(pos int, vals ...T) error {
	return Do(&v.Basic, OpInsert, func(c *containers.Vector[T]) error {
		return c.Insert(pos, vals...)
	})
}

func (v *Vector[T]) InsertNoLock(pos int, vals ...T) error {
	return v.c.Insert(pos, vals...)
}

func (v *Vector[T]) Erase(pos int) error {
	return Do(&v.Basic, OpErase, func(c *containers.Vector[T]) error {
		return c.Erase(pos)
	})
}

func (v *Vector[T]) EraseNoLock(pos int) error {
	return v.c.Erase(pos)
}

func (v *Vector[T]) EraseRange(first, last int) error {
	return Do(&v.Basic, OpErase, func(c *containers.Vector[T]) error {
		return c.EraseRange(first, last)
	})
}

func (v *Vector[T]) EraseRangeNoLock(first, last int) error {
	return v.c.EraseRange(first, last)
}

func (v *Vector[T]) PushBack(val T) {
	Exec(&v.Basic, OpPushBack, func(c *containers.Vector[T]) {
		c.PushBack(val)
	})
}

func (v *Vector[T]) PushBackNoLock(val T) {
	v.c.PushBack(val)
}

func (v *Vector[T]) PopBack() error {
	return Do(&v.Basic, OpPopBack, (*containers.Vector[T]).PopBack)
}

func (v *Vector[T]) PopBackNoLock() error {
	return v.c.PopBack()
}

// Swap exchanges the contents of two vectors holding both locks
func (v *Vector[T]) Swap(other *Vector[T]) {
	ExecPair(&v.Basic, &other.Basic, OpSwap, (*containers.Vector[T]).Swap)
}

// SwapNoLock locks neither v nor other
func (v *Vector[T]) SwapNoLock(other *Vector[T]) {
	v.c.Swap(&other.c)
}

func (v *Vector[T]) Begin() containers.Iterator[T] {
	return Do(&v.Basic, OpBegin, (*containers.Vector[T]).Begin)
}

func (v *Vector[T]) BeginNoLock() containers.Iterator[T] {
	return v.c.Begin()
}

func (v *Vector[T]) End() containers.Iterator[T] {
	return Do(&v.Basic, OpEnd, (*containers.Vector[T]).End)
}

func (v *Vector[T]) EndNoLock() containers.Iterator[T] {
	return v.c.End()
}

func (v *Vector[T]) RBegin() containers.Iterator[T] {
	return Do(&v.Basic, OpRBegin, (*containers.Vector[T]).RBegin)
}

func (v *Vector[T]) RBeginNoLock() containers.Iterator[T] {
	return v.c.RBegin()
}

func (v *Vector[T]) REnd() containers.Iterator[T] {
	return Do(&v.Basic, OpREnd, (*containers.Vector[T]).REnd)
}

func (v *Vector[T]) REndNoLock() containers.Iterator[T] {
	return v.c.REnd()
}

func (v *Vector[T]) CBegin() containers.ConstIterator[T] {
	return Do(&v.Basic, OpCBegin, (*containers.Vector[T]).CBegin)
}

func (v *Vector[T]) CBeginNoLock() containers.ConstIterator[T] {
	return v.c.CBegin()
}

func (v *Vector[T]) CEnd() containers.ConstIterator[T] {
	return Do(&v.Basic, OpCEnd, (*containers.Vector[T]).CEnd)
}

func (v *Vector[T]) CEndNoLock() containers.ConstIterator[T] {
	return v.c.CEnd()
}

func (v *Vector[T]) CRBegin() containers.ConstIterator[T] {
	return Do(&v.Basic, OpCRBegin, (*containers.Vector[T]).CRBegin)
}

func (v *Vector[T]) CRBeginNoLock() containers.ConstIterator[T] {
	return v.c.CRBegin()
}

func (v *Vector[T]) CREnd() containers.ConstIterator[T] {
	return Do(&v.Basic, OpCREnd, (*containers.Vector[T]).CREnd)
}

func (v *Vector[T]) CREndNoLock() containers.ConstIterator[T] {
	return v.c.CREnd()
}

// All ranges over the elements holding the lock shared for the whole loop.
// The loop body must not call locked operations of v.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		Exec(&v.Basic, OpAll, func(c *containers.Vector[T]) {
			for i, val := range c.All() {
				if !yield(i, val) {
					return
				}
			}
		})
	}
}

func (v *Vector[T]) AllNoLock() iter.Seq2[int, T] {
	return v.c.All()
}

// Snapshot copies the elements under the shared lock
func (v *Vector[T]) Snapshot() []T {
	return Do(&v.Basic, OpSnapshot, (*containers.Vector[T]).Snapshot)
}

func (v *Vector[T]) SnapshotNoLock() []T {
	return v.c.Snapshot()
}
