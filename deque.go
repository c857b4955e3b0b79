package locked

import (
	"iter"

	"github.com/ydb-platform/ydb-go-locked/containers"
)

// Deque is a containers.Deque guarded by a reader/writer lock.
// Iterators stay valid only while the caller holds the lock.
type Deque[T any] struct {
	Basic[containers.Deque[T]]
}

func NewDeque[T any](opts ...Option) *Deque[T] {
	d := &Deque[T]{}
	d.init(nil, opts)

	return d
}

// DequeN returns a deque of n copies of fill
func DequeN[T any](n int, fill T, opts ...Option) *Deque[T] {
	d := &Deque[T]{}
	d.init(func(c *containers.Deque[T]) {
		c.Assign(n, fill)
	}, opts)

	return d
}

// DequeOf returns a deque holding a copy of vals
func DequeOf[T any](vals []T, opts ...Option) *Deque[T] {
	d := &Deque[T]{}
	d.init(func(c *containers.Deque[T]) {
		c.AssignSlice(vals)
	}, opts)

	return d
}

func (d *Deque[T]) Assign(n int, fill T) {
	Exec(&d.Basic, OpAssign, func(c *containers.Deque[T]) {
		c.Assign(n, fill)
	})
}

func (d *Deque[T]) AssignNoLock(n int, fill T) {
	d.c.Assign(n, fill)
}

func (d *Deque[T]) AssignSlice(vals []T) {
	Exec(&d.Basic, OpAssign, func(c *containers.Deque[T]) {
		c.AssignSlice(vals)
	})
}

func (d *Deque[T]) AssignSliceNoLock(vals []T) {
	d.c.AssignSlice(vals)
}

func (d *Deque[T]) At(i int) (T, error) {
	return Do2(&d.Basic, OpAt, func(c *containers.Deque[T]) (T, error) {
		return c.At(i)
	})
}

func (d *Deque[T]) AtNoLock(i int) (T, error) {
	return d.c.At(i)
}

// Get is the unchecked read of element i, it panics if i is out of range
func (d *Deque[T]) Get(i int) T {
	return Do(&d.Basic, OpGet, func(c *containers.Deque[T]) T {
		return c.Get(i)
	})
}

func (d *Deque[T]) GetNoLock(i int) T {
	return d.c.Get(i)
}

// Index returns the address of element i. Writing through it is safe only
// while no other goroutine uses the deque.
func (d *Deque[T]) Index(i int) *T {
	return Do(&d.Basic, OpIndex, func(c *containers.Deque[T]) *T {
		return c.Index(i)
	})
}

func (d *Deque[T]) IndexNoLock(i int) *T {
	return d.c.Index(i)
}

func (d *Deque[T]) Set(i int, val T) error {
	return Do(&d.Basic, OpSet, func(c *containers.Deque[T]) error {
		return c.Set(i, val)
	})
}

func (d *Deque[T]) SetNoLock(i int, val T) error {
	return d.c.Set(i, val)
}

func (d *Deque[T]) Front() (T, error) {
	return Do2(&d.Basic, OpFront, (*containers.Deque[T]).Front)
}

func (d *Deque[T]) FrontNoLock() (T, error) {
	return d.c.Front()
}

func (d *Deque[T]) Back() (T, error) {
	return Do2(&d.Basic, OpBack, (*containers.Deque[T]).Back)
}

func (d *Deque[T]) BackNoLock() (T, error) {
	return d.c.Back()
}

func (d *Deque[T]) Empty() bool {
	return Do(&d.Basic, OpEmpty, (*containers.Deque[T]).Empty)
}

func (d *Deque[T]) EmptyNoLock() bool {
	return d.c.Empty()
}

func (d *Deque[T]) Size() int {
	return Do(&d.Basic, OpSize, (*containers.Deque[T]).Size)
}

func (d *Deque[T]) SizeNoLock() int {
	return d.c.Size()
}

func (d *Deque[T]) MaxSize() int {
	return Do(&d.Basic, OpMaxSize, (*containers.Deque[T]).MaxSize)
}

func (d *Deque[T]) MaxSizeNoLock() int {
	return d.c.MaxSize()
}

func (d *Deque[T]) Resize(n int) error {
	return Do(&d.Basic, OpResize, func(c *containers.Deque[T]) error {
		return c.Resize(n)
	})
}

func (d *Deque[T]) ResizeNoLock(n int) error {
	return d.c.Resize(n)
}

func (d *Deque[T]) ResizeWith(n int, fill T) error {
	return Do(&d.Basic, OpResize, func(c *containers.Deque[T]) error {
		return c.ResizeWith(n, fill)
	})
}

func (d *Deque[T]) ResizeWithNoLock(n int, fill T) error {
	return d.c.ResizeWith(n, fill)
}

func (d *Deque[T]) ShrinkToFit() {
	Exec(&d.Basic, OpShrinkToFit, (*containers.Deque[T]).ShrinkToFit)
}

func (d *Deque[T]) ShrinkToFitNoLock() {
	d.c.ShrinkToFit()
}

func (d *Deque[T]) Clear() {
	Exec(&d.Basic, OpClear, (*containers.Deque[T]).Clear)
}

func (d *Deque[T]) ClearNoLock() {
	d.c.Clear()
}

func (d *Deque[T]) Insert(pos int, vals ...T) error {
	return Do(&d.Basic, OpInsert, func(c *containers.Deque[T]) error {
		return c.Insert(pos, vals...)
	})
}

func (d *Deque[T]) InsertNoLock(pos int, vals ...T) error {
	return d.c.Insert(pos, vals...)
}

func (d *Deque[T]) Erase(pos int) error {
	return Do(&d.Basic, OpErase, func(c *containers.Deque[T]) error {
		return c.Erase(pos)
	})
}

func (d *Deque[T]) EraseNoLock(pos int) error {
	return d.c.Erase(pos)
}

func (d *Deque[T]) EraseRange(first, last int) error {
	return Do(&d.Basic, OpErase, func(c *containers.Deque[T]) error {
		return c.EraseRange(first, last)
	})
}

func (d *Deque[T]) EraseRangeNoLock(first, last int) error {
	return d.c.EraseRange(first, last)
}

func (d *Deque[T]) PushFront(val T) {
	Exec(&d.Basic, OpPushFront, func(c *containers.Deque[T]) {
		c.PushFront(val)
	})
}

func (d *Deque[T]) PushFrontNoLock(val T) {
	d.c.PushFront(val)
}

func (d *Deque[T]) PopFront() error {
	return Do(&d.Basic, OpPopFront, (*containers.Deque[T]).PopFront)
}

func (d *Deque[T]) PopFrontNoLock() error {
	return d.c.PopFront()
}

func (d *Deque[T]) PushBack(val T) {
	Exec(&d.Basic, OpPushBack, func(c *containers.Deque[T]) {
		c.PushBack(val)
	})
}

func (d *Deque[T]) PushBackNoLock(val T) {
	d.c.PushBack(val)
}

func (d *Deque[T]) PopBack() error {
	return Do(&d.Basic, OpPopBack, (*containers.Deque[T]).PopBack)
}

func (d *Deque[T]) PopBackNoLock() error {
	return d.c.PopBack()
}

// Swap exchanges the contents of two deques holding both locks
func (d *Deque[T]) Swap(other *Deque[T]) {
	ExecPair(&d.Basic, &other.Basic, OpSwap, (*containers.Deque[T]).Swap)
}

// SwapNoLock locks neither d nor other
func (d *Deque[T]) SwapNoLock(other *Deque[T]) {
	d.c.Swap(&other.c)
}

func (d *Deque[T]) Begin() containers.Iterator[T] {
	return Do(&d.Basic, OpBegin, (*containers.Deque[T]).Begin)
}

func (d *Deque[T]) BeginNoLock() containers.Iterator[T] {
	return d.c.Begin()
}

func (d *Deque[T]) End() containers.Iterator[T] {
	return Do(&d.Basic, OpEnd, (*containers.Deque[T]).End)
}

func (d *Deque[T]) EndNoLock() containers.Iterator[T] {
	return d.c.End()
}

func (d *Deque[T]) RBegin() containers.Iterator[T] {
	return Do(&d.Basic, OpRBegin, (*containers.Deque[T]).RBegin)
}

func (d *Deque[T]) RBeginNoLock() containers.Iterator[T] {
	return d.c.RBegin()
}

func (d *Deque[T]) REnd() containers.Iterator[T] {
	return Do(&d.Basic, OpREnd, (*containers.Deque[T]).REnd)
}

func (d *Deque[T]) REndNoLock() containers.Iterator[T] {
	return d.c.REnd()
}

func (d *Deque[T]) CBegin() containers.ConstIterator[T] {
	return Do(&d.Basic, OpCBegin, (*containers.Deque[T]).CBegin)
}

func (d *Deque[T]) CBeginNoLock() containers.ConstIterator[T] {
	return d.c.CBegin()
}

func (d *Deque[T]) CEnd() containers.ConstIterator[T] {
	return Do(&d.Basic, OpCEnd, (*containers.Deque[T]).CEnd)
}

func (d *Deque[T]) CEndNoLock() containers.ConstIterator[T] {
	return d.c.CEnd()
}

func (d *Deque[T]) CRBegin() containers.ConstIterator[T] {
	return Do(&d.Basic, OpCRBegin, (*containers.Deque[T]).CRBegin)
}

func (d *Deque[T]) CRBeginNoLock() containers.ConstIterator[T] {
	return d.c.CRBegin()
}

func (d *Deque[T]) CREnd() containers.ConstIterator[T] {
	return Do(&d.Basic, OpCREnd, (*containers.Deque[T]).CREnd)
}

func (d *Deque[T]) CREndNoLock() containers.ConstIterator[T] {
	return d.c.CREnd()
}

// All ranges over the elements holding the lock shared for the whole loop.
// The loop body must not call locked operations of d.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		Exec(&d.Basic, OpAll, func(c *containers.Deque[T]) {
			for i, val := range c.All() {
				if !yield(i, val) {
					return
				}
			}
		})
	}
}

func (d *Deque[T]) AllNoLock() iter.Seq2[int, T] {
	return d.c.All()
}

// Snapshot copies the elements under the shared lock
func (d *Deque[T]) Snapshot() []T {
	return Do(&d.Basic, OpSnapshot, (*containers.Deque[T]).Snapshot)
}

func (d *Deque[T]) SnapshotNoLock() []T {
	return d.c.Snapshot()
}
