package locked

import (
	"iter"

	"github.com/ydb-platform/ydb-go-locked/containers"
)

// List is a containers.List guarded by a reader/writer lock.
//
// Elements returned by PushBack, Begin and the other positional operations
// may be dereferenced and passed back to Insert or Erase only while the
// caller excludes concurrent mutations, which in practice means inside
// WriteLock with the NoLock variants.
type List[T any] struct {
	Basic[containers.List[T]]
}

func NewList[T any](opts ...Option) *List[T] {
	l := &List[T]{}
	l.init(nil, opts)

	return l
}

// ListN returns a list of n copies of fill
func ListN[T any](n int, fill T, opts ...Option) *List[T] {
	l := &List[T]{}
	l.init(func(c *containers.List[T]) {
		c.Assign(n, fill)
	}, opts)

	return l
}

// ListOf returns a list holding vals in order
func ListOf[T any](vals []T, opts ...Option) *List[T] {
	l := &List[T]{}
	l.init(func(c *containers.List[T]) {
		c.AssignSlice(vals)
	}, opts)

	return l
}

func (l *List[T]) Assign(n int, fill T) {
	Exec(&l.Basic, OpAssign, func(c *containers.List[T]) {
		c.Assign(n, fill)
	})
}

func (l *List[T]) AssignNoLock(n int, fill T) {
	l.c.Assign(n, fill)
}

func (l *List[T]) AssignSlice(vals []T) {
	Exec(&l.Basic, OpAssign, func(c *containers.List[T]) {
		c.AssignSlice(vals)
	})
}

func (l *List[T]) AssignSliceNoLock(vals []T) {
	l.c.AssignSlice(vals)
}

func (l *List[T]) Front() (T, error) {
	return Do2(&l.Basic, OpFront, (*containers.List[T]).Front)
}

func (l *List[T]) FrontNoLock() (T, error) {
	return l.c.Front()
}

func (l *List[T]) Back() (T, error) {
	return Do2(&l.Basic, OpBack, (*containers.List[T]).Back)
}

func (l *List[T]) BackNoLock() (T, error) {
	return l.c.Back()
}

func (l *List[T]) Empty() bool {
	return Do(&l.Basic, OpEmpty, (*containers.List[T]).Empty)
}

func (l *List[T]) EmptyNoLock() bool {
	return l.c.Empty()
}

func (l *List[T]) Size() int {
	return Do(&l.Basic, OpSize, (*containers.List[T]).Size)
}

func (l *List[T]) SizeNoLock() int {
	return l.c.Size()
}

func (l *List[T]) MaxSize() int {
	return Do(&l.Basic, OpMaxSize, (*containers.List[T]).MaxSize)
}

func (l *List[T]) MaxSizeNoLock() int {
	return l.c.MaxSize()
}

func (l *List[T]) PushFront(v T) *containers.Element[T] {
	return Do(&l.Basic, OpPushFront, func(c *containers.List[T]) *containers.Element[T] {
		return c.PushFront(v)
	})
}

func (l *List[T]) PushFrontNoLock(v T) *containers.Element[T] {
	return l.c.PushFront(v)
}

func (l *List[T]) PushBack(v T) *containers.Element[T] {
	return Do(&l.Basic, OpPushBack, func(c *containers.List[T]) *containers.Element[T] {
		return c.PushBack(v)
	})
}

func (l *List[T]) PushBackNoLock(v T) *containers.Element[T] {
	return l.c.PushBack(v)
}

func (l *List[T]) PopFront() error {
	return Do(&l.Basic, OpPopFront, (*containers.List[T]).PopFront)
}

func (l *List[T]) PopFrontNoLock() error {
	return l.c.PopFront()
}

func (l *List[T]) PopBack() error {
	return Do(&l.Basic, OpPopBack, (*containers.List[T]).PopBack)
}

func (l *List[T]) PopBackNoLock() error {
	return l.c.PopBack()
}

// Insert puts v before at, nil at appends
func (l *List[T]) Insert(at *containers.Element[T], v T) (*containers.Element[T], error) {
	return Do2(&l.Basic, OpInsert, func(c *containers.List[T]) (*containers.Element[T], error) {
		return c.Insert(at, v)
	})
}

func (l *List[T]) InsertNoLock(at *containers.Element[T], v T) (*containers.Element[T], error) {
	return l.c.Insert(at, v)
}

func (l *List[T]) Erase(e *containers.Element[T]) (*containers.Element[T], error) {
	return Do2(&l.Basic, OpErase, func(c *containers.List[T]) (*containers.Element[T], error) {
		return c.Erase(e)
	})
}

func (l *List[T]) EraseNoLock(e *containers.Element[T]) (*containers.Element[T], error) {
	return l.c.Erase(e)
}

func (l *List[T]) Clear() {
	Exec(&l.Basic, OpClear, (*containers.List[T]).Clear)
}

func (l *List[T]) ClearNoLock() {
	l.c.Clear()
}

func (l *List[T]) Resize(n int) error {
	return Do(&l.Basic, OpResize, func(c *containers.List[T]) error {
		return c.Resize(n)
	})
}

func (l *List[T]) ResizeNoLock(n int) error {
	return l.c.Resize(n)
}

func (l *List[T]) ResizeWith(n int, fill T) error {
	return Do(&l.Basic, OpResize, func(c *containers.List[T]) error {
		return c.ResizeWith(n, fill)
	})
}

func (l *List[T]) ResizeWithNoLock(n int, fill T) error {
	return l.c.ResizeWith(n, fill)
}

// Swap exchanges the contents of two lists holding both locks
func (l *List[T]) Swap(other *List[T]) {
	ExecPair(&l.Basic, &other.Basic, OpSwap, (*containers.List[T]).Swap)
}

func (l *List[T]) SwapNoLock(other *List[T]) {
	l.c.Swap(&other.c)
}

// Splice moves every element of other before at holding both locks
func (l *List[T]) Splice(at *containers.Element[T], other *List[T]) (err error) {
	ExecPair(&l.Basic, &other.Basic, OpSplice, func(c, o *containers.List[T]) {
		err = c.Splice(at, o)
	})

	return err
}

func (l *List[T]) SpliceNoLock(at *containers.Element[T], other *List[T]) error {
	return l.c.Splice(at, &other.c)
}

// Merge moves the elements of other into l keeping both sorted by less
func (l *List[T]) Merge(other *List[T], less func(a, b T) bool) {
	ExecPair(&l.Basic, &other.Basic, OpMerge, func(c, o *containers.List[T]) {
		c.Merge(o, less)
	})
}

func (l *List[T]) MergeNoLock(other *List[T], less func(a, b T) bool) {
	l.c.Merge(&other.c, less)
}

// RemoveIf erases every element matching pred; pred runs under the lock
func (l *List[T]) RemoveIf(pred func(v T) bool) int {
	return Do(&l.Basic, OpRemoveIf, func(c *containers.List[T]) int {
		return c.RemoveIf(pred)
	})
}

func (l *List[T]) RemoveIfNoLock(pred func(v T) bool) int {
	return l.c.RemoveIf(pred)
}

func (l *List[T]) Unique(eq func(a, b T) bool) int {
	return Do(&l.Basic, OpUnique, func(c *containers.List[T]) int {
		return c.Unique(eq)
	})
}

func (l *List[T]) UniqueNoLock(eq func(a, b T) bool) int {
	return l.c.Unique(eq)
}

func (l *List[T]) Reverse() {
	Exec(&l.Basic, OpReverse, (*containers.List[T]).Reverse)
}

func (l *List[T]) ReverseNoLock() {
	l.c.Reverse()
}

func (l *List[T]) Sort(less func(a, b T) bool) {
	Exec(&l.Basic, OpSort, func(c *containers.List[T]) {
		c.Sort(less)
	})
}

func (l *List[T]) SortNoLock(less func(a, b T) bool) {
	l.c.Sort(less)
}

func (l *List[T]) Begin() *containers.Element[T] {
	return Do(&l.Basic, OpBegin, (*containers.List[T]).Begin)
}

func (l *List[T]) BeginNoLock() *containers.Element[T] {
	return l.c.Begin()
}

func (l *List[T]) End() *containers.Element[T] {
	return Do(&l.Basic, OpEnd, (*containers.List[T]).End)
}

func (l *List[T]) EndNoLock() *containers.Element[T] {
	return l.c.End()
}

func (l *List[T]) RBegin() *containers.Element[T] {
	return Do(&l.Basic, OpRBegin, (*containers.List[T]).RBegin)
}

func (l *List[T]) RBeginNoLock() *containers.Element[T] {
	return l.c.RBegin()
}

func (l *List[T]) REnd() *containers.Element[T] {
	return Do(&l.Basic, OpREnd, (*containers.List[T]).REnd)
}

func (l *List[T]) REndNoLock() *containers.Element[T] {
	return l.c.REnd()
}

func (l *List[T]) CBegin() containers.ConstElement[T] {
	return Do(&l.Basic, OpCBegin, (*containers.List[T]).CBegin)
}

func (l *List[T]) CBeginNoLock() containers.ConstElement[T] {
	return l.c.CBegin()
}

func (l *List[T]) CEnd() containers.ConstElement[T] {
	return Do(&l.Basic, OpCEnd, (*containers.List[T]).CEnd)
}

func (l *List[T]) CEndNoLock() containers.ConstElement[T] {
	return l.c.CEnd()
}

func (l *List[T]) CRBegin() containers.ConstElement[T] {
	return Do(&l.Basic, OpCRBegin, (*containers.List[T]).CRBegin)
}

func (l *List[T]) CRBeginNoLock() containers.ConstElement[T] {
	return l.c.CRBegin()
}

func (l *List[T]) CREnd() containers.ConstElement[T] {
	return Do(&l.Basic, OpCREnd, (*containers.List[T]).CREnd)
}

func (l *List[T]) CREndNoLock() containers.ConstElement[T] {
	return l.c.CREnd()
}

// All ranges over the elements holding the lock shared for the whole loop.
// The loop body must not call locked operations of l.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		Exec(&l.Basic, OpAll, func(c *containers.List[T]) {
			for i, v := range c.All() {
				if !yield(i, v) {
					return
				}
			}
		})
	}
}

func (l *List[T]) AllNoLock() iter.Seq2[int, T] {
	return l.c.All()
}

func (l *List[T]) Snapshot() []T {
	return Do(&l.Basic, OpSnapshot, (*containers.List[T]).Snapshot)
}

func (l *List[T]) SnapshotNoLock() []T {
	return l.c.Snapshot()
}
