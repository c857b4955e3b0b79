package locked

import (
	"cmp"
	"iter"

	"github.com/ydb-platform/ydb-go-locked/containers"
)

// Ordered is a containers.Ordered guarded by a reader/writer lock
type Ordered[K cmp.Ordered, V any] struct {
	Basic[containers.Ordered[K, V]]
}

func NewOrdered[K cmp.Ordered, V any](opts ...Option) *Ordered[K, V] {
	m := &Ordered[K, V]{}
	m.init(nil, opts)

	return m
}

// OrderedOf returns a map holding entries; later duplicates overwrite earlier ones
func OrderedOf[K cmp.Ordered, V any](entries []containers.Entry[K, V], opts ...Option) *Ordered[K, V] {
	m := &Ordered[K, V]{}
	m.init(func(c *containers.Ordered[K, V]) {
		for _, e := range entries {
			c.InsertOrAssign(e.Key, e.Value)
		}
	}, opts)

	return m
}

func (m *Ordered[K, V]) Empty() bool {
	return Do(&m.Basic, OpEmpty, (*containers.Ordered[K, V]).Empty)
}

func (m *Ordered[K, V]) EmptyNoLock() bool {
	return m.c.Empty()
}

func (m *Ordered[K, V]) Size() int {
	return Do(&m.Basic, OpSize, (*containers.Ordered[K, V]).Size)
}

func (m *Ordered[K, V]) SizeNoLock() int {
	return m.c.Size()
}

func (m *Ordered[K, V]) MaxSize() int {
	return Do(&m.Basic, OpMaxSize, (*containers.Ordered[K, V]).MaxSize)
}

func (m *Ordered[K, V]) MaxSizeNoLock() int {
	return m.c.MaxSize()
}

func (m *Ordered[K, V]) At(k K) (V, error) {
	return Do2(&m.Basic, OpAt, func(c *containers.Ordered[K, V]) (V, error) {
		return c.At(k)
	})
}

func (m *Ordered[K, V]) AtNoLock(k K) (V, error) {
	return m.c.At(k)
}

// Index returns the value slot of k inserting the zero value if k is absent.
// Writing through it is safe only while no other goroutine uses the map.
func (m *Ordered[K, V]) Index(k K) *V {
	return Do(&m.Basic, OpIndex, func(c *containers.Ordered[K, V]) *V {
		return c.Index(k)
	})
}

func (m *Ordered[K, V]) IndexNoLock(k K) *V {
	return m.c.Index(k)
}

func (m *Ordered[K, V]) Find(k K) (V, bool) {
	return Do2(&m.Basic, OpFind, func(c *containers.Ordered[K, V]) (V, bool) {
		return c.Find(k)
	})
}

func (m *Ordered[K, V]) FindNoLock(k K) (V, bool) {
	return m.c.Find(k)
}

func (m *Ordered[K, V]) Contains(k K) bool {
	return Do(&m.Basic, OpContains, func(c *containers.Ordered[K, V]) bool {
		return c.Contains(k)
	})
}

func (m *Ordered[K, V]) ContainsNoLock(k K) bool {
	return m.c.Contains(k)
}

func (m *Ordered[K, V]) Count(k K) int {
	return Do(&m.Basic, OpCount, func(c *containers.Ordered[K, V]) int {
		return c.Count(k)
	})
}

func (m *Ordered[K, V]) CountNoLock(k K) int {
	return m.c.Count(k)
}

func (m *Ordered[K, V]) LowerBound(k K) (containers.Entry[K, V], bool) {
	return Do2(&m.Basic, OpLowerBound, func(c *containers.Ordered[K, V]) (containers.Entry[K, V], bool) {
		return c.LowerBound(k)
	})
}

func (m *Ordered[K, V]) LowerBoundNoLock(k K) (containers.Entry[K, V], bool) {
	return m.c.LowerBound(k)
}

func (m *Ordered[K, V]) UpperBound(k K) (containers.Entry[K, V], bool) {
	return Do2(&m.Basic, OpUpperBound, func(c *containers.Ordered[K, V]) (containers.Entry[K, V], bool) {
		return c.UpperBound(k)
	})
}

func (m *Ordered[K, V]) UpperBoundNoLock(k K) (containers.Entry[K, V], bool) {
	return m.c.UpperBound(k)
}

func (m *Ordered[K, V]) Front() (containers.Entry[K, V], error) {
	return Do2(&m.Basic, OpFront, (*containers.Ordered[K, V]).Front)
}

func (m *Ordered[K, V]) FrontNoLock() (containers.Entry[K, V], error) {
	return m.c.Front()
}

func (m *Ordered[K, V]) Back() (containers.Entry[K, V], error) {
	return Do2(&m.Basic, OpBack, (*containers.Ordered[K, V]).Back)
}

func (m *Ordered[K, V]) BackNoLock() (containers.Entry[K, V], error) {
	return m.c.Back()
}

func (m *Ordered[K, V]) Insert(k K, v V) bool {
	return Do(&m.Basic, OpInsert, func(c *containers.Ordered[K, V]) bool {
		return c.Insert(k, v)
	})
}

func (m *Ordered[K, V]) InsertNoLock(k K, v V) bool {
	return m.c.Insert(k, v)
}

func (m *Ordered[K, V]) InsertOrAssign(k K, v V) bool {
	return Do(&m.Basic, OpInsertOrAssign, func(c *containers.Ordered[K, V]) bool {
		return c.InsertOrAssign(k, v)
	})
}

func (m *Ordered[K, V]) InsertOrAssignNoLock(k K, v V) bool {
	return m.c.InsertOrAssign(k, v)
}

// TryEmplace calls makeValue under the lock only if k is absent
func (m *Ordered[K, V]) TryEmplace(k K, makeValue func() V) bool {
	return Do(&m.Basic, OpTryEmplace, func(c *containers.Ordered[K, V]) bool {
		return c.TryEmplace(k, makeValue)
	})
}

func (m *Ordered[K, V]) TryEmplaceNoLock(k K, makeValue func() V) bool {
	return m.c.TryEmplace(k, makeValue)
}

func (m *Ordered[K, V]) Erase(k K) bool {
	return Do(&m.Basic, OpErase, func(c *containers.Ordered[K, V]) bool {
		return c.Erase(k)
	})
}

func (m *Ordered[K, V]) EraseNoLock(k K) bool {
	return m.c.Erase(k)
}

func (m *Ordered[K, V]) Extract(k K) (containers.Entry[K, V], bool) {
	return Do2(&m.Basic, OpExtract, func(c *containers.Ordered[K, V]) (containers.Entry[K, V], bool) {
		return c.Extract(k)
	})
}

func (m *Ordered[K, V]) ExtractNoLock(k K) (containers.Entry[K, V], bool) {
	return m.c.Extract(k)
}

// Merge moves the entries of other whose keys are absent in m, holding both locks
func (m *Ordered[K, V]) Merge(other *Ordered[K, V]) {
	ExecPair(&m.Basic, &other.Basic, OpMerge, (*containers.Ordered[K, V]).Merge)
}

func (m *Ordered[K, V]) MergeNoLock(other *Ordered[K, V]) {
	m.c.Merge(&other.c)
}

func (m *Ordered[K, V]) Swap(other *Ordered[K, V]) {
	ExecPair(&m.Basic, &other.Basic, OpSwap, (*containers.Ordered[K, V]).Swap)
}

func (m *Ordered[K, V]) SwapNoLock(other *Ordered[K, V]) {
	m.c.Swap(&other.c)
}

func (m *Ordered[K, V]) Clear() {
	Exec(&m.Basic, OpClear, (*containers.Ordered[K, V]).Clear)
}

func (m *Ordered[K, V]) ClearNoLock() {
	m.c.Clear()
}

// All ranges over the entries in key order holding the lock shared for the
// whole loop. The loop body must not call locked operations of m.
func (m *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		Exec(&m.Basic, OpAll, func(c *containers.Ordered[K, V]) {
			for k, v := range c.All() {
				if !yield(k, v) {
					return
				}
			}
		})
	}
}

func (m *Ordered[K, V]) AllNoLock() iter.Seq2[K, V] {
	return m.c.All()
}

func (m *Ordered[K, V]) Snapshot() []containers.Entry[K, V] {
	return Do(&m.Basic, OpSnapshot, (*containers.Ordered[K, V]).Snapshot)
}

func (m *Ordered[K, V]) SnapshotNoLock() []containers.Entry[K, V] {
	return m.c.Snapshot()
}
