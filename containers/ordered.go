package containers

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

const orderedDegree = 32

// Entry is a key/value pair of Ordered
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Ordered is a map with keys kept in ascending order, backed by a B-tree
type Ordered[K cmp.Ordered, V any] struct {
	t *btree.BTreeG[*Entry[K, V]]
}

func lessEntry[K cmp.Ordered, V any](a, b *Entry[K, V]) bool {
	return cmp.Less(a.Key, b.Key)
}

// OrderedOf returns a map holding entries; later duplicates overwrite earlier ones
func OrderedOf[K cmp.Ordered, V any](entries ...Entry[K, V]) *Ordered[K, V] {
	m := &Ordered[K, V]{}
	for _, e := range entries {
		m.InsertOrAssign(e.Key, e.Value)
	}

	return m
}

func (m *Ordered[K, V]) tree() *btree.BTreeG[*Entry[K, V]] {
	if m.t == nil {
		m.t = btree.NewG[*Entry[K, V]](orderedDegree, lessEntry[K, V])
	}

	return m.t
}

func (m *Ordered[K, V]) get(k K) (*Entry[K, V], bool) {
	if m.t == nil {
		return nil, false
	}

	return m.t.Get(&Entry[K, V]{Key: k})
}

func (m *Ordered[K, V]) Empty() bool {
	return m.Size() == 0
}

func (m *Ordered[K, V]) Size() int {
	if m.t == nil {
		return 0
	}

	return m.t.Len()
}

func (m *Ordered[K, V]) MaxSize() int {
	return maxSize[Entry[K, V]]()
}

// At is the checked lookup
func (m *Ordered[K, V]) At(k K) (V, error) {
	e, ok := m.get(k)
	if !ok {
		var zero V

		return zero, notFound("at", k)
	}

	return e.Value, nil
}

// Index returns the value slot of k, inserting the zero value if k is absent
func (m *Ordered[K, V]) Index(k K) *V {
	if e, ok := m.get(k); ok {
		return &e.Value
	}
	e := &Entry[K, V]{Key: k}
	m.tree().ReplaceOrInsert(e)

	return &e.Value
}

func (m *Ordered[K, V]) Find(k K) (V, bool) {
	e, ok := m.get(k)
	if !ok {
		var zero V

		return zero, false
	}

	return e.Value, true
}

func (m *Ordered[K, V]) Contains(k K) bool {
	_, ok := m.get(k)

	return ok
}

// Count is 0 or 1, keys are unique
func (m *Ordered[K, V]) Count(k K) int {
	if m.Contains(k) {
		return 1
	}

	return 0
}

// LowerBound is the first entry with key not less than k
func (m *Ordered[K, V]) LowerBound(k K) (entry Entry[K, V], ok bool) {
	if m.t == nil {
		return entry, false
	}
	m.t.AscendGreaterOrEqual(&Entry[K, V]{Key: k}, func(e *Entry[K, V]) bool {
		entry, ok = *e, true

		return false
	})

	return entry, ok
}

// UpperBound is the first entry with key greater than k
func (m *Ordered[K, V]) UpperBound(k K) (entry Entry[K, V], ok bool) {
	if m.t == nil {
		return entry, false
	}
	m.t.AscendGreaterOrEqual(&Entry[K, V]{Key: k}, func(e *Entry[K, V]) bool {
		if cmp.Compare(e.Key, k) == 0 {
			return true
		}
		entry, ok = *e, true

		return false
	})

	return entry, ok
}

// Front is the entry with the smallest key
func (m *Ordered[K, V]) Front() (Entry[K, V], error) {
	if m.Empty() {
		return Entry[K, V]{}, empty("front")
	}
	e, _ := m.t.Min()

	return *e, nil
}

// Back is the entry with the greatest key
func (m *Ordered[K, V]) Back() (Entry[K, V], error) {
	if m.Empty() {
		return Entry[K, V]{}, empty("back")
	}
	e, _ := m.t.Max()

	return *e, nil
}

// Insert adds k if absent and reports whether it did, an existing value is kept
func (m *Ordered[K, V]) Insert(k K, v V) bool {
	if m.Contains(k) {
		return false
	}
	m.tree().ReplaceOrInsert(&Entry[K, V]{Key: k, Value: v})

	return true
}

// InsertOrAssign sets k to v and reports whether k was absent
func (m *Ordered[K, V]) InsertOrAssign(k K, v V) bool {
	if e, ok := m.get(k); ok {
		e.Value = v

		return false
	}
	m.tree().ReplaceOrInsert(&Entry[K, V]{Key: k, Value: v})

	return true
}

// TryEmplace calls makeValue and inserts the result only if k is absent
func (m *Ordered[K, V]) TryEmplace(k K, makeValue func() V) bool {
	if m.Contains(k) {
		return false
	}
	m.tree().ReplaceOrInsert(&Entry[K, V]{Key: k, Value: makeValue()})

	return true
}

func (m *Ordered[K, V]) Erase(k K) bool {
	_, ok := m.Extract(k)

	return ok
}

// Extract removes k and returns its entry
func (m *Ordered[K, V]) Extract(k K) (Entry[K, V], bool) {
	if m.t == nil {
		return Entry[K, V]{}, false
	}
	e, ok := m.t.Delete(&Entry[K, V]{Key: k})
	if !ok {
		return Entry[K, V]{}, false
	}

	return *e, true
}

// Merge moves entries of other whose keys are absent here; the rest stay in other
func (m *Ordered[K, V]) Merge(other *Ordered[K, V]) {
	if other == m || other.Empty() {
		return
	}
	var moved []*Entry[K, V]
	other.t.Ascend(func(e *Entry[K, V]) bool {
		if !m.Contains(e.Key) {
			moved = append(moved, e)
		}

		return true
	})
	for _, e := range moved {
		other.t.Delete(e)
		m.tree().ReplaceOrInsert(e)
	}
}

func (m *Ordered[K, V]) Swap(other *Ordered[K, V]) {
	m.t, other.t = other.t, m.t
}

func (m *Ordered[K, V]) Clear() {
	if m.t != nil {
		m.t.Clear(false)
	}
}

// All yields entries in ascending key order
func (m *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.t == nil {
			return
		}
		m.t.Ascend(func(e *Entry[K, V]) bool {
			return yield(e.Key, e.Value)
		})
	}
}

func (m *Ordered[K, V]) Snapshot() []Entry[K, V] {
	s := make([]Entry[K, V], 0, m.Size())
	for k, v := range m.All() {
		s = append(s, Entry[K, V]{Key: k, Value: v})
	}

	return s
}
