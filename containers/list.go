package containers

import (
	"iter"
	"slices"
)

// Element is a node of List
type Element[T any] struct {
	next, prev *Element[T]
	list       *List[T]

	Value T
}

// Next returns the next element or nil
func (e *Element[T]) Next() *Element[T] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}

	return nil
}

// Prev returns the previous element or nil
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}

	return nil
}

// List is a doubly linked list. Iteration positions are *Element values,
// the past-the-end position is nil. A List must not be copied after first use.
type List[T any] struct {
	root Element[T]
	n    int
}

// ListOf returns a list holding vals in order
func ListOf[T any](vals ...T) *List[T] {
	l := &List[T]{}
	l.AssignSlice(vals)

	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

func (l *List[T]) insertAfter(e, at *Element[T]) *Element[T] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.n++

	return e
}

func (l *List[T]) unlink(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next, e.prev, e.list = nil, nil, nil
	l.n--
}

func (l *List[T]) first() *Element[T] {
	if l.n == 0 {
		return nil
	}

	return l.root.next
}

func (l *List[T]) last() *Element[T] {
	if l.n == 0 {
		return nil
	}

	return l.root.prev
}

func (l *List[T]) Assign(n int, fill T) {
	l.Clear()
	for i := 0; i < n; i++ {
		l.PushBack(fill)
	}
}

func (l *List[T]) AssignSlice(vals []T) {
	l.Clear()
	for _, v := range vals {
		l.PushBack(v)
	}
}

func (l *List[T]) Front() (T, error) {
	if l.n == 0 {
		var zero T

		return zero, empty("front")
	}

	return l.root.next.Value, nil
}

func (l *List[T]) Back() (T, error) {
	if l.n == 0 {
		var zero T

		return zero, empty("back")
	}

	return l.root.prev.Value, nil
}

func (l *List[T]) Empty() bool {
	return l.n == 0
}

func (l *List[T]) Size() int {
	return l.n
}

func (l *List[T]) MaxSize() int {
	return maxSize[Element[T]]()
}

func (l *List[T]) PushFront(v T) *Element[T] {
	l.lazyInit()

	return l.insertAfter(&Element[T]{Value: v}, &l.root)
}

func (l *List[T]) PushBack(v T) *Element[T] {
	l.lazyInit()

	return l.insertAfter(&Element[T]{Value: v}, l.root.prev)
}

func (l *List[T]) PopFront() error {
	if l.n == 0 {
		return empty("pop_front")
	}
	l.unlink(l.root.next)

	return nil
}

func (l *List[T]) PopBack() error {
	if l.n == 0 {
		return empty("pop_back")
	}
	l.unlink(l.root.prev)

	return nil
}

// Insert puts v before at; nil at appends
func (l *List[T]) Insert(at *Element[T], v T) (*Element[T], error) {
	l.lazyInit()
	if at == nil {
		return l.insertAfter(&Element[T]{Value: v}, l.root.prev), nil
	}
	if at.list != l {
		return nil, foreign("insert")
	}

	return l.insertAfter(&Element[T]{Value: v}, at.prev), nil
}

// Erase removes e and returns the element after it
func (l *List[T]) Erase(e *Element[T]) (*Element[T], error) {
	if e == nil || e.list != l {
		return nil, foreign("erase")
	}
	next := e.Next()
	l.unlink(e)

	return next, nil
}

func (l *List[T]) Clear() {
	for e := l.first(); e != nil; {
		next := e.Next()
		e.next, e.prev, e.list = nil, nil, nil
		e = next
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.n = 0
}

func (l *List[T]) Resize(n int) error {
	var zero T

	return l.ResizeWith(n, zero)
}

func (l *List[T]) ResizeWith(n int, fill T) error {
	if n < 0 || n > l.MaxSize() {
		return outOfRange("resize", n, l.n)
	}
	for l.n > n {
		_ = l.PopBack()
	}
	for l.n < n {
		l.PushBack(fill)
	}

	return nil
}

// Swap exchanges the contents; elements keep their identity and move with it
func (l *List[T]) Swap(other *List[T]) {
	a, b := l.detach(), other.detach()
	other.attach(a)
	l.attach(b)
}

func (l *List[T]) detach() []*Element[T] {
	es := make([]*Element[T], 0, l.n)
	for e := l.first(); e != nil; e = e.Next() {
		es = append(es, e)
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.n = 0

	return es
}

func (l *List[T]) attach(es []*Element[T]) {
	l.lazyInit()
	for _, e := range es {
		l.insertAfter(e, l.root.prev)
	}
}

// Splice moves every element of other before at; nil at appends
func (l *List[T]) Splice(at *Element[T], other *List[T]) error {
	if at != nil && at.list != l {
		return foreign("splice")
	}
	if other == l {
		return nil
	}
	l.lazyInit()
	prev := l.root.prev
	if at != nil {
		prev = at.prev
	}
	for _, e := range other.detach() {
		prev = l.insertAfter(e, prev)
	}

	return nil
}

// Merge moves the elements of other into l keeping the order by less.
// Both lists must be sorted by less; equal elements of l go first.
func (l *List[T]) Merge(other *List[T], less func(a, b T) bool) {
	if other == l {
		return
	}
	l.lazyInit()
	e := l.first()
	for _, o := range other.detach() {
		for e != nil && !less(o.Value, e.Value) {
			e = e.Next()
		}
		if e == nil {
			l.insertAfter(o, l.root.prev)
		} else {
			l.insertAfter(o, e.prev)
		}
	}
}

// RemoveIf erases every element matching pred and reports how many
func (l *List[T]) RemoveIf(pred func(v T) bool) (removed int) {
	for e := l.first(); e != nil; {
		next := e.Next()
		if pred(e.Value) {
			l.unlink(e)
			removed++
		}
		e = next
	}

	return removed
}

// Unique erases consecutive elements equal to their predecessor
func (l *List[T]) Unique(eq func(a, b T) bool) (removed int) {
	e := l.first()
	for e != nil {
		next := e.Next()
		for next != nil && eq(e.Value, next.Value) {
			after := next.Next()
			l.unlink(next)
			removed++
			next = after
		}
		e = next
	}

	return removed
}

func (l *List[T]) Reverse() {
	es := l.detach()
	slices.Reverse(es)
	l.attach(es)
}

// Sort is stable
func (l *List[T]) Sort(less func(a, b T) bool) {
	es := l.detach()
	slices.SortStableFunc(es, func(a, b *Element[T]) int {
		switch {
		case less(a.Value, b.Value):
			return -1
		case less(b.Value, a.Value):
			return 1
		default:
			return 0
		}
	})
	l.attach(es)
}

func (l *List[T]) Begin() *Element[T] {
	return l.first()
}

// End is the past-the-end position, always nil
func (l *List[T]) End() *Element[T] {
	return nil
}

func (l *List[T]) RBegin() *Element[T] {
	return l.last()
}

func (l *List[T]) REnd() *Element[T] {
	return nil
}

func (l *List[T]) CBegin() ConstElement[T] {
	return ConstElement[T]{e: l.first()}
}

func (l *List[T]) CEnd() ConstElement[T] {
	return ConstElement[T]{}
}

func (l *List[T]) CRBegin() ConstElement[T] {
	return ConstElement[T]{e: l.last()}
}

func (l *List[T]) CREnd() ConstElement[T] {
	return ConstElement[T]{}
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for e := l.first(); e != nil; e = e.Next() {
			if !yield(i, e.Value) {
				return
			}
			i++
		}
	}
}

func (l *List[T]) Snapshot() []T {
	s := make([]T, 0, l.n)
	for e := l.first(); e != nil; e = e.Next() {
		s = append(s, e.Value)
	}

	return s
}

// ConstElement is a read-only list position, the zero value is past-the-end
type ConstElement[T any] struct {
	e *Element[T]
}

func (c ConstElement[T]) Valid() bool {
	return c.e != nil
}

func (c ConstElement[T]) Value() T {
	return c.e.Value
}

func (c ConstElement[T]) Next() ConstElement[T] {
	return ConstElement[T]{e: c.e.Next()}
}

func (c ConstElement[T]) Prev() ConstElement[T] {
	return ConstElement[T]{e: c.e.Prev()}
}

func (c ConstElement[T]) Equal(other ConstElement[T]) bool {
	return c.e == other.e
}
