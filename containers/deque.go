package containers

import (
	"iter"
	"slices"
)

const minDequeCapacity = 8

// Deque is a double-ended queue on top of a growable ring buffer
type Deque[T any] struct {
	buf  []T
	head int
	n    int
}

var _ sequence[int] = (*Deque[int])(nil)

// NewDeque returns a deque of n copies of fill
func NewDeque[T any](n int, fill T) *Deque[T] {
	d := &Deque[T]{}
	d.Assign(n, fill)

	return d
}

// DequeOf returns a deque holding a copy of vals
func DequeOf[T any](vals ...T) *Deque[T] {
	d := &Deque[T]{}
	d.AssignSlice(vals)

	return d
}

func (d *Deque[T]) ref(i int) *T {
	return &d.buf[(d.head+i)%len(d.buf)]
}

// reset lays s out linearly; s is owned by the deque afterwards
func (d *Deque[T]) reset(s []T) {
	d.n = len(s)
	d.head = 0
	d.buf = s[:cap(s)]
}

func (d *Deque[T]) grow() {
	if d.n < len(d.buf) {
		return
	}
	s := make([]T, d.n, max(minDequeCapacity, 2*len(d.buf)))
	d.copyTo(s)
	d.reset(s)
}

func (d *Deque[T]) copyTo(dst []T) {
	if d.n == 0 {
		return
	}
	if tail := d.head + d.n; tail <= len(d.buf) {
		copy(dst, d.buf[d.head:tail])
	} else {
		k := copy(dst, d.buf[d.head:])
		copy(dst[k:], d.buf[:d.n-k])
	}
}

func (d *Deque[T]) Assign(n int, fill T) {
	n = max(n, 0)
	s := make([]T, n)
	for i := range s {
		s[i] = fill
	}
	d.reset(s)
}

func (d *Deque[T]) AssignSlice(vals []T) {
	d.reset(slices.Clone(vals))
}

func (d *Deque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.n {
		var zero T

		return zero, outOfRange("at", i, d.n)
	}

	return *d.ref(i), nil
}

func (d *Deque[T]) Get(i int) T {
	checkIndex(i, d.n)

	return *d.ref(i)
}

func (d *Deque[T]) Index(i int) *T {
	checkIndex(i, d.n)

	return d.ref(i)
}

func (d *Deque[T]) Set(i int, val T) error {
	if i < 0 || i >= d.n {
		return outOfRange("set", i, d.n)
	}
	*d.ref(i) = val

	return nil
}

func (d *Deque[T]) Front() (T, error) {
	if d.n == 0 {
		var zero T

		return zero, empty("front")
	}

	return *d.ref(0), nil
}

func (d *Deque[T]) Back() (T, error) {
	if d.n == 0 {
		var zero T

		return zero, empty("back")
	}

	return *d.ref(d.n - 1), nil
}

func (d *Deque[T]) Empty() bool {
	return d.n == 0
}

func (d *Deque[T]) Size() int {
	return d.n
}

func (d *Deque[T]) MaxSize() int {
	return maxSize[T]()
}

func (d *Deque[T]) Resize(n int) error {
	var zero T

	return d.ResizeWith(n, zero)
}

func (d *Deque[T]) ResizeWith(n int, fill T) error {
	if n < 0 || n > d.MaxSize() {
		return outOfRange("resize", n, d.n)
	}
	for d.n > n {
		_ = d.PopBack()
	}
	for d.n < n {
		d.PushBack(fill)
	}

	return nil
}

func (d *Deque[T]) ShrinkToFit() {
	if d.n == len(d.buf) {
		return
	}
	if d.n == 0 {
		d.reset(nil)

		return
	}
	s := make([]T, d.n)
	d.copyTo(s)
	d.reset(s)
}

// Clear removes all elements and keeps the buffer
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head, d.n = 0, 0
}

func (d *Deque[T]) Insert(pos int, vals ...T) error {
	if pos < 0 || pos > d.n {
		return outOfRange("insert", pos, d.n)
	}
	switch {
	case len(vals) == 0:
	case pos == d.n:
		for _, v := range vals {
			d.PushBack(v)
		}
	case pos == 0:
		for i := len(vals) - 1; i >= 0; i-- {
			d.PushFront(vals[i])
		}
	default:
		d.reset(slices.Insert(d.Snapshot(), pos, vals...))
	}

	return nil
}

func (d *Deque[T]) Erase(pos int) error {
	if pos < 0 || pos >= d.n {
		return outOfRange("erase", pos, d.n)
	}

	return d.EraseRange(pos, pos+1)
}

func (d *Deque[T]) EraseRange(first, last int) error {
	if first < 0 || first > last || last > d.n {
		return outOfRange("erase", last, d.n)
	}
	switch {
	case first == last:
	case first == 0:
		for i := first; i < last; i++ {
			_ = d.PopFront()
		}
	case last == d.n:
		for i := first; i < last; i++ {
			_ = d.PopBack()
		}
	default:
		s := d.Snapshot()
		clear(d.buf)
		d.reset(slices.Delete(s, first, last))
	}

	return nil
}

func (d *Deque[T]) PushBack(val T) {
	d.grow()
	d.n++
	*d.ref(d.n - 1) = val
}

func (d *Deque[T]) PushFront(val T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.n++
	d.buf[d.head] = val
}

func (d *Deque[T]) PopBack() error {
	if d.n == 0 {
		return empty("pop_back")
	}
	var zero T
	*d.ref(d.n - 1) = zero
	d.n--

	return nil
}

func (d *Deque[T]) PopFront() error {
	if d.n == 0 {
		return empty("pop_front")
	}
	var zero T
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.n--

	return nil
}

func (d *Deque[T]) Swap(other *Deque[T]) {
	*d, *other = *other, *d
}

func (d *Deque[T]) Begin() Iterator[T] {
	return begin[T](d)
}

func (d *Deque[T]) End() Iterator[T] {
	return end[T](d)
}

func (d *Deque[T]) RBegin() Iterator[T] {
	return rbegin[T](d)
}

func (d *Deque[T]) REnd() Iterator[T] {
	return rend[T](d)
}

func (d *Deque[T]) CBegin() ConstIterator[T] {
	return d.Begin().Const()
}

func (d *Deque[T]) CEnd() ConstIterator[T] {
	return d.End().Const()
}

func (d *Deque[T]) CRBegin() ConstIterator[T] {
	return d.RBegin().Const()
}

func (d *Deque[T]) CREnd() ConstIterator[T] {
	return d.REnd().Const()
}

func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.n; i++ {
			if !yield(i, *d.ref(i)) {
				return
			}
		}
	}
}

func (d *Deque[T]) Snapshot() []T {
	s := make([]T, d.n)
	d.copyTo(s)

	return s
}
