package containers

import (
	"iter"
	"math"
	"slices"
	"unsafe"
)

// Vector is a dynamic array
type Vector[T any] struct {
	s []T
}

var _ sequence[int] = (*Vector[int])(nil)

// NewVector returns a vector of n copies of fill
func NewVector[T any](n int, fill T) *Vector[T] {
	v := &Vector[T]{}
	v.Assign(n, fill)

	return v
}

// VectorOf returns a vector holding a copy of vals
func VectorOf[T any](vals ...T) *Vector[T] {
	v := &Vector[T]{}
	v.AssignSlice(vals)

	return v
}

func maxSize[T any]() int {
	var zero T
	if size := unsafe.Sizeof(zero); size > 0 {
		return math.MaxInt / int(size)
	}

	return math.MaxInt
}

func (v *Vector[T]) ref(i int) *T {
	return &v.s[i]
}

// Assign replaces the content with n copies of fill
func (v *Vector[T]) Assign(n int, fill T) {
	n = max(n, 0)
	clear(v.s)
	v.s = slices.Grow(v.s[:0], n)[:n]
	for i := range v.s {
		v.s[i] = fill
	}
}

// AssignSlice replaces the content with a copy of vals
func (v *Vector[T]) AssignSlice(vals []T) {
	clear(v.s)
	v.s = append(v.s[:0], vals...)
}

func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.s) {
		var zero T

		return zero, outOfRange("at", i, len(v.s))
	}

	return v.s[i], nil
}

// Get is the unchecked read of element i
func (v *Vector[T]) Get(i int) T {
	checkIndex(i, len(v.s))

	return v.s[i]
}

// Index is the unchecked mutable access to element i
func (v *Vector[T]) Index(i int) *T {
	checkIndex(i, len(v.s))

	return &v.s[i]
}

func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.s) {
		return outOfRange("set", i, len(v.s))
	}
	v.s[i] = val

	return nil
}

// Data is the underlying storage, len(Data()) == Size()
func (v *Vector[T]) Data() []T {
	return v.s
}

func (v *Vector[T]) Front() (T, error) {
	if len(v.s) == 0 {
		var zero T

		return zero, empty("front")
	}

	return v.s[0], nil
}

func (v *Vector[T]) Back() (T, error) {
	if len(v.s) == 0 {
		var zero T

		return zero, empty("back")
	}

	return v.s[len(v.s)-1], nil
}

func (v *Vector[T]) Empty() bool {
	return len(v.s) == 0
}

func (v *Vector[T]) Size() int {
	return len(v.s)
}

func (v *Vector[T]) MaxSize() int {
	return maxSize[T]()
}

func (v *Vector[T]) Capacity() int {
	return cap(v.s)
}

// Reserve makes capacity at least n, smaller n is a no-op
func (v *Vector[T]) Reserve(n int) error {
	if n > v.MaxSize() {
		return outOfRange("reserve", n, v.MaxSize())
	}
	if n > cap(v.s) {
		v.s = slices.Grow(v.s, n-len(v.s))
	}

	return nil
}

// Resize changes the size to n, appending zero values if it grows
func (v *Vector[T]) Resize(n int) error {
	var zero T

	return v.ResizeWith(n, zero)
}

// ResizeWith changes the size to n, appending copies of fill if it grows
func (v *Vector[T]) ResizeWith(n int, fill T) error {
	if n < 0 || n > v.MaxSize() {
		return outOfRange("resize", n, len(v.s))
	}
	if n <= len(v.s) {
		clear(v.s[n:])
		v.s = v.s[:n]

		return nil
	}
	old := len(v.s)
	v.s = slices.Grow(v.s, n-old)[:n]
	for i := old; i < n; i++ {
		v.s[i] = fill
	}

	return nil
}

func (v *Vector[T]) ShrinkToFit() {
	if cap(v.s) == len(v.s) {
		return
	}
	if len(v.s) == 0 {
		v.s = nil

		return
	}
	v.s = slices.Clone(v.s)
}

// Clear removes all elements and keeps the capacity
func (v *Vector[T]) Clear() {
	clear(v.s)
	v.s = v.s[:0]
}

// Insert puts vals before position pos, pos == Size() appends
func (v *Vector[T]) Insert(pos int, vals ...T) error {
	if pos < 0 || pos > len(v.s) {
		return outOfRange("insert", pos, len(v.s))
	}
	v.s = slices.Insert(v.s, pos, vals...)

	return nil
}

func (v *Vector[T]) Erase(pos int) error {
	if pos < 0 || pos >= len(v.s) {
		return outOfRange("erase", pos, len(v.s))
	}
	v.s = slices.Delete(v.s, pos, pos+1)

	return nil
}

// EraseRange removes elements in [first, last)
func (v *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || first > last || last > len(v.s) {
		return outOfRange("erase", last, len(v.s))
	}
	v.s = slices.Delete(v.s, first, last)

	return nil
}

func (v *Vector[T]) PushBack(val T) {
	v.s = append(v.s, val)
}

func (v *Vector[T]) PopBack() error {
	if len(v.s) == 0 {
		return empty("pop_back")
	}
	var zero T
	v.s[len(v.s)-1] = zero
	v.s = v.s[:len(v.s)-1]

	return nil
}

func (v *Vector[T]) Swap(other *Vector[T]) {
	v.s, other.s = other.s, v.s
}

func (v *Vector[T]) Begin() Iterator[T] {
	return begin[T](v)
}

func (v *Vector[T]) End() Iterator[T] {
	return end[T](v)
}

func (v *Vector[T]) RBegin() Iterator[T] {
	return rbegin[T](v)
}

func (v *Vector[T]) REnd() Iterator[T] {
	return rend[T](v)
}

func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

func (v *Vector[T]) CRBegin() ConstIterator[T] {
	return v.RBegin().Const()
}

func (v *Vector[T]) CREnd() ConstIterator[T] {
	return v.REnd().Const()
}

func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.s)
}

// Snapshot is a copy of the content
func (v *Vector[T]) Snapshot() []T {
	return slices.Clone(v.s)
}
