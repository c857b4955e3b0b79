package containers

type sequence[T any] interface {
	Size() int
	ref(i int) *T
}

// Iterator is a position in a Vector or a Deque. It may point one past
// either end; dereferencing such a position panics. An Iterator stays
// meaningful only while the container is not resized.
type Iterator[T any] struct {
	seq  sequence[T]
	pos  int
	step int
}

func begin[T any](s sequence[T]) Iterator[T] {
	return Iterator[T]{seq: s, pos: 0, step: 1}
}

func end[T any](s sequence[T]) Iterator[T] {
	return Iterator[T]{seq: s, pos: s.Size(), step: 1}
}

func rbegin[T any](s sequence[T]) Iterator[T] {
	return Iterator[T]{seq: s, pos: s.Size() - 1, step: -1}
}

func rend[T any](s sequence[T]) Iterator[T] {
	return Iterator[T]{seq: s, pos: -1, step: -1}
}

// Ptr is the address of the element under the iterator
func (it Iterator[T]) Ptr() *T {
	checkIndex(it.pos, it.seq.Size())

	return it.seq.ref(it.pos)
}

func (it Iterator[T]) Value() T {
	return *it.Ptr()
}

func (it Iterator[T]) Next() Iterator[T] {
	it.pos += it.step

	return it
}

func (it Iterator[T]) Prev() Iterator[T] {
	it.pos -= it.step

	return it
}

func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.pos += n * it.step

	return it
}

// Index is the position of the iterator counted from the container front
func (it Iterator[T]) Index() int {
	return it.pos
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.seq == other.seq && it.pos == other.pos && it.step == other.step
}

func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// ConstIterator is an Iterator without write access to the element
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (it ConstIterator[T]) Value() T {
	return it.it.Value()
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{it: it.it.Next()}
}

func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{it: it.it.Prev()}
}

func (it ConstIterator[T]) Advance(n int) ConstIterator[T] {
	return ConstIterator[T]{it: it.it.Advance(n)}
}

func (it ConstIterator[T]) Index() int {
	return it.it.Index()
}

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.it.Equal(other.it)
}
