// Package containers holds the unsynchronized containers wrapped by package
// locked: a dynamic array (Vector), a double-ended queue (Deque), a doubly
// linked list (List) and an ordered map (Ordered).
//
// None of the types are safe for concurrent use. Zero values are empty
// containers ready to use. Bounds-checked accessors return ErrOutOfRange,
// ErrEmpty or ErrNotFound wrapped with the call site; unchecked accessors
// (Get, Index) panic on a bad position the same way a slice index does.
package containers
