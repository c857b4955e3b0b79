package containers

import (
	"errors"

	"github.com/ydb-platform/ydb-go-locked/internal/xerrors"
)

var (
	// ErrOutOfRange is returned by bounds-checked accessors and positional
	// modifiers when the position is outside of the container
	ErrOutOfRange = errors.New("out of range")

	// ErrEmpty is returned by front/back accessors and pops on an empty container
	ErrEmpty = errors.New("empty container")

	// ErrNotFound is returned by keyed accessors for an absent key
	ErrNotFound = errors.New("key not found")

	// ErrForeignElement is returned by list operations given an element of another list
	ErrForeignElement = errors.New("element does not belong to the list")
)

func outOfRange(op string, pos, size int) error {
	return xerrors.WithStackTrace(
		xerrors.Wrap(ErrOutOfRange, "%s: position %d, size %d", op, pos, size),
		xerrors.WithSkipDepth(1),
	)
}

func empty(op string) error {
	return xerrors.WithStackTrace(
		xerrors.Wrap(ErrEmpty, "%s", op),
		xerrors.WithSkipDepth(1),
	)
}

// checkIndex panics like a slice index expression does
func checkIndex(i, size int) {
	if i < 0 || i >= size {
		panic(outOfRange("index", i, size))
	}
}

func foreign(op string) error {
	return xerrors.WithStackTrace(
		xerrors.Wrap(ErrForeignElement, "%s", op),
		xerrors.WithSkipDepth(1),
	)
}

func notFound(op string, key any) error {
	return xerrors.WithStackTrace(
		xerrors.Wrap(ErrNotFound, "%s: key %v", op, key),
		xerrors.WithSkipDepth(1),
	)
}
