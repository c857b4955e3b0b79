package main

import (
	"errors"
	"fmt"

	locked "github.com/ydb-platform/ydb-go-locked"
)

var errUnknownContainer = errors.New("unknown container")

// sequence is what the commands need from a sequential locked container
type sequence interface {
	PushBack(v int)
	Clear()
	Size() int
	ReadLock(f func())
	WriteLock(f func())
	SizeNoLock() int
	EmptyNoLock() bool
	FrontNoLock() (int, error)
	// eraseNoLock drops every element and, where the container can, its memory
	eraseNoLock()
}

type vectorSequence struct {
	*locked.Vector[int]
}

func (v vectorSequence) eraseNoLock() {
	v.ClearNoLock()
	v.ShrinkToFitNoLock()
}

type dequeSequence struct {
	*locked.Deque[int]
}

func (d dequeSequence) eraseNoLock() {
	d.ClearNoLock()
	d.ShrinkToFitNoLock()
}

type listSequence struct {
	*locked.List[int]
}

func (l listSequence) PushBack(v int) {
	l.List.PushBack(v)
}

func (l listSequence) eraseNoLock() {
	l.ClearNoLock()
}

func newSequence(container string, opts ...locked.Option) (sequence, error) {
	switch container {
	case "vector":
		return vectorSequence{locked.NewVector[int](opts...)}, nil
	case "deque":
		return dequeSequence{locked.NewDeque[int](opts...)}, nil
	case "list":
		return listSequence{locked.NewList[int](opts...)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownContainer, container)
	}
}
