package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{New: func() interface{} {
	return &buffer{}
}}

func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}

// Buffer returns a pooled buffer which must be returned back with Free
func Buffer() *buffer {
	return buffersPool.Get().(*buffer) //nolint:forcetypeassert
}
