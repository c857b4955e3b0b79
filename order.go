package locked

import "unsafe"

// lockedBefore orders wrappers by address for multi-lock operations
func lockedBefore[C any](a, b *Basic[C]) bool {
	return uintptr(unsafe.Pointer(a)) < uintptr(unsafe.Pointer(b))
}
