// Package locked provides thread-safe wrappers over the containers of
// github.com/ydb-platform/ydb-go-locked/containers.
//
// Every wrapper owns one reader/writer lock and one container. Observers
// (Size, At, Find, ...) take the lock shared, mutators (PushBack, Erase,
// Index, ...) take it exclusively. Each operation has a NoLock twin which
// does not touch the lock; those are meant for ReadLock and WriteLock
// batches, where a group of operations must see one consistent state:
//
//	v := locked.NewVector[int]()
//	v.WriteLock(func() {
//		if v.EmptyNoLock() {
//			v.PushBackNoLock(1)
//		}
//	})
//
// Locked operations must not be called from inside ReadLock, WriteLock or
// an All range loop on the same container: the lock is not reentrant.
package locked
