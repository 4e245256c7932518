// Package locked guards a slotgo.Map with a read/write mutex.
//
// slotgo containers do no locking of their own. Map in this package is the
// single reader/writer lock around every operation that sharing a container
// between goroutines requires. Reads that would hand out a pointer into the
// container return a copy instead, since the pointer would outlive the lock.
package locked
