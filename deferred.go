package promise

import (
	"github.com/jackysz/promise/pkg/scheduler"
)

// Deferred pairs a promise with the capabilities to settle it outside the
// executor pattern. The capabilities are the same first-call-wins functions
// an executor receives; the handle adds no state of its own.
type Deferred[T any] struct {
	Promise *Promise[T]
	Resolve Resolver[T]
	Reject  Rejector
}

// NewDeferred creates a pending promise and captures its settlement
// capabilities into the returned handle.
func NewDeferred[T any](sched scheduler.Scheduler) *Deferred[T] {
	d := &Deferred[T]{}

	d.Promise = New(sched, func(resolve Resolver[T], reject Rejector) {
		d.Resolve = resolve
		d.Reject = reject
	})

	return d
}

// Defer is a synonym for NewDeferred.
func Defer[T any](sched scheduler.Scheduler) *Deferred[T] {
	return NewDeferred[T](sched)
}
