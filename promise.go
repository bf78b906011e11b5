package promise

import (
	"github.com/jackysz/promise/pkg/q"
	"github.com/jackysz/promise/pkg/scheduler"
)

// Promise represents the eventual result of an operation that may complete
// with a value, fail with a reason, or never complete.
//
// All state lives on one logical thread: mutation happens either before the
// scheduler runs or inside its tasks, so the promise itself needs no locking.
type Promise[T any] struct {
	sched scheduler.Scheduler
	state State

	value T
	err   error

	// resolved flips on the first resolve/reject call. The state transition
	// itself still happens in a later scheduler turn.
	resolved bool

	fulfillQ q.Queue[func()]
	rejectQ  q.Queue[func()]
}

// New creates a pending promise and invokes executor synchronously with its
// settlement capabilities. A panic out of the executor rejects the promise,
// unless a capability was already called.
func New[T any](sched scheduler.Scheduler, executor func(resolve Resolver[T], reject Rejector)) *Promise[T] {
	p := &Promise[T]{
		sched: sched,
		state: StatePending,
	}

	p.execute(executor)

	return p
}

// Resolve creates a promise resolved with value. The value goes through the
// resolution procedure, so resolving with a Thenable adopts its outcome.
func Resolve[T any](sched scheduler.Scheduler, value T) *Promise[T] {
	return New(sched, func(resolve Resolver[T], _ Rejector) {
		resolve(value)
	})
}

// Reject creates a promise rejected with reason.
func Reject[T any](sched scheduler.Scheduler, reason error) *Promise[T] {
	return New(sched, func(_ Resolver[T], reject Rejector) {
		reject(reason)
	})
}

// Then registers outcome handlers and returns a new promise settled by them.
//
// A nil onFulfilled passes the value through unchanged; a nil onRejected
// re-raises the reason unchanged. The handler for the parent's outcome runs
// in a later scheduler turn; its result goes through the resolution procedure
// against the returned promise, and a handler error or panic rejects it.
// Multiple Then calls on one promise fan out in registration order.
func (p *Promise[T]) Then(onFulfilled FulfillHandler[T], onRejected RejectHandler[T]) *Promise[T] {
	child := &Promise[T]{
		sched: p.sched,
		state: StatePending,
	}

	p.Subscribe(
		func(value T) {
			child.runFulfilled(onFulfilled, value)
		},
		func(reason error) {
			child.runRejected(onRejected, reason)
		},
	)

	return child
}

// Catch is shorthand for Then with only a rejection handler.
func (p *Promise[T]) Catch(handler RejectHandler[T]) *Promise[T] {
	return p.Then(nil, handler)
}

// Finally runs handler once the promise settles, either way, and passes the
// outcome through unchanged.
func (p *Promise[T]) Finally(handler FinallyHandler) *Promise[T] {
	return p.Then(
		func(value T) (T, error) {
			handler()
			return value, nil
		},
		func(reason error) (T, error) {
			handler()
			var zero T
			return zero, reason
		},
	)
}

// Subscribe implements Thenable. On a settled promise the matching callback
// is scheduled for a later turn; on a pending one both are queued and the
// winning queue is drained, in registration order, when the promise settles.
func (p *Promise[T]) Subscribe(onResolve func(value T), onReject func(reason error)) {
	switch p.state {
	case StateFulfilled:
		p.sched.Schedule(func() {
			onResolve(p.value)
		})

	case StateRejected:
		p.sched.Schedule(func() {
			onReject(p.err)
		})

	default:
		p.fulfillQ.Enqueue(func() {
			onResolve(p.value)
		})
		p.rejectQ.Enqueue(func() {
			onReject(p.err)
		})
	}
}

// State reports the current lifecycle state.
func (p *Promise[T]) State() State {
	return p.state
}

// Pending reports whether the promise has not settled yet.
func (p *Promise[T]) Pending() bool {
	return StatePending == p.state
}

// Value returns the fulfillment value, or the zero value while unfulfilled.
func (p *Promise[T]) Value() T {
	return p.value
}

// Error returns the rejection reason, or nil while not rejected.
func (p *Promise[T]) Error() error {
	return p.err
}

func (p *Promise[T]) execute(executor func(resolve Resolver[T], reject Rejector)) {
	defer func() {
		if v := recover(); nil != v {
			p.reject(recoveredError(v))
		}
	}()

	executor(p.resolve, p.reject)
}

// resolve is the Resolver capability: first call wins, and the candidate
// value is handed to the resolution procedure.
func (p *Promise[T]) resolve(value T) {
	if p.resolved {
		return
	}

	p.resolved = true
	p.adopt(value)
}

// reject is the Rejector capability.
func (p *Promise[T]) reject(reason error) {
	if p.resolved {
		return
	}

	p.resolved = true
	p.fail(reason)
}

// fulfill schedules the transition to StateFulfilled and the single drain of
// the fulfillment queue for a later turn.
func (p *Promise[T]) fulfill(value T) {
	p.sched.Schedule(func() {
		if StatePending != p.state {
			return
		}

		p.state = StateFulfilled
		p.value = value
		p.drain(p.fulfillQ)
	})
}

// fail schedules the transition to StateRejected and the single drain of the
// rejection queue for a later turn.
func (p *Promise[T]) fail(reason error) {
	p.sched.Schedule(func() {
		if StatePending != p.state {
			return
		}

		p.state = StateRejected
		p.err = reason
		p.drain(p.rejectQ)
	})
}

// drain runs the winning queue in insertion order; both queues are discarded
// first, so continuations observing the promise cannot re-enter them.
func (p *Promise[T]) drain(callbacks q.Queue[func()]) {
	p.fulfillQ, p.rejectQ = nil, nil

	for {
		callback, ok := callbacks.Dequeue()
		if !ok {
			return
		}

		callback()
	}
}

// runFulfilled settles p from the fulfillment branch of a then link.
func (p *Promise[T]) runFulfilled(handler FulfillHandler[T], value T) {
	if nil == handler {
		p.adopt(value)
		return
	}

	result, err := protect(func() (T, error) {
		return handler(value)
	})
	if nil != err {
		p.fail(err)
		return
	}

	p.adopt(result)
}

// runRejected settles p from the rejection branch of a then link.
func (p *Promise[T]) runRejected(handler RejectHandler[T], reason error) {
	if nil == handler {
		p.fail(reason)
		return
	}

	result, err := protect(func() (T, error) {
		return handler(reason)
	})
	if nil != err {
		p.fail(err)
		return
	}

	p.adopt(result)
}

// protect runs fn, converting a panic into its error return.
func protect[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if v := recover(); nil != v {
			err = recoveredError(v)
		}
	}()

	return fn()
}
