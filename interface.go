package promise

// State identifies where a promise is in its lifecycle. A promise that has
// left StatePending never changes state again.
type State string

const (
	StatePending   = State("pending")
	StateFulfilled = State("fulfilled")
	StateRejected  = State("rejected")
)

// Resolver settles a promise with a value. The first Resolver or Rejector
// call wins; later calls are no-ops and their argument is never inspected.
type Resolver[T any] func(value T)

// Rejector settles a promise with a failure reason.
type Rejector func(reason error)

// FulfillHandler consumes the parent's value and produces the next link's
// candidate value, or an error that rejects the next link.
type FulfillHandler[T any] func(value T) (result T, err error)

// RejectHandler consumes the parent's rejection reason. Returning a nil error
// recovers the chain with result; returning an error keeps it rejected.
type RejectHandler[T any] func(reason error) (result T, err error)

// FinallyHandler runs on either outcome, without access to it.
type FinallyHandler func()

// Thenable is any promise-like value: one that can report its eventual
// outcome to a pair of callbacks. Values implementing it are adopted
// transparently during resolution, regardless of which implementation
// produced them.
//
// Subscribe registers both outcome callbacks. A conforming implementation
// calls at most one of them, once; implementations that call back
// synchronously, repeatedly, or on both paths are tolerated by the adopter,
// which honors only the first call.
type Thenable[T any] interface {
	Subscribe(onResolve func(value T), onReject func(reason error))
}
