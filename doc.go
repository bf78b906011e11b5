// Package promise implements a single-value deferred result with Promise/A+
// resolution and chaining behavior.
//
// A Promise is in exactly one of three states at any time:
// Pending: the computation behind the promise has not produced an outcome.
// Fulfilled: it completed with a value.
// Rejected: it failed with a reason.
// The first transition out of Pending is final; later settlement attempts are
// no-ops.
//
// Settlement is never observed inline. Calling a resolve or reject capability
// only schedules the transition and callback drain onto the promise's
// scheduler, so handlers registered with Then always run in a later turn than
// the call that triggered them, and handlers on the same promise run in
// registration order. The scheduler is injected at construction: use
// scheduler.NewLoop for deterministic caller-driven stepping, or
// scheduler.NewAsync for a free-running single-goroutine runtime.
//
// Resolving with any value implementing Thenable adopts that value's eventual
// outcome instead of fulfilling with the value itself, which is what lets
// promises from independent implementations compose.
package promise
