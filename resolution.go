package promise

// adopt runs the resolution procedure against p with candidate value x:
// thenables are unwrapped, arbitrarily nested, until a plain value fulfills p
// or a rejection terminates the chain. Resolving a promise with itself is a
// cycle and rejects with ErrSelfResolution.
func (p *Promise[T]) adopt(x T) {
	if any(x) == any(p) {
		p.fail(ErrSelfResolution)
		return
	}

	thenable, ok := any(x).(Thenable[T])
	if !ok {
		p.fulfill(x)
		return
	}

	// First callback wins, across both outcomes and across repeat calls from
	// a misbehaving thenable. A panic out of Subscribe only counts if no
	// callback won first.
	called := false

	defer func() {
		if v := recover(); nil != v && !called {
			called = true
			p.fail(recoveredError(v))
		}
	}()

	thenable.Subscribe(
		func(y T) {
			if called {
				return
			}

			called = true
			p.adopt(y)
		},
		func(reason error) {
			if called {
				return
			}

			called = true
			p.fail(reason)
		},
	)
}
