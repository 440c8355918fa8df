// Package bindref provides transferable, non-atomically reference-counted
// handles whose observers are gated by per-goroutine access windows.
//
// A single owning handle wraps a value and can move freely between
// goroutines. Arbitrarily many observer handles reference the same value, but
// an observer only sees the value while the owner has opened an access window
// on the observer's goroutine (or is pinned there). That restriction is what
// lets the observer count be a plain integer with no atomics and no locks.
//
// # Architecture Overview
//
//	bindref/             Root package: owners, observers, erasures, tag state machine
//	├── violation/       Structured contract-violation errors raised as panics
//	├── internal/
//	│   └── tagstore/    Per-goroutine tag cells (one cell per goroutine per store)
//	└── cmd/
//	    └── bindref-demo Runnable walkthrough of the protocol
//
// # Quick Start
//
//	owner := bindref.New(Counter{})
//	ref := owner.NewRef()
//
//	// Hand the owner to another goroutine; refs stay where they are.
//	go func() {
//	    owner.Enter(func(c *Counter) {
//	        // Inside the window the payload is observable on this goroutine.
//	        if v, ok := ref.Get(); ok {
//	            _ = v
//	        }
//	    })
//	    owner.Close()
//	}()
//
// Outside any window, ref.Get() returns (nil, false). It never panics.
//
// # Flavors
//
// Owner is the transferable flavor: it may be moved between goroutines and
// grants temporary access through Enter. Pinned is the goroutine-bound
// flavor: its payload is ambiently observable on the binding goroutine, and
// the handle must never be used anywhere else. Pin and Unpin convert between
// the two, moving ownership; a moved-from handle is inert and panics on use
// (Close excepted, which is a no-op).
//
// ErasedOwner and ErasedPinned hide the payload type, retaining only the
// window and flavor-conversion capabilities. They are useful when the payload
// must not appear in a caller's signature.
//
// # Tag Scoping
//
// New gives each instance a private tag store, so unrelated instances never
// interfere. NewIn places an instance in a Family whose members share one
// store: cheaper, but members serialize per goroutine.
//
// # Protocol Rules
//
// Consumers must (1) never retain a payload pointer beyond the window it was
// obtained in, (2) only Clone or Release an observer while a window on its
// block is open, and (3) treat a moved-from handle as unusable. Breaking a
// rule raises a *violation.Error panic.
//
// # Checked and Unchecked Builds
//
// By default, releasing an observer outside a window panics. Building with
// -tags bindref_unchecked suppresses that one check: an idle release becomes
// a no-op, trading strictness for speed in release binaries. The relaxation
// is deliberate and limited to Release; idle Clone always panics, because no
// valid observer can be produced outside a window.
//
// # Finalization
//
// Closing the owning handle (in whichever flavor or erasure it currently
// lives) runs the payload's Drop method, when implemented, under a forced
// access window. A payload may therefore hold observers of its own block and
// release them during Drop. After Close, every surviving observer reports
// absence; the garbage collector reclaims the block once the last handle is
// unreachable.
package bindref
