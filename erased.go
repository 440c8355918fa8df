package bindref

import (
	"github.com/timandy/routine"

	"github.com/wippyai/bindref/violation"
)

// binder is the capability surface an erased wrapper retains from the owner
// it hides: driving the window protocol, flipping the pinned tag for flavor
// conversion, and closing.
type binder interface {
	enterOpaque(op string) func()
	setTag(op string, s State)
	closeOwner()
	closePinned()
}

// ErasedOwner is a transferable owning handle whose payload type is hidden.
// It cannot reach the payload; it can only open opaque access windows,
// convert flavors, and close.
type ErasedOwner struct {
	inner binder
}

// Enter opens an access window for the duration of fn without exposing the
// payload. Observers of the hidden block are usable inside fn.
func (e *ErasedOwner) Enter(fn func()) {
	if e == nil || e.inner == nil {
		raise(violation.UseAfterMove("ErasedOwner.Enter"))
	}

	restore := e.inner.enterOpaque("ErasedOwner.Enter")
	defer restore()

	fn()
}

// Pin moves ownership into the goroutine-bound erasure, binding to the
// calling goroutine. This wrapper is inert afterwards.
func (e *ErasedOwner) Pin() *ErasedPinned {
	inner := e.take("ErasedOwner.Pin")
	inner.setTag("ErasedOwner.Pin", StatePinned)
	return &ErasedPinned{inner: inner, goid: routine.Goid()}
}

// Close finalizes the underlying owner. Closing a moved-from wrapper is a
// no-op.
func (e *ErasedOwner) Close() {
	if e == nil || e.inner == nil {
		return
	}

	inner := e.inner
	e.inner = nil
	inner.closeOwner()
}

func (e *ErasedOwner) take(op string) binder {
	if e == nil || e.inner == nil {
		raise(violation.UseAfterMove(op))
	}

	inner := e.inner
	e.inner = nil
	return inner
}

// ErasedPinned is the goroutine-bound erasure. The recorded goroutine id
// stands in for an unsendable marker: any use from another goroutine is a
// violation, which is what keeps an erasure of unsendable payload honest.
type ErasedPinned struct {
	inner binder
	goid  int64
}

// Unpin moves ownership back to the transferable erasure; the tag returns to
// idle. This wrapper is inert afterwards.
func (p *ErasedPinned) Unpin() *ErasedOwner {
	inner := p.take("ErasedPinned.Unpin")
	inner.setTag("ErasedPinned.Unpin", StateIdle)
	return &ErasedOwner{inner: inner}
}

// Close finalizes the underlying owner from the binding goroutine. Closing a
// moved-from wrapper is a no-op.
func (p *ErasedPinned) Close() {
	if p == nil || p.inner == nil {
		return
	}

	inner := p.take("ErasedPinned.Close")
	inner.closePinned()
}

func (p *ErasedPinned) take(op string) binder {
	if p == nil || p.inner == nil {
		raise(violation.UseAfterMove(op))
	}
	if g := routine.Goid(); g != p.goid {
		raise(violation.CrossGoroutine(op, p.goid, g))
	}

	inner := p.inner
	p.inner = nil
	return inner
}
