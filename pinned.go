package bindref

import (
	"github.com/timandy/routine"

	"github.com/wippyai/bindref/violation"
)

// Pinned is the goroutine-bound owning flavor. Its payload is ambiently
// observable from the binding goroutine without an explicit window, and in
// exchange the handle must never be used from any other goroutine. Every
// operation verifies the calling goroutine against the binding one.
type Pinned[T any] struct {
	b    *block[T]
	goid int64
}

// NewPinned creates a goroutine-bound owner wrapping value, bound to the
// calling goroutine, with a tag store private to this block.
func NewPinned[T any](value T) *Pinned[T] {
	b := newBlock(value, nil)
	b.tags.Cell().Set(StatePinned)
	return &Pinned[T]{b: b, goid: routine.Goid()}
}

func (p *Pinned[T]) require(op string) *block[T] {
	if p == nil || p.b == nil {
		raise(violation.UseAfterMove(op))
	}
	if g := routine.Goid(); g != p.goid {
		raise(violation.CrossGoroutine(op, p.goid, g))
	}
	return p.b
}

// Value returns the payload directly from the binding goroutine.
func (p *Pinned[T]) Value() *T {
	return &p.require("Pinned.Value").value
}

// NewRef creates a non-owning observer and increments the observer count.
// Observers created from a pinned owner are immediately usable on the binding
// goroutine, since its tag already reads pinned.
func (p *Pinned[T]) NewRef() *Ref[T] {
	b := p.require("Pinned.NewRef")
	b.count++
	return &Ref[T]{b: b}
}

// Unpin moves ownership back to the transferable flavor. The tag returns to
// idle, so observers on this goroutine lose ambient access until the next
// window. This handle is inert afterwards.
func (p *Pinned[T]) Unpin() *Owner[T] {
	b := p.require("Pinned.Unpin")
	p.b = nil

	b.tags.Cell().Set(StateIdle)

	return &Owner[T]{b: b}
}

// Erase moves ownership behind the goroutine-bound erased wrapper. The
// binding carries over unchanged.
func (p *Pinned[T]) Erase() *ErasedPinned {
	b := p.require("Pinned.Erase")
	p.b = nil
	return &ErasedPinned{inner: &Owner[T]{b: b}, goid: p.goid}
}

// Close finalizes the payload exactly as Owner.Close does. It must run on the
// binding goroutine. Closing a moved-from or already closed handle is a
// no-op.
func (p *Pinned[T]) Close() {
	if p == nil || p.b == nil {
		return
	}

	b := p.require("Pinned.Close")
	p.b = nil
	b.finalizePinned("Pinned.Close")
}
