package bindref

import (
	"github.com/timandy/routine"

	"github.com/wippyai/bindref/violation"
)

// Owner is the transferable owning handle. Exactly one owning handle (of
// either flavor, erased or not) exists per control block; conversions move
// that ownership, leaving the source handle inert. An Owner may be handed
// from goroutine to goroutine, but is only ever used by one at a time.
type Owner[T any] struct {
	b *block[T]
}

// New creates an Owner wrapping value, with a tag store private to this
// block. Instances created this way never serialize against each other; use
// NewIn for family-scoped tags.
func New[T any](value T) *Owner[T] {
	return &Owner[T]{b: newBlock(value, nil)}
}

func (o *Owner[T]) require(op string) *block[T] {
	if o == nil || o.b == nil {
		raise(violation.UseAfterMove(op))
	}
	return o.b
}

// Value returns the payload directly. The owner is exclusive, so no access
// window is needed; this is the one mutation path.
func (o *Owner[T]) Value() *T {
	return &o.require("Owner.Value").value
}

// Enter opens an access window on the calling goroutine for the duration of
// fn. Observers of this block may be read, cloned, and released inside fn;
// the prior tag state is restored on every exit path, including a panic
// unwinding out of fn. Calling Enter while this handle's tag is already
// entered is a re-entrancy violation.
func (o *Owner[T]) Enter(fn func(*T)) {
	b := o.require("Owner.Enter")

	restore := enterScope(b.tags.Cell(), "Owner.Enter")
	defer restore()

	fn(&b.value)
}

// NewRef creates a non-owning observer of the payload and increments the
// observer count. The increment is plain arithmetic: the single owner cannot
// be in two goroutines at once, which is what makes it race-free. When other
// goroutines already hold observers, call NewRef from inside Enter.
func (o *Owner[T]) NewRef() *Ref[T] {
	b := o.require("Owner.NewRef")
	b.count++
	return &Ref[T]{b: b}
}

// Pin moves ownership into the goroutine-bound flavor. The tag reads pinned
// on this goroutine until Unpin, so observers here see the payload without an
// explicit window. This handle is inert afterwards.
func (o *Owner[T]) Pin() *Pinned[T] {
	b := o.require("Owner.Pin")
	o.b = nil

	b.tags.Cell().Set(StatePinned)

	return &Pinned[T]{b: b, goid: routine.Goid()}
}

// Erase moves ownership behind the type-erased wrapper, which retains only
// the window and flavor-conversion capabilities. This handle is inert
// afterwards.
func (o *Owner[T]) Erase() *ErasedOwner {
	b := o.require("Owner.Erase")
	o.b = nil
	return &ErasedOwner{inner: &Owner[T]{b: b}}
}

// Close finalizes the payload: its Drop method (if any) runs under a forced
// access window, then the block is retired and every surviving observer
// reports absence. Closing a moved-from or already closed owner is a no-op.
func (o *Owner[T]) Close() {
	if o == nil || o.b == nil {
		return
	}

	b := o.b
	o.b = nil
	b.finalize("Owner.Close")
}

// enterOpaque, setTag and closeOwner give the erased wrappers their
// capability surface without the payload type.

func (o *Owner[T]) enterOpaque(op string) func() {
	b := o.require(op)
	return enterScope(b.tags.Cell(), op)
}

func (o *Owner[T]) setTag(op string, s State) {
	o.require(op).tags.Cell().Set(s)
}

func (o *Owner[T]) closeOwner() {
	o.Close()
}

func (o *Owner[T]) closePinned() {
	if o == nil || o.b == nil {
		return
	}

	b := o.b
	o.b = nil
	b.finalizePinned("ErasedPinned.Close")
}
