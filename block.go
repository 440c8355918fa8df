package bindref

import (
	"sync/atomic"

	"github.com/wippyai/bindref/internal/tagstore"
	"github.com/wippyai/bindref/violation"
)

// Finalizer is optionally implemented by payloads that need teardown when
// their owning handle closes. Drop runs under a forced access window, so a
// payload holding observers of its own block may legally release them from
// inside Drop.
type Finalizer interface {
	Drop()
}

// block is the shared allocation behind one handle instance: the payload, the
// observer count, and the tag store gating observer access.
//
// The count is a plain int. Every protocol-compliant mutation happens either
// through the single owner or inside an access window, and only one window
// can be open for a given block at a time, so the arithmetic is race-free
// without atomics. The dead flag is different: Get is total and may poll from
// any goroutine while Close runs on another, so the one-shot flag needs a
// happens-before of its own.
type block[T any] struct {
	count int
	tags  *tagstore.Store[State]
	value T
	dead  atomic.Bool
}

// newBlock allocates a block with count 0 and an idle tag. A nil tags store
// means the block gets a private store (per-block scoping); a non-nil store
// is shared with the rest of a family.
func newBlock[T any](value T, tags *tagstore.Store[State]) *block[T] {
	if tags == nil {
		tags = tagstore.New[State]()
	}
	return &block[T]{
		tags:  tags,
		value: value,
	}
}

// finalize tears the payload down under a forced access window and marks the
// block dead. The cell's prior state is restored afterwards: a live pinned
// sibling sharing the tag store keeps its marking, and an idle cell stays
// idle. Surviving observers report absence from here on; the garbage
// collector reclaims the block once the last handle lets go of it.
func (b *block[T]) finalize(op string) {
	cell := b.tags.Cell()
	prev := cell.Get()
	if prev == StateEntered {
		raise(violation.Reentrancy(op))
	}

	cell.Set(StateEntered)
	defer cell.Set(prev)

	if f, ok := any(&b.value).(Finalizer); ok {
		f.Drop()
	} else if f, ok := any(b.value).(Finalizer); ok {
		// payloads that are themselves pointers or interfaces
		f.Drop()
	}

	// The payload is not zeroed: after Drop nothing writes it again, so a Get
	// racing this flag from another goroutine can never observe a torn value.
	// The memory lives until the block itself is unreachable.
	b.dead.Store(true)
}

// finalizePinned drops the closing handle's own pin before finalizing, so the
// prior-state restore does not resurrect a marking whose owner is gone. A
// cell reading Entered here belongs to an open window and is left for
// finalize to reject.
func (b *block[T]) finalizePinned(op string) {
	if cell := b.tags.Cell(); cell.Get() == StatePinned {
		cell.Set(StateIdle)
	}
	b.finalize(op)
}
