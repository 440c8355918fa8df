package bindref

import (
	"github.com/timandy/routine"

	"github.com/wippyai/bindref/internal/tagstore"
)

// Family groups handle instances around one shared tag store: every owner
// created through NewIn resolves its tag in the family's store instead of a
// private one. That is the cheaper scoping, but it serializes members per
// goroutine — while one member's window is open, entering any other member on
// the same goroutine is a re-entrancy violation. Use New for instances that
// must not interfere.
type Family struct {
	tags *tagstore.Store[State]
}

// NewFamily creates an empty family.
func NewFamily() *Family {
	return &Family{tags: tagstore.New[State]()}
}

// NewIn creates a transferable owner whose tag lives in the family's shared
// store.
func NewIn[T any](fam *Family, value T) *Owner[T] {
	return &Owner[T]{b: newBlock(value, fam.tags)}
}

// NewPinnedIn creates a goroutine-bound owner in the family's shared store,
// bound to the calling goroutine. While it lives, every member's observers on
// this goroutine see the tag as set.
func NewPinnedIn[T any](fam *Family, value T) *Pinned[T] {
	b := newBlock(value, fam.tags)
	b.tags.Cell().Set(StatePinned)
	return &Pinned[T]{b: b, goid: routine.Goid()}
}
