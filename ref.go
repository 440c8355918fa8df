package bindref

import (
	"github.com/wippyai/bindref/violation"
)

// Ref is the non-owning observer handle. A Ref travels freely between
// goroutines and may outlive its owner, but its payload is only reachable
// while the calling goroutine's tag is set: inside an access window, or on
// the goroutine a pinned owner is bound to.
type Ref[T any] struct {
	b *block[T]
}

// Get returns the payload and true if the calling goroutine currently holds
// access and the owner has not been closed. It returns (nil, false) otherwise
// and never panics.
func (r *Ref[T]) Get() (*T, bool) {
	b := r.b
	if b == nil || b.dead.Load() || !b.tags.Cell().Get().IsSet() {
		return nil, false
	}
	return &b.value, true
}

// Clone duplicates the observer and increments the observer count. The count
// bump is unsynchronized, so it is only legal while the calling goroutine's
// tag is set; cloning outside a window is a violation in every build.
func (r *Ref[T]) Clone() *Ref[T] {
	b := r.b
	if b == nil || !b.tags.Cell().Get().IsSet() {
		raise(violation.IdleClone("Ref.Clone"))
	}

	b.count++
	return &Ref[T]{b: b}
}

// Release drops this observer and decrements the observer count, under the
// same window requirement as Clone. Releasing outside a window (or twice) is
// flagged in checked builds; unchecked builds skip the count adjustment and
// carry on. The handle is inert afterwards either way.
func (r *Ref[T]) Release() {
	b := r.b
	r.b = nil

	if b == nil || !b.tags.Cell().Get().IsSet() {
		if checked {
			raise(violation.IdleRelease("Ref.Release"))
		}
		return
	}

	b.count--
}
