package bindref

import (
	"go.uber.org/zap"

	"github.com/wippyai/bindref/internal/tagstore"
	"github.com/wippyai/bindref/violation"
)

type tagCell = tagstore.Cell[State]

// enterScope flips the calling goroutine's cell to StateEntered and returns a
// restore func that must run on every exit path, normal or unwinding. Opening
// a second window on an already-entered cell would let two windows overlap
// and break the serialization of observer-count updates, so it is rejected
// outright.
func enterScope(c *tagCell, op string) func() {
	prev := c.Get()
	if prev == StateEntered {
		raise(violation.Reentrancy(op))
	}

	c.Set(StateEntered)

	return func() {
		c.Set(prev)
	}
}

// raise reports a protocol violation and panics with it.
func raise(err *violation.Error) {
	Logger().Error("handle protocol violation",
		zap.String("op", err.Op),
		zap.String("kind", string(err.Kind)),
		zap.String("detail", err.Detail),
	)
	panic(err)
}
