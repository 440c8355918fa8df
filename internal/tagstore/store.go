package tagstore

import (
	"github.com/timandy/routine"
)

// Cell is one goroutine's private tag slot. It is only ever read and written
// by the goroutine it was resolved for, so access is plain.
type Cell[S any] struct {
	v S
}

// Get returns the cell's current value.
func (c *Cell[S]) Get() S {
	return c.v
}

// Set replaces the cell's value.
func (c *Cell[S]) Set(v S) {
	c.v = v
}

// Store resolves one Cell per calling goroutine, creating a zero-valued cell
// on first use. A Store may be private to a single control block or shared by
// a whole handle family; the callers decide the scoping.
type Store[S any] struct {
	tls routine.ThreadLocal[*Cell[S]]
}

// New creates an empty store.
func New[S any]() *Store[S] {
	return &Store[S]{
		tls: routine.NewThreadLocalWithInitial[*Cell[S]](func() *Cell[S] {
			return new(Cell[S])
		}),
	}
}

// Cell returns the calling goroutine's cell.
func (s *Store[S]) Cell() *Cell[S] {
	return s.tls.Get()
}
