package violation

import (
	"fmt"
	"strings"
)

// Kind categorizes the contract violation.
type Kind string

const (
	KindReentrancy     Kind = "reentrancy"      // second window on an entered tag
	KindUseAfterMove   Kind = "use_after_move"  // operation on a moved-from handle
	KindIdleClone      Kind = "idle_clone"      // observer cloned with no window open
	KindIdleRelease    Kind = "idle_release"    // observer released with no window open
	KindCrossGoroutine Kind = "cross_goroutine" // pinned handle used off its goroutine
)

// Error is the structured violation value raised by the handle protocol.
// Violations are programming errors, never runtime conditions: the only
// recovery is for the caller to stop committing them.
type Error struct {
	Op     string
	Kind   Kind
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(e.Op)
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	return b.String()
}

// Is reports whether target matches this error's kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Reentrancy creates a violation for opening a second access window on a tag
// that is already entered.
func Reentrancy(op string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindReentrancy,
		Detail: "an access window is already open on this goroutine",
	}
}

// UseAfterMove creates a violation for operating on a handle whose ownership
// was already moved elsewhere or closed.
func UseAfterMove(op string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindUseAfterMove,
		Detail: "handle was moved or closed",
	}
}

// IdleClone creates a violation for cloning an observer while no access
// window is open.
func IdleClone(op string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindIdleClone,
		Detail: "observer cloned outside an access window",
	}
}

// IdleRelease creates a violation for releasing an observer while no access
// window is open, or releasing it twice.
func IdleRelease(op string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindIdleRelease,
		Detail: "observer released outside an access window",
	}
}

// CrossGoroutine creates a violation for using a pinned handle from a
// goroutine other than the one it is bound to.
func CrossGoroutine(op string, bound, caller int64) *Error {
	return &Error{
		Op:     op,
		Kind:   KindCrossGoroutine,
		Detail: fmt.Sprintf("bound to goroutine %d, called from goroutine %d", bound, caller),
	}
}
