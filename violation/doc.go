// Package violation defines the structured errors raised when the handle
// protocol is broken.
//
// Every violation is a programming error: a second access window opened on an
// already-entered tag, an observer cloned or released with no window open, a
// moved-from handle used again, or a pinned handle touched from the wrong
// goroutine. None of them are recoverable at the call site, so the root
// package raises them as panics carrying a *violation.Error value.
//
// # Matching
//
// Errors match by kind through errors.Is:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        if err, ok := r.(error); ok && errors.Is(err, &violation.Error{Kind: violation.KindReentrancy}) {
//	            // nested Enter on the same handle
//	        }
//	    }
//	}()
package violation
