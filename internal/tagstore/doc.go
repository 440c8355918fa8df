// Package tagstore provides per-goroutine tag cells.
//
// A Store hands back exactly one Cell per calling goroutine, creating it with
// a zero value on first use. It is the storage substrate for the handle
// protocol's tag state: the root package never shares a cell between
// goroutines, so cells need no synchronization of their own.
package tagstore
