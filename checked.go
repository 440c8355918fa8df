//go:build !bindref_unchecked

package bindref

// checked gates the strict verification of observer release ordering.
// Release outside an access window is flagged as a violation when checked is
// true. Build with -tags bindref_unchecked to skip the check; see doc.go for
// the trade-off.
const checked = true
