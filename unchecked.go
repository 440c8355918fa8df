//go:build bindref_unchecked

package bindref

// checked is off: an observer released outside an access window is silently
// ignored instead of flagged. Cloning outside a window still panics in this
// mode, since a usable observer genuinely cannot be produced there.
const checked = false
