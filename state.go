package bindref

// State describes whether a control block's payload is currently safe to
// observe from the calling goroutine.
type State uint8

const (
	// StateIdle grants no access; observers report absence.
	StateIdle State = iota

	// StatePinned means the owning handle is bound to this goroutine for its
	// lifetime; the payload is ambiently observable here.
	StatePinned

	// StateEntered means an access window is open on this goroutine. The
	// state is transient and always paired with a restore.
	StateEntered
)

// IsSet reports whether the payload may be observed under this state.
func (s State) IsSet() bool {
	return s != StateIdle
}

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePinned:
		return "pinned"
	case StateEntered:
		return "entered"
	default:
		return "unknown"
	}
}
