package domain

// State is the lifecycle flag of interest rates and product accounts.
// Only active entities are returned by the "list actives" queries.
type State string

// Lifecycle states, stored and transmitted as three-letter codes.
const (
	StateActive   State = "ACT"
	StateInactive State = "INA"
)

// IsValid reports whether s is a known lifecycle state.
func (s State) IsValid() bool {
	switch s {
	case StateActive, StateInactive:
		return true
	default:
		return false
	}
}

// String returns the storage code of the state.
func (s State) String() string {
	return string(s)
}
