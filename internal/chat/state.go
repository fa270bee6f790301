package chat

// State is the request lifecycle of the chat component.
type State int

const (
	StateIdle    State = iota // Waiting for input
	StatePending              // One request in flight
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	default:
		return "unknown"
	}
}
