package domain

// SessionState is the lifecycle step of one client connection.
// Transitions only move forward; Disconnected is terminal.
type SessionState int

const (
	Connecting SessionState = iota
	AwaitingName
	Active
	Disconnected
)

func (s SessionState) String() string {
	switch s {
	case Connecting:
		return "CONNECTING"
	case AwaitingName:
		return "AWAITING_NAME"
	case Active:
		return "ACTIVE"
	case Disconnected:
		return "DISCONNECTED"
	default:
		return "UNKNOWN"
	}
}
