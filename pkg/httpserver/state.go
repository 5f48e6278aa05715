package httpserver

// State is the lifecycle state of a Server.
type State int32

const (
	// StateStarting is the initial state, before the listener is bound.
	StateStarting State = iota
	// StateRunning means the listener is bound and serving.
	StateRunning
	// StateClosing means graceful shutdown is in progress.
	StateClosing
	// StateStopped is terminal: the listener is closed.
	StateStopped
	// StateCrashed is terminal: a background task panicked and the process is exiting.
	StateCrashed
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateClosing:
		return "closing"
	case StateStopped:
		return "stopped"
	case StateCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}
