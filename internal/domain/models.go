package domain

// Event identifies a diagnostic emitted during a run
type Event string

const (
	EventFound   Event = "found"
	EventCreated Event = "created"
	EventDeleted Event = "deleted"

	EventSkipNoMain        Event = "no-main"
	EventSkipMainIsIndex   Event = "main-is-index"
	EventSkipAlreadyExists Event = "already-exists"

	EventFailed Event = "failed"
)

// IsSkip reports whether the event is one of the expected skip branches
func (e Event) IsSkip() bool {
	switch e {
	case EventSkipNoMain, EventSkipMainIsIndex, EventSkipAlreadyExists:
		return true
	}
	return false
}

// Message returns the human readable text for an event
func (e Event) Message() string {
	switch e {
	case EventFound:
		return "Found"
	case EventCreated:
		return "created!"
	case EventDeleted:
		return "deleted!"
	case EventSkipNoMain:
		return "does not have a main entry."
	case EventSkipMainIsIndex:
		return "main entry is index.js."
	case EventSkipAlreadyExists:
		return "already exists."
	case EventFailed:
		return "failed."
	default:
		return string(e)
	}
}
