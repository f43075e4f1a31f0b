package capy

// Event is something that happened during a step. Frontends use events to
// play sound cues and write history without inspecting the state.
type Event int

const (
	EventImpulse Event = iota + 1 // An impulse was applied
	EventScored                   // An obstacle was passed
	EventPickup                   // A heart was collected
	EventEnded                    // The run terminated
	EventRecord                   // The run set a new best score or heart count
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventImpulse:
		return "impulse"
	case EventScored:
		return "scored"
	case EventPickup:
		return "pickup"
	case EventEnded:
		return "ended"
	case EventRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Events is the ordered list of events produced by one step.
type Events []Event

// Has reports whether e occurred.
func (es Events) Has(e Event) bool {
	for _, x := range es {
		if x == e {
			return true
		}
	}
	return false
}
