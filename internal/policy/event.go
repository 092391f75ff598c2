package policy

// EventType classifies what happened at a point in logical time.
type EventType int

const (
	Arrival EventType = iota
	IoRequest
	IoEnd
	Finish
	Timer
)

func (t EventType) String() string {
	switch t {
	case Arrival:
		return "arrival"
	case IoRequest:
		return "io-request"
	case IoEnd:
		return "io-end"
	case Finish:
		return "finish"
	case Timer:
		return "timer"
	default:
		return "unknown"
	}
}

// Event is an immutable record of one occurrence. Task is a snapshot of the
// task the event pertains to; it is ignored for Timer events.
type Event struct {
	Time int
	Type EventType
	Task Task
}

// Action is the decision returned to the driver: which task now occupies
// the CPU and which the IO device. A field equals the caller-supplied
// occupant when the pass selected nothing new for that resource.
type Action struct {
	CPUTask TaskID
	IOTask  TaskID
}
