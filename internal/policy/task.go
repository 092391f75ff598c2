package policy

// TaskID uniquely identifies a live task.
type TaskID int

// Idle is the reserved TaskID meaning "no task": a CPU or IO device
// occupied by Idle is unoccupied.
const Idle TaskID = 0

// Priority is assigned at task creation and never changed by the policy.
type Priority int

const (
	High Priority = iota
	Low
)

func (p Priority) String() string {
	switch p {
	case High:
		return "high"
	case Low:
		return "low"
	default:
		return "unknown"
	}
}

// Status marks a task that just came back from IO. Such a task scores
// better on its next CPU selection; the mark is dropped when the task is
// dispatched.
type Status int

const (
	StatusNormal Status = iota
	StatusJustFinishedIO
)

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusJustFinishedIO:
		return "just-finished-io"
	default:
		return "unknown"
	}
}

// Task is one schedulable unit. The queues store Task values, not pointers,
// so every queued entry is a snapshot owned by the engine.
type Task struct {
	ID       TaskID
	Priority Priority
	Deadline int // logical time the task should ideally finish by
	Status   Status
}
