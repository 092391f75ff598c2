package policy

import "math"

// Engine owns the persistent scheduling state: a logical clock and one
// four-level feedback-queue ring per resource (CPU and IO). It performs no
// IO and has no internal locking; the driver must serialize calls to Decide.
type Engine struct {
	now int
	cpu levelQueues
	io  levelQueues
}

func NewEngine() *Engine {
	return &Engine{}
}

// Now returns the logical clock: the timestamp of the last folded event.
func (e *Engine) Now() int {
	return e.now
}

// Decide folds the event batch into the queue state, then picks the next
// occupant for the CPU and, if the device is idle, for IO. cpuTask and
// ioTask are the current occupants (Idle meaning unoccupied) and are
// returned unchanged when no task is selected for that resource.
//
// Events are applied in slice order; each one overwrites the clock with its
// timestamp. Removal-triggering events for unknown ids are no-ops.
// Duplicate Arrival events are not deduplicated: a re-arrival of a queued
// id produces a second queue entry.
func (e *Engine) Decide(events []Event, cpuTask, ioTask TaskID) Action {
	act := Action{CPUTask: cpuTask, IOTask: ioTask}

	// 1) fold every event into the queue state
	for _, ev := range events {
		e.now = ev.Time
		t := ev.Task

		switch ev.Type {
		case Arrival:
			e.cpu.push(entryLevel(t.Priority), t)
		case IoRequest:
			e.cpu.removeByID(t.ID)
			e.io.push(entryLevel(t.Priority), t)
		case IoEnd:
			e.io.removeByID(t.ID)
			t.Status = StatusJustFinishedIO
			e.cpu.push(entryLevel(t.Priority), t)
		case Finish:
			e.cpu.removeByID(t.ID)
		case Timer:
			// nothing to fold; the selection passes below run regardless
		}
	}

	// 2) pick the next CPU task
	if id, ok := e.selectAndMigrate(&e.cpu); ok {
		act.CPUTask = id
	}

	// 3) pick the next IO task, only when the device is idle: the policy
	// has no authority to preempt an in-progress IO operation
	if ioTask == Idle {
		if id, ok := e.selectAndMigrate(&e.io); ok {
			act.IOTask = id
		}
	}

	return act
}

// selectAndMigrate scans levels highest-first and dispatches the minimal-
// score task from the first non-empty level, moving it one level down the
// ring. Ties go to the earliest-queued entry. An overdue task still wins an
// otherwise-empty level; the scan never falls through past queued work.
func (e *Engine) selectAndMigrate(q *levelQueues) (TaskID, bool) {
	for level := 0; level < NumLevels; level++ {
		best := -1
		bestScore := math.MaxFloat64
		for i, t := range q[level] {
			if s := score(t, e.now); s < bestScore {
				bestScore = s
				best = i
			}
		}
		if best < 0 {
			continue
		}

		next := (level + 1) % NumLevels
		chosen := q[level][best]
		q[level] = append(q[level][:best], q[level][best+1:]...)
		// the IO-end boost applies until the task is dispatched, then drops
		chosen.Status = StatusNormal
		q.push(next, chosen)
		return chosen.ID, true
	}
	return Idle, false
}
