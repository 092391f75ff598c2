package sim

import (
	"log/slog"

	"github.com/kyrie12138irving/Schedlab-2025-ics2-1/internal/policy"
)

// Runner replays an authored event workload through the policy engine and
// tracks which task occupies the CPU and the IO device after each decision
// cycle. It invents no timing of its own: one cycle happens per distinct
// timestamp the workload authored, with all same-time events in one batch.
type Runner struct {
	engine *policy.Engine
	cal    *calendar
	log    *slog.Logger
	trace  *traceWriter

	cpuTask policy.TaskID
	ioTask  policy.TaskID
}

func NewRunner(events []policy.Event, log *slog.Logger) *Runner {
	cal := newCalendar()
	for _, ev := range events {
		cal.add(ev)
	}
	return &Runner{
		engine:  policy.NewEngine(),
		cal:     cal,
		log:     log,
		cpuTask: policy.Idle,
		ioTask:  policy.Idle,
	}
}

// EnableTrace opens the given path for CSV logging of decisions.
// Must be called before Run.
func (r *Runner) EnableTrace(path string) error {
	tw, err := newTraceWriter(path)
	if err != nil {
		return err
	}
	r.trace = tw
	return nil
}

// Occupants returns the current CPU and IO occupant ids.
func (r *Runner) Occupants() (cpu, io policy.TaskID) {
	return r.cpuTask, r.ioTask
}

// Run drains the calendar. It returns the number of decision cycles run.
func (r *Runner) Run() (int, error) {
	cycle := 0
	for r.cal.len() > 0 {
		batch := r.cal.popBatch()

		// 1) release resources the batch frees up, before deciding: a
		// finished or IO-bound task no longer occupies the CPU, and a task
		// whose IO completed no longer occupies the device
		for _, ev := range batch {
			switch ev.Type {
			case policy.Finish, policy.IoRequest:
				if ev.Task.ID == r.cpuTask {
					r.cpuTask = policy.Idle
				}
			case policy.IoEnd:
				if ev.Task.ID == r.ioTask {
					r.ioTask = policy.Idle
				}
			}
		}

		// 2) one decision cycle
		act := r.engine.Decide(batch, r.cpuTask, r.ioTask)
		r.cpuTask, r.ioTask = act.CPUTask, act.IOTask

		// 3) report
		r.log.Info("cycle",
			"n", cycle,
			"time", r.engine.Now(),
			"events", len(batch),
			"cpu", int(act.CPUTask),
			"io", int(act.IOTask),
		)
		if r.trace != nil {
			r.trace.record(cycle, r.engine.Now(), len(batch), act)
		}
		cycle++
	}

	if r.trace != nil {
		if err := r.trace.close(); err != nil {
			return cycle, err
		}
	}
	return cycle, nil
}
