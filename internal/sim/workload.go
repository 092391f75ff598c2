package sim

import (
	"fmt"
	"os"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"github.com/kyrie12138irving/Schedlab-2025-ics2-1/internal/policy"
)

// A workload file is an authored event list:
//
//	events:
//	  - time: 0
//	    type: arrival
//	    task: {id: 1, priority: high, deadline: 20}
//	  - time: 4
//	    type: timer
type workloadFile struct {
	Events []workloadEvent `yaml:"events"`
}

type workloadEvent struct {
	Time int          `yaml:"time"`
	Type string       `yaml:"type"`
	Task workloadTask `yaml:"task"`
}

type workloadTask struct {
	ID       int    `yaml:"id"`
	Priority string `yaml:"priority"`
	Deadline int    `yaml:"deadline"`
}

// LoadWorkload reads a YAML event list and converts it into policy events.
func LoadWorkload(path string) ([]policy.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload: %w", err)
	}

	var wf workloadFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parse workload: %w", err)
	}

	events := make([]policy.Event, 0, len(wf.Events))
	for i, we := range wf.Events {
		ev, err := we.toEvent()
		if err != nil {
			return nil, fmt.Errorf("workload event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (we workloadEvent) toEvent() (policy.Event, error) {
	typ, err := parseEventType(we.Type)
	if err != nil {
		return policy.Event{}, err
	}
	ev := policy.Event{Time: we.Time, Type: typ}

	// timer events carry no task
	if typ == policy.Timer {
		return ev, nil
	}

	if we.Task.ID <= 0 {
		return policy.Event{}, fmt.Errorf("task id must be positive, got %d", we.Task.ID)
	}
	prio, err := parsePriority(we.Task.Priority)
	if err != nil {
		return policy.Event{}, err
	}
	ev.Task = policy.Task{
		ID:       policy.TaskID(we.Task.ID),
		Priority: prio,
		Deadline: we.Task.Deadline,
	}
	return ev, nil
}

func parseEventType(s string) (policy.EventType, error) {
	switch strings.ToLower(s) {
	case "arrival":
		return policy.Arrival, nil
	case "io-request", "io_request":
		return policy.IoRequest, nil
	case "io-end", "io_end":
		return policy.IoEnd, nil
	case "finish":
		return policy.Finish, nil
	case "timer":
		return policy.Timer, nil
	default:
		return 0, fmt.Errorf("unknown event type %q", s)
	}
}

func parsePriority(s string) (policy.Priority, error) {
	switch strings.ToLower(s) {
	case "high":
		return policy.High, nil
	case "low":
		return policy.Low, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}
