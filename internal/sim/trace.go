package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/kyrie12138irving/Schedlab-2025-ics2-1/internal/policy"
)

// traceWriter appends one CSV row per decision cycle.
type traceWriter struct {
	f *os.File
	w *csv.Writer
}

func newTraceWriter(path string) (*traceWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)

	// write header
	w.Write([]string{"cycle", "time", "events", "cpu_task", "io_task"})
	w.Flush()
	return &traceWriter{f: f, w: w}, nil
}

func (tw *traceWriter) record(cycle, time, events int, act policy.Action) {
	rec := []string{
		strconv.Itoa(cycle),
		strconv.Itoa(time),
		strconv.Itoa(events),
		strconv.Itoa(int(act.CPUTask)),
		strconv.Itoa(int(act.IOTask)),
	}
	tw.w.Write(rec)
	tw.w.Flush()
}

func (tw *traceWriter) close() error {
	tw.w.Flush()
	return tw.f.Close()
}
