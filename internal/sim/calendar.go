package sim

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/kyrie12138irving/Schedlab-2025-ics2-1/internal/policy"
)

// calendar holds the not-yet-replayed events ordered by (time, seq). The
// sequence number keeps events sharing a timestamp in authored order, so a
// batch reaches the policy exactly as it was written.
type calendar struct {
	rbt *redblacktree.Tree
	seq int
}

type calendarKey struct {
	time int
	seq  int
}

func calendarCmp(a, b any) int {
	ka, kb := a.(calendarKey), b.(calendarKey)
	switch {
	case ka.time < kb.time:
		return -1
	case ka.time > kb.time:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

func newCalendar() *calendar {
	return &calendar{rbt: redblacktree.NewWith(calendarCmp)}
}

func (c *calendar) add(ev policy.Event) {
	c.rbt.Put(calendarKey{time: ev.Time, seq: c.seq}, ev)
	c.seq++
}

// popBatch removes and returns every event sharing the earliest timestamp.
// It returns nil when the calendar is drained.
func (c *calendar) popBatch() []policy.Event {
	first := c.rbt.Left()
	if first == nil {
		return nil
	}
	at := first.Key.(calendarKey).time

	var batch []policy.Event
	for {
		node := c.rbt.Left()
		if node == nil || node.Key.(calendarKey).time != at {
			return batch
		}
		batch = append(batch, node.Value.(policy.Event))
		c.rbt.Remove(node.Key)
	}
}

func (c *calendar) len() int {
	return c.rbt.Size()
}
