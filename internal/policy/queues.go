package policy

// NumLevels is the number of feedback-queue levels per resource.
const NumLevels = 4

// levelQueues holds one resource's feedback queues. Level 0 is the highest
// priority; migration wraps from the last level back to level 0, so tasks
// cycle through the ring instead of sinking to a bottom tier.
type levelQueues [NumLevels][]Task

// entryLevel is where a task first lands: level 0 for high priority,
// level 2 for low.
func entryLevel(p Priority) int {
	if p == High {
		return 0
	}
	return 2
}

func (q *levelQueues) push(level int, t Task) {
	q[level] = append(q[level], t)
}

// removeByID drops every entry with the given id from every level.
// Removing an id that is not queued anywhere is a no-op.
func (q *levelQueues) removeByID(id TaskID) {
	for i := range q {
		kept := q[i][:0]
		for _, t := range q[i] {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		q[i] = kept
	}
}

// size is the total entry count across all levels.
func (q *levelQueues) size() int {
	n := 0
	for i := range q {
		n += len(q[i])
	}
	return n
}
