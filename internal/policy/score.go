package policy

// Scoring constants. Lower score wins the level.
const (
	// IoBoostFactor shrinks the slack of a task that just finished IO so it
	// beats an equally-deadlined normal task at the same level.
	IoBoostFactor = 0.4
	// NormalFactor scores an on-time task by its plain slack.
	NormalFactor = 1.0
	// OverduePenalty lifts overdue tasks above every on-time score. Assumes
	// deadline horizons stay under 1e5 time units; a larger on-time slack
	// would invert the on-time/overdue ordering.
	OverduePenalty = 1e5
)

// score ranks a task for dispatch at logical time now. On-time tasks score
// by slack, discounted if they just finished IO. Overdue tasks land near
// OverduePenalty, above every on-time score; the overshoot is subtracted,
// so the longest-overdue scores lowest among them.
func score(t Task, now int) float64 {
	gap := float64(t.Deadline - now)
	switch {
	case t.Deadline > now && t.Status == StatusJustFinishedIO:
		return IoBoostFactor * gap
	case t.Deadline > now:
		return NormalFactor * gap
	default:
		return OverduePenalty + gap
	}
}
