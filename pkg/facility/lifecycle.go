package facility

import (
	"facilityhub.dev/facility-service/pkg/models"
)

const (
	// EscalationCap is the highest escalation level a complaint can reach.
	EscalationCap = 3
	// UrgencyThreshold is the level at or above which a complaint is urgent.
	UrgencyThreshold = 2

	autoEscalateAfterDays = 7
)

// CanTransition is the complaint state machine: pending -> in-progress ->
// resolved, with closed reachable from any non-terminal state. Resolved and
// closed are terminal.
func CanTransition(from, to models.ComplaintStatus) bool {
	switch from {
	case models.ComplaintPending:
		return to == models.ComplaintInProgress || to == models.ComplaintResolved || to == models.ComplaintClosed
	case models.ComplaintInProgress:
		return to == models.ComplaintResolved || to == models.ComplaintClosed
	default:
		return false
	}
}

// AutoEscalationLevel recomputes the escalation level of a pending,
// high-priority complaint from its age: min(cap, ageDays/7) once it is at
// least a week old. The result never drops below the current level, so the
// derived value stays monotonic even though it is recomputed on every save.
func AutoEscalationLevel(current int, priority models.ComplaintPriority, ageDays int) int {
	if priority != models.PriorityHigh || ageDays < autoEscalateAfterDays {
		return current
	}
	level := ageDays / autoEscalateAfterDays
	if level > EscalationCap {
		level = EscalationCap
	}
	if level < current {
		return current
	}
	return level
}

// NextEscalation is one manual escalation step, capped.
func NextEscalation(current int) int {
	if current >= EscalationCap {
		return EscalationCap
	}
	return current + 1
}

// applyEscalation folds a new level into the complaint, raising the urgency
// flag once the threshold is reached. The flag is never lowered here.
func applyEscalation(c *models.Complaint, level int) {
	c.EscalationLevel = level
	if level >= UrgencyThreshold {
		c.IsUrgent = true
	}
}

// autoEscalate applies the age-based policy. Called on every save while the
// complaint is pending.
func autoEscalate(c *models.Complaint, ageDays int) {
	if c.Status != models.ComplaintPending {
		return
	}
	applyEscalation(c, AutoEscalationLevel(c.EscalationLevel, c.Priority, ageDays))
}
