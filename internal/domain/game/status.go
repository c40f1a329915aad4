package game

// Status is the lifecycle state of an attempt.
type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// CanTransitionTo reports whether an attempt may move from s to next.
// IN_PROGRESS stays IN_PROGRESS on an incorrect submission or moves to COMPLETED.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() {
		return false
	}
	switch s {
	case StatusInProgress:
		return true
	default:
		return false
	}
}
