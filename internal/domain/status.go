package domain

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether moving from s to next is legal.
// The lifecycle is monotonic: processing may become completed or failed,
// terminal states never change.
func (s Status) CanTransition(next Status) bool {
	return s == StatusProcessing && next.Terminal()
}
