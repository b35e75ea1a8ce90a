package entity

import "fmt"

// Status is the closed set of appointment workflow states. The column itself
// stays TEXT so future states can be added without a migration; everything
// crossing the application boundary goes through ParseStatus.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown appointment status %q", s)
}

// legalTransitions holds the staff-driven workflow: pending may be confirmed
// or cancelled, confirmed may be cancelled or completed. Cancelled and
// completed are terminal.
var legalTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func CanTransition(from, to Status) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return len(legalTransitions[s]) == 0
}
