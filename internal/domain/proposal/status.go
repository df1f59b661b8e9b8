package proposal

type Status string

const (
	StatusDraft     Status = "draft"
	StatusInReview  Status = "in_review"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// transitions is the full status machine. Absent key or empty list means
// the state is terminal.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusInReview},
	StatusInReview:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusRejected:  {StatusCancelled},
	StatusApproved:  {},
	StatusCancelled: {},
}

// ParseStatus maps a raw string onto one of the five known statuses.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	switch s {
	case StatusDraft, StatusInReview, StatusApproved, StatusRejected, StatusCancelled:
		return s, nil
	}
	return "", ErrInvalidStatus
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool { return len(transitions[s]) == 0 }
