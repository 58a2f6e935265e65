package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "In Progress"
	StatusResolved   TicketStatus = "Resolved"
	StatusCancelled  TicketStatus = "Cancelled"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusCancelled:  true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsCancelled() bool {
	return ts == StatusCancelled
}

// IsFinished reports whether the ticket is closed out (Resolved or Cancelled).
func (ts TicketStatus) IsFinished() bool {
	return ts == StatusResolved || ts == StatusCancelled
}

// SettableByRequester reports whether a requester without management rights may move
// their own ticket into this status.
func (ts TicketStatus) SettableByRequester() bool {
	return ts == StatusOpen || ts == StatusCancelled
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

// AllStatuses returns the statuses in workflow order.
func AllStatuses() []TicketStatus {
	return []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusCancelled}
}
