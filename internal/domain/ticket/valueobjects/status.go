package valueobjects

import "fmt"

// TicketStatus is open until someone resolves the ticket. An explicit
// status update may move it back to open.
type TicketStatus string

const (
	StatusOpen     TicketStatus = "open"
	StatusResolved TicketStatus = "resolved"
)

func NewTicketStatus(s string) (TicketStatus, error) {
	switch ts := TicketStatus(s); ts {
	case StatusOpen, StatusResolved:
		return ts, nil
	}
	return "", fmt.Errorf("invalid ticket status: %q (want %s or %s)", s, StatusOpen, StatusResolved)
}

func (ts TicketStatus) String() string { return string(ts) }

func (ts TicketStatus) IsValid() bool { return ts == StatusOpen || ts == StatusResolved }

func (ts TicketStatus) IsOpen() bool { return ts == StatusOpen }

func (ts TicketStatus) IsResolved() bool { return ts == StatusResolved }
