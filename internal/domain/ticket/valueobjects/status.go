package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "aberto"
	StatusInProgress TicketStatus = "em_andamento"
	StatusClosed     TicketStatus = "fechado"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusClosed:     true,
}

// Transitions are forward-only: a ticket never reopens and fechado is
// terminal. The direct aberto→fechado edge is allowed.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusInProgress,
		StatusClosed,
	},
	StatusInProgress: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowed, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// Label returns the human-facing pt-BR label for the status.
func (ts TicketStatus) Label() string {
	switch ts {
	case StatusOpen:
		return "Aberto"
	case StatusInProgress:
		return "Em Andamento"
	case StatusClosed:
		return "Fechado"
	}
	return string(ts)
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
