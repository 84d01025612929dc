package ticket

import (
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// TimelineEntry is one step in a ticket's derived status history.
type TimelineEntry struct {
	Status vo.TicketStatus
	At     *time.Time
}

// Timeline derives the status history shown on the ticket detail view:
// aberto is always present (creation time), em_andamento appears once the
// ticket has left aberto, and fechado appears only for closed tickets,
// carrying the closedAt timestamp.
func Timeline(t *Ticket) []TimelineEntry {
	createdAt := t.CreatedAt()
	entries := []TimelineEntry{
		{Status: vo.StatusOpen, At: &createdAt},
	}

	if !t.Status().IsOpen() {
		entries = append(entries, TimelineEntry{Status: vo.StatusInProgress})
	}

	if t.Status().IsClosed() {
		entries = append(entries, TimelineEntry{
			Status: vo.StatusClosed,
			At:     t.ClosedAt(),
		})
	}

	return entries
}
