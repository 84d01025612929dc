package usecases

import (
	"context"
	"io"

	"helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.ChamadoDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.ChamadoDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListMyTicketsExecutor interface {
	Execute(ctx context.Context, query ListMyTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.ChamadoDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

// FileUpload is one incoming multipart file.
type FileUpload struct {
	FileName string
	Size     int64
	Reader   io.Reader
}

// StoredFile identifies a persisted upload.
type StoredFile struct {
	StoredName string
	Link       string
}

// AttachmentStore persists uploaded ticket files and serves them back by
// public link.
type AttachmentStore interface {
	Store(ctx context.Context, upload FileUpload) (*StoredFile, error)
	Remove(ctx context.Context, storedName string) error
}

// Sanitizer strips markup from user-entered text before it is stored.
type Sanitizer interface {
	Sanitize(s string) string
}

// AssignmentNotifier tells a responsavel they were assigned a ticket.
// Implementations may be a no-op when email is disabled.
type AssignmentNotifier interface {
	NotifyAssignment(ctx context.Context, toEmail, toName, ticketNome string, ticketID uint) error
}
