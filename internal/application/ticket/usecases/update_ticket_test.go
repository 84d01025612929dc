package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestUpdateTicketUseCase_Execute_StatusTransitions(t *testing.T) {
	tests := []struct {
		name      string
		from      vo.TicketStatus
		to        string
		expectErr bool
	}{
		{name: "aberto to em_andamento", from: vo.StatusOpen, to: "em_andamento"},
		{name: "aberto straight to fechado", from: vo.StatusOpen, to: "fechado"},
		{name: "em_andamento to fechado", from: vo.StatusInProgress, to: "fechado"},
		{name: "same status is a no-op", from: vo.StatusInProgress, to: "em_andamento"},
		{name: "fechado cannot reopen", from: vo.StatusClosed, to: "aberto", expectErr: true},
		{name: "em_andamento cannot go back", from: vo.StatusInProgress, to: "aberto", expectErr: true},
		{name: "unknown status", from: vo.StatusOpen, to: "pendente", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tkt := newTestTicket(t, 1, tt.from)
			updateCalled := false
			mockTickets := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return tkt, nil
				},
				UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					updateCalled = true
					return nil
				},
			}

			useCase := NewUpdateTicketUseCase(mockTickets, &mockUserRepository{}, &mockCatalogRepository{}, &mockSanitizer{}, &mockAssignmentNotifier{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
				TicketID: 1,
				Status:   strPtr(tt.to),
			})

			if tt.expectErr {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.False(t, updateCalled)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, updateCalled)
			assert.Equal(t, tt.to, result.Status)
			if tt.to == "fechado" {
				assert.NotNil(t, result.ClosedAt)
			}
		})
	}
}

func TestUpdateTicketUseCase_Execute_Assignment(t *testing.T) {
	t.Run("assigns TI user and notifies", func(t *testing.T) {
		tkt := newTestTicket(t, 1, vo.StatusOpen)
		tech := newTestUser(t, 30, authorization.RoleAdmin, 1)

		notified := false
		notifier := &mockAssignmentNotifier{
			NotifyAssignmentFunc: func(ctx context.Context, toEmail, toName, ticketNome string, ticketID uint) error {
				notified = true
				assert.Equal(t, "carlos@ti.gov.br", toEmail)
				assert.Equal(t, uint(1), ticketID)
				return nil
			},
		}
		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return tkt, nil
			},
		}
		mockUsers := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return tech, nil
			},
		}

		useCase := NewUpdateTicketUseCase(mockTickets, mockUsers, &mockCatalogRepository{}, &mockSanitizer{}, notifier, &mockLogger{})
		result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
			TicketID:      1,
			ResponsavelID: uintPtr(30),
		})

		require.NoError(t, err)
		require.NotNil(t, result.Responsavel)
		assert.Equal(t, uint(30), result.Responsavel.ID)
		assert.True(t, notified)
	})

	t.Run("rejects non-TI responsavel", func(t *testing.T) {
		tkt := newTestTicket(t, 1, vo.StatusOpen)
		clerk := newTestUser(t, 31, authorization.RoleClient, 2)

		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return tkt, nil
			},
		}
		mockUsers := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return clerk, nil
			},
		}
		mockCatalog := &mockCatalogRepository{
			GetUserTypeFunc: func(ctx context.Context, id uint) (*catalog.UserType, error) {
				return &catalog.UserType{ID: id, Status: "UBS"}, nil
			},
		}

		useCase := NewUpdateTicketUseCase(mockTickets, mockUsers, mockCatalog, &mockSanitizer{}, &mockAssignmentNotifier{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
			TicketID:      1,
			ResponsavelID: uintPtr(31),
		})

		require.Error(t, err)
		assert.Nil(t, result)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("re-assigning the same responsavel does not notify again", func(t *testing.T) {
		tkt := newTestTicket(t, 1, vo.StatusOpen)
		require.NoError(t, tkt.AssignTo(30))

		notified := false
		notifier := &mockAssignmentNotifier{
			NotifyAssignmentFunc: func(ctx context.Context, toEmail, toName, ticketNome string, ticketID uint) error {
				notified = true
				return nil
			},
		}
		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return tkt, nil
			},
		}

		useCase := NewUpdateTicketUseCase(mockTickets, &mockUserRepository{}, &mockCatalogRepository{}, &mockSanitizer{}, notifier, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdateTicketCommand{
			TicketID:      1,
			ResponsavelID: uintPtr(30),
		})

		require.NoError(t, err)
		assert.False(t, notified)
	})

	t.Run("zero responsavel clears assignment", func(t *testing.T) {
		tkt := newTestTicket(t, 1, vo.StatusOpen)
		require.NoError(t, tkt.AssignTo(30))

		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return tkt, nil
			},
		}

		useCase := NewUpdateTicketUseCase(mockTickets, &mockUserRepository{}, &mockCatalogRepository{}, &mockSanitizer{}, &mockAssignmentNotifier{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
			TicketID:      1,
			ResponsavelID: uintPtr(0),
		})

		require.NoError(t, err)
		assert.Nil(t, result.Responsavel)
	})
}

func TestUpdateTicketUseCase_Execute_PrazoAndObservacao(t *testing.T) {
	tkt := newTestTicket(t, 1, vo.StatusOpen)
	prazo := time.Now().Add(48 * time.Hour)

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockTickets, &mockUserRepository{}, &mockCatalogRepository{}, &mockSanitizer{}, &mockAssignmentNotifier{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   1,
		Prazo:      &prazo,
		Observacao: strPtr("Aguardando peça de reposição"),
	})

	require.NoError(t, err)
	require.NotNil(t, result.Prazo)
	assert.Equal(t, prazo.Unix(), result.Prazo.Unix())
	assert.Equal(t, "Aguardando peça de reposição", result.Observacao)
}
