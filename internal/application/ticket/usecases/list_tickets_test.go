package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestListTicketsUseCase_Execute(t *testing.T) {
	t.Run("builds filter from query", func(t *testing.T) {
		var gotFilter ticket.TicketFilter
		mockTickets := &mockTicketRepository{
			ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
				gotFilter = filter
				return []*ticket.Ticket{newTestTicket(t, 1, vo.StatusOpen)}, 1, nil
			},
		}

		useCase := NewListTicketsUseCase(mockTickets, &mockUserRepository{}, &mockCatalogRepository{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ListTicketsQuery{
			Status:        "aberto",
			TipoChamadoID: 2,
			Busca:         "impressora",
			SortBy:        "created_at",
			SortOrder:     "desc",
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Tickets, 1)

		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, vo.StatusOpen, *gotFilter.Status)
		require.NotNil(t, gotFilter.TipoChamadoID)
		assert.Equal(t, uint(2), *gotFilter.TipoChamadoID)
		assert.Nil(t, gotFilter.UsuarioID)
		assert.Equal(t, "impressora", gotFilter.Busca)
		assert.Equal(t, "created_at", gotFilter.SortBy)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		listCalled := false
		mockTickets := &mockTicketRepository{
			ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
				listCalled = true
				return nil, 0, nil
			},
		}

		useCase := NewListTicketsUseCase(mockTickets, &mockUserRepository{}, &mockCatalogRepository{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ListTicketsQuery{Status: "pendente"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.False(t, listCalled)
	})
}

func TestListMyTicketsUseCase_Execute(t *testing.T) {
	t.Run("scopes to the calling user", func(t *testing.T) {
		gotUsuarioID := uint(0)
		mockTickets := &mockTicketRepository{
			GetUserTicketsFunc: func(ctx context.Context, usuarioID uint, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
				gotUsuarioID = usuarioID
				return []*ticket.Ticket{newTestTicket(t, 1, vo.StatusInProgress)}, 1, nil
			},
		}

		useCase := NewListMyTicketsUseCase(mockTickets, &mockUserRepository{}, &mockCatalogRepository{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ListMyTicketsQuery{UsuarioID: 10, Status: "em_andamento"})

		require.NoError(t, err)
		assert.Equal(t, uint(10), gotUsuarioID)
		require.Len(t, result.Tickets, 1)
		assert.Equal(t, vo.StatusInProgress.String(), result.Tickets[0].Status)
	})

	t.Run("missing user is rejected", func(t *testing.T) {
		useCase := NewListMyTicketsUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockCatalogRepository{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ListMyTicketsQuery{})

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
