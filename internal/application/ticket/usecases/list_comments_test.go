package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
)

func TestListCommentsUseCase_Execute_RequesterExcludesInternal(t *testing.T) {
	existing := reconstructTestTicket(t, 5, vo.StatusOpen)

	var capturedInclude bool
	ticketRepo := &mockTicketRepository{
		FindByIDInScopeFunc: func(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	commentRepo := &mockCommentRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
			capturedInclude = includeInternal
			return nil, nil
		},
	}
	uc := NewListCommentsUseCase(ticketRepo, commentRepo, &mockRenderer{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListCommentsQuery{
		Actor:    testActor(authorization.RoleRequester),
		TicketID: 5,
	})
	require.NoError(t, err)
	assert.False(t, capturedInclude, "requesters must not query internal comments")

	_, err = uc.Execute(context.Background(), ListCommentsQuery{
		Actor:    testActor(authorization.RoleAgent),
		TicketID: 5,
	})
	require.NoError(t, err)
	assert.True(t, capturedInclude)
}

func TestListCommentsUseCase_Execute_RendersMarkdown(t *testing.T) {
	existing := reconstructTestTicket(t, 5, vo.StatusOpen)
	author := uint(10)
	comment, err := ticket.NewComment(5, &author, "**bold**", false)
	require.NoError(t, err)
	require.NoError(t, comment.SetID(1))

	ticketRepo := &mockTicketRepository{
		FindByIDInScopeFunc: func(ctx context.Context, id uint, scope ticket.AccessScope) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	commentRepo := &mockCommentRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
			return []*ticket.Comment{comment}, nil
		},
	}
	renderer := &mockRenderer{
		RenderFunc: func(content string) (string, error) {
			return "<p><strong>bold</strong></p>", nil
		},
	}
	uc := NewListCommentsUseCase(ticketRepo, commentRepo, renderer, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListCommentsQuery{
		Actor:    testActor(authorization.RoleAgent),
		TicketID: 5,
	})
	require.NoError(t, err)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, "**bold**", result.Comments[0].Content)
	assert.Equal(t, "<p><strong>bold</strong></p>", result.Comments[0].ContentHTML)
}
