package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(1, "Printer on fire", "It is actually on fire", "hardware", vo.PriorityHigh, 10)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(100))
	return tk
}

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket(1, "  VPN broken  ", "Cannot connect", " network ", "", 10)
	require.NoError(t, err)

	assert.Equal(t, "VPN broken", tk.Title())
	assert.Equal(t, "network", tk.Category())
	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Equal(t, vo.PriorityMedium, tk.Priority(), "empty priority falls back to medium")
	require.NotNil(t, tk.CreatedBy())
	assert.Equal(t, uint(10), *tk.CreatedBy())
	assert.Nil(t, tk.AssignedTo())
	assert.Nil(t, tk.ResolvedAt())
	assert.Nil(t, tk.ClosedAt())
}

func TestNewTicket_Validation(t *testing.T) {
	_, err := NewTicket(0, "t", "d", "", vo.PriorityLow, 10)
	assert.Error(t, err)

	_, err = NewTicket(1, "", "d", "", vo.PriorityLow, 10)
	assert.Error(t, err)

	_, err = NewTicket(1, "t", "d", "", vo.Priority("urgent"), 10)
	assert.Error(t, err)

	_, err = NewTicket(1, "t", "d", "", vo.PriorityLow, 0)
	assert.Error(t, err)

	_, err = NewTicket(1, "t", "d", strings.Repeat("x", 51), vo.PriorityLow, 10)
	assert.Error(t, err)
}

func TestTicket_ChangeStatus_AnyTransition(t *testing.T) {
	// There is no transition graph; closed straight back to open is legal.
	tk := newTestTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
	assert.Equal(t, vo.StatusClosed, tk.Status())

	require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
	assert.Equal(t, vo.StatusOpen, tk.Status())

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))

	assert.Error(t, tk.ChangeStatus(vo.Status("archived")))
}

func TestTicket_ChangeStatus_TimestampsSetOnce(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	require.NotNil(t, tk.ResolvedAt())
	firstResolved := *tk.ResolvedAt()

	// Reopening does not clear the timestamp.
	require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
	require.NotNil(t, tk.ResolvedAt())
	assert.Equal(t, firstResolved, *tk.ResolvedAt())

	// Resolving again keeps the first timestamp.
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	assert.Equal(t, firstResolved, *tk.ResolvedAt())

	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
	require.NotNil(t, tk.ClosedAt())
	firstClosed := *tk.ClosedAt()

	require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
	assert.Equal(t, firstClosed, *tk.ClosedAt())
}

func TestTicket_ChangeStatus_SameStatusNoop(t *testing.T) {
	tk := newTestTicket(t)
	before := tk.UpdatedAt()

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
	assert.Equal(t, before, tk.UpdatedAt())
}

func TestTicket_ChangePriority(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.ChangePriority(vo.PriorityCritical))
	assert.Equal(t, vo.PriorityCritical, tk.Priority())

	assert.Error(t, tk.ChangePriority(vo.Priority("urgent")))
}

func TestTicket_AssignTo(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.AssignTo(55))
	require.NotNil(t, tk.AssignedTo())
	assert.Equal(t, uint(55), *tk.AssignedTo())

	// Reassignment replaces the assignee.
	require.NoError(t, tk.AssignTo(56))
	assert.Equal(t, uint(56), *tk.AssignedTo())

	assert.Error(t, tk.AssignTo(0))

	tk.Unassign()
	assert.Nil(t, tk.AssignedTo())
}

func TestTicket_UpdateDetails(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.UpdateDetails("New title", "New description", "software", []string{"hardware"}))
	assert.Equal(t, "New title", tk.Title())
	assert.Equal(t, "New description", tk.Description())
	assert.Equal(t, "software", tk.Category())
	assert.Equal(t, []string{"hardware"}, tk.Tags())

	// Nil tags keep the previous value.
	require.NoError(t, tk.UpdateDetails("New title", "New description", "software", nil))
	assert.Equal(t, []string{"hardware"}, tk.Tags())

	assert.Error(t, tk.UpdateDetails("", "d", "", nil))
}

func TestTicket_AttachTicketCode(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.AttachTicketCode("TC-M4P7QW2H"))
	require.NotNil(t, tk.TicketCode())
	assert.Equal(t, "TC-M4P7QW2H", *tk.TicketCode())

	// Attaching the same code again is a no-op.
	require.NoError(t, tk.AttachTicketCode("TC-M4P7QW2H"))

	assert.Error(t, tk.AttachTicketCode("TC-OTHER"))
	assert.Error(t, tk.AttachTicketCode(""))
}
