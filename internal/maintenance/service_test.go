package maintenance

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/angelmondragon/hotelops-backend/pkg/db/dbtest"
	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      *service
	adminID  int64
	techID   int64
	frozenAt time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := dbtest.Open(t)
	conn := client.DB()

	admin := models.User{Email: "admin@hotel.com", Name: "Admin", Role: enums.UserRoleAdmin}
	require.NoError(t, conn.Create(&admin).Error)
	tech := models.User{Email: "maintenance@hotel.com", Name: "Tech", Role: enums.UserRoleMaintenance}
	require.NoError(t, conn.Create(&tech).Error)

	svc, err := NewService(NewRepository(conn), client, logger.New(logger.Options{ServiceName: "test", Output: io.Discard}))
	require.NoError(t, err)

	// a frozen clock makes every transition land on the same instant
	frozen := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	impl := svc.(*service)
	impl.now = func() time.Time { return frozen }

	return &fixture{svc: impl, adminID: admin.ID, techID: tech.ID, frozenAt: frozen}
}

func TestTicketLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ticket, err := f.svc.Create(ctx, CreateTicketInput{
		RoomCode:    "101",
		Description: "Leaking tap",
		Priority:    enums.TicketPriorityHigh,
		CreatedBy:   f.adminID,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.TicketStatusOpen, ticket.Status)
	assert.Nil(t, ticket.AssignedTo)
	created := ticket.UpdatedAt

	assigned, err := f.svc.Assign(ctx, ticket.ID, f.techID)
	require.NoError(t, err)
	assert.Equal(t, enums.TicketStatusInProgress, assigned.Status)
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, f.techID, *assigned.AssignedTo)
	assert.True(t, assigned.UpdatedAt.After(created), "assign must advance updatedAt")

	notes := "Replaced washer"
	cost := 12.5
	closed, err := f.svc.Close(ctx, ticket.ID, CloseTicketInput{ResolutionNotes: &notes, Cost: &cost})
	require.NoError(t, err)
	assert.Equal(t, enums.TicketStatusClosed, closed.Status)
	require.NotNil(t, closed.ResolutionNotes)
	assert.Equal(t, notes, *closed.ResolutionNotes)
	require.NotNil(t, closed.Cost)
	assert.Equal(t, cost, *closed.Cost)
	assert.True(t, closed.UpdatedAt.After(assigned.UpdatedAt), "close must advance updatedAt")

	detail, err := f.svc.Get(ctx, ticket.ID)
	require.NoError(t, err)
	assert.True(t, detail.UpdatedAt.Equal(closed.UpdatedAt))
	require.NotNil(t, detail.AssignedToUser)
	assert.Equal(t, "Tech", detail.AssignedToUser.Name)
	require.NotNil(t, detail.CreatedByUser)
	assert.Equal(t, "Admin", detail.CreatedByUser.Name)
}

func TestUpdateCanReopenClosedTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ticket, err := f.svc.Create(ctx, CreateTicketInput{RoomCode: "202", Description: "AC noise", Priority: enums.TicketPriorityLow, CreatedBy: f.adminID})
	require.NoError(t, err)
	_, err = f.svc.Close(ctx, ticket.ID, CloseTicketInput{})
	require.NoError(t, err)

	open := enums.TicketStatusOpen
	room := "203"
	updated, err := f.svc.Update(ctx, ticket.ID, UpdateTicketInput{Status: &open, RoomCode: &room})
	require.NoError(t, err)
	assert.Equal(t, enums.TicketStatusOpen, updated.Status)
	assert.Equal(t, "203", updated.RoomCode)
	assert.Equal(t, "AC noise", updated.Description)

	bad := enums.TicketStatus("Parked")
	_, err = f.svc.Update(ctx, ticket.ID, UpdateTicketInput{Status: &bad})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestCloseWithoutFieldsKeepsStoredCost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ticket, err := f.svc.Create(ctx, CreateTicketInput{RoomCode: "305", Description: "Broken lamp", Priority: enums.TicketPriorityMedium, CreatedBy: f.adminID})
	require.NoError(t, err)
	notes := "Bulb swapped"
	cost := 4.75
	_, err = f.svc.Close(ctx, ticket.ID, CloseTicketInput{ResolutionNotes: &notes, Cost: &cost})
	require.NoError(t, err)

	open := enums.TicketStatusOpen
	_, err = f.svc.Update(ctx, ticket.ID, UpdateTicketInput{Status: &open})
	require.NoError(t, err)

	closed, err := f.svc.Close(ctx, ticket.ID, CloseTicketInput{})
	require.NoError(t, err)
	assert.Equal(t, enums.TicketStatusClosed, closed.Status)
	require.NotNil(t, closed.Cost)
	assert.Equal(t, cost, *closed.Cost)
	require.NotNil(t, closed.ResolutionNotes)
	assert.Equal(t, notes, *closed.ResolutionNotes)

	detail, err := f.svc.Get(ctx, ticket.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Cost)
	assert.Equal(t, cost, *detail.Cost)
}

func TestDetailWithoutAssignee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ticket, err := f.svc.Create(ctx, CreateTicketInput{RoomCode: "301", Description: "Bulb", Priority: enums.TicketPriorityMedium, CreatedBy: f.adminID})
	require.NoError(t, err)

	detail, err := f.svc.Get(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.AssignedToUser)
	require.NotNil(t, detail.CreatedByUser)
}

func TestListNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, CreateTicketInput{RoomCode: "1", Description: "a", Priority: enums.TicketPriorityLow, CreatedBy: f.adminID})
	require.NoError(t, err)
	f.svc.now = func() time.Time { return f.frozenAt.Add(time.Minute) }
	second, err := f.svc.Create(ctx, CreateTicketInput{RoomCode: "2", Description: "b", Priority: enums.TicketPriorityLow, CreatedBy: f.adminID})
	require.NoError(t, err)

	tickets, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, second.ID, tickets[0].ID)
	assert.Equal(t, first.ID, tickets[1].ID)
}

func TestMissingTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Assign(ctx, 999, f.techID)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, "Ticket not found", pkgerrors.As(err).PublicMessage())

	_, err = f.svc.Close(ctx, 999, CloseTicketInput{})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	_, err = f.svc.Get(ctx, 999)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	_, err = f.svc.Delete(ctx, 999)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestDeleteReturnsTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ticket, err := f.svc.Create(ctx, CreateTicketInput{RoomCode: "404", Description: "Door", Priority: enums.TicketPriorityUrgent, CreatedBy: f.adminID})
	require.NoError(t, err)

	deleted, err := f.svc.Delete(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, deleted.ID)
	assert.Equal(t, "404", deleted.RoomCode)

	tickets, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestCreateValidatesPriority(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), CreateTicketInput{RoomCode: "1", Priority: "Someday", CreatedBy: f.adminID})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}
