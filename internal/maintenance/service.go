package maintenance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/hotelops-backend/pkg/db/models"
	"github.com/angelmondragon/hotelops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service runs the ticket lifecycle. Assign and Close force their status;
// Update may rewrite any field, status included.
type Service interface {
	Create(ctx context.Context, input CreateTicketInput) (*models.MaintenanceTicket, error)
	Get(ctx context.Context, id int64) (*TicketDetail, error)
	List(ctx context.Context) ([]models.MaintenanceTicket, error)
	Update(ctx context.Context, id int64, input UpdateTicketInput) (*models.MaintenanceTicket, error)
	Assign(ctx context.Context, id int64, assignedTo int64) (*models.MaintenanceTicket, error)
	Close(ctx context.Context, id int64, input CloseTicketInput) (*models.MaintenanceTicket, error)
	Delete(ctx context.Context, id int64) (*models.MaintenanceTicket, error)
}

type service struct {
	repo Repository
	tx   txRunner
	logg *logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, tx txRunner, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("maintenance repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo: repo,
		tx:   tx,
		logg: logg,
		now:  func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateTicketInput) (*models.MaintenanceTicket, error) {
	if strings.TrimSpace(input.RoomCode) == "" {
		return nil, pkgerrors.Validation("roomCode is required")
	}
	if !input.Priority.IsValid() {
		return nil, pkgerrors.Validation(fmt.Sprintf("invalid priority %q", input.Priority))
	}

	now := s.now()
	ticket := &models.MaintenanceTicket{
		RoomCode:    input.RoomCode,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      enums.TicketStatusOpen,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create ticket")
	}
	s.logTransition(ctx, ticket, input.CreatedBy)
	return ticket, nil
}

func (s *service) Get(ctx context.Context, id int64) (*TicketDetail, error) {
	var detail *TicketDetail
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		ticket, err := repo.FindByID(ctx, id)
		if err != nil {
			return wrapStorage(err, "load ticket")
		}
		detail = &TicketDetail{MaintenanceTicket: *ticket}
		if ticket.AssignedTo != nil {
			if detail.AssignedToUser, err = repo.FindUser(ctx, *ticket.AssignedTo); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load assignee")
			}
		}
		if detail.CreatedByUser, err = repo.FindUser(ctx, ticket.CreatedBy); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load creator")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *service) List(ctx context.Context) ([]models.MaintenanceTicket, error) {
	tickets, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list tickets")
	}
	if tickets == nil {
		tickets = []models.MaintenanceTicket{}
	}
	return tickets, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateTicketInput) (*models.MaintenanceTicket, error) {
	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, pkgerrors.Validation(fmt.Sprintf("invalid priority %q", *input.Priority))
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, pkgerrors.Validation(fmt.Sprintf("invalid status %q", *input.Status))
	}

	return s.mutate(ctx, id, func(ticket *models.MaintenanceTicket) {
		if input.RoomCode != nil {
			ticket.RoomCode = *input.RoomCode
		}
		if input.Description != nil {
			ticket.Description = *input.Description
		}
		if input.Priority != nil {
			ticket.Priority = *input.Priority
		}
		if input.Status != nil {
			ticket.Status = *input.Status
		}
		if input.AssignedTo != nil {
			ticket.AssignedTo = input.AssignedTo
		}
	})
}

func (s *service) Assign(ctx context.Context, id int64, assignedTo int64) (*models.MaintenanceTicket, error) {
	return s.mutate(ctx, id, func(ticket *models.MaintenanceTicket) {
		ticket.AssignedTo = &assignedTo
		ticket.Status = enums.TicketStatusInProgress
	})
}

func (s *service) Close(ctx context.Context, id int64, input CloseTicketInput) (*models.MaintenanceTicket, error) {
	return s.mutate(ctx, id, func(ticket *models.MaintenanceTicket) {
		if input.ResolutionNotes != nil {
			ticket.ResolutionNotes = input.ResolutionNotes
		}
		if input.Cost != nil {
			ticket.Cost = input.Cost
		}
		ticket.Status = enums.TicketStatusClosed
	})
}

func (s *service) Delete(ctx context.Context, id int64) (*models.MaintenanceTicket, error) {
	var ticket *models.MaintenanceTicket
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		var err error
		if ticket, err = repo.FindByID(ctx, id); err != nil {
			return wrapStorage(err, "load ticket")
		}
		if err := repo.Delete(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete ticket")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// mutate loads the ticket, applies fn and stamps a strictly later updatedAt.
func (s *service) mutate(ctx context.Context, id int64, fn func(ticket *models.MaintenanceTicket)) (*models.MaintenanceTicket, error) {
	var ticket *models.MaintenanceTicket
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		var err error
		if ticket, err = repo.FindByID(ctx, id); err != nil {
			return wrapStorage(err, "load ticket")
		}
		fn(ticket)
		ticket.UpdatedAt = s.nextUpdatedAt(ticket.UpdatedAt)
		if err := repo.Save(ctx, ticket); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update ticket")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logTransition(ctx, ticket, 0)
	return ticket, nil
}

func (s *service) nextUpdatedAt(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		return prev.UTC().Add(time.Microsecond)
	}
	return now
}

func (s *service) logTransition(ctx context.Context, ticket *models.MaintenanceTicket, actorID int64) {
	if actorID != 0 {
		ctx = s.logg.WithActorID(ctx, actorID)
	}
	ctx = s.logg.WithFields(ctx, map[string]any{
		"ticket_id": ticket.ID,
		"status":    string(ticket.Status),
		"room_code": ticket.RoomCode,
	})
	s.logg.Info(ctx, "ticket.updated")
}

func wrapStorage(err error, msg string) error {
	if err == nil {
		return nil
	}
	if pkgerrors.As(err) != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, msg)
}
