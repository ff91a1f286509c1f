package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	customerpkg "github.com/elitephnrepair2-cpu/crm-app/customer"
	"github.com/elitephnrepair2-cpu/crm-app/entity"
	ticketpkg "github.com/elitephnrepair2-cpu/crm-app/ticket"
)

type ticketService struct {
	repo      ticketpkg.Repository
	customers customerpkg.Repository
	validate  *validator.Validate
}

// NewTicketService constructs a ticket.Service. The customer repository is
// needed to verify the foreign key before a ticket is created.
func NewTicketService(repo ticketpkg.Repository, customers customerpkg.Repository) ticketpkg.Service {
	return &ticketService{repo: repo, customers: customers, validate: validator.New()}
}

func (s *ticketService) Create(ctx context.Context, req ticketpkg.CreateTicketRequest) (*entity.RepairTicket, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	// a ticket must hang off an existing customer
	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("ticket customer lookup: %w", err)
	}
	t := &entity.RepairTicket{
		CustomerID:         req.CustomerID,
		Device:             req.Device,
		SerialNumber:       req.SerialNumber,
		ProblemDescription: req.ProblemDescription,
		Price:              req.Price,
		PaymentMethod:      req.PaymentMethod,
		HeardFrom:          req.HeardFrom,
		PromoCode:          req.PromoCode,
		Location:           req.Location,
	}
	created, err := s.repo.Store(ctx, t)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, created.ID)
}

func (s *ticketService) Get(ctx context.Context, id uuid.UUID) (*entity.RepairTicket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ticketService) List(ctx context.Context, location string) ([]entity.RepairTicket, error) {
	return s.repo.ListByLocation(ctx, location)
}

func (s *ticketService) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.RepairTicket, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFields(ctx, id, ticketpkg.SanitizeUpdateFields(fields)); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ticketService) SetPaid(ctx context.Context, id uuid.UUID, paid bool) (*entity.RepairTicket, error) {
	if err := s.repo.SetPaid(ctx, id, paid); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ticketService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
