package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	customerpkg "github.com/elitephnrepair2-cpu/crm-app/customer"
	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

// customerService implements customer.Service.
type customerService struct {
	repo     customerpkg.Repository
	validate *validator.Validate
	// now is swappable for deterministic grouping in tests.
	now func() time.Time
}

// NewCustomerService constructs a customer.Service backed by the provided repository.
func NewCustomerService(repo customerpkg.Repository) customerpkg.Service {
	return &customerService{
		repo:     repo,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *customerService) List(ctx context.Context, location string) ([]entity.Customer, error) {
	return s.repo.ListByLocation(ctx, location)
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) Create(ctx context.Context, req customerpkg.SaveCustomerRequest) (*entity.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	c := &entity.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		AltPhone: req.AltPhone,
		Email:    req.Email,
		Location: req.Location,
	}
	return s.repo.Store(ctx, c)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req customerpkg.SaveCustomerRequest) (*entity.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Phone = req.Phone
	c.AltPhone = req.AltPhone
	c.Email = req.Email
	c.Location = req.Location
	return s.repo.Update(ctx, c)
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *customerService) Dashboard(ctx context.Context, location, search, filterDate string) (*customerpkg.Dashboard, error) {
	list, err := s.repo.ListByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	return customerpkg.BuildDashboard(list, search, filterDate, s.now()), nil
}
