package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
	quotepkg "github.com/elitephnrepair2-cpu/crm-app/quote"
)

type quoteService struct {
	repo     quotepkg.Repository
	validate *validator.Validate
}

// NewQuoteService constructs a quote.Service backed by the provided repository.
func NewQuoteService(repo quotepkg.Repository) quotepkg.Service {
	return &quoteService{repo: repo, validate: validator.New()}
}

func (s *quoteService) List(ctx context.Context, location string) ([]entity.Quote, error) {
	return s.repo.ListByLocation(ctx, location)
}

func (s *quoteService) Get(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *quoteService) Create(ctx context.Context, req quotepkg.SaveQuoteRequest) (*entity.Quote, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entity.QuoteNew
	}
	if !entity.ValidQuoteStatus(status) {
		return nil, quotepkg.ErrBadStatus
	}
	q := &entity.Quote{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Brand:        req.Brand,
		Model:        req.Model,
		Issue:        req.Issue,
		Notes:        req.Notes,
		Price:        req.Price,
		IsManual:     req.IsManual,
		Status:       status,
		Location:     req.Location,
	}
	return s.repo.Store(ctx, q)
}

func (s *quoteService) Update(ctx context.Context, id uuid.UUID, req quotepkg.SaveQuoteRequest) (*entity.Quote, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if req.Status != "" && !entity.ValidQuoteStatus(req.Status) {
		return nil, quotepkg.ErrBadStatus
	}
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q.CustomerName = req.CustomerName
	q.Phone = req.Phone
	q.Email = req.Email
	q.Brand = req.Brand
	q.Model = req.Model
	q.Issue = req.Issue
	q.Notes = req.Notes
	q.Price = req.Price
	q.IsManual = req.IsManual
	if req.Status != "" {
		q.Status = req.Status
	}
	q.Location = req.Location
	return s.repo.Update(ctx, q)
}

func (s *quoteService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
