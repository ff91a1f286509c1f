package quote

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

var (
	// ErrNotFound is returned when the requested quote does not exist.
	ErrNotFound = errors.New("quote not found")
	// ErrBadStatus is returned for a status outside the quote enum.
	ErrBadStatus = errors.New("invalid quote status")
)

// SaveQuoteRequest carries the quote form fields. Every contact field is
// optional; quotes are deliberately decoupled from customer records.
type SaveQuoteRequest struct {
	CustomerName *string
	Phone        *string
	Email        *string
	Brand        *string
	Model        *string
	Issue        *string
	Notes        *string
	Price        *float64
	IsManual     bool
	Status       entity.QuoteStatus
	Location     string `validate:"required"`
}

// Service exposes quote business operations.
type Service interface {
	List(ctx context.Context, location string) ([]entity.Quote, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	Create(ctx context.Context, req SaveQuoteRequest) (*entity.Quote, error)
	Update(ctx context.Context, id uuid.UUID, req SaveQuoteRequest) (*entity.Quote, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
