package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

// ErrNotFound is returned when the requested customer does not exist.
var ErrNotFound = errors.New("customer not found")

// SaveCustomerRequest carries the editable customer fields. Location is the
// active session location, never taken from the stored row.
type SaveCustomerRequest struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	AltPhone *string
	Email    *string
	Location string `validate:"required"`
}

// Service exposes customer-related business operations.
type Service interface {
	List(ctx context.Context, location string) ([]entity.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Create(ctx context.Context, req SaveCustomerRequest) (*entity.Customer, error)
	Update(ctx context.Context, id uuid.UUID, req SaveCustomerRequest) (*entity.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Dashboard applies the list-view search and date filters and groups the
	// result into the today/yesterday/older buckets.
	Dashboard(ctx context.Context, location, search, filterDate string) (*Dashboard, error)
}
