package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

// Repository specifies customer related database operations.
type Repository interface {
	// ListByLocation returns all customers for one store, newest first.
	ListByLocation(ctx context.Context, location string) ([]entity.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// FindByPhone matches on exact phone within one location. Returns
	// (nil, nil) when no row matches; kiosk check-in depends on that.
	FindByPhone(ctx context.Context, phone, location string) (*entity.Customer, error)
	Store(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	// UpdateContact overwrites name/email/alt_phone in place (kiosk re-check-in).
	UpdateContact(ctx context.Context, id uuid.UUID, name string, email, altPhone *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
