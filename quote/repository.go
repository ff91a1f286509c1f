package quote

import (
	"context"

	"github.com/google/uuid"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

// Repository defines DB operations for quotes.
type Repository interface {
	ListByLocation(ctx context.Context, location string) ([]entity.Quote, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	Store(ctx context.Context, q *entity.Quote) (*entity.Quote, error)
	Update(ctx context.Context, q *entity.Quote) (*entity.Quote, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
