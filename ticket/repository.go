package ticket

import (
	"context"

	"github.com/google/uuid"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

// Repository defines DB operations for repair tickets. Reads are joined:
// every ticket comes back with its customer preloaded, the way the dashboard
// and the print view consume them.
type Repository interface {
	Store(ctx context.Context, t *entity.RepairTicket) (*entity.RepairTicket, error)
	// GetByID returns the ticket with its customer inlined.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RepairTicket, error)
	// ListByLocation returns joined tickets for one store, newest first.
	ListByLocation(ctx context.Context, location string) ([]entity.RepairTicket, error)
	// UpdateFields applies a sanitized column map to one ticket.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	SetPaid(ctx context.Context, id uuid.UUID, paid bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
