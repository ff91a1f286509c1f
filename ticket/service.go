package ticket

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

// ErrNotFound is returned when the requested ticket does not exist.
var ErrNotFound = errors.New("ticket not found")

// CreateTicketRequest carries the fields for a new ticket. CustomerID must
// reference an existing customer; Location is the active session location.
type CreateTicketRequest struct {
	CustomerID         uuid.UUID
	Device             string `validate:"required"`
	SerialNumber       *string
	ProblemDescription string `validate:"required"`
	Price              *float64
	PaymentMethod      *string
	HeardFrom          *string
	PromoCode          *string
	Location           string `validate:"required"`
}

// Service exposes ticket business operations.
type Service interface {
	Create(ctx context.Context, req CreateTicketRequest) (*entity.RepairTicket, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.RepairTicket, error)
	List(ctx context.Context, location string) ([]entity.RepairTicket, error)
	// Update applies the caller's field map after stripping the identity and
	// relational columns, then returns the joined read.
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.RepairTicket, error)
	// SetPaid toggles the paid flag either way; no other field is touched.
	SetPaid(ctx context.Context, id uuid.UUID, paid bool) (*entity.RepairTicket, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
