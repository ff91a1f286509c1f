package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

// Repository defines DB operations for appointments. There is no Store:
// appointments are created by the booking site, this service only manages
// existing rows.
type Repository interface {
	// ListByLocation returns appointments for one store ordered by date ascending.
	ListByLocation(ctx context.Context, location string) ([]entity.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, a *entity.Appointment) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
