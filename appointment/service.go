package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

var (
	// ErrNotFound is returned when the requested appointment does not exist.
	ErrNotFound = errors.New("appointment not found")
	// ErrBadStatus is returned for a status outside the appointment enum.
	ErrBadStatus = errors.New("invalid appointment status")
)

// UpdateAppointmentRequest carries the editable appointment fields.
type UpdateAppointmentRequest struct {
	CustomerName string `validate:"required"`
	Phone        string `validate:"required"`
	Brand        string `validate:"required"`
	Model        string `validate:"required"`
	Issue        string `validate:"required"`
	Date         string `validate:"required"`
	TimeWindow   string `validate:"required"`
	Status       entity.AppointmentStatus
}

// Service exposes appointment business operations.
type Service interface {
	// List applies the requested filter mode and returns the sorted display list.
	List(ctx context.Context, location string, mode FilterMode, customDate string) ([]entity.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateAppointmentRequest) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (*entity.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
