package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	appointmentpkg "github.com/elitephnrepair2-cpu/crm-app/appointment"
	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

type appointmentService struct {
	repo     appointmentpkg.Repository
	validate *validator.Validate
	now      func() time.Time
}

// NewAppointmentService constructs an appointment.Service backed by the provided repository.
func NewAppointmentService(repo appointmentpkg.Repository) appointmentpkg.Service {
	return &appointmentService{repo: repo, validate: validator.New(), now: time.Now}
}

func (s *appointmentService) List(ctx context.Context, location string, mode appointmentpkg.FilterMode, customDate string) ([]entity.Appointment, error) {
	list, err := s.repo.ListByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	filtered := appointmentpkg.Filter(list, mode, customDate, s.now())
	appointmentpkg.Sort(filtered)
	return filtered, nil
}

func (s *appointmentService) Get(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *appointmentService) Update(ctx context.Context, id uuid.UUID, req appointmentpkg.UpdateAppointmentRequest) (*entity.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if req.Status != "" && !entity.ValidAppointmentStatus(req.Status) {
		return nil, appointmentpkg.ErrBadStatus
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.CustomerName = req.CustomerName
	a.Phone = req.Phone
	a.Brand = req.Brand
	a.Model = req.Model
	a.Issue = req.Issue
	a.Date = req.Date
	a.TimeWindow = req.TimeWindow
	if req.Status != "" {
		a.Status = req.Status
	}
	return s.repo.Update(ctx, a)
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (*entity.Appointment, error) {
	if !entity.ValidAppointmentStatus(status) {
		return nil, appointmentpkg.ErrBadStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *appointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
