package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	appointmentpkg "github.com/elitephnrepair2-cpu/crm-app/appointment"
	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

type GormAppointmentRepo struct{ db *gorm.DB }

func NewGormAppointmentRepo(db *gorm.DB) appointmentpkg.Repository {
	return &GormAppointmentRepo{db: db}
}

func (r *GormAppointmentRepo) ListByLocation(ctx context.Context, location string) ([]entity.Appointment, error) {
	var list []entity.Appointment
	if err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("date ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var a entity.Appointment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appointmentpkg.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *GormAppointmentRepo) Update(ctx context.Context, a *entity.Appointment) (*entity.Appointment, error) {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *GormAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Appointment{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *GormAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Appointment{}, "id = ?", id).Error
}
