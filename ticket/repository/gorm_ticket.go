package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
	ticketpkg "github.com/elitephnrepair2-cpu/crm-app/ticket"
)

type GormTicketRepo struct{ db *gorm.DB }

func NewGormTicketRepo(db *gorm.DB) ticketpkg.Repository { return &GormTicketRepo{db: db} }

func (r *GormTicketRepo) Store(ctx context.Context, t *entity.RepairTicket) (*entity.RepairTicket, error) {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *GormTicketRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.RepairTicket, error) {
	var t entity.RepairTicket
	if err := r.db.WithContext(ctx).Preload("Customer").First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticketpkg.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *GormTicketRepo) ListByLocation(ctx context.Context, location string) ([]entity.RepairTicket, error) {
	var list []entity.RepairTicket
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("location = ?", location).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormTicketRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.RepairTicket{}).Where("id = ?", id).
		Updates(fields).Error
}

func (r *GormTicketRepo) SetPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	return r.db.WithContext(ctx).Model(&entity.RepairTicket{}).Where("id = ?", id).
		Update("is_paid", paid).Error
}

func (r *GormTicketRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.RepairTicket{}, "id = ?", id).Error
}
