package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
	quotepkg "github.com/elitephnrepair2-cpu/crm-app/quote"
)

type GormQuoteRepo struct{ db *gorm.DB }

func NewGormQuoteRepo(db *gorm.DB) quotepkg.Repository { return &GormQuoteRepo{db: db} }

func (r *GormQuoteRepo) ListByLocation(ctx context.Context, location string) ([]entity.Quote, error) {
	var list []entity.Quote
	if err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormQuoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var q entity.Quote
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, quotepkg.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *GormQuoteRepo) Store(ctx context.Context, q *entity.Quote) (*entity.Quote, error) {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func (r *GormQuoteRepo) Update(ctx context.Context, q *entity.Quote) (*entity.Quote, error) {
	if err := r.db.WithContext(ctx).Save(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func (r *GormQuoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Quote{}, "id = ?", id).Error
}
