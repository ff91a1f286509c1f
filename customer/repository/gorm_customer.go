package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	customerpkg "github.com/elitephnrepair2-cpu/crm-app/customer"
	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

// GormCustomerRepo implements customer.Repository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.Repository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) ListByLocation(ctx context.Context, location string) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerpkg.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) FindByPhone(ctx context.Context, phone, location string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ? AND location = ?", phone, location).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) Store(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) UpdateContact(ctx context.Context, id uuid.UUID, name string, email, altPhone *string) error {
	return r.db.WithContext(ctx).Model(&entity.Customer{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":      name,
			"email":     email,
			"alt_phone": altPhone,
		}).Error
}

func (r *GormCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}
