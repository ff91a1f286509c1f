package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a shop customer scoped to one store location.
// Name and Phone are mandatory at creation; the rest is optional contact data.
type Customer struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string         `json:"name" gorm:"type:text;not null"`
	Phone     string         `json:"phone" gorm:"type:text;index;not null"`
	AltPhone  *string        `json:"alt_phone,omitempty" gorm:"type:text;default:null"`
	Email     *string        `json:"email,omitempty" gorm:"type:text;default:null"`
	Location  string         `json:"location" gorm:"type:text;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
