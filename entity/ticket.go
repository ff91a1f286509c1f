package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RepairTicket captures one device drop-off for a customer. It is the only
// entity with an enforced foreign key: every ticket belongs to exactly one
// customer. Location is inherited from the session that created the ticket.
type RepairTicket struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID         uuid.UUID `json:"customer_id" gorm:"type:uuid;index;not null"`
	Customer           *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Device             string    `json:"device" gorm:"type:text;not null"`
	SerialNumber       *string   `json:"serial_number,omitempty" gorm:"type:text;default:null"`
	ProblemDescription string    `json:"problem_description" gorm:"type:text;not null"`
	Price              *float64  `json:"price,omitempty" gorm:"type:double precision;default:null"`
	PaymentMethod      *string   `json:"payment_method,omitempty" gorm:"type:text;default:null"`
	IsPaid             bool      `json:"is_paid" gorm:"default:false;index"`
	HeardFrom          *string   `json:"heard_from,omitempty" gorm:"type:text;default:null"`
	PromoCode          *string   `json:"promo_code,omitempty" gorm:"type:text;default:null"`
	Location           string    `json:"location" gorm:"type:text;index"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}

func (RepairTicket) TableName() string { return "tickets" }
