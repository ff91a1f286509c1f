package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuoteStatus enumerates the lifecycle of a price quote lead.
type QuoteStatus string

const (
	QuoteNew       QuoteStatus = "new"       // fresh lead, nobody has reached out yet
	QuoteContacted QuoteStatus = "contacted" // shop has called/texted the lead
	QuoteScheduled QuoteStatus = "scheduled" // repair visit booked
	QuoteApproved  QuoteStatus = "approved"  // customer accepted the price
	QuoteDeclined  QuoteStatus = "declined"  // customer passed
	QuoteClosed    QuoteStatus = "closed"    // done, no further follow-up
)

// ValidQuoteStatus reports whether s is a member of the quote status enum.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteNew, QuoteContacted, QuoteScheduled, QuoteApproved, QuoteDeclined, QuoteClosed:
		return true
	}
	return false
}

// Quote is a standalone price-quote lead. Contact fields are denormalized on
// purpose so walk-in and web leads need no customer record.
type Quote struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerName *string        `json:"customer_name,omitempty" gorm:"type:text;default:null"`
	Phone        *string        `json:"phone,omitempty" gorm:"type:text;default:null"`
	Email        *string        `json:"email,omitempty" gorm:"type:text;default:null"`
	Brand        *string        `json:"brand,omitempty" gorm:"type:text;default:null"`
	Model        *string        `json:"model,omitempty" gorm:"type:text;default:null"`
	Issue        *string        `json:"issue,omitempty" gorm:"type:text;default:null"`
	Notes        *string        `json:"notes,omitempty" gorm:"type:text;default:null"`
	Price        *float64       `json:"price,omitempty" gorm:"type:double precision;default:null"`
	IsManual     bool           `json:"is_manual" gorm:"default:false"`
	Status       QuoteStatus    `json:"status" gorm:"type:text;index;not null;default:'new'"`
	Location     string         `json:"location" gorm:"type:text;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
