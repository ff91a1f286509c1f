package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus enumerates the lifecycle of a booked appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCheckedIn AppointmentStatus = "checked_in"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// ValidAppointmentStatus reports whether s is a member of the appointment status enum.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentCheckedIn,
		AppointmentCompleted, AppointmentNoShow:
		return true
	}
	return false
}

// Appointment is a booked repair visit. Rows are created by the booking site,
// not by this service; we only edit, advance status, and delete them.
// Date is a plain "YYYY-MM-DD" string and TimeWindow free text like "10:00-11:00".
type Appointment struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerName string            `json:"customer_name" gorm:"type:text;not null"`
	Phone        string            `json:"phone" gorm:"type:text;not null"`
	Brand        string            `json:"brand" gorm:"type:text;not null"`
	Model        string            `json:"model" gorm:"type:text;not null"`
	Issue        string            `json:"issue" gorm:"type:text;not null"`
	Date         string            `json:"date" gorm:"type:text;index;not null"`
	TimeWindow   string            `json:"time_window" gorm:"type:text;not null"`
	Status       AppointmentStatus `json:"status" gorm:"type:text;index;not null;default:'scheduled'"`
	Location     string            `json:"location" gorm:"type:text;index"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `json:"-" gorm:"index"`
}
