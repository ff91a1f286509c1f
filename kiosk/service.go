package kiosk

import (
	"context"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
	"github.com/elitephnrepair2-cpu/crm-app/marketing"
	"github.com/elitephnrepair2-cpu/crm-app/prefs"
)

// CheckInRequest is a self-service kiosk submission. The marketing
// attribution fields (HeardFrom, PromoCode) are required on this path even
// though staff-created tickets leave them empty.
type CheckInRequest struct {
	Name               string `validate:"required"`
	Phone              string `validate:"required"`
	Email              *string
	Device             string `validate:"required"`
	ProblemDescription string `validate:"required"`
	CallbackNumber     *string
	HeardFrom          string `validate:"required"`
	PromoCode          string `validate:"required"`
	Location           string `validate:"required"`
}

// Tracker sends best-effort marketing events; the kiosk never fails a
// check-in over a tracking problem.
type Tracker interface {
	TrackEvent(siteID, eventName string, profile marketing.Profile, properties map[string]interface{}) bool
}

// SettingsSource supplies the device's shop settings (for the Klaviyo site id).
type SettingsSource interface {
	ShopSettings(ctx context.Context) (prefs.ShopSettings, error)
}

// Service exposes the kiosk check-in operation.
type Service interface {
	// CheckIn resolves or creates the customer by phone+location, then
	// creates a ticket for it. The customer write and the ticket write are
	// two separate remote operations: a ticket failure after a committed
	// customer write surfaces as overall failure without rollback.
	CheckIn(ctx context.Context, req CheckInRequest) (*entity.RepairTicket, error)
}
