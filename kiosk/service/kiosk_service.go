package service

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	customerpkg "github.com/elitephnrepair2-cpu/crm-app/customer"
	"github.com/elitephnrepair2-cpu/crm-app/entity"
	kioskpkg "github.com/elitephnrepair2-cpu/crm-app/kiosk"
	"github.com/elitephnrepair2-cpu/crm-app/marketing"
	ticketpkg "github.com/elitephnrepair2-cpu/crm-app/ticket"
)

type kioskService struct {
	customers customerpkg.Repository
	tickets   ticketpkg.Repository
	tracker   kioskpkg.Tracker
	settings  kioskpkg.SettingsSource
	validate  *validator.Validate
}

// NewKioskService constructs a kiosk.Service.
func NewKioskService(
	customers customerpkg.Repository,
	tickets ticketpkg.Repository,
	tracker kioskpkg.Tracker,
	settings kioskpkg.SettingsSource,
) kioskpkg.Service {
	return &kioskService{
		customers: customers,
		tickets:   tickets,
		tracker:   tracker,
		settings:  settings,
		validate:  validator.New(),
	}
}

func (s *kioskService) CheckIn(ctx context.Context, req kioskpkg.CheckInRequest) (*entity.RepairTicket, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	// Resolve-or-create by exact phone within the active location. This is a
	// check-then-act against the remote store: two simultaneous check-ins
	// with the same new phone can both miss and insert duplicates. Accepted
	// for single-kiosk usage.
	existing, err := s.customers.FindByPhone(ctx, req.Phone, req.Location)
	if err != nil {
		return nil, fmt.Errorf("kiosk: customer lookup: %w", err)
	}

	resolved := existing
	if existing != nil {
		// Re-check-in overwrites the stored contact data for this phone; the
		// callback number becomes the alternate phone. No merge prompt.
		if err := s.customers.UpdateContact(ctx, existing.ID, req.Name, req.Email, req.CallbackNumber); err != nil {
			return nil, fmt.Errorf("kiosk: customer update: %w", err)
		}
	} else {
		created, err := s.customers.Store(ctx, &entity.Customer{
			Name:     req.Name,
			Phone:    req.Phone,
			Email:    req.Email,
			AltPhone: req.CallbackNumber,
			Location: req.Location,
		})
		if err != nil {
			return nil, fmt.Errorf("kiosk: customer create: %w", err)
		}
		resolved = created
	}

	ticket, err := s.tickets.Store(ctx, &entity.RepairTicket{
		CustomerID:         resolved.ID,
		Device:             req.Device,
		ProblemDescription: req.ProblemDescription,
		HeardFrom:          &req.HeardFrom,
		PromoCode:          &req.PromoCode,
		Location:           req.Location,
	})
	if err != nil {
		// The customer write above already committed; there is no rollback.
		return nil, fmt.Errorf("kiosk: ticket create: %w", err)
	}

	s.trackCheckIn(ctx, req)

	return s.tickets.GetByID(ctx, ticket.ID)
}

// trackCheckIn fires the "Checked In" marketing event. Best-effort only.
func (s *kioskService) trackCheckIn(ctx context.Context, req kioskpkg.CheckInRequest) {
	settings, err := s.settings.ShopSettings(ctx)
	if err != nil {
		log.Println("kiosk: settings read failed, skipping marketing event:", err)
		return
	}
	if settings.KlaviyoSiteID == "" {
		return
	}

	contactPhone := req.Phone
	if req.CallbackNumber != nil && *req.CallbackNumber != "" {
		contactPhone = *req.CallbackNumber
	}
	email := ""
	if req.Email != nil {
		email = *req.Email
	}

	s.tracker.TrackEvent(settings.KlaviyoSiteID, "Checked In", marketing.Profile{
		Email:     email,
		Phone:     contactPhone,
		FirstName: req.Name,
	}, map[string]interface{}{
		"device":  req.Device,
		"problem": req.ProblemDescription,
	})
}
