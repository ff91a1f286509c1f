package api

import (
	"context"

	"github.com/elitephnrepair2-cpu/crm-app/marketing"
	"github.com/elitephnrepair2-cpu/crm-app/prefs"
)

// Prefs is the slice of the preference store the handlers need.
// *prefs.Store satisfies it.
type Prefs interface {
	CurrentLocation(ctx context.Context) (string, error)
	SetCurrentLocation(ctx context.Context, location string) error
	ShopSettings(ctx context.Context) (prefs.ShopSettings, error)
	SaveShopSettings(ctx context.Context, settings prefs.ShopSettings) error
}

// Tracker sends best-effort marketing events.
type Tracker interface {
	TrackEvent(siteID, eventName string, profile marketing.Profile, properties map[string]interface{}) bool
}
