package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/elitephnrepair2-cpu/crm-app/marketing"
	"github.com/elitephnrepair2-cpu/crm-app/prefs"
)

type fakePrefs struct {
	location string
	settings prefs.ShopSettings
}

func (f *fakePrefs) CurrentLocation(ctx context.Context) (string, error) { return f.location, nil }
func (f *fakePrefs) SetCurrentLocation(ctx context.Context, location string) error {
	f.location = location
	return nil
}
func (f *fakePrefs) ShopSettings(ctx context.Context) (prefs.ShopSettings, error) {
	return f.settings, nil
}
func (f *fakePrefs) SaveShopSettings(ctx context.Context, settings prefs.ShopSettings) error {
	f.settings = settings
	return nil
}

type fakeTracker struct {
	siteID  string
	event   string
	profile marketing.Profile
	ok      bool
}

func (f *fakeTracker) TrackEvent(siteID, eventName string, profile marketing.Profile, properties map[string]interface{}) bool {
	f.siteID = siteID
	f.event = eventName
	f.profile = profile
	return f.ok
}

func newSettingsRouter(store *fakePrefs, tracker *fakeTracker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSettingsHandler(store, tracker)
	r := gin.New()
	r.GET("/settings", h.GetSettings())
	r.PUT("/settings", h.SaveSettings())
	r.POST("/settings/test-marketing", h.TestMarketing())
	r.GET("/location", h.GetLocation())
	r.PUT("/location", h.SetLocation())
	return r
}

func TestSetLocationRoundTrip(t *testing.T) {
	store := &fakePrefs{location: prefs.DefaultLocation}
	r := newSettingsRouter(store, &fakeTracker{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/location", strings.NewReader(`{"location":"Port Arthur"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Port Arthur", store.location)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/location", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"location":"Port Arthur"}`, w.Body.String())
}

func TestSetLocationRejectsEmptyBody(t *testing.T) {
	r := newSettingsRouter(&fakePrefs{}, &fakeTracker{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/location", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveSettingsReplacesRecord(t *testing.T) {
	store := &fakePrefs{settings: prefs.DefaultShopSettings()}
	r := newSettingsRouter(store, &fakeTracker{})

	body := `{"business_name":"Elite Phone Repair","kiosk_pin":"4455","klaviyo_site_id":"AbC123"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "4455", store.settings.KioskPIN)
	require.Equal(t, "AbC123", store.settings.KlaviyoSiteID)
	// Omitted optional fields clear out; the form always posts the full record.
	require.Empty(t, store.settings.Address)
}

func TestTestMarketingUsesConfiguredSiteID(t *testing.T) {
	store := &fakePrefs{settings: prefs.ShopSettings{KlaviyoSiteID: "AbC123"}}
	tracker := &fakeTracker{ok: true}
	r := newSettingsRouter(store, tracker)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/settings/test-marketing", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true}`, w.Body.String())
	require.Equal(t, "AbC123", tracker.siteID)
	require.Equal(t, "API Connection Test", tracker.event)
	require.Equal(t, "test@elitephonerepair.com", tracker.profile.Email)
}

func TestTestMarketingReportsFailure(t *testing.T) {
	store := &fakePrefs{settings: prefs.ShopSettings{KlaviyoSiteID: "AbC123"}}
	r := newSettingsRouter(store, &fakeTracker{ok: false})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/settings/test-marketing", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":false}`, w.Body.String())
}
