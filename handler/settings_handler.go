package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitephnrepair2-cpu/crm-app/marketing"
	"github.com/elitephnrepair2-cpu/crm-app/prefs"
)

// SettingsHandler exposes the device-local preference slots.
type SettingsHandler struct {
	store   Prefs
	tracker Tracker
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(store Prefs, tracker Tracker) *SettingsHandler {
	return &SettingsHandler{store: store, tracker: tracker}
}

// GetSettings returns the shop settings, seeding defaults on first read.
func (h *SettingsHandler) GetSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := reqCtx(c)
		defer cancel()
		settings, err := h.store.ShopSettings(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read settings", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

type saveSettingsPayload struct {
	BusinessName  string `json:"business_name" binding:"required"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	WarrantyTerms string `json:"warranty_terms"`
	KioskPIN      string `json:"kiosk_pin" binding:"required"`
	KlaviyoSiteID string `json:"klaviyo_site_id"`
}

// SaveSettings replaces the shop settings record.
func (h *SettingsHandler) SaveSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p saveSettingsPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		err := h.store.SaveShopSettings(ctx, prefs.ShopSettings{
			BusinessName:  p.BusinessName,
			Address:       p.Address,
			Phone:         p.Phone,
			WarrantyTerms: p.WarrantyTerms,
			KioskPIN:      p.KioskPIN,
			KlaviyoSiteID: p.KlaviyoSiteID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "settings saved"})
	}
}

// GetLocation returns the device's active store location.
func (h *SettingsHandler) GetLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := reqCtx(c)
		defer cancel()
		location, err := h.store.CurrentLocation(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read location", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"location": location})
	}
}

type setLocationPayload struct {
	Location string `json:"location" binding:"required"`
}

// SetLocation switches the device's active store location.
func (h *SettingsHandler) SetLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p setLocationPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := h.store.SetCurrentLocation(ctx, p.Location); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save location", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"location": p.Location})
	}
}

// TestMarketing fires the "API Connection Test" event so the operator can
// verify the configured site id. Tracking failure is reported, not raised.
func (h *SettingsHandler) TestMarketing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := reqCtx(c)
		defer cancel()
		settings, err := h.store.ShopSettings(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read settings", "detail": err.Error()})
			return
		}
		ok := h.tracker.TrackEvent(settings.KlaviyoSiteID, "API Connection Test", marketing.Profile{
			Email: "test@elitephonerepair.com",
		}, nil)
		c.JSON(http.StatusOK, gin.H{"ok": ok})
	}
}
