package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	kioskpkg "github.com/elitephnrepair2-cpu/crm-app/kiosk"
	"github.com/elitephnrepair2-cpu/crm-app/realtime"
)

// KioskHandler bundles dependencies for the self-service kiosk endpoints.
type KioskHandler struct {
	service kioskpkg.Service
	store   Prefs
	hub     *realtime.Hub
}

// NewKioskHandler constructs a KioskHandler.
func NewKioskHandler(svc kioskpkg.Service, store Prefs, hub *realtime.Hub) *KioskHandler {
	return &KioskHandler{service: svc, store: store, hub: hub}
}

type checkInPayload struct {
	Name               string  `json:"name" binding:"required"`
	Phone              string  `json:"phone" binding:"required"`
	Email              *string `json:"email"`
	Device             string  `json:"device" binding:"required"`
	ProblemDescription string  `json:"problem_description" binding:"required"`
	CallbackNumber     *string `json:"callback_number"`
	HeardFrom          string  `json:"heard_from" binding:"required"`
	PromoCode          string  `json:"promo_code" binding:"required"`
}

// CheckIn handles a kiosk submission: resolve-or-create the customer, create
// the ticket, then notify every connected terminal.
func (h *KioskHandler) CheckIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p checkInPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		location, err := resolveLocation(c, h.store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location", "detail": err.Error()})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		ticket, err := h.service.CheckIn(ctx, kioskpkg.CheckInRequest{
			Name:               p.Name,
			Phone:              p.Phone,
			Email:              p.Email,
			Device:             p.Device,
			ProblemDescription: p.ProblemDescription,
			CallbackNumber:     p.CallbackNumber,
			HeardFrom:          p.HeardFrom,
			PromoCode:          p.PromoCode,
			Location:           location,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "check-in failed", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("customers")
		h.hub.NotifyChanged("tickets")
		c.JSON(http.StatusCreated, ticket)
	}
}

// Exit acknowledges a kiosk exit. The PIN check runs in middleware before
// this handler is reached.
func (h *KioskHandler) Exit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "kiosk unlocked"})
	}
}
