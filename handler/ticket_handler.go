package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	customerpkg "github.com/elitephnrepair2-cpu/crm-app/customer"
	"github.com/elitephnrepair2-cpu/crm-app/marketing"
	"github.com/elitephnrepair2-cpu/crm-app/realtime"
	ticketpkg "github.com/elitephnrepair2-cpu/crm-app/ticket"
)

// TicketHandler bundles dependencies for ticket-related HTTP handlers.
type TicketHandler struct {
	service ticketpkg.Service
	store   Prefs
	hub     *realtime.Hub
	tracker Tracker
}

// NewTicketHandler constructs a TicketHandler.
func NewTicketHandler(svc ticketpkg.Service, store Prefs, hub *realtime.Hub, tracker Tracker) *TicketHandler {
	return &TicketHandler{service: svc, store: store, hub: hub, tracker: tracker}
}

type createTicketPayload struct {
	CustomerID         string   `json:"customer_id" binding:"required"`
	Device             string   `json:"device" binding:"required"`
	SerialNumber       *string  `json:"serial_number"`
	ProblemDescription string   `json:"problem_description" binding:"required"`
	Price              *float64 `json:"price"`
	// PaymentOption is the form's three-way choice; PaymentOther carries the
	// free text when the option is "other".
	PaymentOption string  `json:"payment_option"`
	PaymentOther  string  `json:"payment_other"`
	HeardFrom     *string `json:"heard_from"`
	PromoCode     *string `json:"promo_code"`
}

// List returns joined tickets for the active location, newest first.
func (h *TicketHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		location, err := resolveLocation(c, h.store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location", "detail": err.Error()})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		list, err := h.service.List(ctx, location)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tickets", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Get returns one joined ticket by id.
func (h *TicketHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		ticket, err := h.service.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ticketpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load ticket", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, ticket)
	}
}

// Create opens a ticket for a previously selected customer.
func (h *TicketHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createTicketPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		customerID, err := uuid.Parse(p.CustomerID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		location, err := resolveLocation(c, h.store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location", "detail": err.Error()})
			return
		}

		req := ticketpkg.CreateTicketRequest{
			CustomerID:         customerID,
			Device:             p.Device,
			SerialNumber:       p.SerialNumber,
			ProblemDescription: p.ProblemDescription,
			Price:              p.Price,
			HeardFrom:          p.HeardFrom,
			PromoCode:          p.PromoCode,
			Location:           location,
		}
		if method := ticketpkg.PaymentMethod(p.PaymentOption, p.PaymentOther); method != "" {
			req.PaymentMethod = &method
		}

		ctx, cancel := reqCtx(c)
		defer cancel()
		created, err := h.service.Create(ctx, req)
		if err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create ticket", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("tickets")
		c.JSON(http.StatusCreated, created)
	}
}

// Update applies a partial field map to a ticket. Identity and relational
// columns are stripped server-side before the write.
func (h *TicketHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
			return
		}
		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		updated, err := h.service.Update(ctx, id, fields)
		if err != nil {
			if errors.Is(err, ticketpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update ticket", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("tickets")
		c.JSON(http.StatusOK, updated)
	}
}

type setPaidPayload struct {
	IsPaid *bool `json:"is_paid" binding:"required"`
}

// SetPaid toggles the paid flag in either direction.
func (h *TicketHandler) SetPaid() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
			return
		}
		var p setPaidPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		updated, err := h.service.SetPaid(ctx, id, *p.IsPaid)
		if err != nil {
			if errors.Is(err, ticketpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update ticket", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("tickets")
		c.JSON(http.StatusOK, updated)
	}
}

// Delete removes a ticket after explicit confirmation in the UI.
func (h *TicketHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := h.service.Delete(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete ticket", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("tickets")
		c.JSON(http.StatusOK, gin.H{"message": "ticket deleted"})
	}
}

// RepairCompleted fires the manual "Repair Completed" marketing event from
// the ticket view. The response reports tracking success; the ticket itself
// is untouched.
func (h *TicketHandler) RepairCompleted() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()

		ticket, err := h.service.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ticketpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load ticket", "detail": err.Error()})
			return
		}
		if ticket.Customer == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ticket has no customer"})
			return
		}

		settings, err := h.store.ShopSettings(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read settings", "detail": err.Error()})
			return
		}
		if settings.KlaviyoSiteID == "" {
			c.JSON(http.StatusPreconditionFailed, gin.H{"error": "configure the Klaviyo site id in settings first"})
			return
		}

		customer := ticket.Customer
		contactPhone := customer.Phone
		if customer.AltPhone != nil && *customer.AltPhone != "" {
			contactPhone = *customer.AltPhone
		}
		email := ""
		if customer.Email != nil {
			email = *customer.Email
		}
		var price interface{}
		if ticket.Price != nil {
			price = *ticket.Price
		}

		ok := h.tracker.TrackEvent(settings.KlaviyoSiteID, "Repair Completed", marketing.Profile{
			Email:     email,
			Phone:     contactPhone,
			FirstName: customer.Name,
		}, map[string]interface{}{
			"device":         ticket.Device,
			"price":          price,
			"update_phone":   contactPhone,
			"original_phone": customer.Phone,
		})

		c.JSON(http.StatusOK, gin.H{"ok": ok})
	}
}
