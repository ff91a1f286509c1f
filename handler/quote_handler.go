package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
	quotepkg "github.com/elitephnrepair2-cpu/crm-app/quote"
	"github.com/elitephnrepair2-cpu/crm-app/realtime"
)

// QuoteHandler bundles dependencies for quote-related HTTP handlers.
type QuoteHandler struct {
	service quotepkg.Service
	store   Prefs
	hub     *realtime.Hub
}

// NewQuoteHandler constructs a QuoteHandler.
func NewQuoteHandler(svc quotepkg.Service, store Prefs, hub *realtime.Hub) *QuoteHandler {
	return &QuoteHandler{service: svc, store: store, hub: hub}
}

type saveQuotePayload struct {
	CustomerName *string  `json:"customer_name"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
	Brand        *string  `json:"brand"`
	Model        *string  `json:"model"`
	Issue        *string  `json:"issue"`
	Notes        *string  `json:"notes"`
	Price        *float64 `json:"price"`
	Status       string   `json:"status"`
}

func (p saveQuotePayload) toRequest(location string, isManual bool) quotepkg.SaveQuoteRequest {
	return quotepkg.SaveQuoteRequest{
		CustomerName: p.CustomerName,
		Phone:        p.Phone,
		Email:        p.Email,
		Brand:        p.Brand,
		Model:        p.Model,
		Issue:        p.Issue,
		Notes:        p.Notes,
		Price:        p.Price,
		IsManual:     isManual,
		Status:       entity.QuoteStatus(p.Status),
		Location:     location,
	}
}

// List returns quotes for the active location, newest first.
func (h *QuoteHandler) List() gin.HandlerFunc {
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list quotes", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Create saves a new quote. Quotes entered through this form are manual.
func (h *QuoteHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p saveQuotePayload
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
		created, err := h.service.Create(ctx, p.toRequest(location, true))
		if err != nil {
			if errors.Is(err, quotepkg.ErrBadStatus) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quote", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("quotes")
		c.JSON(http.StatusCreated, created)
	}
}

// Update edits an existing quote.
func (h *QuoteHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
			return
		}
		var p saveQuotePayload
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
		updated, err := h.service.Update(ctx, id, p.toRequest(location, true))
		if err != nil {
			switch {
			case errors.Is(err, quotepkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, quotepkg.ErrBadStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update quote", "detail": err.Error()})
			}
			return
		}
		h.hub.NotifyChanged("quotes")
		c.JSON(http.StatusOK, updated)
	}
}

// Delete removes a quote after explicit confirmation in the UI.
func (h *QuoteHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := h.service.Delete(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete quote", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("quotes")
		c.JSON(http.StatusOK, gin.H{"message": "quote deleted"})
	}
}
