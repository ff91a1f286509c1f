package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	customerpkg "github.com/elitephnrepair2-cpu/crm-app/customer"
	"github.com/elitephnrepair2-cpu/crm-app/realtime"
)

const requestTimeout = 10 * time.Second

// CustomerHandler bundles dependencies for customer-related HTTP handlers.
type CustomerHandler struct {
	service customerpkg.Service
	store   Prefs
	hub     *realtime.Hub
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.Service, store Prefs, hub *realtime.Hub) *CustomerHandler {
	return &CustomerHandler{service: svc, store: store, hub: hub}
}

type saveCustomerPayload struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	AltPhone *string `json:"alt_phone"`
	Email    *string `json:"email"`
}

func (p saveCustomerPayload) toRequest(location string) customerpkg.SaveCustomerRequest {
	return customerpkg.SaveCustomerRequest{
		Name:     p.Name,
		Phone:    p.Phone,
		AltPhone: p.AltPhone,
		Email:    p.Email,
		Location: location,
	}
}

// List returns the raw customer collection for the active location, newest first.
func (h *CustomerHandler) List() gin.HandlerFunc {
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Dashboard returns the filtered, grouped customer list the dashboard renders.
func (h *CustomerHandler) Dashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		location, err := resolveLocation(c, h.store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location", "detail": err.Error()})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		dashboard, err := h.service.Dashboard(ctx, location, c.Query("search"), c.Query("date"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dashboard)
	}
}

// Get returns one customer by id.
func (h *CustomerHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		customer, err := h.service.Get(ctx, id)
		if err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customer", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// Create adds a customer to the active location.
func (h *CustomerHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p saveCustomerPayload
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
		created, err := h.service.Create(ctx, p.toRequest(location))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("customers")
		c.JSON(http.StatusCreated, created)
	}
}

// Update edits an existing customer.
func (h *CustomerHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		var p saveCustomerPayload
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
		updated, err := h.service.Update(ctx, id, p.toRequest(location))
		if err != nil {
			if errors.Is(err, customerpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("customers")
		c.JSON(http.StatusOK, updated)
	}
}

// Delete removes a customer. The UI only calls this after explicit confirmation.
func (h *CustomerHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := h.service.Delete(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("customers")
		c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
	}
}
