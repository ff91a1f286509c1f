package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appointmentpkg "github.com/elitephnrepair2-cpu/crm-app/appointment"
	"github.com/elitephnrepair2-cpu/crm-app/entity"
	"github.com/elitephnrepair2-cpu/crm-app/realtime"
)

// AppointmentHandler bundles dependencies for appointment-related HTTP handlers.
type AppointmentHandler struct {
	service appointmentpkg.Service
	store   Prefs
	hub     *realtime.Hub
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc appointmentpkg.Service, store Prefs, hub *realtime.Hub) *AppointmentHandler {
	return &AppointmentHandler{service: svc, store: store, hub: hub}
}

// List returns appointments filtered by ?filter= (all|today|tomorrow|week|custom)
// and ?date= for the custom mode, sorted for display.
func (h *AppointmentHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		location, err := resolveLocation(c, h.store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location", "detail": err.Error()})
			return
		}
		mode := appointmentpkg.ParseFilterMode(c.Query("filter"))
		ctx, cancel := reqCtx(c)
		defer cancel()
		list, err := h.service.List(ctx, location, mode, c.Query("date"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// Get returns one appointment by id.
func (h *AppointmentHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		appt, err := h.service.Get(ctx, id)
		if err != nil {
			if errors.Is(err, appointmentpkg.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load appointment", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}

type updateAppointmentPayload struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Issue        string `json:"issue" binding:"required"`
	Date         string `json:"date" binding:"required"`
	TimeWindow   string `json:"time_window" binding:"required"`
	Status       string `json:"status"`
}

// Update edits an existing appointment.
func (h *AppointmentHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
			return
		}
		var p updateAppointmentPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		updated, err := h.service.Update(ctx, id, appointmentpkg.UpdateAppointmentRequest{
			CustomerName: p.CustomerName,
			Phone:        p.Phone,
			Brand:        p.Brand,
			Model:        p.Model,
			Issue:        p.Issue,
			Date:         p.Date,
			TimeWindow:   p.TimeWindow,
			Status:       entity.AppointmentStatus(p.Status),
		})
		if err != nil {
			switch {
			case errors.Is(err, appointmentpkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, appointmentpkg.ErrBadStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update appointment", "detail": err.Error()})
			}
			return
		}
		h.hub.NotifyChanged("appointments")
		c.JSON(http.StatusOK, updated)
	}
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus advances (or rewinds) the appointment status.
func (h *AppointmentHandler) UpdateStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
			return
		}
		var p updateStatusPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		updated, err := h.service.UpdateStatus(ctx, id, entity.AppointmentStatus(p.Status))
		if err != nil {
			switch {
			case errors.Is(err, appointmentpkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, appointmentpkg.ErrBadStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status", "detail": err.Error()})
			}
			return
		}
		h.hub.NotifyChanged("appointments")
		c.JSON(http.StatusOK, updated)
	}
}

// Delete removes an appointment after explicit confirmation in the UI.
func (h *AppointmentHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := h.service.Delete(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete appointment", "detail": err.Error()})
			return
		}
		h.hub.NotifyChanged("appointments")
		c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
	}
}
