package api

import (
	"context"

	"github.com/gin-gonic/gin"
)

// resolveLocation returns the location the request operates on: an explicit
// ?location= wins, otherwise the device's stored current location.
func resolveLocation(c *gin.Context, store Prefs) (string, error) {
	if loc := c.Query("location"); loc != "" {
		return loc, nil
	}
	return store.CurrentLocation(c.Request.Context())
}

// reqCtx is the per-request timeout every handler uses for service calls.
func reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}
