package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitephnrepair2-cpu/crm-app/prefs"
)

// Settings supplies the shop settings record. *prefs.Store satisfies it.
type Settings interface {
	ShopSettings(ctx context.Context) (prefs.ShopSettings, error)
}

// RequireKioskPIN gates the kiosk exit behind the shared numeric PIN from the
// shop settings. The PIN travels in the X-Kiosk-Pin header. This is the only
// access control in the system; there are no user accounts.
func RequireKioskPIN(settings Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		pin := c.GetHeader("X-Kiosk-Pin")
		if pin == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-Kiosk-Pin header"})
			return
		}

		current, err := settings.ShopSettings(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to read settings", "detail": err.Error()})
			return
		}
		if pin != current.KioskPIN {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "wrong pin"})
			return
		}
		c.Next()
	}
}
