package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/elitephnrepair2-cpu/crm-app/prefs"
)

type fakeSettings struct {
	settings prefs.ShopSettings
	err      error
}

func (f fakeSettings) ShopSettings(ctx context.Context) (prefs.ShopSettings, error) {
	return f.settings, f.err
}

func newPINRouter(s Settings) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/exit", RequireKioskPIN(s), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "kiosk unlocked"})
	})
	return r
}

func TestRequireKioskPIN(t *testing.T) {
	source := fakeSettings{settings: prefs.ShopSettings{KioskPIN: "1271"}}

	tests := []struct {
		name     string
		settings Settings
		pin      string
		want     int
	}{
		{"correct pin", source, "1271", http.StatusOK},
		{"wrong pin", source, "0000", http.StatusForbidden},
		{"missing header", source, "", http.StatusUnauthorized},
		{"settings unavailable", fakeSettings{err: errors.New("db closed")}, "1271", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPINRouter(tt.settings)
			req := httptest.NewRequest(http.MethodPost, "/exit", nil)
			if tt.pin != "" {
				req.Header.Set("X-Kiosk-Pin", tt.pin)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, tt.want, w.Code)
		})
	}
}
