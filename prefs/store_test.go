package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	return s
}

func TestCurrentLocationDefaultsAndPersists(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	loc, err := s.CurrentLocation(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultLocation, loc)

	require.NoError(t, s.SetCurrentLocation(ctx, "Houston"))

	loc, err = s.CurrentLocation(ctx)
	require.NoError(t, err)
	require.Equal(t, "Houston", loc)
}

func TestShopSettingsDefaultsAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	settings, err := s.ShopSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultShopSettings(), settings)

	settings.KioskPIN = "9999"
	settings.KlaviyoSiteID = "SITE123"
	require.NoError(t, s.SaveShopSettings(ctx, settings))

	got, err := s.ShopSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "9999", got.KioskPIN)
	require.Equal(t, "SITE123", got.KlaviyoSiteID)
}
