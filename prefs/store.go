package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Slot names. Two slots exist per device: the active store location and the
// shop settings record.
const (
	slotLocation     = "current_location"
	slotShopSettings = "shop_settings"
)

// DefaultLocation is the location a fresh device starts on.
const DefaultLocation = "Beaumont"

// ShopSettings is the device-local shop configuration. Single instance per
// device, no versioning.
type ShopSettings struct {
	BusinessName  string `json:"business_name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	WarrantyTerms string `json:"warranty_terms"`
	KioskPIN      string `json:"kiosk_pin"`
	KlaviyoSiteID string `json:"klaviyo_site_id"`
}

// DefaultShopSettings returns the out-of-the-box settings record.
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		BusinessName:  "Elite Phone Repair",
		Address:       "2215 Calder Ave STE 201, Beaumont, TX 77701",
		Phone:         "(409) 123-4567",
		WarrantyTerms: "Thank you for your business! Please keep this ticket for your records. A technician will contact you shortly with an update.",
		KioskPIN:      "1271",
		KlaviyoSiteID: "",
	}
}

// preference is one named slot holding a JSON value.
type preference struct {
	Key       string `gorm:"primaryKey;type:text"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (preference) TableName() string { return "preferences" }

// Store persists the preference slots in a local sqlite file with
// create-default-if-absent semantics.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the preference database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("prefs: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&preference{}); err != nil {
		return nil, fmt.Errorf("prefs: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// CurrentLocation returns the active store location, seeding the default on
// first read.
func (s *Store) CurrentLocation(ctx context.Context) (string, error) {
	var loc string
	if err := s.read(ctx, slotLocation, &loc); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		if err := s.write(ctx, slotLocation, DefaultLocation); err != nil {
			return "", err
		}
		return DefaultLocation, nil
	}
	return loc, nil
}

// SetCurrentLocation stores the active store location.
func (s *Store) SetCurrentLocation(ctx context.Context, location string) error {
	return s.write(ctx, slotLocation, location)
}

// ShopSettings returns the settings record, seeding defaults on first read.
func (s *Store) ShopSettings(ctx context.Context) (ShopSettings, error) {
	var settings ShopSettings
	if err := s.read(ctx, slotShopSettings, &settings); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return ShopSettings{}, err
		}
		settings = DefaultShopSettings()
		if err := s.write(ctx, slotShopSettings, settings); err != nil {
			return ShopSettings{}, err
		}
	}
	return settings, nil
}

// SaveShopSettings stores the settings record.
func (s *Store) SaveShopSettings(ctx context.Context, settings ShopSettings) error {
	return s.write(ctx, slotShopSettings, settings)
}

func (s *Store) read(ctx context.Context, key string, out interface{}) error {
	var p preference
	if err := s.db.WithContext(ctx).First(&p, "key = ?", key).Error; err != nil {
		return err
	}
	return json.Unmarshal([]byte(p.Value), out)
}

func (s *Store) write(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Save(&preference{Key: key, Value: string(raw)}).Error
}
