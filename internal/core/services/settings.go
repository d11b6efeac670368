package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStorageBackend    = "storage.backend"
	KeyStorageDir        = "storage.dir"
	KeyCatalogFile       = "catalog.file"
	KeyRenderFormat      = "render.format"
	KeyStrictFreightRate = "validation.strict_freight_rate"
	KeyRatePerMile       = "rate.per_mile"
	KeyServerAddr        = "server.addr"
	KeyServerRateLimit   = "server.rate_limit"
)

var settingsKeys = []string{
	KeyStorageBackend,
	KeyStorageDir,
	KeyCatalogFile,
	KeyRenderFormat,
	KeyStrictFreightRate,
	KeyRatePerMile,
	KeyServerAddr,
	KeyServerRateLimit,
}

// SettingsService reads typed settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the current settings, falling back to defaults for keys
// that are missing or hold invalid values.
func (s *SettingsService) Get() domain.Settings {
	defaults := domain.DefaultSettings()
	return domain.Settings{
		StorageBackend:    s.getBackend(defaults.StorageBackend),
		DataDir:           s.getString(KeyStorageDir, defaults.DataDir),
		CatalogFile:       s.getString(KeyCatalogFile, defaults.CatalogFile),
		DefaultFormat:     s.getFormat(defaults.DefaultFormat),
		StrictFreightRate: s.getBool(KeyStrictFreightRate, defaults.StrictFreightRate),
		RatePerMile:       s.getFloat(KeyRatePerMile, defaults.RatePerMile),
		ServerAddr:        s.getString(KeyServerAddr, defaults.ServerAddr),
		ServerRateLimit:   s.getFloat(KeyServerRateLimit, defaults.ServerRateLimit),
	}
}

// Set validates a raw value for a key and persists it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var typed any
	switch key {
	case KeyStorageBackend:
		b := domain.StorageBackend(strings.ToLower(value))
		if !b.IsValid() {
			return fmt.Errorf("%w: storage backend %q (want file, sqlite or memory)", domain.ErrInvalidInput, value)
		}
		typed = b.String()
	case KeyRenderFormat:
		f := domain.OutputFormat(strings.ToLower(value))
		if !f.IsValid() {
			return fmt.Errorf("%w: format %q", domain.ErrUnknownFormat, value)
		}
		typed = f.String()
	case KeyStrictFreightRate:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		typed = b
	case KeyRatePerMile, KeyServerRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		typed = f
	case KeyStorageDir, KeyCatalogFile, KeyServerAddr:
		typed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the configurable keys in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingsKeys))
	copy(out, settingsKeys)
	return out
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// getFloat returns the default for missing, non-numeric or
// non-positive values.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	f := s.configStore.GetFloat(key)
	if f <= 0 || math.IsNaN(f) {
		return defaultVal
	}
	return f
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(KeyStorageBackend)
	if val == "" {
		return defaultVal
	}
	b := domain.StorageBackend(val)
	if !b.IsValid() {
		return defaultVal
	}
	return b
}

func (s *SettingsService) getFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	val := s.configStore.GetString(KeyRenderFormat)
	if val == "" {
		return defaultVal
	}
	f := domain.OutputFormat(val)
	if !f.IsValid() {
		return defaultVal
	}
	return f
}
