package driving

import "github.com/custodia-labs/charta/internal/core/domain"

// SettingsService reads and updates application settings.
type SettingsService interface {
	// Get returns the current typed settings. Missing or invalid values
	// fall back to defaults.
	Get() domain.Settings

	// Set validates and persists a single key.
	Set(key, value string) error

	// Keys returns the configurable keys in display order.
	Keys() []string
}
