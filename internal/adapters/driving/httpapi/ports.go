package httpapi

import (
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// Ports aggregates the driving ports the API calls into.
type Ports struct {
	Catalog driving.CatalogService
	Charter driving.CharterService

	// Advisor is optional; without it /api/routes/suggest lists the catalog.
	Advisor driving.RouteAdvisor
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Charter == nil {
		return ErrMissingCharterService
	}
	return nil
}
