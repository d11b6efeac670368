package mcp

import (
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog lists and returns templates.
	Catalog driving.CatalogService

	// Advisor suggests templates for a route. Optional; without it
	// suggestions fall back to the full catalog.
	Advisor driving.RouteAdvisor

	// Charter generates documents and manages records.
	Charter driving.CharterService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Charter == nil {
		return ErrMissingCharterService
	}
	return nil
}
