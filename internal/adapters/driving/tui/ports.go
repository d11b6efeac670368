// Package tui provides an interactive terminal user interface for charta.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Catalog lists templates.
	Catalog driving.CatalogService

	// Advisor suggests templates for a route. Optional; without it the
	// route view lists nothing.
	Advisor driving.RouteAdvisor

	// Charter previews templates and lists saved records.
	Charter driving.CharterService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalog driving.CatalogService,
	advisor driving.RouteAdvisor,
	charter driving.CharterService,
) *Ports {
	return &Ports{
		Catalog: catalog,
		Advisor: advisor,
		Charter: charter,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Charter == nil {
		return ErrMissingCharterService
	}
	return nil
}
