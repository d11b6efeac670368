package services

import (
	"strings"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
	"github.com/custodia-labs/charta/internal/logger"
)

// Ensure RouteAdvisor implements the interface.
var _ driving.RouteAdvisor = (*RouteAdvisor)(nil)

// RouteAdvisor matches free-text routes against known trade lanes.
type RouteAdvisor struct {
	catalog driving.CatalogService
	lanes   []domain.Lane
}

// NewRouteAdvisor creates an advisor over the built-in lane table.
func NewRouteAdvisor(catalog driving.CatalogService) *RouteAdvisor {
	return NewRouteAdvisorWithLanes(catalog, domain.TradeLanes())
}

// NewRouteAdvisorWithLanes creates an advisor over a custom lane table.
func NewRouteAdvisorWithLanes(catalog driving.CatalogService, lanes []domain.Lane) *RouteAdvisor {
	return &RouteAdvisor{catalog: catalog, lanes: lanes}
}

// Suggest returns the templates for the best matching lane.
//
// A lane matches when its lower-cased key contains the lower-cased route
// or the route contains the key. When several lanes match, the longest key
// wins and equal lengths go to the first declared lane. Empty or unmatched
// routes yield every catalog template.
func (a *RouteAdvisor) Suggest(route string) []string {
	log := logger.For("advisor")
	all := a.catalog.ListTemplateNames()

	route = strings.ToLower(strings.TrimSpace(route))
	if route == "" {
		return dedupe(all)
	}

	var best *domain.Lane
	var matched []string
	for i := range a.lanes {
		key := strings.ToLower(a.lanes[i].Key)
		if !strings.Contains(route, key) && !strings.Contains(key, route) {
			continue
		}
		matched = append(matched, a.lanes[i].Key)
		if best == nil || len(key) > len(best.Key) {
			best = &a.lanes[i]
		}
	}

	if best == nil {
		log.Debug("no lane matches %q", route)
		return dedupe(all)
	}
	if len(matched) > 1 {
		log.Warn("route %q matches lanes %v; using %q", route, matched, best.Key)
	}

	known := make(map[string]bool, len(all))
	for _, name := range all {
		known[name] = true
	}
	var out []string
	for _, name := range best.Templates {
		if known[name] {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return dedupe(all)
	}
	return dedupe(out)
}

// dedupe removes repeated names, keeping first occurrences in order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
