package services

import (
	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/logger"
)

// AdjustForVesselClass returns a copy of the template with the class's
// reference Cargo Capacity, Freight Rate and Demurrage written over the
// defaults of those fields that the template already declares. Fields are
// never added. An unknown class returns an unchanged copy.
func AdjustForVesselClass(tpl domain.Template, vesselClass string) domain.Template {
	out := tpl.Clone()
	if vesselClass == "" {
		return out
	}

	profile, ok := domain.LookupVesselClass(vesselClass)
	if !ok {
		logger.For("adjuster").Debug("unknown vessel class %q, template unchanged", vesselClass)
		return out
	}

	overrides := map[string]string{
		domain.FieldCargoCapacity: profile.CargoCapacity,
		domain.FieldFreightRate:   profile.FreightRate,
		domain.FieldDemurrage:     profile.Demurrage,
	}
	for i := range out.Fields {
		if v, ok := overrides[out.Fields[i].Name]; ok {
			out.Fields[i].Default = v
		}
	}
	return out
}
