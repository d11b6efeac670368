package domain

import "strings"

// VesselClass is a tanker size class.
type VesselClass string

// Known vessel classes, smallest first.
const (
	Panamax VesselClass = "Panamax"
	Aframax VesselClass = "Aframax"
	Suezmax VesselClass = "Suezmax"
	VLCC    VesselClass = "VLCC"
	ULCC    VesselClass = "ULCC"
)

// ClassProfile holds the reference terms for a vessel class.
type ClassProfile struct {
	Class         VesselClass `json:"class"`
	CargoCapacity string      `json:"cargo_capacity"`
	FreightRate   string      `json:"freight_rate"`
	Demurrage     string      `json:"demurrage"`

	// SizeFactor scales placeholder rate estimates relative to Panamax.
	SizeFactor float64 `json:"size_factor"`
}

var classProfiles = []ClassProfile{
	{Class: Panamax, CargoCapacity: "60,000 tons", FreightRate: "WS100–WS150", Demurrage: "$20,000/day", SizeFactor: 1.0},
	{Class: Aframax, CargoCapacity: "80,000–100,000 tons", FreightRate: "WS90–WS140", Demurrage: "$25,000/day", SizeFactor: 1.5},
	{Class: Suezmax, CargoCapacity: "120,000–150,000 tons", FreightRate: "WS80–WS130", Demurrage: "$30,000/day", SizeFactor: 2.25},
	{Class: VLCC, CargoCapacity: "200,000–250,000 tons", FreightRate: "WS50–WS100", Demurrage: "$40,000/day", SizeFactor: 3.75},
	{Class: ULCC, CargoCapacity: "300,000+ tons", FreightRate: "WS40–WS90", Demurrage: "$50,000/day", SizeFactor: 5.0},
}

// VesselClasses returns all class profiles, smallest first.
func VesselClasses() []ClassProfile {
	out := make([]ClassProfile, len(classProfiles))
	copy(out, classProfiles)
	return out
}

// LookupVesselClass finds a class profile by name, ignoring case.
func LookupVesselClass(name string) (ClassProfile, bool) {
	name = strings.TrimSpace(name)
	for _, p := range classProfiles {
		if strings.EqualFold(string(p.Class), name) {
			return p, true
		}
	}
	return ClassProfile{}, false
}
