package domain

import (
	"strconv"
	"strings"
)

// BuiltinTemplates returns the standard forms shipped with charta,
// in registration order. Each call returns fresh copies.
func BuiltinTemplates() []Template {
	return []Template{
		{
			Name: "Shell Time 4",
			Kind: ContractTime,
			Fields: []Field{
				{Name: FieldOwners, Kind: FieldScalar, Default: "[Owner Name]"},
				{Name: FieldCharterers, Kind: FieldScalar, Default: "[Charterer Name]"},
				{Name: FieldVesselName, Kind: FieldScalar, Default: "TBN"},
				{Name: FieldVesselDescription, Kind: FieldScalar},
				{Name: FieldPeriod, Kind: FieldScalar, Default: "12 months +/- 1 month"},
				{Name: FieldHireRate, Kind: FieldScalar},
				{Name: FieldDeliveryPort, Kind: FieldScalar},
				{Name: FieldRedeliveryPort, Kind: FieldScalar},
				{Name: FieldRoute, Kind: FieldScalar, Default: "Any"},
				{Name: FieldStandardClauses, Kind: FieldClause, Default: numbered(
					"Vessel to comply with ISM and ISPS codes.",
					"Charterer to pay port costs and bunkers.",
					"Owners to maintain vessel insurance and class certification.",
					"Hire payment due monthly in advance.",
				)},
				{Name: FieldModernClauses, Kind: FieldClause, Default: numbered(
					"Compliance with IMO 2020 sulfur limits.",
					"Sanctions compliance with U.S., EU, and UN regulations.",
					"Force majeure includes pandemics and geopolitical disruptions.",
					"Support for electronic Bills of Lading (e-BL).",
				)},
			},
		},
		voyageTemplate("Asbatankvoy 2025", "Crude Oil",
			numbered(
				"Freight payable upon completion of discharge.",
				"Laytime not to commence before 0600 on ETA unless agreed.",
				"Owners to provide safe berth.",
				"Arbitration in New York, London, Singapore, or Hong Kong (New York default).",
			),
			numbered(
				"Compliance with ESG and carbon intensity reporting.",
				"Support for electronic Bills of Lading (e-BL).",
				"Sanctions compliance with U.S., EU, and UN regulations.",
				"Force majeure includes port disruptions and pandemics.",
			),
		),
		voyageTemplate("Shellvoy 6", "Crude Oil or Products",
			numbered(
				"NOR invalid if free pratique not granted within 6 hours of tendering.",
				"Charterer responsible for port costs.",
				"Vessel to comply with ship-to-ship transfer protocols.",
				"Time lost due to vessel condition not to count as laytime.",
			),
			numbered(
				"Compliance with IMO 2020 sulfur limits.",
				"Sanctions compliance with U.S., EU, and UN regulations.",
				"Force majeure includes geopolitical disruptions.",
				"Support for electronic Bills of Lading (e-BL).",
			),
		),
		voyageTemplate("BPVOY4", "Crude Oil or Products",
			numbered(
				"Balanced terms for owners and charterers.",
				"Freight payable upon completion of discharge.",
				"Vessel to comply with modern safety and environmental regulations.",
				"Reduced need for rider clauses due to comprehensive terms.",
			),
			numbered(
				"Compliance with IMO 2020 sulfur limits.",
				"Support for digital reporting and e-BL.",
				"Sanctions compliance with U.S., EU, and UN regulations.",
				"Force majeure includes pandemics and port disruptions.",
			),
		),
		voyageTemplate("ExxonMobil Voy2000", "Crude Oil or Products",
			numbered(
				"Clear and concise terms for loading and discharge.",
				"Charterer to provide safe port/berth.",
				"Freight payable upon completion of discharge.",
				"Vessel to maintain class and regulatory compliance.",
			),
			numbered(
				"Compliance with IMO 2020 sulfur limits.",
				"Sanctions compliance with U.S., EU, and UN regulations.",
				"Force majeure includes geopolitical disruptions.",
				"Support for electronic Bills of Lading (e-BL).",
			),
		),
		voyageTemplate("INTERTANKVOY 76", "Crude Oil or Products",
			numbered(
				"Freight payable upon completion of loading.",
				"Laytime to commence 6 hours after NOR unless otherwise agreed.",
				"Owners to ensure vessel suitability for cargo.",
				"Charterer to nominate safe port/berth.",
			),
			numbered(
				"Compliance with IMO 2020 sulfur limits.",
				"Support for electronic Bills of Lading (e-BL).",
				"Sanctions compliance with U.S., EU, and UN regulations.",
				"Force majeure includes pandemics and port disruptions.",
			),
		),
	}
}

func voyageTemplate(name, cargo, standard, modern string) Template {
	return Template{
		Name: name,
		Kind: ContractVoyage,
		Fields: []Field{
			{Name: FieldOwners, Kind: FieldScalar, Default: "[Owner Name]"},
			{Name: FieldCharterers, Kind: FieldScalar, Default: "[Charterer Name]"},
			{Name: FieldVesselName, Kind: FieldScalar, Default: "TBN"},
			{Name: FieldVesselDescription, Kind: FieldScalar},
			{Name: FieldCargo, Kind: FieldScalar, Default: cargo},
			{Name: FieldCargoCapacity, Kind: FieldScalar},
			{Name: FieldLoadingPort, Kind: FieldScalar, Default: PortUnselected},
			{Name: FieldDischargingPort, Kind: FieldScalar, Default: PortUnselected},
			{Name: FieldLaydays, Kind: FieldDate},
			{Name: FieldCancelling, Kind: FieldDate},
			{Name: FieldLaytime, Kind: FieldScalar, Default: "72 hours"},
			{Name: FieldDemurrage, Kind: FieldScalar},
			{Name: FieldFreightRate, Kind: FieldScalar},
			{Name: FieldUseWorldscale, Kind: FieldFlag, Default: "true"},
			{Name: FieldRoute, Kind: FieldScalar, Default: "Any"},
			{Name: FieldStandardClauses, Kind: FieldClause, Default: standard},
			{Name: FieldModernClauses, Kind: FieldClause, Default: modern},
		},
	}
}

func numbered(lines ...string) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(l)
	}
	return b.String()
}
