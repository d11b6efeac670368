package domain

// Well-known term field names shared by templates, merger and renderer.
const (
	FieldOwners            = "Owners"
	FieldCharterers        = "Charterers"
	FieldVesselName        = "Vessel Name"
	FieldVesselDescription = "Vessel Description"
	FieldCargo             = "Cargo"
	FieldCargoCapacity     = "Cargo Capacity"
	FieldLoadingPort       = "Loading Port"
	FieldDischargingPort   = "Discharging Port"
	FieldLaydays           = "Laydays"
	FieldCancelling        = "Cancelling"
	FieldLaytime           = "Laytime"
	FieldDemurrage         = "Demurrage"
	FieldFreightRate       = "Freight Rate"
	FieldUseWorldscale     = "Use Worldscale"
	FieldRoute             = "Route"
	FieldPeriod            = "Period"
	FieldHireRate          = "Hire Rate"
	FieldDeliveryPort      = "Delivery Port"
	FieldRedeliveryPort    = "Redelivery Port"
	FieldStandardClauses   = "Standard Clauses"
	FieldModernClauses     = "Modern Clauses"
	FieldAdditionalClauses = "Additional Clauses"
)

// ContractKind selects the document layout for a template.
type ContractKind string

// Contract kinds.
const (
	// ContractVoyage is a voyage charter (freight per ton carried).
	ContractVoyage ContractKind = "voyage"

	// ContractTime is a time charter (hire per day).
	ContractTime ContractKind = "time"
)

// IsValid returns true if the contract kind is recognised.
func (k ContractKind) IsValid() bool {
	return k == ContractVoyage || k == ContractTime
}

// Field is one named term in a template with its default value.
type Field struct {
	Name    string    `json:"name" yaml:"name"`
	Kind    FieldKind `json:"kind" yaml:"kind"`
	Default string    `json:"default" yaml:"default"`
}

// Template is a standard charter-party form.
// The name is the identity key; field names are unique within a template.
type Template struct {
	Name   string       `json:"name" yaml:"name"`
	Kind   ContractKind `json:"kind" yaml:"kind"`
	Fields []Field      `json:"fields" yaml:"fields"`
}

// IsEmpty reports whether the template has no fields to render.
func (t Template) IsEmpty() bool {
	return len(t.Fields) == 0
}

// Field returns the named field and whether it exists.
func (t Template) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Has reports whether the template declares a field.
func (t Template) Has(name string) bool {
	_, ok := t.Field(name)
	return ok
}

// KindOf returns the kind of a field, defaulting to scalar for
// unknown names and well-known clause/date/flag names.
func (t Template) KindOf(name string) FieldKind {
	if f, ok := t.Field(name); ok && f.Kind.IsValid() {
		return f.Kind
	}
	switch name {
	case FieldStandardClauses, FieldModernClauses, FieldAdditionalClauses:
		return FieldClause
	case FieldLaydays, FieldCancelling:
		return FieldDate
	case FieldUseWorldscale:
		return FieldFlag
	default:
		return FieldScalar
	}
}

// Clone returns a deep copy.
func (t Template) Clone() Template {
	c := Template{Name: t.Name, Kind: t.Kind}
	if t.Fields != nil {
		c.Fields = make([]Field, len(t.Fields))
		copy(c.Fields, t.Fields)
	}
	return c
}

// Normalise fills in missing kinds and removes duplicate field names,
// keeping the last definition in the position of the first.
func (t Template) Normalise() Template {
	c := Template{Name: t.Name, Kind: t.Kind}
	if !c.Kind.IsValid() {
		c.Kind = ContractVoyage
	}
	index := make(map[string]int, len(t.Fields))
	for _, f := range t.Fields {
		if !f.Kind.IsValid() {
			f.Kind = Template{}.KindOf(f.Name)
		}
		if i, ok := index[f.Name]; ok {
			c.Fields[i] = f
			continue
		}
		index[f.Name] = len(c.Fields)
		c.Fields = append(c.Fields, f)
	}
	return c
}

// PortUnselected is the placeholder a port field holds until a real
// port is chosen.
const PortUnselected = "unselected"

// KnownPorts lists ports offered to users for the port fields.
var KnownPorts = []string{
	"Houston",
	"Corpus Christi",
	"Rotterdam",
	"Antwerp",
	"Ras Tanura",
	"Fujairah",
	"Singapore",
	"Bonny",
	"Ningbo",
	"Qingdao",
}
