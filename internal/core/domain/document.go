package domain

// Section is one titled block of a rendered contract.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`

	// Part groups sections for serializers that print part headings.
	Part string `json:"part,omitempty"`
}

// Document is a rendered contract body ready for serialization.
// Sections are in contractual order; advisories are always last.
type Document struct {
	// ID identifies one rendering; it is not derived from the terms.
	ID string `json:"id"`

	// Template is the name of the form the document was built from.
	Template string `json:"template"`

	// Title and Subtitle head the document.
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`

	// Preamble is the agreement paragraph before Part I.
	Preamble string `json:"preamble"`

	Sections []Section `json:"sections"`

	// Terms is the flat field listing the document was rendered from.
	Terms []KeyValue `json:"terms"`

	// Advisories are the compliance warnings also rendered in the
	// trailing section.
	Advisories []string `json:"advisories"`
}

// KeyValue is one line of a flat term listing.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ComplianceRule requires a marker token somewhere in the clause text.
type ComplianceRule struct {
	Marker   string `json:"marker"`
	Advisory string `json:"advisory"`
}

// DefaultComplianceRules returns the built-in rule set.
func DefaultComplianceRules() []ComplianceRule {
	return []ComplianceRule{
		{
			Marker:   "TOVALOP",
			Advisory: "TOVALOP clause recommended for pollution liability compliance.",
		},
	}
}
