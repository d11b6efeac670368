package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// Placeholders used when a term is missing or blank.
const (
	PlaceholderMissing = "[to be specified]"
	PlaceholderNone    = "None."
)

// Section part labels.
const (
	PartOne         = "Part I"
	PartTwo         = "Part II"
	PartAnnotations = "Annotations"
)

// ComplianceHeading is the heading of the trailing advisory section.
const ComplianceHeading = "Compliance Warnings"

const (
	worldscaleText = "Except as otherwise stated or required by the context of this Charter, all terms and " +
		"conditions of the current scale of nominal tanker freight rates published by the Worldscale " +
		"Association (London) Ltd and the Worldscale Association (NYC) Inc. as in force on the date of " +
		"commencement of loading (\"Worldscale\") shall apply."
	customFreightText = "Custom freight terms apply as specified."

	witnessText = "IN WITNESS WHEREOF Owners and Charterers have caused this Charter consisting of a " +
		"preamble and Parts I and II to be executed the day and year first above written.\n\n" +
		"For OWNERS: __________________________\n" +
		"For CHARTERERS: ______________________"
)

// voyagePartTwo holds the standard Part II clauses printed with every
// voyage charter.
var voyagePartTwo = []domain.Section{
	{
		Heading: "1. Condition of Vessel",
		Body: "The vessel's class as specified in Part I shall be maintained during the currency of this " +
			"Charter. The Owners shall:\n(a) before and at the beginning of the loaded voyage exercise due " +
			"diligence to make the vessel seaworthy and in every way fit for the voyage and for the carriage of the cargo.",
	},
	{
		Heading: "6. Cancellation by Charterer",
		Body: "If the vessel has not given a valid notice of readiness in accordance with Clause 8 before " +
			"Cancelling specified in Part I (G), Charterers shall have the option of cancelling this Charter " +
			"unless the vessel shall have been delayed due to Charterers' late nomination or revised orders.",
	},
	{
		Heading: "12. Freight Payment",
		Body: "(a) Subject to Clauses 4 and 35, freight shall be paid at the rate(s) specified in Part I (J), " +
			"and calculated on the intaken quantity of cargo and on Collected Wastings. Payment of freight " +
			"shall be made by Charterers in cash without deductions.",
	},
	{
		Heading: "20. ETA",
		Body: "(a) The master shall radio Charterers and agents at loading and discharging ports advising " +
			"the vessel's ETA on sailing from the last port or when bound for such ports.",
	},
	{
		Heading: "28. New Jason Clause",
		Body: "General Average shall be payable according to the York/Antwerp Rules, 1974. If the adjustment " +
			"is made in accordance with the law and practice of the United States of America, the following " +
			"clause shall apply:\n\"In the event of accident, danger, damage or disaster before or after the " +
			"commencement of the voyage, resulting from any cause whatsoever, whether due to negligence or not...\"",
	},
	{
		Heading: "31. Bills of Lading",
		Body: "Subject to all the relevant provisions of this Charter, bills of lading are to be signed as " +
			"presented, but without prejudice to the Charter. Charterers hereby indemnify Owners against all " +
			"liabilities and expenses (including legal costs) that may arise from the signing of bills of " +
			"lading as presented.",
	},
	{
		Heading: "32. TOVALOP",
		Body: "Owners warrant that the vessel is a tanker owned by a Participating Owner in TOVALOP and will " +
			"so remain during the currency of this Charter. When an escape or discharge of Oil occurs from " +
			"the vessel and causes or threatens to cause Pollution Damage, Charterers may undertake measures " +
			"to prevent or minimize such Pollution Damage.",
	},
}

// DocumentRenderer turns a term set into a sectioned contract.
// Section order depends only on the contract kind, so rendering the
// same terms twice yields identical documents.
type DocumentRenderer struct {
	checker *ComplianceChecker
}

// NewDocumentRenderer creates a renderer. A nil checker uses the
// default compliance rules.
func NewDocumentRenderer(checker *ComplianceChecker) *DocumentRenderer {
	if checker == nil {
		checker = NewComplianceChecker()
	}
	return &DocumentRenderer{checker: checker}
}

// Render builds the document for a template's contract kind.
func (r *DocumentRenderer) Render(tpl domain.Template, terms *domain.TermSet) *domain.Document {
	advisories := r.checker.Check(terms)
	v := termView{terms: terms}

	doc := &domain.Document{
		Template:   tpl.Name,
		Title:      titleOf(tpl.Name),
		Terms:      r.Listing(terms),
		Advisories: advisories,
	}

	switch tpl.Kind {
	case domain.ContractTime:
		doc.Subtitle = "Tanker Time Charter Party"
		doc.Preamble = fmt.Sprintf("IT IS THIS DAY AGREED between %s (hereinafter referred to as \"Owners\"), "+
			"being owners of the vessel called %s, and %s (hereinafter referred to as \"Charterers\") that "+
			"Owners let and Charterers hire the vessel on time charter subject to the terms and conditions of this Charter.",
			v.scalar(domain.FieldOwners), v.scalar(domain.FieldVesselName), v.scalar(domain.FieldCharterers))
		doc.Sections = timeSections(v)
	default:
		doc.Subtitle = "Tanker Voyage Charter Party"
		doc.Preamble = fmt.Sprintf("IT IS THIS DAY AGREED between %s (hereinafter referred to as \"Owners\") "+
			"of the motor/tank vessel called %s and %s (hereinafter referred to as \"Charterers\") that the "+
			"transportation herein provided for will be performed subject to the terms and conditions of this "+
			"Charter, which includes Part I and Part II. If there is any conflict between the provisions of "+
			"Part I and those of Part II, the provisions of Part I shall prevail.",
			v.scalar(domain.FieldOwners), v.scalar(domain.FieldVesselName), v.scalar(domain.FieldCharterers))
		doc.Sections = voyageSections(v)
	}

	doc.Sections = append(doc.Sections, domain.Section{
		Part:    PartAnnotations,
		Heading: ComplianceHeading,
		Body:    complianceBody(advisories),
	})
	return doc
}

// Listing returns the terms as "field: value" pairs in term order.
func (r *DocumentRenderer) Listing(terms *domain.TermSet) []domain.KeyValue {
	v := termView{terms: terms}
	out := make([]domain.KeyValue, 0, terms.Len())
	for _, name := range terms.Names() {
		out = append(out, domain.KeyValue{Key: name, Value: v.scalar(name)})
	}
	return out
}

func voyageSections(v termView) []domain.Section {
	sections := []domain.Section{
		{Part: PartOne, Heading: "(A) Vessel's Description", Body: v.scalar(domain.FieldVesselDescription)},
		{Part: PartOne, Heading: "(B) Cargo", Body: v.scalar(domain.FieldCargo)},
		{Part: PartOne, Heading: "(C) Cargo Capacity", Body: v.scalar(domain.FieldCargoCapacity)},
		{Part: PartOne, Heading: "(D) Loading Port(s) or Range(s)", Body: v.scalar(domain.FieldLoadingPort)},
		{Part: PartOne, Heading: "(E) Discharging Port(s) or Range(s)", Body: v.scalar(domain.FieldDischargingPort)},
		{
			Part:    PartOne,
			Heading: "(F) Laydays",
			Body: "Laydays shall not commence before noon (local time) on " + v.scalar(domain.FieldLaydays) +
				", unless with Charterers' consent.",
		},
		{Part: PartOne, Heading: "(G) Cancelling", Body: "Noon (local time) on: " + v.scalar(domain.FieldCancelling) + "."},
		{Part: PartOne, Heading: "(H) Worldscale Terms", Body: v.worldscale()},
		{
			Part:    PartOne,
			Heading: "(I) Laytime",
			Body:    v.scalar(domain.FieldLaytime) + " total laytime in running hours, Sundays and holidays included.",
		},
		{
			Part:    PartOne,
			Heading: "(J) Freight Rate",
			Body:    "Freight shall be paid at the rate of " + v.scalar(domain.FieldFreightRate) + " per ton on the intaken quantity of cargo.",
		},
		{Part: PartOne, Heading: "(K) Demurrage", Body: "Demurrage per day (or pro rata for part thereof): " + v.scalar(domain.FieldDemurrage) + "."},
		{Part: PartOne, Heading: "(L) Trading Route", Body: v.scalar(domain.FieldRoute)},
		{Part: PartOne, Heading: "(Q) Standard Clauses", Body: v.clause(domain.FieldStandardClauses)},
		{Part: PartOne, Heading: "(R) Modern Clauses", Body: v.clause(domain.FieldModernClauses)},
		{Part: PartOne, Heading: "(S) Additional Clauses", Body: v.clause(domain.FieldAdditionalClauses)},
		{Part: PartOne, Heading: "Execution", Body: witnessText},
	}
	for _, s := range voyagePartTwo {
		s.Part = PartTwo
		sections = append(sections, s)
	}
	return sections
}

func timeSections(v termView) []domain.Section {
	return []domain.Section{
		{Part: PartOne, Heading: "1. Vessel", Body: v.scalar(domain.FieldVesselName) + ". " + v.scalar(domain.FieldVesselDescription)},
		{Part: PartOne, Heading: "2. Period", Body: v.scalar(domain.FieldPeriod)},
		{
			Part:    PartOne,
			Heading: "3. Rate of Hire",
			Body:    "Charterers shall pay hire at the rate of " + v.scalar(domain.FieldHireRate) + ", payable monthly in advance.",
		},
		{Part: PartOne, Heading: "4. Delivery", Body: "The vessel shall be delivered at " + v.scalar(domain.FieldDeliveryPort) + "."},
		{Part: PartOne, Heading: "5. Redelivery", Body: "The vessel shall be redelivered at " + v.scalar(domain.FieldRedeliveryPort) + "."},
		{Part: PartOne, Heading: "6. Trading Limits", Body: v.scalar(domain.FieldRoute)},
		{Part: PartOne, Heading: "7. Standard Clauses", Body: v.clause(domain.FieldStandardClauses)},
		{Part: PartOne, Heading: "8. Modern Clauses", Body: v.clause(domain.FieldModernClauses)},
		{Part: PartOne, Heading: "9. Additional Clauses", Body: v.clause(domain.FieldAdditionalClauses)},
		{Part: PartOne, Heading: "Execution", Body: witnessText},
	}
}

func complianceBody(advisories []string) string {
	if len(advisories) == 0 {
		return "None"
	}
	return strings.Join(advisories, "; ")
}

func titleOf(name string) string {
	if strings.TrimSpace(name) == "" {
		return "CHARTER PARTY"
	}
	return strings.ToUpper(name)
}

// termView renders individual terms with placeholders.
type termView struct {
	terms *domain.TermSet
}

// scalar renders a single-line term, or the placeholder when missing,
// blank or still the unselected port sentinel.
func (v termView) scalar(name string) string {
	val, ok := v.terms.Get(name)
	if !ok || val.IsEmpty() {
		return PlaceholderMissing
	}
	s := strings.TrimSpace(val.String())
	if strings.EqualFold(s, domain.PortUnselected) {
		return PlaceholderMissing
	}
	return s
}

// clause renders a clause block, or "None." when missing or blank.
func (v termView) clause(name string) string {
	val, ok := v.terms.Get(name)
	if !ok || val.IsEmpty() {
		return PlaceholderNone
	}
	return strings.TrimSpace(val.String())
}

// worldscale selects the freight terms text. An absent flag means
// Worldscale applies.
func (v termView) worldscale() string {
	val, ok := v.terms.Get(domain.FieldUseWorldscale)
	if !ok {
		return worldscaleText
	}
	use := val.Flag
	if val.Kind != domain.ValueFlag {
		parsed, err := domain.ParseTermValue(domain.FieldFlag, val.String())
		use = err != nil || parsed.Flag
	}
	if use {
		return worldscaleText
	}
	return customFreightText
}
