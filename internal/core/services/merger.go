package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/logger"
)

// clauseSeparator joins clause bodies with a blank line.
const clauseSeparator = "\n\n"

// requiredFields must be non-empty after user edits are applied.
var requiredFields = []string{
	domain.FieldOwners,
	domain.FieldCharterers,
	domain.FieldVesselName,
}

// portFields must name a real port when the template declares them.
var portFields = []string{
	domain.FieldLoadingPort,
	domain.FieldDischargingPort,
}

// worldscalePattern accepts "WS100", "WS 92.5" and ranges such as
// "WS100–WS150" or "WS100-WS150".
var worldscalePattern = regexp.MustCompile(`(?i)^WS\s?\d+(\.\d+)?(\s?[-–]\s?WS\s?\d+(\.\d+)?)?$`)

// MergerOption configures a TermMerger.
type MergerOption func(*TermMerger)

// WithStrictFreightRate rejects Worldscale notation in Freight Rate,
// accepting plain decimal numbers only.
func WithStrictFreightRate(strict bool) MergerOption {
	return func(m *TermMerger) {
		m.strictFreightRate = strict
	}
}

// WithClauseLibrary replaces the built-in clause library.
func WithClauseLibrary(clauses []domain.Clause) MergerOption {
	return func(m *TermMerger) {
		m.clauses = clauses
	}
}

// TermMerger folds template defaults, user edits and clause selections
// into one term set and validates the result.
type TermMerger struct {
	strictFreightRate bool
	clauses           []domain.Clause
}

// NewTermMerger creates a merger using the built-in clause library.
func NewTermMerger(opts ...MergerOption) *TermMerger {
	m := &TermMerger{clauses: domain.ClauseLibrary()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ParseEdits converts raw user input into typed values using the
// template's field kinds. Values that fail to parse are reported per
// field and kept as text so the user's entry survives.
func ParseEdits(tpl domain.Template, raw map[string]string) (map[string]domain.TermValue, domain.ValidationErrors) {
	edits := make(map[string]domain.TermValue, len(raw))
	errs := domain.ValidationErrors{}
	for name, value := range raw {
		kind := tpl.KindOf(name)
		v, err := domain.ParseTermValue(kind, value)
		if err != nil {
			switch kind {
			case domain.FieldDate:
				errs.Add(name, "must be a date in YYYY-MM-DD format")
			default:
				errs.Add(name, "must be yes or no")
			}
			v = domain.Text(value)
		}
		edits[name] = v
	}
	return edits, errs
}

// Merge builds the term set for a template. The template should already
// be adjusted for the vessel class.
//
// Every template field starts at its default. Each edited field is then
// replaced by the user's value, including blank values. Selected library
// clauses (in library order) and then the freeform text are appended to
// Additional Clauses. The returned errors map is empty when the terms are
// valid; the term set is returned either way.
func (m *TermMerger) Merge(
	tpl domain.Template,
	edits map[string]domain.TermValue,
	selectedClauses []string,
	freeform string,
) (*domain.TermSet, domain.ValidationErrors) {
	log := logger.For("merger")
	terms := domain.NewTermSet()

	for _, f := range tpl.Fields {
		v, err := domain.ParseTermValue(tpl.KindOf(f.Name), f.Default)
		if err != nil {
			log.Debug("default for %q is not a valid %s, keeping text", f.Name, f.Kind)
			v = domain.Text(f.Default)
		}
		terms.Set(f.Name, v)
	}

	// Template fields keep their position; new names follow in sorted order.
	names := make([]string, 0, len(edits))
	for name := range edits {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		terms.Set(name, edits[name])
	}

	if additional := m.assembleClauses(terms.Text(domain.FieldAdditionalClauses), selectedClauses, freeform); additional != "" {
		terms.Set(domain.FieldAdditionalClauses, domain.Text(additional))
	}

	errs := m.Validate(terms)
	log.Debug("merged %d terms, %d validation errors", terms.Len(), len(errs))
	return terms, errs
}

// assembleClauses appends library clause bodies and freeform text to the
// existing Additional Clauses text. Existing text is never replaced.
func (m *TermMerger) assembleClauses(existing string, selected []string, freeform string) string {
	var parts []string
	if strings.TrimSpace(existing) != "" {
		parts = append(parts, existing)
	}

	wanted := make(map[string]bool, len(selected))
	for _, title := range selected {
		wanted[title] = true
	}
	for _, c := range m.clauses {
		if wanted[c.Title] {
			parts = append(parts, c.Body)
			delete(wanted, c.Title)
		}
	}
	for _, title := range selected {
		if wanted[title] {
			logger.For("merger").Warn("clause %q is not in the clause library, ignored", title)
		}
	}

	if strings.TrimSpace(freeform) != "" {
		parts = append(parts, freeform)
	}
	return strings.Join(parts, clauseSeparator)
}

// Validate applies the required-field, port, date-order and freight-rate
// rules to a term set.
func (m *TermMerger) Validate(terms *domain.TermSet) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	for _, name := range requiredFields {
		v, ok := terms.Get(name)
		if !ok || v.IsEmpty() {
			errs.Add(name, "is required")
		}
	}

	for _, name := range portFields {
		v, ok := terms.Get(name)
		if !ok {
			continue
		}
		port := strings.TrimSpace(v.String())
		if port == "" || strings.EqualFold(port, domain.PortUnselected) {
			errs.Add(name, "select a port")
		}
	}

	laydays, lok := terms.Get(domain.FieldLaydays)
	cancelling, cok := terms.Get(domain.FieldCancelling)
	if lok && cok && laydays.Kind == domain.ValueDate && cancelling.Kind == domain.ValueDate &&
		!laydays.IsEmpty() && !cancelling.IsEmpty() && !laydays.Date.Before(cancelling.Date) {
		errs.Add(domain.FieldCancelling, "must be later than Laydays")
	}

	if v, ok := terms.Get(domain.FieldFreightRate); ok && !v.IsEmpty() {
		rate := strings.TrimSpace(v.String())
		switch {
		case isDecimal(rate):
		case !m.strictFreightRate && worldscalePattern.MatchString(rate):
		case m.strictFreightRate:
			errs.Add(domain.FieldFreightRate, "must be a number")
		default:
			errs.Add(domain.FieldFreightRate, "must be a number or Worldscale points (e.g. WS100)")
		}
	}

	return errs
}

// isDecimal accepts digits with at most one decimal point.
func isDecimal(s string) bool {
	s = strings.Replace(s, ".", "", 1)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
