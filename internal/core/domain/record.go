package domain

import (
	"sort"
	"time"
)

// CharterRecord is a saved snapshot of a charter's terms.
// Records are append-only; identity is the position in the log.
type CharterRecord struct {
	Template    string            `json:"template"`
	VesselClass string            `json:"vesselClass"`
	Terms       map[string]string `json:"terms"`

	// SavedAt is informational and not part of the record identity.
	SavedAt time.Time `json:"savedAt,omitzero"`
}

// NewCharterRecord snapshots a term set, coercing every value to a string.
func NewCharterRecord(template, vesselClass string, terms *TermSet) CharterRecord {
	return CharterRecord{
		Template:    template,
		VesselClass: vesselClass,
		Terms:       terms.Strings(),
	}
}

// TermSet re-parses the stored strings using the template's field kinds.
// Template fields come first in template order, followed by any extra
// stored names in sorted order. Values that no longer parse stay text.
func (r CharterRecord) TermSet(tpl Template) *TermSet {
	ts := NewTermSet()
	seen := make(map[string]bool, len(r.Terms))
	for _, f := range tpl.Fields {
		raw, ok := r.Terms[f.Name]
		if !ok {
			continue
		}
		seen[f.Name] = true
		ts.Set(f.Name, parseStored(tpl.KindOf(f.Name), raw))
	}
	extra := make([]string, 0, len(r.Terms))
	for name := range r.Terms {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		ts.Set(name, parseStored(tpl.KindOf(name), r.Terms[name]))
	}
	return ts
}

func parseStored(kind FieldKind, raw string) TermValue {
	v, err := ParseTermValue(kind, raw)
	if err != nil {
		return Text(raw)
	}
	return v
}
