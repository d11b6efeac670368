package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar format used for date terms everywhere
// a date crosses a text boundary (rendering, persistence, user input).
const DateLayout = "2006-01-02"

// FieldKind describes how a term field is entered and rendered.
type FieldKind string

// Field kinds.
const (
	// FieldScalar is a single-line free-text term.
	FieldScalar FieldKind = "scalar"

	// FieldClause is a multi-line clause block.
	FieldClause FieldKind = "clause"

	// FieldDate is a calendar date.
	FieldDate FieldKind = "date"

	// FieldFlag is a yes/no switch.
	FieldFlag FieldKind = "flag"
)

// IsValid returns true if the field kind is recognised.
func (k FieldKind) IsValid() bool {
	switch k {
	case FieldScalar, FieldClause, FieldDate, FieldFlag:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k FieldKind) String() string {
	return string(k)
}

// ValueKind tags which member of a TermValue is meaningful.
type ValueKind int

// Value kinds.
const (
	ValueText ValueKind = iota
	ValueDate
	ValueFlag
)

// TermValue is the value of one term: text, date or boolean.
// Only the member selected by Kind is meaningful.
type TermValue struct {
	Kind ValueKind
	Text string
	Date time.Time
	Flag bool
}

// Text creates a text term value.
func Text(s string) TermValue {
	return TermValue{Kind: ValueText, Text: s}
}

// Date creates a date term value. The time of day is discarded.
func Date(t time.Time) TermValue {
	y, m, d := t.Date()
	return TermValue{Kind: ValueDate, Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Flag creates a boolean term value.
func Flag(b bool) TermValue {
	return TermValue{Kind: ValueFlag, Flag: b}
}

// IsEmpty reports whether the value carries no information:
// blank text or a zero date. Flags are never empty.
func (v TermValue) IsEmpty() bool {
	switch v.Kind {
	case ValueDate:
		return v.Date.IsZero()
	case ValueFlag:
		return false
	default:
		return strings.TrimSpace(v.Text) == ""
	}
}

// String coerces the value to its string representation.
// The coercion is lossy: the kind tag is not part of the output.
func (v TermValue) String() string {
	switch v.Kind {
	case ValueDate:
		if v.Date.IsZero() {
			return ""
		}
		return v.Date.Format(DateLayout)
	case ValueFlag:
		return strconv.FormatBool(v.Flag)
	default:
		return v.Text
	}
}

// ParseTermValue converts raw input into a value of the given field kind.
// Blank input for a date field yields an empty date, not an error.
func ParseTermValue(kind FieldKind, raw string) (TermValue, error) {
	switch kind {
	case FieldDate:
		s := strings.TrimSpace(raw)
		if s == "" {
			return TermValue{Kind: ValueDate}, nil
		}
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return TermValue{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, raw)
		}
		return Date(t), nil
	case FieldFlag:
		b, err := parseFlag(raw)
		if err != nil {
			return TermValue{}, err
		}
		return Flag(b), nil
	default:
		return Text(raw), nil
	}
}

func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a yes/no value", ErrInvalidInput, raw)
	}
	return b, nil
}

// TermSet is the working set of terms for one charter.
// It preserves insertion order so listings are deterministic.
// A TermSet is owned by a single request and is not safe for concurrent use.
type TermSet struct {
	order  []string
	values map[string]TermValue
}

// NewTermSet creates an empty term set.
func NewTermSet() *TermSet {
	return &TermSet{values: make(map[string]TermValue)}
}

// Set stores a value, appending the name if it is new.
func (t *TermSet) Set(name string, v TermValue) {
	if t.values == nil {
		t.values = make(map[string]TermValue)
	}
	if _, ok := t.values[name]; !ok {
		t.order = append(t.order, name)
	}
	t.values[name] = v
}

// Get returns the value for a name and whether it is present.
func (t *TermSet) Get(name string) (TermValue, bool) {
	if t == nil {
		return TermValue{}, false
	}
	v, ok := t.values[name]
	return v, ok
}

// Text returns the string form of a term, or "" if absent.
func (t *TermSet) Text(name string) string {
	v, ok := t.Get(name)
	if !ok {
		return ""
	}
	return v.String()
}

// Has reports whether the term is present.
func (t *TermSet) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Names returns term names in insertion order.
func (t *TermSet) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of terms.
func (t *TermSet) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Strings coerces every value to its string form.
func (t *TermSet) Strings() map[string]string {
	out := make(map[string]string, t.Len())
	for _, name := range t.Names() {
		out[name] = t.values[name].String()
	}
	return out
}

// Clone returns an independent copy.
func (t *TermSet) Clone() *TermSet {
	c := NewTermSet()
	for _, name := range t.Names() {
		c.Set(name, t.values[name])
	}
	return c
}

// ValidationErrors maps a field name to a user-facing message.
// An empty map means the terms are valid.
type ValidationErrors map[string]string

// Add records a message for a field. The first message per field wins.
func (v ValidationErrors) Add(field, msg string) {
	if _, ok := v[field]; !ok {
		v[field] = msg
	}
}

// Fields returns the failing field names in sorted order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Error implements error.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, f := range v.Fields() {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrValidation.
func (v ValidationErrors) Unwrap() error {
	return ErrValidation
}
