package driving

import (
	"context"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// CharterService assembles charter documents and manages saved records.
type CharterService interface {
	// Generate runs the full pipeline: adjust, merge, check, render, serialize.
	// On validation failure it returns a result holding the merged terms and
	// the per-field errors together with an error wrapping domain.ErrValidation.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)

	// Preview returns the template after vessel-class adjustment.
	Preview(templateName, vesselClass string) domain.Template

	// Save appends a record to the charter log.
	Save(ctx context.Context, rec domain.CharterRecord) error

	// Records lists saved records in append order.
	Records(ctx context.Context) ([]domain.CharterRecord, error)

	// EstimateRate returns a placeholder freight estimate.
	EstimateRate(ctx context.Context, q domain.RateQuery) (domain.RateEstimate, error)
}

// GenerateRequest carries everything one generation needs.
// Edits are raw strings; they are parsed by the template's field kinds.
type GenerateRequest struct {
	TemplateName string              `json:"template"`
	VesselClass  string              `json:"vessel_class,omitempty"`
	Route        string              `json:"route,omitempty"`
	Edits        map[string]string   `json:"edits,omitempty"`
	Clauses      []string            `json:"clauses,omitempty"`
	Freeform     string              `json:"freeform,omitempty"`
	Format       domain.OutputFormat `json:"format,omitempty"`

	// Save appends a charter record when the terms are valid.
	Save bool `json:"save,omitempty"`
}

// GenerateResult is the outcome of a generation.
type GenerateResult struct {
	Template    domain.Template
	Terms       *domain.TermSet
	Errors      domain.ValidationErrors
	Advisories  []string
	Suggestions []string
	Document    *domain.Document
	Content     []byte
	FileName    string
	MIMEType    string
	Saved       bool
}

// Valid reports whether the terms passed validation.
func (r *GenerateResult) Valid() bool {
	return r != nil && len(r.Errors) == 0
}
