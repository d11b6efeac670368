package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
	"github.com/custodia-labs/charta/internal/logger"
)

// Ensure CharterService implements the interface.
var _ driving.CharterService = (*CharterService)(nil)

// CharterOption configures a CharterService.
type CharterOption func(*CharterService)

// WithMerger replaces the default term merger.
func WithMerger(m *TermMerger) CharterOption {
	return func(s *CharterService) {
		s.merger = m
	}
}

// WithRenderer replaces the default document renderer.
func WithRenderer(r *DocumentRenderer) CharterOption {
	return func(s *CharterService) {
		s.renderer = r
	}
}

// WithRateEstimator sets the freight rate estimator.
func WithRateEstimator(e driven.RateEstimator) CharterOption {
	return func(s *CharterService) {
		s.estimator = e
	}
}

// WithDefaultFormat sets the format used when a request names none.
func WithDefaultFormat(f domain.OutputFormat) CharterOption {
	return func(s *CharterService) {
		if f.IsValid() {
			s.defaultFormat = f
		}
	}
}

// WithClock sets the time source for record timestamps.
func WithClock(now func() time.Time) CharterOption {
	return func(s *CharterService) {
		s.now = now
	}
}

// CharterService runs the generation pipeline and manages the record log.
type CharterService struct {
	catalog       driving.CatalogService
	advisor       driving.RouteAdvisor
	records       driven.CharterRecordStore
	serializers   map[domain.OutputFormat]driven.DocumentSerializer
	merger        *TermMerger
	renderer      *DocumentRenderer
	estimator     driven.RateEstimator
	defaultFormat domain.OutputFormat
	now           func() time.Time
}

// NewCharterService creates a charter service. The advisor, record store
// and estimator may be nil; the operations that need them then fail with
// a domain error.
func NewCharterService(
	catalog driving.CatalogService,
	advisor driving.RouteAdvisor,
	records driven.CharterRecordStore,
	serializers []driven.DocumentSerializer,
	opts ...CharterOption,
) *CharterService {
	s := &CharterService{
		catalog:       catalog,
		advisor:       advisor,
		records:       records,
		serializers:   make(map[domain.OutputFormat]driven.DocumentSerializer, len(serializers)),
		merger:        NewTermMerger(),
		renderer:      NewDocumentRenderer(nil),
		defaultFormat: domain.FormatDocx,
		now:           time.Now,
	}
	for _, ser := range serializers {
		s.serializers[ser.Format()] = ser
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs adjust, merge, validate, check, render and serialize.
// Validation failures return the partial result with the merged terms and
// per-field errors, together with an error wrapping domain.ErrValidation.
func (s *CharterService) Generate(ctx context.Context, req driving.GenerateRequest) (*driving.GenerateResult, error) {
	log := logger.For("charter")

	name := strings.TrimSpace(req.TemplateName)
	if name == "" {
		return nil, fmt.Errorf("%w: template name is required", domain.ErrInvalidInput)
	}

	format := req.Format
	if format == "" {
		format = s.defaultFormat
	}
	ser, ok := s.serializers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}

	tpl := AdjustForVesselClass(s.catalog.GetTemplate(name), req.VesselClass)

	edits, parseErrs := ParseEdits(tpl, req.Edits)
	if req.Route != "" && tpl.Has(domain.FieldRoute) {
		if _, edited := req.Edits[domain.FieldRoute]; !edited {
			edits[domain.FieldRoute] = domain.Text(req.Route)
		}
	}

	terms, mergeErrs := s.merger.Merge(tpl, edits, req.Clauses, req.Freeform)

	// A value that failed to parse is carried as text, so its parse
	// message is more useful than any rule that fired on it.
	errs := domain.ValidationErrors{}
	for f, msg := range parseErrs {
		errs.Add(f, msg)
	}
	for f, msg := range mergeErrs {
		errs.Add(f, msg)
	}

	result := &driving.GenerateResult{
		Template: tpl,
		Terms:    terms,
		Errors:   errs,
	}
	if req.Route != "" && s.advisor != nil {
		result.Suggestions = s.advisor.Suggest(req.Route)
	}

	if len(errs) > 0 {
		log.Debug("%s: %d fields failed validation", name, len(errs))
		return result, fmt.Errorf("generating %q: %w", name, errs)
	}

	doc := s.renderer.Render(tpl, terms)
	doc.ID = uuid.New().String()
	result.Document = doc
	result.Advisories = doc.Advisories

	content, err := ser.Serialize(ctx, doc)
	if err != nil {
		return result, fmt.Errorf("serializing %s document: %w", format, err)
	}
	result.Content = content
	result.FileName = FileNameFor(name, ser.Extension())
	result.MIMEType = ser.MIMEType()

	if req.Save {
		rec := domain.NewCharterRecord(name, req.VesselClass, terms)
		if err := s.Save(ctx, rec); err != nil {
			return result, fmt.Errorf("saving charter record: %w", err)
		}
		result.Saved = true
	}

	log.Info("generated %s (%d bytes, %d advisories)", result.FileName, len(content), len(result.Advisories))
	return result, nil
}

// Preview returns the template after vessel-class adjustment.
func (s *CharterService) Preview(templateName, vesselClass string) domain.Template {
	return AdjustForVesselClass(s.catalog.GetTemplate(templateName), vesselClass)
}

// Save appends a record to the log, stamping it if it has no time.
func (s *CharterService) Save(ctx context.Context, rec domain.CharterRecord) error {
	if s.records == nil {
		return domain.ErrStoreUnavailable
	}
	if rec.SavedAt.IsZero() {
		rec.SavedAt = s.now().UTC()
	}
	if err := s.records.Append(ctx, rec); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

// Records lists saved records in append order.
func (s *CharterService) Records(ctx context.Context) ([]domain.CharterRecord, error) {
	if s.records == nil {
		return nil, domain.ErrStoreUnavailable
	}
	recs, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// EstimateRate returns a placeholder freight estimate.
func (s *CharterService) EstimateRate(ctx context.Context, q domain.RateQuery) (domain.RateEstimate, error) {
	if s.estimator == nil {
		return domain.RateEstimate{}, domain.ErrEstimatorUnavailable
	}
	return s.estimator.Estimate(ctx, q)
}

// FileNameFor builds the download name for a generated charter,
// e.g. "Shellvoy_6_Charter.docx".
func FileNameFor(templateName, ext string) string {
	base := strings.Join(strings.Fields(templateName), "_")
	base = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, base)
	return base + "_Charter." + strings.TrimPrefix(ext, ".")
}
