package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// headingSerializer writes one heading per line.
type headingSerializer struct {
	err error
}

func (headingSerializer) Format() domain.OutputFormat { return domain.FormatMarkdown }
func (headingSerializer) Extension() string           { return "md" }
func (headingSerializer) MIMEType() string            { return "text/markdown" }

func (s headingSerializer) Serialize(_ context.Context, doc *domain.Document) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	var b strings.Builder
	for _, sec := range doc.Sections {
		b.WriteString(sec.Heading)
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

// failingRecordStore fails every call.
type failingRecordStore struct{}

func (failingRecordStore) Append(context.Context, domain.CharterRecord) error {
	return errors.New("read-only filesystem")
}

func (failingRecordStore) List(context.Context) ([]domain.CharterRecord, error) {
	return nil, errors.New("read-only filesystem")
}

func newTestCharterService(records driven.CharterRecordStore, opts ...CharterOption) *CharterService {
	catalog := NewCatalog(nil)
	opts = append([]CharterOption{
		WithDefaultFormat(domain.FormatMarkdown),
		WithClock(func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }),
	}, opts...)
	return NewCharterService(catalog, NewRouteAdvisor(catalog), records,
		[]driven.DocumentSerializer{headingSerializer{}}, opts...)
}

func validRequest() driving.GenerateRequest {
	return driving.GenerateRequest{
		TemplateName: "Shellvoy 6",
		VesselClass:  "VLCC",
		Route:        "Houston to Rotterdam",
		Edits: map[string]string{
			domain.FieldOwners:          "Acme Shipping",
			domain.FieldCharterers:      "Blue Charterers",
			domain.FieldVesselName:      "MT Example",
			domain.FieldLoadingPort:     "Houston",
			domain.FieldDischargingPort: "Rotterdam",
			domain.FieldLaydays:         "2025-05-01",
			domain.FieldCancelling:      "2025-05-10",
		},
		Clauses: []string{"Pollution Liability"},
	}
}

func TestCharterService_Generate(t *testing.T) {
	svc := newTestCharterService(memory.NewRecordStore())

	result, err := svc.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	require.True(t, result.Valid())
	assert.Equal(t, "Shellvoy_6_Charter.md", result.FileName)
	assert.Equal(t, "text/markdown", result.MIMEType)
	assert.Contains(t, string(result.Content), "(A) Vessel's Description")
	assert.NotEmpty(t, result.Document.ID)
	assert.Empty(t, result.Advisories)
	assert.Contains(t, result.Suggestions, "Shellvoy 6")
	assert.Equal(t, "Houston to Rotterdam", result.Terms.Text(domain.FieldRoute))
	assert.Equal(t, "200,000–250,000 tons", result.Terms.Text(domain.FieldCargoCapacity))
	assert.False(t, result.Saved)
}

func TestCharterService_Generate_ExplicitRouteEditWins(t *testing.T) {
	svc := newTestCharterService(nil)
	req := validRequest()
	req.Edits[domain.FieldRoute] = "USG / UKC"

	result, err := svc.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "USG / UKC", result.Terms.Text(domain.FieldRoute))
}

func TestCharterService_Generate_ValidationBlocks(t *testing.T) {
	svc := newTestCharterService(memory.NewRecordStore())
	req := validRequest()
	req.Edits[domain.FieldOwners] = ""
	req.Edits[domain.FieldCancelling] = "2025-04-01"
	req.Save = true

	result, err := svc.Generate(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{domain.FieldCancelling, domain.FieldOwners}, verrs.Fields())

	require.NotNil(t, result)
	assert.False(t, result.Valid())
	assert.Nil(t, result.Document)
	assert.Nil(t, result.Content)
	assert.False(t, result.Saved)

	recs, err := svc.Records(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestCharterService_Generate_ParseErrorReported(t *testing.T) {
	svc := newTestCharterService(nil)
	req := validRequest()
	req.Edits[domain.FieldLaydays] = "01/05/2025"

	result, err := svc.Generate(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "must be a date in YYYY-MM-DD format", result.Errors[domain.FieldLaydays])
	assert.Equal(t, "01/05/2025", result.Terms.Text(domain.FieldLaydays))
}

func TestCharterService_Generate_UnknownTemplate(t *testing.T) {
	svc := newTestCharterService(nil)

	result, err := svc.Generate(context.Background(), driving.GenerateRequest{TemplateName: "Gencon 1994"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, result.Template.IsEmpty())
	assert.Equal(t, []string{domain.FieldCharterers, domain.FieldOwners, domain.FieldVesselName}, result.Errors.Fields())
}

func TestCharterService_Generate_UnknownTemplateWithTerms(t *testing.T) {
	svc := newTestCharterService(nil)
	req := validRequest()
	req.TemplateName = "Gencon 1994"

	result, err := svc.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Gencon_1994_Charter.md", result.FileName)
	assert.Equal(t, "Acme Shipping", result.Terms.Text(domain.FieldOwners))
	assert.False(t, result.Terms.Has(domain.FieldRoute))
}

func TestCharterService_Generate_InvalidRequest(t *testing.T) {
	svc := newTestCharterService(nil)

	_, err := svc.Generate(context.Background(), driving.GenerateRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req := validRequest()
	req.Format = domain.FormatDocx
	_, err = svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestCharterService_Generate_SerializerError(t *testing.T) {
	catalog := NewCatalog(nil)
	svc := NewCharterService(catalog, nil, nil,
		[]driven.DocumentSerializer{headingSerializer{err: errors.New("zip failure")}},
		WithDefaultFormat(domain.FormatMarkdown))

	result, err := svc.Generate(context.Background(), validRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "zip failure")
	assert.NotNil(t, result.Document)
	assert.Nil(t, result.Suggestions)
}

func TestCharterService_Generate_Save(t *testing.T) {
	records := memory.NewRecordStore()
	svc := newTestCharterService(records)
	req := validRequest()
	req.Save = true

	result, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Saved)

	recs, err := svc.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Shellvoy 6", recs[0].Template)
	assert.Equal(t, "VLCC", recs[0].VesselClass)
	assert.Equal(t, "2025-05-01", recs[0].Terms[domain.FieldLaydays])
	assert.Equal(t, "true", recs[0].Terms[domain.FieldUseWorldscale])
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), recs[0].SavedAt)
}

func TestCharterService_Generate_SaveFailureKeepsResult(t *testing.T) {
	svc := newTestCharterService(failingRecordStore{})
	req := validRequest()
	req.Save = true

	result, err := svc.Generate(context.Background(), req)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
	assert.NotEmpty(t, result.Content)
	assert.False(t, result.Saved)
}

func TestCharterService_SaveTwiceAppends(t *testing.T) {
	svc := newTestCharterService(memory.NewRecordStore())
	ctx := context.Background()
	rec := domain.CharterRecord{Template: "BPVOY4", VesselClass: "Panamax", Terms: map[string]string{"Owners": "Acme"}}

	require.NoError(t, svc.Save(ctx, rec))
	require.NoError(t, svc.Save(ctx, rec))

	recs, err := svc.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for _, got := range recs {
		assert.Equal(t, rec.Template, got.Template)
		assert.Equal(t, rec.VesselClass, got.VesselClass)
		assert.Equal(t, rec.Terms, got.Terms)
	}
}

func TestCharterService_NoRecordStore(t *testing.T) {
	svc := newTestCharterService(nil)

	assert.ErrorIs(t, svc.Save(context.Background(), domain.CharterRecord{}), domain.ErrStoreUnavailable)
	_, err := svc.Records(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestCharterService_RecordStoreFailure(t *testing.T) {
	svc := newTestCharterService(failingRecordStore{})

	_, err := svc.Records(context.Background())

	assert.ErrorContains(t, err, "read-only filesystem")
}

func TestCharterService_Preview(t *testing.T) {
	svc := newTestCharterService(nil)

	tpl := svc.Preview("BPVOY4", "ULCC")

	f, ok := tpl.Field(domain.FieldDemurrage)
	require.True(t, ok)
	assert.Equal(t, "$50,000/day", f.Default)
}

func TestCharterService_EstimateRate(t *testing.T) {
	ctx := context.Background()

	_, err := newTestCharterService(nil).EstimateRate(ctx, domain.RateQuery{DistanceNM: 100, VesselClass: domain.VLCC})
	assert.ErrorIs(t, err, domain.ErrEstimatorUnavailable)

	svc := newTestCharterService(nil, WithRateEstimator(NewLinearRateEstimator(0)))
	est, err := svc.EstimateRate(ctx, domain.RateQuery{DistanceNM: 100, VesselClass: domain.VLCC})
	require.NoError(t, err)
	assert.InDelta(t, 18.75, est.PerTonUSD, 1e-9)
}

func TestFileNameFor(t *testing.T) {
	assert.Equal(t, "Asbatankvoy_2025_Charter.docx", FileNameFor("Asbatankvoy 2025", "docx"))
	assert.Equal(t, "Shell_Time_4_Charter.md", FileNameFor("  Shell  Time 4 ", ".md"))
	assert.Equal(t, "A_B_Charter.txt", FileNameFor("A/B", "txt"))
}
