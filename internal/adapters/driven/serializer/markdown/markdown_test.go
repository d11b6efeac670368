package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/core/domain"
)

func sampleDocument() *domain.Document {
	return &domain.Document{
		ID:       "rendering-1",
		Template: "Asbatankvoy",
		Title:    "ASBATANKVOY",
		Subtitle: "Tanker Voyage Charter Party",
		Preamble: "IT IS THIS DAY AGREED between A and B.",
		Sections: []domain.Section{
			{Part: "Part I", Heading: "(A) Vessel's Description", Body: "Aframax"},
			{Part: "Part I", Heading: "Execution", Body: "Witness.\n\nFor OWNERS: ___\nFor CHARTERERS: ___"},
			{Part: "Annotations", Heading: "Compliance Warnings", Body: "None"},
		},
		Terms: []domain.KeyValue{
			{Key: "Owners", Value: "Nordic Tankers"},
			{Key: "Additional Clauses", Value: "First clause\n\nSecond clause"},
		},
		Advisories: []string{"TOVALOP clause recommended for pollution liability compliance."},
	}
}

func TestSerializer_Metadata(t *testing.T) {
	s := New()
	assert.Equal(t, domain.FormatMarkdown, s.Format())
	assert.Equal(t, "md", s.Extension())
	assert.Contains(t, s.MIMEType(), "text/markdown")

	l := NewListing()
	assert.Equal(t, domain.FormatListing, l.Format())
	assert.Equal(t, "txt", l.Extension())
	assert.Contains(t, l.MIMEType(), "text/plain")
}

func TestSerialize_Markdown(t *testing.T) {
	out, err := New().Serialize(context.Background(), sampleDocument())
	require.NoError(t, err)

	want := "# ASBATANKVOY\n\n" +
		"_Tanker Voyage Charter Party_\n\n" +
		"IT IS THIS DAY AGREED between A and B.\n\n" +
		"## Part I\n\n" +
		"### (A) Vessel's Description\n\n" +
		"Aframax\n\n" +
		"### Execution\n\n" +
		"Witness.\n\nFor OWNERS: ___  \nFor CHARTERERS: ___\n\n" +
		"## Annotations\n\n" +
		"### Compliance Warnings\n\n" +
		"None\n"
	assert.Equal(t, want, string(out))
	assert.NotContains(t, string(out), "rendering-1")
}

func TestSerialize_MarkdownEscapesClauseText(t *testing.T) {
	doc := &domain.Document{
		Title: "BPVOY4",
		Sections: []domain.Section{{
			Heading: "Additional Clauses",
			Body:    "# Not a heading\n---\n    indented\n> quoted\n1. Numbered stays\n\n```\nplain",
		}},
	}

	out, err := New().Serialize(context.Background(), doc)
	require.NoError(t, err)

	want := "# BPVOY4\n\n" +
		"### Additional Clauses\n\n" +
		"\\# Not a heading  \n\\---  \nindented  \n\\> quoted  \n1. Numbered stays\n\n" +
		"\\```  \nplain\n"
	assert.Equal(t, want, string(out))
}

func TestSerialize_MarkdownDeterministic(t *testing.T) {
	a, err := New().Serialize(context.Background(), sampleDocument())
	require.NoError(t, err)
	doc := sampleDocument()
	doc.ID = "rendering-2"
	b, err := New().Serialize(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSerialize_Listing(t *testing.T) {
	out, err := NewListing().Serialize(context.Background(), sampleDocument())
	require.NoError(t, err)

	want := "Owners: Nordic Tankers\n" +
		"Additional Clauses: First clause\n" +
		"  Second clause\n" +
		"Advisory: TOVALOP clause recommended for pollution liability compliance.\n"
	assert.Equal(t, want, string(out))
}

func TestSerialize_NilDocument(t *testing.T) {
	_, err := New().Serialize(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = NewListing().Serialize(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSerialize_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Serialize(ctx, sampleDocument())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = NewListing().Serialize(ctx, sampleDocument())
	assert.ErrorIs(t, err, context.Canceled)
}
