package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultComplianceRules(t *testing.T) {
	rules := DefaultComplianceRules()

	require.Len(t, rules, 1)
	assert.Equal(t, "TOVALOP", rules[0].Marker)
	assert.Equal(t, "TOVALOP clause recommended for pollution liability compliance.", rules[0].Advisory)
}

func TestDefaultComplianceRules_ReturnsCopy(t *testing.T) {
	rules := DefaultComplianceRules()
	rules[0].Marker = "CHANGED"

	assert.Equal(t, "TOVALOP", DefaultComplianceRules()[0].Marker)
}

func TestDocument_JSONShape(t *testing.T) {
	doc := Document{
		ID:       "doc-1",
		Template: "BPVOY4",
		Title:    "BPVOY4",
		Sections: []Section{
			{Part: "PART I", Heading: "(A) Owners", Body: "Nordic Tankers"},
			{Heading: "Compliance Warnings", Body: "None."},
		},
		Terms:      []KeyValue{{Key: FieldOwners, Value: "Nordic Tankers"}},
		Advisories: []string{},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "BPVOY4", raw["template"])
	sections, ok := raw["sections"].([]any)
	require.True(t, ok)
	require.Len(t, sections, 2)
	first := sections[0].(map[string]any)
	assert.Equal(t, "PART I", first["part"])
	second := sections[1].(map[string]any)
	_, hasPart := second["part"]
	assert.False(t, hasPart, "empty part is omitted")
	terms := raw["terms"].([]any)
	assert.Equal(t, map[string]any{"key": "Owners", "value": "Nordic Tankers"}, terms[0])
}
