package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/charta/internal/core/domain"
)

func clauseTerms(standard, modern, additional string) *domain.TermSet {
	terms := domain.NewTermSet()
	terms.Set(domain.FieldStandardClauses, domain.Text(standard))
	terms.Set(domain.FieldModernClauses, domain.Text(modern))
	terms.Set(domain.FieldAdditionalClauses, domain.Text(additional))
	return terms
}

func TestComplianceChecker_MissingMarker(t *testing.T) {
	checker := NewComplianceChecker()

	got := checker.Check(clauseTerms("1. Safe berth.", "1. IMO 2020.", ""))

	assert.Equal(t, []string{"TOVALOP clause recommended for pollution liability compliance."}, got)
}

func TestComplianceChecker_MarkerInAnyField(t *testing.T) {
	checker := NewComplianceChecker()

	for name, terms := range map[string]*domain.TermSet{
		"standard":   clauseTerms("TOVALOP applies.", "", ""),
		"modern":     clauseTerms("", "TOVALOP applies.", ""),
		"additional": clauseTerms("", "", "TOVALOP applies."),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, checker.Check(terms))
		})
	}
}

func TestComplianceChecker_EmptyTerms(t *testing.T) {
	checker := NewComplianceChecker()

	assert.Len(t, checker.Check(domain.NewTermSet()), 1)
	assert.Len(t, checker.Check(nil), 1)
}

func TestComplianceChecker_CustomRulesInOrder(t *testing.T) {
	checker := NewComplianceChecker(
		domain.ComplianceRule{Marker: "BIMCO", Advisory: "first"},
		domain.ComplianceRule{Marker: "ISPS", Advisory: "second"},
		domain.ComplianceRule{Marker: "MARPOL", Advisory: "third"},
	)

	got := checker.Check(clauseTerms("Vessel to comply with ISPS code.", "", ""))

	assert.Equal(t, []string{"first", "third"}, got)
}
