package services

import (
	"strings"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// clauseFields are scanned, in this order, for compliance markers.
var clauseFields = []string{
	domain.FieldStandardClauses,
	domain.FieldModernClauses,
	domain.FieldAdditionalClauses,
}

// ComplianceChecker scans clause text for required markers.
// Its findings are advisory and never block generation.
type ComplianceChecker struct {
	rules []domain.ComplianceRule
}

// NewComplianceChecker creates a checker. With no rules it uses
// domain.DefaultComplianceRules.
func NewComplianceChecker(rules ...domain.ComplianceRule) *ComplianceChecker {
	if len(rules) == 0 {
		rules = domain.DefaultComplianceRules()
	}
	return &ComplianceChecker{rules: rules}
}

// Check returns one advisory per rule whose marker is missing from the
// combined clause text, in rule order.
func (c *ComplianceChecker) Check(terms *domain.TermSet) []string {
	var text strings.Builder
	for _, name := range clauseFields {
		text.WriteString(terms.Text(name))
		text.WriteString("\n")
	}
	combined := text.String()

	advisories := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		if !strings.Contains(combined, r.Marker) {
			advisories = append(advisories, r.Advisory)
		}
	}
	return advisories
}
