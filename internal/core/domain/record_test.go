package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCharterRecord_RoundTrip(t *testing.T) {
	tpl := BuiltinTemplates()[1]
	ts := NewTermSet()
	ts.Set(FieldOwners, Text("Acme Shipping"))
	ts.Set(FieldLaydays, Date(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	ts.Set(FieldUseWorldscale, Flag(false))
	ts.Set("Rider", Text("extra"))

	rec := NewCharterRecord(tpl.Name, "VLCC", ts)

	assert.Equal(t, "2025-06-01", rec.Terms[FieldLaydays])
	assert.Equal(t, "false", rec.Terms[FieldUseWorldscale])

	back := rec.TermSet(tpl)
	assert.Equal(t, []string{FieldOwners, FieldLaydays, FieldUseWorldscale, "Rider"}, back.Names())

	v, _ := back.Get(FieldLaydays)
	assert.Equal(t, ValueDate, v.Kind)
	v, _ = back.Get(FieldUseWorldscale)
	assert.Equal(t, Flag(false), v)
}

func TestCharterRecord_UnparsableStaysText(t *testing.T) {
	tpl := BuiltinTemplates()[1]
	rec := CharterRecord{Terms: map[string]string{FieldLaydays: "next week"}}

	v, ok := rec.TermSet(tpl).Get(FieldLaydays)

	assert.True(t, ok)
	assert.Equal(t, Text("next week"), v)
}
