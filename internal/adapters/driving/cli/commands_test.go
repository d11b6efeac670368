package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/adapters/driven/serializer/docx"
	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// validTerms are --set flags that pass validation on a voyage template.
var validTerms = []string{
	"--set", "Owners=Nordic Tankers",
	"--set", "Charterers=Gulf Trading",
	"--set", "Vessel Name=MT Aurora",
	"--set", "Loading Port=Bonny",
	"--set", "Discharging Port=Ningbo",
	"--set", "Laydays=2025-06-01",
	"--set", "Cancelling=2025-06-07",
}

func generateRequestFor(template string) driving.GenerateRequest {
	edits, _ := parseAssignments([]string{
		"Owners=Nordic Tankers", "Charterers=Gulf Trading", "Vessel Name=MT Aurora",
		"Loading Port=Bonny", "Discharging Port=Ningbo",
		"Laydays=2025-06-01", "Cancelling=2025-06-07",
	})
	return driving.GenerateRequest{TemplateName: template, Edits: edits, Format: domain.FormatDocx}
}

func generateArgs(template string, extra ...string) []string {
	args := append([]string{"generate", template}, validTerms...)
	return append(args, extra...)
}

func TestTemplatesList(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "templates", "list")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Templates:")
	assert.Contains(t, stdout, "Shell Time 4")
	assert.Contains(t, stdout, "time charter")
	assert.Contains(t, stdout, "INTERTANKVOY 76")
}

func TestTemplatesList_JSON(t *testing.T) {
	svc := setupTestServices(t)

	stdout, _, err := execute(t, "templates", "list", "--json")

	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &names))
	assert.Equal(t, svc.catalog.ListTemplateNames(), names)
}

func TestTemplatesShow_AdjustedForClass(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "tpl", "show", "BPVOY4", "-c", "VLCC")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Template: BPVOY4 (voyage charter)")
	assert.Contains(t, stdout, "Vessel class: VLCC")
	assert.Contains(t, stdout, "200,000–250,000 tons")
	assert.Contains(t, stdout, "$40,000/day")
	assert.Contains(t, stdout, "1. ")
	assert.Contains(t, stdout, " ...")
}

func TestTemplatesShow_Unknown(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, "templates", "show", "Gencon")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplatesSuggest(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "templates", "suggest", "Persian Gulf to Singapore")

	require.NoError(t, err)
	assert.Contains(t, stdout, `Templates for "Persian Gulf to Singapore":`)
	assert.Contains(t, stdout, "[1] Asbatankvoy 2025")
	assert.NotContains(t, stdout, "BPVOY4")
}

func TestTemplatesSuggest_NoRoute(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "templates", "suggest", "--json")

	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &names))
	assert.Len(t, names, len(domain.BuiltinTemplates()))
}

func TestTemplatesImport(t *testing.T) {
	svc := setupTestServices(t)
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`templates:
  - name: Gencon 1994
    kind: voyage
    fields:
      - name: Owners
        kind: scalar
        default: "[Owner Name]"
      - name: Laydays
        kind: date
`), 0o600))

	stdout, _, err := execute(t, "templates", "import", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported Gencon 1994")
	assert.Contains(t, stdout, "Total: 1 templates")
	assert.Contains(t, svc.catalog.ListTemplateNames(), "Gencon 1994")
	assert.True(t, svc.catalog.GetTemplate("Gencon 1994").Has(domain.FieldLaydays))
}

func TestTemplatesImport_MissingFile(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, "templates", "import", filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerate_MarkdownToFile(t *testing.T) {
	svc := setupTestServices(t)
	out := filepath.Join(t.TempDir(), "charters", "aurora.md")

	stdout, stderr, err := execute(t, generateArgs("Asbatankvoy 2025",
		"-c", "Suezmax", "-r", "West Africa to China", "-f", "markdown",
		"--clause", "Pollution Liability", "-o", out, "--save")...)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote "+out)
	assert.Contains(t, stdout, "Saved charter record.")
	assert.NotContains(t, stderr, "Note:")

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# ASBATANKVOY 2025")
	assert.Contains(t, string(content), "MT Aurora")

	recs, err := svc.charter.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Suezmax", recs[0].VesselClass)
}

func TestGenerate_ListingToStdout(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, generateArgs("BPVOY4", "-f", "listing", "-o", "-")...)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Vessel Name: MT Aurora")
	assert.Contains(t, stdout, "Loading Port: Bonny")
}

func TestGenerate_UnusualTemplateNote(t *testing.T) {
	setupTestServices(t)

	_, stderr, err := execute(t, generateArgs("BPVOY4",
		"-r", "Persian Gulf to Singapore", "-f", "markdown", "-o", "-")...)

	require.NoError(t, err)
	assert.Contains(t, stderr, `Note: BPVOY4 is not usual on "Persian Gulf to Singapore"`)
}

func TestGenerate_ExtraFile(t *testing.T) {
	setupTestServices(t)
	extra := filepath.Join(t.TempDir(), "extra.txt")
	require.NoError(t, os.WriteFile(extra, []byte("Charterers may nominate a second discharge port.\n"), 0o600))

	stdout, _, err := execute(t, generateArgs("BPVOY4", "-f", "markdown", "-o", "-", "--extra-file", extra)...)

	require.NoError(t, err)
	assert.Contains(t, stdout, "second discharge port")
}

func TestGenerate_ValidationFailure(t *testing.T) {
	setupTestServices(t)

	_, stderr, err := execute(t, generateArgs("BPVOY4",
		"--set", "Cancelling=2025-05-01", "-f", "markdown", "-o", "-")...)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, stderr, "Validation failed:")
	assert.Contains(t, stderr, "Cancelling")
}

func TestGenerate_BadAssignment(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, "generate", "BPVOY4", "--set", "Owners")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_DocxRefusedOnTerminal(t *testing.T) {
	setupTestServices(t)
	original := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() { isTerminal = original })

	_, _, err := execute(t, generateArgs("BPVOY4", "-f", "docx", "-o", "-")...)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write a docx file")
}

func TestGenerate_DocxForcedToStdout(t *testing.T) {
	setupTestServices(t)
	original := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() { isTerminal = original })

	stdout, _, err := execute(t, generateArgs("BPVOY4", "-f", "docx", "-o", "-", "--force")...)

	require.NoError(t, err)
	ex, err := docx.Read([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, "BPVOY4", ex.Title)
}

func TestRecords_ListAndShow(t *testing.T) {
	setupTestServices(t)
	_, _, err := execute(t, generateArgs("BPVOY4", "-c", "Aframax", "-f", "markdown", "-o", "-", "--save")...)
	require.NoError(t, err)

	resetCommandState()
	stdout, _, err := execute(t, "records", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[1] BPVOY4")
	assert.Contains(t, stdout, "Aframax")
	assert.Contains(t, stdout, "MT Aurora")
	assert.Contains(t, stdout, "Total: 1 records")

	resetCommandState()
	stdout, _, err = execute(t, "records", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Record 1: BPVOY4 (Aframax)")
	assert.Contains(t, stdout, "Vessel Name: MT Aurora")
	assert.Contains(t, stdout, "Laydays: 2025-06-01")
}

func TestRecords_Empty(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "records", "list")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No charter records saved.")
}

func TestRecords_ShowBadNumber(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, "records", "show", "zero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resetCommandState()
	_, _, err = execute(t, "records", "show", "3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEstimate(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "estimate", "-d", "5000", "-c", "VLCC")

	require.NoError(t, err)
	assert.Equal(t, "VLCC, 5000 nm: $937.50 per ton (linear placeholder)\n", stdout)
}

func TestEstimate_JSONAndErrors(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "estimate", "-d", "1000", "-c", "panamax", "--json")
	require.NoError(t, err)
	var est domain.RateEstimate
	require.NoError(t, json.Unmarshal([]byte(stdout), &est))
	assert.Equal(t, domain.Panamax, est.VesselClass)
	assert.InDelta(t, 50.0, est.PerTonUSD, 0.001)

	resetCommandState()
	_, _, err = execute(t, "estimate", "-d", "1000", "-c", "Capesize")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEstimate_RequiresFlags(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, "estimate", "-c", "VLCC")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "distance")
}

func TestConfig_ShowAndSet(t *testing.T) {
	setupTestServices(t)
	configPath = "/home/user/.charta/config.toml"

	stdout, _, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file: /home/user/.charta/config.toml")
	assert.Contains(t, stdout, "storage.backend")
	assert.Contains(t, stdout, "(built-in templates)")
	assert.Contains(t, stdout, "Storage: File (JSON record log)")

	resetCommandState()
	stdout, _, err = execute(t, "config", "set", "render.format", "Markdown")
	require.NoError(t, err)
	assert.Equal(t, "render.format = markdown\n", stdout)

	resetCommandState()
	_, _, err = execute(t, "config", "set", "rate.per_mile", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingValue_UnknownKey(t *testing.T) {
	assert.Equal(t, `(unknown key "nope")`, settingValue(domain.DefaultSettings(), "nope"))
}

func TestReferenceCommands(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute(t, "vessels")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CARGO CAPACITY")
	assert.Contains(t, stdout, "ULCC")

	resetCommandState()
	stdout, _, err = execute(t, "clauses")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Pollution Liability")

	resetCommandState()
	stdout, _, err = execute(t, "ports")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Rotterdam")
	assert.NotContains(t, stdout, domain.PortUnselected)

	resetCommandState()
	stdout, _, err = execute(t, "clauses", "--json")
	require.NoError(t, err)
	var clauses []domain.Clause
	require.NoError(t, json.Unmarshal([]byte(stdout), &clauses))
	assert.Len(t, clauses, len(domain.ClauseLibrary()))
}

func TestInspect(t *testing.T) {
	svc := setupTestServices(t)
	result, err := svc.charter.Generate(context.Background(), generateRequestFor("Shellvoy 6"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), result.FileName)
	require.NoError(t, os.WriteFile(path, result.Content, 0o600))

	stdout, _, err := execute(t, "inspect", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Title: SHELLVOY 6")
	assert.Contains(t, stdout, "MT Aurora")
}

func TestInspect_NotDocx(t *testing.T) {
	setupTestServices(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))

	_, _, err := execute(t, "inspect", path)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServe_StopsWithContext(t *testing.T) {
	setupTestServices(t)
	serveAddr = "127.0.0.1:0"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := new(bytes.Buffer)
	serveCmd.SetOut(buf)
	serveCmd.SetContext(ctx)
	t.Cleanup(func() {
		serveCmd.SetOut(nil)
		serveCmd.SetContext(context.Background())
	})

	err := runServe(serveCmd, nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "charta API listening on 127.0.0.1:0")
}

func TestServe_WithoutServices(t *testing.T) {
	setupTestServices(t)
	SetServices(Services{})

	assert.ErrorIs(t, runServe(serveCmd, nil), errNoCharter)
}

func TestMCPServe_WithoutServices(t *testing.T) {
	setupTestServices(t)
	SetServices(Services{})

	_, _, err := execute(t, "mcp", "serve")

	require.Error(t, err)
}
