package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// generateFlags holds the flags of the generate command.
type generateFlags struct {
	vesselClass string
	route       string
	sets        []string
	clauses     []string
	extra       string
	extraFile   string
	format      string
	output      string
	save        bool
	force       bool
}

var genFlags generateFlags

// isTerminal reports whether a writer is an interactive terminal.
// Replaced in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var generateCmd = &cobra.Command{
	Use:   "generate [template]",
	Short: "Generate a charter party document",
	Long: `Generate a charter party from a template.

The template defaults are adjusted for the vessel class, your terms are
merged on top and the result is validated. Validation failures are listed
per field and no document is written.

Examples:
  charta generate "Shellvoy 6" -c VLCC --route "Houston to Rotterdam" \
    --set Owners="Nordic Tankers" --set Charterers="Gulf Trading" \
    --set "Vessel Name=MT Aurora" --set "Loading Port=Houston" \
    --set "Discharging Port=Rotterdam" --clause "Pollution Liability"

  # Markdown to stdout
  charta generate Asbatankvoy --format markdown -o - --set ...`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genFlags.vesselClass, "vessel-class", "c", "", "vessel class (Panamax, Aframax, Suezmax, VLCC, ULCC)")
	f.StringVarP(&genFlags.route, "route", "r", "", "trade route, e.g. \"Houston to Rotterdam\"")
	f.StringArrayVarP(&genFlags.sets, "set", "s", nil, "set a term as Field=value (repeatable)")
	f.StringArrayVar(&genFlags.clauses, "clause", nil, "add a library clause by title (repeatable)")
	f.StringVar(&genFlags.extra, "extra", "", "freeform additional clause text")
	f.StringVar(&genFlags.extraFile, "extra-file", "", "read freeform additional clause text from a file")
	f.StringVarP(&genFlags.format, "format", "f", "", "output format: docx, markdown or listing (default from config)")
	f.StringVarP(&genFlags.output, "output", "o", "", "output file, or - for stdout (default <template>_Charter.<ext>)")
	f.BoolVar(&genFlags.save, "save", false, "append the terms to the charter record log")
	f.BoolVar(&genFlags.force, "force", false, "write binary output to a terminal")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if charterService == nil {
		return errNoCharter
	}

	edits, err := parseAssignments(genFlags.sets)
	if err != nil {
		return err
	}

	freeform := genFlags.extra
	if genFlags.extraFile != "" {
		data, err := os.ReadFile(genFlags.extraFile)
		if err != nil {
			return fmt.Errorf("reading extra clauses: %w", err)
		}
		freeform = strings.TrimSpace(strings.Join([]string{freeform, string(data)}, "\n\n"))
	}

	req := driving.GenerateRequest{
		TemplateName: args[0],
		VesselClass:  genFlags.vesselClass,
		Route:        genFlags.route,
		Edits:        edits,
		Clauses:      genFlags.clauses,
		Freeform:     freeform,
		Format:       domain.OutputFormat(strings.ToLower(genFlags.format)),
		Save:         genFlags.save,
	}

	result, err := charterService.Generate(commandContext(cmd), req)
	if err != nil {
		if result != nil && len(result.Errors) > 0 {
			printValidationErrors(cmd, result.Errors)
		}
		return err
	}

	if len(result.Suggestions) > 0 && !containsName(result.Suggestions, result.Template.Name) {
		cmd.PrintErrf("Note: %s is not usual on %q; suggested: %s\n",
			args[0], genFlags.route, strings.Join(result.Suggestions, ", "))
	}
	for _, a := range result.Advisories {
		cmd.PrintErrf("Advisory: %s\n", a)
	}

	if genFlags.output == "-" {
		out := cmd.OutOrStdout()
		if strings.HasSuffix(result.FileName, ".docx") && isTerminal(out) && !genFlags.force {
			return errors.New("refusing to write a docx file to the terminal; use -o <file> or --force")
		}
		_, err := out.Write(result.Content)
		return err
	}

	path := genFlags.output
	if path == "" {
		path = result.FileName
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, result.Content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	cmd.Printf("Wrote %s (%d bytes)\n", path, len(result.Content))
	if result.Saved {
		cmd.Println("Saved charter record.")
	}
	return nil
}

// parseAssignments turns "Field=value" pairs into an edit map. Field
// names may contain spaces; only the first '=' splits.
func parseAssignments(pairs []string) (map[string]string, error) {
	edits := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: --set %q must be Field=value", domain.ErrInvalidInput, p)
		}
		edits[key] = value
	}
	return edits, nil
}

func printValidationErrors(cmd *cobra.Command, errs domain.ValidationErrors) {
	cmd.PrintErrln("Validation failed:")
	for _, field := range errs.Fields() {
		cmd.PrintErrf("  %s: %s\n", field, errs[field])
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
