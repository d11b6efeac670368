package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charta/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/charta/internal/core/domain"
)

var templatesJSON bool

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"template", "tpl"},
	Short:   "Browse charter-party templates",
	Long:    `List the template catalog, show a template's fields and suggest forms for a trade route.`,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List template names",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesList,
}

var templatesShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a template's fields and defaults",
	Long: `Show a template's fields and default values. With --vessel-class the
defaults are adjusted for that class first.`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplatesShow,
}

var templatesSuggestCmd = &cobra.Command{
	Use:   "suggest [route]",
	Short: "Suggest templates for a trade route",
	Long: `Suggest the templates conventionally used on a route, for example
"Houston to Rotterdam". Unknown routes list every template.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplatesSuggest,
}

var templatesImportCmd = &cobra.Command{
	Use:   "import [catalog.yaml]",
	Short: "Import templates from a YAML catalog file",
	Long: `Read templates from a YAML catalog file and save them to the configured
store, replacing templates with the same name.

File format:
  templates:
    - name: Gencon 1994
      kind: voyage
      fields:
        - name: Owners
          kind: scalar
          default: ""`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplatesImport,
}

var showVesselClass string

func init() {
	templatesListCmd.Flags().BoolVar(&templatesJSON, "json", false, "output as JSON")
	templatesShowCmd.Flags().BoolVar(&templatesJSON, "json", false, "output as JSON")
	templatesShowCmd.Flags().StringVarP(&showVesselClass, "vessel-class", "c", "", "adjust defaults for a vessel class")
	templatesSuggestCmd.Flags().BoolVar(&templatesJSON, "json", false, "output as JSON")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
	templatesCmd.AddCommand(templatesSuggestCmd)
	templatesCmd.AddCommand(templatesImportCmd)
	rootCmd.AddCommand(templatesCmd)
}

func runTemplatesList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	names := catalogService.ListTemplateNames()
	if templatesJSON {
		return printJSON(cmd, names)
	}
	if len(names) == 0 {
		cmd.Println("No templates configured.")
		return nil
	}

	cmd.Println("Templates:")
	for _, name := range names {
		tpl := catalogService.GetTemplate(name)
		cmd.Printf("  %-22s %s charter, %d fields\n", name, tpl.Kind, len(tpl.Fields))
	}
	return nil
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errNoCatalog
	}

	var tpl domain.Template
	if charterService != nil {
		tpl = charterService.Preview(args[0], showVesselClass)
	} else {
		tpl = catalogService.GetTemplate(args[0])
	}
	if tpl.IsEmpty() {
		return fmt.Errorf("template %q: %w", args[0], domain.ErrNotFound)
	}

	if templatesJSON {
		return printJSON(cmd, tpl)
	}

	cmd.Printf("Template: %s (%s charter)\n", tpl.Name, tpl.Kind)
	if showVesselClass != "" {
		cmd.Printf("Vessel class: %s\n", showVesselClass)
	}
	cmd.Println()
	for _, f := range tpl.Fields {
		def := f.Default
		if strings.Contains(def, "\n") {
			def = strings.SplitN(def, "\n", 2)[0] + " ..."
		}
		if def == "" {
			def = "-"
		}
		cmd.Printf("  %-20s %-7s %s\n", f.Name, f.Kind, def)
	}
	return nil
}

func runTemplatesSuggest(cmd *cobra.Command, args []string) error {
	if routeAdvisor == nil {
		return errors.New("route advisor not configured")
	}

	route := ""
	if len(args) == 1 {
		route = args[0]
	}
	names := routeAdvisor.Suggest(route)
	if templatesJSON {
		return printJSON(cmd, names)
	}

	if route == "" {
		cmd.Println("Templates:")
	} else {
		cmd.Printf("Templates for %q:\n", route)
	}
	for i, name := range names {
		cmd.Printf("  [%d] %s\n", i+1, name)
	}
	return nil
}

func runTemplatesImport(cmd *cobra.Command, args []string) error {
	if templateStore == nil {
		return errors.New("template store not configured")
	}
	ctx := commandContext(cmd)

	source := file.NewCatalogStore(args[0])
	names, err := source.Names(ctx)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	if len(names) == 0 {
		cmd.Println("No templates found.")
		return nil
	}

	for _, name := range names {
		tpl, err := source.Get(ctx, name)
		if err != nil {
			return fmt.Errorf("reading template %q: %w", name, err)
		}
		if err := templateStore.Save(ctx, *tpl); err != nil {
			return fmt.Errorf("saving template %q: %w", name, err)
		}
		cmd.Printf("Imported %s\n", name)
	}

	if catalogService != nil {
		if err := catalogService.Reload(ctx); err != nil {
			return fmt.Errorf("reloading catalog: %w", err)
		}
	}
	cmd.Printf("Total: %d templates\n", len(names))
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
