package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charta/internal/adapters/driven/serializer/docx"
)

var inspectCmd = &cobra.Command{
	Use:         "inspect [file.docx]",
	Short:       "Print the title and text of a DOCX charter",
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	ex, err := docx.Read(content)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", args[0], err)
	}

	if ex.Title != "" {
		cmd.Printf("Title: %s\n\n", ex.Title)
	}
	for _, p := range ex.Paragraphs {
		cmd.Println(p)
	}
	return nil
}
