package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charta/internal/core/domain"
)

var recordsJSON bool

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse saved charter records",
	Long:  `List and show charter records saved with "generate --save".`,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved records",
	Args:  cobra.NoArgs,
	RunE:  runRecordsList,
}

var recordsShowCmd = &cobra.Command{
	Use:   "show [number]",
	Short: "Show the terms of a saved record",
	Long:  `Show a saved record, numbered from 1 in the order shown by "records list".`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsShow,
}

func init() {
	recordsListCmd.Flags().BoolVar(&recordsJSON, "json", false, "output as JSON")
	recordsShowCmd.Flags().BoolVar(&recordsJSON, "json", false, "output as JSON")
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsShowCmd)
	rootCmd.AddCommand(recordsCmd)
}

func runRecordsList(cmd *cobra.Command, _ []string) error {
	if charterService == nil {
		return errNoCharter
	}

	recs, err := charterService.Records(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	if recordsJSON {
		return printJSON(cmd, recs)
	}
	if len(recs) == 0 {
		cmd.Println("No charter records saved.")
		return nil
	}

	for i, r := range recs {
		saved := "-"
		if !r.SavedAt.IsZero() {
			saved = r.SavedAt.Format("2006-01-02 15:04")
		}
		class := r.VesselClass
		if class == "" {
			class = "-"
		}
		cmd.Printf("  [%d] %-20s %-8s %-16s %s\n", i+1, r.Template, class, saved, r.Terms[domain.FieldVesselName])
	}
	cmd.Printf("\nTotal: %d records\n", len(recs))
	return nil
}

func runRecordsShow(cmd *cobra.Command, args []string) error {
	if charterService == nil {
		return errNoCharter
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("%w: record number must be a positive integer", domain.ErrInvalidInput)
	}

	recs, err := charterService.Records(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	if n > len(recs) {
		return fmt.Errorf("record %d: %w", n, domain.ErrNotFound)
	}
	rec := recs[n-1]
	if recordsJSON {
		return printJSON(cmd, rec)
	}

	tpl := charterService.Preview(rec.Template, rec.VesselClass)
	terms := rec.TermSet(tpl)

	cmd.Printf("Record %d: %s", n, rec.Template)
	if rec.VesselClass != "" {
		cmd.Printf(" (%s)", rec.VesselClass)
	}
	cmd.Println()
	if !rec.SavedAt.IsZero() {
		cmd.Printf("Saved: %s\n", rec.SavedAt.Format("2006-01-02 15:04:05"))
	}
	cmd.Println()
	for _, name := range terms.Names() {
		cmd.Printf("  %s: %s\n", name, terms.Text(name))
	}
	return nil
}
