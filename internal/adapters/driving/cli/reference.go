package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/charta/internal/core/domain"
)

var referenceJSON bool

var vesselsCmd = &cobra.Command{
	Use:         "vessels",
	Short:       "List vessel classes and their reference terms",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runVessels,
}

var clausesCmd = &cobra.Command{
	Use:         "clauses",
	Short:       "List the optional clause library",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runClauses,
}

var portsCmd = &cobra.Command{
	Use:         "ports",
	Short:       "List known loading and discharging ports",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runPorts,
}

func init() {
	for _, c := range []*cobra.Command{vesselsCmd, clausesCmd, portsCmd} {
		c.Flags().BoolVar(&referenceJSON, "json", false, "output as JSON")
		rootCmd.AddCommand(c)
	}
}

func runVessels(cmd *cobra.Command, _ []string) error {
	classes := domain.VesselClasses()
	if referenceJSON {
		return printJSON(cmd, classes)
	}

	cmd.Printf("  %-8s %-22s %-14s %s\n", "CLASS", "CARGO CAPACITY", "FREIGHT", "DEMURRAGE")
	for _, p := range classes {
		cmd.Printf("  %-8s %-22s %-14s %s\n", p.Class, p.CargoCapacity, p.FreightRate, p.Demurrage)
	}
	return nil
}

func runClauses(cmd *cobra.Command, _ []string) error {
	clauses := domain.ClauseLibrary()
	if referenceJSON {
		return printJSON(cmd, clauses)
	}

	cmd.Println("Clause library (select with --clause on generate):")
	cmd.Println()
	for _, c := range clauses {
		cmd.Printf("  %s\n", c.Title)
		if c.Description != "" {
			cmd.Printf("      %s\n", c.Description)
		}
	}
	return nil
}

func runPorts(cmd *cobra.Command, _ []string) error {
	if referenceJSON {
		return printJSON(cmd, domain.KnownPorts)
	}
	for _, p := range domain.KnownPorts {
		if p == domain.PortUnselected {
			continue
		}
		cmd.Printf("  %s\n", p)
	}
	return nil
}
