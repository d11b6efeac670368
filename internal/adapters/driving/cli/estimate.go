package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charta/internal/core/domain"
)

var (
	estimateDistance float64
	estimateClass    string
	estimateJSON     bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a placeholder freight rate",
	Long: `Estimate a freight rate per ton from voyage distance and vessel class.

This is a linear placeholder (distance x class size factor x rate per mile),
not a Worldscale tariff lookup. The per-mile rate is set by rate.per_mile.`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().Float64VarP(&estimateDistance, "distance", "d", 0, "voyage distance in nautical miles")
	estimateCmd.Flags().StringVarP(&estimateClass, "vessel-class", "c", "", "vessel class")
	estimateCmd.Flags().BoolVar(&estimateJSON, "json", false, "output as JSON")
	_ = estimateCmd.MarkFlagRequired("distance")
	_ = estimateCmd.MarkFlagRequired("vessel-class")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	if charterService == nil {
		return errNoCharter
	}

	est, err := charterService.EstimateRate(commandContext(cmd), domain.RateQuery{
		DistanceNM:  estimateDistance,
		VesselClass: domain.VesselClass(estimateClass),
	})
	if err != nil {
		return fmt.Errorf("estimate failed: %w", err)
	}
	if estimateJSON {
		return printJSON(cmd, est)
	}

	cmd.Printf("%s, %.0f nm: $%.2f per ton (%s)\n", est.VesselClass, est.DistanceNM, est.PerTonUSD, est.Method)
	return nil
}
