package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/charta/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/charta/internal/core/domain"
)

var (
	serveAddr      string
	serveRateLimit float64
	serveOrigins   []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start a JSON REST API for template lookup, route suggestions, charter
generation and the record log.

Endpoints:
  GET  /api/templates                  template names
  GET  /api/templates/:name            template fields (?vessel_class=VLCC)
  GET  /api/routes/suggest?route=...   suggested templates
  GET  /api/vessel-classes             class reference table
  GET  /api/clauses                    clause library
  POST /api/charters/generate          generate (?download=true for the file)
  GET  /api/charters                   saved records
  POST /api/charters                   save a record
  GET  /api/rates/estimate             ?distance_nm=&vessel_class=`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from server.addr)")
	serveCmd.Flags().Float64Var(&serveRateLimit, "rate-limit", 0, "requests per second (default from server.rate_limit)")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "cors-origin", nil, "allowed CORS origins (default any)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if charterService == nil {
		return errNoCharter
	}
	if catalogService == nil {
		return errNoCatalog
	}

	settings := domain.DefaultSettings()
	if settingsService != nil {
		settings = settingsService.Get()
	}
	addr := orDefault(serveAddr, settings.ServerAddr)
	limit := settings.ServerRateLimit
	if serveRateLimit > 0 {
		limit = serveRateLimit
	}

	opts := []httpapi.Option{
		httpapi.WithRateLimit(httpapi.RateLimitConfig{RequestsPerSecond: limit}),
	}
	if len(serveOrigins) > 0 {
		opts = append(opts, httpapi.WithAllowedOrigins(serveOrigins...))
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Catalog: catalogService,
		Charter: charterService,
		Advisor: routeAdvisor,
	}, opts...)
	if err != nil {
		return err
	}

	cmd.Printf("charta API listening on %s\n", addr)
	return server.Run(commandContext(cmd), addr)
}
