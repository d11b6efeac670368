// Package cli provides the cobra command tree for charta.
//
// Services are injected by the composition root, either directly with
// SetServices or lazily through a bootstrap hook that runs once the global
// flags are parsed.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charta/internal/core/ports/driven"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
	"github.com/custodia-labs/charta/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services are the ports the commands call into.
type Services struct {
	Catalog  driving.CatalogService
	Advisor  driving.RouteAdvisor
	Charter  driving.CharterService
	Settings driving.SettingsService

	// Templates is the writable store behind the catalog, used by
	// "templates import". It may be nil.
	Templates driven.TemplateStore

	// ConfigPath is shown by "config show".
	ConfigPath string
}

// Options are the global flags handed to the bootstrap hook.
type Options struct {
	ConfigDir string
	Ephemeral bool
}

// BootstrapFunc builds services from the global flags. The returned
// cleanup runs after the command finishes.
type BootstrapFunc func(ctx context.Context, opts Options) (Services, func(), error)

var (
	catalogService  driving.CatalogService
	routeAdvisor    driving.RouteAdvisor
	charterService  driving.CharterService
	settingsService driving.SettingsService
	templateStore   driven.TemplateStore
	configPath      string
)

var (
	bootstrap BootstrapFunc
	cleanup   func()
	flagOpts  Options
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "charta",
	Short: "Assemble tanker charter-party documents",
	Long: `charta selects a standard tanker charter-party form, adjusts it for the
vessel class, merges your negotiated terms, checks the clause set for
compliance and renders a finished contract as DOCX, Markdown or a plain
term listing.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&flagOpts.ConfigDir, "config-dir", "", "configuration directory (default ~/.charta)")
	rootCmd.PersistentFlags().BoolVar(&flagOpts.Ephemeral, "ephemeral", false, "keep templates and records in memory only")
}

// SetVersion sets the version reported by "charta version".
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the hook that builds services after flag parsing.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices injects services directly.
func SetServices(s Services) {
	catalogService = s.Catalog
	routeAdvisor = s.Advisor
	charterService = s.Charter
	settingsService = s.Settings
	templateStore = s.Templates
	configPath = s.ConfigPath
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// annotationNoServices marks commands that run without bootstrapping.
const annotationNoServices = "charta/no-services"

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil || cmd.Annotations[annotationNoServices] != "" {
		return nil
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, done, err := bootstrap(ctx, flagOpts)
	if err != nil {
		return err
	}
	SetServices(svc)
	cleanup = done
	return nil
}

// Errors returned when a command runs without its service.
var (
	errNoCatalog  = errors.New("template catalog not configured")
	errNoCharter  = errors.New("charter service not configured")
	errNoSettings = errors.New("settings service not configured")
)

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
