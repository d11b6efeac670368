package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change settings stored in config.toml.

Keys:
  storage.backend                  file, sqlite or memory
  storage.dir                      data directory (default ~/.charta/data)
  catalog.file                     optional YAML template catalog, watched for changes
  render.format                    docx, markdown or listing
  validation.strict_freight_rate   reject Worldscale notation in Freight Rate
  rate.per_mile                    USD per ton per nautical mile for estimates
  server.addr                      listen address for "charta serve"
  server.rate_limit                requests per second for "charta serve"`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	s := settingsService.Get()
	if configPath != "" {
		cmd.Printf("Config file: %s\n\n", configPath)
	}
	for _, key := range settingsService.Keys() {
		cmd.Printf("  %-32s %s\n", key, settingValue(s, key))
	}
	cmd.Printf("\nStorage: %s\n", s.StorageBackend.Description())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", args[0], settingValue(settingsService.Get(), args[0]))
	return nil
}

// settingValue renders one typed setting for display.
func settingValue(s domain.Settings, key string) string {
	switch key {
	case services.KeyStorageBackend:
		return s.StorageBackend.String()
	case services.KeyStorageDir:
		return orDefault(s.DataDir, "(default)")
	case services.KeyCatalogFile:
		return orDefault(s.CatalogFile, "(built-in templates)")
	case services.KeyRenderFormat:
		return s.DefaultFormat.String()
	case services.KeyStrictFreightRate:
		return strconv.FormatBool(s.StrictFreightRate)
	case services.KeyRatePerMile:
		return strconv.FormatFloat(s.RatePerMile, 'f', -1, 64)
	case services.KeyServerAddr:
		return s.ServerAddr
	case services.KeyServerRateLimit:
		return strconv.FormatFloat(s.ServerRateLimit, 'f', -1, 64)
	default:
		return fmt.Sprintf("(unknown key %q)", key)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
