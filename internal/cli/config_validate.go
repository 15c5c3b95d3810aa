package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/virtuallist/internal/config"
)

// newConfigValidateCmd creates the config validate command for validating configuration.
func newConfigValidateCmd(state *rootState) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax
- Schema version compatibility
- Layout parameter ranges
- Demo settings`,
		Example: `  # Validate current configuration
  virtuallist config validate

  # Validate and show detailed information
  virtuallist config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if state.loadErr != nil {
				return fmt.Errorf("configuration validation failed: %w", state.loadErr)
			}
			cmd.Printf("Configuration is valid\n")
			if verbose {
				printVerboseDetails(cmd, state.configFile(), state.loaded())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, path string, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", path)
	cmd.Printf("  Schema version: %s\n", cfg.SchemaVersion)
	cmd.Printf("  Layout: %d columns, item height %d, gap %d\n",
		cfg.List.Columns, cfg.List.ItemHeight, cfg.List.Gap)
	if cfg.List.ViewportHeight == 0 {
		cmd.Println("  Viewport: fills the terminal")
	} else {
		cmd.Printf("  Viewport: %d rows\n", cfg.List.ViewportHeight)
	}
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
