// Package cli implements the virtuallist command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/virtuallist/internal/config"
	"github.com/rshade/virtuallist/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// rootState is shared by the root command and its subcommands.
type rootState struct {
	configPath string
	lookupEnv  func(string) (string, bool)

	cfg       *config.Config
	loadErr   error
	logResult *logging.LogPathResult
}

// prepare loads the configuration and sets up logging. When strict is false a
// broken config file is recorded in loadErr and defaults are used instead.
func (s *rootState) prepare(cmd *cobra.Command, strict bool) error {
	cfg, err := loadConfig(s.configPath, s.lookupEnv)
	if err != nil {
		if strict {
			return err
		}
		s.loadErr = err
		cfg = config.New()
		_ = cfg.ApplyEnv(s.lookupEnv)
	}
	s.cfg = cfg

	result := setupLogging(cmd, cfg)
	s.logResult = &result
	return nil
}

// loaded returns the loaded configuration, or defaults before PersistentPreRunE ran.
func (s *rootState) loaded() *config.Config {
	if s.cfg == nil {
		return config.New()
	}
	return s.cfg
}

// NewRootCmd creates the root Cobra command for the virtuallist CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	state := &rootState{lookupEnv: lookupEnv}

	cmd := &cobra.Command{
		Use:           "virtuallist",
		Short:         "Windowed list and grid rendering for the terminal",
		Long:          "virtuallist: render only the visible part of very long lists and grids",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.prepare(cmd, true)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, state.logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&state.configPath, "config", "",
		"config file (default "+config.DefaultPath()+")")
	cmd.AddCommand(newDemoCmd(state), newLayoutCmd(state), newConfigCmd(state))

	return cmd
}

// loadConfig reads the config file, applies environment overrides and validates the result.
func loadConfig(path string, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err = cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

const rootCmdExample = `  # Scroll through a growing grid of numbered cells
  virtuallist demo

  # Two columns of tall items
  virtuallist demo --columns 2 --item-height 5

  # Print which items are materialized at a scroll offset
  virtuallist layout --items 1000 --viewport 500 --item-height 100 --gap 10 --columns 4 --offset 1000

  # Same, as JSON
  virtuallist layout --offset 1000 --output json

  # Write a config file with default values
  virtuallist config init`

// newConfigCmd creates the config command group. Its commands run even when
// the config file is broken so that it can be inspected and replaced.
func newConfigCmd(state *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.prepare(cmd, false)
		},
	}
	cmd.AddCommand(newConfigInitCmd(state), newConfigShowCmd(state), newConfigValidateCmd(state))
	return cmd
}

// configFile returns the config path in use.
func (s *rootState) configFile() string {
	if s.configPath == "" {
		return config.DefaultPath()
	}
	return s.configPath
}
