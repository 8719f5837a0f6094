package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pfrederiksen/dotafeed/internal/collector"
	"github.com/pfrederiksen/dotafeed/internal/config"
	"github.com/pfrederiksen/dotafeed/internal/logger"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dotafeed",
		Short: "Fetch Dota 2 tournament and match data",
		Long: `A CLI tool to fetch Dota 2 esports data.
Tournaments, brackets, and rosters come from the Liquipedia wiki;
match telemetry, players, and teams come from the OpenDota API.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "config.yaml", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(
		newTournamentsCmd(),
		newTournamentCmd(),
		newMatchCmd(),
		newPlayerCmd(),
		newTeamCmd(),
		newProMatchesCmd(),
		newHeroesCmd(),
		newSearchCmd(),
	)

	return cmd
}

// outputFormat validates the --format flag
func outputFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// newCollector loads the config and builds a collector. A missing config
// file falls back to defaults with both sources enabled.
func newCollector() (*collector.Collector, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		logger.Debug("Config file not found, using defaults", logger.Fields{"path": flagConfig})
		cfg = config.Default()
	}

	return collector.New(cfg)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
