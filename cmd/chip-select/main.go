package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ruminaider/chip-select/internal/paths"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "0.1.0"

var (
	cfgPath string
	debug   bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "chip-select",
	Short: "Pick names from a directory as removable chips",
	Long: `chip-select is an interactive multi-select for a small directory of people.

Type to filter, Enter or click to add a chip, click a chip to remove it, and
press backspace twice on an empty field to remove the last chip.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debug {
			return nil
		}
		l, err := newDebugLogger(paths.DebugLogFile())
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: pick
		return pickCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chip-select %s\n", version)
	},
}

// newDebugLogger writes debug-level development logs to path.
func newDebugLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	return config.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", paths.ConfigFile(), "config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to "+paths.DebugLogFile())

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(directoryCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
