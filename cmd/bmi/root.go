// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads .env and config, then builds the shared logger

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/harper/bmi/internal/config"
	"github.com/harper/bmi/internal/logging"
	"github.com/harper/bmi/internal/models"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	logger  *log.Logger
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Body Mass Index calculator",
	Long: `
██████╗ ███╗   ███╗██╗
██╔══██╗████╗ ████║██║
██████╔╝██╔████╔██║██║
██╔══██╗██║╚██╔╝██║██║
██████╔╝██║ ╚═╝ ██║██║
╚═════╝ ╚═╝     ╚═╝╚═╝

    Calculate, classify, and track your Body Mass Index

Examples:
  bmi calc --height 170 --weight 70
  bmi calc -u imperial --feet 5 --inches 7 --weight 154
  bmi categories
  bmi tui --export history.md`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if noColor || cfg.NoColor {
			color.NoColor = true
		}

		logger = logging.New(os.Stderr, verbose)
		logger.Debug("config loaded", "path", config.GetConfigPath(), "unit", cfg.Unit)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// resolveUnit returns the --unit flag value when given, else the configured default.
func resolveUnit(flag string) (models.UnitSystem, error) {
	if flag != "" {
		return models.ParseUnitSystem(flag)
	}
	if cfg == nil {
		return models.Metric, nil
	}
	return cfg.GetUnit()
}

func currentLogger() *log.Logger {
	if logger == nil {
		return logging.Discard()
	}
	return logger
}
