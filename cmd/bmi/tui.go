// ABOUTME: Interactive TUI command
// ABOUTME: Launches the bubbletea calculator with optional export and log file

package main

import (
	"fmt"

	"github.com/harper/bmi/internal/logging"
	"github.com/harper/bmi/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"i"},
	Short:   "Interactive calculator",
	Long: `Open the interactive calculator.

Results update as you type. Press enter to record a calculation in the
session history. History is kept only while the program runs; use
--export to save it when you quit.

Examples:
  bmi tui
  bmi tui --export history.md
  bmi tui --log-file /tmp/bmi.log --verbose`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exportPath, _ := cmd.Flags().GetString("export")
		logFile, _ := cmd.Flags().GetString("log-file")

		unit, err := resolveUnit("")
		if err != nil {
			return err
		}

		// stderr would corrupt the alternate screen.
		tuiLogger := logging.Discard()
		if logFile != "" {
			l, closer, err := logging.OpenFile(logFile, verbose)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer func() { _ = closer.Close() }()
			tuiLogger = l
		}

		return tui.Run(cmd.Context(), tui.RunOptions{
			Options:    tui.Options{Unit: unit, Logger: tuiLogger},
			ExportPath: exportPath,
		})
	},
}

func init() {
	tuiCmd.Flags().String("export", "", "write session history here on quit (.md for markdown, else YAML)")
	tuiCmd.Flags().String("log-file", "", "write logs to this file")
	rootCmd.AddCommand(tuiCmd)
}
