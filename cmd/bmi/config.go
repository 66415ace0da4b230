// ABOUTME: Config command for viewing and changing defaults
// ABOUTME: Shows the config file and sets the default unit system

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harper/bmi/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd.OutOrStdout(), cfg)
	},
}

var configSetUnitCmd = &cobra.Command{
	Use:       "set-unit <metric|imperial>",
	Short:     "Set the default unit system",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"metric", "imperial"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return setUnit(cmd.OutOrStdout(), cfg, args[0])
	},
}

func showConfig(w io.Writer, c *config.Config) error {
	unit, err := c.GetUnit()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Config file: %s\n", config.GetConfigPath())
	fmt.Fprintf(w, "Unit:        %s\n", color.CyanString(string(unit)))
	fmt.Fprintf(w, "No color:    %t\n", c.NoColor)
	return nil
}

func setUnit(w io.Writer, c *config.Config, value string) error {
	if err := c.SetUnit(value); err != nil {
		return err
	}
	if err := c.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(w, "%s Default unit set to %s\n", color.GreenString("✓"), c.Unit)
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetUnitCmd)
	rootCmd.AddCommand(configCmd)
}
