// ABOUTME: BMI calc command
// ABOUTME: Computes BMI from flags and prints the result card and health tips

package main

import (
	"io"

	"github.com/harper/bmi/internal/bmi"
	"github.com/harper/bmi/internal/session"
	"github.com/harper/bmi/internal/ui"
	"github.com/spf13/cobra"
)

type calcOptions struct {
	unit        string
	height      string
	feet        string
	inches      string
	weight      string
	showHistory bool
}

var calcOpts calcOptions

var calcCmd = &cobra.Command{
	Use:     "calc",
	Aliases: []string{"c"},
	Short:   "Calculate BMI from height and weight",
	Long: `Calculate Body Mass Index, classify it, and show health tips.

Metric takes --height in centimeters and --weight in kilograms.
Imperial takes --feet, --inches, and --weight in pounds.

Examples:
  bmi calc --height 170 --weight 70
  bmi calc --unit imperial --feet 5 --inches 7 --weight 154
  bmi calc --height 182 --weight 95 --history`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd.OutOrStdout(), calcOpts)
	},
}

func runCalc(w io.Writer, opts calcOptions) error {
	unit, err := resolveUnit(opts.unit)
	if err != nil {
		return err
	}

	presenter := ui.NewTextPresenter(w, opts.showHistory)
	ctrl := session.NewController(session.NewState(unit, nil), presenter, session.Options{
		Logger: currentLogger(),
	})
	defer ctrl.Close()

	raw := bmi.ParseRawInput(opts.height, opts.feet, opts.inches, opts.weight)
	_, err = ctrl.Calculate(raw)
	return err
}

func init() {
	calcCmd.Flags().StringVarP(&calcOpts.unit, "unit", "u", "", "unit system: metric or imperial (default from config)")
	calcCmd.Flags().StringVar(&calcOpts.height, "height", "", "height in centimeters (metric)")
	calcCmd.Flags().StringVar(&calcOpts.feet, "feet", "", "height feet (imperial)")
	calcCmd.Flags().StringVar(&calcOpts.inches, "inches", "", "height inches (imperial)")
	calcCmd.Flags().StringVar(&calcOpts.weight, "weight", "", "weight in kg (metric) or lbs (imperial)")
	calcCmd.Flags().BoolVar(&calcOpts.showHistory, "history", false, "print the session history after the result")

	rootCmd.AddCommand(calcCmd)
}
