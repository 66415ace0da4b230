// ABOUTME: BMI categories command
// ABOUTME: Prints the category reference table with descriptions and tips

package main

import (
	"fmt"
	"io"

	"github.com/harper/bmi/internal/models"
	"github.com/harper/bmi/internal/ui"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cat"},
	Short:   "Show BMI categories and health tips",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printCategories(cmd.OutOrStdout())
		return nil
	},
}

func printCategories(w io.Writer) {
	for i, c := range models.Categories() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, ui.FormatCategory(c))
		fmt.Fprintf(w, "  %s\n", c.Description)
		fmt.Fprintln(w, ui.FormatTips(c))
	}
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
