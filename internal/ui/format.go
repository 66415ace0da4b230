// ABOUTME: Terminal UI formatting utilities
// ABOUTME: Provides human-readable output for BMI results, categories, and history

package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harper/bmi/internal/bmi"
	"github.com/harper/bmi/internal/models"
	"github.com/harper/bmi/internal/session"
)

// NoTipsText is shown before any calculation has been made.
const NoTipsText = "Calculate your BMI to receive personalized health tips based on your results."

// NoHistoryText is shown when the session history is empty.
const NoHistoryText = "No calculations yet. Calculate your BMI to see history."

// CategoryColor returns the terminal color used for a category name.
func CategoryColor(name string) *color.Color {
	switch name {
	case "Underweight":
		return color.New(color.FgBlue)
	case "Normal weight":
		return color.New(color.FgGreen)
	case "Overweight":
		return color.New(color.FgYellow)
	case "Obese":
		return color.New(color.FgRed)
	default:
		return color.New(color.Reset)
	}
}

// FormatCategory formats a category name with its BMI range.
func FormatCategory(c models.Category) string {
	return fmt.Sprintf("%s %s",
		CategoryColor(c.Name).Add(color.Bold).Sprint(c.Name),
		color.New(color.Faint).Sprintf("(%s)", c.Range))
}

// FormatResult formats a calculation view as a multi-line result card.
func FormatResult(v session.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "BMI %s  %s\n",
		CategoryColor(v.Result.Category.Name).Add(color.Bold).Sprint(v.BMIText),
		FormatCategory(v.Result.Category))
	fmt.Fprintf(&b, "%s\n", v.Result.Category.Description)
	fmt.Fprintf(&b, "\n%s\n", FormatProgressBar(v.Progress, 40))
	fmt.Fprintf(&b, "\nIdeal weight: %s\n", color.CyanString(v.IdealRange))
	return b.String()
}

// FormatTips formats category tips as a bulleted list.
func FormatTips(c models.Category) string {
	if len(c.Tips) == 0 {
		return color.New(color.Faint).Sprint(NoTipsText)
	}
	lines := make([]string, len(c.Tips))
	for i, tip := range c.Tips {
		lines[i] = fmt.Sprintf("  • %s", tip)
	}
	return strings.Join(lines, "\n")
}

// ProgressCells lays out a progress bar of width cells (at least 10) for pos,
// a 0-100 position from bmi.ProgressBarPosition. It returns the marker column
// and the category drawn in each cell.
func ProgressCells(pos float64, width int) (int, []models.Category) {
	if width < 10 {
		width = 10
	}
	pos = math.Max(0, math.Min(pos, 100))
	marker := int(math.Round(pos / 100 * float64(width-1)))

	cats := models.Categories()
	cells := make([]models.Category, width)
	for i := range cells {
		cellPos := (float64(i) + 0.5) / float64(width) * 100
		cells[i] = cats[bmi.ProgressBand(cellPos)]
	}
	return marker, cells
}

// FormatProgressBar renders a marker line above a colored bar of the given width.
func FormatProgressBar(pos float64, width int) string {
	marker, cells := ProgressCells(pos, width)
	var bar strings.Builder
	for _, c := range cells {
		bar.WriteString(CategoryColor(c.Name).Sprint("█"))
	}
	return strings.Repeat(" ", marker) + "▼\n" + bar.String()
}

// FormatHistoryEntry formats a history entry for list display.
func FormatHistoryEntry(e models.HistoryEntry) string {
	return fmt.Sprintf("%s  %s  %s",
		CategoryColor(e.Category).Sprintf("BMI: %.1f (%s)", e.BMI, e.Category),
		fmt.Sprintf("Height: %s, Weight: %s", e.Height, e.Weight),
		color.New(color.Faint).Sprint(FormatDate(e.CalculatedAt)))
}

// FormatHistory formats a history list, most recent first.
func FormatHistory(entries []models.HistoryEntry) string {
	if len(entries) == 0 {
		return color.New(color.Faint).Sprint(NoHistoryText)
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = FormatHistoryEntry(e)
	}
	return strings.Join(lines, "\n")
}

// FormatDate formats a calculation date.
func FormatDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}
