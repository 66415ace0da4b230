// ABOUTME: Rendering for the interactive calculator
// ABOUTME: Lipgloss styles for the form, result card, history panel, and toasts

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/harper/bmi/internal/models"
	"github.com/harper/bmi/internal/session"
	"github.com/harper/bmi/internal/ui"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7d56f4"))
	labelStyle   = lipgloss.NewStyle().Width(14)
	focusedLabel = labelStyle.Bold(true).Foreground(lipgloss.Color("#7d56f4"))
	activeUnit   = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	toastStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#ffffff"))
	successColor = lipgloss.Color("#2ecc71")
	errorColor   = lipgloss.Color("#e74c3c")
)

const barWidth = 40

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{
		titleStyle.Render("BMI Calculator"),
		m.unitLine(),
		m.formView(),
		m.resultView(),
	}
	if m.showHistory {
		sections = append(sections, m.historyView())
	}
	if toasts := m.toastsView(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) unitLine() string {
	metric, imperial := "metric", "imperial"
	if m.ctrl.Unit() == models.Imperial {
		imperial = activeUnit.Render(imperial)
		metric = mutedStyle.Render(metric)
	} else {
		metric = activeUnit.Render(metric)
		imperial = mutedStyle.Render(imperial)
	}
	return fmt.Sprintf("Units: %s / %s", metric, imperial)
}

func (m Model) formView() string {
	var rows []string
	if m.ctrl.Unit() == models.Imperial {
		rows = append(rows,
			m.inputRow("Height", fieldFeet, "ft")+"  "+m.inputs[fieldInches].View()+" in",
			m.inputRow("Weight", fieldWeight, "lbs"))
	} else {
		rows = append(rows,
			m.inputRow("Height", fieldHeight, "cm"),
			m.inputRow("Weight", fieldWeight, "kg"))
	}
	return strings.Join(rows, "\n")
}

func (m Model) inputRow(label string, f field, unit string) string {
	style := labelStyle
	if m.focus == f || (f == fieldFeet && m.focus == fieldInches) {
		style = focusedLabel
	}
	return style.Render(label) + m.inputs[f].View() + " " + unit
}

func (m Model) resultView() string {
	v := m.screen.result
	if v == nil {
		return cardStyle.Render(mutedStyle.Render("Enter your height and weight, then press enter.") +
			"\n\n" + headerStyle.Render("Health tips") + "\n" + mutedStyle.Render(ui.NoTipsText))
	}

	cat := v.Result.Category
	badge := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(cat.Color)).
		Render(cat.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s %s\n",
		headerStyle.Render("BMI"),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cat.Color)).Render(v.BMIText),
		badge,
		mutedStyle.Render(cat.Range))
	fmt.Fprintf(&b, "%s\n\n", cat.Description)
	fmt.Fprintf(&b, "%s\n\n", progressBar(v.Progress, barWidth))
	fmt.Fprintf(&b, "Ideal weight: %s", v.IdealRange)
	if v.RealTime {
		b.WriteString(mutedStyle.Render("  (live)"))
	}
	b.WriteString("\n\n" + headerStyle.Render("Health tips"))
	for _, tip := range cat.Tips {
		b.WriteString("\n  • " + tip)
	}
	return cardStyle.Render(b.String())
}

// progressBar renders the category scale with a marker at pos (0-100).
func progressBar(pos float64, width int) string {
	marker, cells := ui.ProgressCells(pos, width)
	var bar strings.Builder
	for _, c := range cells {
		bar.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("█"))
	}
	return strings.Repeat(" ", marker) + "▼\n" + bar.String()
}

func (m Model) historyView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("History (%d)", len(m.screen.history))))
	if len(m.screen.history) == 0 {
		b.WriteString("\n" + mutedStyle.Render(ui.NoHistoryText))
		return cardStyle.Render(b.String())
	}
	for _, e := range m.screen.history {
		bmiText := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).
			Render(fmt.Sprintf("BMI: %.1f (%s)", e.BMI, e.Category))
		fmt.Fprintf(&b, "\n%s  Height: %s, Weight: %s  %s",
			bmiText, e.Height, e.Weight, mutedStyle.Render(ui.FormatDate(e.CalculatedAt)))
	}
	return cardStyle.Render(b.String())
}

func (m Model) toastsView() string {
	if len(m.screen.toasts) == 0 {
		return ""
	}
	lines := make([]string, len(m.screen.toasts))
	for i, t := range m.screen.toasts {
		lines[i] = renderToast(t)
	}
	return strings.Join(lines, "\n")
}

func renderToast(t session.Toast) string {
	style := toastStyle.Background(successColor)
	icon := "✓"
	if t.Kind == session.ToastError {
		style = toastStyle.Background(errorColor)
		icon = "✗"
	}
	if t.Fading {
		style = style.Faint(true)
	}
	return style.Render(icon + " " + t.Message)
}
