// ABOUTME: Line-oriented presenter for the CLI
// ABOUTME: Writes results, tips, history, and toasts to an io.Writer

package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harper/bmi/internal/models"
	"github.com/harper/bmi/internal/session"
)

// TextPresenter implements session.Presenter for non-interactive output.
type TextPresenter struct {
	w           io.Writer
	showHistory bool
	printed     map[int]bool
}

var _ session.Presenter = (*TextPresenter)(nil)

// NewTextPresenter creates a presenter writing to w. History is printed only
// when showHistory is set.
func NewTextPresenter(w io.Writer, showHistory bool) *TextPresenter {
	return &TextPresenter{w: w, showHistory: showHistory, printed: make(map[int]bool)}
}

// RenderResult prints the result card followed by health tips.
func (p *TextPresenter) RenderResult(v session.View) {
	fmt.Fprint(p.w, FormatResult(v))
	fmt.Fprintf(p.w, "\n%s\n%s\n", color.New(color.Bold).Sprint("Health tips"), FormatTips(v.Result.Category))
}

// ClearResult is a no-op; printed output cannot be withdrawn.
func (p *TextPresenter) ClearResult() {}

// RenderHistory prints the history list when enabled.
func (p *TextPresenter) RenderHistory(entries []models.HistoryEntry) {
	if !p.showHistory {
		return
	}
	fmt.Fprintf(p.w, "\n%s\n%s\n", color.New(color.Bold).Sprint("History"), FormatHistory(entries))
}

// RenderToasts prints each toast once, when it first appears.
func (p *TextPresenter) RenderToasts(toasts []session.Toast) {
	for _, t := range toasts {
		if p.printed[t.ID] {
			continue
		}
		p.printed[t.ID] = true
		fmt.Fprintln(p.w, FormatToast(t))
	}
}

// FormatToast formats a toast as a status line.
func FormatToast(t session.Toast) string {
	if t.Kind == session.ToastError {
		return color.RedString("✗ %s", t.Message)
	}
	return color.GreenString("✓ %s", t.Message)
}
