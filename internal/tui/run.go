// ABOUTME: Program entry point for the interactive calculator
// ABOUTME: Runs the bubbletea program and writes the session export on quit

package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/bmi/internal/config"
	"github.com/harper/bmi/internal/export"
	"github.com/harper/bmi/internal/models"
	"github.com/harper/bmi/internal/session"
)

// RunOptions configures Run.
type RunOptions struct {
	Options
	// ExportPath, when set, receives the session history on quit.
	// The format follows the file extension.
	ExportPath string
}

// Run starts the interactive calculator and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts RunOptions) error {
	if opts.Scheduler == nil {
		opts.Scheduler = session.RealScheduler{}
	}
	m := New(opts.Options)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if opts.ExportPath == "" {
		return nil
	}
	fm, ok := final.(Model)
	if !ok {
		return nil
	}
	return writeExport(opts.ExportPath, fm.State().HistorySnapshot())
}

func writeExport(path string, entries []models.HistoryEntry) error {
	path = config.ExpandPath(path)
	data, err := export.Render(entries, export.ForPath(path))
	if err != nil {
		return fmt.Errorf("export history: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
