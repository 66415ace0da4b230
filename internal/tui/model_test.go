// ABOUTME: Tests for the interactive calculator model
// ABOUTME: Drives Update with key messages and a manual timer scheduler

package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/bmi/internal/models"
	"github.com/harper/bmi/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTimer struct {
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// manualScheduler holds callbacks until fire is called.
type manualScheduler struct {
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(_ time.Duration, fn func()) session.Timer {
	t := &manualTimer{fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// fire runs every live timer scheduled so far. Timers scheduled by the
// callbacks wait for the next call.
func (s *manualScheduler) fire() {
	for _, t := range append([]*manualTimer(nil), s.timers...) {
		if t.stopped || t.fired {
			continue
		}
		t.fired = true
		t.fn()
	}
}

func (s *manualScheduler) live() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func newTestModel(t *testing.T, unit models.UnitSystem) (Model, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	return New(Options{Unit: unit, Scheduler: sched}), sched
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(t *testing.T, m Model, kt tea.KeyType) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: kt})
	return m
}

// drain delivers queued timer callbacks the way the program loop would.
func drain(t *testing.T, m Model) Model {
	t.Helper()
	for len(m.events) > 0 {
		fn := <-m.events
		m, _ = update(t, m, eventMsg{fn: fn})
	}
	return m
}

func fillMetric(t *testing.T, m Model) Model {
	t.Helper()
	m = typeText(t, m, "170")
	m = press(t, m, tea.KeyTab)
	return typeText(t, m, "70")
}

func TestNew_Metric(t *testing.T) {
	m, _ := newTestModel(t, models.Metric)

	assert.Equal(t, fieldHeight, m.focus)
	assert.True(t, m.inputs[fieldHeight].Focused())
	assert.Equal(t, "170", m.inputs[fieldHeight].Placeholder)
	assert.Equal(t, "70", m.inputs[fieldWeight].Placeholder)
	assert.Equal(t, []field{fieldHeight, fieldWeight}, m.visibleFields())
	assert.NotNil(t, m.Init())
}

func TestNew_Imperial(t *testing.T) {
	m, _ := newTestModel(t, models.Imperial)

	assert.Equal(t, fieldFeet, m.focus)
	assert.Equal(t, "154", m.inputs[fieldWeight].Placeholder)
	assert.Equal(t, []field{fieldFeet, fieldInches, fieldWeight}, m.visibleFields())
}

func TestFocusCycles(t *testing.T) {
	m, _ := newTestModel(t, models.Imperial)

	m = press(t, m, tea.KeyTab)
	assert.Equal(t, fieldInches, m.focus)
	m = press(t, m, tea.KeyTab)
	assert.Equal(t, fieldWeight, m.focus)
	m = press(t, m, tea.KeyTab)
	assert.Equal(t, fieldFeet, m.focus)
	m = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, fieldWeight, m.focus)
	assert.True(t, m.inputs[fieldWeight].Focused())
	assert.False(t, m.inputs[fieldFeet].Focused())
}

func TestEnterCalculates(t *testing.T) {
	m, _ := newTestModel(t, models.Metric)
	m = fillMetric(t, m)
	m = press(t, m, tea.KeyEnter)

	require.NotNil(t, m.screen.result)
	assert.Equal(t, "24.2", m.screen.result.BMIText)
	assert.False(t, m.screen.result.RealTime)
	assert.Len(t, m.screen.history, 1)
	require.Len(t, m.screen.toasts, 1)
	assert.Equal(t, session.MsgCalculated, m.screen.toasts[0].Message)

	view := m.View()
	assert.Contains(t, view, "Normal weight")
	assert.Contains(t, view, "53.5 - 72.0 kg")
}

func TestEnterWithEmptyInputShowsError(t *testing.T) {
	m, _ := newTestModel(t, models.Metric)
	m = press(t, m, tea.KeyEnter)

	assert.Nil(t, m.screen.result)
	assert.Empty(t, m.State().History)
	require.Len(t, m.screen.toasts, 1)
	assert.Equal(t, session.ToastError, m.screen.toasts[0].Kind)
	assert.Contains(t, m.View(), session.MsgInvalidInput)
}

func TestRealTimeCalculationAfterDebounce(t *testing.T) {
	m, sched := newTestModel(t, models.Metric)
	m = fillMetric(t, m)

	assert.Nil(t, m.screen.result, "no result before the debounce elapses")
	assert.Equal(t, 1, sched.live(), "only the latest keystroke keeps a timer")

	sched.fire()
	m = drain(t, m)

	require.NotNil(t, m.screen.result)
	assert.True(t, m.screen.result.RealTime)
	assert.Empty(t, m.State().History, "real-time results are not recorded")
	assert.Empty(t, m.screen.toasts)
}

func TestEnterCancelsPendingDebounce(t *testing.T) {
	m, sched := newTestModel(t, models.Metric)
	m = fillMetric(t, m)
	m = press(t, m, tea.KeyEnter)

	sched.fire()
	m = drain(t, m)

	require.NotNil(t, m.screen.result)
	assert.False(t, m.screen.result.RealTime)
	assert.Len(t, m.State().History, 1)
}

func TestToastFadesThenDisappears(t *testing.T) {
	m, sched := newTestModel(t, models.Metric)
	m = fillMetric(t, m)
	m = press(t, m, tea.KeyEnter)
	require.Len(t, m.screen.toasts, 1)

	sched.fire()
	m = drain(t, m)
	require.Len(t, m.screen.toasts, 1)
	assert.True(t, m.screen.toasts[0].Fading)

	sched.fire()
	m = drain(t, m)
	assert.Empty(t, m.screen.toasts)
}

func TestToggleUnit(t *testing.T) {
	m, _ := newTestModel(t, models.Metric)
	m = fillMetric(t, m)
	m = press(t, m, tea.KeyEnter)

	m = press(t, m, tea.KeyCtrlU)

	assert.Equal(t, models.Imperial, m.State().Unit)
	assert.Nil(t, m.screen.result)
	assert.Equal(t, fieldFeet, m.focus)
	assert.Equal(t, "154", m.inputs[fieldWeight].Placeholder)
	assert.Empty(t, m.inputs[fieldHeight].Value())
	assert.Empty(t, m.inputs[fieldWeight].Value())
	assert.Len(t, m.State().History, 1, "history survives a unit change")
	assert.Contains(t, m.View(), "lbs")
}

func TestImperialCalculation(t *testing.T) {
	m, _ := newTestModel(t, models.Imperial)
	m = typeText(t, m, "5")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "7")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "154")
	m = press(t, m, tea.KeyEnter)

	require.NotNil(t, m.screen.result)
	assert.Equal(t, "24.1", m.screen.result.BMIText)
	require.Len(t, m.screen.history, 1)
	assert.Equal(t, "5' 7\"", m.screen.history[0].Height)
}

func TestReset(t *testing.T) {
	m, _ := newTestModel(t, models.Metric)
	m = fillMetric(t, m)
	m = press(t, m, tea.KeyEnter)

	m = press(t, m, tea.KeyCtrlR)

	assert.Nil(t, m.screen.result)
	assert.Empty(t, m.inputs[fieldHeight].Value())
	assert.Empty(t, m.inputs[fieldWeight].Value())
	assert.Len(t, m.State().History, 1)
	require.Len(t, m.screen.toasts, 2)
	assert.Equal(t, session.MsgReset, m.screen.toasts[1].Message)
}

func TestHistoryToggle(t *testing.T) {
	m, _ := newTestModel(t, models.Metric)
	assert.NotContains(t, m.View(), "History (0)")

	m = press(t, m, tea.KeyCtrlT)
	view := m.View()
	assert.Contains(t, view, "History (0)")
	assert.Contains(t, view, "No calculations yet")

	m = press(t, m, tea.KeyCtrlT)
	assert.False(t, m.showHistory)
}

func TestQuit(t *testing.T) {
	m, sched := newTestModel(t, models.Metric)
	m = typeText(t, m, "170")
	require.Equal(t, 1, sched.live())

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 0, sched.live(), "quitting cancels the debounce timer")
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestModel(t, models.Metric)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
}

func TestProgressBar(t *testing.T) {
	bar := progressBar(50, barWidth)
	lines := strings.Split(bar, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat(" ", 20)+"▼", lines[0])
	assert.Equal(t, barWidth, strings.Count(lines[1], "█"))
}

func TestWriteExport(t *testing.T) {
	m, _ := newTestModel(t, models.Metric)
	m = fillMetric(t, m)
	m = press(t, m, tea.KeyEnter)

	dir := t.TempDir()

	mdPath := filepath.Join(dir, "history.md")
	require.NoError(t, writeExport(mdPath, m.State().HistorySnapshot()))
	data, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# BMI History"))

	yamlPath := filepath.Join(dir, "history.yaml")
	require.NoError(t, writeExport(yamlPath, m.State().HistorySnapshot()))
	data, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tool: bmi")
}
