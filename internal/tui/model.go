// ABOUTME: Bubbletea model for the interactive BMI calculator
// ABOUTME: Form inputs feed the session controller; timer events arrive as messages

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/harper/bmi/internal/bmi"
	"github.com/harper/bmi/internal/logging"
	"github.com/harper/bmi/internal/models"
	"github.com/harper/bmi/internal/session"
)

type field int

const (
	fieldHeight field = iota
	fieldFeet
	fieldInches
	fieldWeight
	fieldCount
)

// eventMsg carries a timer callback onto the Update goroutine.
type eventMsg struct{ fn func() }

// screen is the presenter side of the model. The controller renders into it
// and View reads from it.
type screen struct {
	result  *session.View
	history []models.HistoryEntry
	toasts  []session.Toast
}

var _ session.Presenter = (*screen)(nil)

func (s *screen) RenderResult(v session.View) { s.result = &v }

func (s *screen) ClearResult() { s.result = nil }

func (s *screen) RenderHistory(entries []models.HistoryEntry) { s.history = entries }

func (s *screen) RenderToasts(toasts []session.Toast) { s.toasts = toasts }

// Options configures a Model.
type Options struct {
	Unit      models.UnitSystem
	Scheduler session.Scheduler
	Logger    *log.Logger
}

// Model is the interactive calculator.
type Model struct {
	ctrl   *session.Controller
	screen *screen
	events chan func()
	logger *log.Logger

	inputs      [fieldCount]textinput.Model
	focus       field
	keys        keyMap
	help        help.Model
	showHistory bool
	width       int
}

// New creates a calculator model.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	events := make(chan func(), 64)
	scr := &screen{}
	ctrl := session.NewController(session.NewState(opts.Unit, nil), scr, session.Options{
		Scheduler: opts.Scheduler,
		Dispatch:  func(fn func()) { events <- fn },
		Logger:    opts.Logger,
	})

	m := Model{
		ctrl:   ctrl,
		screen: scr,
		events: events,
		logger: opts.Logger,
		keys:   defaultKeys(),
		help:   help.New(),
		width:  72,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 8
		ti.Width = 10
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.applyPlaceholders()
	m.focus = m.visibleFields()[0]
	m.inputs[m.focus].Focus()
	return m
}

// State returns the underlying session state.
func (m Model) State() *session.State {
	return m.ctrl.State()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.events))
}

func waitForEvent(ch <-chan func()) tea.Cmd {
	return func() tea.Msg {
		fn, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg{fn: fn}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		msg.fn()
		return m, waitForEvent(m.events)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keys.Calculate):
		if _, err := m.ctrl.Calculate(m.raw()); err != nil {
			m.logger.Debug("calculation rejected", "err", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Unit):
		m.ctrl.SwitchUnit(m.ctrl.Unit().Toggle())
		m.clearInputs()
		m.applyPlaceholders()
		return m, m.setFocus(m.visibleFields()[0])

	case key.Matches(msg, m.keys.Reset):
		m.clearInputs()
		m.ctrl.Reset()
		return m, nil

	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.ctrl.InputChanged(m.raw())
	}
	return m, cmd
}

// visibleFields returns the input fields for the current unit system in tab order.
func (m Model) visibleFields() []field {
	if m.ctrl.Unit() == models.Imperial {
		return []field{fieldFeet, fieldInches, fieldWeight}
	}
	return []field{fieldHeight, fieldWeight}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	fields := m.visibleFields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	return m.setFocus(fields[idx])
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[f].Focus()
}

func (m *Model) clearInputs() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

func (m *Model) applyPlaceholders() {
	m.inputs[fieldHeight].Placeholder = "170"
	m.inputs[fieldFeet].Placeholder = "5"
	m.inputs[fieldInches].Placeholder = "7"
	if m.ctrl.Unit() == models.Imperial {
		m.inputs[fieldWeight].Placeholder = "154"
	} else {
		m.inputs[fieldWeight].Placeholder = "70"
	}
}

func (m Model) raw() bmi.RawInput {
	return bmi.ParseRawInput(
		m.inputs[fieldHeight].Value(),
		m.inputs[fieldFeet].Value(),
		m.inputs[fieldInches].Value(),
		m.inputs[fieldWeight].Value(),
	)
}
