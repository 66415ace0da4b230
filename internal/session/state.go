// ABOUTME: Explicit application state for a calculator session
// ABOUTME: Current unit system, displayed result, and bounded history

package session

import (
	"fmt"
	"time"

	"github.com/harper/bmi/internal/bmi"
	"github.com/harper/bmi/internal/models"
)

// Mode distinguishes user-requested calculations from debounced ones.
type Mode int

const (
	// Explicit calculations are recorded in history and acknowledged with a toast.
	Explicit Mode = iota
	// RealTime calculations only refresh the displayed result.
	RealTime
)

// View is everything a presenter needs to render one result.
type View struct {
	Result      models.Result      `json:"result"`
	Measurement models.Measurement `json:"measurement"`
	BMIText     string             `json:"bmi_text"`
	Progress    float64            `json:"progress"`
	IdealRange  string             `json:"ideal_range"`
	Unit        models.UnitSystem  `json:"unit"`
	RealTime    bool               `json:"real_time"`
}

// NewView builds the display payload for a result in the given unit system.
func NewView(res models.Result, m models.Measurement, unit models.UnitSystem, mode Mode) View {
	return View{
		Result:      res,
		Measurement: m,
		BMIText:     fmt.Sprintf("%.1f", res.Value),
		Progress:    bmi.ProgressBarPosition(res.Value),
		IdealRange:  FormatIdealRange(res.IdealLowKg, res.IdealHighKg, unit),
		Unit:        unit,
		RealTime:    mode == RealTime,
	}
}

// FormatIdealRange renders an ideal weight range in the unit system's weight unit.
func FormatIdealRange(lowKg, highKg float64, unit models.UnitSystem) string {
	if unit == models.Imperial {
		return fmt.Sprintf("%.1f - %.1f lbs", bmi.KgToLbs(lowKg), bmi.KgToLbs(highKg))
	}
	return fmt.Sprintf("%.1f - %.1f kg", lowKg, highKg)
}

// Clock supplies the timestamps recorded in history.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// State holds the mutable session data. It is not safe for concurrent use.
type State struct {
	Unit      models.UnitSystem
	History   []models.HistoryEntry
	Displayed *View

	clock Clock
}

// NewState creates an empty session in the given unit system. A nil clock
// selects SystemClock.
func NewState(unit models.UnitSystem, clock Clock) *State {
	if unit != models.Imperial {
		unit = models.Metric
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &State{Unit: unit, clock: clock}
}

// Calculate converts and computes raw input in the current unit system.
// Invalid input returns bmi.ErrInvalidInput, clears the displayed result,
// and leaves history untouched.
func (s *State) Calculate(raw bmi.RawInput, mode Mode) (*View, error) {
	m := bmi.ConvertToMetric(s.Unit, raw)
	res, err := bmi.Compute(m)
	if err != nil {
		s.Displayed = nil
		return nil, err
	}

	view := NewView(res, m, s.Unit, mode)
	s.Displayed = &view

	if mode == Explicit {
		entry := models.NewHistoryEntry(res, m, s.Unit, s.clock.Now())
		s.History = bmi.RecordHistory(s.History, entry)
	}
	return &view, nil
}

// SwitchUnit changes the unit system and clears the displayed result.
func (s *State) SwitchUnit(unit models.UnitSystem) {
	s.Unit = unit
	s.Displayed = nil
}

// Reset clears the displayed result. History is kept for the session.
func (s *State) Reset() {
	s.Displayed = nil
}

// HistorySnapshot returns a copy of the history, most recent first.
func (s *State) HistorySnapshot() []models.HistoryEntry {
	return append([]models.HistoryEntry(nil), s.History...)
}
