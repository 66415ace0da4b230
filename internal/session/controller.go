// ABOUTME: Controller wiring session state to a presentation adapter
// ABOUTME: Handles explicit and debounced calculation, unit switching, reset, and toasts

package session

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harper/bmi/internal/bmi"
	"github.com/harper/bmi/internal/models"
)

// Toast messages.
const (
	MsgCalculated   = "BMI calculated successfully!"
	MsgInvalidInput = "Please enter valid height and weight values"
	MsgReset        = "Form reset successfully!"
)

// Presenter is the sink for everything the controller displays.
type Presenter interface {
	RenderResult(v View)
	ClearResult()
	RenderHistory(entries []models.HistoryEntry)
	RenderToasts(toasts []Toast)
}

// Options configures a Controller. Zero values select real timers, synchronous
// dispatch, and a discarding logger.
type Options struct {
	Scheduler     Scheduler
	Dispatch      Dispatcher
	DebounceDelay time.Duration
	Logger        *log.Logger
}

// Controller drives a State on behalf of one presenter.
type Controller struct {
	state     *State
	presenter Presenter
	debounce  *Debouncer
	toasts    *Toasts
	dispatch  Dispatcher
	logger    *log.Logger

	pending bmi.RawInput
}

// NewController creates a controller for state rendering into p.
func NewController(state *State, p Presenter, opts Options) *Controller {
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler{}
	}
	if opts.Dispatch == nil {
		opts.Dispatch = Immediate
	}
	if opts.DebounceDelay <= 0 {
		opts.DebounceDelay = DebounceDelay
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Controller{
		state:     state,
		presenter: p,
		debounce:  NewDebouncer(opts.Scheduler, opts.DebounceDelay),
		toasts:    NewToasts(opts.Scheduler, opts.Dispatch, p.RenderToasts),
		dispatch:  opts.Dispatch,
		logger:    opts.Logger,
	}
}

// State returns the controlled session state.
func (c *Controller) State() *State {
	return c.state
}

// Unit returns the current unit system.
func (c *Controller) Unit() models.UnitSystem {
	return c.state.Unit
}

// InputChanged records the latest raw input and restarts the debounce timer.
func (c *Controller) InputChanged(raw bmi.RawInput) {
	c.pending = raw
	c.debounce.Trigger(func(token uint64) {
		c.dispatch(func() { c.debounceElapsed(token) })
	})
}

func (c *Controller) debounceElapsed(token uint64) {
	if !c.debounce.Current(token) {
		return
	}
	c.debounce.Done(token)
	if !bmi.HasValidInputs(c.state.Unit, c.pending) {
		return
	}
	c.logger.Debug("real-time calculation triggered")
	view, err := c.state.Calculate(c.pending, RealTime)
	if err != nil {
		c.presenter.ClearResult()
		return
	}
	c.presenter.RenderResult(*view)
}

// Calculate runs an explicit calculation, records it in history, and toasts the outcome.
func (c *Controller) Calculate(raw bmi.RawInput) (*View, error) {
	c.debounce.Stop()
	c.pending = raw

	view, err := c.state.Calculate(raw, Explicit)
	if err != nil {
		if errors.Is(err, bmi.ErrInvalidInput) {
			c.logger.Debug("invalid inputs", "err", err)
			c.presenter.ClearResult()
			c.toasts.Show(MsgInvalidInput, ToastError)
		}
		return nil, err
	}

	c.logger.Debug("BMI calculated", "bmi", view.Result.Value, "category", view.Result.Category.Name)
	c.presenter.RenderResult(*view)
	c.presenter.RenderHistory(c.state.HistorySnapshot())
	c.toasts.Show(MsgCalculated, ToastSuccess)
	return view, nil
}

// SwitchUnit changes the unit system, dropping pending input and the displayed result.
func (c *Controller) SwitchUnit(unit models.UnitSystem) {
	c.logger.Debug("unit changed", "unit", unit)
	c.clearPending()
	c.state.SwitchUnit(unit)
	c.presenter.ClearResult()
}

// Reset clears pending input and the displayed result.
func (c *Controller) Reset() {
	c.clearPending()
	c.state.Reset()
	c.presenter.ClearResult()
	c.toasts.Show(MsgReset, ToastSuccess)
}

// Toasts returns the currently visible toasts.
func (c *Controller) Toasts() []Toast {
	return c.toasts.Active()
}

// Close cancels the outstanding debounce timer.
func (c *Controller) Close() {
	c.debounce.Stop()
}

func (c *Controller) clearPending() {
	c.debounce.Stop()
	c.pending = bmi.RawInput{}
}
