// ABOUTME: Transient notifications with independent auto-dismiss timers
// ABOUTME: Each toast fades after ToastVisible and is removed ToastFade later

package session

import "time"

// Toast timings.
const (
	ToastVisible = 3000 * time.Millisecond
	ToastFade    = 300 * time.Millisecond
)

// ToastKind selects toast styling.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is one transient notification.
type Toast struct {
	ID      int       `json:"id"`
	Message string    `json:"message"`
	Kind    ToastKind `json:"kind"`
	Fading  bool      `json:"fading"`
}

// Toasts tracks visible toasts. Timer callbacks are routed through dispatch
// and onChange is called with the current list after every change.
type Toasts struct {
	sched    Scheduler
	dispatch Dispatcher
	onChange func([]Toast)
	active   []Toast
	nextID   int
}

// NewToasts creates a toast tracker.
func NewToasts(sched Scheduler, dispatch Dispatcher, onChange func([]Toast)) *Toasts {
	if dispatch == nil {
		dispatch = Immediate
	}
	if onChange == nil {
		onChange = func([]Toast) {}
	}
	return &Toasts{sched: sched, dispatch: dispatch, onChange: onChange}
}

// Show adds a toast and schedules its dismissal. Toast timers are never cancelled.
func (t *Toasts) Show(message string, kind ToastKind) Toast {
	t.nextID++
	toast := Toast{ID: t.nextID, Message: message, Kind: kind}
	t.active = append(t.active, toast)
	t.onChange(t.Active())

	id := toast.ID
	t.sched.AfterFunc(ToastVisible, func() {
		t.dispatch(func() { t.fade(id) })
		t.sched.AfterFunc(ToastFade, func() {
			t.dispatch(func() { t.remove(id) })
		})
	})
	return toast
}

// Active returns a copy of the visible toasts, oldest first.
func (t *Toasts) Active() []Toast {
	return append([]Toast(nil), t.active...)
}

func (t *Toasts) fade(id int) {
	for i := range t.active {
		if t.active[i].ID == id {
			t.active[i].Fading = true
			t.onChange(t.Active())
			return
		}
	}
}

func (t *Toasts) remove(id int) {
	for i := range t.active {
		if t.active[i].ID == id {
			t.active = append(t.active[:i], t.active[i+1:]...)
			t.onChange(t.Active())
			return
		}
	}
}
