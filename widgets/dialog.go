package widgets

import (
	"fmt"
	"log/slog"
	"maps"
)

// DialogState is a stage of the modal dialog lifecycle.
type DialogState int

const (
	DialogCreated DialogState = iota
	DialogShown
	DialogConfirmed
	DialogCancelled
	DialogDestroyed
)

func (s DialogState) String() string {
	switch s {
	case DialogCreated:
		return "created"
	case DialogShown:
		return "shown"
	case DialogConfirmed:
		return "confirmed"
	case DialogCancelled:
		return "cancelled"
	case DialogDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("DialogState(%d)", int(s))
	}
}

// Result is what a dialog hands back to the code that showed it.
type Result map[string]any

// Collector gathers a concrete dialog's control values when it is confirmed.
type Collector interface {
	Collect() (Result, error)
}

// CollectorFunc adapts a function to Collector.
type CollectorFunc func() (Result, error)

func (f CollectorFunc) Collect() (Result, error) { return f() }

// Dialog is a modal window. Show blocks the caller until the dialog is
// confirmed, cancelled or closed, and returns the collected result. The result
// is empty unless Confirm populated it.
type Dialog struct {
	win       DialogWindow
	collector Collector
	state     DialogState
	result    Result
	confirmed bool
}

func NewDialog(h Host, parent Container, c Collector, opts ...Option) (*Dialog, error) {
	if c == nil {
		return nil, newError("dialog.new", KindConfiguration, "collector is required")
	}
	o := buildOptions(opts)
	win, err := h.Dialog(parent, DialogConfig{Title: o.title, Icon: o.icon})
	if err != nil {
		return nil, &Error{Op: "dialog.new", Kind: KindUnknown, Err: err}
	}
	return &Dialog{win: win, collector: c, result: Result{}}, nil
}

// Window is the dialog's top-level window, for building its body.
func (d *Dialog) Window() DialogWindow { return d.win }

func (d *Dialog) State() DialogState { return d.state }

// Confirmed reports whether the dialog ended through Confirm.
func (d *Dialog) Confirmed() bool { return d.confirmed }

// Show grabs input, waits for the window to be destroyed and returns a copy of
// the result. Closing the window from the window manager counts as a cancel.
func (d *Dialog) Show() (Result, error) {
	if d.state != DialogCreated {
		return nil, newError("dialog.show", KindState, "dialog is %s", d.state)
	}
	d.transition(DialogShown)
	d.win.Focus()
	d.win.Grab()
	d.win.Wait()
	if d.state == DialogShown {
		d.result = Result{}
		d.transition(DialogCancelled)
		d.transition(DialogDestroyed)
	}
	return maps.Clone(d.result), nil
}

// Cancel clears the result and destroys the window.
func (d *Dialog) Cancel() {
	if d.state == DialogDestroyed {
		return
	}
	d.result = Result{}
	d.confirmed = false
	d.transition(DialogCancelled)
	d.destroy()
}

// Confirm collects the result and destroys the window. When collecting fails
// the dialog stays open with an empty result.
func (d *Dialog) Confirm() error {
	if d.state != DialogShown {
		return newError("dialog.confirm", KindState, "dialog is %s", d.state)
	}
	res, err := d.collector.Collect()
	if err != nil {
		d.result = Result{}
		return fmt.Errorf("dialog.confirm: %w", err)
	}
	d.result = maps.Clone(res)
	if d.result == nil {
		d.result = Result{}
	}
	d.confirmed = true
	d.transition(DialogConfirmed)
	d.destroy()
	return nil
}

func (d *Dialog) destroy() {
	if d.win.Exists() {
		d.win.Destroy()
	}
	d.transition(DialogDestroyed)
}

func (d *Dialog) transition(to DialogState) {
	slog.Debug("dialog state",
		slog.String("window", d.win.String()),
		slog.String("from", d.state.String()),
		slog.String("to", to.String()),
	)
	d.state = to
}
