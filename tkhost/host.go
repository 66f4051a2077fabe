// Package tkhost implements the widgets host interfaces on top of
// modernc.org/tk9.0.
//
// Controls are bound to real Tcl variables, so a value written from Go is
// visible to the widget immediately and user edits are visible to Go on the
// next read. Every method must be called from the Tk event loop goroutine.
package tkhost

import (
	"fmt"
	"log/slog"

	"github.com/thiagokokada/tkforms/binding"
	"github.com/thiagokokada/tkforms/internal/tkutil"
	"github.com/thiagokokada/tkforms/widgets"

	tk "modernc.org/tk9.0"
	_ "modernc.org/tk9.0/themes/azure" // load theme
)

var (
	_ widgets.Host     = (*Host)(nil)
	_ widgets.Chooser  = (*Host)(nil)
	_ widgets.Prompter = (*Host)(nil)
)

// Host creates Tk widgets for the widgets package.
type Host struct {
	vars int
}

// New initializes the Tcl eval extension the host relies on.
func New() (*Host, error) {
	if err := tk.InitializeExtension("eval"); err != nil && err != tk.AlreadyInitialized {
		return nil, fmt.Errorf("init eval extension: %v", err)
	}
	return &Host{}, nil
}

// WindowOf returns the Tk window behind a container. A nil container is the
// application root.
func WindowOf(c widgets.Container) *tk.Window {
	switch w := c.(type) {
	case nil:
		return tk.App
	case *tk.Window:
		return w
	case *tk.TFrameWidget:
		return w.Window
	case *tk.ToplevelWidget:
		return w.Window
	case *dialogWindow:
		return w.top.Window
	default:
		slog.Debug("unknown container, using root", slog.String("path", c.String()))
		return tk.App
	}
}

func (h *Host) nextVarName() string {
	h.vars++
	return fmt.Sprintf("::tkforms_var%d", h.vars)
}

func (h *Host) NewStringVar(initial string) *binding.Var[string] {
	c := &stringCell{name: h.nextVarName()}
	c.Store(initial)
	return binding.WithCell[string](c)
}

func (h *Host) NewIntVar(initial int) *binding.Var[int] {
	c := &intCell{name: h.nextVarName()}
	c.Store(initial)
	return binding.WithCell[int](c)
}

// stringVarName moves an in-memory variable onto a fresh Tcl variable and returns
// the name widgets can be configured with.
func (h *Host) stringVarName(v *binding.Var[string]) string {
	if name := v.Name(); name != "" {
		return name
	}
	c := &stringCell{name: h.nextVarName()}
	v.Attach(c)
	return c.name
}

func (h *Host) intVarName(v *binding.Var[int]) string {
	if name := v.Name(); name != "" {
		return name
	}
	c := &intCell{name: h.nextVarName()}
	v.Attach(c)
	return c.name
}

func (h *Host) Label(parent widgets.Container, v *binding.Var[string]) (widgets.Handle, error) {
	w := WindowOf(parent).TLabel(tk.Anchor(tk.W))
	if _, err := tkutil.Eval("%s configure -textvariable %s", w, h.stringVarName(v)); err != nil {
		return nil, err
	}
	return w, nil
}

func (h *Host) Entry(parent widgets.Container, v *binding.Var[string]) (widgets.Handle, error) {
	w := WindowOf(parent).TEntry(tk.Exportselection(false))
	if _, err := tkutil.Eval("%s configure -textvariable %s", w, h.stringVarName(v)); err != nil {
		return nil, err
	}
	return w, nil
}

func (h *Host) Checkbox(parent widgets.Container, caption string, v *binding.Var[int]) (widgets.Handle, error) {
	w := WindowOf(parent).TCheckbutton(tk.Txt(caption))
	if _, err := tkutil.Eval("%s configure -variable %s -onvalue %d -offvalue %d",
		w, h.intVarName(v), widgets.Checked, widgets.Unchecked); err != nil {
		return nil, err
	}
	return w, nil
}

func (h *Host) Button(parent widgets.Container, caption string, onClick func()) (widgets.Handle, error) {
	return WindowOf(parent).TButton(tk.Txt(caption), tk.Command(onClick)), nil
}

func (h *Host) Chooser() widgets.Chooser { return h }
