package tkhost

import (
	"log/slog"

	"github.com/thiagokokada/tkforms/internal/tcl"
	"github.com/thiagokokada/tkforms/internal/tkutil"
	"github.com/thiagokokada/tkforms/widgets"

	tk "modernc.org/tk9.0"
)

type dialogWindow struct {
	top *tk.ToplevelWidget
}

// Dialog creates a top-level window transient for parent. It is not modal
// until the widgets.Dialog shows it.
func (h *Host) Dialog(parent widgets.Container, cfg widgets.DialogConfig) (widgets.DialogWindow, error) {
	owner := WindowOf(parent)
	top := owner.Toplevel()
	if cfg.Title != "" {
		top.WmTitle(cfg.Title)
	}
	tk.WmTransient(top.Window, owner)
	if cfg.Icon != "" {
		if _, err := tkutil.Eval("wm iconphoto %s [image create photo -file %s]", top, tcl.Quote(cfg.Icon)); err != nil {
			slog.Error("dialog icon", slog.String("path", cfg.Icon), slog.Any("error", err))
		}
	}
	return &dialogWindow{top: top}, nil
}

func (w *dialogWindow) String() string { return w.top.String() }

func (w *dialogWindow) Focus() {
	tkutil.Run("focus %s", w.top)
}

func (w *dialogWindow) Grab() {
	// The window must be viewable before it can grab.
	tkutil.Run("tkwait visibility %s", w.top)
	tkutil.Run("grab set %s", w.top)
}

func (w *dialogWindow) Wait() {
	w.top.Center().Wait()
}

func (w *dialogWindow) Destroy() {
	tkutil.Run("grab release %s", w.top)
	tk.Destroy(w.top.Window)
}

func (w *dialogWindow) Exists() bool {
	return tkutil.Bool(tkutil.EvalOrEmpty("winfo exists %s", w.top))
}
