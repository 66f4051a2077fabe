package tkhost

import (
	"log/slog"

	"github.com/thiagokokada/tkforms/widgets"

	tk "modernc.org/tk9.0"
)

// Grid places a control's handle with the grid geometry manager. Composite
// handles (text and list with their scrollbars) are placed as a whole.
func Grid(h widgets.Handle, opts ...tk.Opt) {
	switch w := h.(type) {
	case *textWidget:
		tk.Grid(w.frame, opts...)
	case *listWidget:
		tk.Grid(w.frame, opts...)
	case tk.Widget:
		tk.Grid(w, opts...)
	default:
		slog.Debug("grid: not a tk widget", slog.Any("handle", h))
	}
}

// Cell is the grid position used by Place.
type Cell struct {
	Row, Column int
	Sticky      string
}

// Place grids h at c with the default padding.
func Place(h widgets.Handle, c Cell) {
	sticky := c.Sticky
	if sticky == "" {
		sticky = "w"
	}
	Grid(h, tk.Row(c.Row), tk.Column(c.Column), tk.Sticky(sticky), tk.Padx("4p"), tk.Pady("2p"))
}
