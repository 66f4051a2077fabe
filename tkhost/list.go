package tkhost

import (
	"strconv"

	"github.com/thiagokokada/tkforms/binding"
	"github.com/thiagokokada/tkforms/internal/tkutil"
	"github.com/thiagokokada/tkforms/widgets"

	tk "modernc.org/tk9.0"
)

type listWidget struct {
	frame *tk.TFrameWidget
	list  *tk.ListboxWidget
}

// Listbox creates a multi-select listbox showing the Tcl list held by v.
func (h *Host) Listbox(parent widgets.Container, v *binding.Var[string]) (widgets.ListWidget, error) {
	frame := WindowOf(parent).TFrame()
	tk.GridColumnConfigure(frame.Window, 0, tk.Weight(1))
	tk.GridRowConfigure(frame.Window, 0, tk.Weight(1))

	scroll := frame.TScrollbar()
	list := frame.Listbox(tk.Exportselection(false), tk.Selectmode("extended"))
	list.Configure(tk.Yscrollcommand(func(e *tk.Event) { e.ScrollSet(scroll) }))
	scroll.Configure(tk.Command(func(e *tk.Event) { e.Yview(list) }))
	if _, err := tkutil.Eval("%s configure -listvariable %s -activestyle none", list, h.stringVarName(v)); err != nil {
		return nil, err
	}
	tk.Grid(list, tk.Row(0), tk.Column(0), tk.Sticky(tk.NEWS))
	tk.Grid(scroll, tk.Row(0), tk.Column(1), tk.Sticky(tk.NS))
	return &listWidget{frame: frame, list: list}, nil
}

func (l *listWidget) String() string { return l.frame.String() }

func (l *listWidget) Curselection() []int {
	return l.list.Curselection()
}

func (l *listWidget) SelectionSet(first, last int) {
	tkutil.Run("%s selection set %s %s", l.list, listIndex(first), listIndex(last))
}

func (l *listWidget) SelectionClear(first, last int) {
	tkutil.Run("%s selection clear %s %s", l.list, listIndex(first), listIndex(last))
}

func (l *listWidget) Activate(index int) {
	tkutil.Run("%s activate %s", l.list, listIndex(index))
}

func (l *listWidget) See(index int) {
	tkutil.Run("%s see %s", l.list, listIndex(index))
}

func listIndex(i int) string {
	if i == widgets.End {
		return "end"
	}
	return strconv.Itoa(i)
}
