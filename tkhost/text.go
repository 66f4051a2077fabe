package tkhost

import (
	"github.com/thiagokokada/tkforms/internal/tcl"
	"github.com/thiagokokada/tkforms/internal/tkutil"
	"github.com/thiagokokada/tkforms/widgets"

	tk "modernc.org/tk9.0"
)

// textWidget is a Text with a vertical scrollbar, both gridded in a frame.
// The frame is what callers lay out.
type textWidget struct {
	frame *tk.TFrameWidget
	text  *tk.TextWidget
}

func (h *Host) Text(parent widgets.Container, cfg widgets.TextConfig) (widgets.TextWidget, error) {
	frame := WindowOf(parent).TFrame()
	tk.GridColumnConfigure(frame.Window, 0, tk.Weight(1))
	tk.GridRowConfigure(frame.Window, 0, tk.Weight(1))

	scroll := frame.TScrollbar()
	text := frame.Text(tk.Wrap("word"), tk.Exportselection(false))
	text.Configure(tk.Yscrollcommand(func(e *tk.Event) { e.ScrollSet(scroll) }))
	scroll.Configure(tk.Command(func(e *tk.Event) { e.Yview(text) }))
	if _, err := tkutil.Eval("%s configure -undo 1 -maxundo %d -padx 4", text, cfg.MaxUndo); err != nil {
		return nil, err
	}
	if cfg.Width > 0 {
		text.Configure(tk.Width(cfg.Width))
	}
	if cfg.Height > 0 {
		text.Configure(tk.Height(cfg.Height))
	}
	tk.Grid(text, tk.Row(0), tk.Column(0), tk.Sticky(tk.NEWS))
	tk.Grid(scroll, tk.Row(0), tk.Column(1), tk.Sticky(tk.NS))
	return &textWidget{frame: frame, text: text}, nil
}

func (t *textWidget) String() string { return t.frame.String() }

func (t *textWidget) RawGet() string {
	return tkutil.EvalOrEmpty("%s get 1.0 end", t.text)
}

func (t *textWidget) RawInsert(s string) {
	tkutil.Run("%s insert end %s", t.text, tcl.Quote(s))
}

func (t *textWidget) RawDelete() {
	t.text.Delete("1.0", tk.END)
}

func (t *textWidget) Modified() bool {
	return tkutil.Bool(tkutil.EvalOrEmpty("%s edit modified", t.text))
}

func (t *textWidget) ResetModified() {
	tkutil.Run("%s edit modified 0", t.text)
}

func (t *textWidget) ResetUndo() {
	tkutil.Run("%s edit reset", t.text)
}

func (t *textWidget) SetMaxUndo(n int) {
	tkutil.Run("%s configure -maxundo %d", t.text, n)
}

func (t *textWidget) TagConfigure(tag, foreground string) {
	t.text.TagConfigure(tag, tk.Foreground(foreground))
}

func (t *textWidget) TagAdd(tag string, start, end widgets.TextIndex) {
	t.text.TagAdd(tag, start.String(), end.String())
}

func (t *textWidget) TagRemove(tag string) {
	t.text.TagRemove(tag, "1.0", tk.END)
}
