package tkhost

import (
	"fmt"
	"strings"

	"github.com/thiagokokada/tkforms/internal/tcl"
	"github.com/thiagokokada/tkforms/internal/tkutil"
	"github.com/thiagokokada/tkforms/widgets"

	tk "modernc.org/tk9.0"
)

// Choose runs the native picker for kind. An empty slice means the user
// cancelled.
func (h *Host) Choose(kind widgets.ChooserKind, opts widgets.ChooserOptions) ([]string, error) {
	if kind == widgets.ChooseDirectory {
		dir := chooseDirectory(opts)
		if dir == "" {
			return nil, nil
		}
		return []string{dir}, nil
	}
	script, err := chooserScript(kind, opts)
	if err != nil {
		return nil, err
	}
	raw, err := tkutil.Eval("%s", script)
	if err != nil {
		return nil, err
	}
	return parseChooserResult(kind, raw)
}

func chooseDirectory(opts widgets.ChooserOptions) string {
	args := []tk.Opt{tk.Parent(tk.App), tk.Mustexist(true)}
	if opts.Title != "" {
		args = append(args, tk.Title(opts.Title))
	}
	if opts.InitialDir != "" {
		args = append(args, tk.Initialdir(opts.InitialDir))
	}
	return strings.TrimSpace(tk.ChooseDirectory(args...))
}

// chooserScript builds the tk_getOpenFile or tk_getSaveFile call for kind.
func chooserScript(kind widgets.ChooserKind, opts widgets.ChooserOptions) (string, error) {
	var b strings.Builder
	switch kind {
	case widgets.ChooseOpenFile, widgets.ChooseOpenFiles:
		b.WriteString("tk_getOpenFile")
	case widgets.ChooseSaveFile:
		b.WriteString("tk_getSaveFile")
	default:
		return "", fmt.Errorf("no file picker for %s", kind)
	}
	fmt.Fprintf(&b, " -parent %s", tk.App)
	if opts.Title != "" {
		fmt.Fprintf(&b, " -title %s", tcl.Quote(opts.Title))
	}
	if opts.InitialDir != "" {
		fmt.Fprintf(&b, " -initialdir %s", tcl.Quote(opts.InitialDir))
	}
	if len(opts.FileTypes) > 0 {
		fmt.Fprintf(&b, " -filetypes %s", tcl.Quote(fileTypesList(opts.FileTypes)))
	}
	if kind == widgets.ChooseOpenFiles {
		b.WriteString(" -multiple 1")
	}
	return b.String(), nil
}

// fileTypesList encodes file types as Tk's {{name {patterns}} ...} list.
func fileTypesList(types []widgets.FileType) string {
	entries := make([]string, len(types))
	for i, ft := range types {
		patterns := ft.Patterns
		if len(patterns) == 0 {
			patterns = []string{"*"}
		}
		entries[i] = tcl.List(ft.Name, tcl.List(patterns...))
	}
	return tcl.List(entries...)
}

func parseChooserResult(kind widgets.ChooserKind, raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	if kind != widgets.ChooseOpenFiles {
		return []string{raw}, nil
	}
	paths, err := tcl.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("parse chosen files: %w", err)
	}
	return paths, nil
}

// Confirm shows an ok/cancel message box and reports whether ok was pressed.
func (h *Host) Confirm(title, msg string) bool {
	answer := tk.MessageBox(
		tk.Parent(tk.App),
		tk.Title(title),
		tk.Icon("question"),
		tk.Msg(msg),
		tk.Type("okcancel"),
	)
	return answer == "ok"
}
