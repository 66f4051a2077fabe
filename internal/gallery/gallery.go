// Package gallery is the demo window: one of every control, wired to buttons
// that exercise its value API.
package gallery

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thiagokokada/tkforms/binding"
	"github.com/thiagokokada/tkforms/internal/settings"
	"github.com/thiagokokada/tkforms/widgets"
)

const (
	replacementText = "Replaced the text with this."
	sharedLabelText = "Label with predetermined variable"
	privateLabel    = "Label without predetermined variable"
)

// placeFunc lays a control out at row/column inside its parent.
type placeFunc func(h widgets.Handle, row, col int)

// shell is the toolkit side of the gallery: message boxes, window title and
// teardown.
type shell interface {
	widgets.Prompter
	Info(title, msg string)
	SetTitle(title string)
	// ApplyTheme switches to theme and returns its highlight style.
	ApplyTheme(theme string) string
	Quit()
}

// Sections group the gallery's controls; each is a container built by the
// toolkit layer.
type Sections struct {
	Labels, Text, Inputs, List widgets.Container
}

type Gallery struct {
	host  widgets.Host
	shell shell
	place placeFunc

	shared  *binding.Var[string]
	labels  [2]*widgets.Label
	text    *widgets.TextBuffer
	path    *widgets.Entry
	browse  *widgets.FileDialogButton
	check   *widgets.Checkbox
	list    *widgets.SelectionList
	status  *widgets.Label
	buttons map[string]widgets.Handle
}

func newGallery(h widgets.Host, sh shell, place placeFunc, sec Sections, s settings.Resolved) (*Gallery, error) {
	g := &Gallery{
		host:    h,
		shell:   sh,
		place:   place,
		shared:  h.NewStringVar(sharedLabelText),
		buttons: make(map[string]widgets.Handle),
	}
	steps := []func() error{
		func() error { return g.buildLabels(sec.Labels) },
		func() error { return g.buildText(sec.Text, s.MaxUndo) },
		func() error { return g.buildInputs(sec.Inputs) },
		func() error { return g.buildList(sec.List, s.Heading) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Gallery) button(parent widgets.Container, caption string, row, col int, fn func()) error {
	b, err := g.host.Button(parent, caption, traceCallback(caption, fn))
	if err != nil {
		return fmt.Errorf("button %q: %w", caption, err)
	}
	g.buttons[caption] = b
	g.place(b, row, col)
	return nil
}

func (g *Gallery) buildLabels(parent widgets.Container) error {
	first, err := widgets.NewLabel(g.host, parent, widgets.WithVariable(g.shared))
	if err != nil {
		return err
	}
	second, err := widgets.NewLabel(g.host, parent)
	if err != nil {
		return err
	}
	second.SetValue(privateLabel)
	g.labels = [2]*widgets.Label{first, second}
	for i, l := range g.labels {
		g.place(l.Handle(), i*2, 0)
		if err := g.button(parent, fmt.Sprintf("Add ! (%d)", i+1), i*2+1, 0, func() { addSign(l) }); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gallery) buildText(parent widgets.Container, maxUndo int) error {
	text, err := widgets.NewTextBuffer(g.host, parent, widgets.WithMaxUndo(maxUndo), widgets.WithSize(30, 5))
	if err != nil {
		return err
	}
	g.text = text
	g.place(text.Handle(), 0, 0)
	actions := []struct {
		caption string
		fn      func()
	}{
		{"Get", g.showText},
		{"Set", g.setText},
		{"List set", g.listSet},
		{"Insert", g.insertLine},
		{"Undo", func() { g.text.Undo() }},
		{"Redo", func() { g.text.Redo() }},
		{"Highlight", g.highlight},
		{"Changes", g.showChanges},
	}
	for i, a := range actions {
		if err := g.button(parent, a.caption, i+1, 0, a.fn); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gallery) buildInputs(parent widgets.Container) error {
	path, err := widgets.NewEntry(g.host, parent)
	if err != nil {
		return err
	}
	browse, err := widgets.NewFileDialogButton(g.host, parent, path, "openfilename",
		widgets.WithChooserOptions(widgets.ChooserOptions{
			Title: "Choose a file",
			FileTypes: []widgets.FileType{
				{Name: "Text files", Patterns: []string{".txt", ".md"}},
				{Name: "All files", Patterns: []string{"*"}},
			},
		}))
	if err != nil {
		return err
	}
	check, err := widgets.NewCheckbox(g.host, parent, widgets.WithCaption("Highlight as code"))
	if err != nil {
		return err
	}
	g.path, g.browse, g.check = path, browse, check
	g.place(path.Handle(), 0, 0)
	g.place(browse.Handle(), 0, 1)
	g.place(check.Handle(), 1, 0)
	return g.button(parent, "Load file", 2, 0, g.loadPath)
}

func (g *Gallery) buildList(parent widgets.Container, heading string) error {
	list, err := widgets.NewSelectionList(g.host, parent, widgets.WithHeading(heading))
	if err != nil {
		return err
	}
	if err := list.SetValue([]string{"alpha", "beta", "gamma"}); err != nil {
		return err
	}
	status, err := widgets.NewLabel(g.host, parent)
	if err != nil {
		return err
	}
	g.list, g.status = list, status
	g.place(list.Handle(), 0, 0)
	g.place(status.Handle(), 5, 0)
	actions := []struct {
		caption string
		fn      func()
	}{
		{"First", func() { g.report(g.list.SelectFirst()) }},
		{"Last", func() { g.report(g.list.SelectLast()) }},
		{"Show selection", g.showSelection},
		{"Fill from text", g.fillList},
	}
	for i, a := range actions {
		if err := g.button(parent, a.caption, i+1, 0, a.fn); err != nil {
			return err
		}
	}
	return nil
}

func addSign(l *widgets.Label) {
	l.SetValue(l.Value() + "!")
}

func (g *Gallery) showText() {
	g.shell.Info("Text", g.text.Value())
}

func (g *Gallery) setText() {
	g.text.SetText(replacementText)
}

// listItems mixes a string, a number and a set, which is written as a single
// line.
func listItems() []any {
	return []any{"item 1", 2, map[any]struct{}{"a": {}, 3: {}}}
}

func (g *Gallery) listSet() {
	g.report(g.text.SetValue(listItems()))
}

func (g *Gallery) insertLine() {
	g.text.Insert("\nanother line")
}

func (g *Gallery) highlight() {
	g.report(g.text.Highlight(""))
}

func (g *Gallery) showChanges() {
	diff, err := g.text.Changes()
	if err != nil {
		g.report(err)
		return
	}
	if diff == "" {
		diff = "No changes since the last write."
	}
	g.shell.Info("Changes", diff)
}

// loadPath reads the chosen file into the text buffer, highlighted when the
// checkbox asks for it.
func (g *Gallery) loadPath() {
	p := strings.TrimSpace(g.path.Value())
	if p == "" {
		g.setStatus("No file chosen.")
		return
	}
	data, err := os.ReadFile(p)
	if err != nil {
		g.report(fmt.Errorf("load file: %w", err))
		return
	}
	g.text.SetText(string(data))
	g.setStatus("Loaded " + filepath.Base(p))
	if g.check.Checked() {
		g.report(g.text.Highlight(lexerName(p)))
	}
}

// lexerName maps a file name to a chroma lexer alias; "" lets chroma guess.
func lexerName(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func (g *Gallery) showSelection() {
	vals := g.list.SelectedValues()
	if len(vals) == 0 {
		g.setStatus("Nothing selected.")
		return
	}
	g.setStatus("Selected: " + strings.Join(vals, ", "))
}

// fillList copies the text buffer's lines into the list.
func (g *Gallery) fillList() {
	var lines []string
	for _, line := range strings.Split(g.text.Value(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	g.report(g.list.SetValue(lines))
}

func (g *Gallery) setStatus(msg string) {
	g.status.SetValue(msg)
}

// report shows err in the status line; nil clears it.
func (g *Gallery) report(err error) {
	if err == nil {
		g.setStatus("")
		return
	}
	slog.Debug("gallery action failed", slog.Any("error", err))
	g.setStatus(err.Error())
}

// applySettings updates the running window from reloaded settings.
func (g *Gallery) applySettings(s settings.Resolved) {
	g.shell.SetTitle(s.Title)
	g.list.SetHeading(s.Heading)
	g.text.SetHighlightStyle(g.shell.ApplyTheme(s.Theme))
	g.report(g.text.SetMaxUndo(s.MaxUndo))
	slog.Info("settings applied",
		slog.String("title", s.Title),
		slog.String("theme", s.Theme),
		slog.Int("max_undo", s.MaxUndo))
}

// confirmQuit asks before closing the window.
func (g *Gallery) confirmQuit() {
	if g.shell.Confirm("Quit?", "Really quit?") {
		g.shell.Quit()
	}
}

// traceCallback wraps fn so every invocation is logged with the control that
// fired it.
func traceCallback(name string, fn func()) func() {
	return func() {
		slog.Debug("callback", slog.String("control", name))
		fn()
	}
}
