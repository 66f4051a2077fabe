package widgets

import (
	"errors"
	"fmt"
	"slices"

	"github.com/thiagokokada/tkforms/binding"
	"github.com/thiagokokada/tkforms/internal/tcl"
)

type fakeHandle string

func (h fakeHandle) String() string { return string(h) }

type fakeHost struct {
	seq int

	labelFunc    func(v *binding.Var[string]) error
	chooseFunc   func(kind ChooserKind, opts ChooserOptions) ([]string, error)
	dialogWait   func(w *fakeDialogWindow)
	noChooser    bool
	buttons      map[string]func()
	texts        []*fakeText
	lists        []*fakeList
	dialogs      []*fakeDialogWindow
	lastTextConf TextConfig
	lastCaption  string
}

func newFakeHost() *fakeHost {
	return &fakeHost{buttons: map[string]func(){}}
}

func (h *fakeHost) path(kind string) string {
	h.seq++
	return fmt.Sprintf(".%s%d", kind, h.seq)
}

func (h *fakeHost) NewStringVar(initial string) *binding.Var[string] { return binding.NewString(initial) }

func (h *fakeHost) NewIntVar(initial int) *binding.Var[int] { return binding.NewInt(initial) }

func (h *fakeHost) Label(parent Container, v *binding.Var[string]) (Handle, error) {
	if h.labelFunc != nil {
		if err := h.labelFunc(v); err != nil {
			return nil, err
		}
	}
	return fakeHandle(h.path("label")), nil
}

func (h *fakeHost) Entry(parent Container, v *binding.Var[string]) (Handle, error) {
	return fakeHandle(h.path("entry")), nil
}

func (h *fakeHost) Checkbox(parent Container, caption string, v *binding.Var[int]) (Handle, error) {
	h.lastCaption = caption
	return fakeHandle(h.path("check")), nil
}

func (h *fakeHost) Text(parent Container, cfg TextConfig) (TextWidget, error) {
	h.lastTextConf = cfg
	t := &fakeText{path: h.path("text"), tags: map[string][]tagRange{}, colors: map[string]string{}}
	h.texts = append(h.texts, t)
	return t, nil
}

func (h *fakeHost) Listbox(parent Container, v *binding.Var[string]) (ListWidget, error) {
	l := &fakeList{path: h.path("list"), v: v, selected: map[int]bool{}}
	h.lists = append(h.lists, l)
	return l, nil
}

func (h *fakeHost) Dialog(parent Container, cfg DialogConfig) (DialogWindow, error) {
	w := &fakeDialogWindow{path: h.path("dialog"), cfg: cfg, exists: true, onWait: h.dialogWait}
	h.dialogs = append(h.dialogs, w)
	return w, nil
}

func (h *fakeHost) Button(parent Container, caption string, onClick func()) (Handle, error) {
	p := h.path("button")
	h.lastCaption = caption
	h.buttons[p] = onClick
	return fakeHandle(p), nil
}

func (h *fakeHost) Chooser() Chooser {
	if h.noChooser {
		return nil
	}
	return h
}

func (h *fakeHost) Choose(kind ChooserKind, opts ChooserOptions) ([]string, error) {
	if h.chooseFunc != nil {
		return h.chooseFunc(kind, opts)
	}
	return nil, errors.New("unexpected Choose call")
}

type tagRange struct {
	start, end TextIndex
}

// fakeText mimics a Tk text widget: reads always end with a newline and user
// typing sets the modified flag.
type fakeText struct {
	path       string
	content    string
	modified   bool
	undoResets int
	maxUndo    int
	rawReads   int
	tags       map[string][]tagRange
	colors     map[string]string
}

func (t *fakeText) String() string { return t.path }

func (t *fakeText) RawGet() string {
	t.rawReads++
	return t.content + "\n"
}

func (t *fakeText) RawInsert(text string) {
	t.content += text
	t.modified = true
}

func (t *fakeText) RawDelete() {
	t.content = ""
	t.modified = true
}

func (t *fakeText) Modified() bool { return t.modified }

func (t *fakeText) ResetModified() { t.modified = false }

func (t *fakeText) ResetUndo() { t.undoResets++ }

func (t *fakeText) SetMaxUndo(n int) { t.maxUndo = n }

func (t *fakeText) TagConfigure(tag, foreground string) { t.colors[tag] = foreground }

func (t *fakeText) TagAdd(tag string, start, end TextIndex) {
	t.tags[tag] = append(t.tags[tag], tagRange{start: start, end: end})
}

func (t *fakeText) TagRemove(tag string) { delete(t.tags, tag) }

// typeText simulates the user typing at the end of the widget.
func (t *fakeText) typeText(s string) {
	t.content += s
	t.modified = true
}

// fakeList resolves End against the current list variable, like Tk does.
type fakeList struct {
	path     string
	v        *binding.Var[string]
	selected map[int]bool
	active   int
	seen     int
}

func (l *fakeList) String() string { return l.path }

func (l *fakeList) size() int {
	raw := l.v.Get()
	if raw == "" {
		return 0
	}
	elems, err := tcl.Split(raw)
	if err != nil {
		return 0
	}
	return len(elems)
}

func (l *fakeList) resolve(idx int) int {
	if idx == End {
		return l.size() - 1
	}
	return idx
}

func (l *fakeList) Curselection() []int {
	var out []int
	for idx, on := range l.selected {
		if on {
			out = append(out, idx)
		}
	}
	// Descending on purpose: callers must not rely on the host's order.
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

func (l *fakeList) SelectionSet(first, last int) {
	for i := l.resolve(first); i <= l.resolve(last); i++ {
		l.selected[i] = true
	}
}

func (l *fakeList) SelectionClear(first, last int) {
	for i := l.resolve(first); i <= l.resolve(last); i++ {
		delete(l.selected, i)
	}
}

func (l *fakeList) Activate(index int) { l.active = l.resolve(index) }

func (l *fakeList) See(index int) { l.seen = l.resolve(index) }

type fakeDialogWindow struct {
	path      string
	cfg       DialogConfig
	exists    bool
	focused   bool
	grabbed   bool
	waited    bool
	destroyed int
	onWait    func(w *fakeDialogWindow)
}

func (w *fakeDialogWindow) String() string { return w.path }

func (w *fakeDialogWindow) Focus() { w.focused = true }

func (w *fakeDialogWindow) Grab() { w.grabbed = true }

// Wait runs the scripted events, standing in for the nested event loop.
func (w *fakeDialogWindow) Wait() {
	w.waited = true
	if w.onWait != nil {
		w.onWait(w)
	}
}

func (w *fakeDialogWindow) Destroy() {
	w.exists = false
	w.destroyed++
}

func (w *fakeDialogWindow) Exists() bool { return w.exists }
