package widgets

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/thiagokokada/tkforms/binding"
)

// TextBuffer is a multi-line control. Programmatic writes replace the whole
// content and clear the undo history; Insert is the only undoable edit.
//
// A shared variable is kept in step both ways: user edits are copied into it
// on the next read, and a value set on it elsewhere replaces the widget
// content like SetText does.
type TextBuffer struct {
	bindable[string]
	widget  TextWidget
	history undoHistory
	// synced is the full content last exchanged between the widget and the
	// variable, without the newline Tk keeps at the end.
	synced string

	highlightStyle string
	syntaxTags     map[string]string
}

func NewTextBuffer(h Host, parent Container, opts ...Option) (*TextBuffer, error) {
	o := buildOptions(opts)
	if o.maxUndo < 0 {
		return nil, newError("text.new", KindConfiguration, "max undo must not be negative, got %d", o.maxUndo)
	}
	v, err := resolveVar("text.new", o, func() *binding.Var[string] { return h.NewStringVar("") })
	if err != nil {
		return nil, err
	}
	w, err := h.Text(parent, TextConfig{MaxUndo: o.maxUndo, Width: o.width, Height: o.height})
	if err != nil {
		return nil, &Error{Op: "text.new", Kind: KindUnknown, Err: err}
	}
	b := &TextBuffer{
		bindable:       bindable[string]{v: v},
		widget:         w,
		history:        undoHistory{max: o.maxUndo},
		highlightStyle: defaultHighlightStyle,
	}
	if initial := v.Get(); initial != "" {
		b.replace(initial)
		b.cached = initial
	}
	return b, nil
}

// Value returns the content with trailing whitespace removed. The widget is
// only read when it was edited since the last write.
func (b *TextBuffer) Value() string {
	return trimTrailingSpace(b.raw())
}

// raw returns the untrimmed content, picking up user edits and writes made to
// the variable from outside since the last sync.
func (b *TextBuffer) raw() string {
	if cur := b.v.Get(); cur != b.synced {
		b.write(cur)
	} else if b.widget.Modified() {
		b.synced = strings.TrimSuffix(b.widget.RawGet(), "\n")
		b.v.Set(b.synced)
		b.widget.ResetModified()
	}
	return b.synced
}

// SetValue replaces the content. A slice or array is written one element per
// line; anything else is written as its string form. Nothing changes when an
// element cannot be converted.
func (b *TextBuffer) SetValue(v any) error {
	var text string
	if items, ok := sequence(v); ok {
		lines, err := stringsOf("text.set", items)
		if err != nil {
			return err
		}
		text = strings.Join(lines, "\n")
	} else {
		s, err := stringify(v)
		if err != nil {
			return &Error{Op: "text.set", Kind: KindConversion, Err: fmt.Errorf("value (%T): %w", v, err)}
		}
		text = s
	}
	b.write(text)
	return nil
}

func (b *TextBuffer) SetText(s string) {
	b.write(s)
}

// SetLines writes one item per line.
func (b *TextBuffer) SetLines(items ...any) error {
	return b.SetValue(items)
}

// Clear empties the buffer and discards the undo history. It cannot be
// undone.
func (b *TextBuffer) Clear() {
	b.write("")
}

func (b *TextBuffer) write(text string) {
	b.replace(text)
	b.cached = text
	b.history.reset()
	b.widget.ResetUndo()
}

// replace rewrites the widget and the variable without touching history.
func (b *TextBuffer) replace(text string) {
	b.widget.RawDelete()
	if text != "" {
		b.widget.RawInsert(text)
	}
	b.widget.ResetModified()
	b.synced = text
	b.v.Set(text)
}

// Insert appends text as an undoable edit.
func (b *TextBuffer) Insert(text string) {
	if text == "" {
		return
	}
	current := b.raw()
	b.history.record(current)
	b.replace(current + text)
	b.widget.ResetUndo()
}

func (b *TextBuffer) Undo() bool {
	prev, ok := b.history.back(b.raw())
	if !ok {
		return false
	}
	b.replace(prev)
	b.widget.ResetUndo()
	return true
}

func (b *TextBuffer) Redo() bool {
	next, ok := b.history.forward(b.raw())
	if !ok {
		return false
	}
	b.replace(next)
	b.widget.ResetUndo()
	return true
}

// SetMaxUndo changes how many Insert steps can be undone. Steps beyond the
// new bound are dropped.
func (b *TextBuffer) SetMaxUndo(n int) error {
	if n < 0 {
		return newError("text.maxundo", KindConfiguration, "max undo must not be negative, got %d", n)
	}
	b.history.setMax(n)
	b.widget.SetMaxUndo(n)
	return nil
}

func (b *TextBuffer) CanUndo() bool { return b.history.depth() > 0 }

func (b *TextBuffer) CanRedo() bool { return len(b.history.redo) > 0 }

// Changes returns a unified diff from the last programmatic write to the
// current content, or "" when they match.
func (b *TextBuffer) Changes() (string, error) {
	saved := trimTrailingSpace(b.cached)
	current := b.Value()
	if saved == current {
		return "", nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(saved),
		B:        difflib.SplitLines(current),
		FromFile: "saved",
		ToFile:   "current",
		Context:  3,
	}
	out, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("text changes: %w", err)
	}
	return out, nil
}

func (b *TextBuffer) Handle() Handle { return b.widget }

func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
