package widgets

import (
	"log/slog"
	"slices"

	"github.com/thiagokokada/tkforms/binding"
	"github.com/thiagokokada/tkforms/internal/tcl"
)

// Selection is one selected item of a SelectionList. Index is the item's
// position, starting at 1.
type Selection struct {
	Index int
	Text  string
}

// NoSelection is the placeholder GetSelection returns when nothing is
// selected.
var NoSelection = Selection{}

// Valid reports whether s refers to an item rather than being NoSelection.
func (s Selection) Valid() bool { return s.Index > 0 }

// SelectionList shows a heading row at position 0 followed by the items at
// positions 1..N. The heading is never part of the value or the selection.
//
// The bound variable holds the whole list, heading first, as a Tcl list.
type SelectionList struct {
	bindable[string]
	widget  ListWidget
	heading string
	items   []string
}

func NewSelectionList(h Host, parent Container, opts ...Option) (*SelectionList, error) {
	o := buildOptions(opts)
	v, err := resolveVar("list.new", o, func() *binding.Var[string] { return h.NewStringVar("") })
	if err != nil {
		return nil, err
	}
	l := &SelectionList{bindable: bindable[string]{v: v}, heading: o.heading}
	if raw := v.Get(); raw != "" {
		if elems, err := tcl.Split(raw); err == nil && len(elems) > 0 {
			if o.heading == "" {
				l.heading = elems[0]
			}
			l.items = elems[1:]
		}
	}
	l.store(l.encode(l.items))
	w, err := h.Listbox(parent, v)
	if err != nil {
		return nil, &Error{Op: "list.new", Kind: KindUnknown, Err: err}
	}
	l.widget = w
	return l, nil
}

func (l *SelectionList) encode(items []string) string {
	return tcl.List(append([]string{l.heading}, items...)...)
}

// Value returns the items without the heading.
func (l *SelectionList) Value() []string {
	raw := l.v.Get()
	if raw == l.cached {
		return slices.Clone(l.items)
	}
	elems, err := tcl.Split(raw)
	if err != nil {
		slog.Debug("list value", slog.String("raw", raw), slog.Any("error", err))
		return nil
	}
	l.cached = raw
	if len(elems) == 0 {
		l.items = nil
		return nil
	}
	l.items = elems[1:]
	return slices.Clone(l.items)
}

// SetValue replaces the items with the string form of each element of items.
// On a conversion error the list is left unchanged.
func (l *SelectionList) SetValue(items any) error {
	if items == nil {
		l.setItems(nil)
		return nil
	}
	elems, ok := sequence(items)
	if !ok {
		return newError("list.set", KindConversion, "items must be a slice or array, got %T", items)
	}
	strs, err := stringsOf("list.set", elems)
	if err != nil {
		return err
	}
	l.setItems(strs)
	return nil
}

func (l *SelectionList) setItems(items []string) {
	l.items = items
	l.store(l.encode(items))
}

func (l *SelectionList) Heading() string { return l.heading }

func (l *SelectionList) SetHeading(s string) {
	items := l.Value()
	l.heading = s
	l.setItems(items)
}

// Len returns the number of items, not counting the heading.
func (l *SelectionList) Len() int {
	return len(l.Value())
}

// GetSelection returns the selected items in position order, or a single
// NoSelection when nothing is selected.
func (l *SelectionList) GetSelection() []Selection {
	items := l.Value()
	indices := slices.Clone(l.widget.Curselection())
	slices.Sort(indices)
	var out []Selection
	for _, idx := range indices {
		if idx < 1 || idx > len(items) {
			continue
		}
		out = append(out, Selection{Index: idx, Text: items[idx-1]})
	}
	if len(out) == 0 {
		return []Selection{NoSelection}
	}
	return out
}

// SelectedValues returns the text of the selected items; empty when nothing
// is selected.
func (l *SelectionList) SelectedValues() []string {
	var out []string
	for _, s := range l.GetSelection() {
		if s.Valid() {
			out = append(out, s.Text)
		}
	}
	return out
}

// SetSelection selects exactly the items whose text is in targets. Every
// matching position is selected when items repeat.
func (l *SelectionList) SetSelection(targets []string) {
	want := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		want[t] = struct{}{}
	}
	l.widget.SelectionClear(0, 0)
	for i, item := range l.Value() {
		pos := i + 1
		if _, ok := want[item]; ok {
			l.widget.SelectionSet(pos, pos)
		} else {
			l.widget.SelectionClear(pos, pos)
		}
	}
}

func (l *SelectionList) SelectFirst() error {
	return l.selectOnly("list.select_first", func(n int) int { return 1 })
}

func (l *SelectionList) SelectLast() error {
	return l.selectOnly("list.select_last", func(n int) int { return n })
}

func (l *SelectionList) selectOnly(op string, pick func(n int) int) error {
	l.widget.SelectionClear(0, End)
	n := l.Len()
	if n == 0 {
		return newError(op, KindOutOfRange, "list is empty")
	}
	pos := pick(n)
	l.widget.SelectionSet(pos, pos)
	l.widget.Activate(pos)
	l.widget.See(pos)
	return nil
}

func (l *SelectionList) Handle() Handle { return l.widget }
