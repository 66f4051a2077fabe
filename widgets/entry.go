package widgets

import "github.com/thiagokokada/tkforms/binding"

// Entry is a single-line input bound to a string variable. The host creates it
// without exporting its selection to the clipboard.
type Entry struct {
	bindable[string]
	widget Handle
}

func NewEntry(h Host, parent Container, opts ...Option) (*Entry, error) {
	o := buildOptions(opts)
	v, err := resolveVar("entry.new", o, func() *binding.Var[string] { return h.NewStringVar("") })
	if err != nil {
		return nil, err
	}
	w, err := h.Entry(parent, v)
	if err != nil {
		return nil, &Error{Op: "entry.new", Kind: KindUnknown, Err: err}
	}
	return &Entry{bindable: bindable[string]{v: v}, widget: w}, nil
}

func (e *Entry) Value() string {
	return e.v.Get()
}

func (e *Entry) SetValue(s string) {
	e.store(s)
}

func (e *Entry) Handle() Handle { return e.widget }
