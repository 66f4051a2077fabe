package widgets

import "github.com/thiagokokada/tkforms/binding"

// Label displays a string variable.
type Label struct {
	bindable[string]
	widget Handle
}

func NewLabel(h Host, parent Container, opts ...Option) (*Label, error) {
	o := buildOptions(opts)
	v, err := resolveVar("label.new", o, func() *binding.Var[string] { return h.NewStringVar("") })
	if err != nil {
		return nil, err
	}
	w, err := h.Label(parent, v)
	if err != nil {
		return nil, &Error{Op: "label.new", Kind: KindUnknown, Err: err}
	}
	return &Label{bindable: bindable[string]{v: v}, widget: w}, nil
}

func (l *Label) Value() string {
	return l.v.Get()
}

func (l *Label) SetValue(s string) {
	l.store(s)
}

func (l *Label) Handle() Handle { return l.widget }
