package widgets

import "github.com/thiagokokada/tkforms/binding"

const (
	Unchecked = 0
	Checked   = 1
)

// Checkbox is bound to an integer variable holding Unchecked or Checked.
type Checkbox struct {
	bindable[int]
	widget Handle
}

func NewCheckbox(h Host, parent Container, opts ...Option) (*Checkbox, error) {
	o := buildOptions(opts)
	v, err := resolveVar("checkbox.new", o, func() *binding.Var[int] { return h.NewIntVar(Unchecked) })
	if err != nil {
		return nil, err
	}
	w, err := h.Checkbox(parent, o.caption, v)
	if err != nil {
		return nil, &Error{Op: "checkbox.new", Kind: KindUnknown, Err: err}
	}
	return &Checkbox{bindable: bindable[int]{v: v}, widget: w}, nil
}

func (c *Checkbox) Value() int {
	return c.v.Get()
}

// SetValue accepts only Unchecked or Checked.
func (c *Checkbox) SetValue(flag int) error {
	if flag != Unchecked && flag != Checked {
		return newError("checkbox.set", KindValidation, "checkbox can only be set to 0 or 1, not %d", flag)
	}
	c.store(flag)
	return nil
}

func (c *Checkbox) Checked() bool {
	return c.Value() == Checked
}

func (c *Checkbox) SetChecked(on bool) {
	if on {
		c.store(Checked)
		return
	}
	c.store(Unchecked)
}

func (c *Checkbox) Handle() Handle { return c.widget }
