// Package widgets wraps toolkit widgets into controls with a uniform, normalized
// value API.
//
// Every control owns one binding.Var: either the one passed with WithVariable,
// shared with the caller, or a private one created through the Host. Controls
// are used from the UI thread only.
package widgets

import (
	"github.com/thiagokokada/tkforms/binding"
)

const DefaultMaxUndo = 10

// Option configures a control at construction.
type Option func(*options)

type options struct {
	variable    binding.Variable
	hasVariable bool
	caption     string
	maxUndo     int
	width       int
	height      int
	heading     string
	title       string
	icon        string
	chooser     ChooserOptions
}

func buildOptions(opts []Option) options {
	o := options{maxUndo: DefaultMaxUndo}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithVariable binds the control to a caller-owned variable. Its kind must
// match the control's value type.
func WithVariable(v binding.Variable) Option {
	return func(o *options) {
		o.variable = v
		o.hasVariable = true
	}
}

// WithCaption sets the text shown next to a checkbox or on a button.
func WithCaption(s string) Option {
	return func(o *options) { o.caption = s }
}

// WithMaxUndo bounds a text buffer's undo history.
func WithMaxUndo(n int) Option {
	return func(o *options) { o.maxUndo = n }
}

// WithSize sets the requested width and height in characters.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithHeading sets the text shown in a selection list's reserved first row.
func WithHeading(s string) Option {
	return func(o *options) { o.heading = s }
}

func WithTitle(s string) Option {
	return func(o *options) { o.title = s }
}

func WithIcon(path string) Option {
	return func(o *options) { o.icon = path }
}

func WithChooserOptions(c ChooserOptions) Option {
	return func(o *options) { o.chooser = c }
}

// StringSetter receives a string value; FileDialogButton writes chosen paths
// through it.
type StringSetter interface {
	SetValue(s string)
}

// SetterFunc adapts a function to StringSetter.
type SetterFunc func(string)

func (f SetterFunc) SetValue(s string) { f(s) }

// bindable is the value core every control embeds.
type bindable[T binding.Scalar] struct {
	v *binding.Var[T]
	// cached is the normalized value of the last write made through the
	// control.
	cached T
}

// Variable returns the bound variable so it can be shared with other
// controls.
func (b *bindable[T]) Variable() *binding.Var[T] {
	return b.v
}

func (b *bindable[T]) store(v T) {
	b.v.Set(v)
	b.cached = v
}

// resolveVar picks the injected variable when present, checking its kind, and
// otherwise creates a private one.
func resolveVar[T binding.Scalar](op string, o options, create func() *binding.Var[T]) (*binding.Var[T], error) {
	if !o.hasVariable {
		return create(), nil
	}
	want := (&binding.Var[T]{}).Kind()
	if o.variable == nil {
		return nil, newError(op, KindTypeMismatch, "variable must be a %s variable, got nil", want)
	}
	typed, ok := o.variable.(*binding.Var[T])
	if !ok || typed == nil {
		return nil, newError(op, KindTypeMismatch, "variable must be a %s variable, got %s", want, o.variable.Kind())
	}
	return typed, nil
}
