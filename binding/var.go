// Package binding provides the shared value cells controls bind to.
//
// A Var is read and written synchronously on the UI thread. There is no change
// notification: every holder observes the latest value on its next Get.
package binding

import "fmt"

// Scalar is the set of value types a Var can hold.
type Scalar interface {
	string | int
}

// Kind identifies the value type of a Var at runtime.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	default:
		return "invalid"
	}
}

// Cell stores the value of a Var. The default cell keeps it in memory; a host
// toolkit can supply a cell backed by one of its native variables.
type Cell[T Scalar] interface {
	Load() T
	Store(v T)
}

// Named is implemented by cells backed by a native, named toolkit variable.
type Named interface {
	Name() string
}

// Variable is the untyped view of a Var used when a control receives a value
// source whose type is only known at runtime.
type Variable interface {
	Kind() Kind
	Name() string
}

type memoryCell[T Scalar] struct {
	v T
}

func (c *memoryCell[T]) Load() T   { return c.v }
func (c *memoryCell[T]) Store(v T) { c.v = v }

// Var is a typed mutable cell. The zero value is ready to use and holds the
// zero value of T.
type Var[T Scalar] struct {
	cell Cell[T]
}

// New returns an in-memory Var holding initial.
func New[T Scalar](initial T) *Var[T] {
	return &Var[T]{cell: &memoryCell[T]{v: initial}}
}

func NewString(initial string) *Var[string] { return New(initial) }

func NewInt(initial int) *Var[int] { return New(initial) }

// WithCell returns a Var stored in c.
func WithCell[T Scalar](c Cell[T]) *Var[T] {
	if c == nil {
		return New(*new(T))
	}
	return &Var[T]{cell: c}
}

func (v *Var[T]) storage() Cell[T] {
	if v.cell == nil {
		v.cell = &memoryCell[T]{}
	}
	return v.cell
}

func (v *Var[T]) Get() T {
	return v.storage().Load()
}

func (v *Var[T]) Set(value T) {
	v.storage().Store(value)
}

// Kind reports whether v holds strings or integers.
func (v *Var[T]) Kind() Kind {
	var zero T
	switch any(zero).(type) {
	case string:
		return KindString
	case int:
		return KindInt
	default:
		return KindInvalid
	}
}

// Name returns the native variable name when v is host-backed, or "".
func (v *Var[T]) Name() string {
	if n, ok := v.storage().(Named); ok {
		return n.Name()
	}
	return ""
}

// Attach moves v onto c, carrying the current value across. Every holder of v
// keeps sharing the same value afterwards.
func (v *Var[T]) Attach(c Cell[T]) {
	if c == nil {
		return
	}
	c.Store(v.Get())
	v.cell = c
}

func (v *Var[T]) String() string {
	return fmt.Sprintf("Var[%s](%v)", v.Kind(), v.Get())
}
