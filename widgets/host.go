package widgets

import (
	"fmt"

	"github.com/thiagokokada/tkforms/binding"
)

// End addresses the last position of a list widget.
const End = -1

// Container is a parent a widget can be created in. Toolkit windows satisfy it
// through their path name.
type Container interface {
	String() string
}

// Handle is a widget created by the host.
type Handle interface {
	String() string
}

// VarFactory creates variables backed by the host's native storage.
type VarFactory interface {
	NewStringVar(initial string) *binding.Var[string]
	NewIntVar(initial int) *binding.Var[int]
}

// Host is the toolkit surface controls are built on. Every widget-creating
// method receives the variable the control settled on; the host binds the
// native widget to it.
type Host interface {
	VarFactory

	Label(parent Container, v *binding.Var[string]) (Handle, error)
	Entry(parent Container, v *binding.Var[string]) (Handle, error)
	Checkbox(parent Container, caption string, v *binding.Var[int]) (Handle, error)
	Text(parent Container, cfg TextConfig) (TextWidget, error)
	Listbox(parent Container, v *binding.Var[string]) (ListWidget, error)
	Dialog(parent Container, cfg DialogConfig) (DialogWindow, error)
	Button(parent Container, caption string, onClick func()) (Handle, error)
	Chooser() Chooser
}

// TextConfig configures a host text widget.
type TextConfig struct {
	MaxUndo int
	Width   int
	Height  int
}

// TextIndex is a line.column position in a text widget. Lines start at 1,
// columns at 0.
type TextIndex struct {
	Line int
	Col  int
}

func (i TextIndex) String() string {
	return fmt.Sprintf("%d.%d", i.Line, i.Col)
}

// TextWidget is the raw multi-line text surface.
type TextWidget interface {
	Handle
	// RawGet returns the whole content, including the trailing newline the
	// toolkit always keeps.
	RawGet() string
	RawInsert(text string)
	RawDelete()
	Modified() bool
	ResetModified()
	// ResetUndo drops the toolkit's native undo stack.
	ResetUndo()
	SetMaxUndo(n int)
	TagConfigure(tag, foreground string)
	TagAdd(tag string, start, end TextIndex)
	TagRemove(tag string)
}

// ListWidget is the raw list surface. Indices are toolkit positions; End
// addresses the last one.
type ListWidget interface {
	Handle
	Curselection() []int
	SelectionSet(first, last int)
	SelectionClear(first, last int)
	Activate(index int)
	See(index int)
}

// DialogConfig configures a host dialog window.
type DialogConfig struct {
	Title string
	Icon  string
}

// DialogWindow is a top-level window usable as a modal dialog.
type DialogWindow interface {
	Handle
	Focus()
	Grab()
	// Wait returns once the window is destroyed. Events keep being dispatched
	// while it waits.
	Wait()
	Destroy()
	Exists() bool
}

// Chooser runs the toolkit's native file and directory pickers. An empty
// result means the user cancelled.
type Chooser interface {
	Choose(kind ChooserKind, opts ChooserOptions) ([]string, error)
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(title, msg string) bool
}
