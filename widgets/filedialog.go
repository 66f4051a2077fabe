package widgets

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/thiagokokada/tkforms/internal/tcl"
)

// ChooserKind selects which native picker a FileDialogButton opens.
type ChooserKind int

const (
	ChooseOpenFile ChooserKind = iota
	ChooseOpenFiles
	ChooseSaveFile
	ChooseDirectory
)

var chooserNames = map[ChooserKind]string{
	ChooseOpenFile:  "openfilename",
	ChooseOpenFiles: "openfilenames",
	ChooseSaveFile:  "saveasfilename",
	ChooseDirectory: "directory",
}

func (k ChooserKind) String() string {
	if name, ok := chooserNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ChooserKind(%d)", int(k))
}

// ParseChooserKind accepts the Tk picker names with or without the "ask"
// prefix: openfilename, openfilenames, saveasfilename, directory.
func ParseChooserKind(name string) (ChooserKind, error) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "ask")
	for kind, n := range chooserNames {
		if n == key {
			return kind, nil
		}
	}
	return 0, newError("filedialog.kind", KindConfiguration,
		"unknown chooser %q; valid kinds are openfilename, openfilenames, saveasfilename and directory", name)
}

// FileType is one entry of a picker's file type filter.
type FileType struct {
	Name     string
	Patterns []string
}

type ChooserOptions struct {
	Title      string
	InitialDir string
	FileTypes  []FileType
}

// FileDialogButton opens a native picker and writes the chosen path into its
// target. Several paths from ChooseOpenFiles are written as a Tcl list.
type FileDialogButton struct {
	kind    ChooserKind
	target  StringSetter
	chooser Chooser
	opts    ChooserOptions
	widget  Handle
}

const defaultBrowseCaption = "Browse..."

func NewFileDialogButton(h Host, parent Container, target StringSetter, kind string, opts ...Option) (*FileDialogButton, error) {
	k, err := ParseChooserKind(kind)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, newError("filedialog.new", KindConfiguration, "target is required")
	}
	o := buildOptions(opts)
	chooser := h.Chooser()
	if chooser == nil {
		return nil, newError("filedialog.new", KindConfiguration, "host has no chooser")
	}
	b := &FileDialogButton{kind: k, target: target, chooser: chooser, opts: o.chooser}
	caption := o.caption
	if caption == "" {
		caption = defaultBrowseCaption
	}
	w, err := h.Button(parent, caption, func() {
		if err := b.Activate(); err != nil {
			slog.Error("file dialog", slog.String("kind", b.kind.String()), slog.Any("error", err))
		}
	})
	if err != nil {
		return nil, &Error{Op: "filedialog.new", Kind: KindUnknown, Err: err}
	}
	b.widget = w
	return b, nil
}

func (b *FileDialogButton) Kind() ChooserKind { return b.kind }

// Activate runs the picker. Cancelling leaves the target untouched.
func (b *FileDialogButton) Activate() error {
	paths, err := b.chooser.Choose(b.kind, b.opts)
	if err != nil {
		return fmt.Errorf("choose %s: %w", b.kind, err)
	}
	var chosen []string
	for _, p := range paths {
		if p != "" {
			chosen = append(chosen, p)
		}
	}
	switch {
	case len(chosen) == 0:
		return nil
	case len(chosen) == 1 && b.kind != ChooseOpenFiles:
		b.target.SetValue(chosen[0])
	default:
		b.target.SetValue(tcl.List(chosen...))
	}
	return nil
}

func (b *FileDialogButton) Handle() Handle { return b.widget }
