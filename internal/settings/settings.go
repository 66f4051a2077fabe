// Package settings loads the optional tkforms.yaml file and watches it for
// changes.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const FileName = "tkforms.yaml"

// Settings is the content of tkforms.yaml. Zero fields mean "use the default".
type Settings struct {
	Title   string `yaml:"title,omitempty"`
	Theme   string `yaml:"theme,omitempty"`
	MaxUndo *int   `yaml:"max_undo,omitempty"`
	Heading string `yaml:"heading,omitempty"`
}

// Resolved holds every setting with defaults applied.
type Resolved struct {
	Title   string
	Theme   string
	MaxUndo int
	Heading string
}

var Defaults = Resolved{
	Title:   "tkforms",
	Theme:   "auto",
	MaxUndo: 10,
	Heading: "Items",
}

// LoadOptional reads path if present. A missing file yields empty Settings.
func LoadOptional(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if s.MaxUndo != nil && *s.MaxUndo < 0 {
		return nil, fmt.Errorf("%s: max_undo must not be negative, got %d", filepath.Base(path), *s.MaxUndo)
	}
	return &s, nil
}

// Resolve applies defaults to s.
func (s *Settings) Resolve() Resolved {
	r := Defaults
	if s == nil {
		return r
	}
	if t := strings.TrimSpace(s.Title); t != "" {
		r.Title = t
	}
	if t := strings.TrimSpace(s.Theme); t != "" {
		r.Theme = t
	}
	if s.MaxUndo != nil {
		r.MaxUndo = *s.MaxUndo
	}
	if h := strings.TrimSpace(s.Heading); h != "" {
		r.Heading = h
	}
	return r
}

// DefaultPath returns tkforms.yaml inside the user configuration directory,
// falling back to the working directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "tkforms", FileName)
}
