package tkhost

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/thiagokokada/tkforms/internal/tcl"
	"github.com/thiagokokada/tkforms/widgets"
)

func TestThemePreferenceFromString(t *testing.T) {
	tests := map[string]ThemePreference{
		"dark":   ThemeDark,
		" Light": ThemeLight,
		"auto":   ThemeAuto,
		"":       ThemeAuto,
		"purple": ThemeAuto,
	}
	for in, want := range tests {
		if got := ThemePreferenceFromString(in); got != want {
			t.Errorf("ThemePreferenceFromString(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestPaletteFor(t *testing.T) {
	orig := detectDarkMode
	t.Cleanup(func() { detectDarkMode = orig })

	detectDarkMode = func() (bool, error) { return true, nil }
	if p := PaletteFor(ThemeAuto); !p.IsDark() || p.HighlightStyle != "github-dark" {
		t.Fatalf("auto on a dark desktop gave %+v", p)
	}
	if p := PaletteFor(ThemeLight); p.IsDark() {
		t.Fatalf("explicit light gave %+v", p)
	}

	detectDarkMode = func() (bool, error) { return false, errors.New("no portal") }
	if p := PaletteFor(ThemeAuto); p != LightPalette {
		t.Fatalf("detection failure should fall back to light, got %+v", p)
	}
	if p := PaletteFor(ThemeDark); p != DarkPalette {
		t.Fatalf("explicit dark gave %+v", p)
	}
}

func TestChooserScript(t *testing.T) {
	opts := widgets.ChooserOptions{
		Title:      "Pick files",
		InitialDir: "/home/me/My Documents",
		FileTypes: []widgets.FileType{
			{Name: "Text files", Patterns: []string{".txt", ".md"}},
			{Name: "All files"},
		},
	}
	script, err := chooserScript(widgets.ChooseOpenFiles, opts)
	if err != nil {
		t.Fatalf("chooserScript: %v", err)
	}
	for _, want := range []string{
		"tk_getOpenFile ",
		"-title {Pick files}",
		"-initialdir {/home/me/My Documents}",
		"-multiple 1",
		"-filetypes ",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script %q lacks %q", script, want)
		}
	}

	script, err = chooserScript(widgets.ChooseSaveFile, widgets.ChooserOptions{})
	if err != nil {
		t.Fatalf("chooserScript: %v", err)
	}
	if !strings.HasPrefix(script, "tk_getSaveFile") || strings.Contains(script, "-multiple") {
		t.Fatalf("save script = %q", script)
	}

	if _, err := chooserScript(widgets.ChooseDirectory, opts); err == nil {
		t.Fatalf("directory has no file picker script")
	}
}

func TestFileTypesList(t *testing.T) {
	raw := fileTypesList([]widgets.FileType{
		{Name: "Go source", Patterns: []string{".go"}},
		{Name: "Anything"},
	})
	entries, err := tcl.Split(raw)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %q", entries)
	}
	first, _ := tcl.Split(entries[0])
	if !slices.Equal(first, []string{"Go source", ".go"}) {
		t.Fatalf("first entry = %q", first)
	}
	second, _ := tcl.Split(entries[1])
	if !slices.Equal(second, []string{"Anything", "*"}) {
		t.Fatalf("second entry = %q", second)
	}
}

func TestParseChooserResult(t *testing.T) {
	got, err := parseChooserResult(widgets.ChooseOpenFiles, tcl.List("/a b/c.txt", "/d.txt"))
	if err != nil {
		t.Fatalf("parseChooserResult: %v", err)
	}
	if !slices.Equal(got, []string{"/a b/c.txt", "/d.txt"}) {
		t.Fatalf("paths = %q", got)
	}
	got, _ = parseChooserResult(widgets.ChooseOpenFile, "/a b/c.txt")
	if !slices.Equal(got, []string{"/a b/c.txt"}) {
		t.Fatalf("single path = %q", got)
	}
	if got, _ := parseChooserResult(widgets.ChooseSaveFile, ""); got != nil {
		t.Fatalf("cancel gave %q", got)
	}
}

func TestListIndex(t *testing.T) {
	if listIndex(widgets.End) != "end" || listIndex(3) != "3" {
		t.Fatalf("listIndex mapping is wrong")
	}
}
