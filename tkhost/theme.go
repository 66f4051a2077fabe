package tkhost

import (
	"log/slog"
	"strings"

	darkmode "github.com/thiagokokada/dark-mode-go"
	tk "modernc.org/tk9.0"
)

type ThemePreference int

const (
	ThemeAuto ThemePreference = iota
	ThemeLight
	ThemeDark
)

func (p ThemePreference) String() string {
	switch p {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "auto"
	}
}

func ThemePreferenceFromString(raw string) ThemePreference {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ThemeDark.String():
		return ThemeDark
	case ThemeLight.String():
		return ThemeLight
	default:
		return ThemeAuto
	}
}

// Palette is the resolved look of the application.
type Palette struct {
	ThemeName string
	// HighlightStyle is the chroma style used for syntax highlighting.
	HighlightStyle string
}

var (
	LightPalette = Palette{
		ThemeName:      "azure light",
		HighlightStyle: "github",
	}
	DarkPalette = Palette{
		ThemeName:      "azure dark",
		HighlightStyle: "github-dark",
	}
	detectDarkMode = darkmode.IsDarkMode
)

// PaletteFor resolves pref, asking the desktop for its mode under ThemeAuto.
func PaletteFor(pref ThemePreference) Palette {
	switch pref {
	case ThemeDark:
		return DarkPalette
	case ThemeLight:
		return LightPalette
	default:
		if detectDarkMode != nil {
			dark, err := detectDarkMode()
			if err != nil {
				slog.Debug("detect dark-mode", slog.Any("error", err))
			} else if dark {
				return DarkPalette
			}
		}
		return LightPalette
	}
}

func (p Palette) IsDark() bool {
	return strings.Contains(strings.ToLower(p.ThemeName), "dark")
}

// ApplyTheme activates the ttk theme for pref and returns the palette used.
func ApplyTheme(pref ThemePreference) Palette {
	p := PaletteFor(pref)
	if err := tk.ActivateTheme(p.ThemeName); err != nil {
		slog.Error("activate theme", slog.String("theme", p.ThemeName), slog.Any("error", err))
	}
	return p
}
