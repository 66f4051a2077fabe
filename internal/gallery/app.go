package gallery

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/thiagokokada/tkforms/internal/buildinfo"
	"github.com/thiagokokada/tkforms/internal/settings"
	"github.com/thiagokokada/tkforms/tkhost"
	"github.com/thiagokokada/tkforms/widgets"

	tk "modernc.org/tk9.0"
)

// RunConfig describes the parameters that control the gallery window.
type RunConfig struct {
	// SettingsPath is the tkforms.yaml to load and, with Watch, reload.
	SettingsPath string
	Watch        bool
	Verbose      bool
	// Overrides from the command line; zero values keep the settings file.
	Title   string
	Theme   string
	MaxUndo int
}

func Run(cfg RunConfig) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	loaded, err := settings.LoadOptional(cfg.SettingsPath)
	if err != nil {
		return err
	}
	resolved := cfg.merge(loaded.Resolve())

	host, err := tkhost.New()
	if err != nil {
		return err
	}
	palette := tkhost.ApplyTheme(tkhost.ThemePreferenceFromString(resolved.Theme))

	sh := &tkShell{Host: host}
	g, err := newGallery(host, sh, placeGrid, buildSections(), resolved)
	if err != nil {
		return fmt.Errorf("build gallery: %w", err)
	}
	g.text.SetHighlightStyle(palette.HighlightStyle)
	initMenubar(g)

	if cfg.Watch {
		w, err := settings.Watch(cfg.SettingsPath, postEvent, func(s *settings.Settings) {
			g.applySettings(cfg.merge(s.Resolve()))
		})
		if err != nil {
			slog.Error("settings watch disabled", slog.Any("error", err))
		} else {
			defer func() {
				if err := w.Close(); err != nil {
					slog.Error("settings watcher close", slog.Any("error", err))
				}
			}()
		}
	}

	sh.SetTitle(resolved.Title)
	tk.App.SetResizable(true, true)
	tk.App.Center().Wait()
	return nil
}

// merge applies command line overrides on top of the settings file.
func (cfg RunConfig) merge(r settings.Resolved) settings.Resolved {
	if cfg.Title != "" {
		r.Title = cfg.Title
	}
	if cfg.Theme != "" {
		r.Theme = cfg.Theme
	}
	if cfg.MaxUndo > 0 {
		r.MaxUndo = cfg.MaxUndo
	}
	return r
}

func postEvent(f func()) {
	tk.PostEvent(f, false)
}

func placeGrid(h widgets.Handle, row, col int) {
	tkhost.Place(h, tkhost.Cell{Row: row, Column: col})
}

func buildSections() Sections {
	tk.GridColumnConfigure(tk.App, 0, tk.Weight(1))
	tk.GridColumnConfigure(tk.App, 1, tk.Weight(1))
	frame := func(row, col int) *tk.TFrameWidget {
		f := tk.App.TFrame(tk.Padding("8p"))
		tk.Grid(f, tk.Row(row), tk.Column(col), tk.Sticky(tk.NEWS))
		tk.GridColumnConfigure(f.Window, 0, tk.Weight(1))
		return f
	}
	return Sections{
		Labels: frame(0, 0),
		Text:   frame(1, 0),
		Inputs: frame(0, 1),
		List:   frame(1, 1),
	}
}

func initMenubar(g *Gallery) {
	menubar := tk.Menu(tk.Tearoff(false))

	fileMenu := menubar.Menu(tk.Tearoff(false))
	fileMenu.AddCommand(tk.Lbl("Sample Dialog..."), tk.Command(func() { g.runSampleDialog(tk.App) }))
	fileMenu.AddSeparator()
	fileMenu.AddCommand(tk.Lbl("Quit"), tk.Command(g.confirmQuit))
	menubar.AddCascade(tk.Lbl("File"), tk.Mnu(fileMenu))

	helpMenu := menubar.Menu(tk.Tearoff(false))
	helpMenu.AddCommand(tk.Lbl("About tkforms"), tk.Command(func() {
		g.shell.Info("About tkforms", fmt.Sprintf("tkforms %s", buildinfo.Read()))
	}))
	menubar.AddCascade(tk.Lbl("Help"), tk.Mnu(helpMenu))

	tk.App.Configure(tk.Mnu(menubar))
	tk.Bind(tk.App, "<Control-q>", tk.Command(g.confirmQuit))
	tk.Bind(tk.App, "<Control-d>", tk.Command(func() { g.runSampleDialog(tk.App) }))
}

// tkShell implements shell with Tk message boxes and the root window.
type tkShell struct {
	*tkhost.Host
}

func (s *tkShell) Info(title, msg string) {
	tk.MessageBox(
		tk.Parent(tk.App),
		tk.Title(title),
		tk.Icon("info"),
		tk.Msg(msg),
		tk.Type("ok"),
	)
}

func (s *tkShell) SetTitle(title string) {
	tk.App.WmTitle(title)
}

func (s *tkShell) ApplyTheme(theme string) string {
	return tkhost.ApplyTheme(tkhost.ThemePreferenceFromString(theme)).HighlightStyle
}

func (s *tkShell) Quit() {
	tk.Destroy(tk.App)
}
