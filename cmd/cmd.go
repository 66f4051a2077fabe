package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/thiagokokada/tkforms/internal/buildinfo"
	"github.com/thiagokokada/tkforms/internal/gallery"
	"github.com/thiagokokada/tkforms/internal/settings"
	"github.com/thiagokokada/tkforms/tkhost"
)

func Run() error {
	return run(os.Args[1:], gallery.Run)
}

func run(args []string, start func(gallery.RunConfig) error) error {
	fs := flag.NewFlagSet("tkforms", flag.ContinueOnError)
	mode := fs.String("mode", "", "color mode: auto, light, or dark (default from settings file)")
	configPath := fs.String("config", settings.DefaultPath(), "path to the tkforms.yaml settings file")
	noWatch := fs.Bool("nowatch", false, "disable automatic reload when the settings file changes")
	maxUndo := fs.Int("maxundo", 0, "undo depth of the text buffer (default from settings file)")
	title := fs.String("title", "", "window title (default from settings file)")
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	showVersion := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Println(buildinfo.Read())
		return nil
	}
	if *maxUndo < 0 {
		return fmt.Errorf("-maxundo must not be negative, got %d", *maxUndo)
	}
	theme := *mode
	if theme != "" {
		theme = tkhost.ThemePreferenceFromString(theme).String()
	}
	return start(gallery.RunConfig{
		SettingsPath: *configPath,
		Watch:        !*noWatch,
		Verbose:      *verbose,
		Title:        *title,
		Theme:        theme,
		MaxUndo:      *maxUndo,
	})
}
