package gallery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thiagokokada/tkforms/widgets"
)

// sampleDialog asks for a name and a subscription flag.
type sampleDialog struct {
	*widgets.Dialog
	name      *widgets.Entry
	subscribe *widgets.Checkbox
}

func (g *Gallery) newSampleDialog(parent widgets.Container) (*sampleDialog, error) {
	sd := &sampleDialog{}
	d, err := widgets.NewDialog(g.host, parent, widgets.CollectorFunc(sd.collect), widgets.WithTitle("Sample dialog"))
	if err != nil {
		return nil, err
	}
	sd.Dialog = d
	body := d.Window()
	prompt, err := widgets.NewLabel(g.host, body)
	if err != nil {
		return nil, err
	}
	prompt.SetValue("Your name:")
	if sd.name, err = widgets.NewEntry(g.host, body); err != nil {
		return nil, err
	}
	if sd.subscribe, err = widgets.NewCheckbox(g.host, body, widgets.WithCaption("Subscribe")); err != nil {
		return nil, err
	}
	ok, err := g.host.Button(body, "OK", traceCallback("dialog ok", sd.confirm(g)))
	if err != nil {
		return nil, err
	}
	cancel, err := g.host.Button(body, "Cancel", traceCallback("dialog cancel", d.Cancel))
	if err != nil {
		return nil, err
	}
	g.place(prompt.Handle(), 0, 0)
	g.place(sd.name.Handle(), 0, 1)
	g.place(sd.subscribe.Handle(), 1, 1)
	g.place(ok, 2, 0)
	g.place(cancel, 2, 1)
	return sd, nil
}

func (sd *sampleDialog) collect() (widgets.Result, error) {
	name := strings.TrimSpace(sd.name.Value())
	if name == "" {
		return nil, errors.New("name is required")
	}
	return widgets.Result{"name": name, "subscribe": sd.subscribe.Checked()}, nil
}

// confirm reports a rejected confirmation in the status line; the dialog stays
// open so the user can correct it.
func (sd *sampleDialog) confirm(g *Gallery) func() {
	return func() {
		if err := sd.Confirm(); err != nil {
			g.report(err)
		}
	}
}

// runSampleDialog shows the sample dialog and reports its result.
func (g *Gallery) runSampleDialog(parent widgets.Container) {
	sd, err := g.newSampleDialog(parent)
	if err != nil {
		g.report(err)
		return
	}
	res, err := sd.Show()
	if err != nil {
		g.report(err)
		return
	}
	g.setStatus(describeResult(sd.Confirmed(), res))
}

func describeResult(confirmed bool, res widgets.Result) string {
	if !confirmed {
		return "Dialog cancelled."
	}
	sub := "not subscribed"
	if on, _ := res["subscribe"].(bool); on {
		sub = "subscribed"
	}
	return fmt.Sprintf("Hello, %v (%s).", res["name"], sub)
}
