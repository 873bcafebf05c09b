// Package pages builds the screens the binary ships with.
package pages

import (
	"fmt"

	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/ui"
	"github.com/eink-works/gxui/internal/widgets"
)

const pageMargin = 16

// Home is the demo page exercising the widget set: buttons, a slider, a
// toggle, a dropdown, a progress bar and a confirmation dialog, laid out in a
// single focus column.
func Home(u *ui.UI) *ui.Page {
	p := ui.NewPage("Home")

	progress := widgets.NewProgressBar("progress", "Job", 0.35)
	progress.ShowPercentage = true

	status := widgets.NewLabel("status", "ready")

	p.Add(widgets.NewButton("run", "Run", func() {
		progress.SetProgress(progress.Progress() + 0.05)
		status.Text = "running"
	}), true)

	contrast := widgets.NewSlider("contrast", "Contrast", 50, 0, 100, 5)
	contrast.OnChange = func(v int) {
		status.Text = fmt.Sprintf("contrast %d", v)
	}
	p.Add(contrast, true)

	speed := widgets.NewToggle("speed", "Speed", []string{"slow", "normal", "fast"}, 1)
	speed.OnChange = func(i int) {
		status.Text = "speed " + speed.Value()
	}
	p.Add(speed, true)

	mode := widgets.NewDropdown("mode", "Mode", []string{"draft", "standard", "archival"}, 1)
	mode.OnChange = func(i int) {
		status.Text = "mode " + mode.Value()
	}
	p.Add(mode, true)

	confirm := widgets.NewModal("confirm-reset", 240, 120)
	confirm.DrawBody = func(d render.Drawer, rg render.Region) {
		paper := d.Paper(false)
		d.DrawText("Reset job?", rg.X, rg.Y+24, render.TextStyle{Color: paper, Size: 14, Bold: true})
		d.DrawText("press select to confirm", rg.X, rg.Y+56, render.TextStyle{Color: paper, Size: 10})
	}
	confirm.OnClose = func() {
		progress.SetProgress(0)
		status.Text = "ready"
	}
	confirm.Refresh = func() { u.Scheduler().Request(ui.RequestFull) }

	p.Add(widgets.NewButton("reset", "Reset", func() { confirm.Show(p) }), true)

	p.Add(progress, false)
	p.Add(status, false)
	p.Add(confirm, false)

	p.Opened = func() { p.ResetFocus() }

	p.DrawContent = func(d render.Drawer, page *ui.Page) {
		width, _ := d.Size()
		ink := d.Ink(false)

		d.DrawText(page.Title, pageMargin, pageMargin+16, render.TextStyle{Color: ink, Size: 18, Bold: true})
		d.DrawLine(pageMargin, pageMargin+28, width-pageMargin, pageMargin+28, ink)

		y := pageMargin + 48
		for _, id := range []string{"run", "contrast", "speed", "mode", "reset"} {
			page.RenderElement(id, d, render.Region{X: pageMargin, Y: y})
			if el := page.Get(id); el != nil {
				y += el.LastRegion().Height + pageMargin/2
			}
		}

		page.RenderElement("progress", d, render.Region{X: width / 2, Y: pageMargin + 48})
		page.RenderElement("status", d, render.Region{X: width / 2, Y: pageMargin + 48 + 96})

		// The dialog paints last so it sits above everything else.
		page.RenderElement("confirm-reset", d, render.Region{})
	}

	return p
}
