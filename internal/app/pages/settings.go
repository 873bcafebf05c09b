package pages

import (
	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/theme"
	"github.com/eink-works/gxui/internal/ui"
	"github.com/eink-works/gxui/internal/widgets"
)

// Settings exposes the persisted display preferences. The theme toggle
// requests a full-kind refresh itself because flipping ink and paper
// invalidates every pixel, not just the toggle's rectangle.
func Settings(u *ui.UI, th *theme.Controller) *ui.Page {
	p := ui.NewPage("Settings")

	initial := 0
	if th.Theme() == theme.Dark {
		initial = 1
	}
	themeToggle := widgets.NewToggle("theme", "Theme", []string{"light", "dark"}, initial)
	themeToggle.OnChange = func(i int) {
		t := theme.Light
		if i == 1 {
			t = theme.Dark
		}
		if err := th.SetTheme(t); err != nil && p.Log != nil {
			p.Log.Errorf("settings", "persist theme: %v", err)
		}
		u.Scheduler().Request(ui.RequestFull)
	}
	p.Add(themeToggle, true)

	sleep := widgets.NewSlider("sleep", "Sleep after (min)", 10, 1, 60, 1)
	p.Add(sleep, true)

	back := widgets.NewButton("back", "Back", func() { u.PopPage() })
	p.Add(back, true)

	p.Opened = func() { p.ResetFocus() }

	p.DrawContent = func(d render.Drawer, page *ui.Page) {
		width, _ := d.Size()
		ink := d.Ink(false)

		d.DrawText(page.Title, pageMargin, pageMargin+16, render.TextStyle{Color: ink, Size: 18, Bold: true})
		d.DrawLine(pageMargin, pageMargin+28, width-pageMargin, pageMargin+28, ink)

		y := pageMargin + 48
		for _, id := range []string{"theme", "sleep", "back"} {
			page.RenderElement(id, d, render.Region{X: pageMargin, Y: y})
			if el := page.Get(id); el != nil {
				y += el.LastRegion().Height + pageMargin/2
			}
		}
	}

	return p
}
