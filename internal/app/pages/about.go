package pages

import (
	"github.com/eink-works/gxui/internal/assets"
	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/ui"
	"github.com/eink-works/gxui/internal/widgets"
)

// About shows the version and a QR code linking to the project page. Nothing
// on it is focusable, so input falls through to page navigation and the menu.
func About(version, projectURL string) *ui.Page {
	p := ui.NewPage("About")

	p.Add(widgets.NewIcon("logo", assets.IconInfo), false)
	p.Add(widgets.NewLabel("version", "version "+version), false)
	p.Add(widgets.NewQRCode("link", projectURL), false)

	p.DrawContent = func(d render.Drawer, page *ui.Page) {
		width, _ := d.Size()
		ink := d.Ink(false)

		d.DrawText(page.Title, pageMargin, pageMargin+16, render.TextStyle{Color: ink, Size: 18, Bold: true})
		d.DrawLine(pageMargin, pageMargin+28, width-pageMargin, pageMargin+28, ink)

		page.RenderElement("logo", d, render.Region{X: pageMargin, Y: pageMargin + 48, Width: 48, Height: 48})
		page.RenderElement("version", d, render.Region{X: pageMargin + 64, Y: pageMargin + 64})
		page.RenderElement("link", d, render.Region{X: width/2 - 64, Y: pageMargin + 120, Width: 128, Height: 128})
	}

	return p
}
