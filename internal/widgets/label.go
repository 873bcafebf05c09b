package widgets

import (
	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/render/layout"
	"github.com/eink-works/gxui/internal/ui"
)

// Label is static text.
type Label struct {
	ui.Core
	Text string
	Size int
	Bold bool
}

func NewLabel(id, text string) *Label {
	return &Label{Core: ui.NewCore(id), Text: text}
}

func (l *Label) Draw(d render.Drawer, rg *render.Region) {
	style := render.TextStyle{Size: l.Size, Bold: l.Bold, Color: d.Ink(l.Inverted())}
	tm := d.MeasureText(l.Text, style)
	if rg.Width == 0 || rg.Height == 0 {
		rg.Width = tm.Width
		rg.Height = tm.Height
		*rg = layout.AlignByteBoundary(*rg)
	}
	d.DrawText(l.Text, rg.X, rg.Y+tm.Ascent, style)
}
