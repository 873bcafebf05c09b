package widgets

import (
	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/ui"
)

// Icon draws a 1-bit bitmap scaled into its region. A zero-size region hint
// defaults to the bitmap's native size; a single known dimension makes it
// square.
type Icon struct {
	ui.Core
	Bitmap render.Bitmap
}

func NewIcon(id string, bm render.Bitmap) *Icon {
	return &Icon{Core: ui.NewCore(id), Bitmap: bm}
}

func (ic *Icon) Draw(d render.Drawer, rg *render.Region) {
	if rg.Width == 0 && rg.Height == 0 {
		rg.Width = ic.Bitmap.Width
		rg.Height = ic.Bitmap.Height
	} else if rg.Height == 0 {
		rg.Height = rg.Width
	} else if rg.Width == 0 {
		rg.Width = rg.Height
	}
	d.DrawBitmap(ic.Bitmap, rg.X, rg.Y, rg.Width, rg.Height, d.Ink(ic.Inverted()))
}
