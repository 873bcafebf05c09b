// Package widgets provides the concrete drawable elements: buttons, toggles,
// sliders, labels, icons, progress bars and QR codes. Widgets reach the panel
// only through the render.Drawer contract and report the rectangle they drew
// into via their element core.
package widgets

import (
	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/render/layout"
	"github.com/eink-works/gxui/internal/ui"
)

const (
	buttonPadding = 12
	buttonRadius  = 8
)

// Button is a labeled action element. Select fires the action.
type Button struct {
	ui.Core
	Label  string
	Icon   render.Bitmap
	Action func()
}

func NewButton(id, label string, action func()) *Button {
	return &Button{Core: ui.NewCore(id), Label: label, Action: action}
}

func NewIconButton(id, label string, icon render.Bitmap, action func()) *Button {
	return &Button{Core: ui.NewCore(id), Label: label, Icon: icon, Action: action}
}

func (b *Button) OnSelect() {
	if b.Action != nil {
		b.Action()
	}
	// A press is momentary: never hold engagement across events, so focus
	// falls back to the page on the next dispatch.
	b.Deactivate()
}

func (b *Button) Draw(d render.Drawer, rg *render.Region) {
	style := render.TextStyle{Size: 12, Bold: true}
	tm := d.MeasureText(b.Label, style)

	if rg.Width == 0 || rg.Height == 0 {
		rg.Height = tm.Height + buttonPadding*2
		rg.Width = tm.Width + buttonPadding*2
		if b.Icon.Width > 0 {
			rg.Width += buttonPadding + (rg.Height - buttonPadding)
		}
		*rg = layout.AlignByteBoundary(*rg)
	}

	ink := d.Ink(b.Inverted())
	paper := d.Paper(b.Inverted())

	labelColor := paper
	switch {
	case b.Active():
		d.DrawPatternRounded(render.PatternCheckerboard, rg.X, rg.Y, rg.Width, rg.Height, buttonRadius, ink)
		margin := buttonPadding / 4
		d.DrawMultiRoundRectBorder(rg.X+margin, rg.Y+margin, rg.Width-margin*2, rg.Height-margin*2, ink, 3, 1, 2, buttonRadius)
		labelColor = ink
	case b.Selected():
		d.DrawRoundRect(rg.X, rg.Y, rg.Width, rg.Height, buttonRadius, ink)
		labelColor = ink
	case !b.Enabled():
		d.DrawPatternRounded(render.PatternDiagonalStripes, rg.X, rg.Y, rg.Width, rg.Height, buttonRadius, ink)
		labelColor = ink
	default:
		d.FillRoundRect(rg.X, rg.Y, rg.Width, rg.Height, buttonRadius, ink)
	}

	textX := rg.X + buttonPadding
	if b.Icon.Width > 0 {
		iconSize := rg.Height - buttonPadding
		d.DrawBitmap(b.Icon, rg.X+buttonPadding, rg.Y+buttonPadding/2, iconSize, iconSize, labelColor)
		textX += buttonPadding + iconSize
	}
	baseline := rg.Y + (rg.Height+tm.Ascent)/2
	style.Color = labelColor
	d.DrawText(b.Label, textX, baseline, style)
}
