package widgets

import (
	"strconv"

	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/render/layout"
	"github.com/eink-works/gxui/internal/ui"
)

const (
	progressPadding = 12
	progressBarW    = 128
	progressBarH    = 24
	progressRadius  = 4
)

// ProgressBar is a non-interactive pattern-filled bar. Add it to a page with
// focusable=false; it never takes part in navigation.
type ProgressBar struct {
	ui.Core
	Label          string
	ShowPercentage bool

	progress float64 // 0..1
}

func NewProgressBar(id, label string, progress float64) *ProgressBar {
	p := &ProgressBar{Core: ui.NewCore(id), Label: label}
	p.SetProgress(progress)
	return p
}

func (p *ProgressBar) Progress() float64 { return p.progress }

func (p *ProgressBar) SetProgress(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.progress = v
}

func (p *ProgressBar) Draw(d render.Drawer, rg *render.Region) {
	style := render.TextStyle{Size: 12, Bold: true}
	tm := d.MeasureText(p.Label, style)

	if rg.Width == 0 || rg.Height == 0 {
		rg.Width = progressBarW + progressPadding*2
		rg.Height = tm.Height + progressBarH + progressPadding*3
		*rg = layout.AlignByteBoundary(*rg)
	}

	ink := d.Ink(p.Inverted())

	style.Color = ink
	d.DrawText(p.Label, rg.X+progressPadding, rg.Y+tm.Ascent+progressPadding, style)

	barX := rg.X + progressPadding
	barY := rg.Y + tm.Height + progressPadding*2
	d.DrawRoundRect(barX, barY, progressBarW, progressBarH, progressRadius, ink)

	fill := int(float64(progressBarW) * p.progress)
	if fill > 0 {
		d.DrawPatternRounded(render.PatternCheckerboard, barX, barY, fill, progressBarH, progressRadius, ink)
	}

	if p.ShowPercentage {
		pct := strconv.Itoa(int(p.progress*100)) + "%"
		pctStyle := render.TextStyle{Size: 10, Color: ink, Align: render.TextAlignCenter}
		d.DrawText(pct, barX+progressBarW/2, barY+progressBarH/2+4, pctStyle)
	}
}
