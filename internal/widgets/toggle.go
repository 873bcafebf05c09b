package widgets

import (
	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/render/layout"
	"github.com/eink-works/gxui/internal/ui"
)

const (
	togglePadding = 12
	toggleWidth   = 60
	toggleHeight  = 30
	toggleRadius  = 8
)

// Toggle cycles through a fixed set of options. Left/Right move with
// wraparound and engage the element; Select advances one step.
type Toggle struct {
	ui.Core
	Label    string
	Options  []string
	OnChange func(index int)

	index int
}

func NewToggle(id, label string, options []string, initial int) *Toggle {
	t := &Toggle{Core: ui.NewCore(id), Label: label, Options: options}
	if initial >= 0 && initial < len(options) {
		t.index = initial
	}
	return t
}

func (t *Toggle) Index() int { return t.index }

func (t *Toggle) Value() string {
	if len(t.Options) == 0 {
		return ""
	}
	return t.Options[t.index]
}

func (t *Toggle) setIndex(i int) {
	t.index = i
	if t.OnChange != nil {
		t.OnChange(i)
	}
}

func (t *Toggle) OnLeft() {
	if len(t.Options) == 0 {
		return
	}
	if t.index > 0 {
		t.setIndex(t.index - 1)
	} else {
		t.setIndex(len(t.Options) - 1)
	}
	t.Activate()
}

func (t *Toggle) OnRight() {
	if len(t.Options) == 0 {
		return
	}
	t.setIndex((t.index + 1) % len(t.Options))
	t.Activate()
}

func (t *Toggle) OnSelect() {
	if len(t.Options) == 0 {
		return
	}
	t.setIndex((t.index + 1) % len(t.Options))
}

func (t *Toggle) Draw(d render.Drawer, rg *render.Region) {
	style := render.TextStyle{Size: 12, Bold: true}
	tm := d.MeasureText(t.Label, style)
	if t.Label == "" {
		tm = d.MeasureText("M", style)
		tm.Width = 0
	}

	trackWidth := toggleWidth
	if w := len(t.Options) * (toggleWidth / 2); w > trackWidth {
		trackWidth = w
	}

	if rg.Width == 0 || rg.Height == 0 {
		rg.Width = tm.Width + trackWidth + togglePadding*3
		rg.Height = tm.Height + togglePadding*2
		*rg = layout.AlignByteBoundary(*rg)
	}

	ink := d.Ink(t.Inverted())
	paper := d.Paper(t.Inverted())

	if !t.Enabled() {
		d.DrawPatternRounded(render.PatternDiagonalStripes, rg.X, rg.Y, rg.Width, rg.Height, toggleRadius, ink)
	}

	baseline := rg.Y + (rg.Height+tm.Ascent)/2
	style.Color = ink
	d.DrawText(t.Label, rg.X+togglePadding, baseline, style)

	trackX := rg.X + rg.Width - trackWidth - togglePadding
	trackY := rg.Y + (rg.Height-toggleHeight)/2

	if t.Active() || t.Selected() {
		d.DrawMultiRoundRectBorder(trackX, trackY, trackWidth, toggleHeight, ink, 2, 1, 2, toggleRadius/2)
	} else {
		d.DrawRoundRect(trackX, trackY, trackWidth, toggleHeight, toggleRadius, ink)
	}

	if len(t.Options) == 0 {
		return
	}
	segment := trackWidth / len(t.Options)
	for i, opt := range t.Options {
		segX := trackX + i*segment
		optStyle := render.TextStyle{Size: 10, Color: ink, Align: render.TextAlignCenter}
		if i == t.index {
			d.FillRoundRect(segX, trackY, segment, toggleHeight, toggleRadius, ink)
			optStyle.Color = paper
		}
		d.DrawText(opt, segX+segment/2, trackY+toggleHeight/2+4, optStyle)
	}
}
