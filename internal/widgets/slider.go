package widgets

import (
	"strconv"

	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/render/layout"
	"github.com/eink-works/gxui/internal/ui"
)

const (
	sliderPadding = 12
	sliderWidth   = 128
	sliderHeight  = 24
	knobWidth     = 16
	sliderRadius  = 4
)

// Slider adjusts an integer value within [Min, Max]. Left/Right step the
// value and engage the element so further input stays routed here; Select
// toggles engagement.
type Slider struct {
	ui.Core
	Label    string
	Min      int
	Max      int
	Step     int
	OnChange func(value int)

	value int
}

func NewSlider(id, label string, value, min, max, step int) *Slider {
	if step <= 0 {
		step = 1
	}
	s := &Slider{Core: ui.NewCore(id), Label: label, Min: min, Max: max, Step: step}
	s.value = clamp(value, min, max)
	return s
}

func (s *Slider) Value() int { return s.value }

func (s *Slider) setValue(v int) {
	v = clamp(v, s.Min, s.Max)
	if v == s.value {
		return
	}
	s.value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

func (s *Slider) OnLeft() {
	s.setValue(s.value - s.Step)
	s.Activate()
}

func (s *Slider) OnRight() {
	s.setValue(s.value + s.Step)
	s.Activate()
}

func (s *Slider) OnSelect() {
	if s.Active() {
		s.Deactivate()
	} else {
		s.Activate()
	}
}

func (s *Slider) Draw(d render.Drawer, rg *render.Region) {
	style := render.TextStyle{Size: 12, Bold: true}
	tm := d.MeasureText(s.Label, style)

	if rg.Width == 0 || rg.Height == 0 {
		rg.Width = tm.Width + sliderWidth + sliderPadding*3
		rg.Height = tm.Height + sliderPadding*2
		*rg = layout.AlignByteBoundary(*rg)
	}

	ink := d.Ink(s.Inverted())

	if !s.Enabled() {
		d.DrawPatternRounded(render.PatternDiagonalStripes, rg.X, rg.Y, rg.Width, rg.Height, sliderRadius, ink)
	} else if s.Active() {
		d.DrawMultiRoundRectBorder(rg.X, rg.Y, rg.Width, rg.Height, ink, 3, 1, 2, sliderRadius)
	} else if s.Selected() {
		d.DrawRoundRect(rg.X, rg.Y, rg.Width, rg.Height, sliderRadius, ink)
	}

	baseline := rg.Y + (rg.Height+tm.Ascent)/2
	style.Color = ink
	d.DrawText(s.Label, rg.X+sliderPadding, baseline, style)

	trackX := rg.X + rg.Width - sliderWidth - sliderPadding
	trackY := rg.Y + (rg.Height-sliderHeight)/2

	d.DrawRoundRect(trackX, trackY+sliderHeight/3, sliderWidth, sliderHeight/3, sliderRadius, ink)

	span := s.Max - s.Min
	if span <= 0 {
		span = 1
	}
	knobX := trackX + (s.value-s.Min)*(sliderWidth-knobWidth)/span
	d.FillRoundRect(knobX, trackY, knobWidth, sliderHeight, sliderRadius, ink)

	valStyle := render.TextStyle{Size: 10, Color: ink, Align: render.TextAlignRight}
	d.DrawText(strconv.Itoa(s.value), trackX-sliderPadding/2, baseline, valStyle)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
