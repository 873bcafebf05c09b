package widgets

import (
	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/render/layout"
	"github.com/eink-works/gxui/internal/ui"
)

const (
	dropdownPadding    = 8
	dropdownItemHeight = 40
	dropdownRadius     = 8
	dropdownMaxVisible = 5
)

// Dropdown picks one option from a list. Select toggles the expanded state
// (engaging the element while open, so Up/Down route here instead of the
// page); Up/Down move the choice while expanded.
type Dropdown struct {
	ui.Core
	Label    string
	Options  []string
	OnChange func(index int)

	index    int
	expanded bool
}

func NewDropdown(id, label string, options []string, initial int) *Dropdown {
	d := &Dropdown{Core: ui.NewCore(id), Label: label, Options: options}
	if initial >= 0 && initial < len(options) {
		d.index = initial
	}
	return d
}

func (dd *Dropdown) Index() int     { return dd.index }
func (dd *Dropdown) Expanded() bool { return dd.expanded }

func (dd *Dropdown) Value() string {
	if len(dd.Options) == 0 {
		return ""
	}
	return dd.Options[dd.index]
}

func (dd *Dropdown) setIndex(i int) {
	dd.index = i
	if dd.OnChange != nil {
		dd.OnChange(i)
	}
}

func (dd *Dropdown) OnSelect() {
	dd.expanded = !dd.expanded
	if dd.expanded {
		dd.Activate()
	} else {
		dd.Deactivate()
	}
}

func (dd *Dropdown) OnUp() {
	if dd.expanded && dd.index > 0 {
		dd.setIndex(dd.index - 1)
		dd.Activate()
	}
}

func (dd *Dropdown) OnDown() {
	if dd.expanded && dd.index < len(dd.Options)-1 {
		dd.setIndex(dd.index + 1)
		dd.Activate()
	}
}

func (dd *Dropdown) collapsedHeight() int { return dropdownItemHeight + dropdownPadding }

func (dd *Dropdown) expandedHeight() int {
	visible := len(dd.Options)
	if visible > dropdownMaxVisible {
		visible = dropdownMaxVisible
	}
	return dd.collapsedHeight() + visible*dropdownItemHeight
}

func (dd *Dropdown) Draw(d render.Drawer, rg *render.Region) {
	style := render.TextStyle{Size: 12, Bold: true}
	width := d.MeasureText(dd.Label, style).Width
	for _, opt := range dd.Options {
		if w := d.MeasureText(opt, style).Width; w > width {
			width = w
		}
	}
	width += dropdownPadding * 5

	// The region always reflects the current expansion, so the element-only
	// refresh window covers (or clears) the option list.
	boxH := dd.collapsedHeight()
	if dd.expanded {
		boxH = dd.expandedHeight()
	}
	*rg = layout.AlignByteBoundary(render.Region{X: rg.X, Y: rg.Y, Width: width + dropdownPadding, Height: boxH})

	ink := d.Ink(dd.Inverted())
	paper := d.Paper(dd.Inverted())

	d.FillRoundRect(rg.X, rg.Y, width, boxH, dropdownRadius, ink)

	valueY := rg.Y + dropdownItemHeight - dropdownPadding
	d.DrawText(dd.Value(), rg.X+dropdownPadding, valueY, render.TextStyle{Color: paper, Size: 12, Bold: true})

	marker := "v"
	if dd.expanded {
		marker = "^"
	}
	d.DrawText(marker, rg.X+width-dropdownPadding, valueY, render.TextStyle{Color: paper, Size: 12, Align: render.TextAlignRight})

	if dd.expanded {
		start := dd.index - dropdownMaxVisible/2
		if start < 0 {
			start = 0
		}
		end := start + dropdownMaxVisible
		if end > len(dd.Options) {
			end = len(dd.Options)
		}
		for i := start; i < end; i++ {
			itemY := rg.Y + dropdownItemHeight*(i-start+1)
			optColor := paper
			if i == dd.index {
				d.FillRoundRect(rg.X, itemY, width, dropdownItemHeight, dropdownRadius, paper)
				optColor = ink
			}
			d.DrawText(dd.Options[i], rg.X+dropdownPadding, itemY+dropdownItemHeight-dropdownPadding*3/2, render.TextStyle{Color: optColor, Size: 12, Bold: true})
		}
		return
	}

	if !dd.Enabled() {
		d.DrawPatternRounded(render.PatternDiagonalStripes, rg.X, rg.Y, width, boxH, dropdownRadius, ink)
	} else if dd.Selected() {
		d.DrawMultiRoundRectBorder(rg.X, rg.Y, width, boxH, paper, 2, 1, 2, dropdownRadius)
	}
}
