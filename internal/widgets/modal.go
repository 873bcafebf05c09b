package widgets

import (
	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/ui"
)

const (
	modalPadding = 12
	modalRadius  = 8
)

// Modal is a centered dialog that takes over focus while shown. Show routes
// focus to it through the page (remembering the previous selection); Hide
// restores that selection via the page's focus reset. Add it to its page with
// focusable=false so normal navigation skips it.
type Modal struct {
	ui.Core
	Width  int
	Height int

	// DrawBody paints the dialog content into the padded inner region.
	DrawBody func(d render.Drawer, rg render.Region)

	// OnClose runs when the modal is dismissed, before focus is restored.
	OnClose func()

	// Refresh is called after Hide; the owner uses it to request a repaint of
	// the area the dialog covered, which an element-sized window cannot clear.
	Refresh func()

	// DismissOnSelect makes a select press close the dialog (the default).
	DismissOnSelect bool

	page *ui.Page
}

func NewModal(id string, width, height int) *Modal {
	return &Modal{Core: ui.NewCore(id), Width: width, Height: height, DismissOnSelect: true}
}

// Show engages the modal on the given page. The page remembers the current
// selection and restores it on Hide.
func (m *Modal) Show(p *ui.Page) {
	m.page = p
	p.Activate(m.ID())
}

// Hide dismisses the dialog and hands focus back to the element that was
// selected before Show.
func (m *Modal) Hide() {
	m.Deactivate()
	if m.OnClose != nil {
		m.OnClose()
	}
	if m.page != nil {
		m.page.ResetFocus()
	}
	if m.Refresh != nil {
		m.Refresh()
	}
}

func (m *Modal) Visible() bool { return m.Selected() || m.Active() }

func (m *Modal) OnSelect() {
	if m.DismissOnSelect {
		m.Hide()
	}
}

func (m *Modal) Draw(d render.Drawer, rg *render.Region) {
	if !m.Visible() {
		return
	}

	outer := *rg
	if outer.Empty() {
		w, h := d.Size()
		outer = render.Region{Width: w, Height: h}
	}

	// Center within the given region, snapped to byte boundaries.
	x := (outer.X + (outer.Width-m.Width)/2 + 7) &^ 7
	y := (outer.Y + (outer.Height-m.Height)/2 + 7) &^ 7
	*rg = render.Region{X: x, Y: y, Width: m.Width, Height: m.Height}

	ink := d.Ink(m.Inverted())
	paper := d.Paper(m.Inverted())

	margin := modalPadding / 4
	d.FillRoundRect(x, y, m.Width, m.Height, modalRadius, ink)
	d.DrawMultiRoundRectBorder(x+margin, y+margin, m.Width-margin*2, m.Height-margin*2, paper, 3, 1, 2, modalRadius)

	if m.DrawBody != nil {
		m.DrawBody(d, render.Region{
			X:      x + modalPadding,
			Y:      y + modalPadding,
			Width:  m.Width - modalPadding*2,
			Height: m.Height - modalPadding*2,
		})
	}
}
