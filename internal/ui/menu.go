package ui

import "github.com/eink-works/gxui/internal/render"

// Overlay geometry, anchored to the bottom of the panel.
const (
	menuPadding      = 8
	menuMarginBottom = 20
	menuHeight       = 140 + menuMarginBottom
	menuItemsPerRow  = 5
)

// OverlayRegion is the fixed screen rectangle the menu overlay occupies.
func OverlayRegion(width, height int) render.Region {
	return render.Region{
		X:      menuPadding,
		Y:      height - menuPadding - menuHeight + menuMarginBottom,
		Width:  width - menuPadding*2,
		Height: menuHeight,
	}
}

type ItemKind int

const (
	ItemAction ItemKind = iota
	ItemSubmenu
	ItemPage
)

// KindMarker is the single-character tag rendered in front of an item title.
func KindMarker(kind ItemKind) string {
	switch kind {
	case ItemAction:
		return "$"
	case ItemSubmenu:
		return "/"
	case ItemPage:
		return ">"
	}
	return "?"
}

// Item is a node of the menu tree. The parent link is a plain back-reference
// into the owning tree, never an owning handle.
type Item interface {
	Title() string
	Kind() ItemKind
	Icon() render.Bitmap
	Parent() *Submenu
	Selected() bool

	// Execute runs the node's effect. Submenu and PageLink nodes have no
	// effect of their own; descending and page pushing happen in the tree.
	Execute()

	setParent(parent *Submenu)
	setSelected(selected bool)
}

// node carries the state shared by all item kinds.
type node struct {
	title    string
	icon     render.Bitmap
	parent   *Submenu
	selected bool
}

func (n *node) Title() string             { return n.title }
func (n *node) Icon() render.Bitmap       { return n.icon }
func (n *node) Parent() *Submenu          { return n.parent }
func (n *node) Selected() bool            { return n.selected }
func (n *node) setParent(parent *Submenu) { n.parent = parent }
func (n *node) setSelected(selected bool) { n.selected = selected }

// PathTitle renders the slash-joined path from the root to the item.
func PathTitle(it Item) string {
	if it == nil {
		return ""
	}
	if it.Parent() == nil {
		return it.Title()
	}
	return PathTitle(it.Parent()) + "/" + it.Title()
}

// Submenu owns an ordered list of child items with exactly one selected
// sibling once any child exists.
type Submenu struct {
	node
	items    []Item
	selected int
}

func NewSubmenu(title string) *Submenu {
	return &Submenu{node: node{title: title}}
}

func NewSubmenuIcon(title string, icon render.Bitmap) *Submenu {
	return &Submenu{node: node{title: title, icon: icon}}
}

func (s *Submenu) Kind() ItemKind { return ItemSubmenu }
func (s *Submenu) Execute()       {}

// AddItem appends a child. The very first child becomes the selection so
// navigation never starts on an undefined index.
func (s *Submenu) AddItem(it Item) {
	if it == nil {
		return
	}
	it.setParent(s)
	s.items = append(s.items, it)
	if len(s.items) == 1 {
		s.SetSelectedIndex(0)
	}
}

func (s *Submenu) Items() []Item      { return s.items }
func (s *Submenu) Len() int           { return len(s.items) }
func (s *Submenu) SelectedIndex() int { return s.selected }

// SetSelectedIndex moves the sibling selection, always deselecting the old
// child before selecting the new one.
func (s *Submenu) SetSelectedIndex(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	if s.selected >= 0 && s.selected < len(s.items) {
		s.items[s.selected].setSelected(false)
	}
	s.selected = i
	s.items[s.selected].setSelected(true)
}

// SelectedItem returns the selected child, or nil for an empty submenu.
func (s *Submenu) SelectedItem() Item {
	if s.selected < 0 || s.selected >= len(s.items) {
		return nil
	}
	return s.items[s.selected]
}

// Action is a leaf that fires a callback.
type Action struct {
	node
	fn func()
}

func NewAction(title string, fn func()) *Action {
	return &Action{node: node{title: title}, fn: fn}
}

func NewActionIcon(title string, icon render.Bitmap, fn func()) *Action {
	return &Action{node: node{title: title, icon: icon}, fn: fn}
}

func (a *Action) Kind() ItemKind { return ItemAction }
func (a *Action) Execute() {
	if a.fn != nil {
		a.fn()
	}
}

// PageLink opens a page when executed. The page may be shared with other
// links and with the page stack.
type PageLink struct {
	node
	page *Page
}

func NewPageLink(title string, page *Page) *PageLink {
	return &PageLink{node: node{title: title}, page: page}
}

func NewPageLinkIcon(title string, icon render.Bitmap, page *Page) *PageLink {
	return &PageLink{node: node{title: title, icon: icon}, page: page}
}

func (l *PageLink) Kind() ItemKind { return ItemPage }
func (l *PageLink) Execute()       {}
func (l *PageLink) Page() *Page    { return l.page }

// Menu is the hierarchical overlay menu. One current submenu receives input;
// opening and closing toggles the overlay flag on the owning UI.
type Menu struct {
	ui      *UI
	root    *Submenu
	current *Submenu

	// Widgets is an optional row of status drawables rendered beneath the
	// item row.
	Widgets []Drawable
}

func newMenu(ui *UI) *Menu {
	root := NewSubmenu("")
	return &Menu{ui: ui, root: root, current: root}
}

func (m *Menu) Root() *Submenu    { return m.root }
func (m *Menu) Current() *Submenu { return m.current }

func (m *Menu) AddToRoot(it Item) { m.root.AddItem(it) }

// Open shows the overlay and requests an overlay-window refresh.
func (m *Menu) Open() {
	m.ui.setMenuActive(true)
	m.ui.scheduler.Request(RequestMenu)
}

// Close hides the overlay. The page underneath needs repainting where the
// overlay was, so this requests a full-kind refresh.
func (m *Menu) Close() {
	m.ui.setMenuActive(false)
	m.ui.scheduler.Request(RequestFull)
}

// MoveSelection moves the sibling selection within the current submenu with
// wraparound; menus are cyclic where pages clamp.
func (m *Menu) MoveSelection(towardFirst bool) {
	count := m.current.Len()
	if count == 0 {
		return
	}
	i := m.current.SelectedIndex()
	if towardFirst {
		i--
		if i < 0 {
			i = count - 1
		}
	} else {
		i++
		if i >= count {
			i = 0
		}
	}
	m.current.SetSelectedIndex(i)
}

// ExecuteSelected acts on the selected child: a Submenu becomes the current
// node, a PageLink pushes its page and dismisses the overlay, and the node's
// own Execute runs afterwards in every case. PageLink outcomes skip the
// overlay refresh because the page push already triggers a full one.
func (m *Menu) ExecuteSelected() {
	it := m.current.SelectedItem()
	if it == nil {
		return
	}
	switch it.Kind() {
	case ItemSubmenu:
		m.current = it.(*Submenu)
	case ItemPage:
		m.ui.PushPage(it.(*PageLink).Page())
		m.Close()
	}
	it.Execute()
	if it.Kind() != ItemPage {
		m.ui.scheduler.Request(RequestMenu)
	}
}

// GoBack ascends to the parent submenu; at the root it dismisses the overlay.
func (m *Menu) GoBack() {
	if m.current != m.root && m.current.Parent() != nil {
		m.current = m.current.Parent()
		m.ui.scheduler.Request(RequestMenu)
		return
	}
	m.Close()
}

// Input mapping: horizontal moves the selection, Down/Select executes, Up
// backs out.
func (m *Menu) OnUp()     { m.GoBack() }
func (m *Menu) OnDown()   { m.ExecuteSelected() }
func (m *Menu) OnLeft()   { m.MoveSelection(true) }
func (m *Menu) OnRight()  { m.MoveSelection(false) }
func (m *Menu) OnSelect() { m.ExecuteSelected() }

// Draw paints the overlay into its fixed region and writes that region back.
func (m *Menu) Draw(d render.Drawer, rg *render.Region) {
	width, height := d.Size()
	overlay := OverlayRegion(width, height)
	*rg = overlay

	ink := d.Ink(false)
	paper := d.Paper(false)

	d.FillRoundRect(overlay.X, overlay.Y, overlay.Width, overlay.Height, menuPadding, paper)
	d.DrawMultiRoundRectBorder(overlay.X, overlay.Y, overlay.Width, overlay.Height, ink, 3, 2, 2, menuPadding)

	titleStyle := render.TextStyle{Color: ink, Size: 12}
	d.DrawText(PathTitle(m.current), overlay.X+menuPadding*2, overlay.Y+menuPadding*3+4, titleStyle)

	itemSize := (overlay.Width - menuPadding*4) / menuItemsPerRow
	iconSize := itemSize - menuPadding*4
	rowY := overlay.Y + overlay.Height - menuMarginBottom - itemSize - menuPadding*3/2

	if sel := m.current.SelectedItem(); sel != nil {
		label := KindMarker(sel.Kind()) + " " + sel.Title()
		style := render.TextStyle{Color: ink, Size: 12, Bold: true}
		tm := d.DrawText(label, overlay.X+menuPadding*2, rowY-menuPadding*2, style)
		underY := rowY - menuPadding*2 + tm.Descent
		d.DrawLine(overlay.X+menuPadding*2, underY, overlay.X+menuPadding*2+tm.Width, underY, ink)
	}

	x := overlay.X + menuPadding*2 + menuPadding/2
	for _, it := range m.current.Items() {
		loops := 1
		if it.Selected() {
			loops = 3
		}
		d.DrawMultiRoundRectBorder(x, rowY, itemSize-menuPadding, itemSize-menuPadding, ink, loops, 1, 2, menuPadding/2)
		if icon := it.Icon(); icon.Width > 0 {
			iconX := x - menuPadding/2 + (itemSize-iconSize)/2
			iconY := rowY - menuPadding/2 + (itemSize-iconSize)/2
			d.DrawBitmap(icon, iconX, iconY, iconSize, iconSize, ink)
		} else {
			d.DrawText(KindMarker(it.Kind()), x+menuPadding/2, rowY+menuPadding*5/2, render.TextStyle{Color: ink, Size: 12})
		}
		x += itemSize
	}

	if len(m.Widgets) > 0 {
		wx := overlay.X + menuPadding*2
		wy := rowY + itemSize
		for _, w := range m.Widgets {
			wrg := render.Region{X: wx, Y: wy, Height: 20}
			w.Draw(d, &wrg)
			wx += wrg.Width + menuPadding
		}
	}
}
