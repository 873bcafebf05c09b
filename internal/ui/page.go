package ui

import "github.com/eink-works/gxui/internal/render"

// Page is an ordered container of elements with single-selection semantics.
// It is itself navigable: Up/Down move the selection over enabled elements
// (clamped, no wraparound), Select forwards to the selected element.
type Page struct {
	Title string

	// Opened runs when the page is pushed onto the stack.
	Opened func()

	// DrawContent paints the page body and positions its elements, typically
	// via RenderElement. Nil means the page has no background of its own.
	DrawContent func(d render.Drawer, p *Page)

	// RenderUnfocused controls whether full paints redraw the whole page while
	// an element is active. When false, only the active element is repainted
	// in its last region, which avoids redoing background work per refresh.
	RenderUnfocused bool

	// Log receives soft-failure diagnostics; nil is fine.
	Log Logger

	elements []Element
	index    map[string]int
	current  int
	temp     int
}

func NewPage(title string) *Page {
	return &Page{
		Title:           title,
		RenderUnfocused: true,
		index:           make(map[string]int),
		current:         -1,
		temp:            -1,
	}
}

// Add appends an element. The focusable flag becomes the element's enabled
// state. A duplicate identifier is rejected: logged, nothing mutated, nil
// returned.
func (p *Page) Add(el Element, focusable bool) Element {
	if el == nil {
		return nil
	}
	if _, exists := p.index[el.ID()]; exists {
		p.errorf("page", "duplicate element id %q on page %q", el.ID(), p.Title)
		return nil
	}
	el.SetEnabled(focusable)
	p.index[el.ID()] = len(p.elements)
	p.elements = append(p.elements, el)
	return el
}

// Get returns the element with the given identifier, or nil.
func (p *Page) Get(id string) Element {
	if i, ok := p.index[id]; ok {
		return p.elements[i]
	}
	p.errorf("page", "unknown element id %q on page %q", id, p.Title)
	return nil
}

// GetAt returns the element at the given position, or nil.
func (p *Page) GetAt(i int) Element {
	if i < 0 || i >= len(p.elements) {
		return nil
	}
	return p.elements[i]
}

func (p *Page) Len() int { return len(p.elements) }

// Current returns the selected element, or nil when nothing is selected.
func (p *Page) Current() Element {
	if p.current < 0 || p.current >= len(p.elements) {
		return nil
	}
	return p.elements[p.current]
}

func (p *Page) SelectedIndex() int { return p.current }

// Select remembers the present selection for later restore and moves the
// selection to the identified element. Returns false on an unknown id.
func (p *Page) Select(id string) bool {
	i, ok := p.index[id]
	if !ok {
		p.errorf("page", "select: unknown element id %q on page %q", id, p.Title)
		return false
	}
	p.temp = p.current
	p.SetSelectedIndex(i)
	return true
}

// Activate selects the identified element and marks it active (engaged).
func (p *Page) Activate(id string) bool {
	if !p.Select(id) {
		return false
	}
	if el := p.Current(); el != nil {
		el.Activate()
	}
	return true
}

// SetSelectedIndex deselects and deactivates the current element, then selects
// the element at i if one exists there.
func (p *Page) SetSelectedIndex(i int) {
	if el := p.Current(); el != nil {
		el.Deselect()
		el.Deactivate()
	}
	p.current = i
	if el := p.Current(); el != nil {
		el.Select()
	}
}

// ResetFocus clears the current selection, then restores the remembered
// temporary index if set (the modal-return path), or falls back to the first
// enabled element. The remembered index stays set, so repeated calls with no
// intervening mutation land on the same element.
func (p *Page) ResetFocus() {
	if el := p.Current(); el != nil {
		el.Deselect()
		el.Deactivate()
	}
	if p.temp >= 0 {
		p.SetSelectedIndex(p.temp)
		return
	}
	p.current = -1
	for i, el := range p.elements {
		if el.Enabled() {
			p.SetSelectedIndex(i)
			return
		}
	}
}

// OnUp moves the selection toward lower indices, skipping disabled elements.
// Running off the start leaves the selection unchanged.
func (p *Page) OnUp() {
	if len(p.elements) == 0 {
		return
	}
	i := p.current
	for {
		i--
		if i < 0 {
			return
		}
		if p.elements[i].Enabled() {
			break
		}
	}
	p.SetSelectedIndex(i)
}

// OnDown moves the selection toward higher indices, skipping disabled
// elements. Running off the end leaves the selection unchanged.
func (p *Page) OnDown() {
	if len(p.elements) == 0 {
		return
	}
	i := p.current
	for {
		i++
		if i >= len(p.elements) {
			return
		}
		if p.elements[i].Enabled() {
			break
		}
	}
	p.SetSelectedIndex(i)
}

func (p *Page) OnLeft()  {}
func (p *Page) OnRight() {}

// OnSelect forwards to the selected element.
func (p *Page) OnSelect() {
	if el := p.Current(); el != nil {
		el.OnSelect()
	}
}

// Draw paints the page content.
func (p *Page) Draw(d render.Drawer, rg *render.Region) {
	if p.DrawContent != nil {
		p.DrawContent(d, p)
	}
}

// RenderElement draws the identified element at the given region hint and
// records the region it used. Unknown ids are a logged no-op.
func (p *Page) RenderElement(id string, d render.Drawer, rg render.Region) {
	el := p.Get(id)
	if el == nil {
		return
	}
	Render(el, d, &rg)
}

func (p *Page) errorf(component, format string, args ...interface{}) {
	if p.Log != nil {
		p.Log.Errorf(component, format, args...)
	}
}
