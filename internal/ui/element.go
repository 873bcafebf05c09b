// Package ui contains the focus-navigation core: element capabilities, the
// page container and stack, the menu tree, the focus resolver and the render
// scheduler.
package ui

import "github.com/eink-works/gxui/internal/render"

// Logger is the minimal logging surface the core needs. The app package
// provides file and noop implementations.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Drawable paints content into a Region. Implementations that receive a
// zero-size Region must measure their content and write the final rectangle
// back before returning.
type Drawable interface {
	Draw(d render.Drawer, rg *render.Region)
}

// Navigable reacts to the five discrete input events. Implementations embed
// Core for no-op defaults and override what they handle.
type Navigable interface {
	OnUp()
	OnDown()
	OnLeft()
	OnRight()
	OnSelect()
}

// Element is a focusable on-screen element: drawable, navigable, and carrying
// the four state flags containers manage. Selection and activation changes
// flow through the owning container's API, not ad hoc through shared handles.
type Element interface {
	Drawable
	Navigable

	ID() string

	Enabled() bool
	SetEnabled(enabled bool)

	Selected() bool
	Select()
	Deselect()

	Active() bool
	Activate()
	Deactivate()

	Inverted() bool
	SetInverted(inverted bool)

	// LastRegion is the screen rectangle the element most recently drew into;
	// the scheduler uses it to size element-only partial refreshes.
	LastRegion() render.Region
	StoreRegion(rg render.Region)
}

// Core is the embeddable element base: identifier, state flags, last drawn
// region, and no-op navigation handlers.
type Core struct {
	id       string
	enabled  bool
	selected bool
	active   bool
	inverted bool
	last     render.Region
}

func NewCore(id string) Core {
	return Core{id: id, enabled: true}
}

func (c *Core) ID() string { return c.id }

func (c *Core) Enabled() bool             { return c.enabled }
func (c *Core) SetEnabled(enabled bool)   { c.enabled = enabled }
func (c *Core) Selected() bool            { return c.selected }
func (c *Core) Select()                   { c.selected = true }
func (c *Core) Deselect()                 { c.selected = false }
func (c *Core) Active() bool              { return c.active }
func (c *Core) Activate()                 { c.active = true }
func (c *Core) Deactivate()               { c.active = false }
func (c *Core) Inverted() bool            { return c.inverted }
func (c *Core) SetInverted(inverted bool) { c.inverted = inverted }

func (c *Core) LastRegion() render.Region    { return c.last }
func (c *Core) StoreRegion(rg render.Region) { c.last = rg }

func (c *Core) OnUp()     {}
func (c *Core) OnDown()   {}
func (c *Core) OnLeft()   {}
func (c *Core) OnRight()  {}
func (c *Core) OnSelect() {}

// Render draws the element and records the region it used.
func Render(el Element, d render.Drawer, rg *render.Region) {
	el.Draw(d, rg)
	el.StoreRegion(*rg)
}
