package ui

import (
	"context"
	"sync"

	"github.com/eink-works/gxui/internal/render"
)

// Event is the complete input vocabulary of the framework.
type Event int

const (
	EventUp Event = iota
	EventDown
	EventLeft
	EventRight
	EventSelect
)

// FocusKind names what currently owns the screen.
type FocusKind int

const (
	FocusNone FocusKind = iota
	FocusPage
	FocusMenu
	FocusInteractable
)

func (k FocusKind) String() string {
	switch k {
	case FocusPage:
		return "page"
	case FocusMenu:
		return "menu"
	case FocusInteractable:
		return "interactable"
	}
	return "none"
}

// UI is the process-wide UI context: the page stack, the overlay menu, the
// render scheduler, and the focus resolver tying them together. It is built
// once and passed explicitly; there are no package-level singletons.
//
// Writer discipline: the input side mutates navigation state (stack, overlay
// flag, selection), the render consumer mutates only its own counters. The
// mutex below guards the stack and flag for cross-goroutine visibility.
type UI struct {
	scheduler *Scheduler
	menu      *Menu
	log       Logger

	mu         sync.RWMutex
	stack      []*Page
	menuActive bool
}

// New wires a UI context over the given surface.
func New(surface render.Surface, log Logger) *UI {
	u := &UI{log: log}
	u.menu = newMenu(u)
	u.scheduler = newScheduler(u, surface, log)
	return u
}

func (u *UI) Menu() *Menu           { return u.menu }
func (u *UI) Scheduler() *Scheduler { return u.scheduler }

// Run starts the rendering consumer and blocks until ctx is cancelled.
func (u *UI) Run(ctx context.Context) { u.scheduler.Run(ctx) }

// PushPage makes the page visible: fires its Opened hook, puts it on top of
// the stack and requests a full-kind refresh.
func (u *UI) PushPage(p *Page) {
	if p == nil {
		return
	}
	if p.Log == nil {
		p.Log = u.log
	}
	if p.Opened != nil {
		p.Opened()
	}
	u.mu.Lock()
	u.stack = append(u.stack, p)
	u.mu.Unlock()
	u.scheduler.Request(RequestFull)
}

// PopPage removes the top page and repaints whatever is revealed underneath.
// Popping an empty stack is a no-op.
func (u *UI) PopPage() {
	u.mu.Lock()
	if len(u.stack) == 0 {
		u.mu.Unlock()
		return
	}
	u.stack = u.stack[:len(u.stack)-1]
	u.mu.Unlock()
	u.scheduler.Request(RequestFull)
}

// CurrentPage returns the visible page, or nil for an empty stack.
func (u *UI) CurrentPage() *Page {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if len(u.stack) == 0 {
		return nil
	}
	return u.stack[len(u.stack)-1]
}

func (u *UI) StackDepth() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.stack)
}

func (u *UI) MenuActive() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.menuActive
}

func (u *UI) setMenuActive(active bool) {
	u.mu.Lock()
	u.menuActive = active
	u.mu.Unlock()
}

// Focus resolves what currently owns the screen. Priority: an open overlay
// menu wins, then an engaged element on the top page, then the page itself.
// Pure read, callable from any goroutine.
func (u *UI) Focus() FocusKind {
	if u.MenuActive() {
		return FocusMenu
	}
	page := u.CurrentPage()
	if page == nil {
		return FocusNone
	}
	if el := page.Current(); el != nil && el.Active() {
		return FocusInteractable
	}
	return FocusPage
}

// Dispatch routes an input event to the element resolved by Focus, then
// requests a refresh whose kind matches that same pre-mutation resolution.
// Exactly one request is attempted per event; unresolvable targets degrade to
// a logged no-op.
func (u *UI) Dispatch(ev Event) {
	focus := u.Focus()

	var target Navigable
	switch focus {
	case FocusMenu:
		target = u.menu
	case FocusInteractable:
		if page := u.CurrentPage(); page != nil {
			if el := page.Current(); el != nil {
				target = el
			}
		}
	case FocusPage:
		if page := u.CurrentPage(); page != nil {
			target = page
		}
	case FocusNone:
		return
	}
	if target == nil {
		if u.log != nil {
			u.log.Errorf("ui", "focus %s resolved but target is gone, dropping event", focus)
		}
		return
	}

	switch ev {
	case EventUp:
		target.OnUp()
	case EventDown:
		target.OnDown()
	case EventLeft:
		target.OnLeft()
	case EventRight:
		target.OnRight()
	case EventSelect:
		target.OnSelect()
	}

	switch focus {
	case FocusPage:
		u.scheduler.Request(RequestFull)
	case FocusMenu:
		u.scheduler.Request(RequestMenu)
	case FocusInteractable:
		u.scheduler.Request(RequestInteractable)
	}
}
