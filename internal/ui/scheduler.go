package ui

import (
	"context"
	"time"

	"github.com/eink-works/gxui/internal/render"
)

// RequestKind names the refresh a producer wants. It selects only the refresh
// window; what actually gets painted is re-resolved from current state when
// the consumer services the request.
type RequestKind int

const (
	// RequestFull refreshes the whole visible area.
	RequestFull RequestKind = iota
	// RequestMenu refreshes the fixed overlay rectangle.
	RequestMenu
	// RequestInteractable refreshes the last region of the selected element.
	RequestInteractable
)

func (k RequestKind) String() string {
	switch k {
	case RequestFull:
		return "full"
	case RequestMenu:
		return "menu"
	case RequestInteractable:
		return "interactable"
	}
	return "unknown"
}

const (
	// DefaultFullRefreshThreshold is how many full-kind renders run as fast
	// partials before one true full-window refresh clears the ghosting.
	DefaultFullRefreshThreshold = 20

	// renderCooldown bounds the refresh rate between serviced requests.
	renderCooldown = 10 * time.Millisecond
)

// Scheduler owns the single-slot request queue and the rendering consumer.
// The producer side never blocks: a request arriving while the slot is
// occupied is dropped, not merged or replaced. The consumer re-resolves focus
// at paint time, so a stale request kind can at worst pick a suboptimal
// window, never wrong content.
type Scheduler struct {
	ui      *UI
	surface render.Surface
	log     Logger

	requests chan RequestKind
	cooldown time.Duration

	// threshold and executedFull are touched only by the consumer goroutine.
	threshold    int
	executedFull int
}

func newScheduler(ui *UI, surface render.Surface, log Logger) *Scheduler {
	return &Scheduler{
		ui:        ui,
		surface:   surface,
		log:       log,
		requests:  make(chan RequestKind, 1),
		cooldown:  renderCooldown,
		threshold: DefaultFullRefreshThreshold,
	}
}

// Request enqueues a refresh without blocking. When the slot is already
// occupied the request is dropped; staleness is acceptable, stalling input is
// not.
func (s *Scheduler) Request(kind RequestKind) {
	select {
	case s.requests <- kind:
	default:
		if s.log != nil {
			s.log.Infof("sched", "request slot full, dropping %s request", kind)
		}
	}
}

// Run services requests until the context is cancelled. It is the only
// goroutine that touches the surface after startup.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-s.requests:
			s.service(req)
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.cooldown):
			}
		}
	}
}

// service configures the refresh window for the request kind and commits one
// paint. Full-kind requests run as fast partials sized to the whole panel
// until the threshold is reached, then one true full refresh clears the
// accumulated ghosting.
func (s *Scheduler) service(req RequestKind) {
	width, height := s.surface.Size()

	switch req {
	case RequestFull:
		s.executedFull++
		if s.executedFull >= s.threshold {
			s.surface.SetFullWindow()
			s.executedFull = 0
		} else {
			s.surface.SetPartialWindow(0, 0, width, height)
		}
	case RequestMenu:
		rg := OverlayRegion(width, height)
		s.surface.SetPartialWindow(rg.X, rg.Y, rg.Width, rg.Height)
	case RequestInteractable:
		page := s.ui.CurrentPage()
		if page == nil {
			return
		}
		el := page.Current()
		if el == nil {
			if s.log != nil {
				s.log.Errorf("sched", "interactable refresh with no selected element")
			}
			return
		}
		rg := el.LastRegion()
		if rg.Empty() {
			if s.log != nil {
				s.log.Errorf("sched", "interactable refresh for %q with no known region", el.ID())
			}
			return
		}
		s.surface.SetPartialWindow(rg.X, rg.Y, rg.Width, rg.Height)
	}

	if err := s.surface.Commit(s.paint); err != nil && s.log != nil {
		s.log.Errorf("sched", "commit failed: %v", err)
	}
}

// paint draws whatever current state implies, independent of the request that
// triggered the refresh.
func (s *Scheduler) paint(d render.Drawer) {
	d.FillBackground()
	if page := s.ui.CurrentPage(); page != nil {
		el := page.Current()
		if !page.RenderUnfocused && el != nil && el.Active() {
			rg := el.LastRegion()
			Render(el, d, &rg)
		} else {
			var rg render.Region
			page.Draw(d, &rg)
		}
	}
	if s.ui.MenuActive() {
		var rg render.Region
		s.ui.Menu().Draw(d, &rg)
	}
}
