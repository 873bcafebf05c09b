package ui

import (
	"context"
	"testing"
	"time"

	"github.com/eink-works/gxui/internal/render"
)

func TestRequestDropsWhenSlotFull(t *testing.T) {
	u := New(newFakeSurface(), nil)
	s := u.Scheduler()

	s.Request(RequestFull)
	s.Request(RequestMenu) // slot occupied, dropped
	if got := len(s.requests); got != 1 {
		t.Fatalf("%d requests buffered, want 1", got)
	}
	if got := <-s.requests; got != RequestFull {
		t.Fatalf("buffered request = %s, want the first (full)", got)
	}

	// With the slot free again the next request goes through.
	s.Request(RequestInteractable)
	if got := <-s.requests; got != RequestInteractable {
		t.Fatalf("buffered request = %s, want interactable", got)
	}
}

func TestFullRequestsAmortizeGhosting(t *testing.T) {
	surface := newFakeSurface()
	u := New(surface, nil)
	s := u.Scheduler()

	for i := 1; i < DefaultFullRefreshThreshold; i++ {
		s.service(RequestFull)
		if surface.fulls != 0 {
			t.Fatalf("full-window refresh after %d requests, want none before %d", i, DefaultFullRefreshThreshold)
		}
	}
	s.service(RequestFull)
	if surface.fulls != 1 {
		t.Fatalf("fulls = %d after %d requests, want 1", surface.fulls, DefaultFullRefreshThreshold)
	}
	if got := len(surface.partials); got != DefaultFullRefreshThreshold-1 {
		t.Fatalf("partials = %d, want %d", got, DefaultFullRefreshThreshold-1)
	}

	// Counter resets: the next cycle runs partial again until the threshold.
	for i := 1; i < DefaultFullRefreshThreshold; i++ {
		s.service(RequestFull)
	}
	if surface.fulls != 1 {
		t.Fatalf("fulls = %d in second cycle before threshold, want still 1", surface.fulls)
	}
	s.service(RequestFull)
	if surface.fulls != 2 {
		t.Fatalf("fulls = %d after second threshold, want 2", surface.fulls)
	}
}

func TestFullRequestPartialCoversWholePanel(t *testing.T) {
	surface := newFakeSurface()
	u := New(surface, nil)
	u.Scheduler().service(RequestFull)

	w, h := surface.Size()
	if len(surface.partials) != 1 {
		t.Fatalf("partials = %d, want 1", len(surface.partials))
	}
	if got := surface.partials[0]; got != (render.Region{Width: w, Height: h}) {
		t.Fatalf("partial window = %+v, want full-panel rectangle", got)
	}
}

func TestMenuRequestUsesOverlayWindow(t *testing.T) {
	surface := newFakeSurface()
	u := New(surface, nil)
	u.Scheduler().service(RequestMenu)

	w, h := surface.Size()
	want := OverlayRegion(w, h)
	if len(surface.partials) != 1 {
		t.Fatalf("partials = %d, want 1", len(surface.partials))
	}
	if surface.partials[0] != want {
		t.Fatalf("partial window = %+v, want overlay %+v", surface.partials[0], want)
	}
}

func TestInteractableRequestUsesLastRegion(t *testing.T) {
	surface := newFakeSurface()
	u := New(surface, nil)
	p := NewPage("test")
	el := newFakeElement("a")
	p.Add(el, true)
	p.ResetFocus()
	u.PushPage(p)

	want := render.Region{X: 16, Y: 32, Width: 64, Height: 24}
	el.StoreRegion(want)
	surface.partials = nil
	surface.commits = 0

	u.Scheduler().service(RequestInteractable)
	if len(surface.partials) != 1 {
		t.Fatalf("partials = %d, want 1", len(surface.partials))
	}
	if surface.partials[0] != want {
		t.Fatalf("partial window = %+v, want %+v", surface.partials[0], want)
	}
	if surface.commits != 1 {
		t.Fatalf("commits = %d, want 1", surface.commits)
	}
}

func TestInteractableRequestWithoutRegionIsNoOp(t *testing.T) {
	surface := newFakeSurface()
	u := New(surface, nil)
	p := NewPage("test")
	p.Add(newFakeElement("a"), true)
	p.ResetFocus()
	u.PushPage(p)
	surface.commits = 0

	// The selected element never drew, so there is no window to refresh.
	u.Scheduler().service(RequestInteractable)
	if surface.commits != 0 {
		t.Fatalf("commits = %d for element without a region, want 0", surface.commits)
	}
}

func TestInteractableRequestWithoutPageIsNoOp(t *testing.T) {
	surface := newFakeSurface()
	u := New(surface, nil)
	surface.commits = 0
	u.Scheduler().service(RequestInteractable)
	if surface.commits != 0 {
		t.Fatalf("commits = %d on empty stack, want 0", surface.commits)
	}
}

func TestPaintRedrawsOnlyActiveElementWhenConfigured(t *testing.T) {
	surface := newFakeSurface()
	u := New(surface, nil)
	p := NewPage("test")
	p.RenderUnfocused = false
	pageDraws := 0
	p.DrawContent = func(d render.Drawer, page *Page) { pageDraws++ }
	el := newFakeElement("a")
	p.Add(el, true)
	u.PushPage(p)
	p.Activate("a")
	el.StoreRegion(render.Region{X: 0, Y: 0, Width: 40, Height: 16})

	u.Scheduler().service(RequestInteractable)
	if pageDraws != 0 {
		t.Fatalf("page body drawn %d times with an active element, want 0", pageDraws)
	}
	if el.draws != 1 {
		t.Fatalf("active element drawn %d times, want 1", el.draws)
	}
}

func TestPaintReResolvesContentAtServiceTime(t *testing.T) {
	surface := newFakeSurface()
	u := New(surface, nil)
	p := NewPage("test")
	pageDraws := 0
	p.DrawContent = func(d render.Drawer, page *Page) { pageDraws++ }
	u.PushPage(p)
	u.Menu().Open()

	// A stale full-kind request still paints the overlay because the flag is
	// read at paint time, not at request time.
	u.Scheduler().service(RequestFull)
	if pageDraws != 1 {
		t.Fatalf("page drawn %d times, want 1", pageDraws)
	}
	if !u.MenuActive() {
		t.Fatalf("overlay flag lost")
	}
}

func TestRunServicesRequests(t *testing.T) {
	surface := newFakeSurface()
	u := New(surface, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		u.Run(ctx)
		close(done)
	}()

	u.Scheduler().Request(RequestFull)
	select {
	case <-surface.committed:
	case <-time.After(2 * time.Second):
		t.Fatalf("request not serviced")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("run loop did not stop on cancel")
	}
}
