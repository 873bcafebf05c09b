package app

import (
	"context"
	"testing"
	"time"

	"github.com/eink-works/gxui/internal/buttons"
	"github.com/eink-works/gxui/internal/render"
	"github.com/eink-works/gxui/internal/ui"
)

type scriptedButtons struct {
	ch chan buttons.Event
}

func newScriptedButtons(events ...buttons.Event) *scriptedButtons {
	s := &scriptedButtons{ch: make(chan buttons.Event, len(events))}
	for _, ev := range events {
		s.ch <- ev
	}
	return s
}

func (s *scriptedButtons) Start(ctx context.Context) error { return nil }
func (s *scriptedButtons) Stop() error                     { return nil }
func (s *scriptedButtons) Events() <-chan buttons.Event    { return s.ch }

type elem struct {
	ui.Core
}

func (e *elem) Draw(d render.Drawer, rg *render.Region) {
	if rg.Width == 0 || rg.Height == 0 {
		rg.Width, rg.Height = 32, 16
	}
}

func TestStartDispatchesButtonEventsAndExits(t *testing.T) {
	u := ui.New(render.NoopSurface{}, nil)
	p := ui.NewPage("test")
	first := &elem{Core: ui.NewCore("first")}
	second := &elem{Core: ui.NewCore("second")}
	p.Add(first, true)
	p.Add(second, true)
	p.ResetFocus()
	u.PushPage(p)

	a := New(u, newScriptedButtons(buttons.Down, buttons.Exit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	if !second.Selected() {
		t.Fatalf("down event did not move the page selection")
	}
}

func TestMenuButtonTogglesOverlay(t *testing.T) {
	u := ui.New(render.NoopSurface{}, nil)
	u.PushPage(ui.NewPage("test"))

	a := New(u, newScriptedButtons(buttons.Menu, buttons.Exit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	if !u.MenuActive() {
		t.Fatalf("menu button did not open the overlay")
	}
}

func TestExitIsIdempotent(t *testing.T) {
	a := New(ui.New(render.NoopSurface{}, nil), nil)
	a.Exit(nil)
	a.Exit(nil) // second call must not block or panic

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Start(ctx); err != nil {
		t.Fatalf("start after pre-queued exit: %v", err)
	}
}
