// Package buttons delivers discrete input events from physical or emulated
// controls.
package buttons

import "context"

type Event string

const (
	Up     Event = "up"
	Down   Event = "down"
	Left   Event = "left"
	Right  Event = "right"
	Select Event = "select"
	// Menu toggles the overlay menu; it is handled by the app, not routed
	// through focus dispatch.
	Menu Event = "menu"
	// Exit is a driver-level request to quit the process; it is not part of
	// the UI vocabulary and is handled by the app.
	Exit Event = "exit"
)

type Buttons interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan Event
}

type NoopButtons struct{ ch chan Event }

func NewNoopButtons() *NoopButtons { return &NoopButtons{ch: make(chan Event)} }

func (n *NoopButtons) Start(ctx context.Context) error { return nil }
func (n *NoopButtons) Stop() error                     { close(n.ch); return nil }
func (n *NoopButtons) Events() <-chan Event            { return n.ch }
