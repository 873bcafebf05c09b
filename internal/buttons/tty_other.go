//go:build !linux

package buttons

import (
	"context"
	"errors"
)

// TTYButtons is only implemented for Linux consoles; other platforms get a
// driver that fails to start so callers fall back to NoopButtons.
type TTYButtons struct{ ch chan Event }

func NewTTYButtons() *TTYButtons { return &TTYButtons{ch: make(chan Event)} }

func (t *TTYButtons) Start(ctx context.Context) error {
	return errors.New("tty buttons unsupported on this platform")
}
func (t *TTYButtons) Stop() error          { return nil }
func (t *TTYButtons) Events() <-chan Event { return t.ch }
