package buttons

import (
	"context"
	"os"

	"golang.org/x/sys/unix"
)

// TTYButtons emulates the button pad on a terminal: arrow keys (or w/a/s/d),
// enter or space for select, m or tab for the menu, q for exit. It puts stdin
// into raw mode for the lifetime of the driver.
type TTYButtons struct {
	ch    chan Event
	fd    int
	saved *unix.Termios
}

func NewTTYButtons() *TTYButtons {
	return &TTYButtons{ch: make(chan Event, 4), fd: int(os.Stdin.Fd())}
}

func (t *TTYButtons) Start(ctx context.Context) error {
	termios, err := unix.IoctlGetTermios(t.fd, unix.TCGETS)
	if err != nil {
		return err
	}
	saved := *termios
	t.saved = &saved

	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, termios); err != nil {
		return err
	}

	go t.readLoop(ctx)
	return nil
}

func (t *TTYButtons) Stop() error {
	if t.saved != nil {
		_ = unix.IoctlSetTermios(t.fd, unix.TCSETS, t.saved)
	}
	return nil
}

func (t *TTYButtons) Events() <-chan Event { return t.ch }

func (t *TTYButtons) readLoop(ctx context.Context) {
	defer close(t.ch)
	buf := make([]byte, 3)
	for {
		if ctx.Err() != nil {
			return
		}
		n, err := os.Stdin.Read(buf[:1])
		if err != nil || n == 0 {
			return
		}
		var ev Event
		switch buf[0] {
		case 0x1b: // escape sequence: ESC [ A..D
			if n, _ := os.Stdin.Read(buf[1:3]); n == 2 && buf[1] == '[' {
				switch buf[2] {
				case 'A':
					ev = Up
				case 'B':
					ev = Down
				case 'C':
					ev = Right
				case 'D':
					ev = Left
				}
			}
		case 'w', 'W':
			ev = Up
		case 's', 'S':
			ev = Down
		case 'a', 'A':
			ev = Left
		case 'd', 'D':
			ev = Right
		case '\r', '\n', ' ':
			ev = Select
		case 'm', 'M', '\t':
			ev = Menu
		case 'q', 'Q', 0x03:
			ev = Exit
		}
		if ev == "" {
			continue
		}
		select {
		case t.ch <- ev:
		case <-ctx.Done():
			return
		}
	}
}
