// Package system wraps the console ioctls needed to take over a Linux
// framebuffer display cleanly.
package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// SetGraphicsMode switches the active console to graphics mode to suppress
// the hardware cursor and console output over the framebuffer.
func SetGraphicsMode() error {
	return setConsoleMode(kdGraphics, "KD_GRAPHICS")
}

// RestoreTextMode restores the console to text mode so the cursor and normal
// console return.
func RestoreTextMode() error {
	return setConsoleMode(kdText, "KD_TEXT")
}

func setConsoleMode(mode int, name string) error {
	// Prefer /dev/tty (active VT), fall back to /dev/tty0.
	paths := []string{"/dev/tty", "/dev/tty0"}
	var lastErr error
	for _, p := range paths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("%s on %s: %w", name, p, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("%s failed: unknown error", name)
}

// HideCursor and ShowCursor toggle the text cursor escape sequence;
// best-effort on consoles that honor it.
func HideCursor() error {
	_, err := os.Stdout.WriteString("\x1b[?25l")
	return err
}

func ShowCursor() error {
	_, err := os.Stdout.WriteString("\x1b[?25h")
	return err
}

// Logging wrappers

func SetGraphicsModeWithLog(l logger) error {
	err := SetGraphicsMode()
	if l != nil {
		if err != nil {
			l.Errorf("tty", "KD_GRAPHICS failed: %v", err)
		} else {
			l.Infof("tty", "KD_GRAPHICS set")
		}
	}
	return err
}

func RestoreTextModeWithLog(l logger) error {
	err := RestoreTextMode()
	if l != nil {
		if err != nil {
			l.Errorf("tty", "KD_TEXT failed: %v", err)
		} else {
			l.Infof("tty", "KD_TEXT set")
		}
	}
	return err
}

func HideCursorWithLog(l logger) error {
	err := HideCursor()
	if err != nil && l != nil {
		l.Errorf("tty", "hide cursor failed: %v", err)
	}
	return err
}

func ShowCursorWithLog(l logger) error {
	err := ShowCursor()
	if err != nil && l != nil {
		l.Errorf("tty", "show cursor failed: %v", err)
	}
	return err
}
