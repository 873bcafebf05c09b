// Package theme holds the display theme and its single persisted preference.
package theme

import (
	"encoding/json"
	"errors"
	"image/color"
	"io/fs"
	"os"
	"sync"
)

type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// prefs is the on-disk shape. display_theme is the only key in scope.
type prefs struct {
	DisplayTheme Theme `json:"display_theme"`
}

// Controller resolves drawing colors for the current theme and persists the
// selection. Safe for concurrent readers; writes come from the input side only.
type Controller struct {
	mu    sync.RWMutex
	theme Theme
	path  string
}

// Load reads the theme preference from path. A missing or unreadable file
// falls back to Light; the path is remembered for later writes. An empty path
// disables persistence.
func Load(path string) *Controller {
	c := &Controller{theme: Light, path: path}
	if path == "" {
		return c
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var p prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return c
	}
	if p.DisplayTheme == Dark {
		c.theme = Dark
	}
	return c
}

func (c *Controller) Theme() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme
}

// SetTheme switches the theme and writes the preference back.
func (c *Controller) SetTheme(t Theme) error {
	c.mu.Lock()
	c.theme = t
	path := c.path
	c.mu.Unlock()

	if path == "" {
		return nil
	}
	data, err := json.Marshal(prefs{DisplayTheme: t})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Toggle flips between Light and Dark.
func (c *Controller) Toggle() error {
	if c.Theme() == Light {
		return c.SetTheme(Dark)
	}
	return c.SetTheme(Light)
}

// Ink is the drawing color for the current theme: black on Light, white on
// Dark. The inverted flag swaps ink and paper for a single element.
func (c *Controller) Ink(inverted bool) color.Color {
	if (c.Theme() == Light) != inverted {
		return color.Gray{Y: 0x00}
	}
	return color.Gray{Y: 0xFF}
}

// Paper is the background color for the current theme.
func (c *Controller) Paper(inverted bool) color.Color {
	if (c.Theme() == Light) != inverted {
		return color.Gray{Y: 0xFF}
	}
	return color.Gray{Y: 0x00}
}

// Exists reports whether a preference file is present, for callers that want
// to distinguish first boot from a saved choice.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
