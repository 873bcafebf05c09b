package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileDefaultsToLight(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.json"))
	if got := c.Theme(); got != Light {
		t.Fatalf("theme = %s, want light", got)
	}
}

func TestLoadCorruptFileDefaultsToLight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := Load(path).Theme(); got != Light {
		t.Fatalf("theme = %s, want light", got)
	}
}

func TestSetThemePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	c := Load(path)
	if err := c.SetTheme(Dark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if !Exists(path) {
		t.Fatalf("preference file not written")
	}

	if got := Load(path).Theme(); got != Dark {
		t.Fatalf("reloaded theme = %s, want dark", got)
	}
}

func TestToggle(t *testing.T) {
	c := Load("")
	if err := c.Toggle(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := c.Theme(); got != Dark {
		t.Fatalf("theme = %s after first toggle, want dark", got)
	}
	if err := c.Toggle(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := c.Theme(); got != Light {
		t.Fatalf("theme = %s after second toggle, want light", got)
	}
}

func TestInkAndPaper(t *testing.T) {
	c := Load("")

	black := color.Gray{Y: 0x00}
	white := color.Gray{Y: 0xFF}

	if c.Ink(false) != black || c.Paper(false) != white {
		t.Fatalf("light theme: ink=%v paper=%v", c.Ink(false), c.Paper(false))
	}
	// Inversion swaps ink and paper for a single element.
	if c.Ink(true) != white || c.Paper(true) != black {
		t.Fatalf("light theme inverted: ink=%v paper=%v", c.Ink(true), c.Paper(true))
	}

	if err := c.SetTheme(Dark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if c.Ink(false) != white || c.Paper(false) != black {
		t.Fatalf("dark theme: ink=%v paper=%v", c.Ink(false), c.Paper(false))
	}
	if c.Ink(true) != black || c.Paper(true) != white {
		t.Fatalf("dark theme inverted: ink=%v paper=%v", c.Ink(true), c.Paper(true))
	}
}
