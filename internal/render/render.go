package render

import (
	"image"
	"image/color"
)

// Region is the mutable drawing window handed to renderers. A renderer that
// receives a zero-size Region must measure its content and write the final
// rectangle back before returning; the scheduler reuses it to size partial
// refresh windows.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the region has no drawable area.
func (r Region) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// FromRect builds a Region from an image.Rectangle.
func FromRect(rect image.Rectangle) Region {
	return Region{X: rect.Min.X, Y: rect.Min.Y, Width: rect.Dx(), Height: rect.Dy()}
}

// Bitmap is a 1-bit MSB-first bitmap, row-padded to whole bytes. This is the
// format the icon conversion tooling emits.
type Bitmap struct {
	Width  int
	Height int
	Data   []byte
}

// At reports whether the pixel at (x, y) is set.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	idx := y*((b.Width+7)/8) + x/8
	if idx >= len(b.Data) {
		return false
	}
	return b.Data[idx]&(0x80>>(x%8)) != 0
}

// Pattern selects one of the built-in 8x8 fill tiles.
type Pattern int

const (
	PatternSolid Pattern = iota
	PatternStripes
	PatternDots
	PatternCheckerboard
	PatternDiagonalStripes
	PatternCrossHatch
	PatternSparseDots
	PatternVerySparseDots
)

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text. DrawText anchors Y at the text
// baseline; Align controls how X is interpreted.
type TextStyle struct {
	Color color.Color
	Size  int // font size in points; 0 means surface default
	Bold  bool
	Align TextAlign
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

type ScaleMode int

const (
	ScaleModeFit ScaleMode = iota
	ScaleModeFill
	ScaleModeStretch
)

// Drawer is the abstraction the surface hands to elements so they can draw
// primitives without seeing the panel or the refresh machinery.
type Drawer interface {
	// Size returns the logical panel size in pixels.
	Size() (width int, height int)

	// Ink is the theme drawing color, Paper the theme background color. Both
	// honor the element-level inversion flag passed by the caller.
	Ink(inverted bool) color.Color
	Paper(inverted bool) color.Color

	FillBackground()
	FillRect(x, y, w, h int, c color.Color)
	DrawLine(x0, y0, x1, y1 int, c color.Color)
	DrawRect(x, y, w, h int, c color.Color)
	DrawRoundRect(x, y, w, h, radius int, c color.Color)
	FillRoundRect(x, y, w, h, radius int, c color.Color)

	// DrawMultiRoundRectBorder draws loops concentric round-rect borders,
	// each offset by gap and shrunk by gap*gapMulti.
	DrawMultiRoundRectBorder(x, y, w, h int, c color.Color, loops, gap, gapMulti, radius int)

	DrawPattern(p Pattern, x, y, w, h int, c color.Color)
	// DrawPatternRounded fills the area with the pattern, clipped to rounded
	// corners of the given radius.
	DrawPatternRounded(p Pattern, x, y, w, h, radius int, c color.Color)

	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	// DrawBitmap blits a 1-bit bitmap scaled to w x h using area-majority
	// sampling, drawing set pixels in color c.
	DrawBitmap(bm Bitmap, x, y, w, h int, c color.Color)
	DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode)
}

// Surface is the refresh-side capability consumed by the render scheduler. A
// commit paints through the Drawer and pushes only the configured window to
// the panel.
type Surface interface {
	Size() (width int, height int)

	// SetPartialWindow restricts the next commit to the given rectangle. Fast
	// on real panels but accumulates ghosting.
	SetPartialWindow(x, y, w, h int)
	// SetFullWindow makes the next commit refresh the whole panel, clearing
	// accumulated ghosting. Slow.
	SetFullWindow()

	// Commit invokes paint against the surface's Drawer and then performs the
	// physical refresh of the configured window.
	Commit(paint func(Drawer)) error

	Clear(c color.Color)
}

// Noop stubs for tests and headless use.

type NoopDrawer struct{}

func (NoopDrawer) Size() (int, int)                           { return 800, 480 }
func (NoopDrawer) Ink(bool) color.Color                       { return color.Black }
func (NoopDrawer) Paper(bool) color.Color                     { return color.White }
func (NoopDrawer) FillBackground()                            {}
func (NoopDrawer) FillRect(x, y, w, h int, c color.Color)     {}
func (NoopDrawer) DrawLine(x0, y0, x1, y1 int, c color.Color) {}
func (NoopDrawer) DrawRect(x, y, w, h int, c color.Color)     {}
func (NoopDrawer) DrawRoundRect(x, y, w, h, radius int, c color.Color) {}
func (NoopDrawer) FillRoundRect(x, y, w, h, radius int, c color.Color) {}
func (NoopDrawer) DrawMultiRoundRectBorder(x, y, w, h int, c color.Color, loops, gap, gapMulti, radius int) {
}
func (NoopDrawer) DrawPattern(p Pattern, x, y, w, h int, c color.Color)                {}
func (NoopDrawer) DrawPatternRounded(p Pattern, x, y, w, h, radius int, c color.Color) {}
func (NoopDrawer) MeasureText(text string, style TextStyle) TextMetrics {
	return TextMetrics{Width: 8 * len(text), Height: 16, Ascent: 12, Descent: 4, LineHeight: 16}
}
func (d NoopDrawer) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	return d.MeasureText(text, style)
}
func (NoopDrawer) DrawBitmap(bm Bitmap, x, y, w, h int, c color.Color)                   {}
func (NoopDrawer) DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode) {}

type NoopSurface struct{ NoopDrawer }

func (NoopSurface) SetPartialWindow(x, y, w, h int) {}
func (NoopSurface) SetFullWindow()                  {}
func (NoopSurface) Commit(paint func(Drawer)) error {
	if paint != nil {
		paint(NoopDrawer{})
	}
	return nil
}
func (NoopSurface) Clear(c color.Color) {}
