package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/math/fixed"

	"github.com/eink-works/gxui/internal/theme"
)

// 8x8 fill tiles, MSB-first per row.
var patternTiles = [...][8]byte{
	PatternSolid:           {0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	PatternStripes:         {0xF0, 0xF0, 0xF0, 0xF0, 0x0F, 0x0F, 0x0F, 0x0F},
	PatternDots:            {0x88, 0x44, 0x22, 0x11, 0x11, 0x22, 0x44, 0x88},
	PatternCheckerboard:    {0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55},
	PatternDiagonalStripes: {0xC0, 0x30, 0x0C, 0x03, 0xC0, 0x30, 0x0C, 0x03},
	PatternCrossHatch:      {0xFF, 0x92, 0x92, 0x92, 0xFF, 0x92, 0x92, 0xFF},
	PatternSparseDots:      {0x88, 0x00, 0x22, 0x00, 0x88, 0x00, 0x22, 0x00},
	PatternVerySparseDots:  {0x88, 0x00, 0x00, 0x00, 0x88, 0x00, 0x00, 0x00},
}

const defaultFontSize = 14

type faceKey struct {
	size int
	bold bool
}

// Painter implements Drawer on an offscreen RGBA canvas. The framebuffer
// surface embeds it; tests can use it standalone via NewPainter.
type Painter struct {
	canvas  *image.RGBA
	themes  *theme.Controller
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]font.Face
}

// NewPainter builds a painter over a fresh canvas of the given size. Font
// parse failures degrade to the builtin bitmap face.
func NewPainter(width, height int, th *theme.Controller) *Painter {
	p := &Painter{
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		themes: th,
		faces:  make(map[faceKey]font.Face),
	}
	if f, err := truetype.Parse(gomono.TTF); err == nil {
		p.regular = f
	}
	if f, err := truetype.Parse(gomonobold.TTF); err == nil {
		p.bold = f
	}
	return p
}

// Canvas exposes the backing image for the surface blit step.
func (p *Painter) Canvas() *image.RGBA { return p.canvas }

func (p *Painter) Size() (int, int) {
	b := p.canvas.Bounds()
	return b.Dx(), b.Dy()
}

func (p *Painter) Ink(inverted bool) color.Color   { return p.themes.Ink(inverted) }
func (p *Painter) Paper(inverted bool) color.Color { return p.themes.Paper(inverted) }

func (p *Painter) FillBackground() {
	draw.Draw(p.canvas, p.canvas.Bounds(), &image.Uniform{C: p.themes.Paper(false)}, image.Point{}, draw.Src)
}

func (p *Painter) FillRect(x, y, w, h int, c color.Color) {
	draw.Draw(p.canvas, image.Rect(x, y, x+w, y+h), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func (p *Painter) DrawLine(x0, y0, x1, y1 int, c color.Color) {
	// Bresenham; lines here are axis-aligned underlines and separators but the
	// general form costs nothing.
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		p.canvas.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (p *Painter) DrawRect(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	p.DrawLine(x, y, x+w-1, y, c)
	p.DrawLine(x, y+h-1, x+w-1, y+h-1, c)
	p.DrawLine(x, y, x, y+h-1, c)
	p.DrawLine(x+w-1, y, x+w-1, y+h-1, c)
}

func (p *Painter) DrawRoundRect(x, y, w, h, radius int, c color.Color) {
	radius = clampRadius(radius, w, h)
	// Straight edges.
	p.DrawLine(x+radius, y, x+w-radius-1, y, c)
	p.DrawLine(x+radius, y+h-1, x+w-radius-1, y+h-1, c)
	p.DrawLine(x, y+radius, x, y+h-radius-1, c)
	p.DrawLine(x+w-1, y+radius, x+w-1, y+h-radius-1, c)
	// Corner arcs via midpoint circle.
	drawCircleQuadrants(p.canvas, x+radius, y+radius, radius, c, 2)
	drawCircleQuadrants(p.canvas, x+w-radius-1, y+radius, radius, c, 1)
	drawCircleQuadrants(p.canvas, x+radius, y+h-radius-1, radius, c, 3)
	drawCircleQuadrants(p.canvas, x+w-radius-1, y+h-radius-1, radius, c, 4)
}

func (p *Painter) FillRoundRect(x, y, w, h, radius int, c color.Color) {
	radius = clampRadius(radius, w, h)
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if insideRounded(px, py, x, y, w, h, radius) {
				p.canvas.Set(px, py, c)
			}
		}
	}
}

func (p *Painter) DrawMultiRoundRectBorder(x, y, w, h int, c color.Color, loops, gap, gapMulti, radius int) {
	for i := 1; i <= loops; i++ {
		p.DrawRoundRect(x+i*gap, y+i*gap, w-i*gap*gapMulti, h-i*gap*gapMulti, radius, c)
	}
}

func (p *Painter) DrawPattern(pat Pattern, x, y, w, h int, c color.Color) {
	tile := patternTiles[pat]
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if tile[i%8]&(0x80>>(j%8)) != 0 {
				p.canvas.Set(x+j, y+i, c)
			}
		}
	}
}

func (p *Painter) DrawPatternRounded(pat Pattern, x, y, w, h, radius int, c color.Color) {
	radius = clampRadius(radius, w, h)
	tile := patternTiles[pat]
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if !insideRounded(px, py, x, y, w, h, radius) {
				continue
			}
			if tile[(py-y)%8]&(0x80>>((px-x)%8)) != 0 {
				p.canvas.Set(px, py, c)
			}
		}
	}
}

func (p *Painter) face(style TextStyle) font.Face {
	size := style.Size
	if size <= 0 {
		size = defaultFontSize
	}
	src := p.regular
	if style.Bold && p.bold != nil {
		src = p.bold
	}
	if src == nil {
		return basicfont.Face7x13
	}
	key := faceKey{size: size, bold: style.Bold && p.bold != nil}
	if f, ok := p.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(src, &truetype.Options{Size: float64(size), DPI: 96, Hinting: font.HintingFull})
	p.faces[key] = f
	return f
}

func (p *Painter) MeasureText(text string, style TextStyle) TextMetrics {
	face := p.face(style)
	metrics := face.Metrics()
	d := &font.Drawer{Face: face}
	return TextMetrics{
		Width:      d.MeasureString(text).Ceil(),
		Height:     metrics.Ascent.Ceil() + metrics.Descent.Ceil(),
		Ascent:     metrics.Ascent.Ceil(),
		Descent:    metrics.Descent.Ceil(),
		LineHeight: metrics.Height.Ceil(),
	}
}

func (p *Painter) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	tm := p.MeasureText(text, style)
	c := style.Color
	if c == nil {
		c = p.themes.Ink(false)
	}
	switch style.Align {
	case TextAlignCenter:
		x -= tm.Width / 2
	case TextAlignRight:
		x -= tm.Width
	}
	d := &font.Drawer{
		Dst:  p.canvas,
		Src:  &image.Uniform{C: c},
		Face: p.face(style),
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return tm
}

// DrawBitmap scales a 1-bit bitmap to the target size. Each target pixel is
// set when the majority of its source region is set, which keeps thin strokes
// readable when shrinking icons.
func (p *Painter) DrawBitmap(bm Bitmap, x, y, w, h int, c color.Color) {
	if bm.Width <= 0 || bm.Height <= 0 || w <= 0 || h <= 0 {
		return
	}
	scaleX := float64(bm.Width) / float64(w)
	scaleY := float64(bm.Height) / float64(h)
	for ty := 0; ty < h; ty++ {
		syStart := int(float64(ty) * scaleY)
		syEnd := int(float64(ty+1) * scaleY)
		if syEnd > bm.Height {
			syEnd = bm.Height
		}
		if syEnd <= syStart {
			syEnd = syStart + 1
		}
		for tx := 0; tx < w; tx++ {
			sxStart := int(float64(tx) * scaleX)
			sxEnd := int(float64(tx+1) * scaleX)
			if sxEnd > bm.Width {
				sxEnd = bm.Width
			}
			if sxEnd <= sxStart {
				sxEnd = sxStart + 1
			}
			region := (syEnd - syStart) * (sxEnd - sxStart)
			count := 0
			for sy := syStart; sy < syEnd; sy++ {
				for sx := sxStart; sx < sxEnd; sx++ {
					if bm.At(sx, sy) {
						count++
					}
				}
			}
			if count > region/2 {
				p.canvas.Set(x+tx, y+ty, c)
			}
		}
	}
}

func (p *Painter) DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode) {
	if img == nil || rect.Empty() {
		return
	}
	src := img.Bounds()
	dst := rect
	if mode != ScaleModeStretch {
		sw, sh := src.Dx(), src.Dy()
		scaleW := float64(rect.Dx()) / float64(sw)
		scaleH := float64(rect.Dy()) / float64(sh)
		scale := scaleW
		if mode == ScaleModeFit && scaleH < scale {
			scale = scaleH
		}
		if mode == ScaleModeFill && scaleH > scale {
			scale = scaleH
		}
		w := int(float64(sw) * scale)
		h := int(float64(sh) * scale)
		cx := rect.Min.X + (rect.Dx()-w)/2
		cy := rect.Min.Y + (rect.Dy()-h)/2
		dst = image.Rect(cx, cy, cx+w, cy+h)
	}
	xdraw.NearestNeighbor.Scale(p.canvas, dst, img, src, xdraw.Over, nil)
}

func clampRadius(radius, w, h int) int {
	if radius < 0 {
		radius = 0
	}
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	return radius
}

// insideRounded reports whether (px, py) lies inside the rounded rectangle.
func insideRounded(px, py, x, y, w, h, radius int) bool {
	if radius <= 0 {
		return true
	}
	rSq := radius * radius
	if px < x+radius && py < y+radius {
		dx, dy := x+radius-px, y+radius-py
		return dx*dx+dy*dy <= rSq
	}
	if px >= x+w-radius && py < y+radius {
		dx, dy := px-(x+w-radius-1), y+radius-py
		return dx*dx+dy*dy <= rSq
	}
	if px < x+radius && py >= y+h-radius {
		dx, dy := x+radius-px, py-(y+h-radius-1)
		return dx*dx+dy*dy <= rSq
	}
	if px >= x+w-radius && py >= y+h-radius {
		dx, dy := px-(x+w-radius-1), py-(y+h-radius-1)
		return dx*dx+dy*dy <= rSq
	}
	return true
}

// drawCircleQuadrants draws one quadrant of a circle outline.
// Quadrants: 1=top-right, 2=top-left, 3=bottom-left, 4=bottom-right.
func drawCircleQuadrants(dst draw.Image, cx, cy, r int, c color.Color, quadrant int) {
	x, y := r, 0
	err := 1 - r
	for x >= y {
		points := [8][2]int{
			{cx + x, cy - y}, {cx + y, cy - x}, // 1
			{cx - y, cy - x}, {cx - x, cy - y}, // 2
			{cx - x, cy + y}, {cx - y, cy + x}, // 3
			{cx + y, cy + x}, {cx + x, cy + y}, // 4
		}
		start := (quadrant - 1) * 2
		dst.Set(points[start][0], points[start][1], c)
		dst.Set(points[start+1][0], points[start+1][1], c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
