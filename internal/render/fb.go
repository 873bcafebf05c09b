package render

import (
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"

	"github.com/eink-works/gxui/internal/theme"
)

// Default logical panel size, matching the 7.5" target panel.
const (
	PanelWidth  = 800
	PanelHeight = 480
)

// Residue level left behind by a partial refresh where ink was cleared. Only a
// full refresh removes it.
const ghostGray = 0xE0

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// FBSurface drives a Linux framebuffer as a stand-in for an e-paper panel. It
// paints into an offscreen logical canvas and pushes only the configured
// window to the device on commit. Partial refreshes leave simulated ghosting
// where ink was cleared; a full refresh wipes it.
type FBSurface struct {
	*Painter

	dev    draw.Image
	closer interface{ Close() }
	prev   *image.RGBA

	window  image.Rectangle
	partial bool

	Logger logger
}

// OpenFB opens the framebuffer device and prepares the logical canvas.
func OpenFB(device string, th *theme.Controller) (*FBSurface, error) {
	dev, err := fb.Open(device)
	if err != nil {
		return nil, err
	}
	s := NewFBSurfaceOn(dev, th)
	s.closer = dev
	return s, nil
}

// NewFBSurfaceOn builds the surface over any draw.Image target, which keeps
// the window and ghosting logic testable without a real device.
func NewFBSurfaceOn(dev draw.Image, th *theme.Controller) *FBSurface {
	s := &FBSurface{
		Painter: NewPainter(PanelWidth, PanelHeight, th),
		dev:     dev,
		prev:    image.NewRGBA(image.Rect(0, 0, PanelWidth, PanelHeight)),
	}
	s.SetFullWindow()
	return s
}

func (s *FBSurface) Close() error {
	if s.closer != nil {
		s.closer.Close()
	}
	return nil
}

func (s *FBSurface) SetPartialWindow(x, y, w, h int) {
	s.window = image.Rect(x, y, x+w, y+h).Intersect(s.Canvas().Bounds())
	s.partial = true
}

func (s *FBSurface) SetFullWindow() {
	s.window = s.Canvas().Bounds()
	s.partial = false
}

// Commit runs the paint callback against the canvas and refreshes the
// configured window on the device.
func (s *FBSurface) Commit(paint func(Drawer)) error {
	if paint != nil {
		paint(s)
	}
	if s.partial {
		s.refreshPartial()
	} else {
		s.refreshFull()
	}
	if s.Logger != nil {
		s.Logger.Infof("fb", "commit done, partial=%v window=%v", s.partial, s.window)
	}
	return nil
}

func (s *FBSurface) Clear(c color.Color) {
	draw.Draw(s.Canvas(), s.Canvas().Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	s.refreshFull()
}

// refreshFull pushes the whole canvas and forgets any ghosting.
func (s *FBSurface) refreshFull() {
	canvas := s.Canvas()
	draw.Draw(s.prev, s.prev.Bounds(), canvas, canvas.Bounds().Min, draw.Src)
	s.blit(canvas.Bounds(), canvas)
}

// refreshPartial pushes only the window. Pixels inside the window that went
// from ink to paper keep a light residue, mimicking the panel's fast-update
// artifacts.
func (s *FBSurface) refreshPartial() {
	canvas := s.Canvas()
	out := image.NewRGBA(s.window)
	for y := s.window.Min.Y; y < s.window.Max.Y; y++ {
		for x := s.window.Min.X; x < s.window.Max.X; x++ {
			c := canvas.RGBAAt(x, y)
			old := s.prev.RGBAAt(x, y)
			if luma(old) < 0x80 && luma(c) >= 0x80 {
				c = color.RGBA{R: ghostGray, G: ghostGray, B: ghostGray, A: 0xFF}
			}
			out.SetRGBA(x, y, c)
		}
	}
	draw.Draw(s.prev, s.window, canvas, s.window.Min, draw.Src)
	s.blit(s.window, out)
}

// blit maps a logical-canvas rectangle onto the device, nearest-neighbor
// sampling when the device resolution differs from the panel size.
func (s *FBSurface) blit(rect image.Rectangle, src image.Image) {
	bounds := s.dev.Bounds()
	cw, ch := s.Size()
	dst := image.Rect(
		bounds.Min.X+rect.Min.X*bounds.Dx()/cw,
		bounds.Min.Y+rect.Min.Y*bounds.Dy()/ch,
		bounds.Min.X+rect.Max.X*bounds.Dx()/cw,
		bounds.Min.Y+rect.Max.Y*bounds.Dy()/ch,
	)
	for dy := dst.Min.Y; dy < dst.Max.Y; dy++ {
		sy := (dy - bounds.Min.Y) * ch / bounds.Dy()
		for dx := dst.Min.X; dx < dst.Max.X; dx++ {
			sx := (dx - bounds.Min.X) * cw / bounds.Dx()
			s.dev.Set(dx, dy, src.At(sx, sy))
		}
	}
}

func luma(c color.RGBA) int {
	return (int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000
}
