package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/eink-works/gxui/internal/theme"
)

func newTestSurface() (*FBSurface, *image.RGBA) {
	dev := image.NewRGBA(image.Rect(0, 0, PanelWidth, PanelHeight))
	return NewFBSurfaceOn(dev, theme.Load("")), dev
}

func TestPartialRefreshLeavesGhosting(t *testing.T) {
	s, dev := newTestSurface()
	ink := color.Gray{Y: 0x00}

	// Full refresh with an inked square.
	s.SetFullWindow()
	if err := s.Commit(func(d Drawer) {
		d.FillBackground()
		d.FillRect(0, 0, 8, 8, ink)
	}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got := dev.RGBAAt(4, 4); got.R != 0x00 {
		t.Fatalf("inked pixel = %v, want black", got)
	}

	// Partial refresh clearing the square: the residue stays.
	s.SetPartialWindow(0, 0, 8, 8)
	if err := s.Commit(func(d Drawer) { d.FillBackground() }); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got := dev.RGBAAt(4, 4); got.R != ghostGray {
		t.Fatalf("cleared pixel = %v, want ghost residue %#x", got, ghostGray)
	}

	// A full refresh wipes the residue.
	s.SetFullWindow()
	if err := s.Commit(func(d Drawer) { d.FillBackground() }); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got := dev.RGBAAt(4, 4); got.R != 0xFF {
		t.Fatalf("pixel after full refresh = %v, want white", got)
	}
}

func TestPartialWindowLimitsDeviceWrites(t *testing.T) {
	s, dev := newTestSurface()
	ink := color.Gray{Y: 0x00}

	s.SetFullWindow()
	if err := s.Commit(func(d Drawer) { d.FillBackground() }); err != nil {
		t.Fatalf("commit: %v", err)
	}

	// Ink the whole canvas but only push a small window.
	s.SetPartialWindow(0, 0, 16, 16)
	if err := s.Commit(func(d Drawer) {
		w, h := d.Size()
		d.FillRect(0, 0, w, h, ink)
	}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got := dev.RGBAAt(4, 4); got.R != 0x00 {
		t.Fatalf("pixel inside window = %v, want black", got)
	}
	if got := dev.RGBAAt(100, 100); got.R != 0xFF {
		t.Fatalf("pixel outside window = %v, want untouched white", got)
	}
}

func TestPartialWindowClampedToPanel(t *testing.T) {
	s, _ := newTestSurface()
	s.SetPartialWindow(PanelWidth-8, PanelHeight-8, 64, 64)
	if err := s.Commit(func(d Drawer) { d.FillBackground() }); err != nil {
		t.Fatalf("commit over-size window: %v", err)
	}
}

func TestBitmapAt(t *testing.T) {
	bm := Bitmap{Width: 10, Height: 2, Data: []byte{
		0x80, 0x40, // row 0: pixels 0 and 9
		0x00, 0x00,
	}}
	if !bm.At(0, 0) {
		t.Fatalf("pixel (0,0) not set")
	}
	if !bm.At(9, 0) {
		t.Fatalf("pixel (9,0) not set")
	}
	if bm.At(1, 0) || bm.At(0, 1) {
		t.Fatalf("unset pixels reported set")
	}
	if bm.At(-1, 0) || bm.At(10, 0) || bm.At(0, 2) {
		t.Fatalf("out-of-bounds pixels reported set")
	}
}

func TestQRCodeImage(t *testing.T) {
	img, err := QRCodeImage("https://example.com", 128)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if img == nil {
		t.Fatalf("nil image for valid payload")
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Fatalf("image size = %dx%d, want 128x128", b.Dx(), b.Dy())
	}

	img, err = QRCodeImage("", 128)
	if err != nil {
		t.Fatalf("empty payload: %v", err)
	}
	if img != nil {
		t.Fatalf("empty payload produced an image")
	}
}
