// Package layout provides Region arithmetic for placing UI elements.
package layout

import "github.com/eink-works/gxui/internal/render"

// Inset shrinks the region by paddingPx on all sides.
func Inset(rg render.Region, paddingPx int) render.Region {
	if paddingPx <= 0 {
		return rg
	}
	out := render.Region{
		X:      rg.X + paddingPx,
		Y:      rg.Y + paddingPx,
		Width:  rg.Width - 2*paddingPx,
		Height: rg.Height - 2*paddingPx,
	}
	return Normalize(out)
}

// Normalize clamps negative sizes to zero.
func Normalize(rg render.Region) render.Region {
	if rg.Width < 0 {
		rg.Width = 0
	}
	if rg.Height < 0 {
		rg.Height = 0
	}
	return rg
}

// Union returns the smallest region covering both inputs. Empty inputs are
// ignored so a zero Region works as an accumulator seed.
func Union(a, b render.Region) render.Region {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return render.FromRect(a.Rect().Union(b.Rect()))
}

// AlignByteBoundary snaps the region outward so its origin and size land on
// 8-pixel boundaries, which keeps partial windows valid for panels that
// address pixels by whole bytes.
func AlignByteBoundary(rg render.Region) render.Region {
	x := rg.X &^ 7
	y := rg.Y &^ 7
	rg.Width = (rg.Width + (rg.X - x) + 7) &^ 7
	rg.Height = (rg.Height + (rg.Y - y) + 7) &^ 7
	rg.X = x
	rg.Y = y
	return rg
}

// Clamp constrains the region to the given panel size.
func Clamp(rg render.Region, width, height int) render.Region {
	if rg.X < 0 {
		rg.Width += rg.X
		rg.X = 0
	}
	if rg.Y < 0 {
		rg.Height += rg.Y
		rg.Y = 0
	}
	if rg.X+rg.Width > width {
		rg.Width = width - rg.X
	}
	if rg.Y+rg.Height > height {
		rg.Height = height - rg.Y
	}
	return Normalize(rg)
}

// SplitVertical splits the region into left and right parts; leftWidthPx is
// clamped to [0, rg.Width].
func SplitVertical(rg render.Region, leftWidthPx int) (left, right render.Region) {
	if leftWidthPx < 0 {
		leftWidthPx = 0
	}
	if leftWidthPx > rg.Width {
		leftWidthPx = rg.Width
	}
	left = render.Region{X: rg.X, Y: rg.Y, Width: leftWidthPx, Height: rg.Height}
	right = render.Region{X: rg.X + leftWidthPx, Y: rg.Y, Width: rg.Width - leftWidthPx, Height: rg.Height}
	return left, right
}

// SplitHorizontal splits the region into top and bottom parts; topHeightPx is
// clamped to [0, rg.Height].
func SplitHorizontal(rg render.Region, topHeightPx int) (top, bottom render.Region) {
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > rg.Height {
		topHeightPx = rg.Height
	}
	top = render.Region{X: rg.X, Y: rg.Y, Width: rg.Width, Height: topHeightPx}
	bottom = render.Region{X: rg.X, Y: rg.Y + topHeightPx, Width: rg.Width, Height: rg.Height - topHeightPx}
	return top, bottom
}
