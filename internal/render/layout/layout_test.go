package layout

import (
	"testing"

	"github.com/eink-works/gxui/internal/render"
)

func TestAlignByteBoundary(t *testing.T) {
	cases := []struct {
		in   render.Region
		want render.Region
	}{
		{render.Region{X: 0, Y: 0, Width: 8, Height: 8}, render.Region{X: 0, Y: 0, Width: 8, Height: 8}},
		{render.Region{X: 3, Y: 5, Width: 10, Height: 10}, render.Region{X: 0, Y: 0, Width: 16, Height: 16}},
		{render.Region{X: 8, Y: 8, Width: 1, Height: 1}, render.Region{X: 8, Y: 8, Width: 8, Height: 8}},
		{render.Region{X: 15, Y: 9, Width: 2, Height: 8}, render.Region{X: 8, Y: 8, Width: 16, Height: 16}},
	}
	for _, c := range cases {
		if got := AlignByteBoundary(c.in); got != c.want {
			t.Fatalf("align %+v = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestAlignByteBoundaryCoversInput(t *testing.T) {
	in := render.Region{X: 13, Y: 27, Width: 33, Height: 9}
	got := AlignByteBoundary(in)
	if got.X > in.X || got.Y > in.Y {
		t.Fatalf("aligned origin %+v inside input %+v", got, in)
	}
	if got.X+got.Width < in.X+in.Width || got.Y+got.Height < in.Y+in.Height {
		t.Fatalf("aligned extent %+v does not cover input %+v", got, in)
	}
	if got.X%8 != 0 || got.Y%8 != 0 || got.Width%8 != 0 || got.Height%8 != 0 {
		t.Fatalf("aligned region %+v not on byte boundaries", got)
	}
}

func TestInset(t *testing.T) {
	in := render.Region{X: 10, Y: 10, Width: 100, Height: 50}
	got := Inset(in, 5)
	want := render.Region{X: 15, Y: 15, Width: 90, Height: 40}
	if got != want {
		t.Fatalf("inset = %+v, want %+v", got, want)
	}

	// Over-insetting collapses to zero size instead of going negative.
	got = Inset(render.Region{Width: 6, Height: 6}, 5)
	if got.Width != 0 || got.Height != 0 {
		t.Fatalf("over-inset = %+v, want zero size", got)
	}
}

func TestUnion(t *testing.T) {
	a := render.Region{X: 0, Y: 0, Width: 10, Height: 10}
	b := render.Region{X: 20, Y: 5, Width: 10, Height: 10}
	got := Union(a, b)
	want := render.Region{X: 0, Y: 0, Width: 30, Height: 15}
	if got != want {
		t.Fatalf("union = %+v, want %+v", got, want)
	}

	// An empty region works as an accumulator seed.
	if got := Union(render.Region{}, b); got != b {
		t.Fatalf("union with empty seed = %+v, want %+v", got, b)
	}
}

func TestClamp(t *testing.T) {
	got := Clamp(render.Region{X: -10, Y: 470, Width: 30, Height: 30}, 800, 480)
	want := render.Region{X: 0, Y: 470, Width: 20, Height: 10}
	if got != want {
		t.Fatalf("clamp = %+v, want %+v", got, want)
	}
}

func TestSplit(t *testing.T) {
	rg := render.Region{X: 0, Y: 0, Width: 100, Height: 40}

	left, right := SplitVertical(rg, 30)
	if left.Width != 30 || right.X != 30 || right.Width != 70 {
		t.Fatalf("vertical split: left=%+v right=%+v", left, right)
	}

	top, bottom := SplitHorizontal(rg, 150)
	if top.Height != 40 || bottom.Height != 0 {
		t.Fatalf("horizontal split past the end: top=%+v bottom=%+v", top, bottom)
	}
}
