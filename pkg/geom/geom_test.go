package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPtMid(t *testing.T) {
	got := Pt{0, 0}.Mid(Pt{10, 4})
	want := Pt{5, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Mid() mismatch (-want +got):\n%s", diff)
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "disjoint",
			a:    Rect{0, 0, 10, 10},
			b:    Rect{20, 20, 30, 30},
			want: Rect{0, 0, 30, 30},
		},
		{
			name: "contained",
			a:    Rect{0, 0, 100, 100},
			b:    Rect{10, 10, 20, 20},
			want: Rect{0, 0, 100, 100},
		},
		{
			name: "negative coordinates",
			a:    Rect{-50, -25, 0, 0},
			b:    Rect{0, 0, 50, 25},
			want: Rect{-50, -25, 50, 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.a.Union(tt.b)); diff != "" {
				t.Errorf("Union() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	got := Rect{10, 10, 20, 20}.Expand(5, 2)
	want := Rect{5, 8, 25, 22}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand() mismatch (-want +got):\n%s", diff)
	}
}

func TestBoxCorners(t *testing.T) {
	c := BoxCorners(10, 20, 30, 40)
	want := Corners{
		TL: Pt{10, 20},
		TR: Pt{40, 20},
		BL: Pt{10, 60},
		BR: Pt{40, 60},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("BoxCorners() mismatch (-want +got):\n%s", diff)
	}
}

func TestCornersEdgeMidpoints(t *testing.T) {
	c := BoxCorners(0, 0, 10, 20)

	if diff := cmp.Diff(Pt{10, 10}, c.RightMid()); diff != "" {
		t.Errorf("RightMid() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Pt{0, 10}, c.LeftMid()); diff != "" {
		t.Errorf("LeftMid() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Pt{5, 10}, c.Center()); diff != "" {
		t.Errorf("Center() mismatch (-want +got):\n%s", diff)
	}
}

func TestCornersBoundsSlanted(t *testing.T) {
	// A parallelogram-style corner set: bottom edge shifted right.
	c := Corners{
		TL: Pt{0, 0},
		TR: Pt{10, 0},
		BL: Pt{5, 15},
		BR: Pt{15, 15},
	}
	want := Rect{0, 0, 15, 15}
	if diff := cmp.Diff(want, c.Bounds()); diff != "" {
		t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
	}
}
