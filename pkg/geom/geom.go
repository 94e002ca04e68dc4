// Package geom provides the 2D geometry primitives shared by layers,
// operations, and renderers.
//
// Coordinates follow the raster/SVG convention: X grows rightward and Y
// grows downward. A layer's anchor is its top-left corner.
package geom

// Pt is a point in 2D space.
type Pt struct {
	X, Y float64
}

// Add returns the point translated by (dx, dy).
func (p Pt) Add(dx, dy float64) Pt { return Pt{p.X + dx, p.Y + dy} }

// Mid returns the midpoint between p and q.
func (p Pt) Mid(q Pt) Pt { return Pt{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

// Rect is an axis-aligned rectangle defined by its extreme coordinates.
type Rect struct {
	X0, Y0 float64 // left, top
	X1, Y1 float64 // right, bottom
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return (r.X0 + r.X1) / 2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return (r.Y0 + r.Y1) / 2 }

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		X0: min(r.X0, s.X0),
		Y0: min(r.Y0, s.Y0),
		X1: max(r.X1, s.X1),
		Y1: max(r.Y1, s.Y1),
	}
}

// Expand returns the rectangle grown by dx on the left and right and dy on
// the top and bottom.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{X0: r.X0 - dx, Y0: r.Y0 - dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Corners holds the four attachment points of a layer.
//
// For stacked layers the corner set spans the whole stack, not just the
// base shape, so operations attach to the visual outline.
type Corners struct {
	TL, TR, BL, BR Pt
}

// Bounds returns the axis-aligned rectangle enclosing the four corners.
func (c Corners) Bounds() Rect {
	r := Rect{X0: c.TL.X, Y0: c.TL.Y, X1: c.TL.X, Y1: c.TL.Y}
	for _, p := range [...]Pt{c.TR, c.BL, c.BR} {
		r.X0 = min(r.X0, p.X)
		r.Y0 = min(r.Y0, p.Y)
		r.X1 = max(r.X1, p.X)
		r.Y1 = max(r.Y1, p.Y)
	}
	return r
}

// RightMid returns the midpoint of the right edge (TR to BR).
func (c Corners) RightMid() Pt { return c.TR.Mid(c.BR) }

// LeftMid returns the midpoint of the left edge (TL to BL).
func (c Corners) LeftMid() Pt { return c.TL.Mid(c.BL) }

// Center returns the center of the corner bounding box.
func (c Corners) Center() Pt {
	b := c.Bounds()
	return Pt{b.CenterX(), b.CenterY()}
}

// BoxCorners returns the corner set of an axis-aligned box with top-left
// anchor (x, y) and the given dimensions.
func BoxCorners(x, y, width, height float64) Corners {
	return Corners{
		TL: Pt{x, y},
		TR: Pt{x + width, y},
		BL: Pt{x, y + height},
		BR: Pt{x + width, y + height},
	}
}
