// Package scene defines the drawable primitives produced by layers and
// operations, and the collections a renderer submits to a drawing surface.
//
// A primitive is a plain geometric value (rectangle, circle, polygon,
// polyline, text, image) carrying a Style. Primitives form a closed set:
// surfaces dispatch over the concrete types rather than an open plugin
// interface, which keeps the drawing-surface boundary small and
// deterministic.
package scene

import (
	"image"

	"github.com/google/uuid"

	"github.com/nhansendev/drawnet/pkg/geom"
)

// RGB is a color with components in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// Default fill colors for alternating stacked shapes.
var (
	ColorLight = RGB{0.7, 0.7, 0.7}
	ColorDark  = RGB{0.4, 0.4, 0.4}
	ColorInk   = RGB{0.1, 0.1, 0.1}
	ColorPale  = RGB{0.9, 0.9, 0.9}
	Black      = RGB{0, 0, 0}
	White      = RGB{1, 1, 1}
)

// Style carries the visual attributes shared by all primitives.
type Style struct {
	Fill        *RGB    // nil means unfilled
	Stroke      RGB     // outline color
	StrokeWidth float64 // zero means the surface default (1.0)
}

// Filled returns a Style with the given fill and a black outline.
func Filled(fill RGB) Style {
	f := fill
	return Style{Fill: &f, Stroke: Black}
}

// Stroked returns an unfilled Style with the given stroke width.
func Stroked(width float64) Style {
	return Style{Stroke: Black, StrokeWidth: width}
}

// Primitive is a single drawable shape. The set of implementations is
// closed: Rect, Circle, Polygon, Polyline, Text, and Image.
type Primitive interface {
	// Bounds returns the axis-aligned extent of the primitive.
	Bounds() geom.Rect
}

// Rect is an axis-aligned filled or stroked rectangle.
type Rect struct {
	X, Y, W, H float64
	Style      Style
}

func (r Rect) Bounds() geom.Rect {
	return geom.Rect{X0: r.X, Y0: r.Y, X1: r.X + r.W, Y1: r.Y + r.H}
}

// Circle is a circle centered at C.
type Circle struct {
	C     geom.Pt
	R     float64
	Style Style
}

func (c Circle) Bounds() geom.Rect {
	return geom.Rect{X0: c.C.X - c.R, Y0: c.C.Y - c.R, X1: c.C.X + c.R, Y1: c.C.Y + c.R}
}

// Polygon is a closed filled polygon.
type Polygon struct {
	Pts   []geom.Pt
	Style Style
}

func (p Polygon) Bounds() geom.Rect { return ptBounds(p.Pts) }

// Polyline is an open stroked path. Operations emit one polyline per
// connection segment.
type Polyline struct {
	Pts   []geom.Pt
	Style Style
}

func (p Polyline) Bounds() geom.Rect { return ptBounds(p.Pts) }

// VAlign controls how text is anchored vertically relative to its position.
type VAlign string

const (
	AlignTop    VAlign = "top"
	AlignBottom VAlign = "bottom"
	AlignMiddle VAlign = "middle"
)

// Text is a label anchored at At. Content may span multiple lines; lines
// are always centered horizontally on At.X.
type Text struct {
	At      geom.Pt
	Content string
	Size    float64 // font size in user units; zero means the surface default
	VAlign  VAlign
	Style   Style
}

// Bounds returns a zero-area extent at the anchor. Text is excluded from
// scene extents so long labels cannot distort the diagram frame; the scene
// margins leave room for them instead.
func (t Text) Bounds() geom.Rect {
	return geom.Rect{X0: t.At.X, Y0: t.At.Y, X1: t.At.X, Y1: t.At.Y}
}

// Image is a raster image fitted into the rectangle at (X, Y).
type Image struct {
	X, Y, W, H float64
	Img        image.Image
}

func (i Image) Bounds() geom.Rect {
	return geom.Rect{X0: i.X, Y0: i.Y, X1: i.X + i.W, Y1: i.Y + i.H}
}

func ptBounds(pts []geom.Pt) geom.Rect {
	if len(pts) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{X0: pts[0].X, Y0: pts[0].Y, X1: pts[0].X, Y1: pts[0].Y}
	for _, p := range pts[1:] {
		r = r.Union(geom.Rect{X0: p.X, Y0: p.Y, X1: p.X, Y1: p.Y})
	}
	return r
}

// Collection is an ordered group of primitives produced by a single layer
// or operation. Collections render in insertion order, so overlaid
// operations between the same pair of layers stay order-stable.
type Collection struct {
	ID    string
	Prims []Primitive
}

// NewCollection creates a collection with the given id, generating one
// when id is empty.
func NewCollection(id string, prims ...Primitive) Collection {
	if id == "" {
		id = uuid.NewString()
	}
	return Collection{ID: id, Prims: prims}
}

// Append adds primitives to the collection in order.
func (c *Collection) Append(prims ...Primitive) {
	c.Prims = append(c.Prims, prims...)
}

// Empty reports whether the collection has no primitives.
func (c Collection) Empty() bool { return len(c.Prims) == 0 }

// Bounds returns the union of the primitive extents.
func (c Collection) Bounds() geom.Rect {
	var r geom.Rect
	first := true
	for _, p := range c.Prims {
		if first {
			r = p.Bounds()
			first = false
			continue
		}
		r = r.Union(p.Bounds())
	}
	return r
}
