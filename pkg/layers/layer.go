// Package layers provides the positioned visual elements a diagram is
// composed of.
//
// Every layer kind is constructed from a spec struct with explicit
// dimensions, carries an optional label, and exposes the same contract:
// corner attachment points, total size, and a drawable primitive
// collection reflecting its current position. Renderers assign positions;
// a layer's geometry is otherwise immutable.
//
// # Coordinate conventions
//
// A layer's anchor is the top-left corner of its base shape, with Y
// growing downward. A layer whose spec omits Y participates in automatic
// vertical centering: its total extent is centered on the y=0 baseline at
// render time.
package layers

import (
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// Layer is a positioned visual element.
//
// Corners and Drawables always reflect the most recent position; calling
// Drawables twice without an intervening SetPosition yields geometrically
// identical primitives.
type Layer interface {
	// Corners returns the four attachment points spanning the layer's
	// total extent at its current position.
	Corners() geom.Corners

	// SetPosition moves the layer's anchor and disables auto-centering.
	SetPosition(x, y float64)

	// SetX moves the layer horizontally, preserving the vertical
	// placement mode.
	SetX(x float64)

	// AutoY reports whether the layer's vertical position is resolved by
	// the renderer's centering rule.
	AutoY() bool

	// ResolveAutoY applies the vertical centering rule (total extent
	// centered on y=0) when AutoY is set. A no-op otherwise.
	ResolveAutoY()

	// Position returns the current anchor.
	Position() geom.Pt

	// Size returns the total extent, including stack offsets.
	Size() (w, h float64)

	// BaseSize returns the dimensions of the base shape.
	BaseSize() (w, h float64)

	// AnchorCount returns the number of connection anchors a dense fan
	// distributes along the layer's facing edge. Plain boxes report 1.
	AnchorCount() int

	// Drawables produces the primitives representing this layer at its
	// current position.
	Drawables() scene.Collection

	// Label returns the layer's caption, possibly multi-line. Empty means
	// no caption is drawn.
	Label() string

	// LabelBelow reports whether the caption is placed below the shape
	// instead of above it.
	LabelBelow() bool
}

// base carries the state shared by every layer kind.
type base struct {
	x, y          float64
	autoY         bool
	width, height float64 // base shape
	totW, totH    float64 // full extent including stack offsets
	label         string
	below         bool
}

func newBase(width, height float64, label string, below bool, x float64, y *float64) base {
	b := base{
		x:     x,
		width: width, height: height,
		totW: width, totH: height,
		label: label,
		below: below,
		autoY: y == nil,
	}
	if y != nil {
		b.y = *y
	}
	return b
}

func (b *base) SetPosition(x, y float64) {
	b.x, b.y = x, y
	b.autoY = false
}

func (b *base) SetX(x float64) { b.x = x }

func (b *base) AutoY() bool { return b.autoY }

func (b *base) ResolveAutoY() {
	if b.autoY {
		b.y = -b.totH / 2
	}
}

func (b *base) Position() geom.Pt { return geom.Pt{X: b.x, Y: b.y} }

func (b *base) Size() (float64, float64) { return b.totW, b.totH }

func (b *base) BaseSize() (float64, float64) { return b.width, b.height }

func (b *base) AnchorCount() int { return 1 }

func (b *base) Label() string { return b.label }

func (b *base) LabelBelow() bool { return b.below }

// boxCorners is the corner set shared by kinds whose total extent is a
// plain axis-aligned box.
func (b *base) boxCorners() geom.Corners {
	return geom.BoxCorners(b.x, b.y, b.totW, b.totH)
}

func fillOr(fill *scene.RGB, def scene.RGB) scene.RGB {
	if fill != nil {
		return *fill
	}
	return def
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func orFloat(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
