// Package ops provides the connectors drawn between two layers.
//
// An operation never owns its endpoint layers; it reads their resolved
// corner geometry at render time and produces an independent primitive
// collection. Multiple operations between the same pair overlay cleanly
// because no state is shared between them.
package ops

import (
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/layers"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// Operation produces the primitives connecting two layers.
//
// Drawables must only be called once both layers have resolved positions;
// renderers guarantee this ordering. Calling it twice without moving the
// layers yields identical primitives.
type Operation interface {
	// Drawables computes the connector primitives from the two layers'
	// corner geometry. a is the left/source layer, b the right/target.
	Drawables(a, b layers.Layer) (scene.Collection, error)

	// Label returns the connector caption. Empty means no caption.
	Label() string

	// LabelBelow reports whether the caption sits below the connected
	// layers instead of above them.
	LabelBelow() bool
}

// meta carries the caption state shared by every operation kind.
type meta struct {
	label string
	below bool
}

func (m meta) Label() string    { return m.label }
func (m meta) LabelBelow() bool { return m.below }

// edgeAnchors distributes n anchor points along the edge from p0 to p1,
// each centered in its 1/n subdivision. Stacked layers get anchors that
// follow their slanted outline because the corners span the full stack.
func edgeAnchors(p0, p1 geom.Pt, n int) []geom.Pt {
	ivalX := (p1.X - p0.X) / float64(n)
	ivalY := (p1.Y - p0.Y) / float64(n)
	pts := make([]geom.Pt, n)
	for i := range pts {
		f := float64(i) + 0.5
		pts[i] = geom.Pt{X: p0.X + ivalX*f, Y: p0.Y + ivalY*f}
	}
	return pts
}

func line(a, b geom.Pt, width float64) scene.Polyline {
	return scene.Polyline{Pts: []geom.Pt{a, b}, Style: scene.Stroked(width)}
}
