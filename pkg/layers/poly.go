package layers

import (
	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// PolySpec configures a Poly layer.
type PolySpec struct {
	Coords []geom.Pt // polygon points relative to the layer's center
	Label  string
	Fill   *scene.RGB
	Below  bool
	X, Y   float64 // center of the polygon
}

// Poly draws an arbitrary polygon. Unlike the box-like kinds, the anchor
// is the polygon's center, and vertical placement is always explicit.
type Poly struct {
	base
	coords []geom.Pt
	fill   scene.RGB
}

// NewPoly creates a polygon layer from at least three points.
func NewPoly(spec PolySpec) (*Poly, error) {
	if len(spec.Coords) < 3 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry,
			"polygon needs at least 3 points, got %d", len(spec.Coords))
	}

	r := geom.Rect{X0: spec.Coords[0].X, Y0: spec.Coords[0].Y, X1: spec.Coords[0].X, Y1: spec.Coords[0].Y}
	for _, p := range spec.Coords[1:] {
		r = r.Union(geom.Rect{X0: p.X, Y0: p.Y, X1: p.X, Y1: p.Y})
	}
	if err := errors.ValidateDimensions(r.Width(), r.Height()); err != nil {
		return nil, err
	}

	y := spec.Y
	l := &Poly{
		base:   newBase(r.Width(), r.Height(), spec.Label, spec.Below, spec.X, &y),
		coords: spec.Coords,
		fill:   fillOr(spec.Fill, scene.ColorPale),
	}
	return l, nil
}

// Corners returns the bounding-box corners around the center anchor.
func (l *Poly) Corners() geom.Corners {
	return geom.BoxCorners(l.x-l.width/2, l.y-l.height/2, l.width, l.height)
}

func (l *Poly) Drawables() scene.Collection {
	pts := make([]geom.Pt, len(l.coords))
	for i, p := range l.coords {
		pts[i] = geom.Pt{X: p.X + l.x, Y: p.Y + l.y}
	}
	return scene.NewCollection("", scene.Polygon{
		Pts:   pts,
		Style: scene.Filled(l.fill),
	})
}
