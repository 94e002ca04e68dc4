package layers

import (
	"math"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// DiagonalSpec configures a Diagonal layer.
type DiagonalSpec struct {
	Width  float64 // horizontal width of the slanted band
	Height float64 // length of the band along the 45 degree slope
	Label  string
	Fill   *scene.RGB
	Below  bool
	X      float64
	Y      *float64
}

// Diagonal draws a single parallelogram slanting down-right at 45 degrees,
// used as a flattened view of a feature map.
type Diagonal struct {
	base
	fill scene.RGB
}

// NewDiagonal creates a 45-degree parallelogram layer.
func NewDiagonal(spec DiagonalSpec) (*Diagonal, error) {
	if err := errors.ValidateDimensions(spec.Width, spec.Height); err != nil {
		return nil, err
	}
	l := &Diagonal{
		base: newBase(spec.Width, spec.Height, spec.Label, spec.Below, spec.X, spec.Y),
		fill: fillOr(spec.Fill, scene.ColorPale),
	}
	hx := spec.Height / math.Sqrt2
	l.totW = spec.Width + hx
	l.totH = hx
	return l, nil
}

func (l *Diagonal) Corners() geom.Corners {
	return geom.Corners{
		TL: geom.Pt{X: l.x, Y: l.y},
		TR: geom.Pt{X: l.x + l.width, Y: l.y},
		BL: geom.Pt{X: l.x + l.totW - l.width, Y: l.y + l.totH},
		BR: geom.Pt{X: l.x + l.totW, Y: l.y + l.totH},
	}
}

func (l *Diagonal) Drawables() scene.Collection {
	c := l.Corners()
	return scene.NewCollection("", scene.Polygon{
		Pts:   []geom.Pt{c.TL, c.TR, c.BR, c.BL},
		Style: scene.Filled(l.fill),
	})
}
