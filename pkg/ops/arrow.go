package ops

import (
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/layers"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// ArrowSpec configures an Arrow operation.
type ArrowSpec struct {
	Label     string
	ArrowSize float64 // scale of the arrowhead (default 3)
	LineWidth float64
	Below     bool
}

// Arrow draws a line from the right-edge midpoint of the source to the
// left-edge midpoint of the target, with an arrowhead at the middle of
// the run.
type Arrow struct {
	meta
	size, lineWidth float64
}

// NewArrow creates an arrow operation.
func NewArrow(spec ArrowSpec) *Arrow {
	size := spec.ArrowSize
	if size <= 0 {
		size = 3
	}
	return &Arrow{
		meta:      meta{label: spec.Label, below: spec.Below},
		size:      size,
		lineWidth: spec.LineWidth,
	}
}

func (o *Arrow) Drawables(a, b layers.Layer) (scene.Collection, error) {
	start := a.Corners().RightMid()
	end := b.Corners().LeftMid()

	// Small horizontal inset so the arrow does not touch either shape.
	inset := 0.05 * (end.X - start.X)
	start.X += inset
	end.X -= inset

	mid := start.Mid(end)
	mid.X += o.size / 2
	s := o.size

	return scene.NewCollection("",
		line(start, geom.Pt{X: mid.X - s, Y: mid.Y}, o.lineWidth),
		line(mid, end, o.lineWidth),
		scene.Polyline{
			Pts: []geom.Pt{
				{X: mid.X - s, Y: mid.Y - s},
				mid,
				{X: mid.X - s, Y: mid.Y + s},
				{X: mid.X - s, Y: mid.Y - s},
			},
			Style: scene.Stroked(o.lineWidth),
		},
	), nil
}
