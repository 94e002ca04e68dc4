package ops

import (
	"github.com/nhansendev/drawnet/pkg/layers"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// LinearSpec configures a Linear operation.
type LinearSpec struct {
	Label     string
	LineWidth float64
	Below     bool
}

// Linear draws two straight lines joining the facing corners of the two
// layers: top-right to top-left, and bottom-right to bottom-left.
type Linear struct {
	meta
	lineWidth float64
}

// NewLinear creates a corner-joining line operation.
func NewLinear(spec LinearSpec) *Linear {
	return &Linear{
		meta:      meta{label: spec.Label, below: spec.Below},
		lineWidth: spec.LineWidth,
	}
}

func (o *Linear) Drawables(a, b layers.Layer) (scene.Collection, error) {
	ca, cb := a.Corners(), b.Corners()
	return scene.NewCollection("",
		line(ca.TR, cb.TL, o.lineWidth),
		line(ca.BR, cb.BL, o.lineWidth),
	), nil
}

// BlankSpec configures a Blank operation.
type BlankSpec struct {
	Label string
	Below bool
}

// Blank draws nothing between its layers; only the caption is placed.
// Useful for annotating a gap without a visible connector.
type Blank struct {
	meta
}

// NewBlank creates a label-only operation.
func NewBlank(spec BlankSpec) *Blank {
	return &Blank{meta: meta{label: spec.Label, below: spec.Below}}
}

func (o *Blank) Drawables(a, b layers.Layer) (scene.Collection, error) {
	return scene.Collection{}, nil
}
