package layers

import (
	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// BlockSpec configures a Block layer.
type BlockSpec struct {
	Width, Height float64
	Label         string
	Below         bool       // place the caption below the shape
	Fill          *scene.RGB // defaults to a pale gray
	X             float64
	Y             *float64 // nil enables automatic vertical centering
}

// Block is a single filled rectangle, the plainest diagram element.
type Block struct {
	base
	fill scene.RGB
}

// NewBlock creates a rectangle layer. Width and height must be positive.
func NewBlock(spec BlockSpec) (*Block, error) {
	if err := errors.ValidateDimensions(spec.Width, spec.Height); err != nil {
		return nil, err
	}
	return &Block{
		base: newBase(spec.Width, spec.Height, spec.Label, spec.Below, spec.X, spec.Y),
		fill: fillOr(spec.Fill, scene.ColorPale),
	}, nil
}

func (l *Block) Corners() geom.Corners { return l.boxCorners() }

func (l *Block) Drawables() scene.Collection {
	return scene.NewCollection("", scene.Rect{
		X: l.x, Y: l.y, W: l.width, H: l.height,
		Style: scene.Filled(l.fill),
	})
}
