package ops

import (
	"fmt"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/layers"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// Conv2DSpec configures a Conv2D operation.
type Conv2DSpec struct {
	KernelW, KernelH float64 // kernel size drawn on the source layer
	Stride           int
	Label            string
	KernelFill       *scene.RGB
	LineWidth        float64
	Below            bool
}

// Conv2D draws a convolution glyph: a kernel rectangle near the
// bottom-right of the source layer projected onto a unit cell near the
// top-left region of the target, joined by two lines forming a frustum.
type Conv2D struct {
	meta
	kw, kh    float64
	fill      scene.RGB
	lineWidth float64
}

// NewConv2D creates a convolution operation. When a label is given it
// gains kernel and stride lines ("4x4 Kernel, Stride 2").
func NewConv2D(spec Conv2DSpec) (*Conv2D, error) {
	if spec.KernelW <= 0 || spec.KernelH <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry,
			"kernel dimensions must be positive, got %gx%g", spec.KernelW, spec.KernelH)
	}

	label := spec.Label
	if label != "" {
		label = fmt.Sprintf("%s\n%gx%g Kernel\nStride %d", label, spec.KernelW, spec.KernelH, spec.Stride)
	}

	return &Conv2D{
		meta:      meta{label: label, below: spec.Below},
		kw:        spec.KernelW,
		kh:        spec.KernelH,
		fill:      fillOr(spec.KernelFill, scene.ColorInk),
		lineWidth: spec.LineWidth,
	}, nil
}

func (o *Conv2D) Drawables(a, b layers.Layer) (scene.Collection, error) {
	aw, ah := a.BaseSize()
	if o.kw > aw || o.kh > ah {
		return scene.Collection{}, errors.New(errors.ErrCodeInvalidGeometry,
			"kernel %gx%g larger than layer %gx%g", o.kw, o.kh, aw, ah)
	}

	// Kernel sits just inside the bottom-right of the source stack.
	br := a.Corners().BR
	x1 := br.X - min(aw, 0.1*aw+o.kw)
	y1 := br.Y - o.kh - min(ah-o.kh, 0.1*ah)

	// Unit output cell near the upper-left region of the target stack.
	bw, bh := b.BaseSize()
	br2 := b.Corners().BR
	x2 := br2.X - 0.9*bw
	y2 := br2.Y - 0.9*bh

	return scene.NewCollection("",
		scene.Rect{X: x1, Y: y1, W: o.kw, H: o.kh, Style: scene.Filled(o.fill)},
		scene.Rect{X: x2, Y: y2, W: 1, H: 1, Style: scene.Filled(o.fill)},
		line(geom.Pt{X: x1 + o.kw, Y: y1}, geom.Pt{X: x2, Y: y2}, o.lineWidth),
		line(geom.Pt{X: x1 + o.kw, Y: y1 + o.kh}, geom.Pt{X: x2, Y: y2 + 1}, o.lineWidth),
	), nil
}

func fillOr(fill *scene.RGB, def scene.RGB) scene.RGB {
	if fill != nil {
		return *fill
	}
	return def
}
