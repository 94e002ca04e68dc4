// Package render provides the two layout strategies that turn layers and
// operations into a drawable frame: the left-to-right Sequential renderer
// and the manually placed Freeform renderer.
//
// A renderer owns its layers and operations exclusively; renderer
// instances share nothing. Rendering is a one-shot, synchronous pipeline:
// assign positions, collect drawables, hand the frame to a drawing
// surface, and optionally display the result.
package render

import (
	"github.com/charmbracelet/log"

	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/layers"
	"github.com/nhansendev/drawnet/pkg/ops"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// Surface is the drawing boundary a renderer delegates to. Implementations
// live in the surface subpackage; anything that can draw a frame and show
// the result qualifies.
type Surface interface {
	// Draw renders every collection in the frame within the frame bounds.
	Draw(f *scene.Frame) error

	// Display opens the rendered artifact with the platform viewer.
	Display() error
}

// Options holds the global rendering knobs shared by both renderers.
type Options struct {
	// HSpace is the horizontal gap between adjacent layers (sequential
	// layout only). Default 100.
	HSpace float64

	// DSpace is the diagonal gap used when stacked layers continue a 45
	// degree visual flow (sequential layout only). Default 200.
	DSpace float64

	// ManualX overrides the computed x positions (sequential layout
	// only). When set, its length must match the layer count.
	ManualX []float64

	// TextOffset is the vertical gap between a shape and its caption.
	// Default 10.
	TextOffset float64

	// LabelSize is the caption font size in user units. Default 12.
	LabelSize float64

	// AutoDisplay invokes the surface's display action after drawing.
	// When false the caller keeps the surface handle for customization
	// or export.
	AutoDisplay bool

	// Logger receives warning-level layout diagnostics (e.g., more
	// operations than adjacent layer pairs). Nil uses log.Default().
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.HSpace == 0 {
		o.HSpace = 100
	}
	if o.DSpace == 0 {
		o.DSpace = 200
	}
	if o.TextOffset == 0 {
		o.TextOffset = 10
	}
	if o.LabelSize == 0 {
		o.LabelSize = 12
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// layerCaption builds the caption primitive for a layer, placed above or
// below the layer's total extent.
func layerCaption(l layers.Layer, opts Options) scene.Text {
	b := l.Corners().Bounds()
	at := geom.Pt{X: b.CenterX(), Y: b.Y0 - opts.TextOffset}
	align := scene.AlignBottom
	if l.LabelBelow() {
		at.Y = b.Y1 + opts.TextOffset
		align = scene.AlignTop
	}
	return scene.Text{At: at, Content: l.Label(), Size: opts.LabelSize, VAlign: align, Style: scene.Style{Stroke: scene.Black}}
}

// opCaption builds the caption primitive for an operation, centered
// between the facing edges of its two layers.
func opCaption(op ops.Operation, a, b layers.Layer, opts Options) scene.Text {
	ba, bb := a.Corners().Bounds(), b.Corners().Bounds()
	x := (ba.X1 + bb.X0) / 2

	at := geom.Pt{X: x, Y: min(ba.Y0, bb.Y0) - opts.TextOffset}
	align := scene.AlignBottom
	if op.LabelBelow() {
		at.Y = max(ba.Y1, bb.Y1) + opts.TextOffset
		align = scene.AlignTop
	}
	return scene.Text{At: at, Content: op.Label(), Size: opts.LabelSize, VAlign: align, Style: scene.Style{Stroke: scene.Black}}
}
