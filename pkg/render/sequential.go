package render

import (
	"context"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/layers"
	"github.com/nhansendev/drawnet/pkg/ops"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// Sequential lays layers out left to right in insertion order and
// auto-connects adjacent layers with the operations list by matching
// index: operations[i] connects layers[i] and layers[i+1].
//
// This zero-configuration scheme covers the common feed-forward stack
// diagram; for anything else use Freeform.
type Sequential struct {
	layers   []layers.Layer
	opGroups [][]ops.Operation
}

// NewSequential creates an empty sequential renderer.
func NewSequential() *Sequential {
	return &Sequential{}
}

// AddLayer appends a layer. Its position is assigned at render time.
func (r *Sequential) AddLayer(l layers.Layer) {
	r.layers = append(r.layers, l)
}

// AddOperation appends a connector for the next adjacent layer pair.
func (r *Sequential) AddOperation(op ops.Operation) {
	r.opGroups = append(r.opGroups, []ops.Operation{op})
}

// AddOperations appends several connectors overlaid between the same
// adjacent layer pair. Each operation draws independently, in order.
func (r *Sequential) AddOperations(group ...ops.Operation) {
	r.opGroups = append(r.opGroups, group)
}

// LayerCount returns the number of layers added.
func (r *Sequential) LayerCount() int { return len(r.layers) }

// Render assigns positions, draws every layer and connector onto surf,
// and displays the result when opts.AutoDisplay is set.
//
// Operation groups beyond the number of adjacent pairs are ignored with a
// warning; missing trailing operations simply leave pairs unconnected.
func (r *Sequential) Render(ctx context.Context, surf Surface, opts Options) error {
	opts = opts.withDefaults()

	if len(r.layers) == 0 {
		return errors.New(errors.ErrCodeInvalidDiagram, "no layers to render")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.assignPositions(opts); err != nil {
		return err
	}

	frame := scene.NewFrame()
	captions := scene.NewCollection("captions")

	for _, l := range r.layers {
		frame.Add(l.Drawables())
		if l.Label() != "" {
			captions.Append(layerCaption(l, opts))
		}
	}

	pairs := len(r.layers) - 1
	if len(r.opGroups) > pairs {
		opts.Logger.Warnf("%d operation group(s) beyond the %d adjacent layer pairs are ignored",
			len(r.opGroups)-pairs, pairs)
	}

	for i, group := range r.opGroups {
		if i >= pairs {
			break
		}
		a, b := r.layers[i], r.layers[i+1]
		for _, op := range group {
			col, err := op.Drawables(a, b)
			if err != nil {
				return err
			}
			frame.Add(col)
			if op.Label() != "" {
				captions.Append(opCaption(op, a, b, opts))
			}
		}
	}

	frame.Add(captions)

	if err := surf.Draw(frame); err != nil {
		return err
	}
	if opts.AutoDisplay {
		return surf.Display()
	}
	return nil
}

// assignPositions computes each layer's x by accumulating total widths
// left to right, preferring a diagonal offset that continues the 45
// degree flow of stacked layers, and centers auto-placed layers on the
// shared horizontal baseline.
func (r *Sequential) assignPositions(opts Options) error {
	if opts.ManualX != nil {
		if len(opts.ManualX) != len(r.layers) {
			return errors.New(errors.ErrCodeInvalidDiagram,
				"manual x positions: got %d, need %d", len(opts.ManualX), len(r.layers))
		}
		for i, l := range r.layers {
			l.ResolveAutoY()
			l.SetX(opts.ManualX[i])
		}
		return nil
	}

	var bPrev, lastX float64
	for i, l := range r.layers {
		l.ResolveAutoY()
		totW, _ := l.Size()
		w, h := l.BaseSize()
		yTop := l.Position().Y

		var x float64
		if i > 0 {
			// Diagonal spacing keeps stacked layers flowing along the
			// same 45 degree line as their predecessor.
			x = opts.DSpace + bPrev + yTop + h
			if x > lastX || x+totW < lastX {
				// Fall back to plain horizontal spacing, widened for
				// narrow layers so they do not crowd their neighbors.
				if totW < opts.HSpace {
					x = lastX + opts.HSpace*1.5
				} else {
					x = lastX + opts.HSpace
				}
			}
		}

		bPrev = x + w - yTop
		lastX = x + totW
		l.SetX(x)
	}
	return nil
}
