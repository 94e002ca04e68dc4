package pipeline

import (
	"context"
	"path/filepath"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/layers"
	"github.com/nhansendev/drawnet/pkg/ops"
	"github.com/nhansendev/drawnet/pkg/render"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// Renderer is the part of the two layout engines the pipeline drives.
type Renderer interface {
	Render(ctx context.Context, surf render.Surface, opts render.Options) error
}

// Build turns a validated description into a ready-to-render layout
// engine. The returned options carry the description's spacing knobs;
// the caller still controls AutoDisplay and the logger.
func Build(d *Description) (Renderer, render.Options, error) {
	opts := render.Options{
		HSpace:     d.Diagram.HSpace,
		DSpace:     d.Diagram.DSpace,
		TextOffset: d.Diagram.TextOffset,
		LabelSize:  d.Diagram.LabelSize,
		ManualX:    d.Diagram.ManualX,
	}
	if d.IsFreeform() {
		r, err := buildFreeform(d)
		return r, opts, err
	}
	r, err := buildSequential(d)
	return r, opts, err
}

func buildSequential(d *Description) (*render.Sequential, error) {
	seq := render.NewSequential()
	for i, lc := range d.Layers {
		l, err := buildLayer(lc, d.dir)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "layer %d (%s)", i, lc.Kind)
		}
		seq.AddLayer(l)
	}

	// Operations fill gaps between adjacent layers. By default the i-th
	// operation lands in the i-th gap; an explicit gap index lets several
	// operations share one.
	groups := make(map[int][]ops.Operation)
	maxGap := -1
	for i, oc := range d.Operations {
		op, err := buildOp(oc)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "operation %d (%s)", i, oc.Kind)
		}
		gap := i
		if oc.Gap != nil {
			gap = *oc.Gap
		}
		groups[gap] = append(groups[gap], op)
		if gap > maxGap {
			maxGap = gap
		}
	}
	for g := 0; g <= maxGap; g++ {
		seq.AddOperations(groups[g]...)
	}
	return seq, nil
}

func buildFreeform(d *Description) (*render.Freeform, error) {
	ff := render.NewFreeform()
	for i, lc := range d.Layers {
		l, err := buildLayer(lc, d.dir)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "layer %d (%s)", i, lc.Kind)
		}
		if _, err := ff.AddLayer(lc.ID, l); err != nil {
			return nil, err
		}
	}
	for i, oc := range d.Operations {
		op, err := buildOp(oc)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "operation %d (%s)", i, oc.Kind)
		}
		ff.AddOperation(op, oc.From, oc.To)
	}
	return ff, nil
}

func buildLayer(c LayerConfig, dir string) (layers.Layer, error) {
	fill, err := rgbPtr(c.Fill, "fill")
	if err != nil {
		return nil, err
	}
	switch c.Kind {
	case "block":
		return layers.NewBlock(layers.BlockSpec{
			Width: c.Width, Height: c.Height,
			Label: c.Label, Below: c.Below, Fill: fill,
			X: c.X, Y: c.Y,
		})
	case "stack2d":
		dark, err := rgbPtr(c.Dark, "dark")
		if err != nil {
			return nil, err
		}
		light, err := rgbPtr(c.Light, "light")
		if err != nil {
			return nil, err
		}
		return layers.NewStack2D(layers.Stack2DSpec{
			Channels: c.Channels, Width: c.Width, Height: c.Height,
			Label: c.Label, Spacing: c.Spacing,
			Limited: c.Limited, LimitedRadius: c.LimitedRadius,
			SkipInterval: c.SkipInterval, EndChannels: c.EndChannels,
			Dark: dark, Light: light,
			Below: c.Below, X: c.X, Y: c.Y,
		})
	case "circles1d":
		return layers.NewCircles1D(layers.Circles1DSpec{
			Features: c.Features, Diameter: c.Diameter,
			Label: c.Label, Fill: fill,
			Limited: c.Limited, LimitedRadius: c.LimitedRadius,
			SkipInterval: c.SkipInterval, EndFeatures: c.EndFeatures,
			Spacing: c.Spacing, Below: c.Below, X: c.X, Y: c.Y,
		})
	case "rects1d":
		return layers.NewRects1D(layers.Rects1DSpec{
			Features: c.Features, Width: c.Width, Height: c.Height,
			Label: c.Label, Fill: fill,
			Limited: c.Limited, LimitedRadius: c.LimitedRadius,
			SkipInterval: c.SkipInterval, EndFeatures: c.EndFeatures,
			Spacing: c.Spacing, Below: c.Below, X: c.X, Y: c.Y,
		})
	case "diagonal":
		return layers.NewDiagonal(layers.DiagonalSpec{
			Width: c.Width, Height: c.Height,
			Label: c.Label, Fill: fill,
			Below: c.Below, X: c.X, Y: c.Y,
		})
	case "poly":
		pts := make([]geom.Pt, len(c.Coords))
		for i, xy := range c.Coords {
			if len(xy) != 2 {
				return nil, errors.New(errors.ErrCodeInvalidDiagram,
					"coords[%d]: want [x, y], got %d values", i, len(xy))
			}
			pts[i] = geom.Pt{X: xy[0], Y: xy[1]}
		}
		var y float64
		if c.Y != nil {
			y = *c.Y
		}
		return layers.NewPoly(layers.PolySpec{
			Coords: pts, Label: c.Label, Fill: fill,
			Below: c.Below, X: c.X, Y: y,
		})
	case "image":
		path := c.Path
		if path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return layers.NewImage(layers.ImageSpec{
			Path: path, Width: c.Width, Height: c.Height,
			Label: c.Label, Below: c.Below, X: c.X, Y: c.Y,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidDiagram,
			"unknown layer kind: %q", c.Kind)
	}
}

func buildOp(c OpConfig) (ops.Operation, error) {
	switch c.Kind {
	case "arrow":
		return ops.NewArrow(ops.ArrowSpec{
			Label: c.Label, ArrowSize: c.ArrowSize,
			LineWidth: c.LineWidth, Below: c.Below,
		}), nil
	case "linear":
		return ops.NewLinear(ops.LinearSpec{
			Label: c.Label, LineWidth: c.LineWidth, Below: c.Below,
		}), nil
	case "dense":
		return ops.NewDense(ops.DenseSpec{
			Label: c.Label, CountA: c.CountA, CountB: c.CountB,
			LimitEndsA: c.LimitEndsA, LimitEndsB: c.LimitEndsB,
			LineWidth: c.LineWidth, Below: c.Below,
		}), nil
	case "conv2d":
		return ops.NewConv2D(ops.Conv2DSpec{
			KernelW: c.KernelW, KernelH: c.KernelH, Stride: c.Stride,
			Label: c.Label, LineWidth: c.LineWidth, Below: c.Below,
		})
	case "blank":
		return ops.NewBlank(ops.BlankSpec{Label: c.Label, Below: c.Below}), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidDiagram,
			"unknown operation kind: %q", c.Kind)
	}
}

func rgbPtr(v []float64, name string) (*scene.RGB, error) {
	if len(v) == 0 {
		return nil, nil
	}
	if len(v) != 3 {
		return nil, errors.New(errors.ErrCodeInvalidStyle,
			"%s: want [r, g, b], got %d values", name, len(v))
	}
	for _, ch := range v {
		if ch < 0 || ch > 1 {
			return nil, errors.New(errors.ErrCodeInvalidStyle,
				"%s: channel values must be in [0, 1], got %g", name, ch)
		}
	}
	return &scene.RGB{R: v[0], G: v[1], B: v[2]}, nil
}
