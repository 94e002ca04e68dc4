package render

import (
	"context"

	"github.com/google/uuid"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/layers"
	"github.com/nhansendev/drawnet/pkg/ops"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// Freeform keys layers by unique identifier and connects them with
// operations that explicitly reference source and target ids. Placement
// is manual except for one inference: a layer constructed without a Y is
// vertically centered on the y=0 baseline.
type Freeform struct {
	byID  map[string]layers.Layer
	order []string // insertion order, for deterministic draw order
	ops   []boundOp
}

type boundOp struct {
	op       ops.Operation
	from, to string
}

// NewFreeform creates an empty free-form renderer.
func NewFreeform() *Freeform {
	return &Freeform{byID: make(map[string]layers.Layer)}
}

// AddLayer registers a layer under id and returns the id actually used.
// An empty id gets a generated one. Registering an existing id fails with
// a DUPLICATE_LAYER error; use ReplaceLayer to overwrite.
func (r *Freeform) AddLayer(id string, l layers.Layer) (string, error) {
	if id == "" {
		id = uuid.NewString()
	} else if err := errors.ValidateLayerID(id); err != nil {
		return "", err
	}
	if _, exists := r.byID[id]; exists {
		return "", errors.New(errors.ErrCodeDuplicateLayer, "layer %q already exists", id)
	}
	r.byID[id] = l
	r.order = append(r.order, id)
	return id, nil
}

// ReplaceLayer registers a layer under id, overwriting any existing entry.
func (r *Freeform) ReplaceLayer(id string, l layers.Layer) error {
	if err := errors.ValidateLayerID(id); err != nil {
		return err
	}
	if _, exists := r.byID[id]; !exists {
		r.order = append(r.order, id)
	}
	r.byID[id] = l
	return nil
}

// RemoveLayer deletes the layer under id and reports whether it existed.
// Operations referencing the id will fail at the next render.
func (r *Freeform) RemoveLayer(id string) bool {
	if _, exists := r.byID[id]; !exists {
		return false
	}
	delete(r.byID, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Layer returns the layer registered under id.
func (r *Freeform) Layer(id string) (layers.Layer, bool) {
	l, ok := r.byID[id]
	return l, ok
}

// AddOperation registers a connector between the layers identified by
// from and to. The ids are validated at render time, so operations may be
// added before their endpoints.
func (r *Freeform) AddOperation(op ops.Operation, from, to string) {
	r.ops = append(r.ops, boundOp{op: op, from: from, to: to})
}

// Render validates every operation endpoint, resolves pending vertical
// centering, draws all layers and connectors onto surf, and displays the
// result when opts.AutoDisplay is set.
//
// An operation referencing an unknown id aborts the render with an
// UNRESOLVED_ENDPOINT error before anything reaches the surface: a
// partial diagram would be worse than none.
func (r *Freeform) Render(ctx context.Context, surf Surface, opts Options) error {
	opts = opts.withDefaults()

	if len(r.byID) == 0 {
		return errors.New(errors.ErrCodeInvalidDiagram, "no layers to render")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Endpoints first, so nothing is drawn for an invalid diagram.
	for _, bo := range r.ops {
		for _, id := range []string{bo.from, bo.to} {
			if _, ok := r.byID[id]; !ok {
				return errors.New(errors.ErrCodeUnresolvedEndpoint,
					"operation references unknown layer %q", id)
			}
		}
	}

	for _, id := range r.order {
		r.byID[id].ResolveAutoY()
	}

	frame := scene.NewFrame()
	captions := scene.NewCollection("captions")

	for _, id := range r.order {
		l := r.byID[id]
		col := l.Drawables()
		col.ID = id
		frame.Add(col)
		if l.Label() != "" {
			captions.Append(layerCaption(l, opts))
		}
	}

	for _, bo := range r.ops {
		a, b := r.byID[bo.from], r.byID[bo.to]
		col, err := bo.op.Drawables(a, b)
		if err != nil {
			return err
		}
		frame.Add(col)
		if bo.op.Label() != "" {
			captions.Append(opCaption(bo.op, a, b, opts))
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
