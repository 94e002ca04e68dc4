package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nhansendev/drawnet/pkg/errors"
)

// Layout kinds accepted in a diagram description.
const (
	LayoutSequential = "sequential"
	LayoutFreeform   = "freeform"
)

// Description is a declarative diagram read from a TOML file. It mirrors
// the programmatic API: a handful of global knobs, an ordered list of
// layers, and a list of operations connecting them.
type Description struct {
	Diagram    DiagramConfig `toml:"diagram"`
	Layers     []LayerConfig `toml:"layers"`
	Operations []OpConfig    `toml:"operations"`

	// dir is where the description was loaded from; relative asset
	// paths (image layers) resolve against it.
	dir string
}

// DiagramConfig holds the global layout knobs.
type DiagramConfig struct {
	// Layout selects the renderer: "sequential" (default) or "freeform".
	Layout     string    `toml:"layout"`
	HSpace     float64   `toml:"hspace"`
	DSpace     float64   `toml:"dspace"`
	TextOffset float64   `toml:"text_offset"`
	LabelSize  float64   `toml:"label_size"`
	ManualX    []float64 `toml:"manual_x"`
}

// LayerConfig is the union of all layer kinds' settings; Kind selects
// which subset applies.
type LayerConfig struct {
	Kind  string   `toml:"kind"`
	ID    string   `toml:"id"`
	Label string   `toml:"label"`
	Below bool     `toml:"below"`
	X     float64  `toml:"x"`
	Y     *float64 `toml:"y"`

	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Channels int     `toml:"channels"`
	Features int     `toml:"features"`
	Diameter float64 `toml:"diameter"`
	Spacing  float64 `toml:"spacing"`

	Limited       int     `toml:"limited"`
	LimitedRadius float64 `toml:"limited_radius"`
	SkipInterval  int     `toml:"skip_interval"`
	EndChannels   int     `toml:"end_channels"`
	EndFeatures   int     `toml:"end_features"`

	Fill  []float64 `toml:"fill"`
	Dark  []float64 `toml:"dark"`
	Light []float64 `toml:"light"`

	Coords [][]float64 `toml:"coords"`
	Path   string      `toml:"path"`
}

// OpConfig is the union of all operation kinds' settings.
type OpConfig struct {
	Kind  string `toml:"kind"`
	From  string `toml:"from"`
	To    string `toml:"to"`
	Gap   *int   `toml:"gap"`
	Label string `toml:"label"`
	Below bool   `toml:"below"`

	LineWidth float64 `toml:"line_width"`
	ArrowSize float64 `toml:"arrow_size"`

	KernelW float64 `toml:"kernel_w"`
	KernelH float64 `toml:"kernel_h"`
	Stride  int     `toml:"stride"`

	CountA     int `toml:"count_a"`
	CountB     int `toml:"count_b"`
	LimitEndsA int `toml:"limit_ends_a"`
	LimitEndsB int `toml:"limit_ends_b"`
}

// ParseFile reads and validates a diagram description from a TOML file.
func ParseFile(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "parse %s", path)
	}
	d.dir = filepath.Dir(path)
	return d, nil
}

// Parse reads and validates a diagram description from r. Relative asset
// paths resolve against the working directory.
func Parse(r io.Reader) (*Description, error) {
	var d Description
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDiagram, err, "decode description")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidDiagram,
			"unknown keys: %s", strings.Join(names, ", "))
	}
	d.dir = "."
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the description's structural rules before any layer or
// operation is constructed.
func (d *Description) Validate() error {
	switch d.Diagram.Layout {
	case "", LayoutSequential, LayoutFreeform:
	default:
		return errors.New(errors.ErrCodeInvalidDiagram,
			"invalid layout: %q (must be 'sequential' or 'freeform')", d.Diagram.Layout)
	}
	if len(d.Layers) == 0 {
		return errors.New(errors.ErrCodeInvalidDiagram, "description has no layers")
	}

	freeform := d.Diagram.Layout == LayoutFreeform
	if freeform && len(d.Diagram.ManualX) > 0 {
		return errors.New(errors.ErrCodeInvalidDiagram,
			"manual_x only applies to the sequential layout")
	}
	for i, l := range d.Layers {
		if l.Kind == "" {
			return errors.New(errors.ErrCodeInvalidDiagram, "layer %d: kind is required", i)
		}
		if freeform && l.ID == "" {
			return errors.New(errors.ErrCodeInvalidDiagram,
				"layer %d: id is required in the freeform layout", i)
		}
	}
	for i, o := range d.Operations {
		if o.Kind == "" {
			return errors.New(errors.ErrCodeInvalidDiagram, "operation %d: kind is required", i)
		}
		if freeform {
			if o.From == "" || o.To == "" {
				return errors.New(errors.ErrCodeInvalidDiagram,
					"operation %d: from and to are required in the freeform layout", i)
			}
			if o.Gap != nil {
				return errors.New(errors.ErrCodeInvalidDiagram,
					"operation %d: gap only applies to the sequential layout", i)
			}
		} else {
			if o.From != "" || o.To != "" {
				return errors.New(errors.ErrCodeInvalidDiagram,
					"operation %d: from/to only apply to the freeform layout", i)
			}
			if o.Gap != nil && *o.Gap < 0 {
				return errors.New(errors.ErrCodeInvalidDiagram,
					"operation %d: gap must be non-negative, got %d", i, *o.Gap)
			}
		}
	}
	return nil
}

// IsFreeform reports whether the description uses the freeform layout.
func (d *Description) IsFreeform() bool {
	return d.Diagram.Layout == LayoutFreeform
}
