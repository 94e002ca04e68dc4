// Package pipeline drives the complete parse → build → render flow for
// declarative diagram descriptions.
//
// The CLI and programmatic callers share the same Runner so a TOML
// description renders identically everywhere:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "network.toml",
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/render"
	"github.com/nhansendev/drawnet/pkg/render/surface"
)

// Options configures a pipeline run.
type Options struct {
	// Input is the path of a TOML diagram description. Ignored when
	// Description is set.
	Input string

	// Description is a pre-parsed diagram, for callers that build the
	// description programmatically.
	Description *Description

	// Formats lists the artifacts to produce. Defaults to ["svg"].
	Formats []string

	// Scale is the raster oversampling factor for PNG output.
	Scale float64

	// Font names a system font for raster labels. Empty uses the
	// embedded default face.
	Font string

	// Display opens the first rendered artifact with the platform
	// viewer after a successful run.
	Display bool

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" && o.Description == nil {
		return errors.New(errors.ErrCodeInvalidDiagram, "input path or description is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{surface.FormatSVG}
	}
	if err := surface.ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Description is the parsed diagram.
	Description *Description

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayerCount     int
	OperationCount int
	ParseTime      time.Duration
	RenderTime     time.Duration
}

// Runner executes the diagram pipeline. It is stateless apart from its
// logger; multiple goroutines can share one Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → build → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	parseStart := time.Now()
	desc := opts.Description
	if desc == nil {
		var err error
		desc, err = ParseFile(opts.Input)
		if err != nil {
			return nil, err
		}
	} else if err := desc.Validate(); err != nil {
		return nil, err
	}
	result := &Result{
		Description: desc,
		Artifacts:   make(map[string][]byte),
	}
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.LayerCount = len(desc.Layers)
	result.Stats.OperationCount = len(desc.Operations)

	logger.Info("parsed description",
		"layout", layoutName(desc),
		"layers", len(desc.Layers),
		"operations", len(desc.Operations),
		"duration", result.Stats.ParseTime)

	engine, ropts, err := Build(desc)
	if err != nil {
		return nil, err
	}
	ropts.Logger = logger

	renderStart := time.Now()
	var displayed bool
	for _, format := range opts.Formats {
		surf, err := r.newSurface(format, opts)
		if err != nil {
			return nil, err
		}
		if err := engine.Render(ctx, surf, ropts); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if _, err := surf.WriteTo(&buf); err != nil {
			return nil, err
		}
		result.Artifacts[format] = buf.Bytes()

		if opts.Display && !displayed {
			if err := surf.Display(); err != nil {
				logger.Warn("could not open viewer", "err", err)
			}
			displayed = true
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// writableSurface is a render surface the pipeline can also serialize.
type writableSurface interface {
	render.Surface
	io.WriterTo
}

func (r *Runner) newSurface(format string, opts Options) (writableSurface, error) {
	switch format {
	case surface.FormatSVG:
		return surface.NewSVG(), nil
	case surface.FormatPNG:
		return surface.NewRaster(surface.RasterSpec{Scale: opts.Scale, Font: opts.Font})
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
	}
}

func layoutName(d *Description) string {
	if d.IsFreeform() {
		return LayoutFreeform
	}
	return LayoutSequential
}
