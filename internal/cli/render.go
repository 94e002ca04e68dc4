package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhansendev/drawnet/pkg/pipeline"
	"github.com/nhansendev/drawnet/pkg/render/surface"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output base path (extension added per format)
	formats []string // output formats: "svg", "png"
	scale   float64  // raster oversampling factor
	font    string   // system font for raster labels
	display bool     // open the first artifact with the platform viewer
}

// newRenderCmd creates the render command for turning a TOML diagram
// description into image artifacts.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		scale:   surface.DefaultScale,
		display: false,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram description to SVG and/or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := surface.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: input name without extension)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster oversampling factor for PNG output")
	cmd.Flags().StringVar(&opts.font, "font", "", "system font for raster labels")
	cmd.Flags().BoolVar(&opts.display, "display", opts.display, "open the rendered diagram with the platform viewer")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{surface.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:   input,
		Formats: opts.formats,
		Scale:   opts.scale,
		Font:    opts.font,
		Display: opts.display,
		Logger:  logger,
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Rendering failed: %v", err))
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Rendered %s", filepath.Base(input)))
	printStats(result.Stats.LayerCount, result.Stats.OperationCount)

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	for _, format := range opts.formats {
		path := base + "." + format
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	prog.done(fmt.Sprintf("Wrote %d artifact(s)", len(opts.formats)))
	return nil
}
