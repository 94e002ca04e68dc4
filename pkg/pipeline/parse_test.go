package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nhansendev/drawnet/pkg/errors"
)

const sequentialTOML = `
[diagram]
layout = "sequential"
hspace = 120.0

[[layers]]
kind = "stack2d"
channels = 16
width = 64.0
height = 64.0
label = "Input"

[[layers]]
kind = "circles1d"
features = 10
diameter = 12.0

[[operations]]
kind = "dense"
limit_ends_a = 4
`

func TestParseSequential(t *testing.T) {
	d, err := Parse(strings.NewReader(sequentialTOML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if d.IsFreeform() {
		t.Error("layout should be sequential")
	}
	if d.Diagram.HSpace != 120 {
		t.Errorf("hspace = %g, want 120", d.Diagram.HSpace)
	}
	if len(d.Layers) != 2 {
		t.Fatalf("parsed %d layers, want 2", len(d.Layers))
	}
	if d.Layers[0].Kind != "stack2d" || d.Layers[0].Channels != 16 {
		t.Errorf("first layer = %+v, want stack2d with 16 channels", d.Layers[0])
	}
	if d.Layers[0].Y != nil {
		t.Error("omitted y should stay nil for auto centering")
	}
	if len(d.Operations) != 1 || d.Operations[0].LimitEndsA != 4 {
		t.Errorf("operations = %+v, want one dense with limit_ends_a 4", d.Operations)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{
			name: "no layers",
			toml: `[diagram]` + "\n" + `layout = "sequential"`,
		},
		{
			name: "bad layout",
			toml: `[diagram]` + "\n" + `layout = "radial"` + "\n\n" + `[[layers]]` + "\n" + `kind = "block"`,
		},
		{
			name: "missing layer kind",
			toml: `[[layers]]` + "\n" + `width = 10.0`,
		},
		{
			name: "unknown key",
			toml: `[[layers]]` + "\n" + `kind = "block"` + "\n" + `widht = 10.0`,
		},
		{
			name: "freeform without ids",
			toml: `[diagram]` + "\n" + `layout = "freeform"` + "\n\n" + `[[layers]]` + "\n" + `kind = "block"`,
		},
		{
			name: "freeform op without endpoints",
			toml: `[diagram]` + "\n" + `layout = "freeform"` + "\n\n" +
				`[[layers]]` + "\n" + `kind = "block"` + "\n" + `id = "a"` + "\n\n" +
				`[[operations]]` + "\n" + `kind = "arrow"`,
		},
		{
			name: "sequential op with endpoints",
			toml: `[[layers]]` + "\n" + `kind = "block"` + "\n\n" +
				`[[operations]]` + "\n" + `kind = "arrow"` + "\n" + `from = "a"` + "\n" + `to = "b"`,
		},
		{
			name: "freeform with manual x",
			toml: `[diagram]` + "\n" + `layout = "freeform"` + "\n" + `manual_x = [0.0]` + "\n\n" +
				`[[layers]]` + "\n" + `kind = "block"` + "\n" + `id = "a"`,
		},
		{
			name: "negative gap",
			toml: `[[layers]]` + "\n" + `kind = "block"` + "\n\n" +
				`[[operations]]` + "\n" + `kind = "arrow"` + "\n" + `gap = -1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.toml))
			if !errors.Is(err, errors.ErrCodeInvalidDiagram) {
				t.Errorf("want INVALID_DIAGRAM, got %v", err)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.toml")
	if err := os.WriteFile(path, []byte(sequentialTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if d.dir != dir {
		t.Errorf("description dir = %q, want %q", d.dir, dir)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("no-such-file.toml")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file should fail with FILE_NOT_FOUND, got %v", err)
	}
}

func TestBuildLayerKinds(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LayerConfig
		wantErr bool
	}{
		{"block", LayerConfig{Kind: "block", Width: 10, Height: 10}, false},
		{"stack2d", LayerConfig{Kind: "stack2d", Channels: 4, Width: 10, Height: 10}, false},
		{"circles1d", LayerConfig{Kind: "circles1d", Features: 4, Diameter: 10}, false},
		{"rects1d", LayerConfig{Kind: "rects1d", Features: 4, Width: 10, Height: 2}, false},
		{"diagonal", LayerConfig{Kind: "diagonal", Width: 10, Height: 10}, false},
		{"poly", LayerConfig{Kind: "poly", Coords: [][]float64{{0, 0}, {10, 0}, {5, 5}}}, false},
		{"unknown kind", LayerConfig{Kind: "sphere"}, true},
		{"invalid dims", LayerConfig{Kind: "block", Width: -1, Height: 10}, true},
		{"bad coords pair", LayerConfig{Kind: "poly", Coords: [][]float64{{0}, {1, 1}, {2, 2}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildLayer(tt.cfg, ".")
			if (err != nil) != tt.wantErr {
				t.Errorf("buildLayer() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildOpKinds(t *testing.T) {
	for _, kind := range []string{"arrow", "linear", "dense", "blank"} {
		if _, err := buildOp(OpConfig{Kind: kind}); err != nil {
			t.Errorf("buildOp(%q) error = %v", kind, err)
		}
	}
	if _, err := buildOp(OpConfig{Kind: "conv2d", KernelW: 3, KernelH: 3}); err != nil {
		t.Errorf("buildOp(conv2d) error = %v", err)
	}
	if _, err := buildOp(OpConfig{Kind: "conv2d"}); err == nil {
		t.Error("conv2d without kernel dimensions should fail")
	}
	if _, err := buildOp(OpConfig{Kind: "teleport"}); err == nil {
		t.Error("unknown operation kind should fail")
	}
}

func TestRGBPtr(t *testing.T) {
	if got, err := rgbPtr(nil, "fill"); err != nil || got != nil {
		t.Errorf("empty color = (%v, %v), want (nil, nil)", got, err)
	}
	got, err := rgbPtr([]float64{0.2, 0.4, 0.6}, "fill")
	if err != nil || got == nil || got.G != 0.4 {
		t.Errorf("valid color = (%v, %v)", got, err)
	}
	if _, err := rgbPtr([]float64{0.2, 0.4}, "fill"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("two-channel color should fail with INVALID_STYLE, got %v", err)
	}
	if _, err := rgbPtr([]float64{0, 0, 1.5}, "fill"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("out-of-range channel should fail with INVALID_STYLE, got %v", err)
	}
}
