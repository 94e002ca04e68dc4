// Package surface implements the drawing surfaces a renderer delegates
// to: an SVG surface that streams markup and a raster surface built on
// fogleman/gg for PNG output.
//
// A surface consumes a finished scene frame exactly once; afterwards the
// result can be written, exported to a file, or displayed with the
// platform viewer.
package surface

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/nhansendev/drawnet/pkg/errors"
)

// Supported export formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of recognized export formats.
var ValidFormats = map[string]bool{FormatSVG: true, FormatPNG: true}

// ValidateFormats checks that all requested formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be 'svg' or 'png')", f)
		}
	}
	return nil
}

// ResolveFont returns TTF bytes for the named font, searched through the
// system font directories. An empty name returns the embedded Go Regular
// face so raster text always works without installed fonts.
func ResolveFont(name string) ([]byte, error) {
	if name == "" {
		return goregular.TTF, nil
	}
	path, err := findfont.Find(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "font %q not found", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "read font %s", path)
	}
	return data, nil
}

// ListFonts returns the font files discoverable in the system font paths.
func ListFonts() []string {
	return findfont.List()
}

// openViewer opens path with the platform image viewer.
func openViewer(path string) error {
	viewer := "xdg-open"
	if runtime.GOOS == "darwin" {
		viewer = "open"
	}
	if _, err := exec.LookPath(viewer); err != nil {
		return errors.Wrap(errors.ErrCodeUnsupported, err,
			"no viewer available to display %s", path)
	}
	cmd := exec.Command(viewer, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s %s: %w", viewer, path, err)
	}
	// Viewers detach; reap in the background so we don't leave zombies.
	go func() { _ = cmd.Wait() }()
	return nil
}

// displayTemp writes data to a temp file with the given extension and
// opens it with the platform viewer.
func displayTemp(data []byte, ext string) error {
	f, err := os.CreateTemp("", "drawnet-*."+ext)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return openViewer(f.Name())
}
