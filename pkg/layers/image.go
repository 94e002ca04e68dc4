package layers

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// ImageSpec configures an ImageLayer.
type ImageSpec struct {
	Path          string // image file to load
	Width, Height float64
	Label         string
	Below         bool
	X             float64
	Y             *float64
}

// ImageLayer places a raster image (e.g., an input sample) in the diagram,
// fitted into the declared box with a thin border.
type ImageLayer struct {
	base
	img image.Image
}

// NewImage creates an image layer by loading the file at spec.Path.
func NewImage(spec ImageSpec) (*ImageLayer, error) {
	if err := errors.ValidateDimensions(spec.Width, spec.Height); err != nil {
		return nil, err
	}
	img, err := imaging.Open(spec.Path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "load image %s", spec.Path)
	}
	return newImageLayer(spec, img), nil
}

// NewImageFromImage creates an image layer from an already decoded image.
func NewImageFromImage(spec ImageSpec, img image.Image) (*ImageLayer, error) {
	if err := errors.ValidateDimensions(spec.Width, spec.Height); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "image cannot be nil")
	}
	return newImageLayer(spec, img), nil
}

func newImageLayer(spec ImageSpec, img image.Image) *ImageLayer {
	return &ImageLayer{
		base: newBase(spec.Width, spec.Height, spec.Label, spec.Below, spec.X, spec.Y),
		img:  img,
	}
}

// Image returns the decoded source image.
func (l *ImageLayer) Image() image.Image { return l.img }

func (l *ImageLayer) Corners() geom.Corners { return l.boxCorners() }

func (l *ImageLayer) Drawables() scene.Collection {
	return scene.NewCollection("",
		scene.Image{X: l.x, Y: l.y, W: l.width, H: l.height, Img: l.img},
		scene.Rect{X: l.x, Y: l.y, W: l.width, H: l.height, Style: scene.Stroked(1)},
	)
}
