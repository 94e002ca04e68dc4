package surface

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// DefaultScale is the raster oversampling factor applied when a
// RasterSpec leaves Scale unset.
const DefaultScale = 2.0

// RasterSpec configures a raster surface.
type RasterSpec struct {
	// Scale multiplies scene units into pixels. Defaults to DefaultScale.
	Scale float64
	// Font names a system font for labels. Empty uses the embedded
	// Go Regular face.
	Font string
}

// Raster renders a scene frame into a pixel image via fogleman/gg.
type Raster struct {
	scale float64
	ttf   *truetype.Font
	faces map[float64]font.Face

	dc    *gg.Context
	drawn bool

	// origin of the frame bounds, subtracted before scaling
	ox, oy float64
}

// NewRaster creates a raster surface, resolving the requested font up
// front so a missing font fails before any drawing happens.
func NewRaster(spec RasterSpec) (*Raster, error) {
	scale := spec.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	data, err := ResolveFont(spec.Font)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "parse font %q", spec.Font)
	}
	return &Raster{
		scale: scale,
		ttf:   ttf,
		faces: make(map[float64]font.Face),
	}, nil
}

// Draw rasterizes the frame, replacing any prior content.
func (r *Raster) Draw(frame *scene.Frame) error {
	if frame == nil {
		return errors.New(errors.ErrCodeInvalidDiagram, "nil frame")
	}
	bounds := frame.Bounds()
	w := int(math.Ceil(bounds.Width() * r.scale))
	h := int(math.Ceil(bounds.Height() * r.scale))
	if w <= 0 || h <= 0 {
		return errors.New(errors.ErrCodeInvalidDiagram, "frame has no drawable extent")
	}
	r.ox, r.oy = bounds.X0, bounds.Y0
	r.dc = gg.NewContext(w, h)
	r.dc.SetRGB(1, 1, 1)
	r.dc.Clear()
	for _, col := range frame.Collections {
		for _, p := range col.Prims {
			if err := r.drawPrimitive(p); err != nil {
				return err
			}
		}
	}
	r.drawn = true
	return nil
}

func (r *Raster) drawPrimitive(p scene.Primitive) error {
	dc := r.dc
	switch v := p.(type) {
	case scene.Rect:
		dc.DrawRectangle(r.px(v.X), r.py(v.Y), v.W*r.scale, v.H*r.scale)
		r.paint(v.Style)
	case scene.Circle:
		dc.DrawCircle(r.px(v.C.X), r.py(v.C.Y), v.R*r.scale)
		r.paint(v.Style)
	case scene.Polygon:
		for i, pt := range v.Pts {
			if i == 0 {
				dc.MoveTo(r.px(pt.X), r.py(pt.Y))
			} else {
				dc.LineTo(r.px(pt.X), r.py(pt.Y))
			}
		}
		dc.ClosePath()
		r.paint(v.Style)
	case scene.Polyline:
		for i, pt := range v.Pts {
			if i == 0 {
				dc.MoveTo(r.px(pt.X), r.py(pt.Y))
			} else {
				dc.LineTo(r.px(pt.X), r.py(pt.Y))
			}
		}
		dc.SetRGB(v.Style.Stroke.R, v.Style.Stroke.G, v.Style.Stroke.B)
		dc.SetLineWidth(strokeWidth(v.Style) * r.scale)
		dc.Stroke()
	case scene.Text:
		r.drawText(v)
	case scene.Image:
		r.drawImage(v)
	default:
		return errors.New(errors.ErrCodeInternal, "unknown primitive %T", p)
	}
	return nil
}

func (r *Raster) drawText(t scene.Text) {
	dc := r.dc
	dc.SetFontFace(r.face(t.Size))
	dc.SetRGB(t.Style.Stroke.R, t.Style.Stroke.G, t.Style.Stroke.B)
	lines := strings.Split(t.Content, "\n")
	lineHeight := t.Size * 1.2 * r.scale
	x := r.px(t.At.X)
	var top float64
	switch t.VAlign {
	case scene.AlignTop:
		top = r.py(t.At.Y)
	case scene.AlignBottom:
		top = r.py(t.At.Y) - float64(len(lines))*lineHeight
	default:
		top = r.py(t.At.Y) - float64(len(lines))*lineHeight/2
	}
	for i, line := range lines {
		// anchor each line at its own vertical center
		y := top + (float64(i)+0.5)*lineHeight
		dc.DrawStringAnchored(line, x, y, 0.5, 0.35)
	}
}

func (r *Raster) drawImage(im scene.Image) {
	w := int(math.Round(im.W * r.scale))
	h := int(math.Round(im.H * r.scale))
	if w <= 0 || h <= 0 || im.Img == nil {
		return
	}
	fitted := imaging.Fit(im.Img, w, h, imaging.Lanczos)
	fb := fitted.Bounds()
	// center the fitted image inside its box
	x := int(math.Round(r.px(im.X))) + (w-fb.Dx())/2
	y := int(math.Round(r.py(im.Y))) + (h-fb.Dy())/2
	r.dc.DrawImage(fitted, x, y)
}

func (r *Raster) paint(st scene.Style) {
	dc := r.dc
	if st.Fill != nil {
		dc.SetRGB(st.Fill.R, st.Fill.G, st.Fill.B)
		dc.FillPreserve()
	}
	dc.SetRGB(st.Stroke.R, st.Stroke.G, st.Stroke.B)
	dc.SetLineWidth(strokeWidth(st) * r.scale)
	dc.Stroke()
}

func (r *Raster) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.ttf, &truetype.Options{Size: size * r.scale})
	r.faces[size] = f
	return f
}

func (r *Raster) px(x float64) float64 { return (x - r.ox) * r.scale }
func (r *Raster) py(y float64) float64 { return (y - r.oy) * r.scale }

// Image returns the rendered image. Nil until Draw succeeds.
func (r *Raster) Image() image.Image {
	if !r.drawn {
		return nil
	}
	return r.dc.Image()
}

// WriteTo writes the rendered image as PNG to w.
func (r *Raster) WriteTo(w io.Writer) (int64, error) {
	if !r.drawn {
		return 0, errors.New(errors.ErrCodeInvalidDiagram, "nothing rendered yet")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.dc.Image()); err != nil {
		return 0, err
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// Export writes the rendered image to path as PNG.
func (r *Raster) Export(path string) error {
	if !r.drawn {
		return errors.New(errors.ErrCodeInvalidDiagram, "nothing rendered yet")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, r.dc.Image())
}

// Display opens the rendered image in the platform viewer.
func (r *Raster) Display() error {
	if !r.drawn {
		return errors.New(errors.ErrCodeInvalidDiagram, "nothing rendered yet")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.dc.Image()); err != nil {
		return err
	}
	return displayTemp(buf.Bytes(), FormatPNG)
}
