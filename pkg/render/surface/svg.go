package surface

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// SVG renders a scene frame into SVG markup held in memory.
type SVG struct {
	buf   bytes.Buffer
	drawn bool
}

// NewSVG creates an empty SVG surface.
func NewSVG() *SVG {
	return &SVG{}
}

// Draw serializes the frame into SVG markup, replacing any prior content.
func (s *SVG) Draw(frame *scene.Frame) error {
	if frame == nil {
		return errors.New(errors.ErrCodeInvalidDiagram, "nil frame")
	}
	s.buf.Reset()
	bounds := frame.Bounds()
	w, h := bounds.Width(), bounds.Height()
	if w <= 0 || h <= 0 {
		return errors.New(errors.ErrCodeInvalidDiagram, "frame has no drawable extent")
	}
	fmt.Fprintf(&s.buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(bounds.X0), num(bounds.Y0), num(w), num(h), num(w), num(h))
	for _, col := range frame.Collections {
		fmt.Fprintf(&s.buf, `  <g id="%s">`+"\n", escape(col.ID))
		for _, p := range col.Prims {
			if err := s.writePrimitive(p); err != nil {
				return err
			}
		}
		s.buf.WriteString("  </g>\n")
	}
	s.buf.WriteString("</svg>\n")
	s.drawn = true
	return nil
}

func (s *SVG) writePrimitive(p scene.Primitive) error {
	switch v := p.(type) {
	case scene.Rect:
		fmt.Fprintf(&s.buf, `    <rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
			num(v.X), num(v.Y), num(v.W), num(v.H), styleAttrs(v.Style))
	case scene.Circle:
		fmt.Fprintf(&s.buf, `    <circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
			num(v.C.X), num(v.C.Y), num(v.R), styleAttrs(v.Style))
	case scene.Polygon:
		fmt.Fprintf(&s.buf, `    <polygon points="%s"%s/>`+"\n",
			points(v.Pts), styleAttrs(v.Style))
	case scene.Polyline:
		fmt.Fprintf(&s.buf, `    <polyline points="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
			points(v.Pts), hex(v.Style.Stroke), num(strokeWidth(v.Style)))
	case scene.Text:
		s.writeText(v)
	case scene.Image:
		return s.writeImage(v)
	default:
		return errors.New(errors.ErrCodeInternal, "unknown primitive %T", p)
	}
	return nil
}

func (s *SVG) writeText(t scene.Text) {
	lines := strings.Split(t.Content, "\n")
	lineHeight := t.Size * 1.2
	var first float64
	switch t.VAlign {
	case scene.AlignTop:
		first = t.At.Y + t.Size
	case scene.AlignBottom:
		first = t.At.Y - float64(len(lines)-1)*lineHeight
	default:
		block := float64(len(lines)-1) * lineHeight
		first = t.At.Y - block/2 + t.Size*0.35
	}
	fmt.Fprintf(&s.buf,
		`    <text x="%s" y="%s" font-size="%s" text-anchor="middle" fill="%s">`+"\n",
		num(t.At.X), num(first), num(t.Size), hex(t.Style.Stroke))
	for i, line := range lines {
		dy := 0.0
		if i > 0 {
			dy = lineHeight
		}
		fmt.Fprintf(&s.buf, `      <tspan x="%s" dy="%s">%s</tspan>`+"\n",
			num(t.At.X), num(dy), escape(line))
	}
	s.buf.WriteString("    </text>\n")
}

func (s *SVG) writeImage(img scene.Image) error {
	var enc bytes.Buffer
	if err := png.Encode(&enc, img.Img); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode embedded image")
	}
	fmt.Fprintf(&s.buf,
		`    <image x="%s" y="%s" width="%s" height="%s" href="data:image/png;base64,%s" preserveAspectRatio="xMidYMid meet"/>`+"\n",
		num(img.X), num(img.Y), num(img.W), num(img.H),
		base64.StdEncoding.EncodeToString(enc.Bytes()))
	return nil
}

// Bytes returns the rendered markup. Empty until Draw succeeds.
func (s *SVG) Bytes() []byte {
	return s.buf.Bytes()
}

// WriteTo writes the rendered markup to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	if !s.drawn {
		return 0, errors.New(errors.ErrCodeInvalidDiagram, "nothing rendered yet")
	}
	n, err := w.Write(s.buf.Bytes())
	return int64(n), err
}

// Export writes the rendered markup to path.
func (s *SVG) Export(path string) error {
	if !s.drawn {
		return errors.New(errors.ErrCodeInvalidDiagram, "nothing rendered yet")
	}
	return os.WriteFile(path, s.buf.Bytes(), 0o644)
}

// Display opens the rendered markup in the platform viewer.
func (s *SVG) Display() error {
	if !s.drawn {
		return errors.New(errors.ErrCodeInvalidDiagram, "nothing rendered yet")
	}
	return displayTemp(s.buf.Bytes(), FormatSVG)
}

func styleAttrs(st scene.Style) string {
	fill := "none"
	if st.Fill != nil {
		fill = hex(*st.Fill)
	}
	return fmt.Sprintf(` fill="%s" stroke="%s" stroke-width="%s"`,
		fill, hex(st.Stroke), num(strokeWidth(st)))
}

func strokeWidth(st scene.Style) float64 {
	if st.StrokeWidth <= 0 {
		return 1
	}
	return st.StrokeWidth
}

func points(pts []geom.Pt) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(p.X))
		b.WriteByte(',')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

func hex(c scene.RGB) string {
	clamp := func(v float64) int {
		n := int(v*255 + 0.5)
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return n
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}

func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#39;")
	return r.Replace(s)
}
