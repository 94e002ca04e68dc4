package scene

import "github.com/nhansendev/drawnet/pkg/geom"

// Default frame margins as fractions of the content extent. The vertical
// margin is generous to leave room for labels above and below the shapes.
const (
	DefaultXMargin = 0.05
	DefaultYMargin = 0.30
)

// Frame is the finished set of collections a renderer hands to a surface,
// together with the padded bounds that become the output viewport.
type Frame struct {
	Collections []Collection
	XMargin     float64 // fraction of content width added on each side
	YMargin     float64 // fraction of content height added on each side
}

// NewFrame creates an empty frame with the default margins.
func NewFrame() *Frame {
	return &Frame{XMargin: DefaultXMargin, YMargin: DefaultYMargin}
}

// Add appends non-empty collections to the frame in order.
func (f *Frame) Add(cols ...Collection) {
	for _, c := range cols {
		if c.Empty() {
			continue
		}
		f.Collections = append(f.Collections, c)
	}
}

// Bounds returns the union of the collection extents with margins applied.
func (f *Frame) Bounds() geom.Rect {
	var r geom.Rect
	first := true
	for _, c := range f.Collections {
		if first {
			r = c.Bounds()
			first = false
			continue
		}
		r = r.Union(c.Bounds())
	}
	return r.Expand(r.Width()*f.XMargin, r.Height()*f.YMargin)
}
