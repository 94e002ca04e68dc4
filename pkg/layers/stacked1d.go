package layers

import (
	"fmt"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// Circles1DSpec configures a Circles1D layer.
type Circles1DSpec struct {
	Features      int     // number of stacked circles
	Diameter      float64 // base circle diameter
	Label         string
	Fill          *scene.RGB
	Limited       int     // if non-zero, display at most this many features
	LimitedRadius float64 // placeholder dot size when limiting (default diameter/4)
	SkipInterval  int     // draw one placeholder every n positions (default 1)
	EndFeatures   int     // features still shown on each end when limiting (default 5)
	Spacing       float64 // gap between stacked circles
	Below         bool
	X             float64
	Y             *float64
}

// Circles1D draws a feature vector as a vertical stack of circles.
type Circles1D struct {
	base
	stack1d
	diameter float64
	fill     scene.RGB
}

// NewCircles1D creates a vertically stacked circle layer.
func NewCircles1D(spec Circles1DSpec) (*Circles1D, error) {
	if spec.Diameter <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry,
			"diameter must be positive, got %g", spec.Diameter)
	}
	if err := errors.ValidateCount("features", spec.Features); err != nil {
		return nil, err
	}
	if err := errors.ValidateLimit(spec.Limited, spec.Features); err != nil {
		return nil, err
	}

	l := &Circles1D{
		base: newBase(spec.Diameter, spec.Diameter,
			featureLabel(spec.Label, spec.Features), spec.Below, spec.X, spec.Y),
		stack1d: stack1d{
			features:    spec.Features,
			limited:     spec.Limited,
			limitedRad:  orFloat(spec.LimitedRadius, spec.Diameter/4),
			skipIval:    orInt(spec.SkipInterval, 1),
			endFeatures: clampEnds(orInt(spec.EndFeatures, 5), spec.Limited),
			pitch:       spec.Diameter + spec.Spacing,
			spacing:     spec.Spacing,
		},
		diameter: spec.Diameter,
		fill:     fillOr(spec.Fill, scene.ColorPale),
	}
	l.totH = l.stack1d.totalHeight()
	return l, nil
}

func (l *Circles1D) AnchorCount() int { return l.stack1d.shown() }

func (l *Circles1D) Corners() geom.Corners { return l.boxCorners() }

func (l *Circles1D) Drawables() scene.Collection {
	col := scene.NewCollection("")
	rad := l.diameter / 2
	l.stack1d.walk(
		func(i int) {
			col.Append(scene.Circle{
				C:     geom.Pt{X: l.x + rad, Y: l.y + l.pitch*float64(i) + rad},
				R:     rad,
				Style: scene.Filled(l.fill),
			})
		},
		func(i int) {
			col.Append(scene.Circle{
				C:     geom.Pt{X: l.x + rad, Y: l.y + l.pitch*float64(i) + rad},
				R:     l.limitedRad,
				Style: scene.Filled(scene.ColorInk),
			})
		},
	)
	return col
}

// Rects1DSpec configures a Rects1D layer.
type Rects1DSpec struct {
	Features      int
	Width, Height float64 // base rectangle dimensions
	Label         string
	Fill          *scene.RGB
	Limited       int
	LimitedRadius float64 // placeholder dot size when limiting (default 5)
	SkipInterval  int     // default 1
	EndFeatures   int     // default 5
	Spacing       float64
	Below         bool
	X             float64
	Y             *float64
}

// Rects1D draws a feature vector as a vertical stack of rectangles.
type Rects1D struct {
	base
	stack1d
	fill scene.RGB
}

// NewRects1D creates a vertically stacked rectangle layer.
func NewRects1D(spec Rects1DSpec) (*Rects1D, error) {
	if err := errors.ValidateDimensions(spec.Width, spec.Height); err != nil {
		return nil, err
	}
	if err := errors.ValidateCount("features", spec.Features); err != nil {
		return nil, err
	}
	if err := errors.ValidateLimit(spec.Limited, spec.Features); err != nil {
		return nil, err
	}

	l := &Rects1D{
		base: newBase(spec.Width, spec.Height,
			featureLabel(spec.Label, spec.Features), spec.Below, spec.X, spec.Y),
		stack1d: stack1d{
			features:    spec.Features,
			limited:     spec.Limited,
			limitedRad:  orFloat(spec.LimitedRadius, 5),
			skipIval:    orInt(spec.SkipInterval, 1),
			endFeatures: clampEnds(orInt(spec.EndFeatures, 5), spec.Limited),
			pitch:       spec.Height + spec.Spacing,
			spacing:     spec.Spacing,
		},
		fill: fillOr(spec.Fill, scene.ColorPale),
	}
	l.totH = l.stack1d.totalHeight()
	return l, nil
}

func (l *Rects1D) AnchorCount() int { return l.stack1d.shown() }

func (l *Rects1D) Corners() geom.Corners { return l.boxCorners() }

func (l *Rects1D) Drawables() scene.Collection {
	col := scene.NewCollection("")
	l.stack1d.walk(
		func(i int) {
			col.Append(scene.Rect{
				X: l.x, Y: l.y + l.pitch*float64(i), W: l.width, H: l.height,
				Style: scene.Filled(l.fill),
			})
		},
		func(i int) {
			col.Append(scene.Circle{
				C: geom.Pt{
					X: l.x + l.width/2,
					Y: l.y + l.pitch*float64(i) + l.height/2,
				},
				R:     l.limitedRad,
				Style: scene.Filled(scene.ColorInk),
			})
		},
	)
	return col
}

// stack1d holds the vertical stacking and display-limiting state shared by
// the 1D layer kinds.
type stack1d struct {
	features    int
	limited     int
	limitedRad  float64
	skipIval    int
	endFeatures int
	pitch       float64 // vertical distance between successive shape tops
	spacing     float64
}

func (s *stack1d) shown() int {
	if s.limited > 0 {
		return s.limited
	}
	return s.features
}

func (s *stack1d) totalHeight() float64 {
	return s.pitch*float64(s.shown()) - s.spacing
}

// walk visits the stack top to bottom, calling shape for drawn features
// and dot for placeholder positions.
func (s *stack1d) walk(shape, dot func(i int)) {
	if s.limited == 0 {
		for i := 0; i < s.features; i++ {
			shape(i)
		}
		return
	}

	for i := 0; i < s.endFeatures; i++ {
		shape(i)
	}
	offset := s.endFeatures
	for i := 0; i < s.limited-2*s.endFeatures; i++ {
		if i%s.skipIval == 0 {
			dot(i + offset)
		}
	}
	offset = s.endFeatures + max(0, s.limited-2*s.endFeatures)
	for i := 0; i < s.endFeatures; i++ {
		shape(i + offset)
	}
}

func clampEnds(ends, limited int) int {
	if limited > 0 && ends*2 > limited {
		return limited / 2
	}
	return ends
}

func featureLabel(label string, features int) string {
	if label == "" {
		return ""
	}
	return fmt.Sprintf("%s\n%d", label, features)
}
