package layers

import (
	"fmt"

	"github.com/nhansendev/drawnet/pkg/errors"
	"github.com/nhansendev/drawnet/pkg/geom"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// Stack2DSpec configures a Stack2D layer.
type Stack2DSpec struct {
	Channels      int     // number of stacked rectangles
	Width, Height float64 // base rectangle dimensions
	Label         string
	Spacing       float64 // diagonal offset between rectangles (default 10)
	Limited       int     // if non-zero, display at most this many channels
	LimitedRadius float64 // placeholder dot size when limiting (default 5)
	SkipInterval  int     // draw one placeholder every n positions (default 3)
	EndChannels   int     // channels still shown on each end when limiting (default 3)
	Dark, Light   *scene.RGB
	Below         bool
	X             float64
	Y             *float64
}

// Stack2D draws a feature map as diagonally offset stacked rectangles with
// alternating dark and light fills. Large channel counts can be collapsed
// to placeholder dots between a few end channels.
type Stack2D struct {
	base
	channels    int
	spacing     float64
	limited     int
	limitedRad  float64
	skipIval    int
	endChannels int
	dark, light scene.RGB
}

// NewStack2D creates a diagonally stacked rectangle layer.
func NewStack2D(spec Stack2DSpec) (*Stack2D, error) {
	if err := errors.ValidateDimensions(spec.Width, spec.Height); err != nil {
		return nil, err
	}
	if err := errors.ValidateCount("channels", spec.Channels); err != nil {
		return nil, err
	}
	if err := errors.ValidateLimit(spec.Limited, spec.Channels); err != nil {
		return nil, err
	}
	if spec.Spacing < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry,
			"diagonal spacing must be zero or more, got %g", spec.Spacing)
	}

	spacing := spec.Spacing
	if spacing == 0 {
		spacing = 10
	}
	endChannels := orInt(spec.EndChannels, 3)
	if spec.Limited > 0 && endChannels*2 > spec.Limited {
		endChannels = spec.Limited / 2
	}

	shown := spec.Channels
	if spec.Limited > 0 {
		shown = spec.Limited
	}

	label := spec.Label
	if label != "" {
		noun := "Channels"
		if spec.Channels == 1 {
			noun = "Channel"
		}
		label = fmt.Sprintf("%s\n%d %s\n%gx%g", label, spec.Channels, noun, spec.Width, spec.Height)
	}

	l := &Stack2D{
		base:        newBase(spec.Width, spec.Height, label, spec.Below, spec.X, spec.Y),
		channels:    spec.Channels,
		spacing:     spacing,
		limited:     spec.Limited,
		limitedRad:  orFloat(spec.LimitedRadius, 5),
		skipIval:    orInt(spec.SkipInterval, 3),
		endChannels: endChannels,
		dark:        fillOr(spec.Dark, scene.ColorDark),
		light:       fillOr(spec.Light, scene.ColorLight),
	}
	l.totW = spec.Width + float64(shown-1)*spacing
	l.totH = spec.Height + float64(shown-1)*spacing
	return l, nil
}

// AnchorCount returns the number of displayed channels.
func (l *Stack2D) AnchorCount() int {
	if l.limited > 0 {
		return l.limited
	}
	return l.channels
}

// Corners spans the whole stack: the top edge belongs to the front
// rectangle and the bottom edge to the back rectangle, so attachment
// points follow the diagonal outline.
func (l *Stack2D) Corners() geom.Corners {
	return geom.Corners{
		TL: geom.Pt{X: l.x, Y: l.y},
		TR: geom.Pt{X: l.x + l.width, Y: l.y},
		BL: geom.Pt{X: l.x + l.totW - l.width, Y: l.y + l.totH},
		BR: geom.Pt{X: l.x + l.totW, Y: l.y + l.totH},
	}
}

func (l *Stack2D) Drawables() scene.Collection {
	col := scene.NewCollection("")
	toggle := false

	channelRect := func(i int) scene.Rect {
		off := l.spacing * float64(i)
		fill := l.light
		if toggle {
			fill = l.dark
		}
		toggle = !toggle
		return scene.Rect{
			X: l.x + off, Y: l.y + off, W: l.width, H: l.height,
			Style: scene.Filled(fill),
		}
	}

	if l.limited == 0 {
		for i := 0; i < l.channels; i++ {
			col.Append(channelRect(i))
		}
		return col
	}

	// Collapsed view: end channels, placeholder dots, end channels.
	for i := 0; i < l.endChannels; i++ {
		col.Append(channelRect(i))
	}

	offset := l.endChannels
	for i := 0; i < l.limited-2*l.endChannels; i++ {
		if i%l.skipIval != 0 {
			continue
		}
		off := l.spacing * float64(i+offset)
		col.Append(scene.Circle{
			C:     geom.Pt{X: l.x + off + l.width/2, Y: l.y + off + l.height/2},
			R:     l.limitedRad,
			Style: scene.Filled(scene.ColorInk),
		})
	}

	offset = l.endChannels + max(0, l.limited-2*l.endChannels)
	for i := 0; i < l.endChannels; i++ {
		col.Append(channelRect(i + offset))
	}
	return col
}
