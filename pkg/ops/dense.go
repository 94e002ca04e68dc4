package ops

import (
	"github.com/nhansendev/drawnet/pkg/layers"
	"github.com/nhansendev/drawnet/pkg/scene"
)

// DenseSpec configures a Dense operation.
type DenseSpec struct {
	Label string
	// CountA and CountB override the endpoint layers' own anchor counts
	// when positive. Zero means use Layer.AnchorCount.
	CountA, CountB int
	// LimitEndsA and LimitEndsB restrict the fan to the first and last n
	// anchors on each side. Zero means connect all anchors.
	LimitEndsA, LimitEndsB int
	LineWidth              float64
	Below                  bool
}

// Dense draws a fully connected fan of lines between the right-edge
// anchors of the source and the left-edge anchors of the target.
//
// When either side resolves to fewer than one anchor the fan degrades to
// a single center-to-center line rather than failing: odd sizes should
// never crash a diagram.
type Dense struct {
	meta
	countA, countB int
	limitA, limitB int
	lineWidth      float64
}

// NewDense creates a dense-connection operation.
func NewDense(spec DenseSpec) *Dense {
	return &Dense{
		meta:      meta{label: spec.Label, below: spec.Below},
		countA:    spec.CountA,
		countB:    spec.CountB,
		limitA:    spec.LimitEndsA,
		limitB:    spec.LimitEndsB,
		lineWidth: spec.LineWidth,
	}
}

func (o *Dense) Drawables(a, b layers.Layer) (scene.Collection, error) {
	ca, cb := a.Corners(), b.Corners()

	numA := o.countA
	if numA == 0 {
		numA = a.AnchorCount()
	}
	numB := o.countB
	if numB == 0 {
		numB = b.AnchorCount()
	}

	// Degenerate fallback: connect centers.
	if numA < 1 || numB < 1 {
		return scene.NewCollection("", line(ca.RightMid(), cb.LeftMid(), o.lineWidth)), nil
	}

	anchorsA := edgeAnchors(ca.TR, ca.BR, numA)
	anchorsB := edgeAnchors(cb.TL, cb.BL, numB)

	col := scene.NewCollection("")
	for _, i := range endIndices(numA, o.limitA) {
		for _, j := range endIndices(numB, o.limitB) {
			col.Append(line(anchorsA[i], anchorsB[j], o.lineWidth))
		}
	}
	return col, nil
}

// endIndices returns the anchor indices to connect: all of them, or only
// the first and last limit indices per side.
func endIndices(n, limit int) []int {
	if limit <= 0 || 2*limit >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	idx := make([]int, 0, 2*limit)
	for i := 0; i < limit; i++ {
		idx = append(idx, i)
	}
	for i := n - limit; i < n; i++ {
		idx = append(idx, i)
	}
	return idx
}
