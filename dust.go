// Package dust generates 3D-printable ring and adapter geometry for dust
// collection fittings. A fully validated, immutable specification value is
// built by the caller and handed to the mesh generator; the generator
// constructs a watertight triangulated shell with optional circumferential
// label text and hands it to the render package for serialization.
package dust

import (
	"errors"
	"fmt"
	"math"
	"runtime/debug"

	"github.com/hoguej/Dust-Collection-3d-Print-Generator/render"
	"github.com/hoguej/Dust-Collection-3d-Print-Generator/ring"
)

// Label sizing relative to the ring. The text band occupies the middle half
// of the ring height; character pitch follows the band height.
const (
	labelBandBottom = 0.25
	labelBandTop    = 0.75
	labelAspect     = 0.65 // character arc length per unit of band height
	maxLabelDepth   = 0.6  // mm
)

// RingSpec is the complete, immutable description of one ring fitting.
// All lengths are millimetres.
type RingSpec struct {
	// InnerRadius may be zero, which produces a solid cylinder.
	InnerRadius float64
	// OuterRadius must exceed InnerRadius.
	OuterRadius float64
	Height      float64
	// Segments sets angular resolution, at least ring.MinSegments.
	Segments int
	// Label is embossed circumferentially on the fitting. Empty disables
	// text. Characters without a glyph are skipped, keeping their spacing.
	Label string
	// LabelOnInner places the label on the bore instead of the outer wall.
	LabelOnInner bool
	// Engrave recesses the label into its surface instead of raising it.
	Engrave bool
}

// Validate checks the geometric invariants of the specification. A non-nil
// error means Mesh would produce degenerate geometry and refuses to run.
func (s RingSpec) Validate() error {
	switch {
	case !finiteDim(s.InnerRadius) || !finiteDim(s.OuterRadius) || !finiteDim(s.Height):
		return errors.New("ring dimensions must be finite")
	case s.InnerRadius < 0:
		return fmt.Errorf("inner radius %g must be >= 0", s.InnerRadius)
	case s.OuterRadius <= s.InnerRadius:
		return fmt.Errorf("outer radius %g must exceed inner radius %g", s.OuterRadius, s.InnerRadius)
	case s.Height <= 0:
		return fmt.Errorf("height %g must be positive", s.Height)
	case s.Segments < ring.MinSegments:
		return fmt.Errorf("segments %d must be at least %d", s.Segments, ring.MinSegments)
	case s.Label != "" && s.LabelOnInner && s.InnerRadius == 0:
		return errors.New("cannot place a label on the bore of a solid cylinder")
	}
	return nil
}

func finiteDim(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Mesh builds the triangulated mesh for the ring. It fails before any
// geometry is computed when the specification is invalid; the caller
// receives either a complete mesh or an error, never a partial result.
func (s RingSpec) Mesh() (m *render.Mesh, err error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	defer func() {
		if a := recover(); a != nil {
			m = nil
			err = &shapeErr{panicObj: a, stack: string(debug.Stack())}
		}
	}()
	tris := ring.Shell(s.InnerRadius, s.OuterRadius, s.Height, s.Segments)
	if s.Label != "" {
		tris = append(tris, ring.Label(s.labelParms())...)
	}
	return render.NewMesh(s.Name(), tris), nil
}

// SaveSTL generates the mesh and writes it to path in textual STL format.
// Nothing is written unless the full triangle list was built.
func (s RingSpec) SaveSTL(path string) error {
	m, err := s.Mesh()
	if err != nil {
		return err
	}
	return render.CreateTextSTL(path, m)
}

// Name derives the mesh/solid name from the ring dimensions.
func (s RingSpec) Name() string {
	return fmt.Sprintf("ring_id%g_od%g_h%g",
		2*s.InnerRadius, 2*s.OuterRadius, s.Height)
}

func (s RingSpec) labelParms() ring.LabelParms {
	radius := s.OuterRadius
	if s.LabelOnInner {
		radius = s.InnerRadius
	}
	depth := math.Min(maxLabelDepth, (s.OuterRadius-s.InnerRadius)/2)
	zBot := labelBandBottom * s.Height
	zTop := labelBandTop * s.Height
	return ring.LabelParms{
		Text:      s.Label,
		Radius:    radius,
		Depth:     depth,
		ZBottom:   zBot,
		ZTop:      zTop,
		CharWidth: labelAspect * (zTop - zBot),
		OnInner:   s.LabelOnInner,
		Engrave:   s.Engrave,
	}
}

// shapeErr carries a panic raised inside the geometry kernel back to the
// caller as an error together with the stack that produced it.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}
