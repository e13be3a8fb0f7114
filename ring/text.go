package ring

import (
	"math"

	"github.com/hoguej/Dust-Collection-3d-Print-Generator/render"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// maxLabelArc caps a label's angular span (~144°) so it stays readable
	// from one side of the fitting no matter how long the text is.
	maxLabelArc = 0.8 * math.Pi
	// glyphArcFraction is the share of each character's angular pitch
	// occupied by glyph strokes; the remainder is the inter-character gap.
	glyphArcFraction = 0.72
)

// LabelParms describes circumferential text wrapped onto a cylindrical
// surface of a fitting.
type LabelParms struct {
	Text string
	// Radius of the surface carrying the text.
	Radius float64
	// Depth of the radial offset between the surface and the text face.
	Depth float64
	// Vertical band holding the characters.
	ZBottom, ZTop float64
	// CharWidth is the desired per character arc length. It shrinks when
	// the whole string would exceed the maximum label arc.
	CharWidth float64
	// OnInner places the text on the bore surface, mirrored so it reads
	// correctly from inside.
	OnInner bool
	// Engrave recesses the text into the surface instead of raising it.
	// Either way the geometry is additive: triangles at offset radii, not
	// a boolean cut.
	Engrave bool
}

// Label returns triangle geometry for the text wrapped onto the cylinder,
// angularly centered about angle 0. Characters without a glyph emit no
// geometry but still advance the angular cursor. Panics on non-positive
// radius, depth, band height or character width, and when the depth would
// push the text face through the axis.
func Label(p LabelParms) []render.Triangle3 {
	switch {
	case p.Radius <= 0:
		panic("label radius <= 0")
	case p.Depth <= 0:
		panic("label depth <= 0")
	case p.ZTop <= p.ZBottom:
		panic("label band height <= 0")
	case p.CharWidth <= 0:
		panic("label character width <= 0")
	}
	chars := []rune(p.Text)
	if len(chars) == 0 {
		return nil
	}

	pitch := p.CharWidth / p.Radius
	if span := pitch * float64(len(chars)); span > maxLabelArc {
		// Shrink the characters so the whole string stays visible rather
		// than letting it wrap around the back of the fitting.
		pitch = maxLabelArc / float64(len(chars))
	}
	span := pitch * float64(len(chars))
	start := -span / 2

	// Reading direction. Text on the bore appears mirrored relative to
	// text on the outer wall, so the angular increment flips sign to keep
	// it human readable from the side it is seen from.
	dir := 1.0
	offset := p.Depth
	if p.OnInner {
		dir = -1
		offset = -offset
	}
	if p.Engrave {
		offset = -offset
	}
	rFar := p.Radius + offset
	if rFar <= 0 {
		panic("label depth exceeds surface radius")
	}

	var tris []render.Triangle3
	for i, c := range chars {
		rects := glyphs[c]
		if len(rects) == 0 {
			// Unsupported glyph or space: skip it, keep its slot.
			continue
		}
		a0 := start + float64(i)*pitch
		arc := pitch * glyphArcFraction
		for _, rc := range rects {
			tris = append(tris, extrudeRect(rc, a0, arc, p, rFar, dir)...)
		}
	}
	return tris
}

// extrudeRect projects a glyph rectangle onto the cylinder at the surface
// radius and at the offset radius, forming a 12 triangle patch following
// the curvature: surface face, text face and four sides. Winding per face
// points away from the patch interior, which keeps orientation consistent
// whether the patch is raised or recessed, on the bore or the outer wall.
func extrudeRect(rc glyphRect, a0, arc float64, p LabelParms, rFar, dir float64) []render.Triangle3 {
	th0 := dir * (a0 + rc.x0*arc)
	th1 := dir * (a0 + rc.x1*arc)
	z0 := p.ZBottom + rc.y0*(p.ZTop-p.ZBottom)
	z1 := p.ZBottom + rc.y1*(p.ZTop-p.ZBottom)
	var (
		s00 = cylPoint(p.Radius, th0, z0)
		s10 = cylPoint(p.Radius, th1, z0)
		s11 = cylPoint(p.Radius, th1, z1)
		s01 = cylPoint(p.Radius, th0, z1)
		f00 = cylPoint(rFar, th0, z0)
		f10 = cylPoint(rFar, th1, z0)
		f11 = cylPoint(rFar, th1, z1)
		f01 = cylPoint(rFar, th0, z1)
	)
	interior := cylPoint((p.Radius+rFar)/2, (th0+th1)/2, (z0+z1)/2)
	quads := [6][4]r3.Vec{
		{s00, s10, s11, s01}, // surface face
		{f00, f10, f11, f01}, // text face
		{s00, s10, f10, f00}, // bottom side
		{s11, s01, f01, f11}, // top side
		{s10, s11, f11, f10}, // leading side
		{s01, s00, f00, f01}, // trailing side
	}
	tris := make([]render.Triangle3, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			orientAway(q[0], q[1], q[2], interior),
			orientAway(q[0], q[2], q[3], interior),
		)
	}
	return tris
}

// orientAway winds a triangle so the normal derived from its winding points
// away from the given interior point.
func orientAway(a, b, c, interior r3.Vec) render.Triangle3 {
	t := render.Triangle3{V: [3]r3.Vec{a, b, c}}
	if r3.Dot(t.Normal(), r3.Sub(t.Centroid(), interior)) < 0 {
		t.V[1], t.V[2] = t.V[2], t.V[1]
	}
	return t
}
