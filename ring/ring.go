// Package ring builds watertight triangulated ring shells for dust
// collection fittings directly from numeric parameters: vertex positions,
// winding order and facet normals are computed by hand, with no implicit
// surface or boolean stage in between. Functions in this package panic when
// a geometry invariant is violated; the root dust package provides
// error-returning wrappers.
package ring

import (
	"math"

	"github.com/hoguej/Dust-Collection-3d-Print-Generator/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// MinSegments is the lowest angular resolution accepted for a shell. Below
// this a fitting prints visibly faceted and mating parts no longer seal.
const MinSegments = 16

// Shell returns the closed triangulated shell of a ring (washer) with the
// given inner and outer radii and height, resting on z=0: outer wall, inner
// wall, top and bottom annuli. Panics if rIn < 0, rOut <= rIn, height <= 0
// or segments < MinSegments.
//
// rIn == 0 is an allowed boundary: the inner wall collapses onto the axis
// and the shell degenerates to a solid cylinder, with the annuli emitted as
// triangle fans so no degenerate triangles are produced.
func Shell(rIn, rOut, height float64, segments int) []render.Triangle3 {
	switch {
	case rIn < 0:
		panic("inner radius < 0")
	case rOut <= rIn:
		panic("outer radius <= inner radius")
	case height <= 0:
		panic("height <= 0")
	case segments < MinSegments:
		panic("too few segments")
	}
	angles := loopAngles(segments)
	solid := rIn == 0
	perStep := 8
	if solid {
		perStep = 4
	}
	var (
		up      = r3.Vec{Z: 1}
		down    = r3.Vec{Z: -1}
		axisTop = r3.Vec{Z: height}
		axisBot = r3.Vec{}
	)
	tris := make([]render.Triangle3, 0, perStep*segments)
	for i := 0; i < segments; i++ {
		th0, th1 := angles[i], angles[i+1]
		var (
			ob0 = cylPoint(rOut, th0, 0) // outer wall corners
			ob1 = cylPoint(rOut, th1, 0)
			ot0 = cylPoint(rOut, th0, height)
			ot1 = cylPoint(rOut, th1, height)
		)
		// th1 wraps to 0 on the closing step, so the expected wall
		// direction comes from the unwrapped midpoint angle.
		out := radial(2 * math.Pi * (float64(i) + 0.5) / float64(segments))

		// Outer wall faces away from the axis.
		tris = append(tris,
			mustFace(ob0, ob1, ot1, out),
			mustFace(ob0, ot1, ot0, out),
		)
		if solid {
			// Annuli collapse to fans about the axis.
			tris = append(tris,
				mustFace(axisTop, ot0, ot1, up),
				mustFace(axisBot, ob1, ob0, down),
			)
			continue
		}
		var (
			ib0 = cylPoint(rIn, th0, 0) // inner wall corners
			ib1 = cylPoint(rIn, th1, 0)
			it0 = cylPoint(rIn, th0, height)
			it1 = cylPoint(rIn, th1, height)
		)
		in := r3.Scale(-1, out)
		// Inner wall winding is reversed relative to the outer wall so the
		// normal points into the hole.
		tris = append(tris,
			mustFace(ib0, it1, ib1, in),
			mustFace(ib0, it0, it1, in),
		)
		// Top annulus faces +z, bottom annulus -z.
		tris = append(tris,
			mustFace(it0, ot0, ot1, up),
			mustFace(it0, ot1, it1, up),
			mustFace(ib0, ib1, ob1, down),
			mustFace(ib0, ob1, ob0, down),
		)
	}
	return tris
}

// mustFace assembles a triangle and asserts that the normal derived from
// its winding points along want. A flipped wall orientation is a
// construction bug, not a runtime condition, so it panics.
func mustFace(v0, v1, v2, want r3.Vec) render.Triangle3 {
	t := render.Triangle3{V: [3]r3.Vec{v0, v1, v2}}
	if r3.Dot(t.Normal(), want) <= 0 {
		panic("triangle winding does not face expected direction")
	}
	return t
}

// loopAngles returns segments+1 evenly spaced angles covering the full
// turn. The last entry repeats the first exactly so the loop closes with
// bit-identical vertices instead of relying on sin/cos at 2π.
func loopAngles(segments int) []float64 {
	a := make([]float64, segments+1)
	for i := 0; i < segments; i++ {
		a[i] = 2 * math.Pi * float64(i) / float64(segments)
	}
	a[segments] = a[0]
	return a
}

// cylPoint projects cylindrical coordinates onto cartesian space.
func cylPoint(r, theta, z float64) r3.Vec {
	return r3.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}
}

// radial returns the unit vector pointing away from the cylinder axis at
// angle theta.
func radial(theta float64) r3.Vec {
	return r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
}
