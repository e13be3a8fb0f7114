package dust

// Friction-fit clearance model for printed dust collection ports. Small
// ports need proportionally more slop than large ones: ovality and seam
// blobs are roughly constant-size defects, so their share of the diameter
// shrinks as the port grows.
const (
	clearanceFloor = 0.15 // mm per side, asymptote for very large ports
	clearanceSlope = 4.0  // mm², diminishing small-port term
)

// Clearance returns the per-side radial clearance in millimetres for a
// friction fit over a port of diameter d. Strictly decreasing in d.
// Panics for non-positive diameters.
func Clearance(d float64) float64 {
	if d <= 0 {
		panic("Clearance only works for positive diameters")
	}
	return clearanceFloor + clearanceSlope/d
}

// InnerDiameter returns the bore diameter of a ring with the given outer
// diameter and wall thickness. It is the exact left inverse of
// OuterDiameter: OuterDiameter(InnerDiameter(o, t), t) == o.
func InnerDiameter(outer, thickness float64) float64 {
	return outer - 2*thickness
}

// OuterDiameter returns the outside diameter of a ring with the given bore
// diameter and wall thickness.
func OuterDiameter(inner, thickness float64) float64 {
	return inner + 2*thickness
}

// Material models the dimensional compensation a printed part needs so its
// internal dimensions come out on size once the plastic cools.
type Material struct {
	// shrink is the thermal contraction of the material once it cools to
	// room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage, in mm.
	pullShrink float64
}

// PLA (polylactic acid) is the most widely used filament for dust
// collection fittings.
var PLA = Material{shrink: 0.2e-2, pullShrink: 0.45}

// InternalDimScale returns the modeled dimension an internal feature must
// have so that the printed feature measures real millimetres.
func (m Material) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}

// FitBoreDiameter returns the modeled bore diameter for a ring meant to
// slide snugly over a port of the given measured diameter: measured port,
// plus friction-fit clearance, compensated for material shrinkage.
func (m Material) FitBoreDiameter(port float64) float64 {
	return m.InternalDimScale(port + 2*Clearance(port))
}
