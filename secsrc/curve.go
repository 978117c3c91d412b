package secsrc

import (
	"math"

	"github.com/katalvlaran/wavefield/vec"
)

// curvePoint — unified rounded-square parametrization.
//
// Description:
//
//	One routine generates the circle, the sharp rectangle and every
//	rounded rectangle in between, so the circular, box and rounded-box
//	geometries share a single curve algorithm instead of three
//	near-identical ones.
//
//	The unit curve is a square of half-width 1 whose corners are
//	circular arcs of radius r ∈ [0,1]:
//	  r = 1 → the unit circle,
//	  r = 0 → the sharp unit square (side 2),
//	  else  → straight edges of half-length 1−r joined by quarter arcs.
//
// Parametrization:
//
//	t ∈ [0,1) maps linearly to arc length s = t·P with
//	P = 8(1−r) + 2πr, starting at (1,0) — the midpoint of the +x edge —
//	and proceeding counter-clockwise. Because the curve is 4-fold
//	symmetric the point is computed in a base quadrant spanning one full
//	edge plus one corner arc and then rotated by a multiple of 90°.
//
// Returns:
//
//	point   — position on the unit curve (z = 0),
//	normal  — outward unit normal (edge normal on straights, radial from
//	          the arc center on corners; for r=1 it equals the point),
//	density — arc length per unit t, i.e. the perimeter P. Evenly spaced
//	          t values therefore carry the uniform weight P/N.
//
// Contract: r must already be validated to [0,1]; out-of-range r is a
// configuration error handled by the caller, never clamped here.
//
// Complexity: O(1).
func curvePoint(t, r float64) (point, normal vec.Vec3, density float64) {
	h := 1 - r                   // half-length of a straight segment
	quarter := 2*h + math.Pi*r/2 // one edge + one corner arc
	perimeter := 4 * quarter     // P = 8(1−r) + 2πr

	// Arc length from (1,0) counter-clockwise, shifted so s=0 lands on
	// the south-east arc end and quadrants tile the parameter cleanly.
	s := math.Mod(t*perimeter+h+perimeter, perimeter)

	q := int(s / quarter) // quadrant index 0..3
	if q > 3 {
		q = 3 // guard t→1 rounding
	}
	u := s - float64(q)*quarter

	// Base quadrant: the full +x edge from (1,−h) to (1,h), then the
	// north-east corner arc around (h,h).
	var p, n vec.Vec3
	if u < 2*h {
		p = vec.Vec3{X: 1, Y: u - h}
		n = vec.Vec3{X: 1}
	} else {
		phi := (u - 2*h) / r // r > 0 whenever an arc has nonzero length
		n = vec.Vec3{X: math.Cos(phi), Y: math.Sin(phi)}
		p = vec.Vec3{X: h + r*n.X, Y: h + r*n.Y}
	}

	return rotateQuarter(p, q), rotateQuarter(n, q), perimeter
}

// rotateQuarter rotates v in the xy-plane by q·90° counter-clockwise.
// Exact component swaps keep the 4-fold symmetry free of trigonometric
// rounding noise.
func rotateQuarter(v vec.Vec3, q int) vec.Vec3 {
	switch q & 3 {
	case 1:
		return vec.Vec3{X: -v.Y, Y: v.X}
	case 2:
		return vec.Vec3{X: -v.X, Y: -v.Y}
	case 3:
		return vec.Vec3{X: v.Y, Y: -v.X}
	default:
		return v
	}
}
