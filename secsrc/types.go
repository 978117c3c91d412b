// Package secsrc defines the secondary-source distribution types,
// sentinel errors, and geometry variants for the wavefield library.
package secsrc

import (
	"errors"

	"github.com/katalvlaran/wavefield/vec"
)

// Sentinel errors for geometry generation. Callers branch on semantics
// with errors.Is; contextual detail (offending count, row index) is
// attached at the call site via %w wrapping.
var (
	// ErrNilGeometry indicates Positions was called with a nil Geometry.
	ErrNilGeometry = errors.New("secsrc: geometry must be non-nil")
	// ErrBadCount indicates an emitter count outside the shape's contract
	// (e.g. box counts must be positive multiples of 4).
	ErrBadCount = errors.New("secsrc: invalid secondary-source count")
	// ErrBadSize indicates a non-positive array length or diameter.
	ErrBadSize = errors.New("secsrc: array size must be positive")
	// ErrBadRoundness indicates a corner radius outside [0, size/2].
	ErrBadRoundness = errors.New("secsrc: corner radius out of range")
	// ErrBadAngle indicates edge angles whose sub-arrays coincide, so no
	// consistent hinge normal exists.
	ErrBadAngle = errors.New("secsrc: degenerate edge angles")
	// ErrNilGrid indicates a spherical geometry without a sphere grid.
	ErrNilGrid = errors.New("secsrc: spherical geometry requires a sphere grid")
	// ErrBadTable indicates a custom table with no rows or a loader that
	// returned one.
	ErrBadTable = errors.New("secsrc: custom table must have at least one row")
	// ErrNotFinite indicates a custom table entry that is NaN or ±Inf, or
	// a normal that is not unit length within tolerance.
	ErrNotFinite = errors.New("secsrc: custom table entry not finite or normal not unit")
	// ErrNegativeWeight indicates a custom table row with weight < 0.
	ErrNegativeWeight = errors.New("secsrc: quadrature weights must be non-negative")
)

// unitTol is the tolerance applied when validating that imported normals
// are unit vectors.
const unitTol = 1e-6

// SecondarySource is one discrete emitter of the distribution: its
// position, its unit normal (the emission direction into the listening
// region), and its quadrature weight approximating the local line or
// area element. Values are immutable once generated.
type SecondarySource struct {
	Position vec.Vec3
	Normal   vec.Vec3
	Weight   float64
}

// Geometry describes one secondary-source array shape. The set of
// implementations is closed: Linear, Circular, Box, RoundedBox, Edge,
// Spherical and Custom. An unknown shape is therefore impossible by
// construction rather than a runtime string-match fallthrough.
type Geometry interface {
	// isGeometry restricts implementations to this package.
	isGeometry()
}

// Linear is a straight array of N emitters spanning Length along the
// local x-axis, centered at Center, radiating toward negative y.
type Linear struct {
	Center vec.Vec3
	Length float64
	N      int
}

// Circular is a closed ring of N emitters with the given Diameter,
// traversed counter-clockwise starting on the positive x-axis.
// Normals are radial, (position − center)/radius.
type Circular struct {
	Center   vec.Vec3
	Diameter float64
	N        int
}

// Box is a closed square loop of N emitters (N must be a positive
// multiple of 4) with side Length. Emitters sit strictly inside each
// edge, offset half a spacing from the corners; the two elements
// adjacent to each corner carry the corrected quadrature weight
// (1+√2)/2 · spacing that compensates the skipped corner sample.
type Box struct {
	Center vec.Vec3
	Length float64
	N      int
}

// RoundedBox is a closed loop of N emitters on a square of side Length
// whose corners are circular arcs of radius CornerRadius. CornerRadius
// 0 degenerates to a sharp rectangle, Length/2 to a circle.
type RoundedBox struct {
	Center       vec.Vec3
	Length       float64
	CornerRadius float64
	N            int
}

// Edge is two straight sub-arrays of Length each, meeting at Center
// under the polar angles Alpha1 and Alpha2 (radians, the second arm of a
// single-angle setup uses Alpha2 = 0). Each arm holds ⌊N/2⌋ emitters;
// an odd N places one hinge emitter at the junction whose normal
// bisects the two arm normals.
type Edge struct {
	Center vec.Vec3
	Length float64
	N      int
	Alpha1 float64
	Alpha2 float64
}

// SphereGrid supplies unit-sphere sample points and their angular
// quadrature weights. The contract is equal-ANGLE sampling: weights are
// the raw angular cells ΔθΔφ and the spherical generator applies the
// cos(elevation) area correction itself.
type SphereGrid interface {
	Sphere(n int) (points []vec.Vec3, weights []float64, err error)
}

// Spherical is a closed sphere of N emitters with the given Diameter.
// Point placement and angular weights come from Grid; normals point
// from the surface toward the center (the listening region is the
// interior).
type Spherical struct {
	Center   vec.Vec3
	Diameter float64
	N        int
	Grid     SphereGrid
}

// Loader imports an externally defined distribution (e.g. a SOFA
// record) as the canonical (n,7) table: position(3), normal(3), weight.
type Loader interface {
	Load() ([][7]float64, error)
}

// Custom wraps a pre-built (n,7) table, or a Loader producing one.
// Exactly one of Table and Source should be set; a non-nil Table takes
// precedence. Rows are validated against the SecondarySource invariants
// before being accepted.
type Custom struct {
	Table  [][7]float64
	Source Loader
}

func (Linear) isGeometry()     {}
func (Circular) isGeometry()   {}
func (Box) isGeometry()        {}
func (RoundedBox) isGeometry() {}
func (Edge) isGeometry()       {}
func (Spherical) isGeometry()  {}
func (Custom) isGeometry()     {}

// Closed reports whether the geometry forms a closed loop (or closed
// surface), i.e. whether the emitter order wraps around modulo N.
// Tapering windows rely on this to decide between cyclic and truncated
// boundary handling.
func Closed(g Geometry) bool {
	switch g.(type) {
	case Circular, Box, RoundedBox, Spherical:
		return true
	default:
		return false
	}
}
