// Package vec provides the small 3-D vector arithmetic shared by the
// wavefield packages: secondary-source positions and normals, virtual
// source directions, and observation points all live in ℝ³.
//
// Vec3 is a plain value type. Every method is pure, allocation-free and
// returns a new value; no method mutates its receiver.
package vec

import "math"

// Vec3 is a point or direction in ℝ³.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v.X, s * v.Y, s * v.Z}
}

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v×w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length |v|.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Norm2 returns the squared length |v|², avoiding the square root when
// only comparisons are needed.
func (v Vec3) Norm2() float64 {
	return v.Dot(v)
}

// Dist returns the Euclidean distance |v − w|.
func (v Vec3) Dist(w Vec3) float64 {
	return v.Sub(w).Norm()
}

// Normalize returns v/|v|. The zero vector is returned unchanged;
// callers that require a direction must validate length themselves.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}

	return v.Scale(1 / n)
}

// IsFinite reports whether all three components are finite (no NaN, no ±Inf).
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
