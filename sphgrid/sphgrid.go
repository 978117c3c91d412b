// Package sphgrid samples the unit sphere on an equiangular grid,
// supplying point sets and quadrature weights to spherical
// secondary-source distributions.
//
// Contract: the grid is equal-ANGLE. Weights are the raw angular cells
// Δθ·Δφ without any area correction — consumers that integrate over the
// sphere surface must multiply by cos(elevation) themselves, exactly as
// the spherical geometry in package secsrc does.
//
// Layout: m polar rings at θ = π(i+0.5)/m (midpoint rule, poles never
// sampled) with 2m azimuth steps per ring, traversed ring by ring and
// counter-clockwise within a ring. The total count is therefore 2m² and
// requested counts must be of that form.
package sphgrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wavefield/vec"
)

// ErrBadResolution indicates a requested count that is not 2m² for a
// positive integer m.
var ErrBadResolution = errors.New("sphgrid: count must be 2·m² for integer m ≥ 1")

// Equiangular returns n points on the unit sphere with their angular
// cell weights. n must be 2m²; the midpoint polar rings keep the poles
// unsampled so every weight is strictly positive after area correction.
//
// Sum of weights is exactly 2m² · π²/m² = 2π²; after the consumer's
// cos(elevation) correction the Riemann sum approaches the full solid
// angle 4π.
//
// Complexity: O(n) time and memory.
func Equiangular(n int) (points []vec.Vec3, weights []float64, err error) {
	m := int(math.Round(math.Sqrt(float64(n) / 2)))
	if m < 1 || 2*m*m != n {
		return nil, nil, fmt.Errorf("got %d: %w", n, ErrBadResolution)
	}

	dTheta := math.Pi / float64(m)
	dPhi := 2 * math.Pi / float64(2*m)
	w := dTheta * dPhi

	points = make([]vec.Vec3, 0, n)
	weights = make([]float64, 0, n)
	for i := 0; i < m; i++ {
		theta := (float64(i) + 0.5) * dTheta // polar angle from +z
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		for j := 0; j < 2*m; j++ {
			phi := float64(j) * dPhi
			points = append(points, vec.Vec3{
				X: sinT * math.Cos(phi),
				Y: sinT * math.Sin(phi),
				Z: cosT,
			})
			weights = append(weights, w)
		}
	}

	return points, weights, nil
}

// Grid adapts Equiangular to the secsrc.SphereGrid collaborator
// interface.
type Grid struct{}

// Sphere implements the equal-angle sphere grid contract.
func (Grid) Sphere(n int) ([]vec.Vec3, []float64, error) {
	return Equiangular(n)
}
