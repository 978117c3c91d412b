// Package greens evaluates monochromatic free-field Green's functions:
// the point-source propagator e^{−ikr}/(4πr) and the plane-wave phase
// factor e^{−ik·x}. These are the propagation models the synthesis
// kernel integrates against.
//
// Sign convention: e^{+iωt} time dependence, so outgoing waves carry
// e^{−ikr} and phase decreases away from the source.
//
// Errors:
//
//   - ErrBadFrequency: frequency or speed of sound is not positive.
//   - ErrSingular: an observation point coincides with the source, where
//     the point-source kernel diverges.
package greens

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/wavefield/vec"
)

// C is the default speed of sound in m/s (air, 20 °C).
const C = 343.0

// singularTol is the minimal source–observer distance; anything closer
// is treated as a coincident point.
const singularTol = 1e-9

var (
	// ErrBadFrequency indicates a non-positive frequency or speed of sound.
	ErrBadFrequency = errors.New("greens: frequency and speed of sound must be positive")
	// ErrSingular indicates an observation point on top of the source.
	ErrSingular = errors.New("greens: observation point coincides with source")
)

// Wavenumber returns k = 2πf/c.
func Wavenumber(f, c float64) float64 {
	return 2 * math.Pi * f / c
}

// PointSource evaluates the free-field point-source Green's function
// G(x|x0, ω) = e^{−ikr} / (4πr) with r = |x − x0|, at the default speed
// of sound.
func PointSource(x, x0 vec.Vec3, f float64) (complex128, error) {
	return pointSource(x, x0, f, C)
}

func pointSource(x, x0 vec.Vec3, f, c float64) (complex128, error) {
	if f <= 0 || c <= 0 {
		return 0, fmt.Errorf("f=%g c=%g: %w", f, c, ErrBadFrequency)
	}
	r := x.Dist(x0)
	if r < singularTol {
		return 0, fmt.Errorf("r=%g: %w", r, ErrSingular)
	}

	return cmplx.Exp(complex(0, -Wavenumber(f, c)*r)) / complex(4*math.Pi*r, 0), nil
}

// PlaneWave evaluates the unit-amplitude plane-wave field e^{−ik n·x}
// for the propagation direction n (normalized internally) at the default
// speed of sound.
func PlaneWave(x, n vec.Vec3, f float64) (complex128, error) {
	if f <= 0 {
		return 0, fmt.Errorf("f=%g: %w", f, ErrBadFrequency)
	}

	return cmplx.Exp(complex(0, -Wavenumber(f, C)*n.Normalize().Dot(x))), nil
}

// FreeField is the point-source propagation model used by the synthesis
// kernel: one Green's function evaluation per observation point. The
// zero value uses the default speed of sound.
type FreeField struct {
	// C overrides the speed of sound when positive.
	C float64
}

// Propagate returns the complex transfer values from the emitter at x0
// to every observation point, matching the propagation-model contract of
// the synthesis kernel.
//
// Complexity: O(len(points)).
func (ff FreeField) Propagate(x0 vec.Vec3, points []vec.Vec3, f float64) ([]complex128, error) {
	c := ff.C
	if c == 0 {
		c = C
	}

	out := make([]complex128, len(points))
	for i, x := range points {
		g, err := pointSource(x, x0, f, c)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = g
	}

	return out, nil
}
