// Package driving computes monochromatic 2.5D Wave Field Synthesis
// driving coefficients: the complex weight applied to one secondary
// source so that the whole array reproduces a target virtual source.
//
// What:
//
//   - Source is the closed set of virtual source types: PlaneWave,
//     PointSource and FocusedSource.
//   - WFS25D evaluates the per-emitter driving coefficient at one
//     frequency, with the reference-point amplitude correction
//     g0 = √(2π·|xref − x0|) of the 2.5D formulation.
//
// Why 2.5D:
//
//	Line-like arrays reproduce a 2-D wave equation inside a 3-D space;
//	the √(iω/c) spectrum shaping and the g0 reference correction trade a
//	global amplitude error for a correct field at the reference point.
//
// Sign convention matches package greens: e^{+iωt} time dependence,
// outgoing phase e^{−ikr}; focused sources conjugate the propagation
// phase so the field converges onto the focus before diverging.
//
// Errors:
//
//   - ErrBadFrequency: non-positive frequency or speed of sound.
//   - ErrSingular: virtual point/focused source on top of the emitter.
//   - ErrNilSource: nil virtual source.
package driving

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/wavefield/secsrc"
	"github.com/katalvlaran/wavefield/vec"
)

var (
	// ErrBadFrequency indicates a non-positive frequency or speed of sound.
	ErrBadFrequency = errors.New("driving: frequency and speed of sound must be positive")
	// ErrSingular indicates a virtual source coinciding with an emitter.
	ErrSingular = errors.New("driving: virtual source coincides with emitter")
	// ErrNilSource indicates a nil virtual source.
	ErrNilSource = errors.New("driving: virtual source must be non-nil")
)

// singularTol is the minimal emitter–virtual-source distance.
const singularTol = 1e-9

// Source is a virtual sound source description. The set of
// implementations is closed: PlaneWave, PointSource, FocusedSource.
type Source interface {
	isSource()
}

// PlaneWave is a virtual plane wave traveling along Direction
// (normalized internally).
type PlaneWave struct {
	Direction vec.Vec3
}

// PointSource is a virtual point source at Position, outside the
// listening region behind the array.
type PointSource struct {
	Position vec.Vec3
}

// FocusedSource is a virtual source focused at Position inside the
// listening region: the array emits a converging field that collapses
// onto the focus and re-diverges.
type FocusedSource struct {
	Position vec.Vec3
}

func (PlaneWave) isSource()     {}
func (PointSource) isSource()   {}
func (FocusedSource) isSource() {}

// WFS25D returns the complex driving coefficient of one secondary
// source for the given virtual source at frequency f and speed of sound
// c, referenced to xref.
//
// Formulas (k = ω/c, n = emitter normal, x0 = emitter position):
//
//	plane wave n_pw:  2·g0·√(ik)·(n_pw·n)·e^{−ik n_pw·x0}
//	point source xs:  (g0/2π)·√(ik)·((x0−xs)·n)/|x0−xs|^{3/2}·e^{−ik|x0−xs|}
//	focused source:   (g0/2π)·√(ik)·((xs−x0)·n)/|x0−xs|^{3/2}·e^{+ik|x0−xs|}
//
// with g0 = √(2π·|xref−x0|). The projection factor goes negative for
// emitters facing away from the source; secondary-source selection, not
// this routine, decides which emitters participate.
//
// Complexity: O(1).
func WFS25D(src Source, s secsrc.SecondarySource, xref vec.Vec3, f, c float64) (complex128, error) {
	if f <= 0 || c <= 0 {
		return 0, fmt.Errorf("f=%g c=%g: %w", f, c, ErrBadFrequency)
	}

	k := 2 * math.Pi * f / c
	g0 := math.Sqrt(2 * math.Pi * xref.Dist(s.Position))
	sqrtIK := cmplx.Sqrt(complex(0, k))

	switch v := src.(type) {
	case PlaneWave:
		npw := v.Direction.Normalize()
		proj := npw.Dot(s.Normal)
		phase := cmplx.Exp(complex(0, -k*npw.Dot(s.Position)))

		return complex(2*g0*proj, 0) * sqrtIK * phase, nil

	case PointSource:
		d := s.Position.Sub(v.Position)
		r := d.Norm()
		if r < singularTol {
			return 0, fmt.Errorf("r=%g: %w", r, ErrSingular)
		}
		proj := d.Dot(s.Normal) / math.Pow(r, 1.5)
		phase := cmplx.Exp(complex(0, -k*r))

		return complex(g0/(2*math.Pi)*proj, 0) * sqrtIK * phase, nil

	case FocusedSource:
		d := v.Position.Sub(s.Position)
		r := d.Norm()
		if r < singularTol {
			return 0, fmt.Errorf("r=%g: %w", r, ErrSingular)
		}
		proj := d.Dot(s.Normal) / math.Pow(r, 1.5)
		phase := cmplx.Exp(complex(0, +k*r))

		return complex(g0/(2*math.Pi)*proj, 0) * sqrtIK * phase, nil

	case nil:
		return 0, ErrNilSource
	default:
		return 0, ErrNilSource
	}
}
