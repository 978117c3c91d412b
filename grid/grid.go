// Package grid defines the observation geometry of a synthesis run: a
// regular planar grid of listening points and the complex field buffer
// accumulated over it.
//
// What:
//
//   - Plane describes an axis-aligned rectangular grid at height Z:
//     Nx × Ny points spanning [X1,X2] × [Y1,Y2] with inclusive endpoints.
//   - Points expands the plane into row-major positions (x fastest).
//   - Field is the matching complex pressure buffer: one complex128 per
//     observation point, magnitude = amplitude, phase = propagation phase
//     at the synthesis frequency.
//
// Errors:
//
//   - ErrBadExtent: X2 < X1 or Y2 < Y1, or a zero-length span sampled by
//     more than one point.
//   - ErrBadResolution: Nx or Ny below 1.
package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wavefield/vec"
)

var (
	// ErrBadExtent indicates an empty or inverted grid span.
	ErrBadExtent = errors.New("grid: invalid plane extent")
	// ErrBadResolution indicates a non-positive point count per axis.
	ErrBadResolution = errors.New("grid: resolution must be ≥ 1 per axis")
)

// Plane is an immutable observation-grid description in the z = Z plane.
type Plane struct {
	X1, X2 float64
	Y1, Y2 float64
	Nx, Ny int
	Z      float64
}

// Validate checks the plane description against the grid invariants.
func (p Plane) Validate() error {
	if p.Nx < 1 || p.Ny < 1 {
		return fmt.Errorf("%d×%d points: %w", p.Nx, p.Ny, ErrBadResolution)
	}
	if p.X2 < p.X1 || p.Y2 < p.Y1 {
		return fmt.Errorf("[%g,%g]×[%g,%g]: %w", p.X1, p.X2, p.Y1, p.Y2, ErrBadExtent)
	}
	if (p.Nx > 1 && p.X2 == p.X1) || (p.Ny > 1 && p.Y2 == p.Y1) {
		return fmt.Errorf("zero-length span with multiple points: %w", ErrBadExtent)
	}

	return nil
}

// Points expands the plane into row-major observation positions, x
// varying fastest. The caller must have validated the plane; Points on
// an invalid plane returns nil.
func (p Plane) Points() []vec.Vec3 {
	if p.Validate() != nil {
		return nil
	}

	dx, dy := 0.0, 0.0
	if p.Nx > 1 {
		dx = (p.X2 - p.X1) / float64(p.Nx-1)
	}
	if p.Ny > 1 {
		dy = (p.Y2 - p.Y1) / float64(p.Ny-1)
	}

	out := make([]vec.Vec3, 0, p.Nx*p.Ny)
	for iy := 0; iy < p.Ny; iy++ {
		y := p.Y1 + float64(iy)*dy
		for ix := 0; ix < p.Nx; ix++ {
			out = append(out, vec.Vec3{X: p.X1 + float64(ix)*dx, Y: y, Z: p.Z})
		}
	}

	return out
}

// Field is the complex sound-pressure buffer over a Plane, stored
// row-major to match Points. During synthesis it is accumulated in
// place; each cell is a commutative sum of emitter contributions, so
// summation order only perturbs floating-point rounding.
type Field struct {
	Nx, Ny int
	Values []complex128
}

// NewField allocates a zero-initialized field matching the plane.
func NewField(p Plane) *Field {
	return &Field{Nx: p.Nx, Ny: p.Ny, Values: make([]complex128, p.Nx*p.Ny)}
}

// At returns the field value at column ix, row iy.
func (f *Field) At(ix, iy int) complex128 {
	return f.Values[iy*f.Nx+ix]
}

// Accumulate adds gain·contrib element-wise into the field. contrib must
// have exactly len(Values) entries.
func (f *Field) Accumulate(gain complex128, contrib []complex128) {
	for i, v := range contrib {
		f.Values[i] += gain * v
	}
}
