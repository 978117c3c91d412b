// Package selection decides which secondary sources participate in a
// synthesis run: the visibility criterion per virtual source type,
// returning a binary activity value per emitter.
//
// The emitter normal is the emission direction into the listening
// region, so the criteria are pure dot-product tests:
//
//   - plane wave along n_pw:   active iff n_pw·n > 0,
//   - point source at xs:      active iff (x0−xs)·n > 0,
//   - focused source at xs:    active iff (xs−x0)·n > 0.
//
// Emitters exactly on the criterion boundary (within tolerance) stay
// inactive: a grazing emitter contributes nothing but would widen the
// tapering window.
package selection

import (
	"github.com/katalvlaran/wavefield/driving"
	"github.com/katalvlaran/wavefield/secsrc"
	"github.com/katalvlaran/wavefield/vec"
)

// boundaryTol keeps grazing emitters out of the active set.
const boundaryTol = 1e-12

// Active returns one activity value per emitter, 1 for active and 0 for
// inactive, in the emitter order of ss. The reference point is part of
// the collaborator contract for criteria that need it; the current
// visibility tests are reference-free. A nil or unknown source type
// yields all-inactive rather than a guess.
//
// Complexity: O(len(ss)).
func Active(ss []secsrc.SecondarySource, src driving.Source, _ vec.Vec3) []float64 {
	out := make([]float64, len(ss))
	for i, s := range ss {
		if visible(s, src) {
			out[i] = 1
		}
	}

	return out
}

// visible applies the per-type criterion for a single emitter.
func visible(s secsrc.SecondarySource, src driving.Source) bool {
	switch v := src.(type) {
	case driving.PlaneWave:
		return v.Direction.Normalize().Dot(s.Normal) > boundaryTol
	case driving.PointSource:
		return s.Position.Sub(v.Position).Dot(s.Normal) > boundaryTol
	case driving.FocusedSource:
		return v.Position.Sub(s.Position).Dot(s.Normal) > boundaryTol
	default:
		return false
	}
}
