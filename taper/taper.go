// Package taper builds tapering windows: per-emitter gain profiles that
// fade the driving amplitude toward the ends of the active portion of an
// array, suppressing the truncation and diffraction artifacts a hard
// cutoff would radiate.
//
// The window is cyclic-boundary-aware: for closed geometries the active
// run may wrap around the end of the emitter order, and a fully active
// closed loop has no truncation edge at all, so it gets a flat window.
//
// Errors:
//
//   - ErrEmptyActivity: no emitters.
//   - ErrBadActivity: activity values outside [0,1].
//   - ErrBadFraction: ramp fraction outside [0,1].
package taper

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyActivity indicates an empty activity vector.
	ErrEmptyActivity = errors.New("taper: activity must be non-empty")
	// ErrBadActivity indicates activity values outside [0,1].
	ErrBadActivity = errors.New("taper: activity values must lie in [0,1]")
	// ErrBadFraction indicates a ramp fraction outside [0,1].
	ErrBadFraction = errors.New("taper: ramp fraction must lie in [0,1]")
)

// Options configures the window shape.
type Options struct {
	// Fraction is the share of the active run covered by the two ramps
	// combined: each end gets a half-Hann ramp of ⌈Fraction·run/2⌉
	// elements. Zero disables tapering.
	Fraction float64
}

// DefaultOptions returns the standard 30% taper.
func DefaultOptions() Options {
	return Options{Fraction: 0.3}
}

// Window returns the per-emitter gain, the element-wise product of the
// input activity and the Hann ramps over the active run. closed marks
// geometries whose emitter order wraps modulo N.
//
// Behavior:
//
//  1. All emitters active on a closed loop → flat window (no edges).
//  2. Otherwise the (cyclically) contiguous active run is located and a
//     rising half-Hann ramp is applied at its head, a mirrored falling
//     one at its tail.
//  3. Inactive entries stay 0; partial activity values scale the ramp.
//
// Complexity: O(N) time and memory.
func Window(activity []float64, closed bool, opts Options) ([]float64, error) {
	n := len(activity)
	if n == 0 {
		return nil, ErrEmptyActivity
	}
	if opts.Fraction < 0 || opts.Fraction > 1 {
		return nil, fmt.Errorf("fraction %g: %w", opts.Fraction, ErrBadFraction)
	}

	active := 0
	for i, a := range activity {
		if a < 0 || a > 1 {
			return nil, fmt.Errorf("element %d value %g: %w", i, a, ErrBadActivity)
		}
		if a > 0 {
			active++
		}
	}

	out := make([]float64, n)
	copy(out, activity)
	if active == 0 {
		return out, nil // all zero already
	}
	if active == n && closed {
		return out, nil // closed loop without truncation edges
	}

	start, run := activeRun(activity, closed)
	ramp := int(math.Ceil(opts.Fraction * float64(run) / 2))
	if 2*ramp > run {
		ramp = run / 2
	}
	for j := 0; j < ramp; j++ {
		// Half-Hann rising from near 0 to near 1 over the ramp length.
		g := 0.5 * (1 - math.Cos(math.Pi*(float64(j)+0.5)/float64(ramp)))
		out[(start+j)%n] *= g
		out[(start+run-1-j)%n] *= g
	}

	return out, nil
}

// activeRun locates the contiguous active run: its first index and its
// length. For closed arrays the run may wrap; the scan starts at an
// inactive→active transition when one exists. Gaps inside the active set
// (non-contiguous activity) are treated as part of the run so the ramps
// still cover the outermost edges.
func activeRun(activity []float64, closed bool) (start, run int) {
	n := len(activity)

	first, last := -1, -1
	for i, a := range activity {
		if a > 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	if closed {
		for i := 0; i < n; i++ {
			prev := activity[(i-1+n)%n]
			if activity[i] > 0 && prev == 0 {
				// Run extends from this transition to the last active
				// element before the next gap, wrapping as needed.
				end := i
				for j := 0; j < n; j++ {
					if activity[(i+j)%n] > 0 {
						end = i + j
					}
				}

				return i, end - i + 1
			}
		}
		// No transition: every element active (handled by the caller) or
		// none; fall through to the linear answer.
	}

	return first, last - first + 1
}
