package mono

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wavefield/driving"
	"github.com/katalvlaran/wavefield/grid"
	"github.com/katalvlaran/wavefield/secsrc"
)

// Synthesize — monochromatic sound field synthesis.
//
// Description:
//
//	Evaluates the steady-state complex pressure field a secondary-source
//	array produces for one virtual source at one frequency: a
//	discretized single-layer potential. The continuous integral of
//	driving function times Green's function over the array manifold
//	becomes a weighted sum over discrete emitters, with quadrature
//	weights from the geometry generator and tapering gains suppressing
//	truncation artifacts.
//
// Algorithm:
//
//	 1. Generate the emitter table via secsrc.Positions.
//	 2. Obtain per-emitter activity from the Selector.
//	 3. Obtain the tapering window over the active set and multiply it
//	    into the activity, yielding the combined gain.
//	 4. Restrict to emitters with strictly positive gain.
//	 5. Zero-initialize the output field over the observation plane.
//	 6. For every retained emitter accumulate
//	      field += weight·gain·driving·propagation
//	    element-wise. Contributions commute, so iteration order only
//	    perturbs floating-point rounding; with WithWorkers(n>1) emitters
//	    are evaluated concurrently into per-worker partial sums that are
//	    merged after all workers finish.
//	 7. Return the field together with the full per-emitter gain vector
//	    (zero entries included) so callers can audit which emitters
//	    contributed.
//
// A degenerate selection with zero active emitters returns an all-zero
// field and no error.
//
// Errors: ErrBadFrequency, the grid validation sentinels, every
// geometry sentinel of package secsrc, and any collaborator failure,
// each wrapped with its stage.
//
// Complexity: O(N·M) time for N retained emitters and M observation
// points; O(M) memory per worker.
func Synthesize(p grid.Plane, src driving.Source, g secsrc.Geometry, f float64, opts ...Option) (*grid.Field, []float64, error) {
	if f <= 0 {
		return nil, nil, fmt.Errorf("f=%g: %w", f, ErrBadFrequency)
	}
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	o := gatherOptions(opts)

	ss, err := secsrc.Positions(g)
	if err != nil {
		return nil, nil, fmt.Errorf("geometry: %w", err)
	}

	activity := o.selector.Active(ss, src, o.xref)
	window, err := o.taperer.Window(activity, secsrc.Closed(g))
	if err != nil {
		return nil, nil, fmt.Errorf("taper: %w", err)
	}

	gain := make([]float64, len(ss))
	retained := make([]int, 0, len(ss))
	for i := range ss {
		gain[i] = activity[i] * window[i]
		if gain[i] > 0 {
			retained = append(retained, i)
		}
	}

	points := p.Points()
	field := grid.NewField(p)
	if len(retained) == 0 {
		return field, gain, nil
	}

	accumulate := func(indices []int, out []complex128) error {
		for _, i := range indices {
			d, derr := o.driver.Drive(ss[i], src, f)
			if derr != nil {
				return fmt.Errorf("driving emitter %d: %w", i, derr)
			}
			prop, perr := o.propagator.Propagate(ss[i].Position, points, f)
			if perr != nil {
				return fmt.Errorf("propagating emitter %d: %w", i, perr)
			}
			if len(prop) != len(points) {
				return fmt.Errorf("propagating emitter %d: got %d values for %d points", i, len(prop), len(points))
			}

			w := complex(ss[i].Weight*gain[i], 0) * d
			for j, v := range prop {
				out[j] += w * v
			}
		}

		return nil
	}

	if o.workers <= 1 || len(retained) == 1 {
		if err = accumulate(retained, field.Values); err != nil {
			return nil, nil, err
		}

		return field, gain, nil
	}

	// Concurrent path: chunk the retained emitters across workers, each
	// summing into its own buffer, then reduce. The shared field is
	// written by a single goroutine only.
	workers := o.workers
	if workers > len(retained) {
		workers = len(retained)
	}
	partials := make([][]complex128, workers)

	var eg errgroup.Group
	chunk := (len(retained) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(retained) {
			hi = len(retained)
		}
		eg.Go(func() error {
			partials[w] = make([]complex128, len(points))

			return accumulate(retained[lo:hi], partials[w])
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, nil, err
	}
	for _, partial := range partials {
		field.Accumulate(1, partial)
	}

	return field, gain, nil
}
