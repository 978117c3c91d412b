// Package mono synthesizes monochromatic sound fields: it drives a
// secondary-source array so that the superposed emission approximates a
// target virtual source, and integrates the per-emitter contributions
// into a complex pressure field over an observation grid.
//
// What:
//
//   - Synthesize orchestrates one synthesis call: geometry generation,
//     secondary-source selection, tapering, and the weighted
//     driving × propagation accumulation — a discretized single-layer
//     potential evaluated at a single temporal frequency.
//   - Collaborators are interfaces (Driver, Propagator, Selector,
//     Taperer) with defaults wired to the driving, greens, selection and
//     taper packages; any of them can be replaced per call via options.
//
// Concurrency:
//
//   - Each synthesis call is independent and reentrant; no state
//     survives the call.
//   - Per-emitter contributions are a commutative sum, so
//     WithWorkers(n) evaluates emitters concurrently into per-worker
//     partial sums merged at the end. Summation order only changes
//     floating-point rounding, never the mathematical result.
//
// Errors:
//
//   - ErrBadFrequency plus the sentinels of the collaborating packages,
//     wrapped with the failing stage. All errors are fatal configuration
//     or numeric-domain mistakes; nothing degrades to defaults.
//
// Output contract:
//
//   - The field is complex: magnitude is the pressure amplitude, phase
//     the propagation phase at the synthesis frequency.
//   - The second return is the full per-emitter gain vector
//     (selection × tapering, zero entries included) for auditing and
//     visualization.
package mono
