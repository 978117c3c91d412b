// Package secsrc generates secondary-source distributions: the ordered
// tables of loudspeaker positions, normals and quadrature weights that
// drive sound field synthesis.
//
// What:
//
//   - Geometry is a closed tagged set of array shapes: Linear, Circular,
//     Box, RoundedBox, Edge, Spherical and Custom.
//   - Positions(g) expands a shape into []SecondarySource — one emitter
//     per element with position ∈ ℝ³, unit emission normal, and a
//     quadrature weight approximating the local line or area element.
//   - Circular, Box and RoundedBox all ride one parametrized curve: a
//     rounded square whose roundness sweeps from sharp rectangle (0)
//     through every rounded rectangle to the circle (1).
//
// Why:
//
//   - Wave Field Synthesis approximates a boundary integral by a
//     weighted sum over discrete emitters; correct weights and a
//     spatially contiguous, cyclic element order are what make the
//     downstream quadrature and tapering windows valid.
//   - Box corners are never sampled; the two elements flanking each
//     corner instead carry the corrected weight (1+√2)/2 · spacing so
//     the perimeter quadrature stays exact.
//
// Ordering invariant:
//
//   - Adjacent slice entries are spatially adjacent along the array.
//   - Closed shapes (Closed(g) == true) form a single
//     non-self-intersecting loop traversed counter-clockwise, so any
//     window taken modulo N is contiguous.
//
// Errors:
//
//   - ErrNilGeometry, ErrBadCount, ErrBadSize, ErrBadRoundness,
//     ErrBadAngle, ErrNilGrid — fatal configuration errors.
//   - ErrBadTable, ErrNotFinite, ErrNegativeWeight — fatal format errors
//     for custom/imported tables, with the offending row identified.
//
// Complexity: Positions is O(N) time and memory for every shape.
package secsrc
