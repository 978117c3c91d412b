// Package wavefield is your in-memory playground for sound field
// synthesis — driving arrays of discrete loudspeakers so their
// superposed emission approximates a target virtual sound source.
//
// 🚀 What is wavefield?
//
//	A pure-Go library that brings together:
//		• Array geometries: linear, circular, box, rounded-box, edge,
//		  spherical and custom/imported distributions
//		• One parametrized curve behind circle, box and rounded box —
//		  with the corner-corrected quadrature weights
//		• 2.5D WFS driving functions for plane, point and focused
//		  virtual sources
//		• Free-field Green's functions (monochromatic propagators)
//		• Secondary-source selection and cyclic Hann tapering
//		• A monochromatic synthesis kernel: the discretized
//		  single-layer potential, optionally evaluated concurrently
//
// ✨ Why choose wavefield?
//
//   - Explicit inputs – no global configuration, every routine takes
//     its parameters as arguments
//   - Strict sentinels – configuration and format mistakes surface as
//     errors.Is-checkable values, never silent fallbacks
//   - Pure Go – no cgo, deterministic for fixed inputs
//   - Swappable physics – driving, propagation, selection and tapering
//     are interfaces with sensible defaults
//
// Under the hood, everything is organized under focused subpackages:
//
//	vec/       — 3-D vector primitives
//	secsrc/    — secondary-source distributions (the geometry core)
//	sphgrid/   — equiangular unit-sphere sampling
//	grid/      — observation planes & complex field buffers
//	greens/    — free-field Green's functions
//	driving/   — 2.5D WFS driving coefficients
//	selection/ — secondary-source visibility selection
//	taper/     — cyclic-aware tapering windows
//	mono/      — the monochromatic synthesis kernel
//
// Quick ASCII example:
//
//	    ● ● ● ● ● ● ●      ← secondary sources (linear array)
//	    ↓ ↓ ↓ ↓ ↓ ↓ ↓      ← driven emission
//	  ~~~~~~~~~~~~~~~~~    ← synthesized plane wave
//	        ▢ ▢ ▢
//	        ▢ ▢ ▢          ← observation grid (complex pressure)
//
// Dive into the package docs for per-component contracts, error
// taxonomies and complexity notes.
//
//	go get github.com/katalvlaran/wavefield
package wavefield
