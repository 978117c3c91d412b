// Package mono: collaborator contracts, functional options and sentinel
// errors for the monochromatic synthesis kernel.
package mono

import (
	"errors"

	"github.com/katalvlaran/wavefield/driving"
	"github.com/katalvlaran/wavefield/greens"
	"github.com/katalvlaran/wavefield/secsrc"
	"github.com/katalvlaran/wavefield/selection"
	"github.com/katalvlaran/wavefield/taper"
	"github.com/katalvlaran/wavefield/vec"
)

var (
	// ErrBadFrequency indicates a non-positive synthesis frequency.
	ErrBadFrequency = errors.New("mono: frequency must be positive")
)

// Driver evaluates the complex driving coefficient of one secondary
// source for a virtual source at one frequency.
type Driver interface {
	Drive(s secsrc.SecondarySource, src driving.Source, f float64) (complex128, error)
}

// Propagator evaluates the free-field transfer from one emitter position
// to every observation point: one complex value per point, in point
// order.
type Propagator interface {
	Propagate(x0 vec.Vec3, points []vec.Vec3, f float64) ([]complex128, error)
}

// Selector returns one activity value in [0,1] per emitter (typically
// binary) for a virtual source and reference point.
type Selector interface {
	Active(ss []secsrc.SecondarySource, src driving.Source, xref vec.Vec3) []float64
}

// Taperer returns the per-emitter gain window over the activity vector,
// aware of cyclic emitter order on closed geometries.
type Taperer interface {
	Window(activity []float64, closed bool) ([]float64, error)
}

// wfsDriver adapts the driving package to the Driver contract, carrying
// the reference point and speed of sound resolved from the options.
type wfsDriver struct {
	xref vec.Vec3
	c    float64
}

func (d wfsDriver) Drive(s secsrc.SecondarySource, src driving.Source, f float64) (complex128, error) {
	return driving.WFS25D(src, s, d.xref, f, d.c)
}

// defaultSelector adapts package selection.
type defaultSelector struct{}

func (defaultSelector) Active(ss []secsrc.SecondarySource, src driving.Source, xref vec.Vec3) []float64 {
	return selection.Active(ss, src, xref)
}

// defaultTaperer adapts package taper with its default ramp fraction.
type defaultTaperer struct{}

func (defaultTaperer) Window(activity []float64, closed bool) ([]float64, error) {
	return taper.Window(activity, closed, taper.DefaultOptions())
}

// AllActive is a Selector that activates every emitter; useful for
// untruncated reference scenarios and order-invariance checks.
type AllActive struct{}

// Active implements Selector with a constant 1 per emitter.
func (AllActive) Active(ss []secsrc.SecondarySource, _ driving.Source, _ vec.Vec3) []float64 {
	out := make([]float64, len(ss))
	for i := range out {
		out[i] = 1
	}

	return out
}

// UnitTaper is a Taperer that applies no edge fade: the window equals
// the activity vector.
type UnitTaper struct{}

// Window implements Taperer by passing the activity through unchanged.
func (UnitTaper) Window(activity []float64, _ bool) ([]float64, error) {
	out := make([]float64, len(activity))
	copy(out, activity)

	return out, nil
}

// options carries the resolved kernel configuration. Fields stay
// unexported; public call sites configure via ...Option.
type options struct {
	workers    int
	c          float64
	xref       vec.Vec3
	driver     Driver
	propagator Propagator
	selector   Selector
	taperer    Taperer
}

// Option mutates the kernel configuration.
type Option func(*options)

// WithWorkers sets the number of concurrent accumulation workers.
// n ≤ 1 keeps the evaluation serial. Panics on n < 0 (programmer error,
// consistent with option-constructor validation policy).
func WithWorkers(n int) Option {
	if n < 0 {
		panic("mono: WithWorkers requires n ≥ 0")
	}

	return func(o *options) { o.workers = n }
}

// WithSpeedOfSound overrides the propagation speed used by the default
// driver and propagator. Panics on c ≤ 0.
func WithSpeedOfSound(c float64) Option {
	if c <= 0 {
		panic("mono: WithSpeedOfSound requires c > 0")
	}

	return func(o *options) { o.c = c }
}

// WithReference moves the 2.5D amplitude-reference point (default the
// origin).
func WithReference(xref vec.Vec3) Option {
	return func(o *options) { o.xref = xref }
}

// WithDriver replaces the default WFS 2.5D driving functions. Panics on
// nil.
func WithDriver(d Driver) Option {
	if d == nil {
		panic("mono: WithDriver requires a non-nil Driver")
	}

	return func(o *options) { o.driver = d }
}

// WithPropagator replaces the default free-field point-source
// propagation model. Panics on nil.
func WithPropagator(p Propagator) Option {
	if p == nil {
		panic("mono: WithPropagator requires a non-nil Propagator")
	}

	return func(o *options) { o.propagator = p }
}

// WithSelector replaces the default visibility-based secondary-source
// selection. Panics on nil.
func WithSelector(s Selector) Option {
	if s == nil {
		panic("mono: WithSelector requires a non-nil Selector")
	}

	return func(o *options) { o.selector = s }
}

// WithTaperer replaces the default 30% Hann tapering. Panics on nil.
func WithTaperer(t Taperer) Option {
	if t == nil {
		panic("mono: WithTaperer requires a non-nil Taperer")
	}

	return func(o *options) { o.taperer = t }
}

// gatherOptions resolves defaults: serial execution, default speed of
// sound, origin reference, and the standard collaborator set.
func gatherOptions(opts []Option) options {
	o := options{workers: 1, c: greens.C}
	for _, apply := range opts {
		apply(&o)
	}
	if o.driver == nil {
		o.driver = wfsDriver{xref: o.xref, c: o.c}
	}
	if o.propagator == nil {
		o.propagator = greens.FreeField{C: o.c}
	}
	if o.selector == nil {
		o.selector = defaultSelector{}
	}
	if o.taperer == nil {
		o.taperer = defaultTaperer{}
	}

	return o
}
