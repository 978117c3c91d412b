package secsrc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/wavefield/secsrc"
	"github.com/katalvlaran/wavefield/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPositions_Linear verifies the arithmetic x-sequence over
// [−L/2, L/2], the uniform weight L/(N−1), and the fixed −y normal.
func TestPositions_Linear(t *testing.T) {
	const (
		n = 11
		l = 1.0
	)
	center := vec.Vec3{X: 0.5, Y: 2, Z: -1}

	ss, err := secsrc.Positions(secsrc.Linear{Center: center, Length: l, N: n})
	require.NoError(t, err)
	require.Len(t, ss, n)

	dx := l / float64(n-1)
	for i, s := range ss {
		assert.InDelta(t, center.X-l/2+float64(i)*dx, s.Position.X, 1e-12, "x of element %d", i)
		assert.Equal(t, center.Y, s.Position.Y, "y stays on the array line")
		assert.Equal(t, center.Z, s.Position.Z, "z stays on the array line")
		assert.Equal(t, vec.Vec3{Y: -1}, s.Normal, "linear arrays radiate toward −y")
		assert.InDelta(t, dx, s.Weight, 1e-12, "uniform spacing weight")
	}
}

// TestPositions_LinearSingle covers the one-emitter degenerate case:
// position at center, weight 1.
func TestPositions_LinearSingle(t *testing.T) {
	ss, err := secsrc.Positions(secsrc.Linear{Length: 2, N: 1})
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, vec.Vec3{}, ss[0].Position)
	assert.Equal(t, 1.0, ss[0].Weight)
}

// TestPositions_Circular checks the three circle invariants: exact
// radius, radial normals, and weight sum ≈ circumference.
func TestPositions_Circular(t *testing.T) {
	const (
		n        = 16
		diameter = 3.0
	)
	center := vec.Vec3{X: 1, Y: -2}
	radius := diameter / 2

	ss, err := secsrc.Positions(secsrc.Circular{Center: center, Diameter: diameter, N: n})
	require.NoError(t, err)
	require.Len(t, ss, n)

	var weightSum float64
	for i, s := range ss {
		r := s.Position.Sub(center)
		assert.InDelta(t, radius, r.Norm(), 1e-9, "element %d on the circle", i)

		radial := r.Scale(1 / radius)
		assert.InDelta(t, radial.X, s.Normal.X, 1e-9, "radial normal X, element %d", i)
		assert.InDelta(t, radial.Y, s.Normal.Y, 1e-9, "radial normal Y, element %d", i)
		assert.InDelta(t, 1, s.Normal.Norm(), 1e-12, "unit normal, element %d", i)
		weightSum += s.Weight
	}
	assert.InDelta(t, 2*math.Pi*radius, weightSum, 1e-9, "weights sum to the circumference")
}

// TestPositions_BoxBadCount rejects counts that are not positive
// multiples of 4 with the configuration sentinel.
func TestPositions_BoxBadCount(t *testing.T) {
	for _, n := range []int{0, 2, 3, 10, 13} {
		_, err := secsrc.Positions(secsrc.Box{Length: 2, N: n})
		assert.ErrorIs(t, err, secsrc.ErrBadCount, "count %d must be rejected", n)
	}
}

// TestPositions_BoxCornerWeights verifies the N=8 case: every element is
// corner-adjacent and carries (1+√2)/2 · spacing, positions sit half a
// spacing in from the corners, and the traversal is one CCW loop.
func TestPositions_BoxCornerWeights(t *testing.T) {
	const l = 2.0
	ss, err := secsrc.Positions(secsrc.Box{Length: l, N: 8})
	require.NoError(t, err)
	require.Len(t, ss, 8)

	spacing := l / 2 // N/4 = 2 elements per edge
	wantWeight := (1 + math.Sqrt2) / 2 * spacing
	wantPos := []vec.Vec3{
		{X: 1, Y: -0.5}, {X: 1, Y: 0.5},
		{X: 0.5, Y: 1}, {X: -0.5, Y: 1},
		{X: -1, Y: 0.5}, {X: -1, Y: -0.5},
		{X: -0.5, Y: -1}, {X: 0.5, Y: -1},
	}
	for i, s := range ss {
		assert.InDelta(t, wantPos[i].X, s.Position.X, 1e-12, "element %d x", i)
		assert.InDelta(t, wantPos[i].Y, s.Position.Y, 1e-12, "element %d y", i)
		assert.InDelta(t, wantWeight, s.Weight, 1e-12, "corner-adjacent weight, element %d", i)
	}
}

// TestPositions_BoxLoop checks a larger box: exactly 8 corner-adjacent
// weights, uniform interior weights, and a single non-self-intersecting
// counter-clockwise loop (positive shoelace area, bounded step length).
func TestPositions_BoxLoop(t *testing.T) {
	const (
		n = 24
		l = 3.0
	)
	ss, err := secsrc.Positions(secsrc.Box{Length: l, N: n})
	require.NoError(t, err)
	require.Len(t, ss, n)

	spacing := l / float64(n/4)
	corner := (1 + math.Sqrt2) / 2 * spacing
	var cornerCount int
	for i, s := range ss {
		if math.Abs(s.Weight-corner) < 1e-12 {
			cornerCount++
		} else {
			assert.InDelta(t, spacing, s.Weight, 1e-12, "interior weight, element %d", i)
		}
	}
	assert.Equal(t, 8, cornerCount, "exactly two corner-adjacent elements per edge")

	// Single CCW loop: every consecutive step (cyclically) stays below
	// two spacings and the shoelace area is positive.
	var area float64
	for i := range ss {
		a, b := ss[i].Position, ss[(i+1)%n].Position
		assert.Less(t, a.Dist(b), 2*spacing, "loop continuity between %d and %d", i, (i+1)%n)
		area += a.X*b.Y - b.X*a.Y
	}
	assert.Greater(t, area, 0.0, "counter-clockwise traversal")
}

// TestPositions_RoundedBox pins the algebraic unification: corner radius
// Length/2 must reproduce the circular geometry, and intermediate radii
// sum their weights to the analytic rounded-rectangle perimeter.
func TestPositions_RoundedBox(t *testing.T) {
	const (
		n = 32
		l = 2.0
	)

	round, err := secsrc.Positions(secsrc.RoundedBox{Length: l, CornerRadius: l / 2, N: n})
	require.NoError(t, err)
	circle, err := secsrc.Positions(secsrc.Circular{Diameter: l, N: n})
	require.NoError(t, err)
	for i := range round {
		assert.InDelta(t, circle[i].Position.X, round[i].Position.X, 1e-12, "full roundness equals circle, element %d", i)
		assert.InDelta(t, circle[i].Position.Y, round[i].Position.Y, 1e-12, "full roundness equals circle, element %d", i)
		assert.InDelta(t, circle[i].Weight, round[i].Weight, 1e-12, "full roundness weight, element %d", i)
	}

	const cornerRadius = 0.3
	rounded, err := secsrc.Positions(secsrc.RoundedBox{Length: l, CornerRadius: cornerRadius, N: n})
	require.NoError(t, err)
	var weightSum float64
	for _, s := range rounded {
		weightSum += s.Weight
	}
	r := 2 * cornerRadius / l
	wantPerimeter := (8*(1-r) + 2*math.Pi*r) * l / 2
	assert.InDelta(t, wantPerimeter, weightSum, 1e-9, "weights sum to the rounded perimeter")
}

// TestPositions_RoundedBoxBadRadius rejects corner radii outside
// [0, Length/2].
func TestPositions_RoundedBoxBadRadius(t *testing.T) {
	_, err := secsrc.Positions(secsrc.RoundedBox{Length: 2, CornerRadius: 1.5, N: 8})
	assert.ErrorIs(t, err, secsrc.ErrBadRoundness)

	_, err = secsrc.Positions(secsrc.RoundedBox{Length: 2, CornerRadius: -0.1, N: 8})
	assert.ErrorIs(t, err, secsrc.ErrBadRoundness)
}

// TestPositions_Edge verifies the two-arm construction for a right-angle
// corner: arm normals point into the wedge interior, the odd-count hinge
// normal bisects them, and the weight is Length/⌊N/2⌋ everywhere.
func TestPositions_Edge(t *testing.T) {
	const (
		n = 9
		l = 2.0
	)
	ss, err := secsrc.Positions(secsrc.Edge{Length: l, N: n, Alpha1: math.Pi / 2, Alpha2: 0})
	require.NoError(t, err)
	require.Len(t, ss, n)

	perArm := n / 2
	dx := l / float64(perArm)
	for i, s := range ss {
		assert.InDelta(t, dx, s.Weight, 1e-12, "uniform edge weight, element %d", i)
		assert.InDelta(t, 1, s.Normal.Norm(), 1e-12, "unit normal, element %d", i)
	}

	// First arm runs down the +y axis toward the junction, radiating +x.
	for i := 0; i < perArm; i++ {
		assert.InDelta(t, 0, ss[i].Position.X, 1e-12, "first arm on the y-axis, element %d", i)
		assert.InDelta(t, l-(float64(i)+0.5)*dx, ss[i].Position.Y, 1e-12, "first arm ordering, element %d", i)
		assert.InDelta(t, 1, ss[i].Normal.X, 1e-12, "first arm radiates +x")
	}

	// Hinge sits at the junction with the bisecting normal.
	hinge := ss[perArm]
	assert.Equal(t, vec.Vec3{}, hinge.Position, "hinge at the junction")
	assert.InDelta(t, math.Sqrt2/2, hinge.Normal.X, 1e-12, "hinge normal bisects the arms")
	assert.InDelta(t, math.Sqrt2/2, hinge.Normal.Y, 1e-12, "hinge normal bisects the arms")

	// Second arm runs out the +x axis, radiating +y.
	for i := 0; i < perArm; i++ {
		s := ss[perArm+1+i]
		assert.InDelta(t, (float64(i)+0.5)*dx, s.Position.X, 1e-12, "second arm ordering, element %d", i)
		assert.InDelta(t, 1, s.Normal.Y, 1e-12, "second arm radiates +y")
	}
}

// TestPositions_EdgeDegenerate rejects coincident arms, where no
// consistent hinge normal exists.
func TestPositions_EdgeDegenerate(t *testing.T) {
	_, err := secsrc.Positions(secsrc.Edge{Length: 1, N: 6, Alpha1: 0, Alpha2: 0})
	assert.ErrorIs(t, err, secsrc.ErrBadAngle)
}

// stubGrid hands out a fixed set of unit-sphere points with uniform
// angular weights, standing in for the sphgrid collaborator.
type stubGrid struct{}

func (stubGrid) Sphere(int) ([]vec.Vec3, []float64, error) {
	return []vec.Vec3{
		{Z: 1},                              // north pole
		{X: 1},                              // equator
		{X: math.Sqrt2 / 2, Z: math.Sqrt2 / 2}, // 45° elevation
	}, []float64{0.5, 0.5, 0.5}, nil
}

// TestPositions_Spherical verifies inward normals, radius scaling, and
// the cos(elevation) × radius² weight correction applied on top of the
// grid's raw angular weights.
func TestPositions_Spherical(t *testing.T) {
	const diameter = 4.0
	radius := diameter / 2

	ss, err := secsrc.Positions(secsrc.Spherical{Diameter: diameter, N: 3, Grid: stubGrid{}})
	require.NoError(t, err)
	require.Len(t, ss, 3)

	for i, s := range ss {
		assert.InDelta(t, radius, s.Position.Norm(), 1e-12, "element %d on the sphere", i)
		inward := s.Position.Scale(-1 / radius)
		assert.InDelta(t, inward.X, s.Normal.X, 1e-12, "inward normal X, element %d", i)
		assert.InDelta(t, inward.Z, s.Normal.Z, 1e-12, "inward normal Z, element %d", i)
	}

	// cos(elevation) is 0 at the pole, 1 on the equator, √2/2 at 45°.
	assert.InDelta(t, 0, ss[0].Weight, 1e-12, "pole weight vanishes")
	assert.InDelta(t, 0.5*radius*radius, ss[1].Weight, 1e-12, "equator weight")
	assert.InDelta(t, 0.5*math.Sqrt2/2*radius*radius, ss[2].Weight, 1e-12, "45° weight")
}

// TestPositions_SphericalNilGrid requires a grid collaborator.
func TestPositions_SphericalNilGrid(t *testing.T) {
	_, err := secsrc.Positions(secsrc.Spherical{Diameter: 2, N: 8})
	assert.ErrorIs(t, err, secsrc.ErrNilGrid)
}

// errLoader always fails, exercising the loader error path.
type errLoader struct{}

func (errLoader) Load() ([][7]float64, error) { return nil, errors.New("boom") }

// tableLoader hands out a fixed table, exercising the import path.
type tableLoader struct{ rows [][7]float64 }

func (l tableLoader) Load() ([][7]float64, error) { return l.rows, nil }

// TestPositions_Custom validates the (n,7) contract: a good table round-
// trips, and missing rows, non-finite entries, non-unit normals and
// negative weights are each rejected with their sentinel.
func TestPositions_Custom(t *testing.T) {
	good := [][7]float64{
		{0, 0, 0, 0, -1, 0, 0.5},
		{1, 0, 0, 0, -1, 0, 0.5},
	}
	ss, err := secsrc.Positions(secsrc.Custom{Table: good})
	require.NoError(t, err)
	require.Len(t, ss, 2)
	assert.Equal(t, vec.Vec3{X: 1}, ss[1].Position)
	assert.Equal(t, vec.Vec3{Y: -1}, ss[1].Normal)
	assert.Equal(t, 0.5, ss[1].Weight)

	_, err = secsrc.Positions(secsrc.Custom{})
	assert.ErrorIs(t, err, secsrc.ErrBadTable, "empty table")

	_, err = secsrc.Positions(secsrc.Custom{Table: [][7]float64{{math.NaN(), 0, 0, 0, -1, 0, 1}}})
	assert.ErrorIs(t, err, secsrc.ErrNotFinite, "NaN position")

	_, err = secsrc.Positions(secsrc.Custom{Table: [][7]float64{{0, 0, 0, 0, -0.5, 0, 1}}})
	assert.ErrorIs(t, err, secsrc.ErrNotFinite, "non-unit normal")

	_, err = secsrc.Positions(secsrc.Custom{Table: [][7]float64{{0, 0, 0, 0, -1, 0, -1}}})
	assert.ErrorIs(t, err, secsrc.ErrNegativeWeight, "negative weight")

	_, err = secsrc.Positions(secsrc.Custom{Source: errLoader{}})
	assert.Error(t, err, "loader failure propagates")

	ss, err = secsrc.Positions(secsrc.Custom{Source: tableLoader{rows: good}})
	require.NoError(t, err)
	assert.Len(t, ss, 2, "loader-backed table accepted")
}

// TestPositions_NilGeometry rejects a nil geometry outright.
func TestPositions_NilGeometry(t *testing.T) {
	_, err := secsrc.Positions(nil)
	assert.ErrorIs(t, err, secsrc.ErrNilGeometry)
}

// TestClosed pins the cyclic-order contract per shape.
func TestClosed(t *testing.T) {
	assert.True(t, secsrc.Closed(secsrc.Circular{}))
	assert.True(t, secsrc.Closed(secsrc.Box{}))
	assert.True(t, secsrc.Closed(secsrc.RoundedBox{}))
	assert.True(t, secsrc.Closed(secsrc.Spherical{}))
	assert.False(t, secsrc.Closed(secsrc.Linear{}))
	assert.False(t, secsrc.Closed(secsrc.Edge{}))
	assert.False(t, secsrc.Closed(secsrc.Custom{}))
}
