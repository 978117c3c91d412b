package secsrc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavefield/vec"
)

// cornerWeight is the corrected quadrature factor for the two elements
// adjacent to each skipped box corner: (1+√2)/2 of the element spacing
// restores the corner sample's missing contribution (the naive 3/2
// factor overshoots it).
const cornerWeight = (1 + math.Sqrt2) / 2

// Positions — secondary-source distribution generator.
//
// Description:
//
//	Turns an abstract Geometry into the concrete ordered table of
//	emitters: position, outward/emission normal and quadrature weight
//	per element. The order is spatially contiguous along the array, and
//	for closed shapes (see Closed) wraps around modulo N so that
//	downstream cyclic tapering windows see no discontinuity.
//
// Errors:
//
//	ErrNilGeometry, ErrBadCount, ErrBadSize, ErrBadRoundness,
//	ErrBadAngle, ErrNilGrid and the custom-table sentinels ErrBadTable,
//	ErrNotFinite, ErrNegativeWeight. All are fatal configuration or
//	format errors; nothing falls back to a default shape.
//
// Complexity: O(N) time and memory for every shape.
func Positions(g Geometry) ([]SecondarySource, error) {
	switch s := g.(type) {
	case Linear:
		return linearPositions(s)
	case Circular:
		return curvePositions(s.Center, s.Diameter, 1, s.N)
	case Box:
		return boxPositions(s)
	case RoundedBox:
		return roundedBoxPositions(s)
	case Edge:
		return edgePositions(s)
	case Spherical:
		return spherePositions(s)
	case Custom:
		return customPositions(s)
	case nil:
		return nil, ErrNilGeometry
	default:
		// Unreachable for the closed variant set; kept for the nil
		// interface-with-type corner of the type switch.
		return nil, ErrNilGeometry
	}
}

// linearPositions places N emitters evenly over [−L/2, L/2] along the
// local x-axis, all radiating toward negative y. Weight is the element
// spacing L/(N−1); a single emitter degenerates to weight 1.
func linearPositions(g Linear) ([]SecondarySource, error) {
	if g.N < 1 {
		return nil, fmt.Errorf("linear: count must be ≥ 1, got %d: %w", g.N, ErrBadCount)
	}
	if g.Length <= 0 {
		return nil, fmt.Errorf("linear: length %g: %w", g.Length, ErrBadSize)
	}

	normal := vec.Vec3{Y: -1}
	if g.N == 1 {
		return []SecondarySource{{Position: g.Center, Normal: normal, Weight: 1}}, nil
	}

	dx := g.Length / float64(g.N-1)
	out := make([]SecondarySource, g.N)
	for i := range out {
		out[i] = SecondarySource{
			Position: g.Center.Add(vec.Vec3{X: -g.Length/2 + float64(i)*dx}),
			Normal:   normal,
			Weight:   dx,
		}
	}

	return out, nil
}

// curvePositions samples the unified curve at N evenly spaced parameter
// values, then scales the unit curve by diameter/2 and translates it to
// center. Shared by the circular (r=1) and rounded-box (r<1) shapes.
func curvePositions(center vec.Vec3, diameter, roundness float64, n int) ([]SecondarySource, error) {
	if n < 1 {
		return nil, fmt.Errorf("curve: count must be ≥ 1, got %d: %w", n, ErrBadCount)
	}
	if diameter <= 0 {
		return nil, fmt.Errorf("curve: diameter %g: %w", diameter, ErrBadSize)
	}

	radius := diameter / 2
	out := make([]SecondarySource, n)
	for i := range out {
		p, nrm, density := curvePoint(float64(i)/float64(n), roundness)
		out[i] = SecondarySource{
			Position: center.Add(p.Scale(radius)),
			Normal:   nrm,
			Weight:   density / float64(n) * radius,
		}
	}

	return out, nil
}

// boxPositions samples the r=0 curve on the corner-skipping grid:
// N/4 elements per edge, offset inward by half a spacing so no sample
// lands on a corner, then overwrites the weight of the first and last
// element of every edge with the corrected corner weight.
func boxPositions(g Box) ([]SecondarySource, error) {
	if g.N < 4 || g.N%4 != 0 {
		return nil, fmt.Errorf("box: count must be a positive multiple of 4, got %d: %w", g.N, ErrBadCount)
	}
	if g.Length <= 0 {
		return nil, fmt.Errorf("box: length %g: %w", g.Length, ErrBadSize)
	}

	perEdge := g.N / 4
	du := 2 / float64(perEdge) // spacing on the unit square (side 2)
	radius := g.Length / 2
	out := make([]SecondarySource, g.N)
	for i := range out {
		edge, j := i/perEdge, i%perEdge
		// Arc length from the start of the traversal, shifted so edges
		// begin just past a corner: half-spacing padding on both ends.
		s := float64(edge)*2 + (float64(j)+0.5)*du
		t := math.Mod((s-1)/8+1, 1)
		p, nrm, _ := curvePoint(t, 0)

		w := du * radius // element spacing after scaling
		if j == 0 || j == perEdge-1 {
			w *= cornerWeight
		}
		out[i] = SecondarySource{
			Position: g.Center.Add(p.Scale(radius)),
			Normal:   nrm,
			Weight:   w,
		}
	}

	return out, nil
}

// roundedBoxPositions validates the corner radius and delegates to the
// unified curve with roundness 2·CornerRadius/Length.
func roundedBoxPositions(g RoundedBox) ([]SecondarySource, error) {
	if g.Length <= 0 {
		return nil, fmt.Errorf("rounded-box: length %g: %w", g.Length, ErrBadSize)
	}
	if g.CornerRadius < 0 || g.CornerRadius > g.Length/2 {
		return nil, fmt.Errorf("rounded-box: corner radius %g outside [0, %g]: %w",
			g.CornerRadius, g.Length/2, ErrBadRoundness)
	}

	return curvePositions(g.Center, g.Length, 2*g.CornerRadius/g.Length, g.N)
}

// edgePositions builds two straight arms meeting at Center under the
// angles Alpha1 and Alpha2. The traversal runs from the far end of the
// first arm through the junction to the far end of the second arm, so
// adjacent slice entries stay spatially adjacent. Arm normals are the
// arm directions rotated ±90° toward the wedge interior; an odd count
// places a hinge emitter at the junction with the bisecting normal.
func edgePositions(g Edge) ([]SecondarySource, error) {
	if g.N < 2 {
		return nil, fmt.Errorf("edge: count must be ≥ 2, got %d: %w", g.N, ErrBadCount)
	}
	if g.Length <= 0 {
		return nil, fmt.Errorf("edge: length %g: %w", g.Length, ErrBadSize)
	}

	dir1 := vec.Vec3{X: math.Cos(g.Alpha1), Y: math.Sin(g.Alpha1)}
	dir2 := vec.Vec3{X: math.Cos(g.Alpha2), Y: math.Sin(g.Alpha2)}
	n1 := vec.Vec3{X: math.Sin(g.Alpha1), Y: -math.Cos(g.Alpha1)} // dir1 rotated −90°
	n2 := vec.Vec3{X: -math.Sin(g.Alpha2), Y: math.Cos(g.Alpha2)} // dir2 rotated +90°

	hinge := n1.Add(n2)
	if hinge.Norm() < 1e-12 {
		return nil, fmt.Errorf("edge: angles %g and %g leave the arms collinear: %w",
			g.Alpha1, g.Alpha2, ErrBadAngle)
	}
	hinge = hinge.Normalize()

	perArm := g.N / 2
	dx := g.Length / float64(perArm)
	out := make([]SecondarySource, 0, g.N)

	// First arm, far end toward the junction.
	for j := 0; j < perArm; j++ {
		d := g.Length - (float64(j)+0.5)*dx
		out = append(out, SecondarySource{
			Position: g.Center.Add(dir1.Scale(d)),
			Normal:   n1,
			Weight:   dx,
		})
	}
	// Hinge emitter for odd counts.
	if g.N%2 == 1 {
		out = append(out, SecondarySource{Position: g.Center, Normal: hinge, Weight: dx})
	}
	// Second arm, junction outward.
	for j := 0; j < perArm; j++ {
		d := (float64(j) + 0.5) * dx
		out = append(out, SecondarySource{
			Position: g.Center.Add(dir2.Scale(d)),
			Normal:   n2,
			Weight:   dx,
		})
	}

	return out, nil
}

// spherePositions scales the collaborating grid's unit-sphere points by
// diameter/2, flips normals inward, and converts the grid's angular
// weights into area elements: the equal-angle contract supplies raw
// ΔθΔφ cells, so the cos(elevation) factor and the radius² scaling are
// applied here.
func spherePositions(g Spherical) ([]SecondarySource, error) {
	if g.Diameter <= 0 {
		return nil, fmt.Errorf("spherical: diameter %g: %w", g.Diameter, ErrBadSize)
	}
	if g.Grid == nil {
		return nil, ErrNilGrid
	}

	points, weights, err := g.Grid.Sphere(g.N)
	if err != nil {
		return nil, fmt.Errorf("spherical: grid: %w", err)
	}

	radius := g.Diameter / 2
	out := make([]SecondarySource, len(points))
	for i, p := range points {
		cosEl := math.Sqrt(math.Max(0, 1-p.Z*p.Z)) // cos(elevation) on the unit sphere
		out[i] = SecondarySource{
			Position: g.Center.Add(p.Scale(radius)),
			Normal:   p.Scale(-1),
			Weight:   weights[i] * cosEl * radius * radius,
		}
	}

	return out, nil
}

// customPositions accepts a pre-built (n,7) table or pulls one from the
// Loader, then validates every row against the SecondarySource
// invariants before handing it out.
func customPositions(g Custom) ([]SecondarySource, error) {
	table := g.Table
	if table == nil && g.Source != nil {
		loaded, err := g.Source.Load()
		if err != nil {
			return nil, fmt.Errorf("custom: load: %w", err)
		}
		table = loaded
	}
	if len(table) == 0 {
		return nil, ErrBadTable
	}

	out := make([]SecondarySource, len(table))
	for i, row := range table {
		s := SecondarySource{
			Position: vec.Vec3{X: row[0], Y: row[1], Z: row[2]},
			Normal:   vec.Vec3{X: row[3], Y: row[4], Z: row[5]},
			Weight:   row[6],
		}
		switch {
		case !s.Position.IsFinite() || !s.Normal.IsFinite() ||
			math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0):
			return nil, fmt.Errorf("custom: row %d: %w", i, ErrNotFinite)
		case math.Abs(s.Normal.Norm()-1) > unitTol:
			return nil, fmt.Errorf("custom: row %d normal length %g: %w", i, s.Normal.Norm(), ErrNotFinite)
		case s.Weight < 0:
			return nil, fmt.Errorf("custom: row %d weight %g: %w", i, s.Weight, ErrNegativeWeight)
		}
		out[i] = s
	}

	return out, nil
}
