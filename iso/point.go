package iso

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// isoLength returns the magnitude of a displacement given its
// components along two axes of the triangular grid. By the law of
// cosines this is sqrt(a^2 + b^2 - 2ab*cos(C)); the angle between the
// component directions is always 60 degrees, so 2*cos(C) is 1.
func isoLength(a, b float64) float64 {
	return math.Sqrt(a*a + b*b - a*b)
}

// Float returns a pointer to v. It builds the optional coordinate
// arguments of AtCoordinates, MoveTo and SetNet.
func Float(v float64) *float64 { return &v }

// argc counts the optional coordinate arguments that were provided.
func argc(args ...*float64) int {
	n := 0
	for _, a := range args {
		if a != nil {
			n++
		}
	}
	return n
}

// Point is a location on the surface of a single Grid. It stores the B
// and S axis coordinates; the D coordinate is derived so that b+s+d
// always equals the grid's altitude. The point references its grid but
// does not own it.
//
// Points are not safe for concurrent mutation; an embedding system that
// shares them across goroutines must serialize writers externally.
type Point struct {
	grid Grid
	b, s float64
}

// Center returns the point at the geometric center of g, where all
// three axis coordinates equal the apothem.
func Center(g Grid) *Point {
	return &Point{grid: g, b: g.Apothem(), s: g.Apothem()}
}

// AtCoordinates returns the point on g with the given axis coordinates.
// Exactly two of b, s, d must be non-nil; the third follows from the
// coordinate-sum invariant. Use Float to build the arguments.
func AtCoordinates(g Grid, b, s, d *float64) (*Point, error) {
	p := &Point{grid: g}
	if err := p.MoveTo(b, s, d); err != nil {
		return nil, err
	}
	return p, nil
}

// Grid returns the face this point lives on.
func (p *Point) Grid() Grid { return p.grid }

// B returns the coordinate along the B axis.
func (p *Point) B() float64 { return p.b }

// S returns the coordinate along the S axis.
func (p *Point) S() float64 { return p.s }

// D returns the coordinate along the D axis, derived from the
// coordinate-sum invariant.
func (p *Point) D() float64 { return p.grid.Altitude() - p.b - p.s }

// SetB moves the point along the B axis until its B coordinate is b.
// The axes are 120 degrees apart rather than orthogonal, so one unit of
// motion along B shows up as -0.5 units on each of S and D; the stored
// S coordinate absorbs its share here and D follows from the invariant.
// Holding S fixed instead would silently move the point sideways.
func (p *Point) SetB(b float64) {
	p.s -= 0.5 * (b - p.b)
	p.b = b
}

// SetS moves the point along the S axis until its S coordinate is s.
func (p *Point) SetS(s float64) {
	p.b -= 0.5 * (s - p.s)
	p.s = s
}

// SetD moves the point along the D axis until its D coordinate is d.
func (p *Point) SetD(d float64) {
	delta := 0.5 * (d - p.D())
	p.b -= delta
	p.s -= delta
}

// At returns the coordinate along the given axis.
func (p *Point) At(dir Direction) (float64, error) {
	if !dir.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	return p.at(dir), nil
}

// Set moves the point along the given axis until its coordinate is v.
func (p *Point) Set(dir Direction, v float64) error {
	switch dir {
	case B:
		p.SetB(v)
	case S:
		p.SetS(v)
	case D:
		p.SetD(v)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	return nil
}

// at returns the coordinate for a direction known to be valid.
func (p *Point) at(dir Direction) float64 {
	switch dir {
	case B:
		return p.b
	case S:
		return p.s
	default:
		return p.D()
	}
}

// MoveTo resets the point to the given coordinates. Exactly two of b,
// s, d must be non-nil; the omitted coordinate is derived from the
// coordinate-sum invariant. This is a full reset, not a move along the
// axes, so the coupling of the single-axis setters does not apply.
func (p *Point) MoveTo(b, s, d *float64) error {
	if argc(b, s, d) != 2 {
		return ErrArgumentCount
	}
	switch {
	case b == nil:
		p.b = p.grid.Altitude() - *s - *d
		p.s = *s
	case s == nil:
		p.b = *b
		p.s = p.grid.Altitude() - *b - *d
	default: // d == nil
		p.b = *b
		p.s = *s
	}
	return nil
}

// Add returns the point reached by applying the displacement v to p.
func (p *Point) Add(v *Vector) *Point {
	return &Point{grid: p.grid, b: p.b + v.DeltaB(), s: p.s + v.DeltaS()}
}

// SubVector returns the point reached by applying the opposite of v.
func (p *Point) SubVector(v *Vector) *Point {
	return &Point{grid: p.grid, b: p.b - v.DeltaB(), s: p.s - v.DeltaS()}
}

// Sub returns the displacement from other to p. Both points must be on
// the same grid.
func (p *Point) Sub(other *Point) (*Vector, error) {
	if p.grid != other.grid {
		return nil, fmt.Errorf("%w: point difference", ErrInvalidOperand)
	}
	return WithNetBS(p.b-other.b, p.s-other.s), nil
}

// DistanceFrom returns the distance between p and other. Points on the
// same grid are measured directly; a point on an adjacent face is
// reached by projecting p into that face's frame first. Any other pair
// of faces needs routing across the mesh, which this kernel does not
// do: the result is ErrNotImplemented.
func (p *Point) DistanceFrom(other *Point) (float64, error) {
	if p.grid == other.grid {
		db := other.b - p.b
		ds := other.s - p.s
		return isoLength(db-0.5*ds, ds-0.5*db), nil
	}
	if p.grid.IsAdjacentTo(other.grid) {
		projected, err := p.ProjectOnto(other.grid)
		if err != nil {
			return 0, err
		}
		return projected.DistanceFrom(other)
	}
	return p.GeodesicDistanceFrom(other)
}

// GeodesicDistanceFrom is the shortest distance to a point on a
// non-adjacent face, routed across the mesh. The general case belongs
// to a routing layer above this kernel and always returns
// ErrNotImplemented here.
func (p *Point) GeodesicDistanceFrom(other *Point) (float64, error) {
	return 0, ErrNotImplemented
}

// ProjectOnto returns the point on target that coincides with p in the
// plane, treating the two faces as glued flat along their shared edge.
// Projecting onto the point's own grid returns a plain copy; a target
// that does not share an edge with the point's grid yields
// ErrNotAdjacent.
//
// The two frames may disagree on both orientation and scale. The label
// rotation between them falls out of the difference of the two shared
// edge labels, and coordinate values are reconciled through the mean of
// the two altitudes, which reduces to the common coordinate-sum
// constant when the faces are the same size.
func (p *Point) ProjectOnto(target Grid) (*Point, error) {
	if target == p.grid {
		return &Point{grid: p.grid, b: p.b, s: p.s}, nil
	}
	if !p.grid.IsAdjacentTo(target) {
		return nil, fmt.Errorf("%w: cannot project", ErrNotAdjacent)
	}
	altitudeMean := (target.Altitude() + p.grid.Altitude()) / 2
	oldEdge := p.grid.DirectionAwayFrom(target)
	newEdge := target.DirectionAwayFrom(p.grid)
	// Source-frame axes that the target frame's B and S axes land on.
	complementOfB := oldEdge.RotatedCCW(int(newEdge))
	complementOfS := complementOfB.RotatedCW(1)
	projected := &Point{
		grid: target,
		b:    altitudeMean - p.at(complementOfB),
		s:    altitudeMean - p.at(complementOfS),
	}
	// Re-anchor the coordinate along the shared edge so the boundary
	// itself maps onto the boundary.
	switch newEdge {
	case B:
		projected.b -= altitudeMean
	case S:
		projected.s -= altitudeMean
	}
	return projected, nil
}

// ApproxEqual reports whether p and other lie on the same grid with
// coordinates equal within tol.
func (p *Point) ApproxEqual(other *Point, tol float64) bool {
	return p.grid == other.grid &&
		scalar.EqualWithinAbs(p.b, other.b, tol) &&
		scalar.EqualWithinAbs(p.s, other.s, tol)
}

func (p *Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.b, p.s, p.D())
}
