package iso

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector is a displacement in the plane of a triangular grid. It stores
// two independent scalar components; these are not the net motion along
// the B and S axes (see DeltaB, DeltaS and DeltaD for those). The D
// component is structurally zero: two components already determine a
// displacement in the plane, and a third would overconstrain it. The
// net motion along D is still meaningful and settable.
//
// A vector is not tied to any particular grid, only to the shared axis
// basis, so it can be carried between same-scale faces freely.
//
// The scalar length is cached and recomputed lazily after mutation.
// Like Point, a Vector is not safe for concurrent mutation.
type Vector struct {
	bComponent float64
	sComponent float64

	cachedLength float64
	lengthDirty  bool
}

// NewVector returns the vector with the given raw components.
func NewVector(bComponent, sComponent float64) *Vector {
	return &Vector{bComponent: bComponent, sComponent: sComponent, lengthDirty: true}
}

// WithNetBS returns the vector whose net displacements along the B and
// S axes are deltaB and deltaS. The net deltas of the result satisfy
// DeltaB() == deltaB and DeltaS() == deltaS exactly; DeltaD follows
// from the zero-sum constraint.
func WithNetBS(deltaB, deltaS float64) *Vector {
	return NewVector((4*deltaB+2*deltaS)/3, (2*deltaB+4*deltaS)/3)
}

// WithNetBD returns the vector whose net displacements along the B and
// D axes are deltaB and deltaD.
func WithNetBD(deltaB, deltaD float64) *Vector {
	return NewVector((2*deltaB-2*deltaD)/3, (-2*deltaB-4*deltaD)/3)
}

// WithNetSD returns the vector whose net displacements along the S and
// D axes are deltaS and deltaD.
func WithNetSD(deltaS, deltaD float64) *Vector {
	return NewVector((-2*deltaS-4*deltaD)/3, (2*deltaS-2*deltaD)/3)
}

// BetweenPoints returns the displacement from start to end. Both points
// must be on the same grid.
func BetweenPoints(start, end *Point) (*Vector, error) {
	return end.Sub(start)
}

// BComponent returns the stored B component. This is not the net
// change along the B axis.
func (v *Vector) BComponent() float64 { return v.bComponent }

// SComponent returns the stored S component. This is not the net
// change along the S axis.
func (v *Vector) SComponent() float64 { return v.sComponent }

// DComponent is always zero; see the type comment. The net change
// along D is DeltaD.
func (v *Vector) DComponent() float64 { return 0 }

// SetBComponent sets the stored B component directly.
func (v *Vector) SetBComponent(bComponent float64) {
	v.bComponent = bComponent
	v.lengthDirty = true
}

// SetSComponent sets the stored S component directly.
func (v *Vector) SetSComponent(sComponent float64) {
	v.sComponent = sComponent
	v.lengthDirty = true
}

// SetDComponent always fails: the D component is structurally zero.
// SetDeltaD is the meaningful way to move a vector along the D axis.
func (v *Vector) SetDComponent(float64) error {
	return fmt.Errorf("%w: d component is always zero", ErrUnsupportedOperation)
}

// DeltaB returns the vector's net change along the B axis.
func (v *Vector) DeltaB() float64 { return v.bComponent - 0.5*v.sComponent }

// DeltaS returns the vector's net change along the S axis.
func (v *Vector) DeltaS() float64 { return v.sComponent - 0.5*v.bComponent }

// DeltaD returns the vector's net change along the D axis. The three
// net deltas always sum to zero.
func (v *Vector) DeltaD() float64 { return -0.5 * (v.bComponent + v.sComponent) }

// SetDeltaB moves the vector along the B axis until its net B delta is
// deltaB. As with the Point setters, a change of delta along one axis
// moves the net deltas of the other two axes by -0.5*delta each.
func (v *Vector) SetDeltaB(deltaB float64) {
	v.bComponent += deltaB - v.DeltaB()
	v.lengthDirty = true
}

// SetDeltaS moves the vector along the S axis until its net S delta is
// deltaS.
func (v *Vector) SetDeltaS(deltaS float64) {
	v.sComponent += deltaS - v.DeltaS()
	v.lengthDirty = true
}

// SetDeltaD moves the vector along the D axis until its net D delta is
// deltaD.
func (v *Vector) SetDeltaD(deltaD float64) {
	delta := deltaD - v.DeltaD()
	v.bComponent -= delta
	v.sComponent -= delta
	v.lengthDirty = true
}

// At returns the net delta along the given axis.
func (v *Vector) At(dir Direction) (float64, error) {
	switch dir {
	case B:
		return v.DeltaB(), nil
	case S:
		return v.DeltaS(), nil
	case D:
		return v.DeltaD(), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
}

// Set moves the vector along the given axis until its net delta is x.
func (v *Vector) Set(dir Direction, x float64) error {
	switch dir {
	case B:
		v.SetDeltaB(x)
	case S:
		v.SetDeltaS(x)
	case D:
		v.SetDeltaD(x)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	return nil
}

// SetNet resets the vector to the given net deltas. Exactly two of b,
// s, d must be non-nil; the omitted delta follows from the zero-sum
// constraint. This is the zero-sum counterpart of Point.MoveTo: a full
// reset, not a move along the axes.
func (v *Vector) SetNet(b, s, d *float64) error {
	if argc(b, s, d) != 2 {
		return ErrArgumentCount
	}
	var w *Vector
	switch {
	case d == nil:
		w = WithNetBS(*b, *s)
	case s == nil:
		w = WithNetBD(*b, *d)
	default: // b == nil
		w = WithNetSD(*s, *d)
	}
	v.bComponent = w.bComponent
	v.sComponent = w.sComponent
	v.lengthDirty = true
	return nil
}

// Length returns the scalar length of the vector, computed from the
// component pair by the same law-of-cosines rule as point distance.
// The value is cached until the next mutation.
func (v *Vector) Length() float64 {
	if v.lengthDirty {
		v.cachedLength = isoLength(v.bComponent, v.sComponent)
		v.lengthDirty = false
	}
	return v.cachedLength
}

// SetLength rescales the vector to the given length, preserving its
// direction. A zero-length vector has no direction to preserve, so the
// call fails with ErrZeroLength.
//
// The cache is primed with the requested value rather than recomputed;
// the recomputation would carry the same floating-point error and this
// way the next read returns exactly what the caller asked for.
func (v *Vector) SetLength(length float64) error {
	current := v.Length()
	if current == 0 {
		return fmt.Errorf("%w: cannot rescale", ErrZeroLength)
	}
	factor := length / current
	v.bComponent *= factor
	v.sComponent *= factor
	v.cachedLength = length
	v.lengthDirty = false
	return nil
}

// Unit returns the vector scaled to length one. Fails with
// ErrZeroLength for the zero vector.
func (v *Vector) Unit() (*Vector, error) {
	length := v.Length()
	if length == 0 {
		return nil, fmt.Errorf("%w: cannot normalise", ErrZeroLength)
	}
	return NewVector(v.bComponent/length, v.sComponent/length), nil
}

// Add returns v + other, component-wise.
func (v *Vector) Add(other *Vector) *Vector {
	return NewVector(v.bComponent+other.bComponent, v.sComponent+other.sComponent)
}

// Sub returns v - other, component-wise.
func (v *Vector) Sub(other *Vector) *Vector {
	return NewVector(v.bComponent-other.bComponent, v.sComponent-other.sComponent)
}

// Scale returns v scaled by k.
func (v *Vector) Scale(k float64) *Vector {
	return NewVector(v.bComponent*k, v.sComponent*k)
}

// Div returns v scaled by 1/k. A zero divisor is a caller error and
// fails with ErrZeroDivisor rather than producing Inf components.
func (v *Vector) Div(k float64) (*Vector, error) {
	if k == 0 {
		return nil, fmt.Errorf("%w: cannot divide vector", ErrZeroDivisor)
	}
	return NewVector(v.bComponent/k, v.sComponent/k), nil
}

// ApproxEqual reports whether the two vectors' components are equal
// within tol.
func (v *Vector) ApproxEqual(other *Vector, tol float64) bool {
	return scalar.EqualWithinAbs(v.bComponent, other.bComponent, tol) &&
		scalar.EqualWithinAbs(v.sComponent, other.sComponent, tol)
}

func (v *Vector) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v.DeltaB(), v.DeltaS(), v.DeltaD())
}
