package iso

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deltaSum(v *Vector) float64 { return v.DeltaB() + v.DeltaS() + v.DeltaD() }

func TestWithNetConstructors(t *testing.T) {
	t.Run("b and s", func(t *testing.T) {
		v := WithNetBS(2, -1)
		assert.InDelta(t, 2, v.DeltaB(), tol)
		assert.InDelta(t, -1, v.DeltaS(), tol)
		assert.InDelta(t, -1, v.DeltaD(), tol)
	})
	t.Run("b and d", func(t *testing.T) {
		v := WithNetBD(1.5, 0.5)
		assert.InDelta(t, 1.5, v.DeltaB(), tol)
		assert.InDelta(t, -2, v.DeltaS(), tol)
		assert.InDelta(t, 0.5, v.DeltaD(), tol)
	})
	t.Run("s and d", func(t *testing.T) {
		v := WithNetSD(-3, 1)
		assert.InDelta(t, 2, v.DeltaB(), tol)
		assert.InDelta(t, -3, v.DeltaS(), tol)
		assert.InDelta(t, 1, v.DeltaD(), tol)
	})
}

func TestVectorZeroSum(t *testing.T) {
	vectors := []*Vector{
		NewVector(0, 0),
		NewVector(3, -2),
		WithNetBS(5, 7),
		WithNetBD(-1, 4),
		WithNetSD(0.25, -0.75),
	}
	for i, v := range vectors {
		assert.InDelta(t, 0, deltaSum(v), tol, "vector %d", i)
	}

	// The zero-sum constraint survives arbitrary mutation.
	v := NewVector(1, 2)
	mutations := []func(){
		func() { v.SetBComponent(4) },
		func() { v.SetSComponent(-1) },
		func() { v.SetDeltaB(2) },
		func() { v.SetDeltaS(-3) },
		func() { v.SetDeltaD(0.5) },
		func() { _ = v.Set(B, 10) },
		func() { _ = v.SetNet(Float(1), nil, Float(-2)) },
	}
	for i, mutate := range mutations {
		mutate()
		assert.InDelta(t, 0, deltaSum(v), tol, "after mutation %d", i)
	}
}

func TestVectorDeltaCoupling(t *testing.T) {
	// Same rule as the point setters: moving the net delta of one axis
	// by x moves the other two by -x/2 each.
	const delta = 2.5
	for _, dir := range []Direction{B, S, D} {
		v := NewVector(1, -2)
		before := map[Direction]float64{}
		for _, a := range []Direction{B, S, D} {
			x, err := v.At(a)
			require.NoError(t, err)
			before[a] = x
		}
		require.NoError(t, v.Set(dir, before[dir]+delta))
		for _, a := range []Direction{B, S, D} {
			got, err := v.At(a)
			require.NoError(t, err)
			want := before[a] + delta
			if a != dir {
				want = before[a] - 0.5*delta
			}
			assert.InDelta(t, want, got, tol, "axis %v after setting %v", a, dir)
		}
	}
}

func TestVectorAxisAccessErrors(t *testing.T) {
	v := NewVector(1, 1)
	_, err := v.At(Direction(3))
	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.ErrorIs(t, v.Set(Direction(-2), 0), ErrInvalidDirection)
}

func TestDComponentFixed(t *testing.T) {
	v := WithNetBS(3, 4)
	assert.Zero(t, v.DComponent())
	assert.ErrorIs(t, v.SetDComponent(1), ErrUnsupportedOperation)
	// The net motion along D is still settable.
	v.SetDeltaD(2)
	assert.InDelta(t, 2, v.DeltaD(), tol)
	assert.Zero(t, v.DComponent())
}

func TestSetNet(t *testing.T) {
	v := NewVector(9, 9)
	require.NoError(t, v.SetNet(Float(1), Float(2), nil))
	assert.InDelta(t, 1, v.DeltaB(), tol)
	assert.InDelta(t, 2, v.DeltaS(), tol)
	assert.InDelta(t, -3, v.DeltaD(), tol)

	require.NoError(t, v.SetNet(nil, Float(-1), Float(0.5)))
	assert.InDelta(t, 0.5, v.DeltaB(), tol)
	assert.InDelta(t, -1, v.DeltaS(), tol)
	assert.InDelta(t, 0.5, v.DeltaD(), tol)

	assert.ErrorIs(t, v.SetNet(Float(1), Float(2), Float(3)), ErrArgumentCount)
	assert.ErrorIs(t, v.SetNet(nil, nil, Float(3)), ErrArgumentCount)
}

func TestVectorLength(t *testing.T) {
	// Components along axes 60 degrees apart: length follows the law
	// of cosines, sqrt(a^2 + b^2 - a*b).
	v := NewVector(3, 0)
	assert.InDelta(t, 3, v.Length(), tol)

	v = NewVector(1, 1)
	assert.InDelta(t, 1, v.Length(), tol)

	v = NewVector(2, -2)
	assert.InDelta(t, math.Sqrt(12), v.Length(), tol)
}

func TestVectorLengthCacheInvalidation(t *testing.T) {
	v := NewVector(3, 0)
	require.InDelta(t, 3, v.Length(), tol)

	v.SetBComponent(6)
	assert.InDelta(t, 6, v.Length(), tol, "component write must invalidate the cache")

	v.SetDeltaD(1)
	recomputed := isoLength(v.BComponent(), v.SComponent())
	assert.InDelta(t, recomputed, v.Length(), tol, "delta write must invalidate the cache")
}

func TestSetLength(t *testing.T) {
	v := WithNetBS(3, -1)
	unitBefore, err := v.Unit()
	require.NoError(t, err)

	require.NoError(t, v.SetLength(7.5))
	assert.Equal(t, 7.5, v.Length(), "cache is primed with the requested value")

	unitAfter, err := v.Unit()
	require.NoError(t, err)
	assert.True(t, unitAfter.ApproxEqual(unitBefore, tol), "rescaling must not change direction")

	zero := NewVector(0, 0)
	assert.ErrorIs(t, zero.SetLength(5), ErrZeroLength)
}

func TestUnit(t *testing.T) {
	v := NewVector(4, -2)
	u, err := v.Unit()
	require.NoError(t, err)
	assert.InDelta(t, 1, u.Length(), tol)

	zero := NewVector(0, 0)
	_, err = zero.Unit()
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestVectorAlgebra(t *testing.T) {
	a := NewVector(1, 2)
	b := NewVector(-0.5, 4)

	sum := a.Add(b)
	assert.InDelta(t, 0.5, sum.BComponent(), tol)
	assert.InDelta(t, 6, sum.SComponent(), tol)

	diff := a.Sub(b)
	assert.InDelta(t, 1.5, diff.BComponent(), tol)
	assert.InDelta(t, -2, diff.SComponent(), tol)

	scaled := a.Scale(3)
	assert.InDelta(t, 3, scaled.BComponent(), tol)
	assert.InDelta(t, 6, scaled.SComponent(), tol)

	halved, err := a.Div(2)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, halved.BComponent(), tol)
	assert.InDelta(t, 1, halved.SComponent(), tol)

	_, err = a.Div(0)
	assert.ErrorIs(t, err, ErrZeroDivisor)

	// Net deltas are linear in the components.
	assert.InDelta(t, a.DeltaB()+b.DeltaB(), sum.DeltaB(), tol)
	assert.InDelta(t, 3*a.DeltaS(), scaled.DeltaS(), tol)
}

func TestVectorString(t *testing.T) {
	v := NewVector(2, 4)
	assert.Equal(t, "<0, 3, -3>", v.String())
}
