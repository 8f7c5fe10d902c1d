package qlate

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalHalfTurns(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{-1, 1},
		{1.5, -0.5},
		{-1.5, 0.5},
		{2, 0},
		{-0.5, -0.5},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, CanonicalHalfTurns(tc.in), 1e-12, "half turns %v", tc.in)
	}
}

func TestExpWCanonicalization(t *testing.T) {
	// Out-of-range half turns fold back into (-1, 1].
	assert.Equal(t, ExpW(-0.5, 0, 0), ExpW(1.5, 0, 0))

	// A negative axis folds into [0, 1) by flipping the rotation.
	flipped := ExpW(0.5, -0.5, 0)
	assert.InDelta(t, -0.5, flipped.Params[0], 1e-12)
	assert.InDelta(t, 0.5, flipped.Params[1], 1e-12)

	// Folding only ever changes the matrix by a global phase.
	assert.True(t, expWUnitary(0.5, -0.5).EqualUpToGlobalPhase(expWUnitary(-0.5, 0.5), phaseTolerance))
	assert.True(t, expZUnitary(1.5).EqualUpToGlobalPhase(expZUnitary(-0.5), phaseTolerance))
}

func TestExpZMatrix(t *testing.T) {
	for _, ht := range []float64{-1, -0.5, 0, 0.25, 0.3, 1} {
		u, err := GateUnitary(ExpZ(ht, 0))
		assert.NoError(t, err)

		angle := ht * math.Pi
		assert.InDelta(t, 0, cmplx.Abs(u.At(0, 0)-cmplx.Exp(complex(0, -angle/2))), 1e-12)
		assert.InDelta(t, 0, cmplx.Abs(u.At(1, 1)-cmplx.Exp(complex(0, angle/2))), 1e-12)
		assert.Equal(t, complex128(0), u.At(0, 1))
		assert.Equal(t, complex128(0), u.At(1, 0))
	}
}

func TestExpWMatrix(t *testing.T) {
	// Full turns around X and Y reproduce the Pauli matrices exactly, with
	// the convention's phase folded in.
	x, err := GateUnitary(ExpW(1, 0, 0))
	assert.NoError(t, err)
	wantX, _ := GateUnitary(X(0))
	for i := range x.Data {
		assert.InDelta(t, 0, cmplx.Abs(x.Data[i]-wantX.Data[i]), 1e-12)
	}

	y, err := GateUnitary(ExpW(1, 0.5, 0))
	assert.NoError(t, err)
	wantY, _ := GateUnitary(Y(0))
	for i := range y.Data {
		assert.InDelta(t, 0, cmplx.Abs(y.Data[i]-wantY.Data[i]), 1e-12)
	}
}

func TestExpWUnitarity(t *testing.T) {
	for _, ht := range []float64{-0.5, 0.25, 0.3, 1} {
		for _, axis := range []float64{0, 0.25, 0.5, 0.75} {
			u := expWUnitary(ht, axis)

			// U U^dagger must be the identity.
			id := IdentityUnitary(2)
			udag := NewUnitary(2, []complex128{
				cmplx.Conj(u.At(0, 0)), cmplx.Conj(u.At(1, 0)),
				cmplx.Conj(u.At(0, 1)), cmplx.Conj(u.At(1, 1)),
			})
			prod := u.Mul(udag)
			for i := range prod.Data {
				assert.InDelta(t, 0, cmplx.Abs(prod.Data[i]-id.Data[i]), 1e-12,
					"W(%v, %v) is not unitary", ht, axis)
			}
		}
	}
}

func TestExp11Matrix(t *testing.T) {
	u, err := GateUnitary(Exp11(1, 0, 1))
	assert.NoError(t, err)

	assert.Equal(t, 4, u.Dim)
	assert.Equal(t, complex128(1), u.At(0, 0))
	assert.Equal(t, complex128(1), u.At(1, 1))
	assert.Equal(t, complex128(1), u.At(2, 2))
	assert.InDelta(t, 0, cmplx.Abs(u.At(3, 3)-complex(-1, 0)), 1e-12)

	half, err := GateUnitary(Exp11(0.5, 0, 1))
	assert.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(half.At(3, 3)-cmplx.Exp(complex(0, math.Pi/2))), 1e-12)
}

func TestMergeRotations(t *testing.T) {
	merged, err := Merge(ExpZ(0.25, 0), ExpZ(0.5, 0))
	assert.NoError(t, err)
	assert.Equal(t, ExpZ(0.75, 0), merged)

	// Merging wraps back into canonical range.
	wrapped, err := Merge(ExpZ(0.75, 0), ExpZ(0.75, 0))
	assert.NoError(t, err)
	assert.InDelta(t, -0.5, wrapped.Params[0], 1e-12)

	entangler, err := Merge(Exp11(0.5, 0, 1), Exp11(0.25, 0, 1))
	assert.NoError(t, err)
	assert.Equal(t, Exp11(0.75, 0, 1), entangler)

	_, err = Merge(ExpZ(0.5, 0), ExpZ(0.5, 1))
	assert.Error(t, err, "different qubits must not merge")

	_, err = Merge(ExpZ(0.5, 0), ExpW(0.5, 0, 0))
	var notMergeable *NotMergeableError
	assert.ErrorAs(t, err, &notMergeable)
}

func TestIsNative(t *testing.T) {
	assert.True(t, IsNative(ExpW(0.5, 0, 0)))
	assert.True(t, IsNative(ExpZ(1, 0)))
	assert.True(t, IsNative(Exp11(1, 0, 1)))
	assert.True(t, IsNative(Measure(0)))
	assert.True(t, IsNative(Barrier()))

	assert.False(t, IsNative(H(0)))
	assert.False(t, IsNative(Rx(0.5, 0)))
	assert.False(t, IsNative(CNOT(0, 1)))
}

// A nearest-neighbor hopping step built from native gates only, the way
// hardware-facing callers compose the set. Exercises the moment view over
// a realistic native sequence.
func TestNativeHoppingStep(t *testing.T) {
	circ := NewCircuit()
	q0 := circ.AllocateQubit()
	q1 := circ.AllocateQubit()

	amplitude := 0.7 / math.Pi
	circ.Append(
		ExpW(0.5, 0, q0),
		ExpW(-0.5, 0.5, q1),
		ExpZ(1, q1),
		Exp11(1, q0, q1),
		ExpW(amplitude, 0, q0),
		ExpW(-amplitude, 0.5, q1),
		Exp11(1, q0, q1),
		ExpW(-0.5, 0, q0),
		ExpW(-0.5, 0.5, q1),
		ExpZ(1, q1),
	)

	for _, op := range circ.Operations() {
		assert.True(t, IsNative(op))
	}

	moments := circ.Moments(InsertEarliest)
	assert.Len(t, moments, 7)
	assert.Len(t, moments[0], 2) // the two leading W rotations overlap
}
