package qlate

import (
	"math"
	"math/cmplx"
)

/*
The xmon gate set is the native hardware vocabulary everything decomposes
into. Three families:

  - ExpW: a rotation around an axis in the XY plane of the Bloch sphere,
    a "phased X". Parameters are the rotation and the axis, in half turns.
  - ExpZ: a rotation around the Z axis, half turns.
  - Exp11: a two-qubit interaction phasing the |11> amplitude, half turns.

Half turns are canonicalized into (-1, 1] on construction. For ExpW a
negative axis is additionally folded into [0, 1) by negating the rotation,
so W(t, a) and W(-t, a+1) construct the same operation.
*/

// CanonicalHalfTurns maps a half-turn count into the range (-1, 1].
func CanonicalHalfTurns(ht float64) float64 {
	ht = math.Mod(ht+1, 2)
	if ht < 0 {
		ht += 2
	}
	ht--
	if ht == -1 {
		return 1
	}
	return ht
}

// ExpW builds the native phased-X rotation on q.
func ExpW(halfTurns, axisHalfTurns float64, q QubitID) Operation {
	ht := CanonicalHalfTurns(halfTurns)
	axis := CanonicalHalfTurns(axisHalfTurns)
	if axis < 0 || axis >= 1 {
		// Canonicalize to a non-negative axis by flipping the rotation
		// direction. Changes the matrix by a global phase only.
		ht = CanonicalHalfTurns(-ht)
		axis = CanonicalHalfTurns(axis + 1)
	}
	return Operation{Kind: KindExpW, Targets: []QubitID{q}, Params: []float64{ht, axis}}
}

// ExpZ builds the native Z rotation on q.
func ExpZ(halfTurns float64, q QubitID) Operation {
	return Operation{
		Kind:    KindExpZ,
		Targets: []QubitID{q},
		Params:  []float64{CanonicalHalfTurns(halfTurns)},
	}
}

// Exp11 builds the native two-qubit entangling gate on (a, b).
func Exp11(halfTurns float64, a, b QubitID) Operation {
	return Operation{
		Kind:    KindExp11,
		Targets: []QubitID{a, b},
		Params:  []float64{CanonicalHalfTurns(halfTurns)},
	}
}

// expWUnitary is, with phi half turns and theta axis half turns,
//
//	e^{i pi phi / 2} [[c, -i s e^{-i pi theta}], [-i s e^{i pi theta}, c]]
//
// where c = cos(pi phi / 2) and s = sin(pi phi / 2).
func expWUnitary(halfTurns, axisHalfTurns float64) Unitary {
	angle := halfTurns * math.Pi
	c := complex(math.Cos(angle/2), 0)
	s := complex(math.Sin(angle/2), 0)
	w := cmplx.Exp(complex(0, -axisHalfTurns*math.Pi))
	phase := cmplx.Exp(complex(0, angle/2))
	return NewUnitary(2, []complex128{
		phase * c, phase * -1i * s * w,
		phase * -1i * s * cmplx.Conj(w), phase * c,
	})
}

// expZUnitary is diag(e^{-i pi phi / 2}, e^{i pi phi / 2}).
func expZUnitary(halfTurns float64) Unitary {
	angle := halfTurns * math.Pi
	return NewUnitary(2, []complex128{
		cmplx.Exp(complex(0, -angle/2)), 0,
		0, cmplx.Exp(complex(0, angle/2)),
	})
}

// exp11Unitary is diag(1, 1, 1, e^{i pi phi}). Note there is no minus sign
// in the exponent.
func exp11Unitary(halfTurns float64) Unitary {
	angle := halfTurns * math.Pi
	u := IdentityUnitary(4)
	u.Data[15] = cmplx.Exp(complex(0, angle))
	return u
}

// NativeKinds returns the gate kinds executable on xmon hardware.
func NativeKinds() []GateKind {
	return []GateKind{KindExpW, KindExpZ, KindExp11}
}

// IsNative reports whether the operation can run on xmon hardware as-is.
// Structural instructions count as native: the hardware restriction applies
// to unitary gates only. Usable directly as an allow-list filter over a
// compiled circuit.
func IsNative(op Operation) bool {
	if op.Kind.IsStructural() {
		return true
	}
	if len(op.Controls) > 0 {
		return false
	}
	switch op.Kind {
	case KindExpW, KindExpZ, KindExp11:
		return true
	}
	return false
}

// Merge combines two adjacent rotations of the same kind on the same qubit
// into one by adding their half turns. Only ExpZ and Exp11 merge; anything
// else is a NotMergeableError.
func Merge(a, b Operation) (Operation, error) {
	if a.Kind != b.Kind {
		return Operation{}, &NotMergeableError{A: a.Kind, B: b.Kind}
	}
	switch a.Kind {
	case KindExpZ:
		if a.Targets[0] != b.Targets[0] {
			return Operation{}, &NotMergeableError{A: a.Kind, B: b.Kind}
		}
		return ExpZ(a.Params[0]+b.Params[0], a.Targets[0]), nil
	case KindExp11:
		if a.Targets[0] != b.Targets[0] || a.Targets[1] != b.Targets[1] {
			return Operation{}, &NotMergeableError{A: a.Kind, B: b.Kind}
		}
		return Exp11(a.Params[0]+b.Params[0], a.Targets[0], a.Targets[1]), nil
	}
	return Operation{}, &NotMergeableError{A: a.Kind, B: b.Kind}
}
