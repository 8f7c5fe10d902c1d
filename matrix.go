package qlate

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Unitary is a small dense complex matrix in row-major order. Two and four
// dimensional unitaries are all this package ever builds, so a flat slice
// is plenty.
type Unitary struct {
	Dim  int
	Data []complex128
}

// NewUnitary wraps row-major data of length dim*dim.
func NewUnitary(dim int, data []complex128) Unitary {
	if len(data) != dim*dim {
		panic(fmt.Sprintf("unitary of dim %d needs %d entries, got %d", dim, dim*dim, len(data)))
	}
	return Unitary{Dim: dim, Data: data}
}

// IdentityUnitary returns the dim x dim identity.
func IdentityUnitary(dim int) Unitary {
	data := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		data[i*dim+i] = 1
	}
	return Unitary{Dim: dim, Data: data}
}

// At returns the entry in row r, column c.
func (u Unitary) At(r, c int) complex128 {
	return u.Data[r*u.Dim+c]
}

// Mul returns the matrix product u * v.
func (u Unitary) Mul(v Unitary) Unitary {
	if u.Dim != v.Dim {
		panic(fmt.Sprintf("dimension mismatch: %d x %d", u.Dim, v.Dim))
	}
	out := make([]complex128, u.Dim*u.Dim)
	for r := 0; r < u.Dim; r++ {
		for c := 0; c < u.Dim; c++ {
			var sum complex128
			for k := 0; k < u.Dim; k++ {
				sum += u.At(r, k) * v.At(k, c)
			}
			out[r*u.Dim+c] = sum
		}
	}
	return Unitary{Dim: u.Dim, Data: out}
}

// Kron returns the Kronecker product u ⊗ v.
func (u Unitary) Kron(v Unitary) Unitary {
	dim := u.Dim * v.Dim
	out := make([]complex128, dim*dim)
	for ur := 0; ur < u.Dim; ur++ {
		for uc := 0; uc < u.Dim; uc++ {
			for vr := 0; vr < v.Dim; vr++ {
				for vc := 0; vc < v.Dim; vc++ {
					r := ur*v.Dim + vr
					c := uc*v.Dim + vc
					out[r*dim+c] = u.At(ur, uc) * v.At(vr, vc)
				}
			}
		}
	}
	return Unitary{Dim: dim, Data: out}
}

/*
EqualUpToGlobalPhase reports whether u and v describe the same physical
transformation, i.e. whether v == e^{iφ} u for some real φ, entrywise within
tol. A global phase is unobservable, so every equivalence check in this
package goes through here rather than through exact comparison.
*/
func (u Unitary) EqualUpToGlobalPhase(v Unitary, tol float64) bool {
	if u.Dim != v.Dim {
		return false
	}
	// Anchor the phase on the largest entry of u to keep the division
	// numerically stable.
	k, largest := 0, 0.0
	for i, e := range u.Data {
		if a := cmplx.Abs(e); a > largest {
			k, largest = i, a
		}
	}
	if largest < tol {
		return false
	}
	phase := v.Data[k] / u.Data[k]
	if math.Abs(cmplx.Abs(phase)-1) > tol {
		return false
	}
	for i := range u.Data {
		if cmplx.Abs(u.Data[i]*phase-v.Data[i]) > tol {
			return false
		}
	}
	return true
}

// GateUnitary returns the unitary matrix of a gate operation. Structural
// operations carry no unitary and yield a MalformedOperationError. An
// operation with a single control yields the 4x4 controlled form with the
// control on the high-order qubit.
func GateUnitary(op Operation) (Unitary, error) {
	if err := op.Validate(); err != nil {
		return Unitary{}, err
	}
	if op.Kind.IsStructural() {
		return Unitary{}, &MalformedOperationError{Kind: op.Kind, Reason: "structural operations have no unitary"}
	}
	base, err := kindUnitary(op.Kind, op.Params)
	if err != nil {
		return Unitary{}, err
	}
	if len(op.Controls) == 0 {
		return base, nil
	}
	return controlled(base), nil
}

func kindUnitary(kind GateKind, params []float64) (Unitary, error) {
	switch kind {
	case KindX:
		return NewUnitary(2, []complex128{0, 1, 1, 0}), nil
	case KindY:
		return NewUnitary(2, []complex128{0, -1i, 1i, 0}), nil
	case KindZ:
		return NewUnitary(2, []complex128{1, 0, 0, -1}), nil
	case KindH:
		h := complex(1/math.Sqrt2, 0)
		return NewUnitary(2, []complex128{h, h, h, -h}), nil
	case KindS:
		return NewUnitary(2, []complex128{1, 0, 0, 1i}), nil
	case KindRx:
		return rotationUnitary(params[0], 0), nil
	case KindRy:
		return rotationUnitary(params[0], 0.5), nil
	case KindRz:
		theta := params[0]
		return NewUnitary(2, []complex128{
			cmplx.Exp(complex(0, -theta/2)), 0,
			0, cmplx.Exp(complex(0, theta/2)),
		}), nil
	case KindXPow:
		return powUnitary(params[0], 0), nil
	case KindYPow:
		return powUnitary(params[0], 0.5), nil
	case KindZPow:
		t := params[0]
		return NewUnitary(2, []complex128{
			1, 0,
			0, cmplx.Exp(complex(0, math.Pi*t)),
		}), nil
	case KindExpW:
		return expWUnitary(params[0], params[1]), nil
	case KindExpZ:
		return expZUnitary(params[0]), nil
	case KindExp11:
		return exp11Unitary(params[0]), nil
	}
	return Unitary{}, &UnsupportedGateError{Kind: kind}
}

// rotationUnitary is exp(-i theta/2 W(axis)) where W(axis) is the Pauli
// operator cos(pi*axis) X + sin(pi*axis) Y.
func rotationUnitary(theta, axisHalfTurns float64) Unitary {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	w := cmplx.Exp(complex(0, -math.Pi*axisHalfTurns))
	return NewUnitary(2, []complex128{
		c, -1i * s * w,
		-1i * s * cmplx.Conj(w), c,
	})
}

// powUnitary is the power-gate convention for X^t and Y^t: the plain
// rotation by pi*t radians times the e^{i pi t / 2} phase the target model
// attaches to it.
func powUnitary(t, axisHalfTurns float64) Unitary {
	rot := rotationUnitary(math.Pi*t, axisHalfTurns)
	phase := cmplx.Exp(complex(0, math.Pi*t/2))
	out := make([]complex128, len(rot.Data))
	for i, e := range rot.Data {
		out[i] = phase * e
	}
	return Unitary{Dim: 2, Data: out}
}

// controlled lifts a 2x2 unitary to its 4x4 singly-controlled form, with
// the control on the high-order qubit.
func controlled(u Unitary) Unitary {
	out := IdentityUnitary(4)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out.Data[(r+2)*4+(c+2)] = u.At(r, c)
		}
	}
	return out
}
