package qlate

import (
	"fmt"
	"strings"
)

// QubitID is an opaque qubit handle. The source and target circuit models
// each have their own ID space; a QubitMap keeps the two from mixing.
type QubitID int

/*
GateKind enumerates every operation kind the shim understands. The set is
deliberately closed: dispatch happens through explicit tables keyed by kind,
and anything outside the enumeration is rejected at the boundary with an
UnsupportedGateError instead of travelling through an open type hierarchy.
*/
type GateKind int

const (
	// Structural instructions. These carry no unitary and are either
	// consumed by the translator (Allocate, Deallocate, Flush) or passed
	// through unchanged (Measure, Barrier).
	KindAllocate GateKind = iota
	KindDeallocate
	KindMeasure
	KindBarrier
	KindFlush

	// Source-model gates. Rotations carry their angle in radians.
	KindX
	KindY
	KindZ
	KindH
	KindS
	KindRx
	KindRy
	KindRz

	// Target-model power gates. The single parameter is the exponent in
	// half turns, so X^0.25 is KindXPow with Params[0] == 0.25.
	KindXPow
	KindYPow
	KindZPow

	// Native xmon gates. Parameters are half turns, canonicalized into
	// (-1, 1] by the constructors in xmon.go.
	KindExpW
	KindExpZ
	KindExp11
)

var kindNames = map[GateKind]string{
	KindAllocate:   "Allocate",
	KindDeallocate: "Deallocate",
	KindMeasure:    "Measure",
	KindBarrier:    "Barrier",
	KindFlush:      "Flush",
	KindX:          "X",
	KindY:          "Y",
	KindZ:          "Z",
	KindH:          "H",
	KindS:          "S",
	KindRx:         "Rx",
	KindRy:         "Ry",
	KindRz:         "Rz",
	KindXPow:       "X^t",
	KindYPow:       "Y^t",
	KindZPow:       "Z^t",
	KindExpW:       "W",
	KindExpZ:       "ExpZ",
	KindExp11:      "Exp11",
}

func (k GateKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("GateKind(%d)", int(k))
}

// IsStructural reports whether the kind is a classical/control instruction
// rather than a unitary gate.
func (k GateKind) IsStructural() bool {
	switch k {
	case KindAllocate, KindDeallocate, KindMeasure, KindBarrier, KindFlush:
		return true
	}
	return false
}

/*
Operation is one gate application or structural instruction: a kind tag,
the ordered target qubits, the ordered control qubits, and the real-valued
parameters the kind calls for. Operations are immutable values; every
transformation in this package builds new ones instead of mutating.
*/
type Operation struct {
	Kind     GateKind
	Targets  []QubitID
	Controls []QubitID
	Params   []float64
}

// arity describes the shape an operation of a given kind must have.
type arity struct {
	targets     int
	params      int
	anyTargets  bool // Barrier takes zero or more targets
	controlsOK  bool
	maxControls int // only meaningful when controlsOK
}

var kindArity = map[GateKind]arity{
	KindAllocate:   {targets: 1},
	KindDeallocate: {targets: 1},
	KindMeasure:    {targets: 1},
	KindBarrier:    {anyTargets: true},
	KindFlush:      {},
	KindX:          {targets: 1, controlsOK: true, maxControls: 1},
	KindY:          {targets: 1},
	KindZ:          {targets: 1},
	KindH:          {targets: 1},
	KindS:          {targets: 1},
	KindRx:         {targets: 1, params: 1},
	KindRy:         {targets: 1, params: 1},
	KindRz:         {targets: 1, params: 1},
	KindXPow:       {targets: 1, params: 1, controlsOK: true, maxControls: 1},
	KindYPow:       {targets: 1, params: 1},
	KindZPow:       {targets: 1, params: 1},
	KindExpW:       {targets: 1, params: 2},
	KindExpZ:       {targets: 1, params: 1},
	KindExp11:      {targets: 2, params: 1},
}

// Validate checks the operation's target, control and parameter shape
// against its kind. A shape mismatch is a MalformedOperationError; an
// unknown kind is an UnsupportedGateError.
func (op Operation) Validate() error {
	shape, ok := kindArity[op.Kind]
	if !ok {
		return &UnsupportedGateError{Kind: op.Kind}
	}
	if !shape.anyTargets && len(op.Targets) != shape.targets {
		return &MalformedOperationError{
			Kind:   op.Kind,
			Reason: fmt.Sprintf("expected %d target qubits, got %d", shape.targets, len(op.Targets)),
		}
	}
	if len(op.Params) != shape.params {
		return &MalformedOperationError{
			Kind:   op.Kind,
			Reason: fmt.Sprintf("expected %d parameters, got %d", shape.params, len(op.Params)),
		}
	}
	if len(op.Controls) > 0 {
		if !shape.controlsOK {
			return &MalformedOperationError{
				Kind:   op.Kind,
				Reason: "control qubits are not supported for this gate",
			}
		}
		if len(op.Controls) > shape.maxControls {
			return &MalformedOperationError{
				Kind:   op.Kind,
				Reason: fmt.Sprintf("at most %d control qubits supported, got %d", shape.maxControls, len(op.Controls)),
			}
		}
	}
	for _, c := range op.Controls {
		for _, t := range op.Targets {
			if c == t {
				return &MalformedOperationError{
					Kind:   op.Kind,
					Reason: fmt.Sprintf("qubit %d is both control and target", c),
				}
			}
		}
	}
	return nil
}

// Qubits returns every qubit the operation touches, controls first, in
// declaration order.
func (op Operation) Qubits() []QubitID {
	qs := make([]QubitID, 0, len(op.Controls)+len(op.Targets))
	qs = append(qs, op.Controls...)
	qs = append(qs, op.Targets...)
	return qs
}

// remapped returns a copy of the operation with every qubit handle resolved
// through the given map. Used by the translator to move an operation from
// the source ID space into the target ID space.
func (op Operation) remapped(m *QubitMap) (Operation, error) {
	out := Operation{Kind: op.Kind, Params: append([]float64(nil), op.Params...)}
	out.Targets = make([]QubitID, len(op.Targets))
	for i, q := range op.Targets {
		dst, err := m.Resolve(q)
		if err != nil {
			return Operation{}, err
		}
		out.Targets[i] = dst
	}
	if len(op.Controls) > 0 {
		out.Controls = make([]QubitID, len(op.Controls))
		for i, q := range op.Controls {
			dst, err := m.Resolve(q)
			if err != nil {
				return Operation{}, err
			}
			out.Controls[i] = dst
		}
	}
	return out, nil
}

func (op Operation) String() string {
	var b strings.Builder
	switch op.Kind {
	case KindExpW:
		fmt.Fprintf(&b, "W(%v, %v)", param(op, 0), param(op, 1))
	case KindExpZ:
		fmt.Fprintf(&b, "Z(%v)", param(op, 0))
	case KindExp11:
		fmt.Fprintf(&b, "@(%v)", param(op, 0))
	case KindXPow, KindYPow, KindZPow:
		fmt.Fprintf(&b, "%s=%v", op.Kind, param(op, 0))
	case KindRx, KindRy, KindRz:
		fmt.Fprintf(&b, "%s(%v)", op.Kind, param(op, 0))
	default:
		b.WriteString(op.Kind.String())
	}
	for _, q := range op.Controls {
		fmt.Fprintf(&b, " c%d", q)
	}
	for _, q := range op.Targets {
		fmt.Fprintf(&b, " q%d", q)
	}
	return b.String()
}

func param(op Operation, i int) float64 {
	if i < len(op.Params) {
		return op.Params[i]
	}
	return 0
}

// Structural instruction constructors.

func Allocate(q QubitID) Operation   { return Operation{Kind: KindAllocate, Targets: []QubitID{q}} }
func Deallocate(q QubitID) Operation { return Operation{Kind: KindDeallocate, Targets: []QubitID{q}} }
func Measure(q QubitID) Operation    { return Operation{Kind: KindMeasure, Targets: []QubitID{q}} }
func Flush() Operation               { return Operation{Kind: KindFlush} }

func Barrier(qs ...QubitID) Operation {
	return Operation{Kind: KindBarrier, Targets: append([]QubitID(nil), qs...)}
}

// Source-model gate constructors.

func X(q QubitID) Operation { return Operation{Kind: KindX, Targets: []QubitID{q}} }
func Y(q QubitID) Operation { return Operation{Kind: KindY, Targets: []QubitID{q}} }
func Z(q QubitID) Operation { return Operation{Kind: KindZ, Targets: []QubitID{q}} }
func H(q QubitID) Operation { return Operation{Kind: KindH, Targets: []QubitID{q}} }
func S(q QubitID) Operation { return Operation{Kind: KindS, Targets: []QubitID{q}} }

// Rx rotates around the X axis by theta radians.
func Rx(theta float64, q QubitID) Operation {
	return Operation{Kind: KindRx, Targets: []QubitID{q}, Params: []float64{theta}}
}

// Ry rotates around the Y axis by theta radians.
func Ry(theta float64, q QubitID) Operation {
	return Operation{Kind: KindRy, Targets: []QubitID{q}, Params: []float64{theta}}
}

// Rz rotates around the Z axis by theta radians.
func Rz(theta float64, q QubitID) Operation {
	return Operation{Kind: KindRz, Targets: []QubitID{q}, Params: []float64{theta}}
}

// CNOT is a controlled X: it stays an X gate with a single control qubit,
// matching how the source framework represents it.
func CNOT(control, target QubitID) Operation {
	return Operation{Kind: KindX, Targets: []QubitID{target}, Controls: []QubitID{control}}
}

// Target-model power gate constructors. The exponent is in half turns.

func XPow(exponent float64, q QubitID) Operation {
	return Operation{Kind: KindXPow, Targets: []QubitID{q}, Params: []float64{exponent}}
}

func YPow(exponent float64, q QubitID) Operation {
	return Operation{Kind: KindYPow, Targets: []QubitID{q}, Params: []float64{exponent}}
}

func ZPow(exponent float64, q QubitID) Operation {
	return Operation{Kind: KindZPow, Targets: []QubitID{q}, Params: []float64{exponent}}
}
