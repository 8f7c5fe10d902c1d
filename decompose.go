package qlate

import "math"

/*
Decomposition into the native xmon gate set. Each rule is a fixed algebraic
identity: the unitary of the emitted sequence equals the unitary of the
input gate up to a global phase. The identities are:

	Rx(t) = W(t/pi, 0)        X = W(1, 0)        X^t = W(t, 0)
	Ry(t) = W(t/pi, 1/2)      Y = W(1, 1/2)      Y^t = W(t, 1/2)
	Rz(t) = Z(t/pi)           Z = Z(1)           Z^t = Z(t)
	H     = W(-1/2, 1/2) then Z(1)

with W and Z the native ExpW and ExpZ rotations in half turns. The
controlled X expands into a fixed nine-operation template around a single
Exp11 interaction; only the two qubit identities vary per call site.
*/

func decomposeRotation(op Operation) ([]Operation, error) {
	q := op.Targets[0]
	halfTurns := op.Params[0] / math.Pi
	switch op.Kind {
	case KindRx:
		return []Operation{ExpW(halfTurns, 0, q)}, nil
	case KindRy:
		return []Operation{ExpW(halfTurns, 0.5, q)}, nil
	case KindRz:
		return []Operation{ExpZ(halfTurns, q)}, nil
	}
	return nil, &UnsupportedGateError{Kind: op.Kind}
}

func decomposePauli(op Operation) ([]Operation, error) {
	q := op.Targets[0]
	switch op.Kind {
	case KindX:
		if len(op.Controls) == 1 {
			return decomposeCNOT(op.Controls[0], q), nil
		}
		return []Operation{ExpW(1, 0, q)}, nil
	case KindY:
		return []Operation{ExpW(1, 0.5, q)}, nil
	case KindZ:
		return []Operation{ExpZ(1, q)}, nil
	}
	return nil, &UnsupportedGateError{Kind: op.Kind}
}

// decomposePow maps the power gates onto their native counterparts. The
// XPow/YPow conventions carry the same leading phase as ExpW, so those two
// identities are exact; ZPow matches ExpZ up to a global phase. A controlled
// XPow is only native for a full turn, where it is a controlled X.
func decomposePow(op Operation) ([]Operation, error) {
	q := op.Targets[0]
	switch op.Kind {
	case KindXPow:
		if len(op.Controls) == 1 {
			if op.Params[0] == 1 {
				return decomposeCNOT(op.Controls[0], q), nil
			}
			return nil, &UnsupportedGateError{Kind: op.Kind}
		}
		return []Operation{ExpW(op.Params[0], 0, q)}, nil
	case KindYPow:
		return []Operation{ExpW(op.Params[0], 0.5, q)}, nil
	case KindZPow:
		return []Operation{ExpZ(op.Params[0], q)}, nil
	}
	return nil, &UnsupportedGateError{Kind: op.Kind}
}

func decomposeH(op Operation) ([]Operation, error) {
	q := op.Targets[0]
	return []Operation{
		ExpW(-0.5, 0.5, q),
		ExpZ(1, q),
	}, nil
}

// decomposeCNOT expands a controlled X on (control, target) into the fixed
// nine-operation native template. The template is invariant; only the two
// qubit identities change.
func decomposeCNOT(control, target QubitID) []Operation {
	return []Operation{
		ExpW(0.5, 0.5, control),
		ExpZ(1, control),
		ExpW(0.5, 0.5, target),
		ExpZ(1, target),
		ExpW(0.5, 0.5, target),
		ExpZ(1, target),
		Exp11(1, control, target),
		ExpW(0.5, 0.5, target),
		ExpZ(1, target),
	}
}

// XmonRules builds the native-gate decomposition ruleset. Native gates map
// to themselves, so running the decomposer over an already-native circuit
// is a no-op. The ruleset is enumerable through Registry.Kinds for external
// filtering and replacement passes.
func XmonRules() *Registry {
	r := NewRegistry()
	r.RegisterAll([]GateKind{KindRx, KindRy, KindRz}, decomposeRotation)
	r.RegisterAll([]GateKind{KindX, KindY, KindZ}, decomposePauli)
	r.RegisterAll([]GateKind{KindXPow, KindYPow, KindZPow}, decomposePow)
	r.Register(KindH, decomposeH)
	r.RegisterAll(NativeKinds(), passthrough)
	return r
}

/*
Decompose rewrites every unitary gate in the circuit into the native gate
set defined by the ruleset, leaving structural instructions untouched.
Translation is all-or-nothing: any gate without a rule aborts the pass with
an UnsupportedGateError and no partial circuit is returned.
*/
func Decompose(c *Circuit, rules *Registry) (*Circuit, error) {
	out := c.cloneShell()
	for _, op := range c.Operations() {
		if op.Kind.IsStructural() {
			out.Append(op)
			continue
		}
		replacement, err := rules.Apply(op)
		if err != nil {
			return nil, err
		}
		out.Append(replacement...)
	}
	return out, nil
}
