package qlate

import "math"

/*
Translation rules: the cross-framework mapping from source-model gates to
target-model gates. These rewrites run on operations whose qubit handles
have already been moved into the target ID space, so a rule only has to
recast the gate itself.

The tables are built statically here; nothing registers itself as an import
side effect.
*/

// passthrough re-emits the operation unchanged. Used for gates both models
// share and as the identity rewrite for already-native gates.
func passthrough(op Operation) ([]Operation, error) {
	return []Operation{op}, nil
}

// radiansToPow recasts a radian-angle rotation into a half-turn power gate
// of the given kind. The global phase difference between the two
// conventions is dropped.
func radiansToPow(kind GateKind) Rewrite {
	return func(op Operation) ([]Operation, error) {
		return []Operation{{
			Kind:     kind,
			Targets:  append([]QubitID(nil), op.Targets...),
			Controls: append([]QubitID(nil), op.Controls...),
			Params:   []float64{op.Params[0] / math.Pi},
		}}, nil
	}
}

// CommonRules builds the generic source-to-target gate table: rotations
// become power gates, everything else the two models share passes through.
func CommonRules() *Registry {
	r := NewRegistry()
	r.Register(KindRx, radiansToPow(KindXPow))
	r.Register(KindRy, radiansToPow(KindYPow))
	r.Register(KindRz, radiansToPow(KindZPow))
	r.RegisterAll([]GateKind{KindX, KindY, KindZ, KindH, KindS}, passthrough)
	return r
}

// XmonTranslationRules builds the specialized table for source circuits
// that already speak xmon: the native gates cross the framework boundary
// unchanged.
func XmonTranslationRules() *Registry {
	r := NewRegistry()
	r.RegisterAll(NativeKinds(), passthrough)
	return r
}

// DefaultRules is the translation rule chain used when a Translator is not
// given one: the xmon table first, the common table as fallback.
func DefaultRules() *Chain {
	return NewChain(XmonTranslationRules(), CommonRules())
}
