package qlate

// QubitMap owns the binding from source qubit handles to target qubit
// handles for one translation session. Bindings are injective: two live
// source qubits can never alias the same target qubit. Deallocation
// invalidates a binding rather than freeing it for reuse, because a source
// framework reusing an ID slot is a fresh qubit, not the old one.
type QubitMap struct {
	forward map[QubitID]QubitID
	inverse map[QubitID]QubitID
}

// NewQubitMap returns an empty map.
func NewQubitMap() *QubitMap {
	return &QubitMap{
		forward: make(map[QubitID]QubitID),
		inverse: make(map[QubitID]QubitID),
	}
}

// Bind records that source qubit src now lives at target qubit dst. Binding
// an already-bound source qubit or aliasing a bound target qubit is a
// MalformedOperationError.
func (m *QubitMap) Bind(src, dst QubitID) error {
	if _, ok := m.forward[src]; ok {
		return &MalformedOperationError{
			Kind:   KindAllocate,
			Reason: "source qubit is already allocated",
		}
	}
	if _, ok := m.inverse[dst]; ok {
		return &MalformedOperationError{
			Kind:   KindAllocate,
			Reason: "target qubit is already bound",
		}
	}
	m.forward[src] = dst
	m.inverse[dst] = src
	return nil
}

// Resolve returns the target handle bound to src, or an
// InvalidQubitReferenceError when src is unallocated or deallocated.
func (m *QubitMap) Resolve(src QubitID) (QubitID, error) {
	dst, ok := m.forward[src]
	if !ok {
		return 0, &InvalidQubitReferenceError{Qubit: src}
	}
	return dst, nil
}

// Invalidate drops the binding for src. Resolving src afterwards fails
// until a new Bind, which will map it to a fresh target handle.
func (m *QubitMap) Invalidate(src QubitID) error {
	dst, ok := m.forward[src]
	if !ok {
		return &InvalidQubitReferenceError{Qubit: src}
	}
	delete(m.forward, src)
	delete(m.inverse, dst)
	return nil
}

// Len returns the number of live bindings.
func (m *QubitMap) Len() int {
	return len(m.forward)
}

// Clone returns an independent copy of the map.
func (m *QubitMap) Clone() *QubitMap {
	out := NewQubitMap()
	for src, dst := range m.forward {
		out.forward[src] = dst
		out.inverse[dst] = src
	}
	return out
}
