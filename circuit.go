package qlate

// InsertStrategy controls how appended operations are packed into moments
// when the circuit is viewed as a timeline.
type InsertStrategy int

const (
	// InsertEarliest slides each operation into the earliest moment after
	// the last moment touching any of its qubits.
	InsertEarliest InsertStrategy = iota
	// InsertNewMoment gives every operation its own moment.
	InsertNewMoment
)

// Moment is a set of operations acting on disjoint qubits that execute in
// the same time slice.
type Moment []Operation

/*
Circuit is the target-model circuit: an appendable ordered sequence of
operations plus a qubit handle allocator. Appending never reorders: two
operations on disjoint qubit sets keep their relative append order in
Operations(). The moment view is computed on demand and only groups
operations, it never permutes them past one another on a shared qubit.
*/
type Circuit struct {
	ops       []Operation
	nextQubit QubitID
}

// NewCircuit returns an empty circuit.
func NewCircuit() *Circuit {
	return &Circuit{}
}

// AllocateQubit hands out the next fresh target qubit handle. Handles are
// never reused within a circuit, so a deallocated source qubit that is
// reallocated gets a distinct target identity.
func (c *Circuit) AllocateQubit() QubitID {
	q := c.nextQubit
	c.nextQubit++
	return q
}

// Append adds operations to the end of the circuit in the given order.
func (c *Circuit) Append(ops ...Operation) {
	c.ops = append(c.ops, ops...)
}

// Len returns the number of operations in the circuit.
func (c *Circuit) Len() int {
	return len(c.ops)
}

// Operations returns the operations in append order.
func (c *Circuit) Operations() []Operation {
	return append([]Operation(nil), c.ops...)
}

// Moments packs the circuit into time slices. A barrier closes the current
// moment for the qubits it names, or for the whole circuit when it names
// none.
func (c *Circuit) Moments(strategy InsertStrategy) []Moment {
	var moments []Moment
	frontier := make(map[QubitID]int)
	fence := 0

	for _, op := range c.ops {
		if op.Kind == KindBarrier {
			if len(op.Targets) == 0 {
				fence = len(moments)
			} else {
				for _, q := range op.Targets {
					frontier[q] = len(moments)
				}
			}
			continue
		}

		idx := fence
		for _, q := range op.Qubits() {
			if frontier[q] > idx {
				idx = frontier[q]
			}
		}
		if strategy == InsertNewMoment {
			idx = len(moments)
		}
		for len(moments) <= idx {
			moments = append(moments, Moment{})
		}
		moments[idx] = append(moments[idx], op)
		for _, q := range op.Qubits() {
			frontier[q] = idx + 1
		}
	}

	return moments
}

// cloneShell returns an empty circuit sharing this circuit's allocation
// state, so rewrites produce circuits whose fresh handles never collide
// with existing ones.
func (c *Circuit) cloneShell() *Circuit {
	return &Circuit{nextQubit: c.nextQubit}
}
