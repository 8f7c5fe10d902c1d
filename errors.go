package qlate

import (
	"errors"
	"fmt"
)

// ErrNotFlushed is returned by Translate when the source stream is not
// terminated by a Flush command. A circuit is only complete once the source
// has signalled end-of-stream, so accepting an unterminated stream would
// hand back a circuit the source may still be extending.
var ErrNotFlushed = errors.New("qlate: source stream not terminated by a flush")

/*
UnsupportedGateError signals that an operation's gate kind has no registered
rule. It is always surfaced to the caller and never recovered from locally:
silently dropping an operation would produce a circuit that is no longer
equivalent to its input.
*/
type UnsupportedGateError struct {
	Kind GateKind
}

func (e *UnsupportedGateError) Error() string {
	return fmt.Sprintf("no rule registered for gate %s", e.Kind)
}

// InvalidQubitReferenceError signals an operation referencing a qubit that
// was never allocated, or whose allocation has since been invalidated by a
// deallocation.
type InvalidQubitReferenceError struct {
	Qubit QubitID
}

func (e *InvalidQubitReferenceError) Error() string {
	return fmt.Sprintf("qubit %d is not allocated", e.Qubit)
}

// MalformedOperationError signals an operation whose target, control or
// parameter shape does not match what its gate kind requires.
type MalformedOperationError struct {
	Kind   GateKind
	Reason string
}

func (e *MalformedOperationError) Error() string {
	return fmt.Sprintf("malformed %s operation: %s", e.Kind, e.Reason)
}

// NotMergeableError signals an attempt to merge two operations that are not
// rotations of the same kind on the same qubit.
type NotMergeableError struct {
	A, B GateKind
}

func (e *NotMergeableError) Error() string {
	return fmt.Sprintf("cannot merge %s with %s", e.A, e.B)
}
