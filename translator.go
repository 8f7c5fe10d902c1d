package qlate

import (
	"github.com/theapemachine/errnie"
)

/*
Translator consumes source-model commands one at a time, in emission order,
and appends equivalent target-model operations to a growing Circuit. It
owns the qubit identity mapping between the two models for the lifetime of
the session.

Commands buffer until the source emits a Flush, mirroring how the source
engine hands over work: structural commands manage the qubit map, quantum
gates go through the rule chain, and the flush commits the translated batch
to the circuit. A translator is single-threaded; concurrent translations
each get their own Translator and may share rule chains freely, since built
registries are read-only.
*/
type Translator struct {
	config  *Config
	circuit *Circuit
	mapping *QubitMap
	pending []Operation
	flushed bool
	failed  error
}

// NewTranslator starts a fresh translation session.
func NewTranslator(opts ...TranslatorOption) *Translator {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Translator{
		config:  cfg,
		circuit: NewCircuit(),
		mapping: NewQubitMap(),
		flushed: true,
	}
}

/*
Translate runs a complete, flush-terminated source command sequence through
a fresh session and returns the target circuit. Translation is
all-or-nothing: any error discards the partially built circuit. A sequence
not terminated by a flush is rejected with ErrNotFlushed.
*/
func Translate(src []Operation, opts ...TranslatorOption) (*Circuit, error) {
	t := NewTranslator(opts...)
	errnie.Info("Translate - %d source commands", len(src))
	if err := t.Receive(src...); err != nil {
		return nil, err
	}
	if !t.flushed {
		return nil, ErrNotFlushed
	}
	return t.circuit, nil
}

// Receive accepts the next commands from the source stream. A failed
// session stays failed: the error is returned again on every later call so
// a partial circuit can never be mistaken for a complete one.
func (t *Translator) Receive(cmds ...Operation) error {
	if t.failed != nil {
		return t.failed
	}
	for _, cmd := range cmds {
		if cmd.Kind == KindFlush {
			t.flush()
			continue
		}
		t.flushed = false
		if err := t.store(cmd); err != nil {
			t.failed = err
			return err
		}
	}
	return nil
}

// store translates a single non-flush command into the pending batch.
func (t *Translator) store(cmd Operation) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	switch cmd.Kind {
	case KindAllocate:
		// First sighting of a source qubit: bind it to a fresh target
		// handle. The handle stays stable until deallocation.
		return t.mapping.Bind(cmd.Targets[0], t.circuit.AllocateQubit())
	case KindDeallocate:
		return t.mapping.Invalidate(cmd.Targets[0])
	case KindBarrier:
		mapped, err := cmd.remapped(t.mapping)
		if err != nil {
			return err
		}
		t.pending = append(t.pending, mapped)
		return nil
	case KindMeasure:
		mapped, err := cmd.remapped(t.mapping)
		if err != nil {
			return err
		}
		t.pending = append(t.pending, mapped)
		return nil
	}

	mapped, err := cmd.remapped(t.mapping)
	if err != nil {
		return err
	}
	out, err := t.config.Rules.Apply(mapped)
	if err != nil {
		return err
	}
	t.pending = append(t.pending, out...)
	return nil
}

// flush commits the pending batch to the circuit and marks the stream
// terminated.
func (t *Translator) flush() {
	if len(t.pending) > 0 {
		errnie.Info("flush - committing %d operations", len(t.pending))
		t.circuit.Append(t.pending...)
		t.pending = nil
	}
	t.flushed = true
}

// Circuit returns the target circuit built so far.
func (t *Translator) Circuit() *Circuit {
	return t.circuit
}

// Moments returns the circuit's moment structure under the configured
// insert strategy.
func (t *Translator) Moments() []Moment {
	return t.circuit.Moments(t.config.Strategy)
}

// Mapping returns a copy of the current source-to-target qubit bindings.
func (t *Translator) Mapping() *QubitMap {
	return t.mapping.Clone()
}

// IsAvailable reports whether the session can handle the command: every
// structural instruction, plus any gate kind with a registered rule.
func (t *Translator) IsAvailable(cmd Operation) bool {
	if cmd.Kind.IsStructural() {
		return true
	}
	_, ok := t.config.Rules.Lookup(cmd.Kind)
	return ok
}

// Reset starts a new circuit in the same session. With keepMap the qubit
// bindings survive, so the source can keep addressing the same qubits, and
// the handle allocator carries over so fresh handles never collide with
// bound ones.
func (t *Translator) Reset(keepMap bool) {
	if keepMap {
		t.circuit = t.circuit.cloneShell()
	} else {
		t.circuit = NewCircuit()
		t.mapping = NewQubitMap()
	}
	t.pending = nil
	t.flushed = true
	t.failed = nil
}
