package qlate

import "sort"

// Rewrite maps one operation to an ordered sequence of zero or more
// replacement operations. Rewrites must be pure: same input, same output,
// no shared state.
type Rewrite func(Operation) ([]Operation, error)

/*
Registry is a table from gate kind to rewrite rule. Registration is
last-write-wins, which callers use deliberately to let a specialized rule
set shadow a generic default. Registries are built once at setup and read
from then on, so a built registry is safe for concurrent use across
independent translations without locking.
*/
type Registry struct {
	rules map[GateKind]Rewrite
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[GateKind]Rewrite)}
}

// Register inserts or overwrites the rule for a kind.
func (r *Registry) Register(kind GateKind, rw Rewrite) {
	r.rules[kind] = rw
}

// RegisterAll registers one rewrite under several kinds.
func (r *Registry) RegisterAll(kinds []GateKind, rw Rewrite) {
	for _, k := range kinds {
		r.Register(k, rw)
	}
}

// Lookup returns the rule for a kind, if one is registered.
func (r *Registry) Lookup(kind GateKind) (Rewrite, bool) {
	rw, ok := r.rules[kind]
	return rw, ok
}

// Kinds returns every registered kind in ascending order, so the ruleset is
// enumerable by external filtering and compilation passes.
func (r *Registry) Kinds() []GateKind {
	kinds := make([]GateKind, 0, len(r.rules))
	for k := range r.rules {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Apply validates op, looks up its rule and runs it. A kind with no rule is
// an UnsupportedGateError, never a silent drop.
func (r *Registry) Apply(op Operation) ([]Operation, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	rw, ok := r.Lookup(op.Kind)
	if !ok {
		return nil, &UnsupportedGateError{Kind: op.Kind}
	}
	return rw(op)
}

/*
Chain composes registries with an explicit, deterministic override order:
lookups try each registry in turn and the first hit wins. The usual
composition is the specialized table first and the generic table as
fallback, replacing any reliance on registration-order side effects.
*/
type Chain struct {
	registries []*Registry
}

// NewChain builds a chain trying registries in the given order.
func NewChain(registries ...*Registry) *Chain {
	return &Chain{registries: registries}
}

// Lookup returns the first rule registered for the kind across the chain.
func (c *Chain) Lookup(kind GateKind) (Rewrite, bool) {
	for _, r := range c.registries {
		if rw, ok := r.Lookup(kind); ok {
			return rw, true
		}
	}
	return nil, false
}

// Apply validates op and runs the first matching rule in the chain.
func (c *Chain) Apply(op Operation) ([]Operation, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	rw, ok := c.Lookup(op.Kind)
	if !ok {
		return nil, &UnsupportedGateError{Kind: op.Kind}
	}
	return rw(op)
}
