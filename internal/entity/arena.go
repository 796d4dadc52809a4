// Package entity implements the immutable entity & type model (component A):
// append-only handles into an arena, the closed Entity kind union, and the
// Type interface with its selected/accessed/sliced/array/base operations.
//
// The teacher's typesystem package solves a different problem — Hindley-Milner
// inference over a generic, user-extensible type language (TVar, Subst, Unify).
// VHDL's type system is nominal and has no unification step, so only the
// package's shape (a closed Type interface, one struct per kind) is kept from
// internal/typesystem/types.go; the substitution/unification machinery has no
// counterpart here.
package entity

import "fmt"

// Handle is a stable, opaque reference into an Arena. Handles remain valid for
// the lifetime of the analysis pass that created them (invariant I1).
type Handle uint32

// InvalidHandle is a sentinel no real arena entry ever receives (Add never
// grows an arena to uint32 max), used by resolved.Final{} error returns so
// a deliberately-empty Final is distinguishable from a genuine handle to
// arena entity 0.
const InvalidHandle Handle = ^Handle(0)

// Designator is an identifier, operator symbol, or character literal usable
// as a name (see GLOSSARY).
type Designator string

// Arena is an append-only store of entities. A pass owns exactly one Arena;
// handles returned by Add are stable and never reused.
type Arena struct {
	entities []Entity
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Add appends an entity and returns its stable handle.
func (a *Arena) Add(e Entity) Handle {
	a.entities = append(a.entities, e)
	return Handle(len(a.entities) - 1)
}

// Get dereferences a handle. It panics on an out-of-range handle, which would
// indicate a bug in the caller (handles are never fabricated, only returned
// by Add), not a recoverable analysis error.
func (a *Arena) Get(h Handle) Entity {
	return a.entities[h]
}

// Len reports how many entities have been added.
func (a *Arena) Len() int { return len(a.entities) }

func (h Handle) String() string { return fmt.Sprintf("#%d", uint32(h)) }
