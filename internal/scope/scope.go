// Package scope implements scope lookup (component B): an outer-chained
// symbol table mapping case-folded designators to entity.NamedEntities,
// grounded on the teacher's internal/symbols/symbol_table_core.go and
// symbol_table_init.go outer-linking.
package scope

import "github.com/vhdllang/vhdlresolve/internal/entity"

// foldFunc case-folds a designator for lookup; supplied by the caller so the
// same Scope tree can honor config.Options.CaseSensitive without this
// package importing config (avoiding an import cycle, since config has no
// reason to know about scope).
type foldFunc func(entity.Designator) string

// Scope is one level of an outer-chained symbol table. The root scope (no
// outer) is built once by internal/corpus and never mutated thereafter by
// name resolution itself — only by whatever builds the entity arena (§1,
// out of this core's scope).
type Scope struct {
	outer   *Scope
	fold    foldFunc
	entries map[string]entity.NamedEntities
}

// New returns an empty scope with no outer link, folding designators with
// fold (pass a no-op identity function for case-sensitive dialects).
func New(fold func(entity.Designator) string) *Scope {
	return &Scope{fold: fold, entries: map[string]entity.NamedEntities{}}
}

// Nested returns a new scope chained to s as its outer, inheriting s's fold
// function.
func (s *Scope) Nested() *Scope {
	return s.NestedWithFold(s.fold)
}

// NestedWithFold returns a new scope chained to s as its outer, folding its
// own entries with fold instead of inheriting s's — the seam
// config.Options.CaseSensitive uses to change lookup behavior for one
// pass's own declarations without having to rebuild the (always
// case-insensitive, per VHDL's basic-identifier rule) prelude scope beneath
// it (internal/corpus.RootScope).
func (s *Scope) NestedWithFold(fold foldFunc) *Scope {
	return &Scope{outer: s, fold: fold, entries: map[string]entity.NamedEntities{}}
}

// Define binds d to ne in s's own entries, shadowing any outer binding of
// the same designator. Re-defining an already-overloaded designator with
// another overloaded set is the caller's responsibility to merge; Define
// always replaces (matching the teacher's symbol_table_core.go: later
// declarations shadow, they don't silently merge).
func (s *Scope) Define(d entity.Designator, ne entity.NamedEntities) {
	s.entries[s.fold(d)] = ne
}

// Lookup searches s and, failing that, each outer scope in turn, returning
// the first binding found. pos is threaded through for callers that want to
// report a use-before-declaration diagnostic; this core's Lookup itself does
// not enforce declaration order (§4.B: "never mixed" on Single vs.
// Overloaded is the only contract it owns).
func (s *Scope) Lookup(pos entity.Position, d entity.Designator) (entity.NamedEntities, bool) {
	// Each level folds d with its own fold function, not the receiver's:
	// NestedWithFold lets one pass's declarations use a different case
	// convention than the (always case-insensitive) prelude chained beneath
	// them.
	for sc := s; sc != nil; sc = sc.outer {
		if ne, ok := sc.entries[sc.fold(d)]; ok {
			return ne, true
		}
	}
	return entity.NamedEntities{}, false
}

// DefineOverloadAdd appends h to whatever overloaded set is already bound to
// d in s's own entries (creating a fresh one if d is unbound locally), the
// way repeated subprogram declarations with the same designator accumulate
// into one overloaded set rather than shadowing each other.
func (s *Scope) DefineOverloadAdd(d entity.Designator, h entity.Handle) {
	key := s.fold(d)
	existing, ok := s.entries[key]
	if !ok {
		s.entries[key] = entity.Overloaded(entity.NewOverloadedSet(h))
		return
	}
	set, isOverload := existing.AsOverloaded()
	if !isOverload {
		// A non-overloadable entity already claims this designator locally;
		// leave it as-is. VHDL forbids overloading a non-subprogram
		// designator, so this is a caller bug, not a resolver concern.
		return
	}
	s.entries[key] = entity.Overloaded(entity.NewOverloadedSet(append(set.Entities(), h)...))
}
