package entity

// Parameter is one formal parameter of a Subprogram.
type Parameter struct {
	Name    Designator
	Subtype Type
}

// Subprogram is a function or procedure entity. Ret is nil for a procedure
// (§4.G: "if ent.return_type exists ... else error 'Procedure calls are not
// valid in names and expressions'").
type Subprogram struct {
	base
	Self   Handle
	Params []Parameter
	Ret    Type
}

// ReturnType implements the `OverloadedEnt.return_type()` external contract
// of §6. A zero Type (nil) means "no return type" (a procedure).
func (s *Subprogram) ReturnType() Type { return s.Ret }

// ID implements the `OverloadedEnt.id()` external contract of §6.
func (s *Subprogram) ID() Handle { return s.Self }

// IsProcedure reports whether s has no return type.
func (s *Subprogram) IsProcedure() bool { return s.Ret == nil }

// OverloadedSet is a bundle of subprogram entities that share a designator
// (GLOSSARY: "overloaded set"). It stores handles, never inline entities, so
// a protected type's method set can point back at its own containing type
// without a cycle in the value graph (§9 "Cyclic entity references").
type OverloadedSet struct {
	handles []Handle
}

// NewOverloadedSet builds a set from the given subprogram handles.
func NewOverloadedSet(handles ...Handle) OverloadedSet {
	return OverloadedSet{handles: append([]Handle(nil), handles...)}
}

// Entities implements the `OverloadedSet.entities()` external contract of §6.
func (s OverloadedSet) Entities() []Handle { return s.handles }

// Len reports the number of candidates in the set.
func (s OverloadedSet) Len() int { return len(s.handles) }

// NamedEntities is what scope.lookup, design.selected, and
// lookup_in_library all return: either a single entity or an overloaded
// bundle, never mixed (§3, §4.B: "never mixed").
type NamedEntities struct {
	single      Handle
	hasSingle   bool
	overload    OverloadedSet
	hasOverload bool
}

// Single wraps a single, non-overloaded entity handle.
func Single(h Handle) NamedEntities {
	return NamedEntities{single: h, hasSingle: true}
}

// Overloaded wraps a bundle of subprogram candidates.
func Overloaded(set OverloadedSet) NamedEntities {
	return NamedEntities{overload: set, hasOverload: true}
}

// AsSingle returns (handle, true) if ne wraps a single entity.
func (ne NamedEntities) AsSingle() (Handle, bool) {
	return ne.single, ne.hasSingle
}

// AsOverloaded returns (set, true) if ne wraps an overloaded bundle.
func (ne NamedEntities) AsOverloaded() (OverloadedSet, bool) {
	if !ne.hasOverload {
		return OverloadedSet{}, false
	}
	return ne.overload, true
}
