// Package resolved implements the resolved-name lattice (component D): the
// closed ResolvedName union Library < Design < {Type, Overloaded,
// ObjectName, Expression} < Final, with the monotone suffix-application
// ordering of §4.D/§9 (a suffix only ever moves a name down the lattice,
// never back up — except that selecting a protected-type method from an
// object or expression yields Overloaded).
package resolved

import (
	"github.com/vhdllang/vhdlresolve/internal/config"
	"github.com/vhdllang/vhdlresolve/internal/entity"
)

// Name is the closed union of classification outcomes a (sub)name can carry
// at any point during resolution.
type Name interface {
	// Level reports this name's position in the lattice, lowest first, so
	// callers can assert monotonicity across a chain of suffix applications
	// (property "monotone lattice order", §8).
	Level() int
	Describe() string
	isResolvedName()
}

const (
	LevelLibrary = iota
	LevelDesign
	LevelType
	LevelOverloaded
	LevelObjectName
	LevelExpression
	LevelFinal
)

// Library names a library itself, e.g. the `work` prefix of `work.pkg`.
type Library struct {
	Handle entity.Handle
}

func (Library) Level() int { return LevelLibrary }

func (n Library) Describe() string {
	// Mirrors the teacher's config.IsTestMode/config.IsLSPMode package-state
	// threading: under the resolver's own test suite, arena-handle-derived
	// text is normalized so golden diagnostic messages stay stable across
	// arena layout changes.
	if config.IsTestMode {
		return "library <handle>"
	}
	return "library " + n.Handle.String()
}

func (Library) isResolvedName() {}

// Design names a design unit, e.g. `work.pkg` before any further selection.
type Design struct {
	Handle entity.Handle
}

func (Design) Level() int         { return LevelDesign }
func (n Design) Describe() string { return "design unit " + string(n.Handle.String()) }
func (Design) isResolvedName()    {}

// Type names a type or subtype mark.
type Type struct {
	T entity.Type
}

func (Type) Level() int         { return LevelType }
func (n Type) Describe() string { return "type " + n.T.String() }
func (Type) isResolvedName()    {}

// Overloaded names an as-yet-undisambiguated overloaded designator (a
// subprogram call before the disambiguator has run, or a protected-type
// method selection, whose whole method set is carried here).
type Overloaded struct {
	Set entity.OverloadedSet
}

func (Overloaded) Level() int         { return LevelOverloaded }
func (n Overloaded) Describe() string { return "overloaded name" }
func (Overloaded) isResolvedName()    {}

// ObjectName names an object (possibly after suffix narrowing): a signal,
// variable, constant, or alias thereof, together with its effective type.
// File objects classify as Final, not ObjectName.
type ObjectName struct {
	Object entity.ObjectName
}

func (ObjectName) Level() int         { return LevelObjectName }
func (n ObjectName) Describe() string { return "object name" }
func (ObjectName) isResolvedName()    {}

// DisambiguatedType reports whether an expression-level resolution was able
// to settle on exactly one static type.
type DisambiguatedType int

const (
	Unambiguous DisambiguatedType = iota
	Ambiguous
)

// Expression names a value-producing name whose static type has been
// determined, fully (Unambiguous) or only down to a candidate set
// (Ambiguous) — §4.F's two-phase disambiguator's final state.
type Expression struct {
	Status DisambiguatedType
	Type    entity.Type   // valid when Status == Unambiguous
	Types   []entity.Type // valid when Status == Ambiguous, one per surviving candidate
}

func (Expression) Level() int { return LevelExpression }

func (n Expression) Describe() string {
	if n.Status == Unambiguous {
		return "expression of type " + n.Type.String()
	}
	return "ambiguous expression"
}
func (Expression) isResolvedName() {}

// Final names an entity that cannot itself be further selected, sliced,
// indexed, or called: labels, loop parameters, attributes (suffix
// unresolved by design, §9 open question), and any entity kind without a
// type or member namespace.
type Final struct {
	Handle entity.Handle
}

func (Final) Level() int { return LevelFinal }

func (n Final) Describe() string {
	if config.IsTestMode {
		return "name <handle>"
	}
	return "name " + n.Handle.String()
}

func (Final) isResolvedName() {}

// DescribeType returns the user-facing type description of n where one
// exists (Type, ObjectName, unambiguous Expression), and "" otherwise — the
// external diagnostics-formatting contract of §6.
func DescribeType(n Name, a *entity.Arena) string {
	switch v := n.(type) {
	case Type:
		return v.T.String()
	case ObjectName:
		return v.Object.EffectiveType(a).String()
	case Expression:
		if v.Status == Unambiguous {
			return v.Type.String()
		}
	}
	return ""
}

// Classify turns a single resolved entity handle into the Name it denotes —
// the "classify_from_scope"/"classify_from_design" step of §4.G, factored
// out here (rather than in the resolver package that drives it) so both the
// resolver and the suffix applier can classify a NamedEntities.AsSingle()
// result without an import cycle between them.
func Classify(h entity.Handle, a *entity.Arena) Name {
	switch v := a.Get(h).(type) {
	case *entity.Library:
		return Library{Handle: h}
	case *entity.Design:
		return Design{Handle: h}
	case entity.TypeDecl:
		return Type{T: v.T}
	case entity.Object:
		return ObjectName{Object: entity.ObjectName{Base: entity.ObjectBaseForObject(h)}}
	case entity.ObjectAlias:
		return ObjectName{Object: entity.ObjectName{
			Base:     entity.ObjectBaseForAlias(v.BaseObject, h),
			TypeMark: v.TypeMark,
		}}
	case entity.ExternalAlias:
		return ObjectName{Object: entity.ObjectName{
			Base:     entity.ObjectBaseForExternalName(v.Class),
			TypeMark: v.TypeMark,
		}}
	case entity.DeferredConstant:
		return ObjectName{Object: entity.ObjectName{
			Base:     entity.ObjectBaseForDeferredConstant(h),
			TypeMark: v.Subtype,
		}}
	case entity.File, entity.InterfaceFile, entity.Component, entity.PhysicalLiteral,
		entity.Label, entity.LoopParameter, entity.ElementDeclaration, entity.Attribute:
		// §4.G classify_from_scope/classify_from_design: File, InterfaceFile,
		// Component, Label, LoopParameter, PhysicalLiteral all terminate the
		// lattice as Final(h); ElementDeclaration and Attribute are "valid
		// from neither" scope nor design lookup and fall back to Final too.
		return Final{Handle: h}
	case *entity.Subprogram:
		return Overloaded{Set: entity.NewOverloadedSet(v.ID())}
	default:
		return Final{Handle: h}
	}
}

// ClassifyMany turns a NamedEntities result into a Name, dispatching to
// Classify for a single entity or wrapping the whole bundle as Overloaded.
// This is classify_from_scope (§4.G): the caller is a scope.Lookup result,
// where a Library or Design entity is a legitimate answer.
func ClassifyMany(ne entity.NamedEntities, a *entity.Arena) Name {
	if h, ok := ne.AsSingle(); ok {
		return Classify(h, a)
	}
	if set, ok := ne.AsOverloaded(); ok {
		return Overloaded{Set: set}
	}
	return Final{Handle: entity.InvalidHandle}
}

// ClassifyFromDesign is Classify's counterpart for a design unit's member
// namespace (design.selected, §4.G). classify_from_scope and
// classify_from_design differ in exactly two entries: Attribute and
// ElementDeclaration are valid from neither, but Library and Design are
// valid only from scope — a design unit's own members can never themselves
// be a library or another design unit, so those collapse to Final instead
// of reproducing Classify's scope-lookup behavior (testable property 1).
func ClassifyFromDesign(h entity.Handle, a *entity.Arena) Name {
	switch a.Get(h).(type) {
	case *entity.Library, *entity.Design:
		return Final{Handle: entity.InvalidHandle}
	default:
		return Classify(h, a)
	}
}

// ClassifyManyFromDesign is ClassifyMany's counterpart for design-unit
// member selection; see ClassifyFromDesign.
func ClassifyManyFromDesign(ne entity.NamedEntities, a *entity.Arena) Name {
	if h, ok := ne.AsSingle(); ok {
		return ClassifyFromDesign(h, a)
	}
	if set, ok := ne.AsOverloaded(); ok {
		return Overloaded{Set: set}
	}
	return Final{Handle: entity.InvalidHandle}
}
