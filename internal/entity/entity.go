package entity

// Position is a source position, supplied by the external parser (§1); the
// resolver core only ever threads it through for diagnostics.
type Position struct {
	Line   int
	Column int
}

// Class is an object's class: Signal, Variable, Constant or SharedVariable.
type Class int

const (
	Signal Class = iota
	Variable
	Constant
	SharedVariable
)

func (c Class) String() string {
	switch c {
	case Signal:
		return "signal"
	case Variable:
		return "variable"
	case Constant:
		return "constant"
	case SharedVariable:
		return "shared variable"
	default:
		return "object"
	}
}

// Mode is an interface object's direction. A nil *Mode means "no mode" (e.g.
// DeferredConstant, ExternalAlias).
type Mode int

const (
	In Mode = iota
	Out
	InOut
	Buffer
	Linkage
)

func (m Mode) String() string {
	switch m {
	case In:
		return "in"
	case Out:
		return "out"
	case InOut:
		return "inout"
	case Buffer:
		return "buffer"
	case Linkage:
		return "linkage"
	default:
		return "?"
	}
}

// Entity is the discriminated-union contract shared by every arena member
// (§3). Handles, not entities, are what the rest of the core stores and
// compares.
type Entity interface {
	Designator() Designator
	Pos() Position
}

// base is embedded by every concrete entity kind to satisfy invariant I1:
// every entity has a designator and a declaration position.
type base struct {
	Name     Designator
	Position Position
}

func (b base) Designator() Designator { return b.Name }
func (b base) Pos() Position          { return b.Position }

// newBase constructs the common (designator, position) pair embedded by
// every entity kind.
func newBase(name Designator, pos Position) base {
	return base{Name: name, Position: pos}
}

// Object is a signal, variable, constant, or shared variable declaration.
type Object struct {
	base
	Class   Class
	Mode    *Mode // nil unless Class permits a mode (interface objects)
	Subtype Type
}

// ObjectAlias is an alias of an object; it inherits class and mode from its
// base object but may narrow the type via TypeMark.
type ObjectAlias struct {
	base
	BaseObject Handle
	TypeMark   Type
}

// ExternalAlias is an alias onto an externally-named object (VHDL-2019
// external names); mode is always undefined.
type ExternalAlias struct {
	base
	Class    Class
	TypeMark Type
}

// DeferredConstant is a constant declared in a package's visible part, whose
// value is supplied by the package body. Its class is always Constant and it
// never has a mode.
type DeferredConstant struct {
	base
	Subtype Type
}

// TypeDecl wraps a declared Type as an arena entity.
type TypeDecl struct {
	base
	T Type
}

// DesignKind enumerates the kinds of design unit.
type DesignKind int

const (
	DesignEntityUnit DesignKind = iota
	DesignArchitecture
	DesignPackage
	DesignPackageBody
	DesignConfiguration
	DesignContext
)

// Design is a design unit (entity, architecture, package, package body,
// configuration, or context). Members holds what `design.selected` (§6)
// would resolve for a selector designator; construction of this map is the
// job of the external entity/scope builder (§1), not the resolver core.
type Design struct {
	base
	Kind    DesignKind
	Members map[Designator]NamedEntities
}

// Selected implements the `design.selected(pos, suffix) -> NamedEntities`
// external interface of §6, as a concrete lookup against Members.
func (d *Design) Selected(suffix Designator) (NamedEntities, bool) {
	for name, ne := range d.Members {
		if equalFoldDesignator(name, suffix) {
			return ne, true
		}
	}
	return NamedEntities{}, false
}

// Library is the root of a per-library namespace.
type Library struct {
	base
	Units map[Designator]Handle
}

// LookupInLibrary implements the `lookup_in_library(lib_sym, pos, designator)
// -> DesignEntity` external interface of §6.
func LookupInLibrary(lib *Library, designator Designator) (Handle, bool) {
	for name, h := range lib.Units {
		if equalFoldDesignator(name, designator) {
			return h, true
		}
	}
	return 0, false
}

// File is a file object declaration.
type File struct {
	base
	Subtype Type
}

// InterfaceFile is a file-class interface object (subprogram parameter).
type InterfaceFile struct {
	base
	T Type
}

// Component is a component declaration.
type Component struct{ base }

// PhysicalLiteral is a named physical unit literal, e.g. `ns` of TIME.
type PhysicalLiteral struct {
	base
	T Type
}

// Attribute is an attribute declaration. Attribute suffix handling is
// deliberately unresolved by this core (§4.E rule 4, §9 open question); the
// entity kind exists so Final(h) classification has somewhere to point.
type Attribute struct {
	base
	T Type
}

// ElementDeclaration is a record field's own entity, pointed to by
// RecordField.Handle so a suffix application can attach a stable reference
// (property 4, §8).
type ElementDeclaration struct {
	base
	Subtype Type
}

// Label names a statement; it cannot be further selected from.
type Label struct{ base }

// LoopParameter is a `for ... in ...` loop's iteration variable. Its typed
// form is deliberately left unresolved ("cannot handle yet", §9 open
// question); it is classified as Final.
type LoopParameter struct{ base }

// NewObject, NewObjectAlias, ... construct entities with their common fields
// filled in; they exist so callers never embed `base` by hand.

func NewObject(name Designator, pos Position, class Class, mode *Mode, subtype Type) Object {
	return Object{base: newBase(name, pos), Class: class, Mode: mode, Subtype: subtype}
}

func NewObjectAlias(name Designator, pos Position, baseObj Handle, typeMark Type) ObjectAlias {
	return ObjectAlias{base: newBase(name, pos), BaseObject: baseObj, TypeMark: typeMark}
}

func NewExternalAlias(name Designator, pos Position, class Class, typeMark Type) ExternalAlias {
	return ExternalAlias{base: newBase(name, pos), Class: class, TypeMark: typeMark}
}

func NewDeferredConstant(name Designator, pos Position, subtype Type) DeferredConstant {
	return DeferredConstant{base: newBase(name, pos), Subtype: subtype}
}

func NewTypeDecl(name Designator, pos Position, t Type) TypeDecl {
	return TypeDecl{base: newBase(name, pos), T: t}
}

func NewDesign(name Designator, pos Position, kind DesignKind) *Design {
	return &Design{base: newBase(name, pos), Kind: kind, Members: map[Designator]NamedEntities{}}
}

func NewLibrary(name Designator, pos Position) *Library {
	return &Library{base: newBase(name, pos), Units: map[Designator]Handle{}}
}

func equalFoldDesignator(a, b Designator) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
