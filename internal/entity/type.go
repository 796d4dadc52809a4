package entity

import (
	"fmt"
	"strings"
)

// Type is the public contract of §4.A. Only BaseType is a method — every
// other operation (Selected, AccessedType, SlicedAs, ArrayType) is a free
// function dispatching on a type switch over t.BaseType(), per §9's "prefer a
// tagged union with exhaustive matching... avoid polymorphism by
// inheritance". The set of concrete kinds is closed and small enough that a
// dispatch table per operation is clearer than virtual methods on ten kinds.
type Type interface {
	String() string
	// BaseType strips subtype layers. Idempotent: t.BaseType().BaseType()
	// always equals t.BaseType() (property 3, §8).
	BaseType() Type
}

// Subtype wraps a base type with a (possibly constrained) name of its own,
// e.g. `subtype sub_t is integer range 0 to 3`. Constraint checking is out of
// scope for name resolution (§1); only the identity/base-type relationship
// matters here.
type Subtype struct {
	Name   string
	Parent Type
}

func (s Subtype) String() string  { return s.Name }
func (s Subtype) BaseType() Type  { return s.Parent.BaseType() }

// Enum is an enumeration type, e.g. `type color_t is (red, green, blue)`.
type Enum struct {
	Name     string
	Literals []Designator
}

func (e Enum) String() string { return e.Name }
func (e Enum) BaseType() Type { return e }

// HasLiteral reports whether lit is one of e's enumeration literals.
func (e Enum) HasLiteral(lit Designator) bool {
	for _, l := range e.Literals {
		if strings.EqualFold(string(l), string(lit)) {
			return true
		}
	}
	return false
}

// Integer is a scalar integer type, e.g. predefined INTEGER or NATURAL.
type Integer struct{ Name string }

func (t Integer) String() string { return t.Name }
func (t Integer) BaseType() Type { return t }

// Real is a scalar floating-point type, e.g. predefined REAL.
type Real struct{ Name string }

func (t Real) String() string { return t.Name }
func (t Real) BaseType() Type { return t }

// Physical is a physical (dimensioned) type, e.g. predefined TIME.
type Physical struct {
	Name     string
	BaseUnit string
}

func (t Physical) String() string { return t.Name }
func (t Physical) BaseType() Type { return t }

// Array is an array type. Indexes holds one entry per dimension (its
// rank is len(Indexes)); Elem is the element type.
type Array struct {
	Name    string
	Indexes []Type
	Elem    Type
}

func (t Array) String() string { return t.Name }
func (t Array) BaseType() Type { return t }

// RecordField is one field of a Record type, paired with the stable handle
// of its ElementDeclaration entity so suffix application can attach it to
// the AST reference slot (property 4, §8).
type RecordField struct {
	Name   Designator
	Type   Type
	Handle Handle
}

// Record is a record (struct) type.
type Record struct {
	Name   string
	Fields []RecordField
}

func (t Record) String() string { return t.Name }
func (t Record) BaseType() Type { return t }

func (t Record) field(name Designator) (RecordField, bool) {
	for _, f := range t.Fields {
		if strings.EqualFold(string(f.Name), string(name)) {
			return f, true
		}
	}
	return RecordField{}, false
}

// Access is a pointer-like type whose .all dereference yields Pointee.
type Access struct {
	Name    string
	Pointee Type
}

func (t Access) String() string { return t.Name }
func (t Access) BaseType() Type { return t }

// FileType is a file type, e.g. `type text_file is file of string`. (The
// file object entity kind is File, in entity.go.)
type FileType struct {
	Name string
	Of   Type
}

func (t FileType) String() string { return t.Name }
func (t FileType) BaseType() Type { return t }

// Protected is a protected type: state bundled with a set of methods.
// Selecting a protected-typed prefix yields the method overload set.
type Protected struct {
	Name    string
	Methods OverloadedSet
}

func (t Protected) String() string { return t.Name }
func (t Protected) BaseType() Type { return t }

// Incomplete is a forward-declared (not yet fully defined) type, e.g. the
// designator of an access type's pointee before its full declaration.
type Incomplete struct{ Name string }

func (t Incomplete) String() string { return t.Name }
func (t Incomplete) BaseType() Type { return t }

// TypedSelection is the result of Selected: either a record field or a
// protected-type method bundle.
type TypedSelection interface{ isTypedSelection() }

// RecordElementSelection is returned when the selector names a record field.
type RecordElementSelection struct {
	Handle Handle
	Type   Type
}

func (RecordElementSelection) isTypedSelection() {}

// ProtectedMethodSelection is returned when the selector names a method of a
// protected type.
type ProtectedMethodSelection struct {
	Set OverloadedSet
}

func (ProtectedMethodSelection) isTypedSelection() {}

// Selected implements Type's public "selected" contract (§4.A): selection
// against a record field or a protected type's methods; InvalidSelection
// (ok=false) otherwise, including scalars.
func Selected(t Type, suffix Designator) (TypedSelection, bool) {
	switch bt := t.BaseType().(type) {
	case Record:
		f, ok := bt.field(suffix)
		if !ok {
			return nil, false
		}
		return RecordElementSelection{Handle: f.Handle, Type: f.Type}, true
	case Protected:
		return ProtectedMethodSelection{Set: bt.Methods}, true
	default:
		return nil, false
	}
}

// AccessedType returns the pointee type if t's base is Access.
func AccessedType(t Type) (Type, bool) {
	if acc, ok := t.BaseType().(Access); ok {
		return acc.Pointee, true
	}
	return nil, false
}

// SlicedAs returns Some(t) if t's base is Array; for Access(Array T) it
// returns Some(Array T) — the pointee array type, not the access type
// itself.
func SlicedAs(t Type) (Type, bool) {
	switch bt := t.BaseType().(type) {
	case Array:
		return t, true
	case Access:
		if _, ok := bt.Pointee.BaseType().(Array); ok {
			return bt.Pointee, true
		}
	}
	return nil, false
}

// SameType reports nominal type equality: VHDL types are equivalent only if
// they denote the same declaration, never merely structurally (two
// differently-named record types with identical fields are distinct
// types). Concrete kinds carry a Name field and so are compared by (Go
// kind, Name) rather than by ==, since several kinds (Enum, Array, Record,
// Protected) embed a slice field and are not comparable with ==.
func SameType(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return fmt.Sprintf("%T", a) == fmt.Sprintf("%T", b) && a.String() == b.String()
}

// ArrayType unwraps one level of Access to Array as well as a bare Array,
// returning the element type and rank (dimension count).
func ArrayType(t Type) (elem Type, rank int, ok bool) {
	switch bt := t.BaseType().(type) {
	case Array:
		return bt.Elem, len(bt.Indexes), true
	case Access:
		if arr, ok2 := bt.Pointee.BaseType().(Array); ok2 {
			return arr.Elem, len(arr.Indexes), true
		}
	}
	return nil, 0, false
}
