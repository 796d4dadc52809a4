// Package ast holds the bare name and expression syntax that component C
// (internal/namesyntax) splits and component G (internal/resolver) resolves.
// It carries no resolution logic of its own — matching the teacher's own ast
// package, which never imports analyzer — only data plus a mutable Ref slot
// that the resolver fills in once a node is resolved.
package ast

import "github.com/vhdllang/vhdlresolve/internal/entity"

// Name is the closed union of name syntax a design can contain. Every
// concrete kind also exposes a *entity.Handle field named Ref (nil until the
// resolver writes it) except SelectedAll, Slice, Attribute and External,
// which have no Ref slot.
type Name interface {
	Pos() entity.Position
	isName()
}

// Ident is a bare identifier, operator symbol, or character literal used as
// a name (GLOSSARY "designator").
type Ident struct {
	Position entity.Position
	Text     entity.Designator
	Ref      *entity.Handle
}

func (n *Ident) Pos() entity.Position { return n.Position }
func (*Ident) isName()                {}

// Selected is `prefix.suffix`.
type Selected struct {
	Position entity.Position
	Prefix   Name
	Suffix   entity.Designator
	Ref      *entity.Handle
}

func (n *Selected) Pos() entity.Position { return n.Position }
func (*Selected) isName()                {}

// SelectedAll is `prefix.all`, an access-type dereference.
type SelectedAll struct {
	Position entity.Position
	Prefix   Name
}

func (n *SelectedAll) Pos() entity.Position { return n.Position }
func (*SelectedAll) isName()                {}

// Slice is `prefix(discrete_range)` used in a name (not call) position.
type Slice struct {
	Position entity.Position
	Prefix   Name
	Range    DiscreteRange
}

func (n *Slice) Pos() entity.Position { return n.Position }
func (*Slice) isName()                {}

// Attribute is `prefix'attr[(expr)]`, optionally with a function signature
// disambiguating an overloaded prefix. Attribute suffix resolution itself is
// out of scope for this core (§4.E rule 4); this node only records syntax.
type Attribute struct {
	Position  entity.Position
	Prefix    Name
	Attr      entity.Designator
	Signature *Signature
	Expr      Expression
}

func (n *Attribute) Pos() entity.Position { return n.Position }
func (*Attribute) isName()                {}

// CallOrIndexed is `prefix(assocs)`: a function call, array index, array
// slice-by-call, or type conversion, disambiguated by component E.
type CallOrIndexed struct {
	Position entity.Position
	Prefix   Name
	Assocs   []AssociationElement
	Ref      *entity.Handle
}

func (n *CallOrIndexed) Pos() entity.Position { return n.Position }
func (*CallOrIndexed) isName()                {}

// External is a VHDL-2019 external name.
type External struct {
	Position    entity.Position
	Class       entity.Class
	Path        []entity.Designator
	SubtypeMark Name
}

func (n *External) Pos() entity.Position { return n.Position }
func (*External) isName()                {}

// Signature narrows an overloaded designator to one subprogram profile,
// e.g. `foo[integer return boolean]`.
type Signature struct {
	ParamTypes []Name
	ReturnType Name // nil for a procedure signature
}

// AssociationElement is one actual, optionally named by a formal, in a
// call's or generic/port map's association list.
type AssociationElement struct {
	Formal *entity.Designator
	Open   bool
	Actual Expression // nil when Open is true
}

// DiscreteRangeKind discriminates the three ways a discrete range can be
// spelled.
type DiscreteRangeKind int

const (
	DiscreteRangeSubtype DiscreteRangeKind = iota
	DiscreteRangeBounds
	DiscreteRangeAttribute
)

// DiscreteRange is `subtype_indication | expr (to|downto) expr | name'range`.
type DiscreteRange struct {
	Kind        DiscreteRangeKind
	SubtypeMark Name       // DiscreteRangeSubtype
	Low, High   Expression // DiscreteRangeBounds
	RangeAttr   Name       // DiscreteRangeAttribute ('range or 'reverse_range name)
}

// Expression is the closed union of expression syntax this core needs to
// type-check as a name-analysis side effect (§6's AnalyzeExpression).
type Expression interface {
	Pos() entity.Position
	isExpression()
}

// NameExpr wraps a Name used in expression position (the common case: most
// expressions bottom out at a name).
type NameExpr struct {
	N Name
}

func (n NameExpr) Pos() entity.Position { return n.N.Pos() }
func (NameExpr) isExpression()          {}

// IntegerLiteral, RealLiteral, PhysicalLiteralExpr and StringLiteral are leaf
// literal expressions. The node carries no type; resolver.AnalyzeExpression
// types them as INTEGER, REAL, the unit's physical type and STRING
// respectively, without consulting the surrounding context.
type IntegerLiteral struct {
	Position entity.Position
	Value    int64
}

func (n IntegerLiteral) Pos() entity.Position { return n.Position }
func (IntegerLiteral) isExpression()          {}

type RealLiteral struct {
	Position entity.Position
	Value    float64
}

func (n RealLiteral) Pos() entity.Position { return n.Position }
func (RealLiteral) isExpression()          {}

type PhysicalLiteralExpr struct {
	Position entity.Position
	Value    float64
	Unit     entity.Designator
	Ref      *entity.Handle
}

func (n *PhysicalLiteralExpr) Pos() entity.Position { return n.Position }
func (*PhysicalLiteralExpr) isExpression()          {}

type StringLiteral struct {
	Position entity.Position
	Value    string
}

func (n StringLiteral) Pos() entity.Position { return n.Position }
func (StringLiteral) isExpression()          {}

// Aggregate is `(choices => expr, ...)`; choices are deliberately untyped
// syntax here (non-name-construct analysis, out of scope per §1).
type Aggregate struct {
	Position entity.Position
	Elements []AssociationElement
}

func (n Aggregate) Pos() entity.Position { return n.Position }
func (Aggregate) isExpression()          {}

// Binary and Unary are operator-call expressions; resolving the operator
// designator goes through the same overloaded-subprogram path as any other
// function call (§9).
type Binary struct {
	Position entity.Position
	Op       entity.Designator
	Left     Expression
	Right    Expression
	Ref      *entity.Handle
}

func (n *Binary) Pos() entity.Position { return n.Position }
func (*Binary) isExpression()          {}

type Unary struct {
	Position entity.Position
	Op       entity.Designator
	Operand  Expression
	Ref      *entity.Handle
}

func (n *Unary) Pos() entity.Position { return n.Position }
func (*Unary) isExpression()          {}

// Qualified is `type_mark'(expr)`, a qualified expression.
type Qualified struct {
	Position entity.Position
	TypeMark Name
	Expr     Expression
}

func (n Qualified) Pos() entity.Position { return n.Position }
func (Qualified) isExpression()          {}
