package resolver

import (
	"github.com/vhdllang/vhdlresolve/internal/ast"
	"github.com/vhdllang/vhdlresolve/internal/corpus"
	"github.com/vhdllang/vhdlresolve/internal/diagnostics"
	"github.com/vhdllang/vhdlresolve/internal/entity"
	"github.com/vhdllang/vhdlresolve/internal/scope"
)

// AnalyzeExpression type-checks e as a name-analysis side effect (§6):
// every name nested inside an expression is itself resolved, and operator
// designators go through the same overloaded-subprogram path a call would.
// Non-name constructs (aggregates, qualification targets) are deliberately
// only skin-deep here, matching this core's exclusion of full semantic
// elaboration (§1 Non-goals).
func AnalyzeExpression(e ast.Expression, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) []entity.Type {
	switch v := e.(type) {
	case ast.NameExpr:
		return ExpressionNameTypes(v.N, sc, a, sink)

	case ast.IntegerLiteral:
		return []entity.Type{corpus.IntegerType}

	case ast.RealLiteral:
		return []entity.Type{corpus.RealType}

	case *ast.PhysicalLiteralExpr:
		return analyzePhysicalLiteral(v, sc, a, sink)

	case ast.StringLiteral:
		return []entity.Type{corpus.StringType}

	case ast.Aggregate:
		// Choice/element typing needs the surrounding target type, which
		// isn't available at this call site; non-name-construct analysis
		// is out of scope (§1).
		return nil

	case *ast.Binary:
		return analyzeBinary(v, sc, a, sink)

	case *ast.Unary:
		return analyzeUnary(v, sc, a, sink)

	case ast.Qualified:
		t, ok := ResolveTypeMark(v.TypeMark, sc, a, sink)
		if !ok {
			return nil
		}
		return []entity.Type{t}

	default:
		sink.Push(diagnostics.Internal(e.Pos(), "unhandled expression kind %T", e))
		return nil
	}
}

func analyzePhysicalLiteral(v *ast.PhysicalLiteralExpr, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) []entity.Type {
	ne, ok := sc.Lookup(v.Position, v.Unit)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeNotFound, v.Position, "unknown physical unit %q", v.Unit))
		return nil
	}
	h, ok := ne.AsSingle()
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeInvalidSelection, v.Position, "%q does not name a single physical unit", v.Unit))
		return nil
	}
	pl, ok := a.Get(h).(entity.PhysicalLiteral)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeInvalidSelection, v.Position, "%q does not name a physical unit", v.Unit))
		return nil
	}
	return []entity.Type{pl.T}
}

func operatorCandidates(ne entity.NamedEntities) []entity.Handle {
	if h, ok := ne.AsSingle(); ok {
		return []entity.Handle{h}
	}
	if set, ok := ne.AsOverloaded(); ok {
		return set.Entities()
	}
	return nil
}

func analyzeBinary(v *ast.Binary, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) []entity.Type {
	left := AnalyzeExpression(v.Left, sc, a, sink)
	right := AnalyzeExpression(v.Right, sc, a, sink)
	ne, ok := sc.Lookup(v.Position, v.Op)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeNotFound, v.Position, "operator %q is not visible here", v.Op))
		return nil
	}
	var results []entity.Type
	var matched []entity.Handle
	for _, h := range operatorCandidates(ne) {
		sp, ok := a.Get(h).(*entity.Subprogram)
		if !ok || len(sp.Params) != 2 {
			continue
		}
		if typeListContains(left, sp.Params[0].Subtype) && typeListContains(right, sp.Params[1].Subtype) {
			results = append(results, sp.Ret)
			matched = append(matched, h)
		}
	}
	if len(results) == 0 {
		sink.Push(diagnostics.New(diagnostics.CodeTypeMismatch, v.Position, "no overload of %q matches these operand types", v.Op))
		return nil
	}
	if len(matched) == 1 {
		v.Ref = &matched[0]
	}
	return results
}

func analyzeUnary(v *ast.Unary, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) []entity.Type {
	operand := AnalyzeExpression(v.Operand, sc, a, sink)
	ne, ok := sc.Lookup(v.Position, v.Op)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeNotFound, v.Position, "operator %q is not visible here", v.Op))
		return nil
	}
	var results []entity.Type
	var matched []entity.Handle
	for _, h := range operatorCandidates(ne) {
		sp, ok := a.Get(h).(*entity.Subprogram)
		if !ok || len(sp.Params) != 1 {
			continue
		}
		if typeListContains(operand, sp.Params[0].Subtype) {
			results = append(results, sp.Ret)
			matched = append(matched, h)
		}
	}
	if len(results) == 0 {
		sink.Push(diagnostics.New(diagnostics.CodeTypeMismatch, v.Position, "no overload of %q matches this operand type", v.Op))
		return nil
	}
	if len(matched) == 1 {
		v.Ref = &matched[0]
	}
	return results
}

// isDiscreteType reports whether t's base type is an enumeration or integer
// type, the only two kinds VHDL allows as a discrete range's subtype
// indication.
func isDiscreteType(t entity.Type) bool {
	switch t.BaseType().(type) {
	case entity.Enum, entity.Integer:
		return true
	default:
		return false
	}
}

// discreteRangeKindWord names the non-discrete kind of t for an
// InvalidDiscreteRange diagnostic (e.g. "real type 'REAL' cannot be used as
// a discrete range").
func discreteRangeKindWord(t entity.Type) string {
	switch t.BaseType().(type) {
	case entity.Real:
		return "real"
	case entity.Physical:
		return "physical"
	case entity.Array:
		return "array"
	case entity.Record:
		return "record"
	case entity.Access:
		return "access"
	case entity.FileType:
		return "file"
	case entity.Protected:
		return "protected"
	default:
		return "this"
	}
}

func typeListContains(types []entity.Type, want entity.Type) bool {
	if want == nil {
		return false
	}
	for _, t := range types {
		if entity.SameType(t.BaseType(), want.BaseType()) {
			return true
		}
	}
	return false
}

// AnalyzeDiscreteRange determines the index type implied by a discrete
// range (§6). The suffix applier's slice rules use only whether it
// succeeded; they do not compare the returned type against the array's
// index type.
func AnalyzeDiscreteRange(dr ast.DiscreteRange, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) (entity.Type, bool) {
	switch dr.Kind {
	case ast.DiscreteRangeSubtype:
		t, ok := ResolveTypeMark(dr.SubtypeMark, sc, a, sink)
		if !ok {
			return nil, false
		}
		if !isDiscreteType(t) {
			sink.Push(diagnostics.New(diagnostics.CodeInvalidDiscreteRange, dr.SubtypeMark.Pos(),
				"%s type '%s' cannot be used as a discrete range", discreteRangeKindWord(t), t.String()))
			return nil, false
		}
		return t, true

	case ast.DiscreteRangeBounds:
		lowTypes := AnalyzeExpression(dr.Low, sc, a, sink)
		highTypes := AnalyzeExpression(dr.High, sc, a, sink)
		for _, lt := range lowTypes {
			if typeListContains(highTypes, lt) {
				return lt, true
			}
		}
		sink.Push(diagnostics.New(diagnostics.CodeInvalidDiscreteRange, dr.Low.Pos(), "range bounds have incompatible types"))
		return nil, false

	case ast.DiscreteRangeAttribute:
		// 'range and 'reverse_range attributes are unresolved by this core
		// (§4.E rule 4, attribute suffixes); report rather than guess.
		sink.Push(diagnostics.New(diagnostics.CodeInvalidDiscreteRange, dr.RangeAttr.Pos(), "attribute-based ranges are not resolved by this analysis"))
		return nil, false

	default:
		sink.Push(diagnostics.Internal(entity.Position{}, "unhandled discrete range kind %d", dr.Kind))
		return nil, false
	}
}

// AnalyzeAssocElems checks each actual in assocs against the formal
// parameter it associates with (by name if named, by position otherwise),
// reporting a TypeMismatch for every actual whose type doesn't match.
func AnalyzeAssocElems(assocs []ast.AssociationElement, params []entity.Parameter, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) bool {
	ok := true
	for i, e := range assocs {
		if e.Open {
			continue
		}
		want := formalType(e, i, params)
		if want == nil {
			continue
		}
		types := AnalyzeExpression(e.Actual, sc, a, sink)
		if !typeListContains(types, want) {
			sink.Push(diagnostics.New(diagnostics.CodeTypeMismatch, e.Actual.Pos(), "argument does not match parameter type %s", want.String()))
			ok = false
		}
	}
	return ok
}

func formalType(e ast.AssociationElement, position int, params []entity.Parameter) entity.Type {
	if e.Formal != nil {
		for _, p := range params {
			if p.Name == *e.Formal {
				return p.Subtype
			}
		}
		return nil
	}
	if position < len(params) {
		return params[position].Subtype
	}
	return nil
}

// ResolveSubtypeIndication resolves n as a type mark; constraint checking
// (range/index constraints) is out of scope for name resolution (§1), so
// this is only ever the type-mark lookup half of a subtype indication.
func ResolveSubtypeIndication(n ast.Name, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) (entity.Type, bool) {
	return ResolveTypeMark(n, sc, a, sink)
}

// ResolveSignature resolves an explicit function/procedure signature used
// to disambiguate an overloaded designator (`name[param_types return
// return_type]`), returning the resolved parameter and return types.
func ResolveSignature(sig *ast.Signature, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) ([]entity.Type, entity.Type, bool) {
	if sig == nil {
		return nil, nil, true
	}
	ok := true
	params := make([]entity.Type, 0, len(sig.ParamTypes))
	for _, pn := range sig.ParamTypes {
		t, got := ResolveTypeMark(pn, sc, a, sink)
		if !got {
			ok = false
			continue
		}
		params = append(params, t)
	}
	var ret entity.Type
	if sig.ReturnType != nil {
		t, got := ResolveTypeMark(sig.ReturnType, sc, a, sink)
		if !got {
			ok = false
		} else {
			ret = t
		}
	}
	return params, ret, ok
}
