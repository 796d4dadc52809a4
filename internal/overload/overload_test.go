package overload

import (
	"testing"

	"github.com/vhdllang/vhdlresolve/internal/ast"
	"github.com/vhdllang/vhdlresolve/internal/diagnostics"
	"github.com/vhdllang/vhdlresolve/internal/entity"
	"github.com/vhdllang/vhdlresolve/internal/scope"
)

func newSubprogram(a *entity.Arena, params []entity.Parameter, ret entity.Type) entity.Handle {
	sp := &entity.Subprogram{Params: params, Ret: ret}
	h := a.Add(sp)
	sp.Self = h
	return h
}

func TestDisambiguateNoActualsFiltersNullaryByReturnType(t *testing.T) {
	a := entity.NewArena()
	integerT := entity.Integer{Name: "INTEGER"}
	realT := entity.Real{Name: "REAL"}

	nullaryInt := newSubprogram(a, nil, integerT)
	nullaryReal := newSubprogram(a, nil, realT)
	withParam := newSubprogram(a, []entity.Parameter{{Name: "x", Subtype: integerT}}, integerT)
	allThree := entity.NewOverloadedSet(nullaryInt, nullaryReal, withParam)

	res := DisambiguateNoActuals(allThree, integerT, a)
	if res.Outcome != Unambiguous || res.Candidates[0] != nullaryInt {
		t.Fatalf("got %+v, want Unambiguous(%v)", res, nullaryInt)
	}

	noTarget := DisambiguateNoActuals(allThree, nil, a)
	if noTarget.Outcome != Ambiguous || len(noTarget.Candidates) != 2 {
		t.Fatalf("with no target type both nullary candidates should remain ambiguous, got %+v", noTarget)
	}
}

func TestDisambiguateFiltersByActualTypes(t *testing.T) {
	a := entity.NewArena()
	sc := scope.New(func(d entity.Designator) string { return string(d) })
	integerT := entity.Integer{Name: "INTEGER"}
	boolT := entity.Enum{Name: "BOOLEAN", Literals: []entity.Designator{"false", "true"}}

	intVersion := newSubprogram(a, []entity.Parameter{{Name: "arg", Subtype: integerT}}, integerT)
	boolVersion := newSubprogram(a, []entity.Parameter{{Name: "arg", Subtype: boolT}}, integerT)
	set := entity.NewOverloadedSet(intVersion, boolVersion)

	exprTypes := func(e ast.Expression, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) []entity.Type {
		return []entity.Type{integerT}
	}
	assocs := []ast.AssociationElement{{Actual: ast.IntegerLiteral{Value: 0}}}
	sink := diagnostics.NewSink()

	res := Disambiguate(sc, set, assocs, nil, a, sink, exprTypes)
	if res.Outcome != Unambiguous || res.Candidates[0] != intVersion {
		t.Fatalf("got %+v, want Unambiguous(%v)", res, intVersion)
	}
}

func TestDisambiguateAmbiguousWithoutTargetType(t *testing.T) {
	a := entity.NewArena()
	sc := scope.New(func(d entity.Designator) string { return string(d) })
	integerT := entity.Integer{Name: "INTEGER"}
	characterT := entity.Enum{Name: "CHARACTER"}

	h1 := newSubprogram(a, []entity.Parameter{{Name: "arg", Subtype: integerT}}, integerT)
	h2 := newSubprogram(a, []entity.Parameter{{Name: "arg", Subtype: integerT}}, characterT)
	set := entity.NewOverloadedSet(h1, h2)

	exprTypes := func(e ast.Expression, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) []entity.Type {
		return []entity.Type{integerT}
	}
	assocs := []ast.AssociationElement{{Actual: ast.IntegerLiteral{Value: 0}}}
	sink := diagnostics.NewSink()

	res := Disambiguate(sc, set, assocs, nil, a, sink, exprTypes)
	if res.Outcome != Ambiguous || len(res.Candidates) != 2 {
		t.Fatalf("got %+v, want Ambiguous with both candidates", res)
	}

	// With a target type, the ambiguity resolves to the matching-return
	// candidate (phase two).
	res2 := Disambiguate(sc, set, assocs, integerT, a, sink, exprTypes)
	if res2.Outcome != Unambiguous || res2.Candidates[0] != h1 {
		t.Fatalf("got %+v, want Unambiguous(%v)", res2, h1)
	}
}

func TestDisambiguateNoneWhenNoCandidateMatchesArity(t *testing.T) {
	a := entity.NewArena()
	sc := scope.New(func(d entity.Designator) string { return string(d) })
	integerT := entity.Integer{Name: "INTEGER"}
	h := newSubprogram(a, []entity.Parameter{{Name: "arg", Subtype: integerT}}, integerT)
	set := entity.NewOverloadedSet(h)

	assocs := []ast.AssociationElement{
		{Actual: ast.IntegerLiteral{Value: 0}},
		{Actual: ast.IntegerLiteral{Value: 1}},
	}
	sink := diagnostics.NewSink()
	res := Disambiguate(sc, set, assocs, nil, a, sink, nil)
	if res.Outcome != None {
		t.Fatalf("got %+v, want None (arity mismatch)", res)
	}
}

func TestFormatCandidatesOneNotePerCandidate(t *testing.T) {
	a := entity.NewArena()
	integerT := entity.Integer{Name: "INTEGER"}
	h1 := newSubprogram(a, []entity.Parameter{{Name: "arg", Subtype: integerT}}, integerT)
	h2 := newSubprogram(a, nil, nil)
	notes := FormatCandidates([]entity.Handle{h1, h2}, a)
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
}
