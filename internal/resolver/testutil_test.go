package resolver

import (
	"github.com/vhdllang/vhdlresolve/internal/ast"
	"github.com/vhdllang/vhdlresolve/internal/corpus"
	"github.com/vhdllang/vhdlresolve/internal/entity"
	"github.com/vhdllang/vhdlresolve/internal/scope"
)

// testDesign bundles an arena/scope pair chained onto the shared prelude, the
// way a real design unit's local scope would be.
type testDesign struct {
	a  *entity.Arena
	sc *scope.Scope
}

func newTestDesign() *testDesign {
	a, prelude := corpus.GetPrelude()
	return &testDesign{a: a, sc: prelude.Nested()}
}

func (d *testDesign) defObject(name string, class entity.Class, t entity.Type) entity.Handle {
	h := d.a.Add(entity.NewObject(entity.Designator(name), entity.Position{}, class, nil, t))
	d.sc.Define(entity.Designator(name), entity.Single(h))
	return h
}

func (d *testDesign) defType(name string, t entity.Type) entity.Handle {
	h := d.a.Add(entity.NewTypeDecl(entity.Designator(name), entity.Position{}, t))
	d.sc.Define(entity.Designator(name), entity.Single(h))
	return h
}

func (d *testDesign) defSubprogram(name string, params []entity.Parameter, ret entity.Type) entity.Handle {
	sp := &entity.Subprogram{Params: params, Ret: ret}
	h := d.a.Add(sp)
	sp.Self = h
	d.sc.DefineOverloadAdd(entity.Designator(name), h)
	return h
}

// integerVectorType is a locally-declared array type standing in for a
// package-supplied INTEGER_VECTOR (not part of the predeclared prelude).
func integerVectorType() entity.Type {
	return entity.Array{
		Name:    "INTEGER_VECTOR",
		Indexes: []entity.Type{corpus.NaturalType},
		Elem:    corpus.IntegerType,
	}
}

func ident(text string) *ast.Ident { return &ast.Ident{Text: entity.Designator(text)} }

func nameExpr(n ast.Name) ast.NameExpr { return ast.NameExpr{N: n} }

func intLit(v int64) ast.IntegerLiteral { return ast.IntegerLiteral{Value: v} }

func call(prefix ast.Name, actuals ...ast.Expression) *ast.CallOrIndexed {
	assocs := make([]ast.AssociationElement, len(actuals))
	for i, e := range actuals {
		assocs[i] = ast.AssociationElement{Actual: e}
	}
	return &ast.CallOrIndexed{Prefix: prefix, Assocs: assocs}
}

func openCall(prefix ast.Name) *ast.CallOrIndexed {
	return &ast.CallOrIndexed{Prefix: prefix, Assocs: []ast.AssociationElement{{Open: true}}}
}

func selected(prefix ast.Name, suffix string) *ast.Selected {
	return &ast.Selected{Prefix: prefix, Suffix: entity.Designator(suffix)}
}

func allOf(prefix ast.Name) *ast.SelectedAll {
	return &ast.SelectedAll{Prefix: prefix}
}

func sliceOf(prefix ast.Name, low, high int64) *ast.Slice {
	return &ast.Slice{Prefix: prefix, Range: ast.DiscreteRange{
		Kind: ast.DiscreteRangeBounds,
		Low:  intLit(low),
		High: intLit(high),
	}}
}
