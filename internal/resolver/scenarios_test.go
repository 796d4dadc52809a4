package resolver

import (
	"testing"

	"github.com/vhdllang/vhdlresolve/internal/corpus"
	"github.com/vhdllang/vhdlresolve/internal/diagnostics"
	"github.com/vhdllang/vhdlresolve/internal/entity"
	"github.com/vhdllang/vhdlresolve/internal/resolved"
)

// The scenarios below mirror the acceptance table (§8): each is a minimal
// declaration plus one name, checked against its expected resolved form.

func TestS1_ObjectDeclaration(t *testing.T) {
	d := newTestDesign()
	d.defObject("c0", entity.Constant, corpus.NaturalType)

	sink := diagnostics.NewSink()
	rn := Resolve(ident("c0"), d.sc, d.a, sink)

	on, ok := rn.(resolved.ObjectName)
	if !ok {
		t.Fatalf("got %T, want ObjectName", rn)
	}
	if got := on.Object.EffectiveType(d.a); !entity.SameType(got, corpus.NaturalType) {
		t.Errorf("effective type = %s, want NATURAL", got)
	}
	if !sink.OK() {
		t.Errorf("unexpected diagnostics: %v", sink.Errors())
	}
}

func TestS2_RecordFieldSelection(t *testing.T) {
	d := newTestDesign()
	fieldH := d.a.Add(entity.ElementDeclaration{Subtype: corpus.NaturalType})
	recT := entity.Record{Name: "REC_T", Fields: []entity.RecordField{
		{Name: "field", Type: corpus.NaturalType, Handle: fieldH},
	}}
	d.defObject("c0", entity.Constant, recT)

	sink := diagnostics.NewSink()
	rn := Resolve(selected(ident("c0"), "field"), d.sc, d.a, sink)

	on, ok := rn.(resolved.ObjectName)
	if !ok {
		t.Fatalf("got %T, want ObjectName", rn)
	}
	if got := on.Object.EffectiveType(d.a); !entity.SameType(got, corpus.NaturalType) {
		t.Errorf("effective type = %s, want NATURAL", got)
	}
	if !sink.OK() {
		t.Errorf("unexpected diagnostics: %v", sink.Errors())
	}
}

func TestS3_AccessAllDereference(t *testing.T) {
	d := newTestDesign()
	ivt := integerVectorType()
	ptrT := entity.Access{Name: "PTR_T", Pointee: ivt}
	d.defObject("vptr", entity.Variable, ptrT)

	sink := diagnostics.NewSink()
	rn := Resolve(allOf(ident("vptr")), d.sc, d.a, sink)

	on, ok := rn.(resolved.ObjectName)
	if !ok {
		t.Fatalf("got %T, want ObjectName", rn)
	}
	if got := on.Object.EffectiveType(d.a); !entity.SameType(got, ivt) {
		t.Errorf("effective type = %s, want INTEGER_VECTOR", got)
	}
	if !sink.OK() {
		t.Errorf("unexpected diagnostics: %v", sink.Errors())
	}
}

func TestS4_ArrayIndexing(t *testing.T) {
	d := newTestDesign()
	d.defObject("c0", entity.Variable, integerVectorType())

	sink := diagnostics.NewSink()
	rn := Resolve(call(ident("c0"), intLit(0)), d.sc, d.a, sink)

	on, ok := rn.(resolved.ObjectName)
	if !ok {
		t.Fatalf("got %T, want ObjectName", rn)
	}
	if got := on.Object.EffectiveType(d.a); !entity.SameType(got, corpus.IntegerType) {
		t.Errorf("effective type = %s, want INTEGER", got)
	}
	if !sink.OK() {
		t.Errorf("unexpected diagnostics: %v", sink.Errors())
	}
}

func TestS5_OpenAssociationIsNotIndexing(t *testing.T) {
	d := newTestDesign()
	d.defObject("c0", entity.Variable, integerVectorType())

	sink := diagnostics.NewSink()
	rn := Resolve(openCall(ident("c0")), d.sc, d.a, sink)

	if _, ok := rn.(resolved.Final); !ok {
		t.Fatalf("got %T, want Final", rn)
	}
	if sink.OK() {
		t.Fatal("expected a diagnostic rejecting c0(open) as a call or index")
	}
	last := sink.Errors()[len(sink.Errors())-1]
	if last.Code != diagnostics.CodeInvalidPrefix {
		t.Errorf("code = %v, want CodeInvalidPrefix", last.Code)
	}
}

func TestS6_FunctionCallWithoutTargetType(t *testing.T) {
	d := newTestDesign()
	d.defSubprogram("fun", []entity.Parameter{{Name: "arg", Subtype: corpus.NaturalType}}, corpus.IntegerType)

	sink := diagnostics.NewSink()
	rn := Resolve(call(ident("fun"), intLit(0)), d.sc, d.a, sink)

	expr, ok := rn.(resolved.Expression)
	if !ok || expr.Status != resolved.Unambiguous {
		t.Fatalf("got %#v, want Expression(Unambiguous(...))", rn)
	}
	if !entity.SameType(expr.Type, corpus.IntegerType) {
		t.Errorf("type = %s, want INTEGER", expr.Type)
	}
	if !sink.OK() {
		t.Errorf("unexpected diagnostics: %v", sink.Errors())
	}
}

func TestS7_OverloadResolvedByTargetReturnType(t *testing.T) {
	d := newTestDesign()
	d.defSubprogram("fun", []entity.Parameter{{Name: "arg", Subtype: corpus.NaturalType}}, corpus.IntegerType)
	d.defSubprogram("fun", []entity.Parameter{{Name: "arg", Subtype: corpus.NaturalType}}, corpus.CharacterType)

	sink := diagnostics.NewSink()
	rn := ExpressionNameWithTtyp(call(ident("fun"), intLit(0)), corpus.IntegerType, d.sc, d.a, sink)

	expr, ok := rn.(resolved.Expression)
	if !ok || expr.Status != resolved.Unambiguous {
		t.Fatalf("got %#v, want Expression(Unambiguous(integer))", rn)
	}
	if !entity.SameType(expr.Type, corpus.IntegerType) {
		t.Errorf("type = %s, want INTEGER", expr.Type)
	}
	if !sink.OK() {
		t.Errorf("unexpected diagnostics: %v", sink.Errors())
	}
}

func TestS8_ProcedureCallIsNotAnExpression(t *testing.T) {
	d := newTestDesign()
	d.defSubprogram("proc", []entity.Parameter{{Name: "arg", Subtype: corpus.NaturalType}}, nil)

	sink := diagnostics.NewSink()
	rn := Resolve(call(ident("proc"), intLit(0)), d.sc, d.a, sink)

	if _, ok := rn.(resolved.Final); !ok {
		t.Fatalf("got %T, want Final", rn)
	}
	if sink.OK() {
		t.Fatal("expected a diagnostic")
	}
	last := sink.Errors()[len(sink.Errors())-1]
	if last.Code != diagnostics.CodeProcedureInExpression {
		t.Errorf("code = %v, want CodeProcedureInExpression", last.Code)
	}
}

func TestS9_SliceOfACallResult(t *testing.T) {
	d := newTestDesign()
	d.defSubprogram("myfun", []entity.Parameter{{Name: "arg", Subtype: corpus.IntegerType}}, corpus.StringType)

	sink := diagnostics.NewSink()
	rn := Resolve(sliceOf(call(ident("myfun"), intLit(0)), 0, 1), d.sc, d.a, sink)

	expr, ok := rn.(resolved.Expression)
	if !ok || expr.Status != resolved.Unambiguous {
		t.Fatalf("got %#v, want Expression(Unambiguous(string))", rn)
	}
	if !entity.SameType(expr.Type, corpus.StringType) {
		t.Errorf("type = %s, want STRING", expr.Type)
	}
	if !sink.OK() {
		t.Errorf("unexpected diagnostics: %v", sink.Errors())
	}
}

func TestS10_TypedSliceBySubtypeName(t *testing.T) {
	d := newTestDesign()
	ivt := integerVectorType()
	d.defType("sub_t", entity.Subtype{Name: "SUB_T", Parent: corpus.IntegerType})
	d.defObject("c0", entity.Variable, ivt)

	sink := diagnostics.NewSink()
	rn := Resolve(call(ident("c0"), nameExpr(ident("sub_t"))), d.sc, d.a, sink)

	on, ok := rn.(resolved.ObjectName)
	if !ok {
		t.Fatalf("got %T, want ObjectName", rn)
	}
	if got := on.Object.EffectiveType(d.a); !entity.SameType(got, ivt) {
		t.Errorf("effective type = %s, want INTEGER_VECTOR (element type unchanged)", got)
	}
	if !sink.OK() {
		t.Errorf("unexpected diagnostics: %v", sink.Errors())
	}
}

func TestS11_NonDiscreteTypedSliceIsAnError(t *testing.T) {
	d := newTestDesign()
	d.defObject("c0", entity.Variable, integerVectorType())

	sink := diagnostics.NewSink()
	rn := Resolve(call(ident("c0"), nameExpr(ident("real"))), d.sc, d.a, sink)

	if _, ok := rn.(resolved.Final); !ok {
		t.Fatalf("got %T, want Final", rn)
	}
	errs := sink.Errors()
	if len(errs) == 0 {
		t.Fatal("expected a diagnostic")
	}
	last := errs[len(errs)-1]
	if last.Code != diagnostics.CodeInvalidDiscreteRange {
		t.Errorf("code = %v, want CodeInvalidDiscreteRange", last.Code)
	}
	const want = "real type 'REAL' cannot be used as a discrete range"
	if last.Message != want {
		t.Errorf("message = %q, want %q", last.Message, want)
	}
}

func TestS12_OverloadedEnumLiteralSelectedByTargetType(t *testing.T) {
	d := newTestDesign()
	enum1 := entity.Enum{Name: "ENUM1_T", Literals: []entity.Designator{"alpha", "beta"}}
	enum2 := entity.Enum{Name: "ENUM2_T", Literals: []entity.Designator{"alpha", "beta"}}
	d.defType("enum1_t", enum1)
	d.defType("enum2_t", enum2)

	// Enumeration literals are, per VHDL's own rules, overloaded nullary
	// functions — "alpha" denotes one candidate per enclosing type.
	d.defSubprogram("alpha", nil, enum1)
	d.defSubprogram("alpha", nil, enum2)

	sink := diagnostics.NewSink()
	rn := ExpressionNameWithTtyp(ident("alpha"), enum2, d.sc, d.a, sink)

	expr, ok := rn.(resolved.Expression)
	if !ok || expr.Status != resolved.Unambiguous {
		t.Fatalf("got %#v, want Expression(Unambiguous(enum2_t))", rn)
	}
	if !entity.SameType(expr.Type, enum2) {
		t.Errorf("type = %s, want ENUM2_T", expr.Type)
	}
	if !sink.OK() {
		t.Errorf("unexpected diagnostics: %v", sink.Errors())
	}
}

func TestReferenceSlotsPopulatedAcrossKinds(t *testing.T) {
	d := newTestDesign()
	c0 := d.defObject("c0", entity.Constant, corpus.NaturalType)
	d.defSubprogram("fun", []entity.Parameter{{Name: "arg", Subtype: corpus.NaturalType}}, corpus.IntegerType)

	sink := diagnostics.NewSink()

	bareIdent := ident("c0")
	Resolve(bareIdent, d.sc, d.a, sink)
	if bareIdent.Ref == nil || *bareIdent.Ref != c0 {
		t.Errorf("Ident.Ref not populated for a bare designator")
	}

	fieldH := d.a.Add(entity.ElementDeclaration{Subtype: corpus.NaturalType})
	recT := entity.Record{Name: "REC_T", Fields: []entity.RecordField{
		{Name: "field", Type: corpus.NaturalType, Handle: fieldH},
	}}
	d.defObject("rc", entity.Constant, recT)
	selNode := selected(ident("rc"), "field")
	Resolve(selNode, d.sc, d.a, sink)
	if selNode.Ref == nil || *selNode.Ref != fieldH {
		t.Errorf("Selected.Ref not populated for a record field selection")
	}

	callNode := call(ident("fun"), intLit(0))
	Resolve(callNode, d.sc, d.a, sink)
	if callNode.Ref == nil {
		t.Errorf("CallOrIndexed.Ref not populated for a disambiguated call")
	}

	if !sink.OK() {
		t.Errorf("unexpected diagnostics: %v", sink.Errors())
	}
}
