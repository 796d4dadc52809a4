// Package suffix implements the suffix applier (component E): given a
// prefix already resolved to some point in the lattice and the next piece
// of name syntax, it produces the next (lower) resolved name, per §4.E's
// five suffix rules (Selected, All, Slice, Attribute, CallOrIndexed).
package suffix

import (
	"github.com/vhdllang/vhdlresolve/internal/ast"
	"github.com/vhdllang/vhdlresolve/internal/diagnostics"
	"github.com/vhdllang/vhdlresolve/internal/entity"
	"github.com/vhdllang/vhdlresolve/internal/namesyntax"
	"github.com/vhdllang/vhdlresolve/internal/overload"
	"github.com/vhdllang/vhdlresolve/internal/resolved"
	"github.com/vhdllang/vhdlresolve/internal/scope"
)

// Hooks are the external-collaborator entry points §4.E's input contract
// calls for ("a scope, for analyzing inner expressions like slice ranges
// and index expressions"). They are injected by the resolver driver rather
// than imported directly: the driver already imports this package to
// sequence suffix application, so a direct import back would cycle.
type Hooks struct {
	// Resolve recursively resolves a nested name — used by the
	// CallOrIndexed typed-slice decision (§4.E rule 5a) to check whether a
	// single positional actual denotes a type mark.
	Resolve func(n ast.Name, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) resolved.Name
	// AnalyzeDiscreteRange validates and types a discrete range, used by
	// the Slice rule (§4.E rule 3) and by the typed-slice form of
	// CallOrIndexed (rule 5a).
	AnalyzeDiscreteRange func(dr ast.DiscreteRange, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) (entity.Type, bool)
	// AnalyzeExpression recursively types one actual, used by the overload
	// disambiguator's phase one when a call lands on an Overloaded prefix,
	// and to analyze an attribute's parenthesized expression (rule 4).
	AnalyzeExpression overload.ExprTypes
	// ResolveSignature analyzes an attribute's optional explicit signature
	// (rule 4), so any name it references still gets resolved and
	// reference-populated even though the attribute itself classifies as
	// Final.
	ResolveSignature func(sig *ast.Signature, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) ([]entity.Type, entity.Type, bool)
}

// Apply resolves one suffix step. sp must be a namesyntax.Split of
// Kind == KindSuffix; its Prefix has already been resolved to prefix by the
// caller (component G drives the recursion, bottom-up from the innermost
// designator).
func Apply(prefix resolved.Name, sp namesyntax.Split, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink, hooks Hooks) resolved.Name {
	pos := sp.Node.Pos()
	switch sp.SuffixKind {
	case namesyntax.SuffixSelected:
		return applySelected(prefix, sp.Node.(*ast.Selected), a, sink)
	case namesyntax.SuffixAll:
		return applyAll(prefix, pos, a, sink)
	case namesyntax.SuffixSlice:
		return applySlice(prefix, sp.Node.(*ast.Slice), sc, a, sink, hooks)
	case namesyntax.SuffixAttribute:
		return applyAttribute(sp.Node.(*ast.Attribute), sc, a, sink, hooks)
	case namesyntax.SuffixCallOrIndexed:
		return applyCallOrIndexed(prefix, sp.Node.(*ast.CallOrIndexed), sc, a, sink, hooks)
	default:
		sink.Push(diagnostics.Internal(pos, "unhandled suffix kind %d", sp.SuffixKind))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}

func applySelected(prefix resolved.Name, node *ast.Selected, a *entity.Arena, sink *diagnostics.Sink) resolved.Name {
	pos := node.Position
	switch p := prefix.(type) {
	case resolved.Library:
		lib := a.Get(p.Handle).(*entity.Library)
		h, ok := entity.LookupInLibrary(lib, node.Suffix)
		if !ok {
			sink.Push(diagnostics.New(diagnostics.CodeNotFound, pos, "no unit %q in this library", node.Suffix))
			return resolved.Final{Handle: entity.InvalidHandle}
		}
		node.Ref = &h
		return resolved.Classify(h, a)

	case resolved.Design:
		d := a.Get(p.Handle).(*entity.Design)
		ne, ok := d.Selected(node.Suffix)
		if !ok {
			sink.Push(diagnostics.New(diagnostics.CodeNotFound, pos, "no declaration %q in this design unit", node.Suffix))
			return resolved.Final{Handle: entity.InvalidHandle}
		}
		if h, ok := ne.AsSingle(); ok {
			node.Ref = &h
		}
		return resolved.ClassifyManyFromDesign(ne, a)

	case resolved.Type:
		return selectOnType(p.T, node, pos, sink)

	case resolved.ObjectName:
		effT := p.Object.EffectiveType(a)
		if effT == nil {
			sink.Push(diagnostics.Internal(pos, "object has no effective type"))
			return resolved.Final{Handle: entity.InvalidHandle}
		}
		return selectOnObject(p.Object, effT, node, pos, sink)

	case resolved.Expression:
		// §4.G: "Expression(Unambiguous(t)): as ObjectName branch but
		// produce Expression(Unambiguous(t')) ... Ambiguous expression
		// prefix -> return None".
		if p.Status != resolved.Unambiguous {
			sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "ambiguous expression cannot be selected into"))
			return resolved.Final{Handle: entity.InvalidHandle}
		}
		switch r := selectOnType(p.Type, node, pos, sink).(type) {
		case resolved.Type:
			return resolved.Expression{Status: resolved.Unambiguous, Type: r.T}
		default:
			return r
		}

	default:
		sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "%s cannot be selected into", prefix.Describe()))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}

func selectOnType(t entity.Type, node *ast.Selected, pos entity.Position, sink *diagnostics.Sink) resolved.Name {
	ts, ok := entity.Selected(t, node.Suffix)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeInvalidSelection, pos, "%s has no element or method %q", t.String(), node.Suffix))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
	switch s := ts.(type) {
	case entity.RecordElementSelection:
		node.Ref = &s.Handle
		return resolved.Type{T: s.Type}
	case entity.ProtectedMethodSelection:
		return resolved.Overloaded{Set: s.Set}
	default:
		sink.Push(diagnostics.Internal(pos, "unhandled typed selection %T", ts))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}

func selectOnObject(obj entity.ObjectName, effT entity.Type, node *ast.Selected, pos entity.Position, sink *diagnostics.Sink) resolved.Name {
	ts, ok := entity.Selected(effT, node.Suffix)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeInvalidSelection, pos, "%s has no element or method %q", effT.String(), node.Suffix))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
	switch s := ts.(type) {
	case entity.RecordElementSelection:
		node.Ref = &s.Handle
		return resolved.ObjectName{Object: obj.WithTypeMark(s.Type)}
	case entity.ProtectedMethodSelection:
		return resolved.Overloaded{Set: s.Set}
	default:
		sink.Push(diagnostics.Internal(pos, "unhandled typed selection %T", ts))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}

func applyAll(prefix resolved.Name, pos entity.Position, a *entity.Arena, sink *diagnostics.Sink) resolved.Name {
	switch p := prefix.(type) {
	case resolved.ObjectName:
		effT := p.Object.EffectiveType(a)
		pointee, ok := entity.AccessedType(effT)
		if !ok {
			sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "%s is not an access type", effT.String()))
			return resolved.Final{Handle: entity.InvalidHandle}
		}
		return resolved.ObjectName{Object: p.Object.WithTypeMark(pointee)}
	case resolved.Type:
		pointee, ok := entity.AccessedType(p.T)
		if !ok {
			sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "%s is not an access type", p.T.String()))
			return resolved.Final{Handle: entity.InvalidHandle}
		}
		return resolved.Type{T: pointee}
	case resolved.Expression:
		if p.Status != resolved.Unambiguous {
			sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "ambiguous expression cannot be dereferenced with .all"))
			return resolved.Final{Handle: entity.InvalidHandle}
		}
		pointee, ok := entity.AccessedType(p.Type)
		if !ok {
			sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "%s is not an access type", p.Type.String()))
			return resolved.Final{Handle: entity.InvalidHandle}
		}
		return resolved.Expression{Status: resolved.Unambiguous, Type: pointee}
	default:
		sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "%s cannot be dereferenced with .all", prefix.Describe()))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}

// applyAttribute implements §4.E rule 4: attribute-name classification is
// left unresolved by this core (DESIGN.md Open Question 1), but the
// attribute's own nested syntax — an explicit signature disambiguating an
// overloaded prefix, and/or a parenthesized expression (e.g. 'image(x)) —
// still needs its names resolved and reference-populated, exactly as §4.G
// step (2) requires ("analyze a.signature and a.expr and return None").
func applyAttribute(node *ast.Attribute, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink, hooks Hooks) resolved.Name {
	if node.Signature != nil && hooks.ResolveSignature != nil {
		hooks.ResolveSignature(node.Signature, sc, a, sink)
	}
	if node.Expr != nil && hooks.AnalyzeExpression != nil {
		hooks.AnalyzeExpression(node.Expr, sc, a, sink)
	}
	return resolved.Final{Handle: entity.InvalidHandle}
}

// effectiveTypeOf extracts the entity.Type a suffix rule should operate on
// from whichever lattice value carries one, or (nil, false) for a prefix
// kind the rule rejects outright (including an Ambiguous expression, §4.G).
func effectiveTypeOf(prefix resolved.Name, a *entity.Arena) (entity.Type, bool) {
	switch p := prefix.(type) {
	case resolved.ObjectName:
		return p.Object.EffectiveType(a), true
	case resolved.Type:
		return p.T, true
	case resolved.Expression:
		if p.Status != resolved.Unambiguous {
			return nil, false
		}
		return p.Type, true
	default:
		return nil, false
	}
}

// rewrap reproduces prefix's lattice kind around a new type t, the
// generalization of §4.G's "as ObjectName branch but produce Expression
// (Unambiguous(t'))" note to every typed prefix kind a suffix rule accepts.
func rewrap(prefix resolved.Name, t entity.Type) resolved.Name {
	switch p := prefix.(type) {
	case resolved.ObjectName:
		return resolved.ObjectName{Object: p.Object.WithTypeMark(t)}
	case resolved.Type:
		return resolved.Type{T: t}
	case resolved.Expression:
		return resolved.Expression{Status: resolved.Unambiguous, Type: t}
	default:
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}

func applySlice(prefix resolved.Name, node *ast.Slice, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink, hooks Hooks) resolved.Name {
	pos := node.Position
	effT, ok := effectiveTypeOf(prefix, a)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "%s cannot be sliced", prefix.Describe()))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
	sliced, ok := entity.SlicedAs(effT)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "%s cannot be sliced", effT.String()))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
	// §4.E rule 3: "Analyze the discrete range then return Type(T). Element
	// type is unchanged" (property "slice round-trip", §8).
	if hooks.AnalyzeDiscreteRange != nil {
		if _, ok := hooks.AnalyzeDiscreteRange(node.Range, sc, a, sink); !ok {
			return resolved.Final{Handle: entity.InvalidHandle}
		}
	}
	return rewrap(prefix, sliced)
}

// couldBeIndexedName reports whether assocs has the shape a true array
// index or slice requires: purely positional, no formals, nothing left
// open (§4.E rule 5's "could-be-indexed-name" predicate).
func couldBeIndexedName(assocs []ast.AssociationElement) bool {
	for _, e := range assocs {
		if e.Formal != nil || e.Open {
			return false
		}
	}
	return true
}

// singleTypeNameActual reports whether assocs is shaped like a typed-slice
// actual: exactly one positional, non-open association whose actual is
// itself a bare name (as opposed to a value expression). It returns that
// name without yet checking what it resolves to — the caller still has to
// ask the scope.
func singleTypeNameActual(assocs []ast.AssociationElement) (ast.Name, bool) {
	if len(assocs) != 1 {
		return nil, false
	}
	e := assocs[0]
	if e.Formal != nil || e.Open {
		return nil, false
	}
	ne, ok := e.Actual.(ast.NameExpr)
	if !ok {
		return nil, false
	}
	return ne.N, true
}

func applyCallOrIndexed(prefix resolved.Name, node *ast.CallOrIndexed, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink, hooks Hooks) resolved.Name {
	pos := node.Position
	if p, ok := prefix.(resolved.Overloaded); ok {
		return applyCallOnOverloaded(p.Set, node, sc, a, sink, hooks)
	}

	// §4.E rule 5a: "If prefix_type.sliced_as() = Some(T) and assocs
	// contains exactly one positional expression that resolves to a
	// discrete type name (enum or integer), treat as a typed slice: return
	// Type(T)." The actual's discreteness is verified the same way a
	// DiscreteRangeSubtype is (S10/S11): a type name that isn't discrete
	// surfaces InvalidDiscreteRange rather than silently falling through
	// to array indexing.
	if effT, ok := effectiveTypeOf(prefix, a); ok {
		if sliced, slicedOK := entity.SlicedAs(effT); slicedOK {
			if nameNode, shaped := singleTypeNameActual(node.Assocs); shaped && hooks.Resolve != nil {
				// Trial-resolve into a scratch sink: if nameNode doesn't
				// denote a type mark this falls through to ordinary
				// indexing below, and AnalyzeExpression there reports
				// whatever is actually wrong with the actual exactly once.
				trial := diagnostics.NewSink()
				if rn := hooks.Resolve(nameNode, sc, a, trial); isTypeName(rn) {
					if hooks.AnalyzeDiscreteRange != nil {
						dr := ast.DiscreteRange{Kind: ast.DiscreteRangeSubtype, SubtypeMark: nameNode}
						if _, drOK := hooks.AnalyzeDiscreteRange(dr, sc, a, sink); !drOK {
							return resolved.Final{Handle: entity.InvalidHandle}
						}
					}
					return rewrap(prefix, sliced)
				}
			}
		}
	}

	switch p := prefix.(type) {
	case resolved.ObjectName:
		return applyIndexOrCall(prefix, p.Object.EffectiveType(a), node, sc, a, sink, hooks)

	case resolved.Type:
		// type_mark(expr) is a type conversion or qualification (§9 open
		// question: argument-type checking is a follow-on pass).
		if len(node.Assocs) == 1 && !node.Assocs[0].Open && node.Assocs[0].Formal == nil {
			return resolved.Expression{Status: resolved.Unambiguous, Type: p.T}
		}
		sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "invalid type conversion on %s", p.T.String()))
		return resolved.Final{Handle: entity.InvalidHandle}

	case resolved.Expression:
		if p.Status != resolved.Unambiguous {
			sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "ambiguous expression cannot be indexed or called"))
			return resolved.Final{Handle: entity.InvalidHandle}
		}
		return applyIndexOrCall(prefix, p.Type, node, sc, a, sink, hooks)

	default:
		sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "%s cannot be called or indexed", prefix.Describe()))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}

// isTypeName reports whether rn classifies as a type mark — the predicate
// rule 5a needs to tell a typed slice's subtype-indication actual apart
// from a plain indexing value.
func isTypeName(rn resolved.Name) bool {
	_, ok := rn.(resolved.Type)
	return ok
}

// applyIndexOrCall implements rule 5b: array indexing on an
// already-typed prefix (ObjectName or Expression), requiring a purely
// positional association list matching the array's rank.
func applyIndexOrCall(prefix resolved.Name, effT entity.Type, node *ast.CallOrIndexed, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink, hooks Hooks) resolved.Name {
	pos := node.Position
	elem, rank, ok := entity.ArrayType(effT)
	if !ok || !couldBeIndexedName(node.Assocs) {
		sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, pos, "%s cannot be indexed or called", effT.String()))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
	if len(node.Assocs) != rank {
		sink.Push(diagnostics.New(diagnostics.CodeDimensionMismatch, pos,
			"%s has %d dimension(s), %d given", effT.String(), rank, len(node.Assocs)))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
	if hooks.AnalyzeExpression != nil {
		for _, e := range node.Assocs {
			hooks.AnalyzeExpression(e.Actual, sc, a, sink)
		}
	}
	return rewrap(prefix, elem)
}

// applyCallOnOverloaded runs the full two-phase disambiguator (component F)
// against an overloaded prefix met by a call/index suffix, with no target
// type: Resolve carries no target type, so none is available here whether
// or not an outer suffix follows. ExpressionNameWithTtyp disambiguates an
// outermost call against its target type itself, without reaching this
// path.
func applyCallOnOverloaded(set entity.OverloadedSet, node *ast.CallOrIndexed, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink, hooks Hooks) resolved.Name {
	pos := node.Position
	res := overload.Disambiguate(sc, set, node.Assocs, nil, a, sink, hooks.AnalyzeExpression)
	switch res.Outcome {
	case overload.Unambiguous:
		h := res.Candidates[0]
		sp := a.Get(h).(*entity.Subprogram)
		node.Ref = &h
		if sp.Ret == nil {
			sink.Push(diagnostics.New(diagnostics.CodeProcedureInExpression, pos, "procedure calls are not valid in names and expressions"))
			return resolved.Final{Handle: entity.InvalidHandle}
		}
		return resolved.Expression{Status: resolved.Unambiguous, Type: sp.Ret}
	case overload.Ambiguous:
		notes := overload.FormatCandidates(res.Candidates, a)
		sink.Push(diagnostics.New(diagnostics.CodeAmbiguousCall, pos, "call is ambiguous among %d candidates", len(res.Candidates)).WithNotes(notes...))
		return resolved.Final{Handle: entity.InvalidHandle}
	default:
		sink.Push(diagnostics.New(diagnostics.CodeTypeMismatch, pos, "no candidate matches %d argument(s)", len(node.Assocs)))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}
