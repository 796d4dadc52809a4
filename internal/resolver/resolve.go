// Package resolver implements the resolver driver (component G): it walks
// an ast.Name outside-in by repeatedly splitting (component C), resolving
// the innermost prefix first, then threading the result through the suffix
// applier (component E), invoking the overload disambiguator (component F)
// wherever a call is met along the way.
package resolver

import (
	"github.com/vhdllang/vhdlresolve/internal/ast"
	"github.com/vhdllang/vhdlresolve/internal/diagnostics"
	"github.com/vhdllang/vhdlresolve/internal/entity"
	"github.com/vhdllang/vhdlresolve/internal/namesyntax"
	"github.com/vhdllang/vhdlresolve/internal/overload"
	"github.com/vhdllang/vhdlresolve/internal/resolved"
	"github.com/vhdllang/vhdlresolve/internal/scope"
	"github.com/vhdllang/vhdlresolve/internal/suffix"
)

// Resolve is the core recursive descent: split n, resolve its prefix (if
// any) first, then classify or apply a suffix on top of it. This is the
// single place component-level monotonicity (§8 "monotone lattice order")
// is established: every suffix.Apply call only ever receives a prefix that
// a strictly earlier call already produced.
func Resolve(n ast.Name, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) resolved.Name {
	sp := namesyntax.Of(n)
	switch sp.Kind {
	case namesyntax.KindDesignator:
		return resolveDesignator(sp, n.Pos(), sc, a, sink)
	case namesyntax.KindExternal:
		// External names name an outside environment this core does not
		// model (out of scope, §1); they classify as Final.
		return resolved.Final{Handle: entity.InvalidHandle}
	case namesyntax.KindSuffix:
		prefix := Resolve(sp.Prefix, sc, a, sink)
		// §4.G: an Overloaded prefix collapses before any suffix other than
		// a call/index is applied to it — only CallOrIndexed can itself
		// disambiguate an overloaded designator (e.g. a protected method
		// selected off a value, or an array indexed off a function result,
		// both require the call to have already happened).
		if ov, ok := prefix.(resolved.Overloaded); ok && sp.SuffixKind != namesyntax.SuffixCallOrIndexed {
			prefix = collapseOverloaded(ov.Set, sp.Node.Pos(), a, sink)
		}
		return suffix.Apply(prefix, sp, sc, a, sink, hooks())
	default:
		sink.Push(diagnostics.Internal(n.Pos(), "unhandled split kind %d", sp.Kind))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}

// hooks wires suffix.Apply's external collaborators back to this package's
// own Resolve/AnalyzeExpression/AnalyzeDiscreteRange, the dependency
// injection that lets internal/suffix call back into this package without
// the two importing each other.
func hooks() suffix.Hooks {
	return suffix.Hooks{
		Resolve:              Resolve,
		AnalyzeDiscreteRange: AnalyzeDiscreteRange,
		AnalyzeExpression:    AnalyzeExpression,
		ResolveSignature:     ResolveSignature,
	}
}

// collapseOverloaded disambiguates set with no actuals and no target type —
// the only information available when an Overloaded prefix meets a
// non-call suffix (§4.G) — and reports whatever the result denotes in
// expression position.
func collapseOverloaded(set entity.OverloadedSet, pos entity.Position, a *entity.Arena, sink *diagnostics.Sink) resolved.Name {
	res := overload.DisambiguateNoActuals(set, nil, a)
	switch res.Outcome {
	case overload.Unambiguous:
		sp := a.Get(res.Candidates[0]).(*entity.Subprogram)
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
		sink.Push(diagnostics.New(diagnostics.CodeNotFound, pos, "no overload of this name takes no arguments"))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}

func resolveDesignator(sp namesyntax.Split, pos entity.Position, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) resolved.Name {
	ne, ok := sc.Lookup(pos, sp.Designator)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeNotFound, pos, "no declaration of %q is visible here", sp.Designator))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
	if h, ok := ne.AsSingle(); ok {
		if ident, isIdent := sp.Node.(*ast.Ident); isIdent {
			ident.Ref = &h
		}
	}
	return resolved.ClassifyMany(ne, a)
}

// ResolveObjectName resolves n and requires the result to be an object
// name, the external contract §6 names for statement targets (signal
// assignment, variable assignment) that can only ever name an object.
func ResolveObjectName(n ast.Name, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) (entity.ObjectName, bool) {
	rn := Resolve(n, sc, a, sink)
	on, ok := rn.(resolved.ObjectName)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeNonExpression, n.Pos(), "%s does not denote an object", rn.Describe()))
		return entity.ObjectName{}, false
	}
	return on.Object, true
}

// ExpressionNameTypes returns every static type n could denote in
// expression position, without yet knowing the type expected by the
// enclosing context (§6 "get the candidate types of a name used in an
// expression").
func ExpressionNameTypes(n ast.Name, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) []entity.Type {
	rn := Resolve(n, sc, a, sink)
	switch v := rn.(type) {
	case resolved.ObjectName:
		if t := v.Object.EffectiveType(a); t != nil {
			return []entity.Type{t}
		}
		return nil
	case resolved.Expression:
		if v.Status == resolved.Unambiguous {
			return []entity.Type{v.Type}
		}
		return v.Types
	case resolved.Overloaded:
		// name_to_type (§4.G): an overloaded designator in expression
		// position is disambiguated with no actuals and no target type.
		res := overload.DisambiguateNoActuals(v.Set, nil, a)
		switch res.Outcome {
		case overload.Unambiguous:
			if sp, ok := a.Get(res.Candidates[0]).(*entity.Subprogram); ok && sp.Ret != nil {
				return []entity.Type{sp.Ret}
			}
			return nil
		case overload.Ambiguous:
			var types []entity.Type
			for _, h := range res.Candidates {
				if sp, ok := a.Get(h).(*entity.Subprogram); ok && sp.Ret != nil {
					types = append(types, sp.Ret)
				}
			}
			return types
		default:
			sink.Push(diagnostics.New(diagnostics.CodeNonExpression, n.Pos(), "%s does not denote an expression", rn.Describe()))
			return nil
		}
	case resolved.Final:
		// name_to_type (§4.G): Final is accepted only for File,
		// InterfaceFile, and PhysicalLiteral entities, each of which
		// carries its own type. v.Handle is InvalidHandle when Final marks
		// an already-reported error rather than a genuine terminal entity.
		if v.Handle != entity.InvalidHandle {
			switch e := a.Get(v.Handle).(type) {
			case entity.File:
				return []entity.Type{e.Subtype}
			case entity.InterfaceFile:
				return []entity.Type{e.T}
			case entity.PhysicalLiteral:
				return []entity.Type{e.T}
			}
		}
		sink.Push(diagnostics.New(diagnostics.CodeNonExpression, n.Pos(), "%s does not denote an expression", rn.Describe()))
		return nil
	default:
		sink.Push(diagnostics.New(diagnostics.CodeNonExpression, n.Pos(), "%s does not denote an expression", rn.Describe()))
		return nil
	}
}

// CanBeTargetType is the pluggable type-compatibility predicate the
// typed-name gate (ExpressionNameWithTtyp) uses to decide whether a
// resolved expression's type may stand in for an expected target type (§6
// "Type predicate: can_be_target_type(actual, expected_base)"). The default
// compares base types nominally; a caller with richer subtype/implicit
// numeric-conversion rules (out of this core's scope, §1) may replace it.
var CanBeTargetType = func(actual, expectedBase entity.Type) bool {
	return entity.SameType(actual.BaseType(), expectedBase.BaseType())
}

// ExpressionNameWithTtyp resolves n the way ExpressionNameTypes does, but
// additionally uses targetType to run phase two of the overload
// disambiguator (§4.F) when n's outermost syntax is itself a call, or to
// collapse an already-Overloaded result otherwise. Once settled, the typed
// name gate checks the result's static type against targetType via
// CanBeTargetType and raises CodeTypeMismatch on a mismatch; the resolved
// name is returned unchanged either way, since errors are data here, not
// control flow (§7).
func ExpressionNameWithTtyp(n ast.Name, targetType entity.Type, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) resolved.Name {
	sp := namesyntax.Of(n)
	if sp.Kind == namesyntax.KindSuffix && sp.SuffixKind == namesyntax.SuffixCallOrIndexed {
		prefix := Resolve(sp.Prefix, sc, a, sink)
		if ov, ok := prefix.(resolved.Overloaded); ok {
			rn := disambiguateCall(ov.Set, sp.Node.(*ast.CallOrIndexed), targetType, sc, a, sink)
			checkTargetType(rn, targetType, n.Pos(), a, sink)
			return rn
		}
	}
	rn := Resolve(n, sc, a, sink)
	if ov, ok := rn.(resolved.Overloaded); ok && targetType != nil {
		res := overload.DisambiguateNoActuals(ov.Set, targetType, a)
		if res.Outcome == overload.Unambiguous {
			sp2 := a.Get(res.Candidates[0]).(*entity.Subprogram)
			rn = resolved.Expression{Status: resolved.Unambiguous, Type: sp2.Ret}
		}
	}
	checkTargetType(rn, targetType, n.Pos(), a, sink)
	return rn
}

// checkTargetType implements the typed-name gate's compatibility check: when
// rn denotes a single concrete type and targetType is known, CanBeTargetType
// must accept the pair or a TypeMismatch diagnostic is raised.
func checkTargetType(rn resolved.Name, targetType entity.Type, pos entity.Position, a *entity.Arena, sink *diagnostics.Sink) {
	if targetType == nil {
		return
	}
	actual, ok := concreteExprType(rn, a)
	if !ok {
		return
	}
	if !CanBeTargetType(actual, targetType) {
		sink.Push(diagnostics.New(diagnostics.CodeTypeMismatch, pos,
			"%s is not compatible with expected type %s", actual, targetType))
	}
}

// concreteExprType returns rn's single static type where one exists
// unambiguously (ObjectName, unambiguous Expression, typed Final) — the only
// shapes the typed-name gate can compare against a target type. Library,
// Design, Type, Overloaded, and ambiguous Expression results are not
// gate-checked: an Overloaded result is collapsed above whenever the target
// type settles it and is otherwise passed through unchecked, and an
// ambiguous Expression already carries its own AmbiguousCall diagnostic
// from disambiguateCall.
func concreteExprType(rn resolved.Name, a *entity.Arena) (entity.Type, bool) {
	switch v := rn.(type) {
	case resolved.ObjectName:
		if t := v.Object.EffectiveType(a); t != nil {
			return t, true
		}
	case resolved.Expression:
		if v.Status == resolved.Unambiguous {
			return v.Type, true
		}
	case resolved.Final:
		if v.Handle != entity.InvalidHandle {
			switch e := a.Get(v.Handle).(type) {
			case entity.File:
				return e.Subtype, true
			case entity.InterfaceFile:
				return e.T, true
			case entity.PhysicalLiteral:
				return e.T, true
			}
		}
	}
	return nil, false
}

func disambiguateCall(set entity.OverloadedSet, node *ast.CallOrIndexed, targetType entity.Type, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) resolved.Name {
	pos := node.Position
	res := overload.Disambiguate(sc, set, node.Assocs, targetType, a, sink, AnalyzeExpression)
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
		var types []entity.Type
		for _, h := range res.Candidates {
			if sp, ok := a.Get(h).(*entity.Subprogram); ok {
				types = append(types, sp.Ret)
			}
		}
		return resolved.Expression{Status: resolved.Ambiguous, Types: types}
	default:
		sink.Push(diagnostics.New(diagnostics.CodeTypeMismatch, pos, "no candidate matches %d argument(s)", len(node.Assocs)))
		return resolved.Final{Handle: entity.InvalidHandle}
	}
}

// ResolveNameBestEffort resolves n and, if the result is still an
// unresolved overloaded bundle, deterministically picks its first
// candidate rather than leaving the caller with nothing — still recording
// an AmbiguousCall diagnostic, since errors are data here, not control flow
// (§7). Used where downstream analysis (out of scope for this core) needs
// some answer to keep going even on genuinely ambiguous input.
func ResolveNameBestEffort(n ast.Name, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) resolved.Name {
	rn := Resolve(n, sc, a, sink)
	ov, ok := rn.(resolved.Overloaded)
	if !ok || ov.Set.Len() == 0 {
		return rn
	}
	handles := ov.Set.Entities()
	sink.Push(diagnostics.New(diagnostics.CodeAmbiguousCall, n.Pos(),
		"ambiguous name resolved to its first candidate for best-effort analysis").
		WithNotes(overload.FormatCandidates(handles, a)...))
	return resolved.Classify(handles[0], a)
}

// LookupSelected implements the `lookup_selected(prefix, pos, suffix)`
// external interface of §6 directly, for callers that have a resolved
// prefix and a bare suffix designator rather than a full ast.Selected node.
func LookupSelected(prefix resolved.Name, suffixDes entity.Designator, pos entity.Position, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) resolved.Name {
	node := &ast.Selected{Position: pos, Suffix: suffixDes}
	sp := namesyntax.Split{Kind: namesyntax.KindSuffix, SuffixKind: namesyntax.SuffixSelected, Node: node}
	return suffix.Apply(prefix, sp, sc, a, sink, hooks())
}

// ResolveTypeMark resolves n and requires it to denote a type (§12,
// supplemented from resolve_type_mark in the analyzer this core's
// behavior is grounded on).
func ResolveTypeMark(n ast.Name, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) (entity.Type, bool) {
	rn := Resolve(n, sc, a, sink)
	t, ok := rn.(resolved.Type)
	if !ok {
		sink.Push(diagnostics.New(diagnostics.CodeInvalidPrefix, n.Pos(), "%s does not denote a type mark", rn.Describe()))
		return nil, false
	}
	return t.T, true
}
