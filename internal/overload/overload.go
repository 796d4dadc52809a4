// Package overload implements the overload disambiguator (component F): the
// two-phase filter of §4.F that narrows an OverloadedSet first by the
// actuals supplied at a call site, then (if more than one candidate
// survives) by the type expected of the call's result.
package overload

import (
	"fmt"

	"github.com/vhdllang/vhdlresolve/internal/ast"
	"github.com/vhdllang/vhdlresolve/internal/diagnostics"
	"github.com/vhdllang/vhdlresolve/internal/entity"
	"github.com/vhdllang/vhdlresolve/internal/scope"
)

// ExprTypes recursively analyzes one actual expression's candidate static
// types — the "parameter types (recursively analyzed)" half of §4.F's
// `disambiguate`. It is injected by the caller (the resolver driver owns
// expression analysis, §6) rather than imported directly, since the
// resolver package already depends on this one for the disambiguator
// itself; a direct import the other way would cycle.
type ExprTypes func(e ast.Expression, sc *scope.Scope, a *entity.Arena, sink *diagnostics.Sink) []entity.Type

// Outcome discriminates how disambiguation landed.
type Outcome int

const (
	None Outcome = iota
	Unambiguous
	Ambiguous
)

// Result is the disambiguator's output: the outcome plus whichever
// candidate handles remain (one for Unambiguous, several for Ambiguous,
// none for None).
type Result struct {
	Outcome    Outcome
	Candidates []entity.Handle
}

// DisambiguateNoActuals selects 0-ary candidates — the case of a bare
// overloaded designator with no call syntax, hence no actuals (an
// enumeration literal used as a name, or any other reference that needs
// only the surrounding expected type, never parameter shape, to settle) —
// further narrowed by targetType's return type when one is given (§4.F).
func DisambiguateNoActuals(set entity.OverloadedSet, targetType entity.Type, a *entity.Arena) Result {
	var nullary []entity.Handle
	for _, h := range set.Entities() {
		sp, ok := a.Get(h).(*entity.Subprogram)
		if !ok || len(sp.Params) != 0 {
			continue
		}
		nullary = append(nullary, h)
	}
	if targetType == nil {
		return classify(nullary)
	}
	return filterByReturnType(nullary, targetType, a)
}

// Disambiguate runs both phases: actuals first, then (only if more than one
// candidate remains) target return type. sc/a/sink/exprTypes let phase one
// recursively analyze each actual's static type against every candidate's
// corresponding parameter, per §4.F; exprTypes may be nil, in which case
// phase one degrades to matching by arity and formal names alone.
func Disambiguate(sc *scope.Scope, set entity.OverloadedSet, assocs []ast.AssociationElement, targetType entity.Type, a *entity.Arena, sink *diagnostics.Sink, exprTypes ExprTypes) Result {
	phase1 := filterByActuals(sc, set.Entities(), assocs, a, sink, exprTypes)
	if len(phase1) <= 1 || targetType == nil {
		return classify(phase1)
	}
	phase2 := filterHandlesByReturnType(phase1, targetType, a)
	if len(phase2) == 0 {
		// The target type eliminated every candidate; report the
		// actuals-only result rather than silently returning nothing, so a
		// caller can still describe what number of candidates matched by
		// shape alone.
		return classify(phase1)
	}
	return classify(phase2)
}

func filterByActuals(sc *scope.Scope, handles []entity.Handle, assocs []ast.AssociationElement, a *entity.Arena, sink *diagnostics.Sink, exprTypes ExprTypes) []entity.Handle {
	// Each actual's candidate static types are analyzed once, up front,
	// and reused against every surviving candidate subprogram's parameter
	// — not once per candidate, so a nested name's diagnostics (if any)
	// are reported exactly once regardless of how many overloads exist.
	var actualTypes [][]entity.Type
	if exprTypes != nil {
		actualTypes = make([][]entity.Type, len(assocs))
		for i, e := range assocs {
			if e.Open {
				continue
			}
			actualTypes[i] = exprTypes(e.Actual, sc, a, sink)
		}
	}
	var out []entity.Handle
	for _, h := range handles {
		sp, ok := a.Get(h).(*entity.Subprogram)
		if !ok {
			continue
		}
		if len(sp.Params) != len(assocs) {
			continue
		}
		if matchesFormals(sp, assocs) && matchesActualTypes(sp, assocs, actualTypes) {
			out = append(out, h)
		}
	}
	return out
}

// matchesFormals checks that every named (formal => actual) association
// names one of sp's parameters; positional associations always match by
// position and need no name check.
func matchesFormals(sp *entity.Subprogram, assocs []ast.AssociationElement) bool {
	for i, e := range assocs {
		if e.Formal == nil {
			continue
		}
		if i >= len(sp.Params) {
			return false
		}
		found := false
		for _, p := range sp.Params {
			if p.Name == *e.Formal {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchesActualTypes checks every non-Open actual's analyzed candidate
// types against the type of the parameter it associates with, by position
// or by formal name. A nil actualTypes (exprTypes was nil) or an actual
// with no determined candidate types is treated as compatible, degrading
// gracefully to the arity/formal-name-only match.
func matchesActualTypes(sp *entity.Subprogram, assocs []ast.AssociationElement, actualTypes [][]entity.Type) bool {
	if actualTypes == nil {
		return true
	}
	for i, e := range assocs {
		if e.Open || actualTypes[i] == nil {
			continue
		}
		want := paramSubtype(sp, e, i)
		if want == nil {
			continue
		}
		if !containsType(actualTypes[i], want) {
			return false
		}
	}
	return true
}

func paramSubtype(sp *entity.Subprogram, e ast.AssociationElement, position int) entity.Type {
	if e.Formal != nil {
		for _, p := range sp.Params {
			if p.Name == *e.Formal {
				return p.Subtype
			}
		}
		return nil
	}
	if position < len(sp.Params) {
		return sp.Params[position].Subtype
	}
	return nil
}

func containsType(types []entity.Type, want entity.Type) bool {
	for _, t := range types {
		if t != nil && entity.SameType(t.BaseType(), want.BaseType()) {
			return true
		}
	}
	return false
}

func filterByReturnType(handles []entity.Handle, targetType entity.Type, a *entity.Arena) Result {
	return classify(filterHandlesByReturnType(handles, targetType, a))
}

func filterHandlesByReturnType(handles []entity.Handle, targetType entity.Type, a *entity.Arena) []entity.Handle {
	var out []entity.Handle
	for _, h := range handles {
		sp, ok := a.Get(h).(*entity.Subprogram)
		if !ok {
			continue
		}
		if sp.Ret == nil {
			continue
		}
		if entity.SameType(sp.Ret.BaseType(), targetType.BaseType()) {
			out = append(out, h)
		}
	}
	return out
}

func classify(handles []entity.Handle) Result {
	switch len(handles) {
	case 0:
		return Result{Outcome: None}
	case 1:
		return Result{Outcome: Unambiguous, Candidates: handles}
	default:
		return Result{Outcome: Ambiguous, Candidates: handles}
	}
}

// FormatCandidates renders each candidate handle as a one-line signature
// description, for an AmbiguousCall diagnostic's notes (§12).
func FormatCandidates(handles []entity.Handle, a *entity.Arena) []string {
	notes := make([]string, 0, len(handles))
	for _, h := range handles {
		sp, ok := a.Get(h).(*entity.Subprogram)
		if !ok {
			continue
		}
		ret := "procedure"
		if sp.Ret != nil {
			ret = "function return " + sp.Ret.String()
		}
		params := ""
		for i, p := range sp.Params {
			if i > 0 {
				params += ", "
			}
			params += string(p.Name) + ": " + p.Subtype.String()
		}
		notes = append(notes, fmt.Sprintf("candidate (%s) %s", params, ret))
	}
	return notes
}
