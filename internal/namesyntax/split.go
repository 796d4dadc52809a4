// Package namesyntax implements the name splitter (component C): a purely
// structural classification of ast.Name into "bare designator", "external
// name", or "has a prefix and a suffix", with no scope or type information
// involved (§4.C).
package namesyntax

import (
	"github.com/vhdllang/vhdlresolve/internal/ast"
	"github.com/vhdllang/vhdlresolve/internal/entity"
)

// Kind discriminates the three top-level shapes a name can split into.
type Kind int

const (
	KindDesignator Kind = iota
	KindExternal
	KindSuffix
)

// SuffixKind discriminates which of the five suffix-bearing ast.Name kinds
// produced a KindSuffix split (§4.E names the same five: Selected, All,
// Slice, Attribute, CallOrIndexed).
type SuffixKind int

const (
	SuffixSelected SuffixKind = iota
	SuffixAll
	SuffixSlice
	SuffixAttribute
	SuffixCallOrIndexed
)

// Split is the splitter's output. For KindSuffix, Node retains the original
// ast.Name so the suffix applier (component E) can recover suffix-specific
// fields (the selector designator, the discrete range, ...) with its own
// type switch, rather than this package flattening every variant's payload
// into one struct.
type Split struct {
	Kind       Kind
	Designator entity.Designator
	External   *ast.External
	Prefix     ast.Name
	SuffixKind SuffixKind
	// Node is the original ast.Name in every case, so a caller that needs
	// to attach a resolved reference (ast.Ident.Ref, ast.Selected.Ref) can
	// always recover it without a second type switch.
	Node ast.Name
}

// Of splits n. Every concrete ast.Name kind is handled; an unrecognized kind
// indicates a bug in the AST construction step (outside this core's scope),
// so Of panics rather than returning an error.
func Of(n ast.Name) Split {
	switch v := n.(type) {
	case *ast.Ident:
		return Split{Kind: KindDesignator, Designator: v.Text, Node: v}
	case *ast.External:
		return Split{Kind: KindExternal, External: v, Node: v}
	case *ast.Selected:
		return Split{Kind: KindSuffix, Prefix: v.Prefix, SuffixKind: SuffixSelected, Node: v}
	case *ast.SelectedAll:
		return Split{Kind: KindSuffix, Prefix: v.Prefix, SuffixKind: SuffixAll, Node: v}
	case *ast.Slice:
		return Split{Kind: KindSuffix, Prefix: v.Prefix, SuffixKind: SuffixSlice, Node: v}
	case *ast.Attribute:
		return Split{Kind: KindSuffix, Prefix: v.Prefix, SuffixKind: SuffixAttribute, Node: v}
	case *ast.CallOrIndexed:
		return Split{Kind: KindSuffix, Prefix: v.Prefix, SuffixKind: SuffixCallOrIndexed, Node: v}
	default:
		panic("namesyntax: unhandled ast.Name kind")
	}
}
