package namesyntax

import (
	"testing"

	"github.com/vhdllang/vhdlresolve/internal/ast"
	"github.com/vhdllang/vhdlresolve/internal/entity"
)

func TestOfBareDesignator(t *testing.T) {
	n := &ast.Ident{Text: "foo"}
	sp := Of(n)
	if sp.Kind != KindDesignator {
		t.Fatalf("Kind = %v, want KindDesignator", sp.Kind)
	}
	if sp.Designator != "foo" {
		t.Errorf("Designator = %q, want %q", sp.Designator, "foo")
	}
}

func TestOfExternalName(t *testing.T) {
	n := &ast.External{Class: entity.Signal, Path: []entity.Designator{"a", "b"}}
	sp := Of(n)
	if sp.Kind != KindExternal {
		t.Fatalf("Kind = %v, want KindExternal", sp.Kind)
	}
	if sp.External != n {
		t.Error("External must point back at the original node")
	}
}

func TestOfEachSuffixKind(t *testing.T) {
	prefix := &ast.Ident{Text: "p"}
	cases := []struct {
		name string
		n    ast.Name
		want SuffixKind
	}{
		{"selected", &ast.Selected{Prefix: prefix, Suffix: "f"}, SuffixSelected},
		{"all", &ast.SelectedAll{Prefix: prefix}, SuffixAll},
		{"slice", &ast.Slice{Prefix: prefix}, SuffixSlice},
		{"attribute", &ast.Attribute{Prefix: prefix, Attr: "range"}, SuffixAttribute},
		{"call_or_indexed", &ast.CallOrIndexed{Prefix: prefix}, SuffixCallOrIndexed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sp := Of(c.n)
			if sp.Kind != KindSuffix {
				t.Fatalf("Kind = %v, want KindSuffix", sp.Kind)
			}
			if sp.SuffixKind != c.want {
				t.Errorf("SuffixKind = %v, want %v", sp.SuffixKind, c.want)
			}
			if sp.Prefix != prefix {
				t.Error("Prefix must point back at the original prefix node")
			}
			if sp.Node != c.n {
				t.Error("Node must point back at the original name node")
			}
		})
	}
}
