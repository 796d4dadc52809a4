// Command vhdlresolve is a thin demonstration driver for the name
// resolution core: it builds a small hand-wired design (one package
// declaring a record type and a constant of that type) and resolves a
// single name given on the command line against it. It is not a VHDL
// front end — lexing, parsing, and diagnostic rendering are out of scope
// for this core (§1) and so are also out of scope for this binary.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/vhdllang/vhdlresolve/internal/ast"
	"github.com/vhdllang/vhdlresolve/internal/config"
	"github.com/vhdllang/vhdlresolve/internal/corpus"
	"github.com/vhdllang/vhdlresolve/internal/diagnostics"
	"github.com/vhdllang/vhdlresolve/internal/entity"
	"github.com/vhdllang/vhdlresolve/internal/resolver"
	"github.com/vhdllang/vhdlresolve/internal/scope"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vhdlresolve: ")

	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <dotted-name>", os.Args[0])
	}

	opts := config.Default()
	if path := os.Getenv("VHDLRESOLVE_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("loading config %s: %v", path, err)
		}
		opts = loaded
	}

	a, root := buildDemoDesign(opts)
	sink := diagnostics.NewSink()

	n := parseDottedName(os.Args[1])
	result := resolver.Resolve(n, root, a, sink)

	fmt.Printf("resolved: %s\n", result.Describe())
	for _, d := range sink.Errors() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	if !sink.OK() {
		os.Exit(1)
	}
}

// parseDottedName turns "a.b.c" into the ast.Name chain resolver.Resolve
// expects, without any real lexer or parser (out of scope, §1) — just
// enough splitting to drive this demo.
func parseDottedName(s string) ast.Name {
	var parts []entity.Designator
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			parts = append(parts, entity.Designator(s[start:i]))
			start = i + 1
		}
	}
	var n ast.Name = &ast.Ident{Text: parts[0]}
	for _, p := range parts[1:] {
		n = &ast.Selected{Prefix: n, Suffix: p}
	}
	return n
}

// buildDemoDesign wires one library "work" containing one package "demo"
// that declares record type point_t and constant origin : point_t, chained
// onto the predeclared prelude scope.
func buildDemoDesign(opts config.Options) (*entity.Arena, *scope.Scope) {
	// The demo design's entities are appended onto the prelude's own
	// arena, not a fresh one: scope.Lookup can return handles bound in
	// either the prelude or this design, and both must dereference through
	// the same Arena (invariant I1). root folds this design's own
	// declarations per opts.CaseSensitive (internal/corpus.RootScope); the
	// prelude beneath it stays case-insensitive regardless.
	a, root := corpus.RootScope(opts)

	xField := a.Add(entity.ElementDeclaration{Subtype: corpus.IntegerType})
	yField := a.Add(entity.ElementDeclaration{Subtype: corpus.IntegerType})

	pointType := entity.Record{
		Name: "POINT_T",
		Fields: []entity.RecordField{
			{Name: "x", Type: corpus.IntegerType, Handle: xField},
			{Name: "y", Type: corpus.IntegerType, Handle: yField},
		},
	}
	pointTypeHandle := a.Add(entity.NewTypeDecl("point_t", entity.Position{}, pointType))

	origin := a.Add(entity.NewObject("origin", entity.Position{}, entity.Constant, nil, pointType))

	pkg := entity.NewDesign("demo", entity.Position{}, entity.DesignPackage)
	pkg.Members["point_t"] = entity.Single(pointTypeHandle)
	pkg.Members["origin"] = entity.Single(origin)
	pkgHandle := a.Add(pkg)

	lib := entity.NewLibrary("work", entity.Position{})
	lib.Units["demo"] = pkgHandle
	libHandle := a.Add(lib)

	root.Define("work", entity.Single(libHandle))
	return a, root
}
