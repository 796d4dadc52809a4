// Package corpus builds the predeclared root scope: the STANDARD-like
// library of predefined types and operators every design unit sees before
// any user declaration, grounded on the teacher's
// internal/symbols/symbol_table_init.go GetPrelude() singleton.
package corpus

import (
	"sync"

	"github.com/vhdllang/vhdlresolve/internal/config"
	"github.com/vhdllang/vhdlresolve/internal/entity"
	"github.com/vhdllang/vhdlresolve/internal/scope"
)

var (
	preludeArena *entity.Arena
	preludeScope *scope.Scope
	preludeOnce  sync.Once
)

// Predefined types, exported so a resolver test or cmd can refer to them by
// name without re-looking them up through scope.
var (
	BooleanType  entity.Type
	BitType      entity.Type
	CharacterType entity.Type
	IntegerType  entity.Type
	NaturalType  entity.Type
	PositiveType entity.Type
	RealType     entity.Type
	TimeType     entity.Type
	StringType   entity.Type
	BitVectorType entity.Type
)

// GetPrelude returns the singleton (arena, scope) pair containing every
// predeclared name. The prelude scope is shared read-only across every
// analysis pass; a pass adds its user declarations to this same arena (so
// prelude and user handles dereference through one Arena) and chains its
// root scope onto this one via scope.Nested or RootScope.
func GetPrelude() (*entity.Arena, *scope.Scope) {
	preludeOnce.Do(initPrelude)
	return preludeArena, preludeScope
}

// Arena returns the prelude's entity arena alone; handles returned from it
// remain valid for the lifetime of the process (the prelude is never
// rebuilt once initialized, mirroring the teacher's single process-lifetime
// singleton).
func Arena() *entity.Arena {
	a, _ := GetPrelude()
	return a
}

// RootScope returns a pass-specific scope chained onto the shared prelude,
// folding the pass's own declarations with opts.FoldDesignator — this is how
// config.Options.CaseSensitive actually changes lookup behavior for a single
// analysis pass (§4.B). The prelude's own predeclared names stay
// case-insensitive regardless, since they were defined once under foldLower
// and VHDL basic identifiers are case-insensitive by the language's own
// rules, not by this option.
func RootScope(opts config.Options) (*entity.Arena, *scope.Scope) {
	a, prelude := GetPrelude()
	fold := func(d entity.Designator) string { return opts.FoldDesignator(string(d)) }
	return a, prelude.NestedWithFold(fold)
}

func foldLower(d entity.Designator) string {
	return asciiLower(string(d))
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func initPrelude() {
	a := entity.NewArena()
	sc := scope.New(foldLower)

	defType := func(name string, t entity.Type) entity.Handle {
		h := a.Add(entity.NewTypeDecl(entity.Designator(name), entity.Position{}, t))
		sc.Define(entity.Designator(name), entity.Single(h))
		return h
	}

	BooleanType = entity.Enum{Name: "BOOLEAN", Literals: []entity.Designator{"false", "true"}}
	defType("BOOLEAN", BooleanType)

	BitType = entity.Enum{Name: "BIT", Literals: []entity.Designator{"'0'", "'1'"}}
	defType("BIT", BitType)

	CharacterType = entity.Enum{Name: "CHARACTER", Literals: asciiCharacterLiterals()}
	defType("CHARACTER", CharacterType)

	IntegerType = entity.Integer{Name: "INTEGER"}
	defType("INTEGER", IntegerType)

	NaturalType = entity.Subtype{Name: "NATURAL", Parent: IntegerType}
	defType("NATURAL", NaturalType)

	PositiveType = entity.Subtype{Name: "POSITIVE", Parent: IntegerType}
	defType("POSITIVE", PositiveType)

	RealType = entity.Real{Name: "REAL"}
	defType("REAL", RealType)

	TimeType = entity.Physical{Name: "TIME", BaseUnit: "fs"}
	defType("TIME", TimeType)

	StringType = entity.Array{Name: "STRING", Indexes: []entity.Type{PositiveType}, Elem: CharacterType}
	defType("STRING", StringType)

	BitVectorType = entity.Array{Name: "BIT_VECTOR", Indexes: []entity.Type{NaturalType}, Elem: BitType}
	defType("BIT_VECTOR", BitVectorType)

	defPredefinedOperators(a, sc)

	preludeArena = a
	preludeScope = sc
}

// defPredefinedOperators installs the predefined relational and arithmetic
// operators as overloaded subprogram sets, the way the overload
// disambiguator (component F) expects any operator designator to resolve.
func defPredefinedOperators(a *entity.Arena, sc *scope.Scope) {
	binOp := func(name string, operand, ret entity.Type) entity.Handle {
		self := entity.Handle(0)
		sp := &entity.Subprogram{
			Params: []entity.Parameter{
				{Name: "l", Subtype: operand},
				{Name: "r", Subtype: operand},
			},
			Ret: ret,
		}
		self = a.Add(sp)
		sp.Self = self
		return self
	}

	relationalOperands := []entity.Type{IntegerType, RealType, BooleanType, CharacterType, TimeType, StringType, BitVectorType, BitType}
	for _, name := range []entity.Designator{"=", "/=", "<", "<=", ">", ">="} {
		for _, operand := range relationalOperands {
			sc.DefineOverloadAdd(name, binOp(string(name), operand, BooleanType))
		}
	}

	arithOperands := []entity.Type{IntegerType, RealType, TimeType}
	for _, name := range []entity.Designator{"+", "-", "*", "/"} {
		for _, operand := range arithOperands {
			sc.DefineOverloadAdd(name, binOp(string(name), operand, operand))
		}
	}

	for _, name := range []entity.Designator{"and", "or", "xor", "nand", "nor", "xnor"} {
		sc.DefineOverloadAdd(name, binOp(string(name), BooleanType, BooleanType))
		sc.DefineOverloadAdd(name, binOp(string(name), BitType, BitType))
	}
}

func asciiCharacterLiterals() []entity.Designator {
	lits := make([]entity.Designator, 0, 128)
	for c := 0; c < 128; c++ {
		lits = append(lits, entity.Designator([]byte{'\'', byte(c), '\''}))
	}
	return lits
}
