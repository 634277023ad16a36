// Package demo builds small, hand-constructed translation units directly
// through internal/builder's API, standing in for the lexer/parser/
// preprocessor front end that is out of scope here (§1: "a lexer,
// preprocessor, and parser ... are assumed to exist as collaborators").
// Each program exercises a distinct corner of the builder/emitter pair —
// constant folding, dynamic arrays, composite print desugaring, ternary
// type unification — so cmd/rucc has something concrete to drive.
package demo

import (
	"fmt"
	"sort"

	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/builder"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/irgen"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

// Unit is one fully-built translation unit: the arenas/tables a program
// was constructed against, plus the top-level declaration lists
// EmitProgram needs.
type Unit struct {
	Store   *ast.Store
	Types   *types.Table
	Idents  *symtab.IdentTable
	Strs    *symtab.StringPool
	Diags   *diag.Bag
	Program irgen.Program
}

// builderFunc constructs one program's worth of declarations against a
// freshly wired Builder.
type builderFunc func(b *builder.Builder) irgen.Program

var registry = map[string]builderFunc{
	"hello":    buildHello,
	"dynarray": buildDynArray,
	"ternary":  buildTernary,
	"arrprint": buildArrayPrint,
}

// Names returns every registered demo program name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named demo program from scratch and returns its
// finished Unit, or an error if the name is unknown.
func Build(name string) (*Unit, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("demo: unknown program %q (have: %v)", name, Names())
	}

	store := ast.NewStore()
	tbl := types.NewTable()
	repr := symtab.NewReprTable()
	idents := symtab.NewIdentTable(repr)
	strs := symtab.NewStringPool()
	bag := diag.NewBag()

	b := builder.New(store, tbl, idents, strs, bag)
	program := fn(b)

	return &Unit{
		Store:   store,
		Types:   tbl,
		Idents:  idents,
		Strs:    strs,
		Diags:   bag,
		Program: program,
	}, nil
}
