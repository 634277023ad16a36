// Package builder implements the AST Builder of spec §4.1: the
// validating layer between a parser and internal/ast's untyped node
// constructors. Every entry point either returns a well-formed node or
// reports a diagnostic and returns ast.Broken; callers never need to
// re-check brokenness beyond testing the returned Ref, the same
// "broken node, not an exception" discipline the teacher's Analyzer
// uses for its error list.
package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

// Builder holds the arenas and tables shared across one translation
// unit's worth of construction calls.
type Builder struct {
	Store  *ast.Store
	Types  *types.Table
	Idents *symtab.IdentTable
	Strs   *symtab.StringPool
	Sink   diag.Sink

	// currentReturn is the return type of the function currently being
	// built, consulted by Return (§4.1.7).
	currentReturn types.ID
	inMain        bool
}

// New constructs a Builder over a fresh (or parser-populated) set of
// arenas and tables.
func New(store *ast.Store, tbl *types.Table, idents *symtab.IdentTable, strs *symtab.StringPool, sink diag.Sink) *Builder {
	return &Builder{Store: store, Types: tbl, Idents: idents, Strs: strs, Sink: sink}
}

func (b *Builder) report(code diag.Code, span source.Span, args ...any) ast.Ref {
	b.Sink.Emit(diag.New(code, span, args...))
	return ast.Broken
}

// EnterFunction records the return type new statements are checked
// against, for the duration of building one function body.
func (b *Builder) EnterFunction(ret types.ID, isMain bool) {
	b.currentReturn = ret
	b.inMain = isMain
}

// freshTemporalName allocates a `_temporal_identifier_<n>_` spelling
// for synthetic locals the print/printid desugaring introduces (§4.1.6).
func (b *Builder) freshTemporalName() string {
	n := b.Idents.Len()
	return symtab.TemporalName(n)
}
