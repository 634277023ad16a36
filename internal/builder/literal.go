package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

// Identifier resolves name via the representation table (§4.1.1). An
// enum field resolves to an integer literal of the enum's underlying
// type, carrying the field's stored value; anything else resolves to an
// lvalue identifier node of its declared type.
func (b *Builder) Identifier(name string, span source.Span) ast.Ref {
	id, ok := b.Idents.Repr().GetReference(name)
	if !ok {
		return b.report(diag.UseOfUndeclaredIdentifier, span, name)
	}
	rec := b.Idents.Get(id)

	if rec.IsEnumField() {
		enum := b.Types.EnumOf(rec.Type)
		return b.Store.NewLiteralInt(int64(rec.Displacement), enum, span)
	}

	return b.Store.NewIdentifier(id, rec.Type, ast.LValue, span)
}

func (b *Builder) LiteralNull(span source.Span) ast.Ref {
	return b.Store.NewLiteralNull(types.NullPointerID, span)
}

func (b *Builder) LiteralBool(v bool, span source.Span) ast.Ref {
	return b.Store.NewLiteralBool(v, types.BoolID, span)
}

func (b *Builder) LiteralChar(v rune, span source.Span) ast.Ref {
	return b.Store.NewLiteralChar(v, types.CharID, span)
}

func (b *Builder) LiteralInt(v int64, span source.Span) ast.Ref {
	return b.Store.NewLiteralInt(v, types.IntID, span)
}

func (b *Builder) LiteralFloat(v float64, span source.Span) ast.Ref {
	return b.Store.NewLiteralFloat(v, types.FloatID, span)
}

func (b *Builder) LiteralString(value string, span source.Span) ast.Ref {
	id := b.Strs.Intern(value)
	return b.Store.NewLiteralString(id, b.Types.StringType(), span)
}

// declareSyntheticLocal registers a fresh `_temporal_identifier_<n>_`
// local of the given type, for use by the print/printid desugaring
// (§4.1.6).
func (b *Builder) declareSyntheticLocal(typ types.ID) symtab.IdentID {
	return b.Idents.Declare(b.freshTemporalName(), typ, symtab.FlagLocal)
}
