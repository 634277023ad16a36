package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/types"
)

// Subscript implements build_subscript_expression (§4.1.3): base must be
// array-typed and index integer-typed; the result carries the array's
// element type and is an lvalue whenever the base is.
func (b *Builder) Subscript(base, index ast.Ref, span source.Span) ast.Ref {
	if base.IsBroken() || index.IsBroken() {
		return ast.Broken
	}

	baseType := b.Store.Node(base).Type
	if !b.Types.IsArray(baseType) {
		return b.report(diag.SubscriptedExprNotArray, span)
	}

	indexType := b.Store.Node(index).Type
	if !b.Types.IsInteger(indexType) {
		return b.report(diag.ArraySubscriptNotInteger, span)
	}

	elemType := b.Types.ElemType(baseType)
	cat := ast.RValue
	if b.Store.Node(base).Category == ast.LValue {
		cat = ast.LValue
	}
	return b.Store.NewSubscript(base, index, elemType, cat, span)
}

// Member implements build_member_expression (§4.1.3): `.` requires a
// struct base and inherits its category; `->` requires a pointer-to-struct
// base and is always an lvalue (the pointee is always addressable).
func (b *Builder) Member(base ast.Ref, name string, isArrow bool, span source.Span) ast.Ref {
	if base.IsBroken() {
		return ast.Broken
	}

	baseType := b.Store.Node(base).Type
	var structType types.ID
	cat := ast.RValue

	if isArrow {
		if !b.Types.IsPointer(baseType) || !b.Types.IsStruct(b.Types.ElemType(baseType)) {
			return b.report(diag.MemberReferenceNotStructPointer, span, b.Types.String(baseType))
		}
		structType = b.Types.ElemType(baseType)
		cat = ast.LValue
	} else {
		if !b.Types.IsStruct(baseType) {
			return b.report(diag.MemberReferenceNotStruct, span, b.Types.String(baseType))
		}
		structType = baseType
		if b.Store.Node(base).Category == ast.LValue {
			cat = ast.LValue
		}
	}

	idx, ok := b.Types.FieldIndex(structType, name)
	if !ok {
		return b.report(diag.NoSuchMember, span, name, b.Types.String(structType))
	}

	fieldType := b.Types.Fields(structType)[idx].Type
	return b.Store.NewMember(base, idx, fieldType, cat, span)
}
