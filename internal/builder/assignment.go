package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/types"
)

// Assignment builds plain `lhs = rhs` via check_assignment_operands
// (§4.1.2, §4.1.8).
func (b *Builder) Assignment(lhs, rhs ast.Ref, span source.Span) ast.Ref {
	if lhs.IsBroken() || rhs.IsBroken() {
		return ast.Broken
	}
	ln := b.Store.Node(lhs)
	if ln.Category != ast.LValue {
		return b.report(diag.UnassignableExpression, span)
	}
	rhs = b.CheckAssignmentOperands(ln.Type, rhs, span)
	if rhs.IsBroken() {
		return ast.Broken
	}
	return b.Store.NewBinary("=", lhs, rhs, ln.Type, b.span2(lhs, rhs, span))
}

// CheckAssignmentOperands implements check_assignment_operands (§4.1.2,
// §4.1.8): it handles initializer lists against struct/array targets,
// rejects an initializer list against a scalar target, and otherwise
// applies the fixed scalar coercion table.
func (b *Builder) CheckAssignmentOperands(expected types.ID, init ast.Ref, span source.Span) ast.Ref {
	if init.IsBroken() {
		return ast.Broken
	}
	n := b.Store.Node(init)

	if n.Tag == ast.ExprInitializer {
		return b.checkInitializerList(expected, init, span)
	}

	if b.Types.IsStruct(expected) || b.Types.IsArray(expected) {
		return b.report(diag.WrongInit, span, b.Types.String(expected))
	}

	return b.coerceScalar(expected, init, span)
}

func (b *Builder) checkInitializerList(expected types.ID, init ast.Ref, span source.Span) ast.Ref {
	elems := b.Store.InitializerElems(init)

	switch {
	case b.Types.IsStruct(expected):
		fields := b.Types.Fields(expected)
		if len(elems) != len(fields) {
			return b.report(diag.WrongInit, span, b.Types.String(expected))
		}
		for i, e := range elems {
			checked := b.CheckAssignmentOperands(fields[i].Type, e, span)
			if checked.IsBroken() {
				return ast.Broken
			}
			if checked != e {
				b.Store.Insert(init, i, checked)
			}
		}
		b.Store.SetType(init, expected, ast.RValue)
		return init

	case b.Types.IsArray(expected):
		elemType := b.Types.ElemType(expected)
		for i, e := range elems {
			checked := b.CheckAssignmentOperands(elemType, e, span)
			if checked.IsBroken() {
				return ast.Broken
			}
			if checked != e {
				b.Store.Insert(init, i, checked)
			}
		}
		b.Store.SetType(init, expected, ast.RValue)
		return init

	default:
		if len(elems) == 0 {
			return b.report(diag.EmptyInit, span)
		}
		return b.report(diag.WrongInit, span, b.Types.String(expected))
	}
}

// coerceScalar applies the fixed scalar coercion table of §4.1.2:
// float<-int inserts a cast; enum<-enum-field of the same enum, int<-enum
// or enum-field, int<-int, pointer<-null-pointer, and equal types are all
// accepted as-is; everything else is "wrong init".
func (b *Builder) coerceScalar(expected types.ID, init ast.Ref, span source.Span) ast.Ref {
	got := b.Store.Node(init).Type

	switch {
	case b.Types.Equal(expected, got):
		return init
	case expected == types.FloatID && got == types.IntID:
		return b.Cast(expected, init, span)
	case b.Types.Kind(expected) == types.Enum && b.Types.Kind(got) == types.EnumField && b.Types.EnumOf(got) == expected:
		return init
	case expected == types.IntID && (b.Types.Kind(got) == types.Enum || b.Types.Kind(got) == types.EnumField):
		return init
	case expected == types.IntID && got == types.IntID:
		return init
	case b.Types.IsPointer(expected) && got == types.NullPointerID:
		return init
	default:
		return b.report(diag.WrongInit, span, b.Types.String(expected))
	}
}
