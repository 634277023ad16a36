package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/types"
)

var pureIntegerOps = map[string]bool{
	"%": true, "<<": true, ">>": true, "&": true, "^": true, "|": true,
	"%=": true, "<<=": true, ">>=": true, "&=": true, "^=": true, "|=": true,
}

var arithmeticOps = map[string]bool{"*": true, "/": true, "+": true, "-": true}
var arithmeticAssignOps = map[string]bool{"*=": true, "/=": true, "+=": true, "-=": true}
var relationalOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}
var equalityOps = map[string]bool{"==": true, "!=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}

// Binary dispatches a binary operator to its classification (§4.1.4).
func (b *Builder) Binary(op string, lhs, rhs ast.Ref, span source.Span) ast.Ref {
	if lhs.IsBroken() || rhs.IsBroken() {
		return ast.Broken
	}

	switch {
	case op == "=":
		return b.Assignment(lhs, rhs, span)
	case op == ",":
		return b.Comma(lhs, rhs, span)
	case pureIntegerOps[op]:
		return b.pureIntegerBinary(op, lhs, rhs, span)
	case arithmeticOps[op]:
		return b.arithmeticBinary(op, lhs, rhs, span)
	case arithmeticAssignOps[op]:
		return b.compoundAssignment(op, lhs, rhs, span)
	case relationalOps[op]:
		return b.relationalBinary(op, lhs, rhs, span)
	case equalityOps[op]:
		return b.equalityBinary(op, lhs, rhs, span)
	case logicalOps[op]:
		return b.logicalBinary(op, lhs, rhs, span)
	default:
		return b.report(diag.TypecheckBinaryExpr, span, op, b.Types.String(b.Store.Node(lhs).Type), b.Types.String(b.Store.Node(rhs).Type))
	}
}

func (b *Builder) span2(lhs, rhs ast.Ref, outer source.Span) source.Span {
	return source.Join(source.Join(b.Store.Node(lhs).Span, b.Store.Node(rhs).Span), outer)
}

// pureIntegerBinary handles %, <<, >>, &, ^, | and their op= forms
// (§4.1.4).
func (b *Builder) pureIntegerBinary(op string, lhs, rhs ast.Ref, span source.Span) ast.Ref {
	lt, rt := b.Store.Node(lhs).Type, b.Store.Node(rhs).Type
	if !b.Types.IsInteger(lt) || !b.Types.IsInteger(rt) {
		return b.report(diag.TypecheckBinaryExpr, span, op, b.Types.String(lt), b.Types.String(rt))
	}
	full := b.span2(lhs, rhs, span)

	if len(op) > 1 && op[len(op)-1] == '=' {
		if b.Store.Node(lhs).Category != ast.LValue {
			return b.report(diag.UnassignableExpression, span)
		}
		return b.Store.NewBinary(op, lhs, rhs, types.IntID, full)
	}

	if b.Store.IsLiteral(lhs) && b.Store.IsLiteral(rhs) {
		l, r := b.Store.LiteralInt(lhs), b.Store.LiteralInt(rhs)
		v, ok := foldPureInteger(op, l, r)
		if ok {
			b.Store.Remove(lhs)
			b.Store.Remove(rhs)
			return b.Store.NewLiteralInt(v, types.IntID, full)
		}
	}
	return b.Store.NewBinary(op, lhs, rhs, types.IntID, full)
}

func foldPureInteger(op string, l, r int64) (int64, bool) {
	switch op {
	case "%":
		if r == 0 {
			return 0, false
		}
		return l % r, true
	case "<<":
		return l << uint(r), true
	case ">>":
		return l >> uint(r), true
	case "&":
		return l & r, true
	case "^":
		return l ^ r, true
	case "|":
		return l | r, true
	}
	return 0, false
}

// arithmeticBinary handles *, /, +, - via usual arithmetic conversions
// (§4.1.2, §4.1.4).
func (b *Builder) arithmeticBinary(op string, lhs, rhs ast.Ref, span source.Span) ast.Ref {
	lt, rt := b.Store.Node(lhs).Type, b.Store.Node(rhs).Type
	if !b.Types.IsArithmetic(lt) || !b.Types.IsArithmetic(rt) {
		return b.report(diag.TypecheckBinaryExpr, span, op, b.Types.String(lt), b.Types.String(rt))
	}
	lhs, rhs, result := b.usualArithmeticConversions(lhs, rhs, span)
	full := b.span2(lhs, rhs, span)

	if b.Store.IsLiteral(lhs) && b.Store.IsLiteral(rhs) {
		if result == types.FloatID {
			l, r := b.Store.LiteralFloat(lhs), b.Store.LiteralFloat(rhs)
			if v, ok := foldFloatArith(op, l, r); ok {
				b.Store.Remove(lhs)
				b.Store.Remove(rhs)
				return b.Store.NewLiteralFloat(v, types.FloatID, full)
			}
		} else {
			l, r := b.Store.LiteralInt(lhs), b.Store.LiteralInt(rhs)
			if v, ok := foldIntArith(op, l, r); ok {
				b.Store.Remove(lhs)
				b.Store.Remove(rhs)
				return b.Store.NewLiteralInt(v, types.IntID, full)
			}
		}
	}
	return b.Store.NewBinary(op, lhs, rhs, result, full)
}

func foldIntArith(op string, l, r int64) (int64, bool) {
	switch op {
	case "+":
		return l + r, true
	case "-":
		return l - r, true
	case "*":
		return l * r, true
	case "/":
		if r == 0 {
			return 0, false
		}
		return l / r, true
	}
	return 0, false
}

func foldFloatArith(op string, l, r float64) (float64, bool) {
	switch op {
	case "+":
		return l + r, true
	case "-":
		return l - r, true
	case "*":
		return l * r, true
	case "/":
		if r == 0 {
			return 0, false
		}
		return l / r, true
	}
	return 0, false
}

// relationalBinary handles <, >, <=, >= (§4.1.4).
func (b *Builder) relationalBinary(op string, lhs, rhs ast.Ref, span source.Span) ast.Ref {
	lt, rt := b.Store.Node(lhs).Type, b.Store.Node(rhs).Type
	if !b.Types.IsArithmetic(lt) || !b.Types.IsArithmetic(rt) {
		return b.report(diag.TypecheckBinaryExpr, span, op, b.Types.String(lt), b.Types.String(rt))
	}
	lhs, rhs, result := b.usualArithmeticConversions(lhs, rhs, span)
	full := b.span2(lhs, rhs, span)

	if b.Store.IsLiteral(lhs) && b.Store.IsLiteral(rhs) {
		var cmp bool
		if result == types.FloatID {
			cmp = foldFloatRelational(op, b.Store.LiteralFloat(lhs), b.Store.LiteralFloat(rhs))
		} else {
			cmp = foldIntRelational(op, b.Store.LiteralInt(lhs), b.Store.LiteralInt(rhs))
		}
		b.Store.Remove(lhs)
		b.Store.Remove(rhs)
		return b.Store.NewLiteralBool(cmp, types.BoolID, full)
	}
	return b.Store.NewBinary(op, lhs, rhs, types.BoolID, full)
}

func foldIntRelational(op string, l, r int64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}

func foldFloatRelational(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}

// enumIdentity returns the owning enum type id for an Enum or
// EnumField type (an EnumField's own id is distinct per declaration, so
// comparing those directly would never recognize two fields of the same
// enum as compatible), and whether id is enum-ish at all.
func enumIdentity(t *types.Table, id types.ID) (types.ID, bool) {
	switch t.Kind(id) {
	case types.Enum:
		return id, true
	case types.EnumField:
		return t.EnumOf(id), true
	default:
		return types.InvalidID, false
	}
}

// equalityBinary handles ==, != (§4.1.4): arithmetic pairs via usual
// conversions, pointer-vs-null-pointer, or identical types; warns on
// "variable deviation" when either operand is floating. Two enum/
// enum-field operands belonging to different enums are rejected rather
// than silently compared as plain integers (§9/§14 open question:
// "reject cross-enum comparisons").
func (b *Builder) equalityBinary(op string, lhs, rhs ast.Ref, span source.Span) ast.Ref {
	lt, rt := b.Store.Node(lhs).Type, b.Store.Node(rhs).Type

	if lEnum, lOK := enumIdentity(b.Types, lt); lOK {
		if rEnum, rOK := enumIdentity(b.Types, rt); rOK && lEnum != rEnum {
			return b.report(diag.IncompatibleCondOperands, span, b.Types.String(lt), b.Types.String(rt))
		}
	}

	switch {
	case b.Types.IsArithmetic(lt) && b.Types.IsArithmetic(rt):
		if b.Types.IsFloating(lt) || b.Types.IsFloating(rt) {
			b.Sink.Emit(diag.New(diag.VariableDeviation, span))
		}
		lhs, rhs, _ = b.usualArithmeticConversions(lhs, rhs, span)
	case b.Types.IsPointer(lt) && rt == types.NullPointerID,
		lt == types.NullPointerID && b.Types.IsPointer(rt),
		b.Types.Equal(lt, rt):
		// allowed as-is
	default:
		return b.report(diag.IncompatibleCondOperands, span, b.Types.String(lt), b.Types.String(rt))
	}

	full := b.span2(lhs, rhs, span)
	if b.Store.IsLiteral(lhs) && b.Store.IsLiteral(rhs) {
		eq := b.literalsEqual(lhs, rhs)
		if op == "!=" {
			eq = !eq
		}
		b.Store.Remove(lhs)
		b.Store.Remove(rhs)
		return b.Store.NewLiteralBool(eq, types.BoolID, full)
	}
	return b.Store.NewBinary(op, lhs, rhs, types.BoolID, full)
}

func (b *Builder) literalsEqual(lhs, rhs ast.Ref) bool {
	ln, rn := b.Store.Node(lhs), b.Store.Node(rhs)
	if ln.Tag == ast.ExprLiteralFloat || rn.Tag == ast.ExprLiteralFloat {
		return b.Store.LiteralFloat(lhs) == b.Store.LiteralFloat(rhs)
	}
	if ln.Tag == ast.ExprLiteralNull || rn.Tag == ast.ExprLiteralNull {
		return ln.Tag == rn.Tag
	}
	return b.Store.LiteralInt(lhs) == b.Store.LiteralInt(rhs)
}

// logicalBinary handles &&, || (§4.1.4): scalar operands, bool result,
// never folded (short-circuit semantics are the emitter's concern).
func (b *Builder) logicalBinary(op string, lhs, rhs ast.Ref, span source.Span) ast.Ref {
	lt, rt := b.Store.Node(lhs).Type, b.Store.Node(rhs).Type
	if !b.Types.IsScalar(lt) || !b.Types.IsScalar(rt) {
		return b.report(diag.TypecheckBinaryExpr, span, op, b.Types.String(lt), b.Types.String(rt))
	}
	return b.Store.NewBinary(op, lhs, rhs, types.BoolID, b.span2(lhs, rhs, span))
}

// Comma builds the comma operator: result type is the right operand's
// type (§4.1.4).
func (b *Builder) Comma(lhs, rhs ast.Ref, span source.Span) ast.Ref {
	if lhs.IsBroken() || rhs.IsBroken() {
		return ast.Broken
	}
	return b.Store.NewBinary(",", lhs, rhs, b.Store.Node(rhs).Type, b.span2(lhs, rhs, span))
}

// compoundAssignment implements the op= forms of arithmeticOps: same
// operand-class constraints as their non-assigning form, never folded
// (§4.1.4).
func (b *Builder) compoundAssignment(op string, lhs, rhs ast.Ref, span source.Span) ast.Ref {
	ln := b.Store.Node(lhs)
	if ln.Category != ast.LValue {
		return b.report(diag.UnassignableExpression, span)
	}
	lt, rt := ln.Type, b.Store.Node(rhs).Type
	if !b.Types.IsArithmetic(lt) || !b.Types.IsArithmetic(rt) {
		return b.report(diag.TypecheckBinaryExpr, span, op, b.Types.String(lt), b.Types.String(rt))
	}
	return b.Store.NewBinary(op, lhs, rhs, lt, b.span2(lhs, rhs, span))
}
