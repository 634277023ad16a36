package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

// If, While, Do, For require a scalar condition (§4.1.7). Switch/Case
// require an integer selector/label.

func (b *Builder) requireScalarCondition(cond ast.Ref, span source.Span) bool {
	if cond.IsBroken() {
		return false
	}
	t := b.Store.Node(cond).Type
	if !b.Types.IsScalar(t) {
		b.report(diag.ConditionMustBeScalar, span, b.Types.String(t))
		return false
	}
	return true
}

// If builds an if statement; elseStmt may be ast.Broken to mean "no
// else clause" (NewIf treats that case specially, not as an error).
func (b *Builder) If(cond, thenStmt, elseStmt ast.Ref, span source.Span) ast.Ref {
	if !b.requireScalarCondition(cond, span) || thenStmt.IsBroken() {
		return ast.Broken
	}
	return b.Store.NewIf(cond, thenStmt, elseStmt, span)
}

func (b *Builder) While(cond, body ast.Ref, span source.Span) ast.Ref {
	if !b.requireScalarCondition(cond, span) || body.IsBroken() {
		return ast.Broken
	}
	return b.Store.NewWhile(cond, body, span)
}

func (b *Builder) Do(body, cond ast.Ref, span source.Span) ast.Ref {
	if body.IsBroken() || !b.requireScalarCondition(cond, span) {
		return ast.Broken
	}
	return b.Store.NewDo(body, cond, span)
}

// For accepts init/step as possibly-Broken (meaning "omitted"); only a
// present cond must be scalar, and an omitted cond is always true.
func (b *Builder) For(init, cond, step, body ast.Ref, span source.Span) ast.Ref {
	if body.IsBroken() {
		return ast.Broken
	}
	if !cond.IsBroken() && !b.requireScalarCondition(cond, span) {
		return ast.Broken
	}
	return b.Store.NewFor(init, cond, step, body, span)
}

// Switch requires an integer selector.
func (b *Builder) Switch(selector, body ast.Ref, span source.Span) ast.Ref {
	if selector.IsBroken() || body.IsBroken() {
		return ast.Broken
	}
	t := b.Store.Node(selector).Type
	if !b.Types.IsInteger(t) {
		return b.report(diag.SwitchExprNotInteger, span)
	}
	return b.Store.NewSwitch(selector, body, span)
}

// Case requires an integer constant label.
func (b *Builder) Case(label, body ast.Ref, span source.Span) ast.Ref {
	if label.IsBroken() || body.IsBroken() {
		return ast.Broken
	}
	n := b.Store.Node(label)
	if !b.Types.IsInteger(n.Type) {
		return b.report(diag.CaseExprNotInteger, span)
	}
	if !b.Store.IsLiteral(label) {
		return b.report(diag.ExpectedConstantExpression, span)
	}
	return b.Store.NewCase(label, body, span)
}

func (b *Builder) Default(body ast.Ref, span source.Span) ast.Ref {
	if body.IsBroken() {
		return ast.Broken
	}
	return b.Store.NewDefault(body, span)
}

// Compound wraps a statement list; NewCompound already rejects any
// broken child.
func (b *Builder) Compound(stmts []ast.Ref, span source.Span) ast.Ref {
	return b.Store.NewCompound(stmts, span)
}

func (b *Builder) NullStatement(span source.Span) ast.Ref {
	return b.Store.NewNullStatement(span)
}

func (b *Builder) Break(span source.Span) ast.Ref    { return b.Store.NewBreak(span) }
func (b *Builder) Continue(span source.Span) ast.Ref { return b.Store.NewContinue(span) }

// Return checks the returned expression against the enclosing function's
// return type (§4.1.7): a void function must not return a value and a
// non-void function must.
func (b *Builder) Return(expr ast.Ref, funcName string, span source.Span) ast.Ref {
	isVoid := b.Types.IsVoid(b.currentReturn)
	switch {
	case expr.IsBroken() && !isVoid:
		return b.report(diag.NonvoidFuncVoidReturn, span, funcName)
	case !expr.IsBroken() && isVoid:
		return b.report(diag.VoidFuncValuedReturn, span, funcName)
	case !expr.IsBroken():
		checked := b.CheckAssignmentOperands(b.currentReturn, expr, span)
		if checked.IsBroken() {
			return ast.Broken
		}
		expr = checked
	}
	return b.Store.NewReturn(expr, span)
}

func (b *Builder) DeclarationStatement(decls []ast.Ref, span source.Span) ast.Ref {
	for _, d := range decls {
		if d.IsBroken() {
			return ast.Broken
		}
	}
	return b.Store.NewDeclarationStatement(decls, span)
}

func (b *Builder) Labeled(labelNumber int64, substmt ast.Ref, span source.Span) ast.Ref {
	if substmt.IsBroken() {
		return ast.Broken
	}
	return b.Store.NewLabeled(labelNumber, substmt, span)
}

func (b *Builder) Goto(labelNumber int64, span source.Span) ast.Ref {
	return b.Store.NewGoto(labelNumber, span)
}

// VariableDecl declares a scalar/struct local or global, applying
// check_assignment_operands to any initializer (§4.1.8).
func (b *Builder) VariableDecl(name string, typ types.ID, init ast.Ref, local bool, span source.Span) (ast.Ref, symtab.IdentID) {
	if !init.IsBroken() {
		checked := b.CheckAssignmentOperands(typ, init, span)
		if checked.IsBroken() {
			init = ast.Broken
		} else {
			init = checked
		}
	}
	flags := symtab.Flags(0)
	if local {
		flags = symtab.FlagLocal
	}
	id := b.Idents.Declare(name, typ, flags)
	return b.Store.NewVariableDecl(id, typ, init, span), id
}

// ArrayDecl declares an array, validating that every dimension
// expression is an integer (constant or runtime-valued, per §4.2.5).
func (b *Builder) ArrayDecl(name string, elemType types.ID, dims []ast.Ref, init ast.Ref, local bool, span source.Span) (ast.Ref, symtab.IdentID) {
	arrType := elemType
	for range dims {
		arrType = b.Types.ArrayOf(arrType)
	}
	for _, d := range dims {
		if d.IsBroken() {
			return ast.Broken, symtab.NoIdent
		}
		if !b.Types.IsInteger(b.Store.Node(d).Type) {
			b.report(diag.ArraySubscriptNotInteger, span)
			return ast.Broken, symtab.NoIdent
		}
	}
	if !init.IsBroken() {
		checked := b.CheckAssignmentOperands(arrType, init, span)
		if checked.IsBroken() {
			init = ast.Broken
		} else {
			init = checked
		}
	}
	flags := symtab.Flags(0)
	if local {
		flags = symtab.FlagLocal
	}
	id := b.Idents.Declare(name, arrType, flags)
	return b.Store.NewArrayDecl(id, arrType, dims, init, span), id
}

// ParamDecl declares one function parameter.
func (b *Builder) ParamDecl(name string, typ types.ID, span source.Span) (ast.Ref, symtab.IdentID) {
	id := b.Idents.Declare(name, typ, symtab.FlagLocal)
	return b.Store.NewParamDecl(id, typ, span), id
}

// FunctionDecl declares a function and wraps its body; the caller must
// have called EnterFunction before building the body so that Return can
// validate against the right return type.
func (b *Builder) FunctionDecl(name string, fnType types.ID, params []ast.Ref, body ast.Ref, span source.Span) (ast.Ref, symtab.IdentID) {
	id := b.Idents.Declare(name, fnType, 0)
	return b.Store.NewFunctionDecl(id, fnType, params, body, span), id
}
