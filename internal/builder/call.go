package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

// builtinName identifies one of the four special-cased call forms of
// §4.1.5. A direct-identifier callee whose spelling matches one of these
// never reaches an ordinary function-type check.
const (
	builtinPrintf  = "printf"
	builtinPrint   = "print"
	builtinPrintid = "printid"
	builtinGetid   = "getid"
)

// Call implements build_call (§4.1.5): built-in dispatch for a direct
// identifier callee named printf/print/printid/getid, otherwise an
// ordinary call requiring function-typed callee and a matching argument
// list.
func (b *Builder) Call(callee ast.Ref, args []ast.Ref, span source.Span) ast.Ref {
	if callee.IsBroken() {
		return ast.Broken
	}
	for _, a := range args {
		if a.IsBroken() {
			return ast.Broken
		}
	}

	if name, ok := b.directIdentifierName(callee); ok {
		switch name {
		case builtinPrintf:
			return b.Printf(args, span)
		case builtinPrint:
			return b.Print(args, span)
		case builtinPrintid:
			return b.Printid(args, span)
		case builtinGetid:
			return b.Getid(args, span)
		}
	}

	calleeType := b.Store.Node(callee).Type
	if b.Types.Kind(calleeType) != types.Function {
		return b.report(diag.CalledExprNotFunction, span)
	}

	params := b.Types.Params(calleeType)
	if len(args) > len(params) {
		return b.report(diag.TooManyArguments, span, b.calleeName(callee))
	}
	if len(args) != len(params) {
		return b.report(diag.CalledExprNotFunction, span)
	}
	for i, p := range params {
		checked := b.CheckAssignmentOperands(p, args[i], span)
		if checked.IsBroken() {
			return ast.Broken
		}
		args[i] = checked
	}

	ret := b.Types.Return(calleeType)
	return b.Store.NewCall(callee, args, ret, source.Join(b.Store.Node(callee).Span, span))
}

func (b *Builder) directIdentifierName(r ast.Ref) (string, bool) {
	n := b.Store.Node(r)
	if n.Tag != ast.ExprIdentifier {
		return "", false
	}
	return b.Idents.Name(n.Ident), true
}

func (b *Builder) calleeName(r ast.Ref) string {
	if name, ok := b.directIdentifierName(r); ok {
		return name
	}
	return "<callee>"
}

// identRef returns the underlying identifier id of r if r is a direct
// identifier expression, or (NoIdent, false) otherwise. print/printid
// require this to validate "expects an identifier argument".
func (b *Builder) identRef(r ast.Ref) (symtab.IdentID, bool) {
	n := b.Store.Node(r)
	if n.Tag != ast.ExprIdentifier {
		return symtab.NoIdent, false
	}
	return n.Ident, true
}
