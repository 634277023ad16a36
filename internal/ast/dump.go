package ast

import (
	"fmt"

	"github.com/kr/pretty"
)

// dumpNode is the plain-data projection of a Node used for debug
// printing; pretty.Sprint on the Node struct directly would also print
// the removed/Parent bookkeeping fields, which only clutter a human
// dump.
type dumpNode struct {
	Ref      Ref
	Tag      Tag
	Op       string
	Children []dumpNode
}

func (s *Store) toDump(ref Ref) dumpNode {
	n := s.Node(ref)
	d := dumpNode{Ref: ref, Tag: n.Tag, Op: n.Op}
	for _, c := range n.Children {
		if s.IsRemoved(c) {
			continue
		}
		d.Children = append(d.Children, s.toDump(c))
	}
	return d
}

// Dump renders the subtree rooted at ref as an indented tree, for the
// `rucc dump-ast` debug command.
func (s *Store) Dump(ref Ref) string {
	if ref.IsBroken() {
		return "<broken>"
	}
	return pretty.Sprint(s.toDump(ref))
}

// String implements fmt.Stringer for a Tag, for readable %#v / pretty
// output.
func (t Tag) String() string {
	names := map[Tag]string{
		ExprIdentifier: "Identifier", ExprLiteralNull: "LiteralNull",
		ExprLiteralBool: "LiteralBool", ExprLiteralChar: "LiteralChar",
		ExprLiteralInt: "LiteralInt", ExprLiteralFloat: "LiteralFloat",
		ExprLiteralString: "LiteralString", ExprSubscript: "Subscript",
		ExprCall: "Call", ExprMember: "Member", ExprCast: "Cast",
		ExprUnary: "Unary", ExprBinary: "Binary", ExprTernary: "Ternary",
		ExprInitializer: "Initializer", ExprInlineCompound: "InlineCompound",
		StmtIf: "If", StmtWhile: "While", StmtDo: "Do", StmtFor: "For",
		StmtSwitch: "Switch", StmtCase: "Case", StmtDefault: "Default",
		StmtCompound: "Compound", StmtNull: "NullStmt", StmtBreak: "Break",
		StmtContinue: "Continue", StmtReturn: "Return",
		StmtDeclaration: "DeclarationStmt", StmtLabeled: "Labeled",
		StmtGoto: "Goto", DeclVariable: "VarDecl", DeclArray: "ArrayDecl",
		DeclFunction: "FuncDecl", DeclParam: "ParamDecl",
	}
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}
