package irgen

import (
	"fmt"
	"strings"

	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/types"
)

// lowerCall implements §4.2.2's call lowering: each argument is lowered
// in free position and zero-extended if LOGIC, string-literal arguments
// render as a constant getelementptr into their global, and the callee
// is resolved by the identifier it names (synthesized builtins and
// user-declared functions are both called as @<name>, their spelling).
func (s *State) lowerCall(r ast.Ref) Answer {
	n := s.Store.Node(r)
	callee := s.Store.CallCallee(r)
	args := s.Store.CallArgs(r)
	name := s.Idents.Name(s.Store.Node(callee).Ident)

	var rendered []string
	for _, a := range args {
		at := s.Store.Node(a).Type
		if at == s.Types.StringType() && s.Store.Node(a).Tag == ast.ExprLiteralString {
			rendered = append(rendered, s.stringConstOperand(s.LowerExpr(a, LocFree)))
			continue
		}
		ans := s.zextIfLogic(s.LowerExpr(a, LocFree))
		rendered = append(rendered, fmt.Sprintf("%s %s", s.llvmType(at), s.operandString(ans, at)))
	}

	switch name {
	case "printf":
		s.usedBuiltins["printf"] = true
	case "print", "printid":
		s.usedBuiltins[name] = true
	case "getid":
		s.usedBuiltins["getid"] = true
	case "abs":
		s.usedAbs = true
	case "fabs":
		s.usedFabs = true
	}

	argList := strings.Join(rendered, ", ")
	if n.Type == types.VoidID {
		s.emit("  call void @%s(%s)", name, argList)
		return Answer{Kind: AnswerNone, Type: types.VoidID}
	}
	reg := s.newReg()
	s.emit("  %%%d = call %s @%s(%s)", reg, s.llvmType(n.Type), name, argList)
	return Answer{Kind: AnswerReg, Reg: reg, Type: n.Type}
}

// stringConstOperand renders a string literal Answer as the constant GEP
// operand printf-family builtins expect: `i8* getelementptr inbounds
// ([N x i8], [N x i8]* @.str.<id>, i32 0, i32 0)`.
func (s *State) stringConstOperand(a Answer) string {
	text := s.Strs.Value(a.Str)
	n := len(text) + 1
	return fmt.Sprintf("i8* getelementptr inbounds ([%d x i8], [%d x i8]* @.str.%d, i32 0, i32 0)", n, n, int(a.Str))
}
