package irgen

import (
	"fmt"
	"strings"

	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/types"
)

// EmitFunction lowers one function definition (§4.2.6): a `define` line,
// one `alloca`+`store` pair per parameter to give every parameter a
// stable memory home identifiers can load from uniformly, the body as a
// function-body compound (no outer stack save/restore — the epilogue
// handles the function-wide slot), and a trailing `ret` appropriate to
// the return type.
func (s *State) EmitFunction(fn ast.Ref) {
	ident := s.Store.FunctionDeclIdent(fn)
	typ := s.Store.Node(fn).Type
	params := s.Store.FunctionDeclParams(fn)
	body := s.Store.FunctionDeclBody(fn)

	name := s.Idents.Name(ident)
	isMain := name == "main"

	retType := s.Types.Return(typ)
	retLL := s.llvmType(retType)
	if isMain {
		retLL = "i32"
	}

	paramDecls := make([]string, len(params))
	for i, p := range params {
		pty := s.Store.Node(p).Type
		paramDecls[i] = fmt.Sprintf("%s %%%d", s.llvmType(pty), i)
	}
	s.emit("define %s @%s(%s) {", retLL, name, strings.Join(paramDecls, ", "))

	s.regCounter = len(params)
	s.stackTickets = nil
	s.inMain = isMain
	s.terminated = false

	for i, p := range params {
		pty := s.Store.Node(p).Type
		pident := s.Store.ParamDeclIdent(p)
		pname := s.varSymbol(pident)
		s.emit("  %s = alloca %s", pname, s.llvmType(pty))
		s.emit("  store %s %%%d, %s* %s", s.llvmType(pty), i, s.llvmType(pty), pname)
	}

	for _, st := range s.Store.CompoundStatements(body) {
		s.LowerStmt(st)
	}

	// The epilogue only synthesizes a trailing terminator when the body
	// didn't already end with one (a `return` as the last statement
	// lowered its own `ret` above, via lowerReturn) — otherwise main (or
	// a void function whose every path already returns) would end up
	// with two terminators in the same block.
	if !s.terminated {
		if isMain {
			for i := len(s.stackTickets) - 1; i >= 0; i-- {
				s.emit("  call void @llvm.stackrestore(i8* %%stacksave.%d)", s.stackTickets[i])
			}
			s.emit("  ret i32 0")
		} else if retType == types.VoidID {
			for i := len(s.stackTickets) - 1; i >= 0; i-- {
				s.emit("  call void @llvm.stackrestore(i8* %%stacksave.%d)", s.stackTickets[i])
			}
			s.emit("  ret void")
		}
	}
	// Non-void, non-main functions are required (by the builder's
	// void/nonvoid return-form checks, §4.1.7) to return on every path,
	// so no synthetic trailing ret is needed here.

	s.inMain = false
	s.emit("}")
}
