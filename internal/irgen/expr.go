package irgen

import (
	"fmt"

	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

// LowerExpr dispatches one expression node to its lowering rule,
// honoring the requested location (§4.2.1/§4.2.2).
func (s *State) LowerExpr(r ast.Ref, loc Location) Answer {
	n := s.Store.Node(r)
	switch n.Tag {
	case ast.ExprIdentifier:
		return s.lowerIdentifier(r, loc)
	case ast.ExprLiteralNull:
		return Answer{Kind: AnswerNull, Type: n.Type}
	case ast.ExprLiteralBool:
		return Answer{Kind: AnswerConst, ConstInt: s.Store.LiteralInt(r), Type: n.Type}
	case ast.ExprLiteralChar:
		return Answer{Kind: AnswerConst, ConstInt: s.Store.LiteralInt(r), Type: n.Type}
	case ast.ExprLiteralInt:
		return Answer{Kind: AnswerConst, ConstInt: s.Store.LiteralInt(r), Type: n.Type}
	case ast.ExprLiteralFloat:
		return Answer{Kind: AnswerConst, ConstFloat: s.Store.LiteralFloat(r), IsFloat: true, Type: n.Type}
	case ast.ExprLiteralString:
		return Answer{Kind: AnswerStr, Str: s.Store.LiteralString(r), Type: n.Type}
	case ast.ExprSubscript:
		return s.lowerSubscript(r, loc)
	case ast.ExprMember:
		return s.lowerMember(r, loc)
	case ast.ExprCast:
		return s.lowerCast(r)
	case ast.ExprUnary:
		return s.lowerUnary(r, loc)
	case ast.ExprBinary:
		return s.lowerBinary(r, loc)
	case ast.ExprTernary:
		return s.lowerTernary(r)
	case ast.ExprCall:
		return s.lowerCall(r)
	case ast.ExprInlineCompound:
		return s.lowerInlineCompound(r)
	default:
		return Answer{}
	}
}

// varSymbol returns the emitted name for a variable identifier:
// `%var.<id>` for locals, `@var.<id>` for globals (§4.2.2).
func (s *State) varSymbol(ident symtab.IdentID) string {
	sigil := "%"
	if !s.Idents.Get(ident).IsLocal() {
		sigil = "@"
	}
	return fmt.Sprintf("%svar.%d", sigil, int(ident))
}

func (s *State) lowerIdentifier(r ast.Ref, loc Location) Answer {
	n := s.Store.Node(r)
	name := s.varSymbol(n.Ident)

	if s.Types.IsArray(n.Type) {
		// Array identifiers decay to a zero-index GEP yielding the base
		// pointer, regardless of requested location (§4.2.2). An array with
		// no descriptor here (a parameter) holds its base pointer in its
		// slot, which is loaded instead.
		elemTy := s.llvmType(s.Types.ElemType(n.Type))
		reg := s.newReg()
		desc := s.arrayDescs[n.Ident]
		if desc != nil && desc.isStatic {
			aggTy := s.staticArrayLLVMType(desc)
			s.emit("  %%%d = getelementptr inbounds %s, %s* %s, i32 0, i32 0", reg, aggTy, aggTy, name)
		} else if desc != nil {
			s.emit("  %%%d = getelementptr inbounds %s, %s* %s, i32 0", reg, elemTy, elemTy, name)
		} else {
			s.emit("  %%%d = load %s*, %s** %s", reg, elemTy, elemTy, name)
		}
		return Answer{Kind: AnswerReg, Reg: reg, Type: n.Type}
	}

	if loc == LocMem {
		reg := s.newReg()
		s.emit("  %%%d = bitcast %s* %s to %s*", reg, s.llvmType(n.Type), name, s.llvmType(n.Type))
		return Answer{Kind: AnswerMem, Reg: reg, Type: n.Type}
	}

	reg := s.newReg()
	s.emit("  %%%d = load %s, %s* %s", reg, s.llvmType(n.Type), s.llvmType(n.Type), name)
	return Answer{Kind: AnswerReg, Reg: reg, Type: n.Type}
}

func (s *State) staticArrayLLVMType(desc *arrayDescriptor) string {
	ty := s.llvmType(desc.elemType)
	for i := len(desc.dims) - 1; i >= 0; i-- {
		ty = fmt.Sprintf("[%d x %s]", desc.dims[i].constN, ty)
	}
	return ty
}

// lowerSubscript recursively lowers the base to obtain the previous
// slice register, then GEPs by the index (§4.2.2).
func (s *State) lowerSubscript(r ast.Ref, loc Location) Answer {
	baseRef := s.Store.Node(r).Children[0]
	idxRef := s.Store.Node(r).Children[1]

	baseAns := s.LowerExpr(baseRef, LocFree)
	idxAns := s.zextIfLogic(s.LowerExpr(idxRef, LocFree))
	elemTy := s.llvmType(s.Store.Node(r).Type)

	ptr := s.newReg()
	idxOperand := s.operandString(idxAns, types.IntID)
	s.emit("  %%%d = getelementptr inbounds %s, %s* %s, i32 %s", ptr, elemTy, elemTy, s.operandPointer(baseAns), idxOperand)

	if loc == LocMem {
		return Answer{Kind: AnswerMem, Reg: ptr, Type: s.Store.Node(r).Type}
	}
	val := s.newReg()
	s.emit("  %%%d = load %s, %s* %%%d", val, elemTy, elemTy, ptr)
	return Answer{Kind: AnswerReg, Reg: val, Type: s.Store.Node(r).Type}
}

func (s *State) lowerMember(r ast.Ref, loc Location) Answer {
	n := s.Store.Node(r)
	baseRef := n.Children[0]
	idx := int(n.IntVal)

	baseAns := s.LowerExpr(baseRef, LocFree)
	baseTy := s.Store.Node(baseRef).Type
	structTy := baseTy
	if s.Types.IsPointer(baseTy) {
		structTy = s.Types.ElemType(baseTy)
	}

	ptr := s.newReg()
	s.emit("  %%%d = getelementptr inbounds %s, %s* %s, i32 0, i32 %d", ptr, s.llvmType(structTy), s.llvmType(structTy), s.operandPointer(baseAns), idx)

	if loc == LocMem {
		return Answer{Kind: AnswerMem, Reg: ptr, Type: n.Type}
	}
	val := s.newReg()
	s.emit("  %%%d = load %s, %s* %%%d", val, s.llvmType(n.Type), s.llvmType(n.Type), ptr)
	return Answer{Kind: AnswerReg, Reg: val, Type: n.Type}
}

func (s *State) lowerCast(r ast.Ref) Answer {
	n := s.Store.Node(r)
	operand := s.Store.CastOperand(r)
	ans := s.LowerExpr(operand, LocFree)
	if n.Type == types.FloatID {
		reg := s.newReg()
		s.emit("  %%%d = sitofp i32 %s to double", reg, s.operandString(ans, types.IntID))
		return Answer{Kind: AnswerReg, Reg: reg, Type: types.FloatID, IsFloat: true}
	}
	reg := s.newReg()
	s.emit("  %%%d = fptosi double %s to i32", reg, s.operandString(ans, types.FloatID))
	return Answer{Kind: AnswerReg, Reg: reg, Type: types.IntID}
}

// operandPointer renders an Answer known to be a pointer (MEM or REG of
// pointer/array type) as an operand.
func (s *State) operandPointer(a Answer) string {
	switch a.Kind {
	case AnswerMem, AnswerReg:
		return fmt.Sprintf("%%%d", a.Reg)
	default:
		return "null"
	}
}

// operandString renders an Answer as a use-site operand, zero-extending
// LOGIC and spelling out constants for the given expected type.
func (s *State) operandString(a Answer, expect types.ID) string {
	switch a.Kind {
	case AnswerConst:
		if a.IsFloat {
			return fmt.Sprintf("%v", a.ConstFloat)
		}
		return fmt.Sprintf("%d", a.ConstInt)
	case AnswerLogic:
		widened := s.zextIfLogic(a)
		return fmt.Sprintf("%%%d", widened.Reg)
	case AnswerNull:
		return "null"
	default:
		return fmt.Sprintf("%%%d", a.Reg)
	}
}
