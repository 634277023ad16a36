package irgen

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/types"
)

var intMnemonic = map[string]string{
	"+": "add nsw", "-": "sub nsw", "*": "mul nsw", "/": "sdiv", "%": "srem",
	"<<": "shl", ">>": "ashr", "&": "and", "^": "xor", "|": "or",
}

var floatMnemonic = map[string]string{
	"+": "fadd", "-": "fsub", "*": "fmul", "/": "fdiv",
}

var intCmp = map[string]string{
	"<": "slt", ">": "sgt", "<=": "sle", ">=": "sge", "==": "eq", "!=": "ne",
}

var floatCmp = map[string]string{
	"<": "olt", ">": "ogt", "<=": "ole", ">=": "oge", "==": "oeq", "!=": "one",
}

// lowerBinary dispatches a binary node to assignment, logical
// short-circuit, or a plain arithmetic/bitwise/relational/equality
// instruction (§4.2.2).
func (s *State) lowerBinary(r ast.Ref, loc Location) Answer {
	n := s.Store.Node(r)
	lhs := s.Store.BinaryLHS(r)
	rhs := s.Store.BinaryRHS(r)

	switch n.Op {
	case "=":
		return s.lowerAssign(lhs, rhs, n.Type)
	case ",":
		s.LowerExpr(lhs, LocFree)
		return s.LowerExpr(rhs, loc)
	case "&&", "||":
		return s.lowerLogical(n.Op, lhs, rhs)
	}

	if len(n.Op) > 1 && n.Op[len(n.Op)-1] == '=' && n.Op != "==" && n.Op != "!=" && n.Op != "<=" && n.Op != ">=" {
		return s.lowerCompoundAssign(n.Op[:len(n.Op)-1], lhs, rhs, n.Type)
	}

	lAns := s.zextIfLogic(s.LowerExpr(lhs, LocFree))
	rAns := s.zextIfLogic(s.LowerExpr(rhs, LocFree))
	operandTy := s.Store.Node(lhs).Type

	if mnem, ok := intCmp[n.Op]; ok {
		reg := s.newReg()
		if operandTy == types.FloatID {
			s.emit("  %%%d = fcmp %s double %s, %s", reg, floatCmp[n.Op], s.operandString(lAns, types.FloatID), s.operandString(rAns, types.FloatID))
		} else {
			s.emit("  %%%d = icmp %s i32 %s, %s", reg, mnem, s.operandString(lAns, types.IntID), s.operandString(rAns, types.IntID))
		}
		return Answer{Kind: AnswerLogic, Reg: reg, Type: types.BoolID}
	}

	reg := s.newReg()
	if operandTy == types.FloatID {
		s.emit("  %%%d = %s double %s, %s", reg, floatMnemonic[n.Op], s.operandString(lAns, types.FloatID), s.operandString(rAns, types.FloatID))
	} else {
		s.emit("  %%%d = %s i32 %s, %s", reg, intMnemonic[n.Op], s.operandString(lAns, types.IntID), s.operandString(rAns, types.IntID))
	}
	return Answer{Kind: AnswerReg, Reg: reg, Type: n.Type}
}

// lowerAssign stores rhs into lhs's address and answers the stored
// value, per §4.2.2: the LHS is re-entered with LocMem to obtain the
// target address.
func (s *State) lowerAssign(lhs, rhs ast.Ref, typ types.ID) Answer {
	if s.Types.IsArray(typ) {
		// An array identifier assigned from another one shares its bounds,
		// so later upb queries on the target find a descriptor.
		ln, rn := s.Store.Node(lhs), s.Store.Node(rhs)
		if ln.Tag == ast.ExprIdentifier && rn.Tag == ast.ExprIdentifier {
			if d := s.arrayDescs[rn.Ident]; d != nil {
				s.arrayDescs[ln.Ident] = d
			}
		}
	}
	rAns := s.zextIfLogic(s.LowerExpr(rhs, LocFree))
	addr := s.LowerExpr(lhs, LocMem)
	s.emit("  store %s %s, %s* %s", s.llvmType(typ), s.operandString(rAns, typ), s.llvmType(typ), s.operandPointer(addr))
	return rAns
}

// lowerCompoundAssign loads lhs, applies op, stores the result (§4.2.2).
func (s *State) lowerCompoundAssign(op string, lhs, rhs ast.Ref, typ types.ID) Answer {
	addr := s.LowerExpr(lhs, LocMem)
	old := s.newReg()
	s.emit("  %%%d = load %s, %s* %s", old, s.llvmType(typ), s.llvmType(typ), s.operandPointer(addr))
	rAns := s.zextIfLogic(s.LowerExpr(rhs, LocFree))

	result := s.newReg()
	if typ == types.FloatID {
		s.emit("  %%%d = %s double %%%d, %s", result, floatMnemonic[op], old, s.operandString(rAns, types.FloatID))
	} else {
		s.emit("  %%%d = %s i32 %%%d, %s", result, intMnemonic[op], old, s.operandString(rAns, types.IntID))
	}
	s.emit("  store %s %%%d, %s* %s", s.llvmType(typ), result, s.llvmType(typ), s.operandPointer(addr))
	return Answer{Kind: AnswerReg, Reg: result, Type: typ}
}

// lowerLogical implements short-circuit &&/|| via a freshly allocated
// label_next, per §4.2.2: for || label_false becomes label_next while
// lowering the LHS, and vice versa for &&.
func (s *State) lowerLogical(op string, lhs, rhs ast.Ref) Answer {
	next := s.newLabel()
	shortCircuit := s.newLabel()
	savedTrue, savedFalse := s.labelTrue, s.labelFalse

	resultAddr := s.newReg()
	s.emit("  %%%d = alloca i1", resultAddr)

	if op == "||" {
		s.labelTrue, s.labelFalse = shortCircuit, next
	} else {
		s.labelTrue, s.labelFalse = next, shortCircuit
	}
	s.checkTypeAndBranch(s.LowerExpr(lhs, LocFree))
	s.labelTrue, s.labelFalse = savedTrue, savedFalse

	s.placeLabel(shortCircuit)
	shortVal := "1"
	if op == "&&" {
		shortVal = "0"
	}
	s.emit("  store i1 %s, i1* %%%d", shortVal, resultAddr)
	end := s.newLabel()
	s.emit("  br label %%lbl%d", end)

	s.placeLabel(next)
	rAns := s.zextIfLogic(s.LowerExpr(rhs, LocFree))
	rLogic := s.newReg()
	s.emit("  %%%d = icmp ne i32 %s, 0", rLogic, s.operandString(rAns, types.IntID))
	s.emit("  store i1 %%%d, i1* %%%d", rLogic, resultAddr)
	s.emit("  br label %%lbl%d", end)

	s.placeLabel(end)
	final := s.newReg()
	s.emit("  %%%d = load i1, i1* %%%d", final, resultAddr)
	return Answer{Kind: AnswerLogic, Reg: final, Type: types.BoolID}
}
