package irgen

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/types"
)

// lowerUnary implements the unary-expression lowering rules of §4.2.2:
// pre/post inc/dec via load-arith-store, address-of/indirection by
// toggling the requested location, abs via a runtime intrinsic call, and
// upb via the array descriptor recorded at declaration time.
func (s *State) lowerUnary(r ast.Ref, loc Location) Answer {
	n := s.Store.Node(r)
	operand := s.Store.UnaryOperand(r)

	switch n.Op {
	case "++pre", "--pre", "++post", "--post":
		return s.lowerIncDec(n.Op, operand, n.Type)
	case "&":
		return s.LowerExpr(operand, LocMem)
	case "*":
		ptrAns := s.LowerExpr(operand, LocFree)
		if loc == LocMem {
			return Answer{Kind: AnswerMem, Reg: ptrAns.Reg, Type: n.Type}
		}
		val := s.newReg()
		s.emit("  %%%d = load %s, %s* %s", val, s.llvmType(n.Type), s.llvmType(n.Type), s.operandPointer(ptrAns))
		return Answer{Kind: AnswerReg, Reg: val, Type: n.Type}
	case "abs":
		ans := s.LowerExpr(operand, LocFree)
		reg := s.newReg()
		if n.Type == types.FloatID {
			s.usedFabs = true
			s.emit("  %%%d = call double @llvm.fabs.f64(double %s)", reg, s.operandString(ans, types.FloatID))
			return Answer{Kind: AnswerReg, Reg: reg, Type: types.FloatID}
		}
		s.usedAbs = true
		s.emit("  %%%d = call i32 @abs(i32 %s)", reg, s.operandString(ans, types.IntID))
		return Answer{Kind: AnswerReg, Reg: reg, Type: types.IntID}
	case "-":
		ans := s.LowerExpr(operand, LocFree)
		reg := s.newReg()
		if n.Type == types.FloatID {
			s.emit("  %%%d = fsub double 0.0, %s", reg, s.operandString(ans, types.FloatID))
		} else {
			s.emit("  %%%d = sub nsw i32 0, %s", reg, s.operandString(ans, types.IntID))
		}
		return Answer{Kind: AnswerReg, Reg: reg, Type: n.Type}
	case "~":
		ans := s.LowerExpr(operand, LocFree)
		reg := s.newReg()
		s.emit("  %%%d = xor i32 %s, -1", reg, s.operandString(ans, types.IntID))
		return Answer{Kind: AnswerReg, Reg: reg, Type: types.IntID}
	case "!":
		ans := s.zextIfLogic(s.LowerExpr(operand, LocFree))
		reg := s.newReg()
		s.emit("  %%%d = icmp eq i32 %s, 0", reg, s.operandString(ans, types.IntID))
		return Answer{Kind: AnswerLogic, Reg: reg, Type: types.BoolID}
	case "upb":
		return s.lowerUpb(operand)
	default:
		return Answer{}
	}
}

// lowerIncDec implements load -> add/sub 1 (or +/-1.0 for float) ->
// store; pre-forms answer with the new value, post-forms with the
// loaded (old) value (§4.2.2).
func (s *State) lowerIncDec(op string, operand ast.Ref, typ types.ID) Answer {
	addr := s.LowerExpr(operand, LocMem)
	old := s.newReg()
	s.emit("  %%%d = load %s, %s* %s", old, s.llvmType(typ), s.llvmType(typ), s.operandPointer(addr))

	sign := "add nsw"
	delta := "1"
	if op == "--pre" || op == "--post" {
		sign = "sub nsw"
	}
	if typ == types.FloatID {
		sign = "fadd"
		delta = "1.0"
		if op == "--pre" || op == "--post" {
			sign = "fsub"
		}
	}

	updated := s.newReg()
	s.emit("  %%%d = %s %s %%%d, %s", updated, sign, s.llvmType(typ), old, delta)
	s.emit("  store %s %%%d, %s* %s", s.llvmType(typ), updated, s.llvmType(typ), s.operandPointer(addr))

	if op == "++pre" || op == "--pre" {
		return Answer{Kind: AnswerReg, Reg: updated, Type: typ}
	}
	return Answer{Kind: AnswerReg, Reg: old, Type: typ}
}

// lowerUpb emits the array-descriptor lookup backing the `upb` operator:
// a constant for a static dimension, or the register the dynamic bound
// was computed into.
func (s *State) lowerUpb(operand ast.Ref) Answer {
	n := s.Store.Node(operand)
	desc := s.arrayDescs[n.Ident]
	if desc == nil || len(desc.dims) == 0 {
		s.fail(diag.SuchArrayIsNotSupported)
		return Answer{Kind: AnswerConst, ConstInt: 0, Type: types.IntID}
	}
	d := desc.dims[0]
	if d.isConst {
		return Answer{Kind: AnswerConst, ConstInt: d.constN, Type: types.IntID}
	}
	return Answer{Kind: AnswerReg, Reg: d.reg, Type: types.IntID}
}
