package irgen

import (
	"fmt"

	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/types"
)

// lowerDecl dispatches one declaration node to its lowering rule (§4.2.5).
// global selects between the local `alloca`/`store` form and the
// top-level `@var.<id> = global ...` form.
func (s *State) lowerDecl(r ast.Ref, global bool) {
	n := s.Store.Node(r)
	switch n.Tag {
	case ast.DeclVariable:
		s.lowerVariableDecl(r, global)
	case ast.DeclArray:
		s.lowerArrayDecl(r, global)
	default:
	}
}

// lowerVariableDecl implements §4.2.5's non-array cases: a scalar/struct
// local gets an `alloca` plus an optional `store` of its initializer's
// value; a scalar/struct global becomes either an initialized `global` or
// an uninitialized `common global`.
func (s *State) lowerVariableDecl(r ast.Ref, global bool) {
	ident := s.Store.VariableDeclIdent(r)
	typ := s.Store.Node(r).Type
	init := s.Store.VariableDeclInit(r)
	llty := s.llvmType(typ)

	if s.Types.Kind(typ) == types.File {
		s.usedFileIO = true
	}

	if global {
		s.declaredGlobal[ident] = true
		name := s.varSymbol(ident)
		if !init.IsBroken() {
			ans := s.LowerExpr(init, LocFree)
			s.emit("%s = global %s %s", name, llty, s.globalConstOperand(ans, typ))
			return
		}
		s.emit("%s = common global %s %s", name, llty, s.zeroValue(typ))
		return
	}

	name := s.varSymbol(ident)
	s.emit("  %s = alloca %s", name, llty)
	if !init.IsBroken() {
		ans := s.zextIfLogic(s.LowerExpr(init, LocFree))
		s.emit("  store %s %s, %s* %s", llty, s.operandString(ans, typ), llty, name)
	}
}

// lowerArrayDecl implements §4.2.5's array cases. A static array (every
// dimension compile-time constant) allocates the full aggregate type
// directly; a dynamic array (any dimension computed at runtime, only
// the outermost dimension allowed to be) takes its own stack save
// (pushStackTicket) and allocates the flattened element count. Mixed
// partially-static/partially-dynamic bounds beyond the first dimension
// are rejected (§4.2.5).
func (s *State) lowerArrayDecl(r ast.Ref, global bool) {
	ident := s.Store.ArrayDeclIdent(r)
	typ := s.Store.Node(r).Type
	dims := s.Store.ArrayDeclDims(r)
	init := s.Store.ArrayDeclInit(r)

	elemType := typ
	for i := 0; i < len(dims); i++ {
		elemType = s.Types.ElemType(elemType)
	}

	dimVals := make([]dimValue, len(dims))
	allConst := true
	for i, d := range dims {
		n := s.Store.Node(d)
		if n.Tag == ast.ExprLiteralInt {
			dimVals[i] = dimValue{isConst: true, constN: s.Store.LiteralInt(d)}
			continue
		}
		allConst = false
		if i > 0 {
			s.fail(diag.ArrayBordersCannotBeStaticDynamic)
			return
		}
		ans := s.zextIfLogic(s.LowerExpr(d, LocFree))
		reg := ans.Reg
		if ans.Kind == AnswerConst {
			// A folded-constant dimension expression still counts as
			// dynamic here only if it arrived via a non-literal node;
			// materialize it into a register so descriptor lookups are
			// uniform.
			reg = s.newReg()
			s.emit("  %%%d = add nsw i32 %d, 0", reg, ans.ConstInt)
		}
		dimVals[i] = dimValue{reg: reg}
	}

	if len(dims) == 0 {
		s.fail(diag.SuchArrayIsNotSupported)
		return
	}

	desc := &arrayDescriptor{isStatic: allConst, elemType: elemType, dims: dimVals}
	s.arrayDescs[ident] = desc

	if global {
		s.declaredGlobal[ident] = true
		if !allConst {
			s.fail(diag.SuchArrayIsNotSupported)
			return
		}
		name := s.varSymbol(ident)
		aggTy := s.staticArrayLLVMType(desc)
		if init.IsBroken() {
			s.emit("%s = common global %s zeroinitializer", name, aggTy)
			return
		}
		s.emit("%s = global %s %s", name, aggTy, s.arrayConstInitializer(init, desc, 0))
		return
	}

	name := s.varSymbol(ident)
	if allConst {
		aggTy := s.staticArrayLLVMType(desc)
		s.emit("  %s = alloca %s", name, aggTy)
	} else {
		s.pushStackTicket()
		product := dimVals[0].reg
		for i := 1; i < len(dimVals); i++ {
			next := s.newReg()
			s.emit("  %%%d = mul nsw i32 %%%d, %d", next, product, dimVals[i].constN)
			product = next
		}
		elemTy := s.llvmType(elemType)
		s.emit("  %s = alloca %s, i32 %%%d", name, elemTy, product)
	}

	if !init.IsBroken() {
		s.lowerArrayInitializer(init, name, desc, 0)
	}
}

// lowerArrayInitializer recursively walks a nested initializer list,
// emitting a slice GEP for each index and a store of the leaf value
// (§4.2.5). at is the base pointer operand (a variable name at depth 0,
// or a previously computed slice register thereafter).
func (s *State) lowerArrayInitializer(init ast.Ref, at string, desc *arrayDescriptor, depth int) {
	elems := s.Store.InitializerElems(init)
	aggTy := s.sliceLLVMType(desc, depth)

	for i, el := range elems {
		ptr := s.newReg()
		if desc.isStatic {
			s.emit("  %%%d = getelementptr inbounds %s, %s* %s, i32 0, i32 %d", ptr, aggTy, aggTy, at, i)
		} else {
			s.emit("  %%%d = getelementptr inbounds %s, %s* %s, i32 %d", ptr, s.llvmType(desc.elemType), s.llvmType(desc.elemType), at, i)
		}
		if s.Store.Node(el).Tag == ast.ExprInitializer {
			s.lowerArrayInitializer(el, fmt.Sprintf("%%%d", ptr), desc, depth+1)
			continue
		}
		ans := s.zextIfLogic(s.LowerExpr(el, LocFree))
		elemTy := s.llvmType(s.Store.Node(el).Type)
		s.emit("  store %s %s, %s* %%%d", elemTy, s.operandString(ans, s.Store.Node(el).Type), elemTy, ptr)
	}
}

// sliceLLVMType returns the aggregate LLVM type at a given dimension
// depth (dropping `depth` leading dimensions from the full static array
// type).
func (s *State) sliceLLVMType(desc *arrayDescriptor, depth int) string {
	ty := s.llvmType(desc.elemType)
	for i := len(desc.dims) - 1; i >= depth; i-- {
		ty = fmt.Sprintf("[%d x %s]", desc.dims[i].constN, ty)
	}
	return ty
}

// arrayConstInitializer renders a fully-constant nested initializer as
// an LLVM constant-aggregate literal, for global array definitions.
func (s *State) arrayConstInitializer(init ast.Ref, desc *arrayDescriptor, depth int) string {
	aggTy := s.sliceLLVMType(desc, depth)
	elems := s.Store.InitializerElems(init)
	out := aggTy + " ["
	for i, el := range elems {
		if i > 0 {
			out += ", "
		}
		if s.Store.Node(el).Tag == ast.ExprInitializer {
			out += s.arrayConstInitializer(el, desc, depth+1)
			continue
		}
		elemTy := s.llvmType(s.Store.Node(el).Type)
		out += fmt.Sprintf("%s %s", elemTy, s.globalConstOperand(s.LowerExpr(el, LocFree), s.Store.Node(el).Type))
	}
	out += "]"
	return out
}

// globalConstOperand renders an Answer as the operand of a top-level
// `global` definition, which LLVM requires to be a compile-time
// constant (§4.2.5 only ever calls this on literal initializers).
func (s *State) globalConstOperand(a Answer, typ types.ID) string {
	switch a.Kind {
	case AnswerConst:
		if a.IsFloat {
			return fmt.Sprintf("%v", a.ConstFloat)
		}
		return fmt.Sprintf("%d", a.ConstInt)
	case AnswerNull:
		return "null"
	case AnswerStr:
		return s.stringConstOperand(a)
	default:
		return s.zeroValue(typ)
	}
}

// zeroValue is the default-initialized constant for an uninitialized
// `common global` declaration.
func (s *State) zeroValue(typ types.ID) string {
	if typ == types.FloatID {
		return "0.0"
	}
	if s.Types.IsPointer(typ) {
		return "null"
	}
	return "0"
}
