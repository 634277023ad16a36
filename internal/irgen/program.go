package irgen

import (
	"fmt"

	"github.com/Mexanobar/RuC/internal/ast"
)

// Program is the whole of one translation unit's worth of top-level
// declarations, in source order, handed to EmitProgram.
type Program struct {
	Globals   []ast.Ref
	Functions []ast.Ref
}

// EmitProgram is the top-level driver of §4.2: target header, struct
// type definitions, string-pool globals, runtime stubs, every global
// variable/array, every function body, then the trailing `declare` lines
// for whatever intrinsics and library functions the walk discovered were
// actually used (§4.2.7 — the declare set is only known after the walk,
// so it is emitted last even though it reads textually first in most
// compiler output; this emitter instead follows original_source's
// llvmgen.c ordering of emitting declares at the very end of the unit).
func (s *State) EmitProgram(p Program) {
	s.emitHeader()
	s.emitStructDefs()
	s.emitStringPool()
	s.emitRuntimeStubs()

	for _, g := range p.Globals {
		s.lowerDecl(g, true)
	}
	for _, fn := range p.Functions {
		s.EmitFunction(fn)
	}

	s.emitTrailingDeclares()
}

// emitHeader writes the target datalayout/triple pair (§6): the
// x86_64-pc-linux-gnu default, or the mipsel alternative under
// `--mipsel`.
func (s *State) emitHeader() {
	if s.mipsel {
		s.emit(`target datalayout = "e-m:m-p:32:32-i8:8:32-i16:16:32-i64:64-n32-S64"`)
		s.emit(`target triple = "mipsel"`)
	} else {
		s.emit(`target datalayout = "e-m:e-i64:64-f80:128-n8:16:32:64-S128"`)
		s.emit(`target triple = "x86_64-pc-linux-gnu"`)
	}
	s.emit("")
}

// emitStructDefs declares one `%struct_opt.<n> = type { ... }` per
// struct type the type table has allocated, in id order (§6).
func (s *State) emitStructDefs() {
	for id := s.Types.FirstDynamicID(); id < s.Types.NextID(); id++ {
		if !s.Types.IsStruct(id) {
			continue
		}
		fields := s.Types.Fields(id)
		out := fmt.Sprintf("%%struct_opt.%d = type { ", int(id))
		for i, f := range fields {
			if i > 0 {
				out += ", "
			}
			out += s.llvmType(f.Type)
		}
		out += " }"
		s.emit(out)
	}
	s.emit(" ")
}

// emitStringPool declares one private unnamed_addr constant per interned
// string-literal value, escaping newlines the way original_source
// llvmgen.c's `strings_declaration` does (§6).
func (s *State) emitStringPool() {
	for i, str := range s.Strs.All() {
		n := len(str) + 1
		s.emit(`@.str.%d = private unnamed_addr constant [%d x i8] c"%s\00", align 1`, i, n, escapeIRString(str))
	}
	s.emit(" ")
}

func escapeIRString(str string) string {
	out := make([]byte, 0, len(str))
	for i := 0; i < len(str); i++ {
		if str[i] == '\n' {
			out = append(out, []byte(`\0A`)...)
			continue
		}
		out = append(out, str[i])
	}
	return string(out)
}

// emitRuntimeStubs emits the handwritten `assert`/`print`/`printid`/
// `getid` bodies verbatim in the wording of original_source
// llvmgen.c's `runtime`, always — every translation unit links against
// them regardless of whether this particular program calls them.
func (s *State) emitRuntimeStubs() {
	s.emit(`@.str = private unnamed_addr constant [3 x i8] c"%%s\00", align 1`)
	s.emit(`define void @assert(i32, i8*) {`)
	s.emit(`  %%3 = alloca i32, align 4`)
	s.emit(`  %%4 = alloca i8*, align 8`)
	s.emit(`  store i32 %%0, i32* %%3, align 4`)
	s.emit(`  store i8* %%1, i8** %%4, align 8`)
	s.emit(`  %%5 = load i32, i32* %%3, align 4`)
	s.emit(`  %%6 = icmp ne i32 %%5, 0`)
	s.emit(`  br i1 %%6, label %%10, label %%7`)
	s.emit(`%%7:`)
	s.emit(`  %%8 = load i8*, i8** %%4, align 8`)
	s.emit(`  %%9 = call i32 (i8*, ...) @printf(i8* getelementptr inbounds ([3 x i8], [3 x i8]* @.str, i32 0, i32 0), i8* %%8)`)
	s.emit(`  call void @exit(i32 1)`)
	s.emit(`  unreachable`)
	s.emit(`%%10:`)
	s.emit(`  ret void`)
	s.emit(`}`)
	s.emit(`declare void @exit(i32)`)
	s.emit("")

	s.emit(`define void @print(...) {`)
	s.emit(`  ret void`)
	s.emit(`}`)
	s.emit(`define void @printid(...) {`)
	s.emit(`  ret void`)
	s.emit(`}`)
	s.emit(`define void @getid(...) {`)
	s.emit(`  ret void`)
	s.emit(`}`)
	s.emit("")

	s.usedBuiltins["printf"] = true
}

// emitTrailingDeclares emits, in a stable order, the `declare` lines for
// every intrinsic or library routine the walk discovered it needed
// (§4.2.7): `llvm.stacksave`/`llvm.stackrestore` if any dynamic array was
// emitted, the `%struct._IO_FILE` stub if file I/O was used, `@abs`/
// `@llvm.fabs.f64` on demand, and `printf` (the only non-handwritten
// builtin this dialect's surface actually calls through to the C
// runtime; `print`/`printid`/`getid`/`assert` have handwritten bodies
// above and must never also get a `declare`).
func (s *State) emitTrailingDeclares() {
	if s.usedStackSave {
		s.emit(`declare i8* @llvm.stacksave()`)
		s.emit(`declare void @llvm.stackrestore(i8*)`)
	}

	if s.usedFileIO {
		s.emit(`%struct._IO_FILE = type { i32, i8*, i8*, i8*, i8*, i8*, i8*, i8*, i8*, i8*, i8*, i8*, ` +
			`%struct._IO_marker*, %struct._IO_FILE*, i32, i32, i64, i16, i8, [1 x i8], i8*, i64, i8*, i8*, i8*, i8*, ` +
			`i64, i32, [20 x i8] }`)
		s.emit(`%struct._IO_marker = type { %struct._IO_marker*, %struct._IO_FILE*, i32 }`)
	}

	if s.usedAbs {
		s.emit(`declare i32 @abs(i32)`)
	}
	if s.usedFabs {
		s.emit(`declare double @llvm.fabs.f64(double)`)
	}

	if s.usedBuiltins["printf"] {
		s.emit(`declare i32 @printf(i8*, ...)`)
	}
}
