// Package irgen implements the IR Emitter of spec §4.2: a top-down walk
// of the type-annotated AST that lowers it into textual SSA-style IR
// modeled after LLVM. Grounded on the teacher's `internal/bytecode`
// compiler (a single struct threading monotonic counters through
// per-concern files) and on original_source/libs/compiler/llvmgen.c for
// the exact mnemonics and stack discipline.
package irgen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

// AnswerKind classifies the form an emitted expression's result takes
// (§4.2.1).
type AnswerKind int

const (
	AnswerNone AnswerKind = iota
	AnswerReg             // a typed SSA register, %N
	AnswerConst           // a compile-time constant
	AnswerLogic           // an i1 SSA register; must be zext'd before use as i32
	AnswerMem             // the address of a variable (an lvalue)
	AnswerStr             // a string-pool index, emitted as a getelementptr constant
	AnswerNull            // the null-pointer constant
)

// Answer is the result of lowering one expression.
type Answer struct {
	Kind AnswerKind
	Reg  int // valid for AnswerReg / AnswerLogic / AnswerMem

	IsFloat    bool
	ConstInt   int64
	ConstFloat float64

	Str symtab.StringID

	Type types.ID
}

// Location is the requested form a caller wants an expression's result
// in (§4.2.1): REG to force a value, MEM to force an address suitable
// for store, FREE to let the callee pick either.
type Location int

const (
	LocFree Location = iota
	LocReg
	LocMem
)

// arrayDescriptor is the per-function array metadata record of §3: one
// entry per declared array identifier, keyed by identifier id, holding
// whether every dimension is compile-time constant and the dimension
// list itself (constant or a register holding the runtime bound).
type arrayDescriptor struct {
	isStatic bool
	elemType types.ID
	dims     []dimValue
}

type dimValue struct {
	isConst bool
	constN  int64
	reg     int
}

// State is the emission context threaded through every lowering method,
// mirroring the teacher's Compiler struct: monotonic counters plus a
// handful of "current" fields that carry branch-target context across
// expression/statement emission without explicit parameters.
type State struct {
	Store  *ast.Store
	Types  *types.Table
	Idents *symtab.IdentTable
	Strs   *symtab.StringPool
	Sink   diag.Sink

	out *bufio.Writer

	regCounter   int
	labelCounter int
	blockCounter int

	labelTrue     int
	labelFalse    int
	labelBreak    int
	labelContinue int

	// labelTernaryEnd is the label of the block the emitter is currently
	// writing instructions into, updated every time a new block label is
	// placed (§4.2.1/§4.2.2). A ternary (or any other arm that itself
	// contains block-producing constructs, e.g. a nested ternary or a
	// short-circuiting &&/||) reads this right after lowering each arm so
	// its merging `phi` names the innermost block that actually produced
	// the arm's value, not the label the arm was entered under.
	labelTernaryEnd int

	arrayDescs map[symtab.IdentID]*arrayDescriptor

	usedAbs        bool
	usedFabs       bool
	usedStackSave  bool
	usedFileIO     bool
	usedBuiltins   map[string]bool
	declaredGlobal map[symtab.IdentID]bool

	// stackTickets is the chain of open "stack tickets" (the register
	// numbers of the %stacksave.N slots, one per dynamic array
	// allocation) for the function currently being emitted,
	// innermost last; Return walks it to restore every enclosing scope
	// (§9 open question 3).
	stackTickets []int

	// inMain is set for the duration of EmitFunction("main"): every
	// `return` lowered while it is set restores stack tickets and emits
	// `ret i32 0` directly, suppressing the user-provided return
	// expression (§4.2.3: "main is treated specially").
	inMain bool

	// terminated is true once the block currently being emitted into has
	// received its terminator (a `ret`); placeLabel clears it on entry to
	// a new block. EmitFunction's epilogue only synthesizes its own
	// trailing `ret` when the function body did not already end with one,
	// so a user `return` as the last statement of a function never
	// produces two terminators in the same block.
	terminated bool

	mipsel bool

	errorCount int
}

// New constructs an emission state writing to out.
func New(store *ast.Store, tbl *types.Table, idents *symtab.IdentTable, strs *symtab.StringPool, sink diag.Sink, out io.Writer) *State {
	return &State{
		Store:          store,
		Types:          tbl,
		Idents:         idents,
		Strs:           strs,
		Sink:           sink,
		out:            bufio.NewWriter(out),
		arrayDescs:     make(map[symtab.IdentID]*arrayDescriptor),
		usedBuiltins:   make(map[string]bool),
		declaredGlobal: make(map[symtab.IdentID]bool),
	}
}

// SetMipsel switches the target triple/datalayout pair emitted by
// emitHeader to the mipsel variant (§6: "--mipsel").
func (s *State) SetMipsel(v bool) { s.mipsel = v }

// Flush flushes the line-buffered output sink (§5: "write-only,
// line-buffered").
func (s *State) Flush() error { return s.out.Flush() }

// ErrorCount is the top-level emitter's return value: nonzero suppresses
// further pipeline stages (§7).
func (s *State) ErrorCount() int { return s.errorCount }

func (s *State) emit(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
	s.out.WriteByte('\n')
}

// fail reports a system/IR error (§7: "system errors from the emitter
// indicate implementation-limit violations and abort the current
// translation unit"). The emitter has no source span of its own to
// attach (it only ever sees already-type-checked nodes), so it reports
// against a zero span.
func (s *State) fail(code diag.Code, args ...any) {
	s.errorCount++
	s.Sink.Emit(diag.New(code, source.Span{}, args...))
}

// newReg allocates the next SSA virtual register name.
func (s *State) newReg() int {
	s.regCounter++
	return s.regCounter
}

// newLabel allocates the next generated basic-block label. Generated
// labels are non-negative; user labels are encoded as negative numbers
// by the builder (§4.2.3) so the two numberings never collide.
func (s *State) newLabel() int {
	s.labelCounter++
	return s.labelCounter
}

// placeLabel emits a block label and records it as labelTernaryEnd, the
// block the emitter is now writing into. Every block-opening label in
// the emitter goes through here so a ternary (or any other arm) can
// recover the block that actually produced its value, even when that
// arm itself lowered through a nested ternary or a short-circuiting
// &&/|| that ends in a block of its own.
func (s *State) placeLabel(n int) {
	s.emit("lbl%d:", n)
	s.labelTernaryEnd = n
	s.terminated = false
}

// enterBlock allocates a fresh stack-ticket number for one compound
// scope (§5) and returns it; it is not pushed onto stackTickets until
// the caller confirms the scope actually allocated a dynamic array.
func (s *State) enterBlock() int {
	s.blockCounter++
	return s.blockCounter
}

func (s *State) llvmType(t types.ID) string {
	switch s.Types.Kind(t) {
	case types.Void:
		return "void"
	case types.Bool:
		return "i1"
	case types.Char:
		return "i8"
	case types.Int, types.Enum, types.EnumField:
		return "i32"
	case types.Float:
		return "double"
	case types.NullPointer:
		return "i8*"
	case types.Pointer:
		return s.llvmType(s.Types.ElemType(t)) + "*"
	case types.Array:
		return s.llvmType(s.Types.ElemType(t)) + "*"
	case types.Struct:
		return fmt.Sprintf("%%struct_opt.%d", t)
	case types.File:
		return "%struct._IO_FILE*"
	default:
		return "i32"
	}
}

// zextIfLogic widens an i1 LOGIC answer to i32, the idiom every binary
// operand and call argument passes through before use (§4.2.2).
func (s *State) zextIfLogic(a Answer) Answer {
	if a.Kind != AnswerLogic {
		return a
	}
	r := s.newReg()
	s.emit("  %%%d = zext i1 %%%d to i32", r, a.Reg)
	return Answer{Kind: AnswerReg, Reg: r, Type: types.IntID}
}
