package irgen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Mexanobar/RuC/internal/demo"
	"github.com/Mexanobar/RuC/internal/irgen"
	"github.com/gkampitakis/go-snaps/snaps"
)

// buildAndEmit drives a registered demo program all the way through
// internal/builder and internal/irgen, the same path cmd/rucc's `emit`
// subcommand uses, and returns the finished IR text.
func buildAndEmit(t *testing.T, name string) string {
	t.Helper()

	unit, err := demo.Build(name)
	if err != nil {
		t.Fatalf("demo.Build(%q): %v", name, err)
	}
	if unit.Diags.HasErrors() {
		t.Fatalf("demo.Build(%q) produced diagnostics: %v", name, unit.Diags.All())
	}

	var buf bytes.Buffer
	state := irgen.New(unit.Store, unit.Types, unit.Idents, unit.Strs, unit.Diags, &buf)
	state.EmitProgram(unit.Program)
	if err := state.Flush(); err != nil {
		t.Fatalf("Flush(): %v", err)
	}
	if state.ErrorCount() > 0 {
		t.Fatalf("EmitProgram(%q) reported %d error(s)", name, state.ErrorCount())
	}
	return buf.String()
}

// TestDemoProgramsEmitIR golden-snapshots the textual IR of every
// registered sample translation unit, one snapshot per program, the
// teacher's own go-snaps style applied to this emitter's textual output
// instead of bytecode disassembly.
func TestDemoProgramsEmitIR(t *testing.T) {
	for _, name := range demo.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			out := buildAndEmit(t, name)
			snaps.MatchSnapshot(t, out)
		})
	}
}

// TestHelloFoldsConstantInitializer checks scenario 1 of §8: `2 + 3` is
// folded before emission reaches the store, so the IR never mentions an
// `add` instruction for x's initializer, only the folded literal.
func TestHelloFoldsConstantInitializer(t *testing.T) {
	out := buildAndEmit(t, "hello")
	if strings.Contains(out, "add nsw i32 2, 3") {
		t.Fatalf("expected constant-folded store, found an unfolded add:\n%s", out)
	}
	if !strings.Contains(out, "store i32 5,") {
		t.Fatalf("expected `store i32 5,` for the folded x initializer:\n%s", out)
	}
}

// TestHelloConvertsIntLiteralInitializer checks scenario 2 of §8: `float
// f = 1;` inserts an int->float cast that rewrites the literal in place,
// so IR stores a double 1.0, never an i32.
func TestHelloConvertsIntLiteralInitializer(t *testing.T) {
	out := buildAndEmit(t, "hello")
	if !strings.Contains(out, "store double 1") {
		t.Fatalf("expected `store double 1...` for f's converted initializer:\n%s", out)
	}
}

// TestDynArrayBalancesStackSaveRestore checks invariant 4/5 of §8: a
// function containing a dynamic array emits exactly one stacksave paired
// with a stackrestore on every return path.
func TestDynArrayBalancesStackSaveRestore(t *testing.T) {
	out := buildAndEmit(t, "dynarray")

	saves := strings.Count(out, "call i8* @llvm.stacksave()")
	restores := strings.Count(out, "call void @llvm.stackrestore(")
	if saves == 0 {
		t.Fatalf("expected at least one stacksave for a function with a dynamic array:\n%s", out)
	}
	if saves != restores {
		t.Fatalf("stacksave/stackrestore count mismatch: %d saves, %d restores:\n%s", saves, restores, out)
	}
	if !strings.Contains(out, "declare i8* @llvm.stacksave()") || !strings.Contains(out, "declare void @llvm.stackrestore(i8*)") {
		t.Fatalf("expected trailing stacksave/stackrestore declares:\n%s", out)
	}
}

// TestTernaryEmitsPhi checks scenario 6 of §8: a ternary with one int arm
// and one float arm converts both arms to float and merges them with a
// trailing `phi double`.
func TestTernaryEmitsPhi(t *testing.T) {
	out := buildAndEmit(t, "ternary")
	if !strings.Contains(out, "phi double") {
		t.Fatalf("expected a `phi double` merge for the ternary, got:\n%s", out)
	}
}

// TestArrayPrintDesugarsIntoLoop checks scenario 5 of §8: `print(a)` over
// an int[3] emits a loop nest rather than a single printf call.
func TestArrayPrintDesugarsIntoLoop(t *testing.T) {
	out := buildAndEmit(t, "arrprint")
	if !strings.Contains(out, "icmp") || !strings.Contains(out, "br i1") {
		t.Fatalf("expected a loop (icmp + conditional br) desugared from print(a):\n%s", out)
	}
	if strings.Count(out, `call i32 @printf(`) < 2 {
		t.Fatalf("expected multiple printf calls from the desugared element loop:\n%s", out)
	}
}

// TestMipselTargetHeader exercises the --mipsel alternate target triple
// of §6.
func TestMipselTargetHeader(t *testing.T) {
	unit, err := demo.Build("hello")
	if err != nil {
		t.Fatalf("demo.Build: %v", err)
	}
	var buf bytes.Buffer
	state := irgen.New(unit.Store, unit.Types, unit.Idents, unit.Strs, unit.Diags, &buf)
	state.SetMipsel(true)
	state.EmitProgram(unit.Program)
	if err := state.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `target triple = "mipsel"`) {
		t.Fatalf("expected mipsel target triple, got:\n%s", out)
	}
}
