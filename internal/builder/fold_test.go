package builder

import (
	"testing"

	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/types"
)

// TestBinaryFoldsIntegerLiterals checks §4.1.4's constant folding for
// arithmetic binary operators: `2 + 3` on two int literals collapses to
// a single literal node and both operand subtrees are removed (§8
// invariant 2, scenario 1).
func TestBinaryFoldsIntegerLiterals(t *testing.T) {
	b, bag := newFixture()
	sum := b.Binary("+", b.LiteralInt(2, sp), b.LiteralInt(3, sp), sp)
	if sum.IsBroken() {
		t.Fatalf("Binary(+) broken, diagnostics: %v", bag.All())
	}
	n := b.Store.Node(sum)
	if n.Tag != ast.ExprLiteralInt {
		t.Fatalf("expected a folded integer literal, got tag %v", n.Tag)
	}
	if got := b.Store.LiteralInt(sum); got != 5 {
		t.Fatalf("folded value = %d, want 5", got)
	}
}

// TestBinaryDoesNotFoldNonLiteralOperands ensures folding only triggers
// when both operands are literals; an identifier operand must produce a
// real binary node.
func TestBinaryDoesNotFoldNonLiteralOperands(t *testing.T) {
	b, bag := newFixture()
	_, id := b.VariableDecl("x", types.IntID, ast.Broken, true, sp)
	xRef := b.Store.NewIdentifier(id, types.IntID, ast.LValue, sp)

	sum := b.Binary("+", xRef, b.LiteralInt(3, sp), sp)
	if sum.IsBroken() {
		t.Fatalf("Binary(+) broken, diagnostics: %v", bag.All())
	}
	if b.Store.Node(sum).Tag == ast.ExprLiteralInt {
		t.Fatalf("binary with a non-literal operand must not fold")
	}
}

// TestModuloByZeroLiteralDoesNotFold exercises §4.1.4/§9's open question:
// division/remainder by a literal zero is left unfolded rather than
// folding to an undefined value.
func TestModuloByZeroLiteralDoesNotFold(t *testing.T) {
	b, bag := newFixture()
	rem := b.Binary("%", b.LiteralInt(10, sp), b.LiteralInt(0, sp), sp)
	if rem.IsBroken() {
		t.Fatalf("Binary(%%) broken, diagnostics: %v", bag.All())
	}
	if b.Store.Node(rem).Tag == ast.ExprLiteralInt {
		t.Fatalf("modulo by a literal zero must not fold")
	}
}

// TestArithMinusFoldsLiteralOperand checks §4.1.3's unary constant
// folding: `-5` on a literal collapses to a literal and removes the
// operand subtree.
func TestArithMinusFoldsLiteralOperand(t *testing.T) {
	b, bag := newFixture()
	neg := b.ArithMinus(b.LiteralInt(5, sp), sp)
	if neg.IsBroken() {
		t.Fatalf("ArithMinus broken, diagnostics: %v", bag.All())
	}
	if got := b.Store.LiteralInt(neg); got != -5 {
		t.Fatalf("folded value = %d, want -5", got)
	}
}

// TestLogicalNotFoldsToBoolLiteral checks that `!0` on a literal folds
// directly to a bool literal rather than a unary node.
func TestLogicalNotFoldsToBoolLiteral(t *testing.T) {
	b, bag := newFixture()
	not := b.LogicalNot(b.LiteralInt(0, sp), sp)
	if not.IsBroken() {
		t.Fatalf("LogicalNot broken, diagnostics: %v", bag.All())
	}
	if b.Store.Node(not).Tag != ast.ExprLiteralBool {
		t.Fatalf("expected a folded bool literal, got tag %v", b.Store.Node(not).Tag)
	}
}

// TestCastIsIdempotent checks §8 invariant 8: casting an already-cast
// expression to the same target type is a no-op, not a second cast node.
func TestCastIsIdempotent(t *testing.T) {
	b, _ := newFixture()
	_, id := b.VariableDecl("x", types.IntID, ast.Broken, true, sp)
	xRef := b.Store.NewIdentifier(id, types.IntID, ast.LValue, sp)

	once := b.Cast(types.FloatID, xRef, sp)
	twice := b.Cast(types.FloatID, once, sp)
	if once != twice {
		t.Fatalf("Cast(T, Cast(T, e)) = %v, want idempotent %v", twice, once)
	}
}

// TestCastRewritesIntLiteralInPlace checks §4.1.2: `build_cast(float,
// intLiteral)` rewrites to a float literal carrying the converted value
// rather than wrapping a cast node around the int.
func TestCastRewritesIntLiteralInPlace(t *testing.T) {
	b, _ := newFixture()
	lit := b.LiteralInt(1, sp)
	casted := b.Cast(types.FloatID, lit, sp)
	if casted != lit {
		t.Fatalf("cast allocated a new node %v instead of rewriting %v", casted, lit)
	}
	n := b.Store.Node(casted)
	if n.Tag != ast.ExprLiteralFloat {
		t.Fatalf("expected a rewritten float literal, got tag %v", n.Tag)
	}
	if got := b.Store.LiteralFloat(casted); got != 1.0 {
		t.Fatalf("converted literal value = %v, want 1.0", got)
	}
}

// TestPrintfRejectsPlaceholderArgcMismatch checks §4.1.5: the number of
// %-placeholders must equal argc-1.
func TestPrintfRejectsPlaceholderArgcMismatch(t *testing.T) {
	b, _ := newFixture()
	fmtArg := b.LiteralString("%i %i", sp)
	call := b.Printf([]ast.Ref{fmtArg, b.LiteralInt(1, sp)}, sp)
	if !call.IsBroken() {
		t.Fatalf("printf with 2 specifiers and 1 argument should be broken")
	}
}

// TestPrintfAcceptsCyrillicSpecifiers checks §4.1.5's Cyrillic specifier
// aliases (ц/л/в/с alongside i/c/f/s).
func TestPrintfAcceptsCyrillicSpecifiers(t *testing.T) {
	b, bag := newFixture()
	fmtArg := b.LiteralString("ц = %ц", sp)
	call := b.Printf([]ast.Ref{fmtArg, b.LiteralInt(7, sp)}, sp)
	if call.IsBroken() {
		t.Fatalf("printf with a Cyrillic specifier broken, diagnostics: %v", bag.All())
	}
}

// TestPrintfRejectsTooManyPlaceholders checks the §8 boundary: the
// 20-placeholder limit is hit exactly at the 21st.
func TestPrintfRejectsTooManyPlaceholders(t *testing.T) {
	b, _ := newFixture()

	format := ""
	var callArgs []ast.Ref
	for i := 0; i < 21; i++ {
		format += "%i "
		callArgs = append(callArgs, b.LiteralInt(int64(i), sp))
	}
	fmtArg := b.LiteralString(format, sp)
	full := append([]ast.Ref{fmtArg}, callArgs...)

	call := b.Printf(full, sp)
	if !call.IsBroken() {
		t.Fatalf("printf with 21 placeholders should exceed the limit")
	}
}

// TestPrintfAllowsExactlyTwentyPlaceholders is the boundary's other edge:
// 20 placeholders with 20 arguments must succeed.
func TestPrintfAllowsExactlyTwentyPlaceholders(t *testing.T) {
	b, bag := newFixture()

	format := ""
	var callArgs []ast.Ref
	for i := 0; i < 20; i++ {
		format += "%i "
		callArgs = append(callArgs, b.LiteralInt(int64(i), sp))
	}
	fmtArg := b.LiteralString(format, sp)
	full := append([]ast.Ref{fmtArg}, callArgs...)

	call := b.Printf(full, sp)
	if call.IsBroken() {
		t.Fatalf("printf with exactly 20 placeholders should succeed, diagnostics: %v", bag.All())
	}
}
