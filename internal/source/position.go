// Package source defines the position and span types shared across the
// lexer/parser/builder/emitter boundary. The lexer and parser that produce
// these values are external collaborators; this package only fixes their
// shape.
package source

import "fmt"

// Position is a single point in the original source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsZero reports whether the position was never set.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0 && p.Offset == 0
}

// Span is a half-open range [Begin, End) within the source text, attached
// to every AST node and diagnostic.
type Span struct {
	Begin Position
	End   Position
}

// String renders the span as "begin-end" when the two differ, or a single
// position otherwise.
func (s Span) String() string {
	if s.Begin == s.End {
		return s.Begin.String()
	}
	return fmt.Sprintf("%s-%s", s.Begin, s.End)
}

// Join returns the smallest span covering both a and b.
func Join(a, b Span) Span {
	begin := a.Begin
	if b.Begin.Offset < begin.Offset {
		begin = b.Begin
	}
	end := a.End
	if b.End.Offset > end.Offset {
		end = b.End
	}
	return Span{Begin: begin, End: end}
}
