package diag

import (
	"fmt"

	"github.com/Mexanobar/RuC/internal/source"
)

// Diagnostic is one reported error or warning. Args are interpolated
// into the Code's message template in Format/Message, in order.
type Diagnostic struct {
	Code Code
	Span source.Span
	Args []any
}

// New constructs a Diagnostic. Builder and irgen call this at the point
// an invariant fails, then hand the result to a Sink and return Broken.
func New(code Code, span source.Span, args ...any) Diagnostic {
	return Diagnostic{Code: code, Span: span, Args: args}
}

// Message renders the diagnostic's text without position context.
func (d Diagnostic) Message() string {
	tmpl, ok := messages[d.Code]
	if !ok {
		return d.Code.String()
	}
	if len(d.Args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, d.Args...)
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Span.Begin.String(), d.Message())
}
