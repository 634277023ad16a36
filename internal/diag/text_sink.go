package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/Mexanobar/RuC/internal/source"
)

// TextSink writes human-readable diagnostics with a source snippet and a
// caret under the offending column, the way the teacher's
// CompilerError.Format does.
type TextSink struct {
	w     io.Writer
	file  *source.File
	color bool
	n     int
}

func NewTextSink(w io.Writer, file *source.File, color bool) *TextSink {
	return &TextSink{w: w, file: file, color: color}
}

func (s *TextSink) Emit(d Diagnostic) {
	s.n++
	fmt.Fprint(s.w, s.format(d))
}

func (s *TextSink) format(d Diagnostic) string {
	var sb strings.Builder

	kind := "error"
	if d.Code.Severity() == SeverityWarning {
		kind = "warning"
	}

	if s.file != nil && s.file.Name != "" {
		fmt.Fprintf(&sb, "%s: %s in %s:%s\n", kind, d.Code.String(), s.file.Name, d.Span.Begin)
	} else {
		fmt.Fprintf(&sb, "%s: %s at %s\n", kind, d.Code.String(), d.Span.Begin)
	}

	line := s.file.Line(d.Span.Begin.Line)
	if line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Span.Begin.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Span.Begin.Column-1))
		if s.color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if s.color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if s.color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message())
	if s.color {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")

	return sb.String()
}

// Count returns how many diagnostics this sink has written, regardless
// of severity.
func (s *TextSink) Count() int { return s.n }
