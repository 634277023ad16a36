package diag

import (
	"fmt"
	"io"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// JSONSink writes one JSON object per line, the shape a build system or
// editor integration would tail instead of parsing TextSink's prose.
// Built field-by-field with sjson rather than json.Marshal on a fixed
// struct, since Diagnostic.Args is untyped per-code and sjson happily
// sets heterogeneous values at arbitrary paths.
type JSONSink struct {
	w      io.Writer
	pretty bool
}

func NewJSONSink(w io.Writer, prettyPrint bool) *JSONSink {
	return &JSONSink{w: w, pretty: prettyPrint}
}

func (s *JSONSink) Emit(d Diagnostic) {
	line, err := s.encode(d)
	if err != nil {
		fmt.Fprintf(s.w, `{"error":%q}`+"\n", err.Error())
		return
	}
	if s.pretty {
		line = string(pretty.PrettyOptions([]byte(line), &pretty.Options{Width: 80, Indent: "  "}))
	}
	fmt.Fprintln(s.w, line)
}

func (s *JSONSink) encode(d Diagnostic) (string, error) {
	json := "{}"
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		json, err = sjson.Set(json, path, value)
	}

	set("code", d.Code.String())
	set("severity", severityName(d.Code.Severity()))
	set("message", d.Message())
	set("span.begin.line", d.Span.Begin.Line)
	set("span.begin.column", d.Span.Begin.Column)
	set("span.end.line", d.Span.End.Line)
	set("span.end.column", d.Span.End.Column)
	for i, a := range d.Args {
		set(fmt.Sprintf("args.%d", i), fmt.Sprint(a))
	}
	return json, err
}

func severityName(sev Severity) string {
	if sev == SeverityWarning {
		return "warning"
	}
	return "error"
}
