package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Mexanobar/RuC/internal/source"
	"github.com/tidwall/gjson"
)

func TestBagCountsOnlyErrors(t *testing.T) {
	bag := NewBag()
	bag.Emit(New(UseOfUndeclaredIdentifier, source.Span{}, "x"))
	bag.Emit(New(VariableDeviation, source.Span{}))
	bag.Emit(New(CaseExprNotInteger, source.Span{}))

	if bag.ErrorCount() != 2 {
		t.Fatalf("ErrorCount() = %d, want 2", bag.ErrorCount())
	}
	if len(bag.All()) != 3 {
		t.Fatalf("All() = %d diagnostics, want 3", len(bag.All()))
	}
	if !bag.HasErrors() {
		t.Fatalf("HasErrors() = false, want true")
	}
}

func TestMessageInterpolation(t *testing.T) {
	d := New(UseOfUndeclaredIdentifier, source.Span{}, "foo")
	if got, want := d.Message(), "use of undeclared identifier 'foo'"; got != want {
		t.Fatalf("Message() = %q, want %q", got, want)
	}
}

func TestTextSinkRendersCaretUnderColumn(t *testing.T) {
	file := source.NewFile("a.c", "int main() {\n  return undeclared;\n}\n")
	var buf bytes.Buffer
	sink := NewTextSink(&buf, file, false)

	span := source.Span{Begin: source.Position{Line: 2, Column: 10, Offset: 0}}
	sink.Emit(New(UseOfUndeclaredIdentifier, span, "undeclared"))

	out := buf.String()
	if !strings.Contains(out, "use of undeclared identifier 'undeclared'") {
		t.Fatalf("output missing message: %q", out)
	}
	if !strings.Contains(out, "return undeclared;") {
		t.Fatalf("output missing source line: %q", out)
	}
	// "   2 | " is 7 columns wide, so column 10 sits after 16 spaces.
	if !strings.Contains(out, "\n"+strings.Repeat(" ", 16)+"^\n") {
		t.Fatalf("caret not under column 10 of the source line: %q", out)
	}
	if sink.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", sink.Count())
	}
}

func TestTextSinkMarksWarningsDistinctly(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf, nil, false)
	sink.Emit(New(VariableDeviation, source.Span{}))

	if !strings.HasPrefix(buf.String(), "warning:") {
		t.Fatalf("expected warning prefix, got %q", buf.String())
	}
}

func TestJSONSinkRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONSink(&buf, false)
	span := source.Span{Begin: source.Position{Line: 3, Column: 4}}
	sink.Emit(New(TooManyArguments, span, "f"))

	line := strings.TrimSpace(buf.String())
	result := gjson.Parse(line)
	if got := result.Get("code").String(); got != "too_many_arguments" {
		t.Fatalf("code = %q, want too_many_arguments", got)
	}
	if got := result.Get("span.begin.line").Int(); got != 3 {
		t.Fatalf("span.begin.line = %d, want 3", got)
	}
	if got := result.Get("args.0").String(); got != "f" {
		t.Fatalf("args.0 = %q, want f", got)
	}
}

func TestCodeStringIsSnakeCase(t *testing.T) {
	cases := map[Code]string{
		UseOfUndeclaredIdentifier: "use_of_undeclared_identifier",
		IncompatibleCondOperands:  "incompatible_cond_operands",
		VariableDeviation:         "variable_deviation",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("Code(%d).String() = %q, want %q", code, got, want)
		}
	}
}
