package source

import "strings"

// File pairs a source text with the name it should be reported under, so
// a diagnostic sink can print the offending line and a caret under it.
type File struct {
	Name string
	Text string
	Lines []string
}

// NewFile splits text into lines once up front; Line is called once per
// diagnostic, so this trades a little memory for O(1) lookups.
func NewFile(name, text string) *File {
	return &File{Name: name, Text: text, Lines: strings.Split(text, "\n")}
}

// Line returns the 1-indexed source line, or "" if out of range.
func (f *File) Line(n int) string {
	if f == nil || n < 1 || n > len(f.Lines) {
		return ""
	}
	return f.Lines[n-1]
}
