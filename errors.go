package toml

import (
	"fmt"
	"strings"
)

// ParseError is the single error type Parse returns. It always carries a
// human-readable Message and the zero-based byte Offset into the input
// at which the failure was detected (spec.md §6/§7); Offset is -1 for
// assembler-stage structural errors that are not anchored to one byte
// (spec.md §6, "a descriptive message without an offset").
type ParseError struct {
	Message string
	Offset  int
}

func (e ParseError) Error() string {
	return "toml: error: " + e.Message
}

// Position reports the 1-based line and column of e.Offset within
// input. If e was not produced against input (or carries no offset),
// Position returns (1, 1, false).
func (e ParseError) Position(input string) (line, col int, ok bool) {
	if e.Offset < 0 || e.Offset > len(input) {
		return 1, 1, false
	}
	line, col = 1, 1
	for i := 0; i < e.Offset; i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col, true
}

// ErrorWithPosition renders e.Error() followed by a line/column locator
// and a snippet of the offending source line, mirroring the teacher's
// ParseError.ErrorWithPosition() convention.
func (e ParseError) ErrorWithPosition(input string) string {
	line, col, ok := e.Position(input)
	if !ok {
		return e.Error()
	}

	lines := strings.Split(input, "\n")
	var src string
	if line-1 < len(lines) {
		src = lines[line-1]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", e.Error())
	fmt.Fprintf(&b, "At line %d, column %d:\n\n", line, col)
	fmt.Fprintf(&b, "  %d | %s\n", line, src)
	fmt.Fprintf(&b, "  %s | %s^\n", strings.Repeat(" ", len(fmt.Sprint(line))), strings.Repeat(" ", col-1))
	return b.String()
}

func lexicalErr(offset int, format string, args ...interface{}) error {
	return ParseError{Message: fmt.Sprintf(format, args...), Offset: offset}
}

func syntaxErr(offset int, format string, args ...interface{}) error {
	return ParseError{Message: fmt.Sprintf(format, args...), Offset: offset}
}

func structuralErr(format string, args ...interface{}) error {
	return ParseError{Message: fmt.Sprintf(format, args...), Offset: -1}
}

func overflowErr(offset int, format string, args ...interface{}) error {
	return ParseError{Message: fmt.Sprintf(format, args...), Offset: offset}
}
