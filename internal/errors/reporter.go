package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter formats interpreter errors with source context, in the
// style of modern compiler diagnostics:
//
//	runtime error: variable 'x' not found
//	  --> example.mica:3:6
//	   │
//	 3 │ 21 + x
//	   │      ^
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

func (r *Reporter) Format(err *Error) string {
	var result strings.Builder

	kindColor := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	result.WriteString(fmt.Sprintf("%s: %s\n", kindColor(err.Kind.String()), err.Message))

	width := lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if err.Position.Line > 0 && err.Position.Line <= len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, err.Position.Line)),
			dim("│"),
			r.lines[err.Position.Line-1]))
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker(err.Position.Column, err.Length)))
	}

	return result.String()
}

func marker(column, length int) string {
	if length <= 0 {
		length = 1
	}
	pad := strings.Repeat(" ", max(0, column-1))
	carets := color.New(color.FgRed, color.Bold).Sprint(strings.Repeat("^", length))
	return pad + carets
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}
