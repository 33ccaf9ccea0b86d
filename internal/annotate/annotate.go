// Package annotate pretty-prints the annotations of junk entries next to the source they refer to.
package annotate

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/lus/fluent-syntax.go/fluent/parser"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"github.com/rivo/uniseg"
	"io"
	"strings"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	gutterStyle = lipgloss.NewStyle().Foreground(colorMuted)
	caretStyle  = lipgloss.NewStyle().Foreground(colorError)
)

// Printer writes annotations in the following form:
//
//	! E0003 on line 2:
//	  | broken
//	  …       ^----- Expected token: "="
type Printer struct {
	color bool
}

// New creates a new printer; color enables terminal styling of the header, gutter and caret
func New(color bool) *Printer {
	return &Printer{color: color}
}

func (printer *Printer) style(style lipgloss.Style, text string) string {
	if !printer.color {
		return text
	}
	return style.Render(text)
}

// Resource prints the annotations of every junk entry of a resource parsed with spans
func (printer *Printer) Resource(w io.Writer, source string, resource *ast.Resource) error {
	for _, entry := range resource.Body {
		if junk, ok := entry.(*ast.Junk); ok {
			if err := printer.Junk(w, source, junk); err != nil {
				return err
			}
		}
	}
	return nil
}

// Junk prints all annotations of a junk entry.
// Entries and annotations without spans cannot be located and are printed without source excerpt.
func (printer *Printer) Junk(w io.Writer, source string, junk *ast.Junk) error {
	for _, annotation := range junk.Annotations {
		if err := printer.annotation(w, source, junk, annotation); err != nil {
			return err
		}
	}
	return nil
}

func (printer *Printer) annotation(w io.Writer, source string, junk *ast.Junk, annotation *ast.Annotation) error {
	if junk.Span == nil || annotation.Span == nil {
		_, err := fmt.Fprintf(w, "\n%s\n", printer.style(headerStyle, fmt.Sprintf("! %s: %s", annotation.Code, annotation.Message)))
		return err
	}

	start := annotation.Span.Start
	lineNumber := parser.LineOffset(source, start) + 1
	column := parser.ColumnOffset(source, start)
	showLines := lineNumber - parser.LineOffset(source, junk.Span.Start)

	slice := source[junk.Span.Start:junk.Span.End]
	lines := strings.Split(strings.TrimSuffix(slice, "\n"), "\n")
	showLines = min(showLines, len(lines))
	head, tail := lines[:showLines], lines[showLines:]

	var builder strings.Builder
	builder.WriteString("\n")
	builder.WriteString(printer.style(headerStyle, fmt.Sprintf("! %s on line %d:", annotation.Code, lineNumber)))
	builder.WriteString("\n")
	printer.writeLines(&builder, head)

	caretLine := ""
	if len(head) > 0 {
		caretLine = head[len(head)-1]
	}
	builder.WriteString(printer.style(gutterStyle, "  … "))
	builder.WriteString(indent(caretLine[:min(column, len(caretLine))]))
	builder.WriteString(printer.style(caretStyle, "^----- "+annotation.Message))
	builder.WriteString("\n")
	printer.writeLines(&builder, tail)

	_, err := io.WriteString(w, builder.String())
	return err
}

func (printer *Printer) writeLines(builder *strings.Builder, lines []string) {
	for _, line := range lines {
		builder.WriteString(printer.style(gutterStyle, "  | "))
		builder.WriteString(line)
		builder.WriteString("\n")
	}
}

// indent returns whitespace as wide as the given text when displayed in a terminal.
// Tabs are kept so the caret lines up however wide the terminal renders them.
func indent(text string) string {
	var builder strings.Builder
	state := -1
	for text != "" {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		if cluster == "\t" {
			builder.WriteString("\t")
			continue
		}
		builder.WriteString(strings.Repeat(" ", width))
	}
	return builder.String()
}
