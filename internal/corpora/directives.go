package corpora

import (
	"fmt"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"strings"
)

const directivePrefix = "# ~"

// SplitDirectives removes the directive lines from a fixture.
// A directive line starts with "# ~" and names an annotation the fixture is expected to produce, e.g.
//
//	# ~ERROR E0003, pos 3, args "="
//
// Positions refer to the source with all directive lines removed.
// A directive on the last line has to end with a line break.
func SplitDirectives(text string) (source string, directives []string) {
	var builder strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if strings.HasPrefix(line, directivePrefix) && strings.HasSuffix(line, "\n") {
			directives = append(directives, strings.TrimSuffix(strings.TrimPrefix(line, directivePrefix), "\n"))
			continue
		}
		builder.WriteString(line)
	}
	return builder.String(), directives
}

// Directives renders the annotations of all junk entries of a resource parsed with spans as directives
func Directives(resource *ast.Resource) []string {
	var directives []string
	for _, entry := range resource.Body {
		junk, ok := entry.(*ast.Junk)
		if !ok {
			continue
		}
		for _, annotation := range junk.Annotations {
			directives = append(directives, directive(annotation))
		}
	}
	return directives
}

func directive(annotation *ast.Annotation) string {
	parts := []string{"ERROR " + annotation.Code}

	if span := annotation.Span; span != nil {
		if span.Start == span.End {
			parts = append(parts, fmt.Sprintf("pos %d", span.Start))
		} else {
			parts = append(parts, fmt.Sprintf("start %d", span.Start), fmt.Sprintf("end %d", span.End))
		}
	}

	if len(annotation.Arguments) > 0 {
		args := make([]string, len(annotation.Arguments))
		for i, arg := range annotation.Arguments {
			args[i] = `"` + fmt.Sprint(arg) + `"`
		}
		parts = append(parts, "args "+strings.Join(args, " "))
	}

	return strings.Join(parts, ", ")
}
