package parser

import (
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"github.com/lus/fluent-syntax.go/internal/corpora"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestAnnotationCorpus(t *testing.T) {
	corpora.Corpus{
		Root:      "testdata",
		Refresh:   "FTL_REFRESH",
		Extension: "ftl",
		Test: func(t *testing.T, path, text string) []string {
			source, expected := corpora.SplitDirectives(text)
			resource := Parse(source)

			assert.Equal(t, strings.Join(expected, "\n"), strings.Join(corpora.Directives(resource), "\n"))

			// Junk and entries together always cover the whole input
			assert.Equal(t, &ast.Span{Start: 0, End: len(source)}, resource.Span)
			return nil
		},
	}.Run(t)
}
