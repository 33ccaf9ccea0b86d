package serializer

import (
	"github.com/lus/fluent-syntax.go/fluent/parser"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func pretty(source string) string {
	return Serialize(parser.Parse(source))
}

func TestSerializeRoundTrip(t *testing.T) {
	tests := map[string]string{
		"simple message":                "foo = Foo\n",
		"simple term":                   "-foo = Foo\n",
		"two simple messages":           "foo = Foo\nbar = Bar\n",
		"block multiline message":       "foo =\n    Foo\n    Bar\n",
		"message reference":             "foo = Foo { bar }\n",
		"term reference":                "foo = Foo { -bar }\n",
		"external argument":             "foo = Foo { $bar }\n",
		"number element":                "foo = Foo { 1 }\n",
		"string element":                "foo = Foo { \"bar\" }\n",
		"attribute expression":          "foo = Foo { bar.baz }\n",
		"resource comment":              "### A multiline\n### resource comment.\n\nfoo = Foo\n",
		"message comment":               "# A multiline\n# message comment.\nfoo = Foo\n",
		"group comment":                 "foo = Foo\n\n## Comment Header\n##\n## A multiline\n## group comment.\n\nbar = Bar\n",
		"standalone comment":            "foo = Foo\n\n# A Standalone Comment\n\nbar = Bar\n",
		"multiline with special char":   "foo = *Foo\n    Bar\n",
		"multiline with placeable":      "foo =\n    Foo { bar }\n    Baz\n",
		"attribute":                     "foo =\n    .attr = Foo Attr\n",
		"multiline attribute":           "foo =\n    .attr =\n        Foo Attr\n        Continued\n",
		"two attributes":                "foo =\n    .attr-a = Foo Attr A\n    .attr-b = Foo Attr B\n",
		"value and attributes":          "foo = Foo Value\n    .attr-a = Foo Attr A\n    .attr-b = Foo Attr B\n",
		"multiline value and attribute": "foo =\n    Foo Value\n    Continued\n    .attr-a = Foo Attr A\n",
		"select expression":             "foo =\n    { $sel ->\n       *[a] A\n        [b] B\n    }\n",
		"multiline variant":             "foo =\n    { $sel ->\n       *[a]\n            AAA\n            BBB\n    }\n",
		"variant key number":            "foo =\n    { $sel ->\n       *[1] 1\n    }\n",
		"select in block value":         "foo =\n    Foo { $sel ->\n       *[a] A\n        [b] B\n    }\n",
		"select after special char":     "foo = .Foo { $sel ->\n       *[a] A\n        [b] B\n    }\n",
		"select in multiline value":     "foo =\n    Foo\n    Bar { $sel ->\n       *[a] A\n        [b] B\n    }\n",
		"nested select expression":      "foo =\n    { $a ->\n       *[a]\n            { $b ->\n               *[b] Foo\n            }\n    }\n",
		"selector attribute":            "foo =\n    { -bar.baz ->\n       *[a] A\n    }\n",
		"call expression":               "foo = { FOO() }\n",
		"call with string":              "foo = { FOO(\"bar\") }\n",
		"call with named arguments":     "foo = { FOO(bar: \"bar\", baz: 1) }\n",
		"call with mixed arguments":     "foo = { FOO(bar, 1, baz: \"baz\") }\n",
		"macro call":                    "foo = { -term() }\n",
		"nested placeables":             "foo = {{ FOO() }}\n",
		"backslash in text":             "foo = \\{ placeable }\n",
		"escaped quote in string":       "foo = { \"Escaped \\\" quote\" }\n",
		"unicode escape sequence":       "foo = { \"\\u0065\" }\n",
		"attached comments":             "# Comment A\nfoo = Foo\n# Comment B\nbar = Bar\n",
		"group padding when first":      "## Group A\n\nfoo = Foo\n\n## Group B\n\nbar = Bar\n",
	}

	for name, source := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, source, pretty(source))
			// The same serializer must not keep any state between calls
			assert.Equal(t, source, pretty(source))
		})
	}
}

func TestSerializeNormalizes(t *testing.T) {
	tests := map[string]struct {
		source   string
		expected string
	}{
		"message without line end": {"foo = Foo", "foo = Foo\n"},
		"multiline starting inline": {"foo = Foo\n    Bar\n", "foo =\n    Foo\n    Bar\n"},
		"variant starting inline": {
			"foo =\n    { $sel ->\n       *[a] AAA\n            BBB\n    }\n",
			"foo =\n    { $sel ->\n       *[a]\n            AAA\n            BBB\n    }\n",
		},
		"select in inline value": {
			"foo = Foo { $sel ->\n       *[a] A\n        [b] B\n    }\n",
			"foo =\n    Foo { $sel ->\n       *[a] A\n        [b] B\n    }\n",
		},
		"call arguments spacing": {"foo = { FOO( $a ,b:1 ) }\n", "foo = { FOO($a, b: 1) }\n"},
		"blank lines between messages": {"foo = Foo\n\n\nbar = Bar\n", "foo = Foo\nbar = Bar\n"},
		"blank line after attached comment": {"# Comment A\nfoo = Foo\n\n# Comment B\nbar = Bar\n", "# Comment A\nfoo = Foo\n# Comment B\nbar = Bar\n"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, pretty(test.source))
		})
	}
}

func TestSerializeJunk(t *testing.T) {
	source := "foo = Foo\nbar\nbaz = Baz\n"
	resource := parser.Parse(source)

	assert.Equal(t, "foo = Foo\nbaz = Baz\n", New().Serialize(resource))
	assert.Equal(t, source, New(WithJunk(true)).Serialize(resource))
}

func TestSerializeIsIdempotent(t *testing.T) {
	source := "### Resource\n\n" +
		"# Attached\n" +
		"hello = Hello, { $name }!\n" +
		"    .title = { -brand(case: \"nom\") }\n\n" +
		"-brand = { $n ->\n    [one] Firefox\n   *[other] Firefoxes\n}\n" +
		"emails = { NUMBER($count, minimumFractionDigits: 2) }\n" +
		"block =\n      indented\n    less\n\n\n    after blank\n"

	first := parser.Parse(source)
	second := parser.Parse(Serialize(first))
	assert.True(t, ast.Equal(first, second), "reparsed AST differs:\n%s", Serialize(first))
}

func TestSerializeEntry(t *testing.T) {
	entry := parser.ParseEntry("# Comment\n## Group\nfoo = Foo\n    .attr = Attr\n")
	assert.Equal(t, "foo = Foo\n    .attr = Attr\n", New().SerializeEntry(entry))

	comment := ast.NewGroupComment("Group\n\nHeader")
	assert.Equal(t, "## Group\n##\n## Header\n\n", New().SerializeEntry(comment))
}

func TestSerializeExpression(t *testing.T) {
	expression := func(source string) ast.Expression {
		message, ok := parser.ParseEntry(source).(*ast.Message)
		require.True(t, ok)
		return message.Value.Elements[0].(*ast.Placeable).Expression
	}

	tests := map[string]string{
		"foo = { \"str\" }":                             `"str"`,
		"foo = { 3 }":                                   "3",
		"foo = { msg }":                                 "msg",
		"foo = { $ext }":                                "$ext",
		"foo = { msg.attr }":                            "msg.attr",
		"foo = { BUILTIN(3.14, kwarg: \"value\") }":     `BUILTIN(3.14, kwarg: "value")`,
		"foo =\n    { $num ->\n        *[one] One\n    }": "$num ->\n   *[one] One\n",
		"foo = {{5}}":                                   "{ 5 }",
	}
	for source, expected := range tests {
		assert.Equal(t, expected, SerializeExpression(expression(source)), source)
	}
}

func TestSerializeVariantKey(t *testing.T) {
	message := parser.ParseEntry("foo = { $num ->\n    [-123456789] Minus a lot\n    [0] Zero\n   *[3.14] Pi\n    [007] James\n    [other] Other\n}\n").(*ast.Message)
	variants := message.Value.Elements[0].(*ast.Placeable).Expression.(*ast.SelectExpression).Variants

	var keys []string
	for _, variant := range variants {
		keys = append(keys, SerializeVariantKey(variant.Key))
	}
	assert.Equal(t, []string{"-123456789", "0", "3.14", "007", "other"}, keys)
}

func TestSerializeUnknownNodes(t *testing.T) {
	assert.Panics(t, func() { SerializeExpression(nil) })
	assert.Panics(t, func() { SerializeVariantKey(nil) })
	assert.Panics(t, func() { New().SerializeEntry(nil) })
}

func TestSerializeProgrammaticAST(t *testing.T) {
	resource := ast.NewResource(
		ast.NewMessage(ast.NewIdentifier("greeting"), ast.NewPattern(
			ast.NewTextElement("Hi "),
			ast.NewPlaceable(ast.NewFunctionReference(ast.NewIdentifier("UPPER"), ast.NewCallArguments(
				[]ast.InlineExpression{ast.NewMessageReference(ast.NewIdentifier("name"), nil)}, nil,
			))),
		)),
		ast.NewTerm(ast.NewIdentifier("empty-args"), ast.NewPattern(ast.NewTextElement("x")),
			ast.NewAttribute(ast.NewIdentifier("a"), ast.NewPattern(ast.NewTextElement("line\nbreak")))),
	)

	expected := "greeting = Hi { UPPER(name) }\n" +
		"-empty-args = x\n    .a =\n        line\n        break\n"
	assert.Equal(t, expected, Serialize(resource))
}

func TestSerializeSeparatesStandaloneComments(t *testing.T) {
	resource := ast.NewResource(
		ast.NewResourceComment("Resource"),
		ast.NewMessage(ast.NewIdentifier("foo"), ast.NewPattern(ast.NewTextElement("Foo"))),
		ast.NewGroupComment("Group"),
		ast.NewMessage(ast.NewIdentifier("bar"), ast.NewPattern(ast.NewTextElement("Bar"))),
		ast.NewJunk("broken\n"),
		ast.NewComment("Trailing"),
	)

	expected := "### Resource\n" +
		"foo = Foo\n" +
		"\n## Group\n" +
		"bar = Bar\n" +
		"broken\n" +
		"\n# Trailing\n"
	assert.Equal(t, expected, Serialize(resource, WithJunk(true)))
}
