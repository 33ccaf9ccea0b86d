package visitor

import (
	"github.com/lus/fluent-syntax.go/fluent/parser"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

const source = "one = Message\n" +
	"# Comment\n" +
	"two = Messages\n" +
	"three = Messages with\n" +
	"    .an = Attribute\n"

type mockVisitor struct {
	calls    map[ast.NodeType]int
	patterns int
}

func (v *mockVisitor) Visit(node ast.Node) {
	if _, ok := node.(*ast.Pattern); ok {
		v.patterns++
		return
	}
	v.calls[node.NodeType()]++
	VisitChildren(v, node)
}

func TestVisitorDispatch(t *testing.T) {
	v := &mockVisitor{calls: map[ast.NodeType]int{}}
	Walk(v, parser.Parse(source))

	assert.Equal(t, 4, v.patterns)
	assert.Equal(t, map[ast.NodeType]int{
		ast.TypeResource:   1,
		ast.TypeComment:    1,
		ast.TypeMessage:    3,
		ast.TypeIdentifier: 4,
		ast.TypeAttribute:  1,
	}, v.calls)
}

type wordCounter struct {
	words int
}

func (v *wordCounter) Visit(node ast.Node) {
	if text, ok := node.(*ast.TextElement); ok {
		v.words += len(strings.Fields(text.Value))
		return
	}
	VisitChildren(v, node)
}

func TestVisitorWordCount(t *testing.T) {
	v := &wordCounter{}
	Walk(v, parser.Parse(source))
	assert.Equal(t, 5, v.words)
}

func TestVisitorVisitsExpressions(t *testing.T) {
	resource := parser.Parse("foo = { $n ->\n    [one] { -term(case: \"a\") }\n   *[other] { FN(msg.attr, 1) }\n}\n" +
		"junk = {\n")

	var types []ast.NodeType
	Inspect(resource, func(node ast.Node) bool {
		switch node.(type) {
		case *ast.Resource, *ast.Message, *ast.Pattern, *ast.Placeable, *ast.Variant, *ast.Identifier:
		default:
			types = append(types, node.NodeType())
		}
		return true
	})

	assert.Equal(t, []ast.NodeType{
		ast.TypeSelectExpression,
		ast.TypeVariableReference,
		ast.TypeTermReference,
		ast.TypeCallArguments,
		ast.TypeNamedArgument,
		ast.TypeStringLiteral,
		ast.TypeFunctionReference,
		ast.TypeCallArguments,
		ast.TypeMessageReference,
		ast.TypeNumberLiteral,
		ast.TypeJunk,
		ast.TypeAnnotation,
	}, types)
}

func TestInspectStopsDescending(t *testing.T) {
	visited := 0
	Inspect(parser.Parse(source), func(node ast.Node) bool {
		visited++
		_, isResource := node.(*ast.Resource)
		return isResource
	})
	// The resource and its three messages
	assert.Equal(t, 4, visited)
}

func TestWalkIgnoresNil(t *testing.T) {
	v := &mockVisitor{calls: map[ast.NodeType]int{}}
	Walk(v, nil)
	Walk(v, (*ast.Message)(nil))
	assert.Empty(t, v.calls)
}

type replaceTransformer struct {
	before, after string
}

func (t *replaceTransformer) Transform(node ast.Node) ast.Node {
	if text, ok := node.(*ast.TextElement); ok {
		text.Value = strings.ReplaceAll(text.Value, t.before, t.after)
		return text
	}
	return TransformChildren(t, node)
}

func TestTransformerReplacesText(t *testing.T) {
	original := parser.Parse(source)
	resource := ast.Clone(original).(*ast.Resource)

	transformed := Apply(&replaceTransformer{before: "Message", after: "Term"}, resource)

	assert.Same(t, resource, transformed)
	assert.False(t, ast.Equal(original, transformed))

	two := resource.Body[1].(*ast.Message)
	assert.Equal(t, "Terms", two.Value.Elements[0].(*ast.TextElement).Value)
	assert.Equal(t, "Messages", original.Body[1].(*ast.Message).Value.Elements[0].(*ast.TextElement).Value)
}

type removeTransformer struct{}

func (t removeTransformer) Transform(node ast.Node) ast.Node {
	switch node.(type) {
	case *ast.Attribute, *ast.Junk, *ast.Comment:
		return nil
	}
	return TransformChildren(t, node)
}

func TestTransformerRemovesNodes(t *testing.T) {
	resource := parser.Parse(source + "broken\n")
	require.Len(t, resource.Body, 4)

	Apply(removeTransformer{}, resource)

	require.Len(t, resource.Body, 3)
	assert.Nil(t, resource.Body[1].(*ast.Message).Comment)
	assert.Empty(t, resource.Body[2].(*ast.Message).Attributes)
	assert.NotNil(t, resource.Body[2].(*ast.Message).Value)
}

type wrapTransformer struct{}

func (t wrapTransformer) Transform(node ast.Node) ast.Node {
	if ref, ok := node.(*ast.VariableReference); ok {
		return ast.NewFunctionReference(ast.NewIdentifier("NUMBER"), ast.NewCallArguments([]ast.InlineExpression{ref}, nil))
	}
	return TransformChildren(t, node)
}

func TestTransformerReplacesExpressions(t *testing.T) {
	resource := parser.Parse("foo = { $num }\n", parser.WithSpans(false))
	Apply(wrapTransformer{}, resource)

	expected := parser.Parse("foo = { NUMBER($num) }\n", parser.WithSpans(false))
	assert.True(t, ast.Equal(expected, resource))
}

type badTransformer struct{}

func (t badTransformer) Transform(node ast.Node) ast.Node {
	if _, ok := node.(*ast.Identifier); ok {
		return ast.NewTextElement("not an identifier")
	}
	return TransformChildren(t, node)
}

func TestTransformerPanicsOnMisfit(t *testing.T) {
	resource := parser.Parse("foo = Foo\n")
	assert.PanicsWithValue(t, "visitor: cannot replace *ast.Identifier with *ast.TextElement", func() {
		Apply(badTransformer{}, resource)
	})
}
