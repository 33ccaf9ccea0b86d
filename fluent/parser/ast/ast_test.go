package ast

import (
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func spanned[T Node](node T, start, end int) T {
	node.AddSpan(start, end)
	return node
}

func sampleMessage() *Message {
	selector := NewVariableReference(NewIdentifier("count"))
	selectExpr := NewSelectExpression(selector,
		NewVariant(NewNumberLiteral("1"), NewPattern(NewTextElement("one")), false),
		NewVariant(NewIdentifier("other"), NewPattern(NewTextElement("many")), true),
	)
	call := NewFunctionReference(NewIdentifier("NUMBER"), NewCallArguments(
		[]InlineExpression{NewVariableReference(NewIdentifier("n"))},
		[]*NamedArgument{NewNamedArgument(NewIdentifier("style"), NewStringLiteral("percent"))},
	))
	msg := NewMessage(NewIdentifier("hello"),
		spanned(NewPattern(NewTextElement("Hi "), NewPlaceable(call), NewPlaceable(selectExpr)), 8, 40),
		NewAttribute(NewIdentifier("title"), NewPattern(NewPlaceable(NewTermReference(NewIdentifier("brand"), nil, nil)))),
	)
	msg.Comment = NewComment("doc")
	return spanned(msg, 0, 40)
}

func TestEqualIgnoresSpans(t *testing.T) {
	a := sampleMessage()
	b := sampleMessage()
	b.AddSpan(3, 9)
	b.Value.Span = nil

	assert.True(t, Equal(a, b))
	assert.False(t, EqualIgnoring(a, b, 0))
}

func TestEqualDetectsDifferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(msg *Message)
	}{
		{"identifier", func(msg *Message) { msg.ID.Name = "bye" }},
		{"text", func(msg *Message) { msg.Value.Elements[0].(*TextElement).Value = "Hey " }},
		{"default variant", func(msg *Message) {
			sel := msg.Value.Elements[2].(*Placeable).Expression.(*SelectExpression)
			sel.Variants[0].Default = true
		}},
		{"named argument", func(msg *Message) {
			call := msg.Value.Elements[1].(*Placeable).Expression.(*FunctionReference)
			call.Arguments.Named[0].Value = NewNumberLiteral("1")
		}},
		{"attribute", func(msg *Message) { msg.Attributes = nil }},
		{"value", func(msg *Message) { msg.Value = nil }},
		{"comment", func(msg *Message) { msg.Comment.Content = "other" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			msg := sampleMessage()
			test.mutate(msg)
			assert.False(t, Equal(sampleMessage(), msg))
		})
	}
}

func TestEqualIgnoringComment(t *testing.T) {
	a := sampleMessage()
	b := sampleMessage()
	b.Comment = nil

	assert.False(t, Equal(a, b))
	assert.True(t, EqualIgnoring(a, b, FieldSpan|FieldComment))
}

func TestEqualJunkAnnotations(t *testing.T) {
	a := NewJunk("foo = {\n")
	a.AddAnnotation(NewAnnotation("E0003", []interface{}{"}"}, `Expected token: "}"`))
	b := NewJunk("foo = {\n")

	assert.False(t, Equal(a, b))
	assert.True(t, EqualIgnoring(a, b, FieldSpan|FieldAnnotations))
}

func TestEqualAnnotationArguments(t *testing.T) {
	annotated := func(args ...interface{}) *Junk {
		junk := NewJunk("foo\n")
		junk.AddAnnotation(NewAnnotation("E0001", args, "Generic error"))
		return junk
	}

	assert.True(t, Equal(annotated("=", 'x'), annotated("=", 'x')))
	assert.False(t, Equal(annotated("="), annotated("}")))
	assert.True(t, Equal(annotated([]string{"a"}, map[string]int{"b": 1}), annotated([]string{"a"}, map[string]int{"b": 1})))
	assert.False(t, Equal(annotated([]string{"a"}), annotated([]string{"b"})))

	bare := NewJunk("foo\n")
	bare.AddAnnotation(&Annotation{Base: Base{Type: TypeAnnotation}, Code: "E0001", Message: "Generic error"})
	assert.True(t, Equal(annotated(), bare))
}

func TestEqualNil(t *testing.T) {
	var msg *Message
	assert.True(t, Equal(nil, msg))
	assert.False(t, Equal(msg, NewIdentifier("a")))
	assert.True(t, IsNil(msg))
	assert.False(t, IsNil(NewIdentifier("a")))
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleMessage()
	cloned, ok := Clone(original).(*Message)
	require.True(t, ok)

	assert.True(t, EqualIgnoring(original, cloned, 0))
	assert.Empty(t, cmp.Diff(original, cloned))

	cloned.ID.Name = "changed"
	cloned.Span.Start = 99
	cloned.Value.Elements[0].(*TextElement).Value = "changed"
	cloned.Comment.Content = "changed"

	assert.Equal(t, "hello", original.ID.Name)
	assert.Equal(t, 0, original.Span.Start)
	assert.Equal(t, "Hi ", original.Value.Elements[0].(*TextElement).Value)
	assert.Equal(t, "doc", original.Comment.Content)
}

func TestCloneKeepsNil(t *testing.T) {
	msg := NewMessage(NewIdentifier("a"), nil, NewAttribute(NewIdentifier("b"), NewPattern()))
	cloned := Clone(msg).(*Message)

	assert.Nil(t, cloned.Value)
	assert.Nil(t, cloned.Comment)
	assert.Nil(t, cloned.Span)
	assert.Nil(t, Clone(nil))
}

func TestCloneResourceWithJunk(t *testing.T) {
	junk := NewJunk("= oops\n")
	junk.AddAnnotation(spanned(NewAnnotation("E0002", nil, "Expected an entry start"), 0, 0))
	resource := NewResource(NewGroupComment("group"), junk)

	cloned := Clone(resource).(*Resource)
	require.Len(t, cloned.Body, 2)
	assert.True(t, EqualIgnoring(resource, cloned, 0))
	assert.NotSame(t, junk.Annotations[0], cloned.Body[1].(*Junk).Annotations[0])
}

func TestIsComment(t *testing.T) {
	assert.True(t, IsComment(TypeComment))
	assert.True(t, IsComment(TypeGroupComment))
	assert.True(t, IsComment(TypeResourceComment))
	assert.False(t, IsComment(TypeMessage))
	assert.False(t, IsComment(TypeJunk))
}

func TestConstructorsUseEmptySlices(t *testing.T) {
	assert.NotNil(t, NewResource().Body)
	assert.NotNil(t, NewMessage(NewIdentifier("a"), nil).Attributes)
	assert.NotNil(t, NewPattern().Elements)
	assert.NotNil(t, NewCallArguments(nil, nil).Positional)
	assert.NotNil(t, NewAnnotation("E0001", nil, "Generic error").Arguments)
}
