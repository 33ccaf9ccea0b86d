package ast

import "reflect"

// Field selects node fields which Equal may be told to ignore
type Field uint8

const (
	// FieldSpan ignores the spans of all nodes
	FieldSpan Field = 1 << iota
	// FieldComment ignores the comments attached to messages and terms
	FieldComment
	// FieldAnnotations ignores the annotations of junk nodes
	FieldAnnotations
)

// Equal reports whether two nodes are structurally equal, ignoring spans
func Equal(a, b Node) bool {
	return EqualIgnoring(a, b, FieldSpan)
}

// EqualIgnoring reports whether two nodes are structurally equal, ignoring the given fields
func EqualIgnoring(a, b Node, ignored Field) bool {
	eq := &equality{ignored: ignored}
	return eq.nodes(a, b)
}

type equality struct {
	ignored Field
}

func (eq *equality) ignores(field Field) bool {
	return eq.ignored&field != 0
}

func (eq *equality) spans(a, b *Span) bool {
	if eq.ignores(FieldSpan) {
		return true
	}
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (eq *equality) nodes(a, b Node) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if a.NodeType() != b.NodeType() || !eq.spans(a.GetSpan(), b.GetSpan()) {
		return false
	}

	switch x := a.(type) {
	case *Resource:
		y, ok := b.(*Resource)
		if !ok || len(x.Body) != len(y.Body) {
			return false
		}
		for i := range x.Body {
			if !eq.nodes(x.Body[i], y.Body[i]) {
				return false
			}
		}
		return true

	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Name == y.Name

	case *Comment:
		y, ok := b.(*Comment)
		return ok && x.Content == y.Content

	case *GroupComment:
		y, ok := b.(*GroupComment)
		return ok && x.Content == y.Content

	case *ResourceComment:
		y, ok := b.(*ResourceComment)
		return ok && x.Content == y.Content

	case *Message:
		y, ok := b.(*Message)
		return ok && eq.declarations(x.ID, y.ID, x.Value, y.Value, x.Attributes, y.Attributes, x.Comment, y.Comment)

	case *Term:
		y, ok := b.(*Term)
		return ok && eq.declarations(x.ID, y.ID, x.Value, y.Value, x.Attributes, y.Attributes, x.Comment, y.Comment)

	case *Attribute:
		y, ok := b.(*Attribute)
		return ok && eq.identifiers(x.ID, y.ID) && eq.patterns(x.Value, y.Value)

	case *Pattern:
		y, ok := b.(*Pattern)
		return ok && eq.patterns(x, y)

	case *TextElement:
		y, ok := b.(*TextElement)
		return ok && x.Value == y.Value

	case *Placeable:
		y, ok := b.(*Placeable)
		return ok && eq.nodes(x.Expression, y.Expression)

	case *StringLiteral:
		y, ok := b.(*StringLiteral)
		return ok && x.Value == y.Value

	case *NumberLiteral:
		y, ok := b.(*NumberLiteral)
		return ok && x.Value == y.Value

	case *MessageReference:
		y, ok := b.(*MessageReference)
		return ok && eq.identifiers(x.ID, y.ID) && eq.identifiers(x.Attribute, y.Attribute)

	case *TermReference:
		y, ok := b.(*TermReference)
		return ok && eq.identifiers(x.ID, y.ID) && eq.identifiers(x.Attribute, y.Attribute) &&
			eq.callArguments(x.Arguments, y.Arguments)

	case *VariableReference:
		y, ok := b.(*VariableReference)
		return ok && eq.identifiers(x.ID, y.ID)

	case *FunctionReference:
		y, ok := b.(*FunctionReference)
		return ok && eq.identifiers(x.ID, y.ID) && eq.callArguments(x.Arguments, y.Arguments)

	case *CallArguments:
		y, ok := b.(*CallArguments)
		return ok && eq.callArguments(x, y)

	case *NamedArgument:
		y, ok := b.(*NamedArgument)
		return ok && eq.identifiers(x.Name, y.Name) && eq.nodes(x.Value, y.Value)

	case *SelectExpression:
		y, ok := b.(*SelectExpression)
		if !ok || !eq.nodes(x.Selector, y.Selector) || len(x.Variants) != len(y.Variants) {
			return false
		}
		for i := range x.Variants {
			if !eq.variants(x.Variants[i], y.Variants[i]) {
				return false
			}
		}
		return true

	case *Variant:
		y, ok := b.(*Variant)
		return ok && eq.variants(x, y)

	case *Junk:
		y, ok := b.(*Junk)
		if !ok || x.Content != y.Content {
			return false
		}
		if eq.ignores(FieldAnnotations) {
			return true
		}
		if len(x.Annotations) != len(y.Annotations) {
			return false
		}
		for i := range x.Annotations {
			if !eq.annotations(x.Annotations[i], y.Annotations[i]) {
				return false
			}
		}
		return true

	case *Annotation:
		y, ok := b.(*Annotation)
		return ok && eq.annotations(x, y)

	default:
		return false
	}
}

func (eq *equality) declarations(aID, bID *Identifier, aValue, bValue *Pattern, aAttrs, bAttrs []*Attribute, aComment, bComment *Comment) bool {
	if !eq.identifiers(aID, bID) || !eq.patterns(aValue, bValue) || len(aAttrs) != len(bAttrs) {
		return false
	}
	for i := range aAttrs {
		if !eq.nodes(aAttrs[i], bAttrs[i]) {
			return false
		}
	}
	if eq.ignores(FieldComment) {
		return true
	}
	return eq.nodes(aComment, bComment)
}

func (eq *equality) identifiers(a, b *Identifier) bool {
	return eq.nodes(a, b)
}

func (eq *equality) patterns(a, b *Pattern) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !eq.spans(a.Span, b.Span) || len(a.Elements) != len(b.Elements) {
		return false
	}
	for i := range a.Elements {
		if !eq.nodes(a.Elements[i], b.Elements[i]) {
			return false
		}
	}
	return true
}

func (eq *equality) callArguments(a, b *CallArguments) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !eq.spans(a.Span, b.Span) || len(a.Positional) != len(b.Positional) || len(a.Named) != len(b.Named) {
		return false
	}
	for i := range a.Positional {
		if !eq.nodes(a.Positional[i], b.Positional[i]) {
			return false
		}
	}
	for i := range a.Named {
		if !eq.nodes(a.Named[i], b.Named[i]) {
			return false
		}
	}
	return true
}

func (eq *equality) variants(a, b *Variant) bool {
	if a == nil || b == nil {
		return a == b
	}
	return eq.spans(a.Span, b.Span) && a.Default == b.Default &&
		eq.nodes(a.Key, b.Key) && eq.patterns(a.Value, b.Value)
}

func (eq *equality) annotations(a, b *Annotation) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !eq.spans(a.Span, b.Span) || a.Code != b.Code || a.Message != b.Message || len(a.Arguments) != len(b.Arguments) {
		return false
	}
	// Arguments may hold values of any type, including incomparable ones
	return len(a.Arguments) == 0 || reflect.DeepEqual(a.Arguments, b.Arguments)
}

// IsNil reports whether a node is nil, including typed nil pointers stored in the interface
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	switch x := n.(type) {
	case *Resource:
		return x == nil
	case *Identifier:
		return x == nil
	case *Comment:
		return x == nil
	case *GroupComment:
		return x == nil
	case *ResourceComment:
		return x == nil
	case *Message:
		return x == nil
	case *Term:
		return x == nil
	case *Attribute:
		return x == nil
	case *Pattern:
		return x == nil
	case *TextElement:
		return x == nil
	case *Placeable:
		return x == nil
	case *StringLiteral:
		return x == nil
	case *NumberLiteral:
		return x == nil
	case *MessageReference:
		return x == nil
	case *TermReference:
		return x == nil
	case *VariableReference:
		return x == nil
	case *FunctionReference:
		return x == nil
	case *CallArguments:
		return x == nil
	case *NamedArgument:
		return x == nil
	case *SelectExpression:
		return x == nil
	case *Variant:
		return x == nil
	case *Junk:
		return x == nil
	case *Annotation:
		return x == nil
	}
	return false
}
