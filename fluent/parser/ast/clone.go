package ast

// Clone creates a deep copy of a node. Nil nodes stay nil.
func Clone(node Node) Node {
	if IsNil(node) {
		return nil
	}

	switch x := node.(type) {
	case *Resource:
		body := make([]Entry, len(x.Body))
		for i, entry := range x.Body {
			body[i], _ = Clone(entry).(Entry)
		}
		return &Resource{Base: cloneBase(x.Base), Body: body}
	case *Identifier:
		return cloneIdentifier(x)
	case *Comment:
		return cloneComment(x)
	case *GroupComment:
		return &GroupComment{Base: cloneBase(x.Base), Content: x.Content}
	case *ResourceComment:
		return &ResourceComment{Base: cloneBase(x.Base), Content: x.Content}
	case *Message:
		return &Message{
			Base:       cloneBase(x.Base),
			ID:         cloneIdentifier(x.ID),
			Value:      clonePattern(x.Value),
			Attributes: cloneAttributes(x.Attributes),
			Comment:    cloneComment(x.Comment),
		}
	case *Term:
		return &Term{
			Base:       cloneBase(x.Base),
			ID:         cloneIdentifier(x.ID),
			Value:      clonePattern(x.Value),
			Attributes: cloneAttributes(x.Attributes),
			Comment:    cloneComment(x.Comment),
		}
	case *Attribute:
		return cloneAttribute(x)
	case *Pattern:
		return clonePattern(x)
	case *TextElement:
		return &TextElement{Base: cloneBase(x.Base), Value: x.Value}
	case *Placeable:
		return &Placeable{Base: cloneBase(x.Base), Expression: cloneExpression(x.Expression)}
	case *StringLiteral:
		return &StringLiteral{Base: cloneBase(x.Base), Value: x.Value}
	case *NumberLiteral:
		return &NumberLiteral{Base: cloneBase(x.Base), Value: x.Value}
	case *MessageReference:
		return &MessageReference{
			Base:      cloneBase(x.Base),
			ID:        cloneIdentifier(x.ID),
			Attribute: cloneIdentifier(x.Attribute),
		}
	case *TermReference:
		return &TermReference{
			Base:      cloneBase(x.Base),
			ID:        cloneIdentifier(x.ID),
			Attribute: cloneIdentifier(x.Attribute),
			Arguments: cloneCallArguments(x.Arguments),
		}
	case *VariableReference:
		return &VariableReference{Base: cloneBase(x.Base), ID: cloneIdentifier(x.ID)}
	case *FunctionReference:
		return &FunctionReference{
			Base:      cloneBase(x.Base),
			ID:        cloneIdentifier(x.ID),
			Arguments: cloneCallArguments(x.Arguments),
		}
	case *CallArguments:
		return cloneCallArguments(x)
	case *NamedArgument:
		return cloneNamedArgument(x)
	case *SelectExpression:
		variants := make([]*Variant, len(x.Variants))
		for i, variant := range x.Variants {
			variants[i] = cloneVariant(variant)
		}
		selector, _ := cloneExpression(x.Selector).(InlineExpression)
		return &SelectExpression{Base: cloneBase(x.Base), Selector: selector, Variants: variants}
	case *Variant:
		return cloneVariant(x)
	case *Junk:
		annotations := make([]*Annotation, len(x.Annotations))
		for i, annotation := range x.Annotations {
			annotations[i] = cloneAnnotation(annotation)
		}
		return &Junk{Base: cloneBase(x.Base), Content: x.Content, Annotations: annotations}
	case *Annotation:
		return cloneAnnotation(x)
	}
	panic("ast: cannot clone unknown node type " + string(node.NodeType()))
}

func cloneBase(base Base) Base {
	if base.Span != nil {
		span := *base.Span
		base.Span = &span
	}
	return base
}

func cloneIdentifier(id *Identifier) *Identifier {
	if id == nil {
		return nil
	}
	return &Identifier{Base: cloneBase(id.Base), Name: id.Name}
}

func cloneComment(comment *Comment) *Comment {
	if comment == nil {
		return nil
	}
	return &Comment{Base: cloneBase(comment.Base), Content: comment.Content}
}

func clonePattern(pattern *Pattern) *Pattern {
	if pattern == nil {
		return nil
	}
	elements := make([]PatternElement, len(pattern.Elements))
	for i, element := range pattern.Elements {
		elements[i], _ = Clone(element).(PatternElement)
	}
	return &Pattern{Base: cloneBase(pattern.Base), Elements: elements}
}

func cloneAttribute(attribute *Attribute) *Attribute {
	if attribute == nil {
		return nil
	}
	return &Attribute{
		Base:  cloneBase(attribute.Base),
		ID:    cloneIdentifier(attribute.ID),
		Value: clonePattern(attribute.Value),
	}
}

func cloneAttributes(attributes []*Attribute) []*Attribute {
	if attributes == nil {
		return nil
	}
	cloned := make([]*Attribute, len(attributes))
	for i, attribute := range attributes {
		cloned[i] = cloneAttribute(attribute)
	}
	return cloned
}

func cloneExpression(expression Expression) Expression {
	cloned, _ := Clone(expression).(Expression)
	return cloned
}

func cloneCallArguments(args *CallArguments) *CallArguments {
	if args == nil {
		return nil
	}
	positional := make([]InlineExpression, len(args.Positional))
	for i, arg := range args.Positional {
		positional[i], _ = Clone(arg).(InlineExpression)
	}
	named := make([]*NamedArgument, len(args.Named))
	for i, arg := range args.Named {
		named[i] = cloneNamedArgument(arg)
	}
	return &CallArguments{Base: cloneBase(args.Base), Positional: positional, Named: named}
}

func cloneNamedArgument(arg *NamedArgument) *NamedArgument {
	if arg == nil {
		return nil
	}
	value, _ := Clone(arg.Value).(Literal)
	return &NamedArgument{Base: cloneBase(arg.Base), Name: cloneIdentifier(arg.Name), Value: value}
}

func cloneVariant(variant *Variant) *Variant {
	if variant == nil {
		return nil
	}
	key, _ := Clone(variant.Key).(VariantKey)
	return &Variant{
		Base:    cloneBase(variant.Base),
		Key:     key,
		Value:   clonePattern(variant.Value),
		Default: variant.Default,
	}
}

func cloneAnnotation(annotation *Annotation) *Annotation {
	if annotation == nil {
		return nil
	}
	arguments := make([]interface{}, len(annotation.Arguments))
	copy(arguments, annotation.Arguments)
	return &Annotation{
		Base:      cloneBase(annotation.Base),
		Code:      annotation.Code,
		Arguments: arguments,
		Message:   annotation.Message,
	}
}
