package serializer

import (
	"fmt"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"strings"
)

// Serializer is used to turn an AST back into FTL source.
// Like the parser it only holds configuration and may be reused.
type Serializer struct {
	withJunk bool
}

// serializerOption configures a serializer
type serializerOption func(*Serializer)

// WithJunk toggles whether junk entries are written back verbatim; they are dropped by default
func WithJunk(withJunk bool) serializerOption {
	return func(serializer *Serializer) {
		serializer.withJunk = withJunk
	}
}

// New creates a new FTL serializer
func New(options ...serializerOption) *Serializer {
	serializer := &Serializer{}
	for _, option := range options {
		option(serializer)
	}
	return serializer
}

// Serialize serializes a resource using a serializer configured with the given options
func Serialize(resource *ast.Resource, options ...serializerOption) string {
	return New(options...).Serialize(resource)
}

// Serialize turns a resource into FTL source.
// The AST is not validated; it has to be shaped like one produced by the parser.
func (serializer *Serializer) Serialize(resource *ast.Resource) string {
	var builder strings.Builder
	hasEntries := false
	for _, entry := range resource.Body {
		if _, isJunk := entry.(*ast.Junk); isJunk && !serializer.withJunk {
			continue
		}
		builder.WriteString(serializeEntry(entry, hasEntries))
		hasEntries = true
	}
	return builder.String()
}

// SerializeEntry turns a single entry into FTL source
func (serializer *Serializer) SerializeEntry(entry ast.Entry) string {
	return serializeEntry(entry, false)
}

// serializeEntry serializes an entry. Standalone comments following another entry are separated by a blank line.
func serializeEntry(entry ast.Entry, hasEntries bool) string {
	separator := ""
	if hasEntries && ast.IsComment(entry.NodeType()) {
		separator = "\n"
	}

	switch e := entry.(type) {
	case *ast.Message:
		return serializeDeclaration(e.Comment, e.ID.Name, e.Value, e.Attributes)
	case *ast.Term:
		return serializeDeclaration(e.Comment, "-"+e.ID.Name, e.Value, e.Attributes)
	case *ast.Comment:
		return separator + serializeComment(e.Content, "#") + "\n"
	case *ast.GroupComment:
		return separator + serializeComment(e.Content, "##") + "\n"
	case *ast.ResourceComment:
		return separator + serializeComment(e.Content, "###") + "\n"
	case *ast.Junk:
		return e.Content
	}
	panic(fmt.Sprintf("serializer: unknown entry type %T", entry))
}

// serializeComment prefixes every line of a comment; empty lines only get the prefix
func serializeComment(content, prefix string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = prefix
			continue
		}
		lines[i] = prefix + " " + line
	}
	return strings.Join(lines, "\n") + "\n"
}

// serializeDeclaration serializes a message or term, given its already prefixed name
func serializeDeclaration(comment *ast.Comment, name string, value *ast.Pattern, attributes []*ast.Attribute) string {
	var builder strings.Builder
	if comment != nil {
		builder.WriteString(serializeComment(comment.Content, "#"))
	}
	builder.WriteString(name)
	builder.WriteString(" =")
	if value != nil {
		builder.WriteString(serializePattern(value))
	}
	for _, attribute := range attributes {
		builder.WriteString(serializeAttribute(attribute))
	}
	builder.WriteString("\n")
	return builder.String()
}

func serializeAttribute(attribute *ast.Attribute) string {
	return "\n    ." + attribute.ID.Name + " =" + indentExceptFirstLine(serializePattern(attribute.Value))
}

// serializePattern serializes a pattern including the space or line break separating it from the '='
func serializePattern(pattern *ast.Pattern) string {
	var builder strings.Builder
	for _, element := range pattern.Elements {
		builder.WriteString(serializeElement(element))
	}
	content := indentExceptFirstLine(builder.String())

	if shouldStartOnNewLine(pattern) {
		return "\n    " + content
	}
	return " " + content
}

func serializeElement(element ast.PatternElement) string {
	switch el := element.(type) {
	case *ast.TextElement:
		return el.Value
	case *ast.Placeable:
		return serializePlaceable(el)
	}
	panic(fmt.Sprintf("serializer: unknown pattern element type %T", element))
}

func serializePlaceable(placeable *ast.Placeable) string {
	switch expr := placeable.Expression.(type) {
	case *ast.Placeable:
		return "{" + serializePlaceable(expr) + "}"
	case *ast.SelectExpression:
		// The select expression ends with a line break itself
		return "{ " + SerializeExpression(expr) + "}"
	default:
		return "{ " + SerializeExpression(expr) + " }"
	}
}

// SerializeExpression turns an expression into FTL source
func SerializeExpression(expression ast.Expression) string {
	switch expr := expression.(type) {
	case *ast.StringLiteral:
		return `"` + expr.Value + `"`
	case *ast.NumberLiteral:
		return expr.Value
	case *ast.VariableReference:
		return "$" + expr.ID.Name
	case *ast.TermReference:
		out := "-" + expr.ID.Name
		if expr.Attribute != nil {
			out += "." + expr.Attribute.Name
		}
		if expr.Arguments != nil {
			out += serializeCallArguments(expr.Arguments)
		}
		return out
	case *ast.MessageReference:
		out := expr.ID.Name
		if expr.Attribute != nil {
			out += "." + expr.Attribute.Name
		}
		return out
	case *ast.FunctionReference:
		return expr.ID.Name + serializeCallArguments(expr.Arguments)
	case *ast.SelectExpression:
		var builder strings.Builder
		builder.WriteString(SerializeExpression(expr.Selector))
		builder.WriteString(" ->")
		for _, variant := range expr.Variants {
			builder.WriteString(serializeVariant(variant))
		}
		builder.WriteString("\n")
		return builder.String()
	case *ast.Placeable:
		return serializePlaceable(expr)
	}
	panic(fmt.Sprintf("serializer: unknown expression type %T", expression))
}

func serializeVariant(variant *ast.Variant) string {
	key := SerializeVariantKey(variant.Key)
	value := indentExceptFirstLine(serializePattern(variant.Value))
	if variant.Default {
		return "\n   *[" + key + "]" + value
	}
	return "\n    [" + key + "]" + value
}

func serializeCallArguments(args *ast.CallArguments) string {
	parts := make([]string, 0, len(args.Positional)+len(args.Named))
	for _, arg := range args.Positional {
		parts = append(parts, SerializeExpression(arg))
	}
	for _, arg := range args.Named {
		parts = append(parts, arg.Name.Name+": "+SerializeExpression(arg.Value))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// SerializeVariantKey turns the key of a variant into FTL source
func SerializeVariantKey(key ast.VariantKey) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.NumberLiteral:
		return k.Value
	}
	panic(fmt.Sprintf("serializer: unknown variant key type %T", key))
}

func indentExceptFirstLine(content string) string {
	return strings.ReplaceAll(content, "\n", "\n    ")
}

// shouldStartOnNewLine reports whether a pattern is written as a block.
// Multiline patterns are, unless their first character could not start an indented line.
func shouldStartOnNewLine(pattern *ast.Pattern) bool {
	multiline := false
	for _, element := range pattern.Elements {
		switch el := element.(type) {
		case *ast.Placeable:
			if _, ok := el.Expression.(*ast.SelectExpression); ok {
				multiline = true
			}
		case *ast.TextElement:
			if strings.Contains(el.Value, "\n") {
				multiline = true
			}
		}
	}
	if !multiline {
		return false
	}

	if first, ok := pattern.Elements[0].(*ast.TextElement); ok && first.Value != "" {
		switch first.Value[0] {
		case '[', '.', '*':
			return false
		}
	}
	return true
}
