package ast

// NodeType is used to declare the different possible types of AST nodes
type NodeType string

const (
	TypeResource          NodeType = "Resource"
	TypeIdentifier        NodeType = "Identifier"
	TypeComment           NodeType = "Comment"
	TypeGroupComment      NodeType = "GroupComment"
	TypeResourceComment   NodeType = "ResourceComment"
	TypeMessage           NodeType = "Message"
	TypeTerm              NodeType = "Term"
	TypeAttribute         NodeType = "Attribute"
	TypePattern           NodeType = "Pattern"
	TypeTextElement       NodeType = "TextElement"
	TypePlaceable         NodeType = "Placeable"
	TypeStringLiteral     NodeType = "StringLiteral"
	TypeNumberLiteral     NodeType = "NumberLiteral"
	TypeMessageReference  NodeType = "MessageReference"
	TypeTermReference     NodeType = "TermReference"
	TypeVariableReference NodeType = "VariableReference"
	TypeFunctionReference NodeType = "FunctionReference"
	TypeCallArguments     NodeType = "CallArguments"
	TypeNamedArgument     NodeType = "NamedArgument"
	TypeSelectExpression  NodeType = "SelectExpression"
	TypeVariant           NodeType = "Variant"
	TypeJunk              NodeType = "Junk"
	TypeAnnotation        NodeType = "Annotation"
)

// IsComment checks if a type represents any of the three comment types
func IsComment(typ NodeType) bool {
	return anyOf(typ, TypeComment, TypeGroupComment, TypeResourceComment)
}

// anyOf checks if the given type matches any of the specified other types
func anyOf(typ NodeType, types ...NodeType) bool {
	for _, toCompare := range types {
		if typ == toCompare {
			return true
		}
	}
	return false
}
