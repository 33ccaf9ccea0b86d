package visitor

import (
	"fmt"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
)

// Transformer is a walker rewriting the tree in place.
// Transform returns the node to put in place of the given one, or nil to remove it.
type Transformer interface {
	Transform(node ast.Node) ast.Node
}

// Apply transforms node with t and returns the result
func Apply(t Transformer, node ast.Node) ast.Node {
	if ast.IsNil(node) {
		return nil
	}
	return t.Transform(node)
}

// TransformChildren replaces every child of node with the result of transforming it and returns node itself.
// Removed children are dropped from lists and set to nil in single fields.
// A replacement which does not fit the field it is put in causes a panic.
func TransformChildren(t Transformer, node ast.Node) ast.Node {
	switch n := node.(type) {
	case *ast.Resource:
		n.Body = transformList(t, n.Body)
	case *ast.Message:
		n.ID = transformField(t, n.ID)
		n.Value = transformField(t, n.Value)
		n.Attributes = transformList(t, n.Attributes)
		n.Comment = transformField(t, n.Comment)
	case *ast.Term:
		n.ID = transformField(t, n.ID)
		n.Value = transformField(t, n.Value)
		n.Attributes = transformList(t, n.Attributes)
		n.Comment = transformField(t, n.Comment)
	case *ast.Attribute:
		n.ID = transformField(t, n.ID)
		n.Value = transformField(t, n.Value)
	case *ast.Pattern:
		n.Elements = transformList(t, n.Elements)
	case *ast.Placeable:
		n.Expression = transformField(t, n.Expression)
	case *ast.MessageReference:
		n.ID = transformField(t, n.ID)
		n.Attribute = transformField(t, n.Attribute)
	case *ast.TermReference:
		n.ID = transformField(t, n.ID)
		n.Attribute = transformField(t, n.Attribute)
		n.Arguments = transformField(t, n.Arguments)
	case *ast.VariableReference:
		n.ID = transformField(t, n.ID)
	case *ast.FunctionReference:
		n.ID = transformField(t, n.ID)
		n.Arguments = transformField(t, n.Arguments)
	case *ast.SelectExpression:
		n.Selector = transformField(t, n.Selector)
		n.Variants = transformList(t, n.Variants)
	case *ast.CallArguments:
		n.Positional = transformList(t, n.Positional)
		n.Named = transformList(t, n.Named)
	case *ast.Variant:
		n.Key = transformField(t, n.Key)
		n.Value = transformField(t, n.Value)
	case *ast.NamedArgument:
		n.Name = transformField(t, n.Name)
		n.Value = transformField(t, n.Value)
	case *ast.Junk:
		n.Annotations = transformList(t, n.Annotations)
	}
	return node
}

func transformField[T ast.Node](t Transformer, child T) T {
	var zero T
	if ast.IsNil(child) {
		return zero
	}
	replaced := t.Transform(child)
	if ast.IsNil(replaced) {
		return zero
	}
	typed, ok := replaced.(T)
	if !ok {
		panic(fmt.Sprintf("visitor: cannot replace %T with %T", child, replaced))
	}
	return typed
}

func transformList[T ast.Node](t Transformer, children []T) []T {
	kept := children[:0]
	for _, child := range children {
		if replaced := transformField(t, child); !ast.IsNil(replaced) {
			kept = append(kept, replaced)
		}
	}
	return kept
}
