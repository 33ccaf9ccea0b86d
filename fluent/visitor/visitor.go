// Package visitor implements generic walks over FTL syntax trees.
//
// A Visitor or Transformer handles the node types it is interested in with a
// type switch and hands every other node to VisitChildren or
// TransformChildren, which recurse into its children using the same walker.
// Spans are never visited and annotations are visited as leaves.
package visitor

import (
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
)

// Visitor is a read-only walker
type Visitor interface {
	Visit(node ast.Node)
}

// Walk visits node with v unless it is nil
func Walk(v Visitor, node ast.Node) {
	if ast.IsNil(node) {
		return
	}
	v.Visit(node)
}

// VisitChildren calls Walk for every child of node, in source order
func VisitChildren(v Visitor, node ast.Node) {
	switch n := node.(type) {
	case *ast.Resource:
		for _, entry := range n.Body {
			Walk(v, entry)
		}
	case *ast.Message:
		Walk(v, n.ID)
		Walk(v, n.Value)
		for _, attribute := range n.Attributes {
			Walk(v, attribute)
		}
		Walk(v, n.Comment)
	case *ast.Term:
		Walk(v, n.ID)
		Walk(v, n.Value)
		for _, attribute := range n.Attributes {
			Walk(v, attribute)
		}
		Walk(v, n.Comment)
	case *ast.Attribute:
		Walk(v, n.ID)
		Walk(v, n.Value)
	case *ast.Pattern:
		for _, element := range n.Elements {
			Walk(v, element)
		}
	case *ast.Placeable:
		Walk(v, n.Expression)
	case *ast.MessageReference:
		Walk(v, n.ID)
		Walk(v, n.Attribute)
	case *ast.TermReference:
		Walk(v, n.ID)
		Walk(v, n.Attribute)
		Walk(v, n.Arguments)
	case *ast.VariableReference:
		Walk(v, n.ID)
	case *ast.FunctionReference:
		Walk(v, n.ID)
		Walk(v, n.Arguments)
	case *ast.SelectExpression:
		Walk(v, n.Selector)
		for _, variant := range n.Variants {
			Walk(v, variant)
		}
	case *ast.CallArguments:
		for _, argument := range n.Positional {
			Walk(v, argument)
		}
		for _, argument := range n.Named {
			Walk(v, argument)
		}
	case *ast.Variant:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *ast.NamedArgument:
		Walk(v, n.Name)
		Walk(v, n.Value)
	case *ast.Junk:
		for _, annotation := range n.Annotations {
			Walk(v, annotation)
		}
	}
}

// inspector adapts a function to the Visitor interface
type inspector func(ast.Node) bool

func (f inspector) Visit(node ast.Node) {
	if f(node) {
		VisitChildren(f, node)
	}
}

// Inspect calls f for node and, as long as f returns true, for all of its descendants in depth-first order
func Inspect(node ast.Node, f func(ast.Node) bool) {
	Walk(inspector(f), node)
}
