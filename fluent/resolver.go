package fluent

import (
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
)

// Resolver turns patterns into strings.
// Implementations look referenced messages and terms up in the bundle and decide
// how variables, functions and plural categories are evaluated.
type Resolver interface {
	FormatPattern(bundle *Bundle, pattern *ast.Pattern, args map[string]interface{}) (string, []error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(bundle *Bundle, pattern *ast.Pattern, args map[string]interface{}) (string, []error)

// FormatPattern calls the function itself
func (fn ResolverFunc) FormatPattern(bundle *Bundle, pattern *ast.Pattern, args map[string]interface{}) (string, []error) {
	return fn(bundle, pattern, args)
}
