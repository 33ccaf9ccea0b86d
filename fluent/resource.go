package fluent

import (
	"fmt"
	"github.com/lus/fluent-syntax.go/fluent/parser"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"github.com/tidwall/btree"
)

// Resource represents an index over the messages and terms of a parsed FTL source.
// Messages and terms are ordered by their identifiers; entries can be looked up by a byte offset into the source.
type Resource struct {
	tree     *ast.Resource
	messages btree.Map[string, *ast.Message]
	terms    btree.Map[string, *ast.Term]
	// Keys are the exclusive span ends of the entries
	entries btree.Map[int, ast.Entry]
	junk    []*ast.Junk
}

// NewResource parses the given source string and assembles its entries into a new Resource object.
// Besides the Resource object, this method also returns an error for every annotation of every junk entry
// and for every message or term defined more than once.
func NewResource(source string) (*Resource, []error) {
	return FromAST(parser.Parse(source))
}

// FromAST indexes an already parsed resource.
// Entries without a span are not available through EntryAt.
// If a message or term is defined more than once, the first definition is kept and an error is returned.
func FromAST(tree *ast.Resource) (*Resource, []error) {
	resource := &Resource{tree: tree}

	var errs []error
	for _, entry := range tree.Body {
		if span := entry.GetSpan(); span != nil {
			resource.entries.Set(span.End, entry)
		}

		switch e := entry.(type) {
		case *ast.Message:
			if _, exists := resource.messages.Get(e.ID.Name); exists {
				errs = append(errs, fmt.Errorf("message '%s' is already defined", e.ID.Name))
				continue
			}
			resource.messages.Set(e.ID.Name, e)
		case *ast.Term:
			if _, exists := resource.terms.Get(e.ID.Name); exists {
				errs = append(errs, fmt.Errorf("term '%s' is already defined", e.ID.Name))
				continue
			}
			resource.terms.Set(e.ID.Name, e)
		case *ast.Junk:
			resource.junk = append(resource.junk, e)
			for _, annotation := range e.Annotations {
				errs = append(errs, annotationError(annotation))
			}
		}
	}
	return resource, errs
}

// annotationError turns a junk annotation back into the parser error it was created from
func annotationError(annotation *ast.Annotation) *parser.Error {
	pos := -1
	if annotation.Span != nil {
		pos = annotation.Span.Start
	}
	return &parser.Error{
		Code:    annotation.Code,
		Args:    annotation.Arguments,
		Message: annotation.Message,
		Pos:     pos,
	}
}

// AST returns the syntax tree the resource was built from
func (resource *Resource) AST() *ast.Resource {
	return resource.tree
}

// Message returns the message with the given identifier or nil if there is none
func (resource *Resource) Message(id string) *ast.Message {
	message, _ := resource.messages.Get(id)
	return message
}

// Term returns the term with the given identifier (without the leading '-') or nil if there is none
func (resource *Resource) Term(id string) *ast.Term {
	term, _ := resource.terms.Get(id)
	return term
}

// Messages returns all messages ordered by their identifiers
func (resource *Resource) Messages() []*ast.Message {
	messages := make([]*ast.Message, 0, resource.messages.Len())
	resource.messages.Scan(func(_ string, message *ast.Message) bool {
		messages = append(messages, message)
		return true
	})
	return messages
}

// Terms returns all terms ordered by their identifiers
func (resource *Resource) Terms() []*ast.Term {
	terms := make([]*ast.Term, 0, resource.terms.Len())
	resource.terms.Scan(func(_ string, term *ast.Term) bool {
		terms = append(terms, term)
		return true
	})
	return terms
}

// Junk returns the junk entries in source order
func (resource *Resource) Junk() []*ast.Junk {
	return resource.junk
}

// EntryAt returns the entry whose span contains the given byte offset or nil if there is none
func (resource *Resource) EntryAt(offset int) ast.Entry {
	iter := resource.entries.Iter()
	// Spans are half-open, so the first entry ending after offset is the only candidate
	if !iter.Seek(offset + 1) {
		return nil
	}
	entry := iter.Value()
	if entry.GetSpan().Start > offset {
		return nil
	}
	return entry
}

// IsEmpty returns if no terms and no messages are present in the resource.
// This can be the case if the parser could not parse any valid messages and terms.
func (resource *Resource) IsEmpty() bool {
	return resource.messages.Len() == 0 && resource.terms.Len() == 0
}
