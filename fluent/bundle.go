package fluent

import (
	"fmt"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"github.com/tidwall/btree"
	"golang.org/x/text/language"
)

// Bundle represents a collection of messages and terms collected from one or many resources.
// It is what a Resolver looks messages and terms up in; formatting itself is left to the resolver.
type Bundle struct {
	locales  []language.Tag
	messages btree.Map[string, *ast.Message]
	terms    btree.Map[string, *ast.Term]
}

// NewBundle creates a new empty bundle.
// The locales are not interpreted by the bundle and are only handed to the resolver.
func NewBundle(primaryLocale language.Tag, fallbackLocales ...language.Tag) *Bundle {
	locales := make([]language.Tag, 0, len(fallbackLocales)+1)
	locales = append(locales, primaryLocale)
	locales = append(locales, fallbackLocales...)
	return &Bundle{locales: locales}
}

// Locales returns the primary locale followed by the fallback locales
func (bundle *Bundle) Locales() []language.Tag {
	return bundle.locales
}

// AddResource adds a Resource to the Bundle.
// If a message or term was already defined by another resource, an error is raised and the entry is skipped.
func (bundle *Bundle) AddResource(resource *Resource) (errs []error) {
	for _, message := range resource.Messages() {
		id := message.ID.Name
		if _, exists := bundle.messages.Get(id); exists {
			errs = append(errs, fmt.Errorf("message '%s' is already defined", id))
			continue
		}
		bundle.messages.Set(id, message)
	}
	for _, term := range resource.Terms() {
		id := term.ID.Name
		if _, exists := bundle.terms.Get(id); exists {
			errs = append(errs, fmt.Errorf("term '%s' is already defined", id))
			continue
		}
		bundle.terms.Set(id, term)
	}
	return
}

// AddResourceOverriding adds a Resource to the Bundle.
// If a message or term was already defined by another resource, the already existing one gets overridden.
func (bundle *Bundle) AddResourceOverriding(resource *Resource) {
	for _, message := range resource.Messages() {
		bundle.messages.Set(message.ID.Name, message)
	}
	for _, term := range resource.Terms() {
		bundle.terms.Set(term.ID.Name, term)
	}
}

// Message returns the message with the given identifier or nil if there is none
func (bundle *Bundle) Message(id string) *ast.Message {
	message, _ := bundle.messages.Get(id)
	return message
}

// Term returns the term with the given identifier or nil if there is none
func (bundle *Bundle) Term(id string) *ast.Term {
	term, _ := bundle.terms.Get(id)
	return term
}

// FormatMessage formats the value of the message with the given key using the given resolver.
// Besides the formatted message, this method returns the errors the resolver stumbled upon
// and an optional error if there is no message with the given key or it has no value.
// If the resolver returns errors it does not automatically mean that the whole message could not be resolved.
// It may be just incomplete.
func (bundle *Bundle) FormatMessage(resolver Resolver, key string, args map[string]interface{}) (string, []error, error) {
	message := bundle.Message(key)
	if message == nil {
		return "", nil, fmt.Errorf("message '%s' does not exist", key)
	}
	if message.Value == nil {
		return "", nil, fmt.Errorf("message '%s' has no value", key)
	}
	result, errs := resolver.FormatPattern(bundle, message.Value, args)
	return result, errs, nil
}

// FormatAttribute formats an attribute of the message with the given key using the given resolver
func (bundle *Bundle) FormatAttribute(resolver Resolver, key, attribute string, args map[string]interface{}) (string, []error, error) {
	message := bundle.Message(key)
	if message == nil {
		return "", nil, fmt.Errorf("message '%s' does not exist", key)
	}
	for _, attr := range message.Attributes {
		if attr.ID.Name == attribute {
			result, errs := resolver.FormatPattern(bundle, attr.Value, args)
			return result, errs, nil
		}
	}
	return "", nil, fmt.Errorf("message '%s' has no attribute '%s'", key, attribute)
}
