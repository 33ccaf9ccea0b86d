package ast

// Node represents an interface that every AST node type implements to act as a super type.
// The set of nodes is closed: only the types of this package implement it.
type Node interface {
	NodeType() NodeType
	GetSpan() *Span
	AddSpan(start, end int)
	node()
}

// Entry is a top-level node of a Resource: Message, Term, Comment, GroupComment, ResourceComment or Junk
type Entry interface {
	Node
	entry()
}

// PatternElement is an element of a Pattern: TextElement or Placeable
type PatternElement interface {
	Node
	patternElement()
}

// Expression is the content of a Placeable: any InlineExpression or a SelectExpression
type Expression interface {
	Node
	expression()
}

// InlineExpression is the subset of expressions which may be used as selectors and call arguments
type InlineExpression interface {
	Expression
	inlineExpression()
}

// Literal is either a StringLiteral or a NumberLiteral
type Literal interface {
	InlineExpression
	RawValue() string
	literal()
}

// VariantKey is the key of a select expression variant: Identifier or NumberLiteral
type VariantKey interface {
	Node
	variantKey()
}

// Span is a [Start, End) range of byte offsets into the parsed source
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Base represents the base structure that every AST node embeds
type Base struct {
	Type NodeType `json:"type"`
	Span *Span    `json:"span,omitempty"`
}

func (_ *Base) node() {}

// NodeType returns the type tag of the node
func (base *Base) NodeType() NodeType {
	return base.Type
}

// GetSpan returns the span of the node or nil if spans were not tracked
func (base *Base) GetSpan() *Span {
	return base.Span
}

// AddSpan sets the span of the node
func (base *Base) AddSpan(start, end int) {
	base.Span = &Span{Start: start, End: end}
}

// Resource represents the AST node of the whole FTL source (the parent node of the final AST)
type Resource struct {
	Base
	Body []Entry `json:"body"`
}

// NewResource creates a new resource node
func NewResource(body ...Entry) *Resource {
	if body == nil {
		body = []Entry{}
	}
	return &Resource{Base: Base{Type: TypeResource}, Body: body}
}

// Identifier represents the identifier AST node
type Identifier struct {
	Base
	Name string `json:"name"`
}

// NewIdentifier creates a new identifier node
func NewIdentifier(name string) *Identifier {
	return &Identifier{Base: Base{Type: TypeIdentifier}, Name: name}
}

func (_ *Identifier) variantKey() {}

// Comment represents the single-# comment AST node
type Comment struct {
	Base
	Content string `json:"content"`
}

// NewComment creates a new single-# comment node
func NewComment(content string) *Comment {
	return &Comment{Base: Base{Type: TypeComment}, Content: content}
}

func (_ *Comment) entry() {}

// GroupComment represents the double-# comment AST node
type GroupComment struct {
	Base
	Content string `json:"content"`
}

// NewGroupComment creates a new double-# comment node
func NewGroupComment(content string) *GroupComment {
	return &GroupComment{Base: Base{Type: TypeGroupComment}, Content: content}
}

func (_ *GroupComment) entry() {}

// ResourceComment represents the triple-# comment AST node
type ResourceComment struct {
	Base
	Content string `json:"content"`
}

// NewResourceComment creates a new triple-# comment node
func NewResourceComment(content string) *ResourceComment {
	return &ResourceComment{Base: Base{Type: TypeResourceComment}, Content: content}
}

func (_ *ResourceComment) entry() {}

// Message represents the message declaration AST node
type Message struct {
	Base
	ID         *Identifier  `json:"id"`
	Value      *Pattern     `json:"value"`
	Attributes []*Attribute `json:"attributes"`
	Comment    *Comment     `json:"comment"`
}

// NewMessage creates a new message node. The value may be nil if attributes are given.
func NewMessage(id *Identifier, value *Pattern, attributes ...*Attribute) *Message {
	if attributes == nil {
		attributes = []*Attribute{}
	}
	return &Message{Base: Base{Type: TypeMessage}, ID: id, Value: value, Attributes: attributes}
}

func (_ *Message) entry() {}

// Term represents the term declaration AST node
type Term struct {
	Base
	ID         *Identifier  `json:"id"`
	Value      *Pattern     `json:"value"`
	Attributes []*Attribute `json:"attributes"`
	Comment    *Comment     `json:"comment"`
}

// NewTerm creates a new term node
func NewTerm(id *Identifier, value *Pattern, attributes ...*Attribute) *Term {
	if attributes == nil {
		attributes = []*Attribute{}
	}
	return &Term{Base: Base{Type: TypeTerm}, ID: id, Value: value, Attributes: attributes}
}

func (_ *Term) entry() {}

// Attribute represents the AST node of an attribute of a message or term
type Attribute struct {
	Base
	ID    *Identifier `json:"id"`
	Value *Pattern    `json:"value"`
}

// NewAttribute creates a new attribute node
func NewAttribute(id *Identifier, value *Pattern) *Attribute {
	return &Attribute{Base: Base{Type: TypeAttribute}, ID: id, Value: value}
}

// Pattern represents the pattern AST node consisting of text and placeables
type Pattern struct {
	Base
	Elements []PatternElement `json:"elements"`
}

// NewPattern creates a new pattern node
func NewPattern(elements ...PatternElement) *Pattern {
	if elements == nil {
		elements = []PatternElement{}
	}
	return &Pattern{Base: Base{Type: TypePattern}, Elements: elements}
}

// TextElement represents a simple text AST node
type TextElement struct {
	Base
	Value string `json:"value"`
}

// NewTextElement creates a new text element node
func NewTextElement(value string) *TextElement {
	return &TextElement{Base: Base{Type: TypeTextElement}, Value: value}
}

func (_ *TextElement) patternElement() {}

// Placeable represents the placeable AST node
type Placeable struct {
	Base
	Expression Expression `json:"expression"`
}

// NewPlaceable creates a new placeable node
func NewPlaceable(expression Expression) *Placeable {
	return &Placeable{Base: Base{Type: TypePlaceable}, Expression: expression}
}

func (_ *Placeable) patternElement()   {}
func (_ *Placeable) expression()       {}
func (_ *Placeable) inlineExpression() {}

// StringLiteral represents a literal string AST node.
// Value holds the raw source text between the quotes; see Parse for the decoded value.
type StringLiteral struct {
	Base
	Value string `json:"value"`
}

// NewStringLiteral creates a new string literal node from its raw value
func NewStringLiteral(raw string) *StringLiteral {
	return &StringLiteral{Base: Base{Type: TypeStringLiteral}, Value: raw}
}

// RawValue returns the literal exactly as written in the source
func (lit *StringLiteral) RawValue() string {
	return lit.Value
}

func (_ *StringLiteral) expression()       {}
func (_ *StringLiteral) inlineExpression() {}
func (_ *StringLiteral) literal()          {}

// NumberLiteral represents a literal number AST node.
// Value holds the raw source text; see Parse for the numeric value.
type NumberLiteral struct {
	Base
	Value string `json:"value"`
}

// NewNumberLiteral creates a new number literal node from its raw value
func NewNumberLiteral(raw string) *NumberLiteral {
	return &NumberLiteral{Base: Base{Type: TypeNumberLiteral}, Value: raw}
}

// RawValue returns the literal exactly as written in the source
func (lit *NumberLiteral) RawValue() string {
	return lit.Value
}

func (_ *NumberLiteral) expression()       {}
func (_ *NumberLiteral) inlineExpression() {}
func (_ *NumberLiteral) literal()          {}
func (_ *NumberLiteral) variantKey()       {}

// MessageReference represents the AST node of a reference to a message
type MessageReference struct {
	Base
	ID        *Identifier `json:"id"`
	Attribute *Identifier `json:"attribute"`
}

// NewMessageReference creates a new message reference node; attribute may be nil
func NewMessageReference(id, attribute *Identifier) *MessageReference {
	return &MessageReference{Base: Base{Type: TypeMessageReference}, ID: id, Attribute: attribute}
}

func (_ *MessageReference) expression()       {}
func (_ *MessageReference) inlineExpression() {}

// TermReference represents the AST node of a reference to a term
type TermReference struct {
	Base
	ID        *Identifier    `json:"id"`
	Attribute *Identifier    `json:"attribute"`
	Arguments *CallArguments `json:"arguments"`
}

// NewTermReference creates a new term reference node; attribute and arguments may be nil
func NewTermReference(id, attribute *Identifier, arguments *CallArguments) *TermReference {
	return &TermReference{Base: Base{Type: TypeTermReference}, ID: id, Attribute: attribute, Arguments: arguments}
}

func (_ *TermReference) expression()       {}
func (_ *TermReference) inlineExpression() {}

// VariableReference represents the AST node of a reference to a variable
type VariableReference struct {
	Base
	ID *Identifier `json:"id"`
}

// NewVariableReference creates a new variable reference node
func NewVariableReference(id *Identifier) *VariableReference {
	return &VariableReference{Base: Base{Type: TypeVariableReference}, ID: id}
}

func (_ *VariableReference) expression()       {}
func (_ *VariableReference) inlineExpression() {}

// FunctionReference represents the AST node of a reference to a function
type FunctionReference struct {
	Base
	ID        *Identifier    `json:"id"`
	Arguments *CallArguments `json:"arguments"`
}

// NewFunctionReference creates a new function reference node
func NewFunctionReference(id *Identifier, arguments *CallArguments) *FunctionReference {
	return &FunctionReference{Base: Base{Type: TypeFunctionReference}, ID: id, Arguments: arguments}
}

func (_ *FunctionReference) expression()       {}
func (_ *FunctionReference) inlineExpression() {}

// CallArguments represents the AST node of arguments passed to a term or function reference
type CallArguments struct {
	Base
	Positional []InlineExpression `json:"positional"`
	Named      []*NamedArgument   `json:"named"`
}

// NewCallArguments creates a new call arguments node
func NewCallArguments(positional []InlineExpression, named []*NamedArgument) *CallArguments {
	if positional == nil {
		positional = []InlineExpression{}
	}
	if named == nil {
		named = []*NamedArgument{}
	}
	return &CallArguments{Base: Base{Type: TypeCallArguments}, Positional: positional, Named: named}
}

// NamedArgument represents the AST node of a named argument passed to a term or function reference
type NamedArgument struct {
	Base
	Name  *Identifier `json:"name"`
	Value Literal     `json:"value"`
}

// NewNamedArgument creates a new named argument node
func NewNamedArgument(name *Identifier, value Literal) *NamedArgument {
	return &NamedArgument{Base: Base{Type: TypeNamedArgument}, Name: name, Value: value}
}

// SelectExpression represents the select AST node
type SelectExpression struct {
	Base
	Selector InlineExpression `json:"selector"`
	Variants []*Variant       `json:"variants"`
}

// NewSelectExpression creates a new select expression node
func NewSelectExpression(selector InlineExpression, variants ...*Variant) *SelectExpression {
	if variants == nil {
		variants = []*Variant{}
	}
	return &SelectExpression{Base: Base{Type: TypeSelectExpression}, Selector: selector, Variants: variants}
}

func (_ *SelectExpression) expression() {}

// Variant represents the AST node of a select expression variant
type Variant struct {
	Base
	Key     VariantKey `json:"key"`
	Value   *Pattern   `json:"value"`
	Default bool       `json:"default"`
}

// NewVariant creates a new variant node
func NewVariant(key VariantKey, value *Pattern, isDefault bool) *Variant {
	return &Variant{Base: Base{Type: TypeVariant}, Key: key, Value: value, Default: isDefault}
}

// Junk represents the AST node of unparsed content
type Junk struct {
	Base
	Content     string        `json:"content"`
	Annotations []*Annotation `json:"annotations"`
}

// NewJunk creates a new junk node holding the verbatim source slice
func NewJunk(content string) *Junk {
	return &Junk{Base: Base{Type: TypeJunk}, Content: content, Annotations: []*Annotation{}}
}

// AddAnnotation appends a diagnostic to the junk
func (junk *Junk) AddAnnotation(annotation *Annotation) {
	junk.Annotations = append(junk.Annotations, annotation)
}

func (_ *Junk) entry() {}

// Annotation represents a diagnostic attached to a junk node
type Annotation struct {
	Base
	Code      string        `json:"code"`
	Arguments []interface{} `json:"arguments"`
	Message   string        `json:"message"`
}

// NewAnnotation creates a new annotation node
func NewAnnotation(code string, arguments []interface{}, message string) *Annotation {
	if arguments == nil {
		arguments = []interface{}{}
	}
	return &Annotation{Base: Base{Type: TypeAnnotation}, Code: code, Arguments: arguments, Message: message}
}
