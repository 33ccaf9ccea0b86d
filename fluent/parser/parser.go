package parser

import (
	"errors"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"log/slog"
	"math"
	"strings"
)

// Parser is used to parse a FTL source into an AST.
// It only holds configuration, so a single parser may be used for any number of sources, even concurrently.
type Parser struct {
	withSpans bool
	logger    *slog.Logger
}

// parserOption configures a parser
type parserOption func(*Parser)

// WithSpans toggles whether the parser attaches spans to the nodes it creates; it does so by default
func WithSpans(withSpans bool) parserOption {
	return func(parser *Parser) {
		parser.withSpans = withSpans
	}
}

// WithLogger sets the logger the parser reports recovered errors to; nil disables logging
func WithLogger(logger *slog.Logger) parserOption {
	return func(parser *Parser) {
		if logger == nil {
			parser.logger = slog.New(slog.DiscardHandler)
			return
		}
		parser.logger = logger.With(slog.String("component", "parser"))
	}
}

// New creates a new FTL parser
func New(options ...parserOption) *Parser {
	parser := &Parser{
		withSpans: true,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// Parse parses a FTL source using a parser configured with the given options
func Parse(source string, options ...parserOption) *ast.Resource {
	return New(options...).Parse(source)
}

// ParseEntry parses the first entry of a FTL source using a parser configured with the given options
func ParseEntry(source string, options ...parserOption) ast.Entry {
	return New(options...).ParseEntry(source)
}

// Parse parses a FTL source into an AST.
// Parsing never fails as a whole: entries which could not be parsed are turned into junk nodes
// carrying the source they cover and an annotation describing the error.
func (parser *Parser) Parse(source string) *ast.Resource {
	str := newStream(source)

	// Blank space at the beginning of the file is ignored
	str.skipBlankBlock()

	entries := []ast.Entry{}
	var lastComment *ast.Comment
	junk := 0

	for str.currentChar() != EOF {
		entry := parser.parseEntryOrJunk(str)
		blankLines := str.skipBlankBlock()

		// A comment immediately followed by a message or term belongs to it.
		// As the next entry may also turn out to be junk, the comment is held back until it got parsed.
		if comment, ok := entry.(*ast.Comment); ok && len(blankLines) == 0 && str.currentChar() != EOF {
			lastComment = comment
			continue
		}

		if lastComment != nil {
			switch e := entry.(type) {
			case *ast.Message:
				e.Comment = lastComment
				parser.extendSpan(e, lastComment)
			case *ast.Term:
				e.Comment = lastComment
				parser.extendSpan(e, lastComment)
			default:
				entries = append(entries, lastComment)
			}
			lastComment = nil
		}

		if _, ok := entry.(*ast.Junk); ok {
			junk++
		}
		entries = append(entries, entry)
	}

	resource := ast.NewResource(entries...)
	if parser.withSpans {
		resource.AddSpan(0, str.index)
	}

	parser.logger.Debug("parsed resource", slog.Int("entries", len(entries)), slog.Int("junk", junk))
	return resource
}

// ParseEntry parses the first message or term of a FTL source.
// Leading comments are skipped unless they could not be parsed, in which case their junk is returned.
func (parser *Parser) ParseEntry(source string) ast.Entry {
	str := newStream(source)
	str.skipBlankBlock()

	for str.currentChar() == '#' {
		skipped := parser.parseEntryOrJunk(str)
		if junk, ok := skipped.(*ast.Junk); ok {
			return junk
		}
		str.skipBlankBlock()
	}

	return parser.parseEntryOrJunk(str)
}

// extendSpan makes the span of a declaration start at the comment attached to it
func (parser *Parser) extendSpan(entry ast.Entry, comment *ast.Comment) {
	if !parser.withSpans || entry.GetSpan() == nil || comment.Span == nil {
		return
	}
	entry.GetSpan().Start = comment.Span.Start
}

// parseEntryOrJunk parses a single entry and turns it into a junk node if an error occurred while parsing it
func (parser *Parser) parseEntryOrJunk(str *stream) ast.Entry {
	start := str.index

	entry, err := parser.parseEntry(str)
	if err == nil {
		err = str.expectLineEnd()
	}
	if err == nil {
		return entry
	}

	var parseErr *Error
	if !errors.As(err, &parseErr) {
		parseErr = str.fail("E0001")
	}

	// The annotation has to point inside of the junk
	errorIndex := str.index
	str.skipToNextEntryStart(start)
	nextEntryStart := str.index
	if nextEntryStart < errorIndex {
		errorIndex = nextEntryStart
	}

	junk := ast.NewJunk(str.slice(start, nextEntryStart))
	if parser.withSpans {
		junk.AddSpan(start, nextEntryStart)
	}
	annotation := ast.NewAnnotation(parseErr.Code, parseErr.Args, parseErr.Message)
	annotation.AddSpan(errorIndex, errorIndex)
	junk.AddAnnotation(annotation)

	parser.logger.Debug("entry turned into junk",
		slog.String("code", parseErr.Code),
		slog.Int("start", start),
		slog.Int("end", nextEntryStart))
	return junk
}

// parseEntry parses an entry node (comment, message or term)
func (parser *Parser) parseEntry(str *stream) (ast.Entry, error) {
	switch {
	case str.currentChar() == '#':
		return parser.parseComment(str)
	case str.currentChar() == '-':
		term, err := parser.parseTerm(str)
		if err != nil {
			return nil, err
		}
		return term, nil
	case str.isIdentifierStart():
		message, err := parser.parseMessage(str)
		if err != nil {
			return nil, err
		}
		return message, nil
	}
	return nil, str.fail("E0002")
}

// parseComment parses a comment node. The level of the first line ('#', '##' or '###') decides its type
// and every following line has to repeat exactly that level to continue the comment.
func (parser *Parser) parseComment(str *stream) (ast.Entry, error) {
	start := str.index

	level := -1
	var content strings.Builder

	for {
		maxLevel := level
		if level == -1 {
			maxLevel = 2
		}
		i := -1
		for str.currentChar() == '#' && i < maxLevel {
			str.next()
			i++
		}
		if level == -1 {
			level = i
		}

		if str.currentChar() != EOL {
			// The '#'s have to be followed by a space
			if err := str.expectChar(' '); err != nil {
				return nil, err
			}
			for {
				char, ok := str.takeChar(func(char rune) bool { return char != EOL })
				if !ok {
					break
				}
				content.WriteRune(char)
			}
		}

		if !str.isNextLineComment(level) {
			break
		}
		content.WriteRune(EOL)
		str.next()
	}

	var comment ast.Entry
	switch level {
	case 0:
		comment = spanned(parser, str, start, ast.NewComment(content.String()))
	case 1:
		comment = spanned(parser, str, start, ast.NewGroupComment(content.String()))
	default:
		comment = spanned(parser, str, start, ast.NewResourceComment(content.String()))
	}
	return comment, nil
}

// parseMessage parses a message node
func (parser *Parser) parseMessage(str *stream) (*ast.Message, error) {
	start := str.index

	id, err := parser.parseIdentifier(str)
	if err != nil {
		return nil, err
	}

	// Whitespace before the '=' is ignored
	str.skipBlankInline()
	if err := str.expectChar('='); err != nil {
		return nil, err
	}

	value, err := parser.parseOptionalPattern(str)
	if err != nil {
		return nil, err
	}
	attributes, err := parser.parseAttributes(str)
	if err != nil {
		return nil, err
	}

	// A message needs a value, attributes or both
	if value == nil && len(attributes) == 0 {
		return nil, str.fail("E0005", id.Name)
	}

	return spanned(parser, str, start, ast.NewMessage(id, value, attributes...)), nil
}

// parseTerm parses a term node
func (parser *Parser) parseTerm(str *stream) (*ast.Term, error) {
	start := str.index

	if err := str.expectChar('-'); err != nil {
		return nil, err
	}
	id, err := parser.parseIdentifier(str)
	if err != nil {
		return nil, err
	}

	str.skipBlankInline()
	if err := str.expectChar('='); err != nil {
		return nil, err
	}

	// Other than messages, terms always need a value
	value, err := parser.parseOptionalPattern(str)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, str.fail("E0006", id.Name)
	}

	attributes, err := parser.parseAttributes(str)
	if err != nil {
		return nil, err
	}

	return spanned(parser, str, start, ast.NewTerm(id, value, attributes...)), nil
}

// parseAttributes parses all attributes following a message or term value
func (parser *Parser) parseAttributes(str *stream) ([]*ast.Attribute, error) {
	attributes := []*ast.Attribute{}
	str.peekBlank()
	for str.isAttributeStart() {
		str.skipToPeek()
		attribute, err := parser.parseAttribute(str)
		if err != nil {
			return nil, err
		}
		attributes = append(attributes, attribute)
		str.peekBlank()
	}
	return attributes, nil
}

// parseAttribute parses an attribute node
func (parser *Parser) parseAttribute(str *stream) (*ast.Attribute, error) {
	start := str.index

	if err := str.expectChar('.'); err != nil {
		return nil, err
	}
	id, err := parser.parseIdentifier(str)
	if err != nil {
		return nil, err
	}

	str.skipBlankInline()
	if err := str.expectChar('='); err != nil {
		return nil, err
	}

	value, err := parser.parseOptionalPattern(str)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, str.fail("E0012")
	}

	return spanned(parser, str, start, ast.NewAttribute(id, value)), nil
}

// parseIdentifier parses an identifier node
func (parser *Parser) parseIdentifier(str *stream) (*ast.Identifier, error) {
	start := str.index

	if _, err := str.takeIDStart(); err != nil {
		return nil, err
	}
	for {
		if _, ok := str.takeIDChar(); !ok {
			break
		}
	}

	return spanned(parser, str, start, ast.NewIdentifier(str.slice(start, str.index))), nil
}

// parseOptionalPattern parses a pattern if one follows, returns nil otherwise.
// A pattern starting on the same line as the '=' is inline; a pattern starting on an indented following line
// is a block pattern, whose first line counts towards the common indent.
func (parser *Parser) parseOptionalPattern(str *stream) (*ast.Pattern, error) {
	str.peekBlankInline()
	if str.isValueStart() {
		str.skipToPeek()
		return parser.parsePattern(str, false)
	}

	str.peekBlankBlock()
	if str.isValueContinuation() {
		str.skipToPeek()
		return parser.parsePattern(str, true)
	}

	return nil, nil
}

// indent is a token used temporarily by parsePattern to dedent the pattern.
// It is either trimmed and merged into adjacent text elements or turned into a text element of its own.
type indent struct {
	ast.Base
	Value string
}

func newIndent(value string, start, end int) *indent {
	in := &indent{Value: value}
	in.AddSpan(start, end)
	return in
}

// parsePattern parses a pattern node
func (parser *Parser) parsePattern(str *stream, block bool) (*ast.Pattern, error) {
	start := str.index

	var elements []ast.Node
	commonIndent := math.MaxInt
	if block {
		blankStart := str.index
		firstIndent := str.skipBlankInline()
		elements = append(elements, newIndent(firstIndent, blankStart, str.index))
		commonIndent = len(firstIndent)
	}

elements:
	for {
		switch str.currentChar() {
		case EOF:
			break elements
		case EOL:
			blankStart := str.index
			blankLines := str.peekBlankBlock()
			if !str.isValueContinuation() {
				// A line break which is not followed by a continuation ends the pattern
				str.resetPeek(0)
				break elements
			}
			str.skipToPeek()
			lineIndent := str.skipBlankInline()
			commonIndent = min(commonIndent, len(lineIndent))
			elements = append(elements, newIndent(blankLines+lineIndent, blankStart, str.index))
		case '{':
			placeable, err := parser.parsePlaceable(str)
			if err != nil {
				return nil, err
			}
			elements = append(elements, placeable)
		case '}':
			return nil, str.fail("E0027")
		default:
			elements = append(elements, parser.parseTextElement(str))
		}
	}

	return spanned(parser, str, start, ast.NewPattern(parser.dedent(elements, commonIndent)...)), nil
}

// dedent removes the common indent from every indent token and joins adjacent text.
// Trailing whitespace of the last text element is trimmed.
func (parser *Parser) dedent(elements []ast.Node, commonIndent int) []ast.PatternElement {
	trimmed := make([]ast.PatternElement, 0, len(elements))

	for _, element := range elements {
		var value string
		var span *ast.Span
		switch el := element.(type) {
		case *ast.Placeable:
			trimmed = append(trimmed, el)
			continue
		case *indent:
			el.Value = el.Value[:len(el.Value)-commonIndent]
			if el.Value == "" {
				continue
			}
			value, span = el.Value, el.Span
		case *ast.TextElement:
			value, span = el.Value, el.Span
		}

		// Join consecutive text
		if len(trimmed) > 0 {
			if previous, ok := trimmed[len(trimmed)-1].(*ast.TextElement); ok {
				sum := ast.NewTextElement(previous.Value + value)
				if parser.withSpans {
					sum.AddSpan(previous.Span.Start, span.End)
				}
				trimmed[len(trimmed)-1] = sum
				continue
			}
		}

		// Indents which could not be joined (e.g. following a placeable) become text of their own
		text, ok := element.(*ast.TextElement)
		if !ok {
			text = ast.NewTextElement(value)
			if parser.withSpans {
				text.AddSpan(span.Start, span.End)
			}
		}
		trimmed = append(trimmed, text)
	}

	if len(trimmed) > 0 {
		if text, ok := trimmed[len(trimmed)-1].(*ast.TextElement); ok {
			text.Value = strings.TrimRight(text.Value, " \t\n\r")
			if text.Value == "" {
				trimmed = trimmed[:len(trimmed)-1]
			}
		}
	}
	return trimmed
}

// parseTextElement parses a text element node up to the next placeable or line break
func (parser *Parser) parseTextElement(str *stream) *ast.TextElement {
	start := str.index
	for {
		char := str.currentChar()
		if char == EOF || char == EOL || char == '{' || char == '}' {
			break
		}
		str.next()
	}
	return spanned(parser, str, start, ast.NewTextElement(str.slice(start, str.index)))
}

// parsePlaceable parses a placeable node
func (parser *Parser) parsePlaceable(str *stream) (*ast.Placeable, error) {
	start := str.index

	if err := str.expectChar('{'); err != nil {
		return nil, err
	}
	str.skipBlank()
	expression, err := parser.parseExpression(str)
	if err != nil {
		return nil, err
	}
	if err := str.expectChar('}'); err != nil {
		return nil, err
	}

	return spanned(parser, str, start, ast.NewPlaceable(expression)), nil
}

// parseExpression parses the content of a placeable, which is either an inline or a select expression
func (parser *Parser) parseExpression(str *stream) (ast.Expression, error) {
	start := str.index

	selector, err := parser.parseInlineExpression(str)
	if err != nil {
		return nil, err
	}
	str.skipBlank()

	if str.currentChar() == '-' {
		if str.peek() != '>' {
			str.resetPeek(0)
			return selector, nil
		}

		// Only some expressions may be used as selectors
		switch sel := selector.(type) {
		case *ast.MessageReference:
			if sel.Attribute == nil {
				return nil, str.fail("E0016")
			}
			return nil, str.fail("E0018")
		case *ast.TermReference:
			if sel.Attribute == nil {
				return nil, str.fail("E0017")
			}
		case *ast.Placeable:
			return nil, str.fail("E0029")
		}

		// Skip the '->'
		str.next()
		str.next()

		str.skipBlankInline()
		if err := str.expectLineEnd(); err != nil {
			return nil, err
		}

		variants, err := parser.parseVariants(str)
		if err != nil {
			return nil, err
		}
		return spanned(parser, str, start, ast.NewSelectExpression(selector, variants...)), nil
	}

	if term, ok := selector.(*ast.TermReference); ok && term.Attribute != nil {
		return nil, str.fail("E0019")
	}
	return selector, nil
}

// parseInlineExpression parses an expression which may be used as a selector or a call argument
func (parser *Parser) parseInlineExpression(str *stream) (ast.InlineExpression, error) {
	start := str.index

	switch {
	case str.currentChar() == '{':
		placeable, err := parser.parsePlaceable(str)
		if err != nil {
			return nil, err
		}
		return placeable, nil

	case str.isNumberStart():
		number, err := parser.parseNumber(str)
		if err != nil {
			return nil, err
		}
		return number, nil

	case str.currentChar() == '"':
		literal, err := parser.parseString(str)
		if err != nil {
			return nil, err
		}
		return literal, nil

	case str.currentChar() == '$':
		str.next()
		id, err := parser.parseIdentifier(str)
		if err != nil {
			return nil, err
		}
		return spanned(parser, str, start, ast.NewVariableReference(id)), nil

	case str.currentChar() == '-':
		str.next()
		id, err := parser.parseIdentifier(str)
		if err != nil {
			return nil, err
		}

		var attribute *ast.Identifier
		if str.currentChar() == '.' {
			str.next()
			if attribute, err = parser.parseIdentifier(str); err != nil {
				return nil, err
			}
		}

		var args *ast.CallArguments
		str.peekBlank()
		if str.currentPeek() == '(' {
			str.skipToPeek()
			if args, err = parser.parseCallArguments(str); err != nil {
				return nil, err
			}
		}

		return spanned(parser, str, start, ast.NewTermReference(id, attribute, args)), nil

	case str.isIdentifierStart():
		id, err := parser.parseIdentifier(str)
		if err != nil {
			return nil, err
		}
		str.peekBlank()

		if str.currentPeek() == '(' {
			// Functions have to be upper-case
			if !isFunctionName(id.Name) {
				return nil, str.fail("E0008")
			}
			str.skipToPeek()
			args, err := parser.parseCallArguments(str)
			if err != nil {
				return nil, err
			}
			return spanned(parser, str, start, ast.NewFunctionReference(id, args)), nil
		}

		var attribute *ast.Identifier
		if str.currentChar() == '.' {
			str.next()
			if attribute, err = parser.parseIdentifier(str); err != nil {
				return nil, err
			}
		}
		return spanned(parser, str, start, ast.NewMessageReference(id, attribute)), nil
	}

	return nil, str.fail("E0028")
}

// parseCallArguments parses the parenthesized arguments of a term or function reference
func (parser *Parser) parseCallArguments(str *stream) (*ast.CallArguments, error) {
	start := str.index

	positional := []ast.InlineExpression{}
	named := []*ast.NamedArgument{}
	names := make(map[string]struct{})

	if err := str.expectChar('('); err != nil {
		return nil, err
	}
	str.skipBlank()

	for str.currentChar() != ')' {
		arg, namedArg, err := parser.parseCallArgument(str)
		if err != nil {
			return nil, err
		}

		if namedArg != nil {
			if _, ok := names[namedArg.Name.Name]; ok {
				return nil, str.fail("E0022")
			}
			named = append(named, namedArg)
			names[namedArg.Name.Name] = struct{}{}
		} else if len(names) > 0 {
			return nil, str.fail("E0021")
		} else {
			positional = append(positional, arg)
		}

		str.skipBlank()
		if str.currentChar() != ',' {
			break
		}
		str.next()
		str.skipBlank()
	}

	if err := str.expectChar(')'); err != nil {
		return nil, err
	}
	return spanned(parser, str, start, ast.NewCallArguments(positional, named)), nil
}

// parseCallArgument parses a single call argument.
// Exactly one of the positional expression and the named argument is returned.
func (parser *Parser) parseCallArgument(str *stream) (ast.InlineExpression, *ast.NamedArgument, error) {
	start := str.index

	expression, err := parser.parseInlineExpression(str)
	if err != nil {
		return nil, nil, err
	}
	str.skipBlank()

	if str.currentChar() != ':' {
		return expression, nil, nil
	}

	// Only simple identifiers are allowed as argument names
	ref, ok := expression.(*ast.MessageReference)
	if !ok || ref.Attribute != nil {
		return nil, nil, str.fail("E0009")
	}

	str.next()
	str.skipBlank()
	value, err := parser.parseLiteral(str)
	if err != nil {
		return nil, nil, err
	}
	return nil, spanned(parser, str, start, ast.NewNamedArgument(ref.ID, value)), nil
}

// parseVariants parses the variants of a select expression; exactly one of them has to be the default
func (parser *Parser) parseVariants(str *stream) ([]*ast.Variant, error) {
	var variants []*ast.Variant
	hasDefault := false

	str.skipBlank()
	for str.isVariantStart() {
		variant, err := parser.parseVariant(str, hasDefault)
		if err != nil {
			return nil, err
		}
		if variant.Default {
			hasDefault = true
		}
		variants = append(variants, variant)

		if err := str.expectLineEnd(); err != nil {
			return nil, err
		}
		str.skipBlank()
	}

	if len(variants) == 0 {
		return nil, str.fail("E0011")
	}
	if !hasDefault {
		return nil, str.fail("E0010")
	}
	return variants, nil
}

// parseVariant parses a single variant of a select expression
func (parser *Parser) parseVariant(str *stream, hasDefault bool) (*ast.Variant, error) {
	start := str.index

	isDefault := false
	if str.currentChar() == '*' {
		if hasDefault {
			return nil, str.fail("E0015")
		}
		str.next()
		isDefault = true
	}

	if err := str.expectChar('['); err != nil {
		return nil, err
	}
	str.skipBlank()

	key, err := parser.parseVariantKey(str)
	if err != nil {
		return nil, err
	}

	str.skipBlank()
	if err := str.expectChar(']'); err != nil {
		return nil, err
	}

	value, err := parser.parseOptionalPattern(str)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, str.fail("E0012")
	}

	return spanned(parser, str, start, ast.NewVariant(key, value, isDefault)), nil
}

// parseVariantKey parses the key of a variant, which is either a number or an identifier
func (parser *Parser) parseVariantKey(str *stream) (ast.VariantKey, error) {
	char := str.currentChar()
	if char == EOF {
		return nil, str.fail("E0013")
	}

	if isDigit(char) || char == '-' {
		number, err := parser.parseNumber(str)
		if err != nil {
			return nil, err
		}
		return number, nil
	}

	id, err := parser.parseIdentifier(str)
	if err != nil {
		return nil, err
	}
	return id, nil
}

// parseLiteral parses a string or number literal
func (parser *Parser) parseLiteral(str *stream) (ast.Literal, error) {
	if str.isNumberStart() {
		number, err := parser.parseNumber(str)
		if err != nil {
			return nil, err
		}
		return number, nil
	}

	if str.currentChar() == '"' {
		literal, err := parser.parseString(str)
		if err != nil {
			return nil, err
		}
		return literal, nil
	}

	return nil, str.fail("E0014")
}

// parseNumber parses a number literal node with an optional minus sign and fraction
func (parser *Parser) parseNumber(str *stream) (*ast.NumberLiteral, error) {
	start := str.index

	if str.currentChar() == '-' {
		str.next()
	}
	if err := parser.parseDigits(str); err != nil {
		return nil, err
	}

	if str.currentChar() == '.' {
		str.next()
		if err := parser.parseDigits(str); err != nil {
			return nil, err
		}
	}

	return spanned(parser, str, start, ast.NewNumberLiteral(str.slice(start, str.index))), nil
}

// parseDigits consumes at least one digit
func (parser *Parser) parseDigits(str *stream) error {
	start := str.index
	for {
		if _, ok := str.takeDigit(); !ok {
			break
		}
	}
	if str.index == start {
		return str.fail("E0004", "0-9")
	}
	return nil
}

// parseString parses a string literal node. Escape sequences are validated but kept as written.
func (parser *Parser) parseString(str *stream) (*ast.StringLiteral, error) {
	start := str.index

	if err := str.expectChar('"'); err != nil {
		return nil, err
	}

	var value strings.Builder
	for {
		char, ok := str.takeChar(func(char rune) bool { return char != '"' && char != EOL })
		if !ok {
			break
		}
		if char != '\\' {
			value.WriteRune(char)
			continue
		}
		sequence, err := parser.parseEscapeSequence(str)
		if err != nil {
			return nil, err
		}
		value.WriteString(sequence)
	}

	if str.currentChar() == EOL {
		return nil, str.fail("E0020")
	}
	if err := str.expectChar('"'); err != nil {
		return nil, err
	}

	return spanned(parser, str, start, ast.NewStringLiteral(value.String())), nil
}

// parseEscapeSequence parses the escape sequence following a backslash
func (parser *Parser) parseEscapeSequence(str *stream) (string, error) {
	switch next := str.currentChar(); next {
	case '\\', '"':
		str.next()
		return `\` + string(next), nil
	case 'u':
		return parser.parseUnicodeEscapeSequence(str, next, 4)
	case 'U':
		return parser.parseUnicodeEscapeSequence(str, next, 6)
	default:
		return "", str.fail("E0025", next)
	}
}

// parseUnicodeEscapeSequence parses a \uHHHH or \UHHHHHH escape sequence
func (parser *Parser) parseUnicodeEscapeSequence(str *stream, u rune, digits int) (string, error) {
	if err := str.expectChar(u); err != nil {
		return "", err
	}

	sequence := `\` + string(u)
	for i := 0; i < digits; i++ {
		char, ok := str.takeHexDigit()
		if !ok {
			return "", str.fail("E0026", sequence+charString(str.currentChar()))
		}
		sequence += string(char)
	}
	return sequence, nil
}

// spanned attaches the span from start to the current index to a node, unless spans are disabled
// or the node already got one from a nested call
func spanned[T ast.Node](parser *Parser, str *stream, start int, node T) T {
	if parser.withSpans && node.GetSpan() == nil {
		node.AddSpan(start, str.index)
	}
	return node
}
