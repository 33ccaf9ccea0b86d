package parser

import "strings"

// peekBlankInline moves the peek position over a run of spaces and returns it
func (str *stream) peekBlankInline() string {
	start := str.index + str.peekOffset
	for str.currentPeek() == ' ' {
		str.peek()
	}
	return str.slice(start, str.index+str.peekOffset)
}

// skipBlankInline skips a run of spaces and returns it
func (str *stream) skipBlankInline() string {
	blank := str.peekBlankInline()
	str.skipToPeek()
	return blank
}

// peekBlankBlock moves the peek position over blank lines and returns one EOL per line.
// The peek position ends up at the first column of the first non-blank line.
func (str *stream) peekBlankBlock() string {
	var blank strings.Builder
	for {
		lineStart := str.peekOffset
		str.peekBlankInline()
		switch str.currentPeek() {
		case EOL:
			blank.WriteRune(EOL)
			str.peek()
		case EOF:
			// A blank line at the end of the input still counts as a blank block
			return blank.String()
		default:
			str.resetPeek(lineStart)
			return blank.String()
		}
	}
}

// skipBlankBlock skips blank lines and returns one EOL per line
func (str *stream) skipBlankBlock() string {
	blank := str.peekBlankBlock()
	str.skipToPeek()
	return blank
}

// peekBlank moves the peek position over spaces and line breaks
func (str *stream) peekBlank() {
	for str.currentPeek() == ' ' || str.currentPeek() == EOL {
		str.peek()
	}
}

// skipBlank skips spaces and line breaks
func (str *stream) skipBlank() {
	str.peekBlank()
	str.skipToPeek()
}

// expectChar consumes the given character or fails with E0003
func (str *stream) expectChar(char rune) error {
	if str.currentChar() == char {
		str.next()
		return nil
	}
	return str.fail("E0003", char)
}

// expectLineEnd consumes a line break. The end of the input is a valid line end too.
func (str *stream) expectLineEnd() error {
	switch str.currentChar() {
	case EOF:
		return nil
	case EOL:
		str.next()
		return nil
	}
	return str.fail("E0003", "␤")
}

// takeChar consumes and returns the current character if it satisfies the predicate
func (str *stream) takeChar(predicate func(char rune) bool) (rune, bool) {
	char := str.currentChar()
	if char == EOF || !predicate(char) {
		return char, false
	}
	str.next()
	return char, true
}

// takeIDStart consumes the first character of an identifier or fails with E0004
func (str *stream) takeIDStart() (rune, error) {
	if char, ok := str.takeChar(isCharIDStart); ok {
		return char, nil
	}
	return EOF, str.fail("E0004", "a-zA-Z")
}

func (str *stream) takeIDChar() (rune, bool) {
	return str.takeChar(isCharIDFollowing)
}

func (str *stream) takeDigit() (rune, bool) {
	return str.takeChar(isDigit)
}

func (str *stream) takeHexDigit() (rune, bool) {
	return str.takeChar(isHexDigit)
}

// isIdentifierStart checks if the character at the peek position may start an identifier
func (str *stream) isIdentifierStart() bool {
	return isCharIDStart(str.currentPeek())
}

// isNumberStart checks if a number literal starts at the committed index, allowing a leading minus
func (str *stream) isNumberStart() bool {
	char := str.currentChar()
	if char == '-' {
		char = str.peek()
	}
	str.resetPeek(0)
	return isDigit(char)
}

// isValueStart checks if an inline pattern starts at the peek position
func (str *stream) isValueStart() bool {
	char := str.currentPeek()
	return char != EOL && char != EOF
}

// isValueContinuation checks if the line at the peek position continues a pattern.
// It has to be indented and must not start with a reserved character, unless it starts with a placeable.
func (str *stream) isValueContinuation() bool {
	column1 := str.peekOffset
	str.peekBlankInline()

	if str.currentPeek() == '{' {
		str.resetPeek(column1)
		return true
	}
	if str.peekOffset == column1 {
		return false
	}
	if isCharPatternContinuation(str.currentPeek()) {
		str.resetPeek(column1)
		return true
	}
	return false
}

// isNextLineComment checks if the line after the current EOL is a comment.
// A level of -1 accepts any comment; 0, 1 and 2 require exactly #, ## or ### respectively.
func (str *stream) isNextLineComment(level int) bool {
	if str.currentChar() != EOL {
		return false
	}

	for i := 0; i <= level || (level == -1 && i < 3); i++ {
		if str.peek() != '#' {
			if i <= level && level != -1 {
				str.resetPeek(0)
				return false
			}
			break
		}
	}

	// The character after the hashes
	char := str.peek()
	str.resetPeek(0)
	return char == ' ' || char == EOL
}

// isVariantStart checks if a variant key, optionally marked as default, starts at the peek position
func (str *stream) isVariantStart() bool {
	offset := str.peekOffset
	if str.currentPeek() == '*' {
		str.peek()
	}
	isStart := str.currentPeek() == '['
	str.resetPeek(offset)
	return isStart
}

// isAttributeStart checks if an attribute starts at the peek position
func (str *stream) isAttributeStart() bool {
	return str.currentPeek() == '.'
}

// skipToNextEntryStart moves the index to the beginning of the next line which looks like an entry start.
// It never rewinds to a line break located before junkStart, so repeated recovery always makes progress.
func (str *stream) skipToNextEntryStart(junkStart int) {
	str.resetPeek(0)
	if lastNewline := strings.LastIndexByte(str.source[:min(str.index+1, len(str.source))], '\n'); junkStart < lastNewline {
		str.index = lastNewline
	}
	for str.currentChar() != EOF {
		if str.currentChar() != EOL {
			str.next()
			continue
		}
		if isEntryStart(str.next()) {
			break
		}
	}
}
