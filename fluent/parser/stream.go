package parser

import "unicode/utf8"

const (
	EOF rune = -1
	EOL rune = '\n'
)

// stream is used by the parser to navigate through the source.
// It keeps a committed byte index and a speculative peek offset relative to it.
// A CRLF sequence is always read as a single EOL.
type stream struct {
	source     string
	index      int
	peekOffset int
}

// newStream creates a new stream from a source string
func newStream(source string) *stream {
	return &stream{source: source}
}

// charAt returns the character at the given byte position without moving anything.
// The CR of a CRLF sequence is returned as EOL.
func (str *stream) charAt(pos int) rune {
	char, _ := str.decode(pos)
	return char
}

// decode returns the character at the given byte position and its width in bytes
func (str *stream) decode(pos int) (rune, int) {
	if pos < 0 || pos >= len(str.source) {
		return EOF, 0
	}
	if str.source[pos] == '\r' && pos+1 < len(str.source) && str.source[pos+1] == '\n' {
		return EOL, 2
	}
	if str.source[pos] < utf8.RuneSelf {
		return rune(str.source[pos]), 1
	}
	return utf8.DecodeRuneInString(str.source[pos:])
}

// currentChar returns the character at the committed index
func (str *stream) currentChar() rune {
	return str.charAt(str.index)
}

// currentPeek returns the character at the peek position
func (str *stream) currentPeek() rune {
	return str.charAt(str.index + str.peekOffset)
}

// next moves the committed index forward by one character, resets the peek offset and returns the new current character
func (str *stream) next() rune {
	str.peekOffset = 0
	_, width := str.decode(str.index)
	if width == 0 {
		return EOF
	}
	str.index += width
	return str.currentChar()
}

// peek moves the peek position forward by one character and returns the character found there
func (str *stream) peek() rune {
	_, width := str.decode(str.index + str.peekOffset)
	if width == 0 {
		return EOF
	}
	str.peekOffset += width
	return str.currentPeek()
}

// resetPeek moves the peek position back to the given offset from the committed index
func (str *stream) resetPeek(offset int) {
	str.peekOffset = offset
}

// skipToPeek commits the peek position as the new index
func (str *stream) skipToPeek() {
	str.index += str.peekOffset
	str.peekOffset = 0
}

// slice returns the source between two byte positions
func (str *stream) slice(start, end int) string {
	return str.source[start:end]
}

// fail creates an error of the given code positioned at the committed index
func (str *stream) fail(code string, args ...interface{}) *Error {
	err := newError(code, args...)
	err.Pos = str.index
	return err
}
