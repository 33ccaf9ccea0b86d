package parser

import "regexp"

// functionName is the pattern every callee of a function reference has to match
var functionName = regexp.MustCompile(`^[A-Z][A-Z0-9_-]*$`)

// reservedLineStart lists the characters which cannot start a pattern continuation line
const reservedLineStart = "}.[*"

// isCharIDStart checks if a character is valid to be the start of an identifier
func isCharIDStart(char rune) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}

// isCharIDFollowing checks if a character is valid to be part of an identifier
func isCharIDFollowing(char rune) bool {
	return isCharIDStart(char) || isDigit(char) || char == '_' || char == '-'
}

// isDigit checks if a character is a decimal digit
func isDigit(char rune) bool {
	return char >= '0' && char <= '9'
}

// isHexDigit checks if a character is a hexadecimal digit
func isHexDigit(char rune) bool {
	return isDigit(char) || (char >= 'a' && char <= 'f') || (char >= 'A' && char <= 'F')
}

// isEntryStart checks if a character at the beginning of a line may introduce a new entry
func isEntryStart(char rune) bool {
	return isCharIDStart(char) || char == '-' || char == '#'
}

// isCharPatternContinuation checks if a character may start a continuation line of a pattern
func isCharPatternContinuation(char rune) bool {
	if char == EOF {
		return false
	}
	for _, reserved := range reservedLineStart {
		if char == reserved {
			return false
		}
	}
	return true
}

// isFunctionName checks if an identifier is a valid callee of a function reference
func isFunctionName(name string) bool {
	return functionName.MatchString(name)
}
