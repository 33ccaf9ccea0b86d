package parser

import "strings"

// LineOffset returns the 0-based line of the given byte position in the source
func LineOffset(source string, pos int) int {
	pos = clamp(pos, len(source))
	return strings.Count(source[:pos], "\n")
}

// ColumnOffset returns the 0-based column, in bytes, of the given byte position in the source.
// A position pointing at a line break belongs to the line the break ends.
func ColumnOffset(source string, pos int) int {
	pos = clamp(pos, len(source))
	return pos - strings.LastIndexByte(source[:pos], '\n') - 1
}

func clamp(pos, length int) int {
	return max(0, min(pos, length))
}
