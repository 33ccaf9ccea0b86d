package ast

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse decodes the escape sequences of the raw string literal value.
// Known escapes are \\, \", \uHHHH and \UHHHHHH. Escapes naming a surrogate or a value outside the
// Unicode range decode to U+FFFD. Any other backslash is kept as written.
func (lit *StringLiteral) Parse() string {
	raw := lit.Value
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}

	var builder strings.Builder
	builder.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		char := raw[i]
		if char != '\\' || i+1 >= len(raw) {
			builder.WriteByte(char)
			continue
		}

		switch next := raw[i+1]; next {
		case '\\', '"':
			builder.WriteByte(next)
			i++
		case 'u', 'U':
			digits := 4
			if next == 'U' {
				digits = 6
			}
			hex := raw[i+2 : min(i+2+digits, len(raw))]
			if len(hex) != digits || !isHex(hex) {
				builder.WriteByte(char)
				continue
			}
			builder.WriteRune(decodeCodePoint(hex))
			i += 1 + digits
		default:
			builder.WriteByte(char)
		}
	}
	return builder.String()
}

// Parse returns the numeric value of the number literal together with its precision,
// the count of digits following the decimal point
func (lit *NumberLiteral) Parse() (float64, int) {
	value, _ := strconv.ParseFloat(lit.Value, 64)
	precision := 0
	if dot := strings.IndexByte(lit.Value, '.'); dot > 0 {
		precision = len(lit.Value) - dot - 1
	}
	return value, precision
}

func isHex(str string) bool {
	for i := 0; i < len(str); i++ {
		char := str[i]
		if !(char >= '0' && char <= '9') && !(char >= 'a' && char <= 'f') && !(char >= 'A' && char <= 'F') {
			return false
		}
	}
	return true
}

func decodeCodePoint(hex string) rune {
	codePoint, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(codePoint)) {
		return utf8.RuneError
	}
	return rune(codePoint)
}
