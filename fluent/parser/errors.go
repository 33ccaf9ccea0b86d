package parser

import "fmt"

// messages maps every error code to its message template
var messages = map[string]string{
	"E0001": "Generic error",
	"E0002": "Expected an entry start",
	"E0003": `Expected token: "%s"`,
	"E0004": `Expected a character from range: "%s"`,
	"E0005": `Expected message "%s" to have a value or attributes`,
	"E0006": `Expected term "-%s" to have a value`,
	"E0007": "Keyword cannot end with a whitespace",
	"E0008": "The callee has to be an upper-case identifier or a term",
	"E0009": "The argument name has to be a simple identifier",
	"E0010": "Expected one of the variants to be marked as default (*)",
	"E0011": `Expected at least one variant after "->"`,
	"E0012": "Expected value",
	"E0013": "Expected variant key",
	"E0014": "Expected literal",
	"E0015": "Only one variant can be marked as default (*)",
	"E0016": "Message references cannot be used as selectors",
	"E0017": "Terms cannot be used as selectors",
	"E0018": "Attributes of messages cannot be used as selectors",
	"E0019": "Attributes of terms cannot be used as placeables",
	"E0020": "Unterminated string expression",
	"E0021": "Positional arguments must not follow named arguments",
	"E0022": "Named arguments must be unique",
	"E0024": "Cannot access variants of a message.",
	"E0025": `Unknown escape sequence: \%s.`,
	"E0026": "Invalid Unicode escape sequence: %s.",
	"E0027": "Unbalanced closing brace in TextElement.",
	"E0028": "Expected an inline expression",
	"E0029": "Expected simple expression as selector",
}

// Error represents an error raised by the parser.
// Code is one of the stable codes E0001 to E0029 and Args holds the values substituted into its message.
type Error struct {
	Code    string
	Args    []interface{}
	Message string
	Pos     int
}

// Error turns the error into a string
func (err *Error) Error() string {
	return err.Message
}

// newError creates a new error with the message template of the given code
func newError(code string, args ...interface{}) *Error {
	for i, arg := range args {
		if char, ok := arg.(rune); ok {
			args[i] = charString(char)
		}
	}

	template, ok := messages[code]
	if !ok {
		code, template = "E0001", messages["E0001"]
	}
	message := template
	if len(args) > 0 {
		message = fmt.Sprintf(template, args...)
	}
	if args == nil {
		args = []interface{}{}
	}
	return &Error{Code: code, Args: args, Message: message}
}

// charString renders a character argument; EOF renders as an empty string
func charString(char rune) string {
	if char == EOF {
		return ""
	}
	return string(char)
}
