/*
File    : clasp/lexer/lexer_utils.go

Character classification helpers used by the scanner's hot path. Kept
as plain ASCII byte tests rather than unicode.IsLetter/IsDigit: Clasp
identifiers and numbers are ASCII-only by grammar.
*/
package lexer

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	default:
		return false
	}
}
