package parser

import (
	"fmt"

	"github.com/kinekt2000/llc/pkgs/lexer"
)

// SyntaxError is the single fatal error a parse can produce. It carries a
// ready human-readable message with the offending position; Line and
// Column are zero for errors at end of input.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// errUnknownLiteral reports an ERROR lexeme reaching the parser.
func errUnknownLiteral(text string, tok lexer.Token) *SyntaxError {
	line, col := tok.Line, lexer.Column(text, tok.Index)
	return &SyntaxError{
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf("Unknown literal %q at %d:%d", tok.Text, line, col),
	}
}

// errUnexpected reports any other unexpected token.
func errUnexpected(text string, tok lexer.Token) *SyntaxError {
	line, col := tok.Line, lexer.Column(text, tok.Index)
	return &SyntaxError{
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf("Syntax error. Unexpected token %s[%s] at %d:%d", tok.Type, tok.ValueString(), line, col),
	}
}

// errEOF reports unexpected end of input.
func errEOF() *SyntaxError {
	return &SyntaxError{Message: "Syntax error at EOF."}
}
