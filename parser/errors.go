package parser

import (
	"fmt"

	"toy/lexer"
)

// SyntaxError describes the construct the parser expected at Pos.
type SyntaxError struct {
	Msg string
	Pos lexer.Position
	// Tok is the token found instead.
	Tok lexer.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (p *Parser) syntaxError(msg string) error {
	return &SyntaxError{
		Msg: msg,
		Pos: p.tok.Pos,
		Tok: p.tok,
	}
}
