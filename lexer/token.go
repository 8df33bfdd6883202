package lexer

import (
	"fmt"
	"strconv"
)

// Position is a 1-based line and column in the source.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexical unit. Kind is one of the Tok constants, or the
// character itself for any other single character (operators, punctuation
// and anything unrecognized).
type Token struct {
	Kind   int
	Ident  string
	NumVal float64
	Pos    Position
}

// IsSymbol reports whether the token is a single character.
func (t Token) IsSymbol() bool {
	return t.Kind >= 0
}

// Is reports whether the token is the symbol chr.
func (t Token) Is(chr byte) bool {
	return t.Kind == int(chr)
}

func (t Token) String() string {
	switch t.Kind {
	case TokEOF:
		return "EOF"
	case TokDef, TokExtern:
		return t.Ident
	case TokIdentifier:
		return "identifier " + strconv.Quote(t.Ident)
	case TokNumVal:
		return "number " + strconv.FormatFloat(t.NumVal, 'g', -1, 64)
	}
	return strconv.QuoteRune(rune(t.Kind))
}
