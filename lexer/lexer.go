package lexer

import (
	"bufio"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	TokEOF        int = -1
	TokDef        int = -2
	TokExtern     int = -3
	TokIdentifier int = -4
	TokNumVal     int = -5
)

// eof marks the pending character once the reader is exhausted.
const eof = -1

type Lexer struct {
	reader *bufio.Reader
	err    error

	// lastChar is read but not yet consumed by any token.
	lastChar int
	lastPos  Position
	nextPos  Position
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader:   bufio.NewReader(r),
		lastChar: ' ',
		nextPos:  Position{Line: 1, Column: 1},
	}
}

// Err returns the first read error other than io.EOF.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) advance() {
	chr, err := l.reader.ReadByte()
	l.lastPos = l.nextPos
	if err != nil {
		if err != io.EOF && l.err == nil {
			l.err = errors.Wrap(err, "reading source")
		}
		l.lastChar = eof
		return
	}

	if chr == '\n' {
		l.nextPos = Position{Line: l.nextPos.Line + 1, Column: 1}
	} else {
		l.nextPos.Column++
	}
	l.lastChar = int(chr)
}

// Next returns the next token of the stream. Once the input is exhausted
// every call returns a TokEOF token.
func (l *Lexer) Next() Token {
	for isSpace(l.lastChar) {
		l.advance()
	}
	pos := l.lastPos

	// identifier: [a-zA-Z][a-zA-Z0-9]*
	if isAlpha(l.lastChar) {
		ident := []byte{byte(l.lastChar)}
		for l.advance(); isAlnum(l.lastChar); l.advance() {
			ident = append(ident, byte(l.lastChar))
		}

		switch str := string(ident); str {
		case "def":
			return Token{Kind: TokDef, Ident: str, Pos: pos}
		case "extern":
			return Token{Kind: TokExtern, Ident: str, Pos: pos}
		default:
			return Token{Kind: TokIdentifier, Ident: str, Pos: pos}
		}
	}

	// number: [0-9.]+
	if isDigit(l.lastChar) || l.lastChar == '.' {
		var numStr []byte
		for isDigit(l.lastChar) || l.lastChar == '.' {
			numStr = append(numStr, byte(l.lastChar))
			l.advance()
		}
		return Token{Kind: TokNumVal, NumVal: parseNumber(string(numStr)), Pos: pos}
	}

	if l.lastChar == '#' {
		for l.lastChar != eof && l.lastChar != '\n' && l.lastChar != '\r' {
			l.advance()
		}
		if l.lastChar != eof {
			return l.Next()
		}
	}

	if l.lastChar == eof {
		return Token{Kind: TokEOF, Pos: l.lastPos}
	}

	// Return other tokens as they are
	chr := l.lastChar
	l.advance()
	return Token{Kind: chr, Pos: pos}
}

// Tokens drains the lexer. The final token is always TokEOF.
func (l *Lexer) Tokens() []Token {
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			return toks
		}
	}
}

// parseNumber converts the longest prefix of s that strconv.ParseFloat
// accepts, so "1.2.3" reads as 1.2. Out of range values saturate to ±Inf
// and a run without any valid prefix, such as ".", reads as 0.
func parseNumber(s string) float64 {
	for end := len(s); end > 0; end-- {
		val, err := strconv.ParseFloat(s[:end], 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return val
		}
	}
	return 0
}

func isAlpha(chr int) bool {
	return chr >= 0 && chr < utf8.RuneSelf && unicode.IsLetter(rune(chr))
}

func isDigit(chr int) bool {
	return chr >= '0' && chr <= '9'
}

func isAlnum(chr int) bool {
	return isAlpha(chr) || isDigit(chr)
}

func isSpace(chr int) bool {
	switch chr {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
