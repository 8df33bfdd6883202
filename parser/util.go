package parser

import (
	"toy/lexer"
)

// AnonExprName names the function wrapping a top-level expression. It can
// never be produced by the lexer as an identifier.
const AnonExprName = "__anon_expr"

// opPrecedence is never written after initialization.
var opPrecedence = map[Operator]int{
	'<': 10,
	'+': 20,
	'-': 30,
	'*': 40,
}

func IsOperator(tok lexer.Token) bool {
	if !tok.IsSymbol() || tok.Kind > 0xff {
		return false
	}
	_, ok := opPrecedence[Operator(tok.Kind)]
	return ok
}

func tokPrecedence(tok lexer.Token) int {
	if !IsOperator(tok) {
		return -1
	}
	return Operator(tok.Kind).Precedence()
}
