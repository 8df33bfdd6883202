package parser

import (
	"toy/lexer"
)

type Parser struct {
	lexer *lexer.Lexer
	tok   lexer.Token
}

func NewParser(lexer *lexer.Lexer) *Parser {
	return &Parser{lexer: lexer}
}

// NextToken consumes the lookahead and reads the next one. It must be
// called once before the first parse to prime the lookahead.
func (p *Parser) NextToken() lexer.Token {
	p.tok = p.lexer.Next()
	return p.tok
}

func (p *Parser) CurrTok() lexer.Token {
	return p.tok
}

// Err reports a failure to read the source, as opposed to a syntax error.
func (p *Parser) Err() error {
	return p.lexer.Err()
}

// ParseDefinition parses
//
//	definition ::= 'def' prototype expression
func (p *Parser) ParseDefinition() (*FunctionAST, error) {
	// Eat 'def'
	p.NextToken()

	prototype, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	return &FunctionAST{
		Prototype: prototype,
		Body:      body,
	}, nil
}

// ParseExtern parses
//
//	external ::= 'extern' prototype
func (p *Parser) ParseExtern() (*PrototypeAST, error) {
	// Eat 'extern'
	p.NextToken()
	return p.ParsePrototype()
}

// ParseTopLevelExpr wraps an expression in a nullary function named
// AnonExprName.
func (p *Parser) ParseTopLevelExpr() (*FunctionAST, error) {
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	return &FunctionAST{
		Prototype: &PrototypeAST{
			FuncName: AnonExprName,
			Params:   []string{},
		},
		Body: body,
	}, nil
}

// ParsePrototype parses
//
//	prototype ::= identifier '(' identifier* ')'
func (p *Parser) ParsePrototype() (*PrototypeAST, error) {
	if p.tok.Kind != lexer.TokIdentifier {
		return nil, p.syntaxError("Expected function name in prototype")
	}
	funcName := p.tok.Ident
	p.NextToken()

	if !p.tok.Is('(') {
		return nil, p.syntaxError("Expected '(' in prototype")
	}

	params := []string{}
	for p.NextToken().Kind == lexer.TokIdentifier {
		params = append(params, p.tok.Ident)
	}

	if !p.tok.Is(')') {
		return nil, p.syntaxError("Expected ')' in prototype")
	}
	// Eat )
	p.NextToken()

	return &PrototypeAST{
		FuncName: funcName,
		Params:   params,
	}, nil
}

// ParseExpression parses
//
//	expression ::= primary binoprhs
func (p *Parser) ParseExpression() (ExprAST, error) {
	lhsExpr, err := p.ParsePrimary()
	if err != nil {
		return nil, err
	}

	return p.parseBinaryExprRHS(0, lhsExpr)
}

// ParsePrimary parses
//
//	primary ::= identifierexpr | numberexpr | parenexpr
func (p *Parser) ParsePrimary() (ExprAST, error) {
	switch {
	case p.tok.Kind == lexer.TokIdentifier:
		return p.parseIdentifierExpr()
	case p.tok.Kind == lexer.TokNumVal:
		return p.parseNumberExpr()
	case p.tok.Is('('):
		return p.parseParenExpr()
	default:
		return nil, p.syntaxError("unknown token when expecting an expression")
	}
}

// parseBinaryExprRHS folds (operator primary)* onto lhsExpr for as long as
// the operators bind at least as tightly as exprPrecedence.
func (p *Parser) parseBinaryExprRHS(exprPrecedence int, lhsExpr ExprAST) (ExprAST, error) {
	for {
		tokPrec := tokPrecedence(p.tok)
		if tokPrec < exprPrecedence {
			return lhsExpr, nil
		}

		op := Operator(p.tok.Kind)
		p.NextToken()

		rhsExpr, err := p.ParsePrimary()
		if err != nil {
			return nil, err
		}

		// A tighter operator after rhs takes rhs as its left operand.
		if tokPrec < tokPrecedence(p.tok) {
			rhsExpr, err = p.parseBinaryExprRHS(tokPrec+1, rhsExpr)
			if err != nil {
				return nil, err
			}
		}

		lhsExpr = &BinaryExprAST{
			Operator: op,
			Lhs:      lhsExpr,
			Rhs:      rhsExpr,
		}
	}
}

// identifierexpr ::= identifier | identifier '(' (expression (',' expression)*)? ')'
func (p *Parser) parseIdentifierExpr() (ExprAST, error) {
	id := p.tok.Ident
	p.NextToken()

	if !p.tok.Is('(') {
		return &VariableExprAST{Name: id}, nil
	}

	// Eat (
	p.NextToken()
	args := []ExprAST{}
	if !p.tok.Is(')') {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.tok.Is(')') {
				break
			}
			if !p.tok.Is(',') {
				return nil, p.syntaxError("Expected ')' or ',' in argument list")
			}
			// Eat ,
			p.NextToken()
		}
	}
	// Eat )
	p.NextToken()

	return &CallExprAST{
		FuncName: id,
		Args:     args,
	}, nil
}

func (p *Parser) parseNumberExpr() (ExprAST, error) {
	numAST := &NumberExprAST{Val: p.tok.NumVal}
	p.NextToken()
	return numAST, nil
}

// parenexpr ::= '(' expression ')'
func (p *Parser) parseParenExpr() (ExprAST, error) {
	// Eat (
	p.NextToken()

	expression, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if !p.tok.Is(')') {
		return nil, p.syntaxError("expected ')'")
	}
	p.NextToken()

	return expression, nil
}
