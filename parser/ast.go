package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// AST is implemented only by the node types of this package. Consumers
// switch on the concrete type.
type AST interface {
	fmt.Stringer
	astNode()
}

type ExprAST interface {
	AST
	exprNode()
}

type node struct{}

func (node) astNode() {}

type expr struct {
	node
}

func (expr) exprNode() {}

type Operator byte

func (op Operator) String() string {
	return string(rune(op))
}

// Precedence returns the binding strength of op, or -1 if op is not a
// binary operator.
func (op Operator) Precedence() int {
	if prec, ok := opPrecedence[op]; ok {
		return prec
	}
	return -1
}

type NumberExprAST struct {
	expr
	Val float64
}

func (n NumberExprAST) String() string {
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

type VariableExprAST struct {
	expr
	Name string
}

func (v VariableExprAST) String() string {
	return v.Name
}

type BinaryExprAST struct {
	expr
	Operator Operator
	Lhs      ExprAST
	Rhs      ExprAST
}

func (b BinaryExprAST) String() string {
	return "(" + b.Lhs.String() + " " + b.Operator.String() + " " + b.Rhs.String() + ")"
}

type CallExprAST struct {
	expr
	FuncName string
	Args     []ExprAST
}

func (c CallExprAST) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return c.FuncName + "(" + strings.Join(args, ", ") + ")"
}

// PrototypeAST is a function signature. Every parameter is a number.
type PrototypeAST struct {
	node
	FuncName string
	Params   []string
}

func (p PrototypeAST) String() string {
	return p.FuncName + "(" + strings.Join(p.Params, " ") + ")"
}

type FunctionAST struct {
	node
	Prototype *PrototypeAST
	Body      ExprAST
}

func (f FunctionAST) String() string {
	return "def " + f.Prototype.String() + " " + f.Body.String()
}

// IsAnonymous reports whether f wraps a top-level expression.
func (f FunctionAST) IsAnonymous() bool {
	return f.Prototype.FuncName == AnonExprName
}
