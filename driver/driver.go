// Package driver runs the top-level loop over a token stream: it picks the
// production for each construct, reports the outcome and recovers from
// syntax errors by skipping a single token.
package driver

import (
	"log"
	"os"

	"github.com/kr/pretty"
	"github.com/pkg/errors"

	"toy/lexer"
	"toy/parser"
)

type Kind int

const (
	Definition Kind = iota
	Extern
	TopLevelExpr
)

func (k Kind) String() string {
	switch k {
	case Definition:
		return "definition"
	case Extern:
		return "extern"
	case TopLevelExpr:
		return "top-level expr"
	}
	return "unknown"
}

// Result is the outcome of one top-level construct. Func is set for
// definitions and top-level expressions, Proto for externs, Err on failure.
type Result struct {
	Kind  Kind
	Func  *parser.FunctionAST
	Proto *parser.PrototypeAST
	Err   error
}

type Summary struct {
	Parsed int
	Failed int
}

type Driver struct {
	parser  *parser.Parser
	logger  *log.Logger
	quiet   bool
	dump    bool
	handler func(Result)
}

type Option func(*Driver)

func WithLogger(logger *log.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// WithQuiet suppresses the log line for successfully parsed constructs.
func WithQuiet(quiet bool) Option {
	return func(d *Driver) { d.quiet = quiet }
}

// WithDump pretty-prints every parsed tree to the logger.
func WithDump(dump bool) Option {
	return func(d *Driver) { d.dump = dump }
}

func WithHandler(handler func(Result)) Option {
	return func(d *Driver) { d.handler = handler }
}

func New(p *parser.Parser, opts ...Option) *Driver {
	d := &Driver{
		parser: p,
		logger: log.New(os.Stderr, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run parses top-level constructs until the end of input. The returned
// error is non-nil only if the source could not be read.
func (d *Driver) Run() (Summary, error) {
	var sum Summary

	d.parser.NextToken()
	for {
		var res Result

		tok := d.parser.CurrTok()
		switch {
		case tok.Kind == lexer.TokEOF:
			return sum, d.parser.Err()
		case tok.Is(';'):
			// ignore top-level semicolons.
			d.parser.NextToken()
			continue
		case tok.Kind == lexer.TokDef:
			res.Kind = Definition
			res.Func, res.Err = d.parser.ParseDefinition()
		case tok.Kind == lexer.TokExtern:
			res.Kind = Extern
			res.Proto, res.Err = d.parser.ParseExtern()
		default:
			res.Kind = TopLevelExpr
			res.Func, res.Err = d.parser.ParseTopLevelExpr()
		}

		if res.Err != nil {
			sum.Failed++
			res.Err = errors.Wrapf(res.Err, "parsing %s", res.Kind)
			d.logger.Printf("Error: %v", res.Err)
			// Skip token for error recovery.
			d.parser.NextToken()
		} else {
			sum.Parsed++
			d.report(res)
		}

		if d.handler != nil {
			d.handler(res)
		}
	}
}

func (d *Driver) report(res Result) {
	if !d.quiet {
		switch res.Kind {
		case Definition:
			d.logger.Println("Parsed a function definition.")
		case Extern:
			d.logger.Println("Parsed an extern.")
		case TopLevelExpr:
			d.logger.Println("Parsed a top-level expr.")
		}
	}

	if d.dump {
		var tree interface{} = res.Func
		if res.Kind == Extern {
			tree = res.Proto
		}
		d.logger.Print(pretty.Sprintf("%s\n%# v", tree, tree))
	}
}
