package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"toy/driver"
	"toy/lexer"
	"toy/parser"
)

const historyFile = ".toy_history"

func main() {
	var (
		src    = flag.String("e", "", "parse the given source and exit")
		tokens = flag.Bool("tokens", false, "print the token stream instead of parsing")
		dump   = flag.Bool("dump", false, "pretty-print every parsed tree")
		quiet  = flag.Bool("q", false, "only report errors")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(run(*src, *tokens, *dump, *quiet))
}

func run(src string, tokens, dump, quiet bool) int {
	logger := log.New(os.Stderr, "", 0)

	var reader io.Reader
	switch {
	case src != "":
		reader = strings.NewReader(src)
	case flag.NArg() == 1:
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			logger.Println(err)
			return 1
		}
		defer file.Close()
		reader = bufio.NewReader(file)
	case flag.NArg() > 1:
		flag.Usage()
		return 2
	case isTerminal(os.Stdin):
		prompt := newPromptReader("ready> ")
		defer prompt.Close()
		reader = prompt
	default:
		reader = bufio.NewReader(os.Stdin)
	}

	lex := lexer.NewLexer(reader)

	if tokens {
		for _, tok := range lex.Tokens() {
			fmt.Printf("%s\t%s\n", tok.Pos, tok)
		}
		if err := lex.Err(); err != nil {
			logger.Println(err)
			return 1
		}
		return 0
	}

	drv := driver.New(parser.NewParser(lex),
		driver.WithLogger(logger),
		driver.WithQuiet(quiet),
		driver.WithDump(dump),
	)

	sum, err := drv.Run()
	if err != nil {
		logger.Println(err)
		return 1
	}
	if sum.Failed > 0 {
		return 1
	}
	return 0
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}
