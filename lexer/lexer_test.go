package lexer

import (
	"io"
	"math"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func kinds(toks []Token) []int {
	out := make([]int, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func wantKinds(t *testing.T, src string, want ...int) []Token {
	t.Helper()
	got := NewLexer(strings.NewReader(src)).Tokens()
	if !reflect.DeepEqual(kinds(got), want) {
		t.Fatalf("\nsource:\n%q\nwant kinds:\n%v\ngot kinds:\n%v\n", src, want, kinds(got))
	}
	return got
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := wantKinds(t, "def extern foo x1 define externs",
		TokDef, TokExtern, TokIdentifier, TokIdentifier, TokIdentifier, TokIdentifier, TokEOF)

	idents := []string{"def", "extern", "foo", "x1", "define", "externs"}
	for i, ident := range idents {
		if toks[i].Ident != ident {
			t.Errorf("token %d: got ident %q, want %q", i, toks[i].Ident, ident)
		}
	}
}

func TestIdentifierStopsAtNonAlnum(t *testing.T) {
	toks := wantKinds(t, "a_b 1x",
		TokIdentifier, '_', TokIdentifier, TokNumVal, TokIdentifier, TokEOF)
	if toks[0].Ident != "a" || toks[2].Ident != "b" || toks[4].Ident != "x" {
		t.Fatalf("unexpected identifiers: %v", toks)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{".5", 0.5},
		{"7.", 7},
		{"1.2.3", 1.2},
		{"1..2", 1},
		{".", 0},
		{"..", 0},
	}

	for _, tt := range tests {
		toks := wantKinds(t, tt.src, TokNumVal, TokEOF)
		if toks[0].NumVal != tt.want {
			t.Errorf("%q: got %v, want %v", tt.src, toks[0].NumVal, tt.want)
		}
	}
}

func TestNumberOverflow(t *testing.T) {
	toks := wantKinds(t, "1"+strings.Repeat("0", 400), TokNumVal, TokEOF)
	if !math.IsInf(toks[0].NumVal, 1) {
		t.Fatalf("got %v, want +Inf", toks[0].NumVal)
	}
}

func TestSymbols(t *testing.T) {
	wantKinds(t, "foo(a, b);", TokIdentifier, '(', TokIdentifier, ',', TokIdentifier, ')', ';', TokEOF)
	wantKinds(t, "1<2+3-4*5", TokNumVal, '<', TokNumVal, '+', TokNumVal, '-', TokNumVal, '*', TokNumVal, TokEOF)
	wantKinds(t, "@ $", '@', '$', TokEOF)
}

func TestTrailingSymbolBeforeEOF(t *testing.T) {
	l := NewLexer(strings.NewReader(";"))
	if tok := l.Next(); !tok.Is(';') {
		t.Fatalf("got %v, want ';'", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Kind != TokEOF {
			t.Fatalf("call %d: got %v, want EOF", i, tok)
		}
	}
}

func TestCommentsAreTransparent(t *testing.T) {
	with := NewLexer(strings.NewReader("1 # comment\n+2")).Tokens()
	without := NewLexer(strings.NewReader("1\n+2")).Tokens()
	if !reflect.DeepEqual(kinds(with), kinds(without)) {
		t.Fatalf("got %v, want %v", kinds(with), kinds(without))
	}
	for i := range with {
		if with[i].NumVal != without[i].NumVal {
			t.Fatalf("token %d: got %v, want %v", i, with[i], without[i])
		}
	}

	wantKinds(t, "# only a comment", TokEOF)
	wantKinds(t, "x # trailing", TokIdentifier, TokEOF)
	wantKinds(t, "# one\r# two\n\ny", TokIdentifier, TokEOF)
}

func TestPositions(t *testing.T) {
	toks := NewLexer(strings.NewReader("def f(x)\n  x+1")).Tokens()
	want := []Position{
		{1, 1}, {1, 5}, {1, 6}, {1, 7}, {1, 8},
		{2, 3}, {2, 4}, {2, 5}, {2, 6},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, pos := range want {
		if toks[i].Pos != pos {
			t.Errorf("token %d (%v): got position %v, want %v", i, toks[i], toks[i].Pos, pos)
		}
	}
}

func TestReadError(t *testing.T) {
	r := io.MultiReader(strings.NewReader("a "), iotest.ErrReader(io.ErrUnexpectedEOF))
	l := NewLexer(r)
	wantSeq := []int{TokIdentifier, TokEOF}
	if got := kinds(l.Tokens()); !reflect.DeepEqual(got, wantSeq) {
		t.Fatalf("got %v, want %v", got, wantSeq)
	}
	if l.Err() == nil {
		t.Fatal("expected a read error")
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: TokEOF}, "EOF"},
		{Token{Kind: TokDef, Ident: "def"}, "def"},
		{Token{Kind: TokIdentifier, Ident: "foo"}, `identifier "foo"`},
		{Token{Kind: TokNumVal, NumVal: 1.5}, "number 1.5"},
		{Token{Kind: '('}, "'('"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
