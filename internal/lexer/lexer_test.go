package lexer

import (
	"testing"

	"github.com/ImOnALampshade/brandy/internal/token"
)

func readAll(t *testing.T, tbl *Table, src string) []token.Token {
	t.Helper()
	var toks []token.Token
	b := []byte(src)
	offset := 0
	for offset < len(b) {
		kind, length := tbl.ReadToken(b, offset)
		if kind == token.Invalid {
			t.Fatalf("unrecognized byte sequence at offset %d in %q", offset, src)
		}
		toks = append(toks, token.Token{Start: offset, Length: length, Kind: kind})
		offset += length
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestReadTokenKeywordVsIdentifier(t *testing.T) {
	tbl := BuildTable()

	toks := readAll(t, tbl, "func")
	if len(toks) != 1 || toks[0].Kind != token.KwFunc {
		t.Fatalf("got %v, want a single KwFunc token", kinds(toks))
	}

	// Maximal munch: "functions" must not stop at the "func" prefix.
	toks = readAll(t, tbl, "functions")
	if len(toks) != 1 || toks[0].Kind != token.Identifier || toks[0].Length != len("functions") {
		t.Fatalf("got %v (len %d), want a single Identifier spanning the whole word", kinds(toks), toks[0].Length)
	}
}

func TestReadTokenOperators(t *testing.T) {
	tbl := BuildTable()

	toks := readAll(t, tbl, "+ ++ (")
	got := kinds(toks)
	want := []token.Kind{token.Plus, token.Whitespace, token.Increment, token.Whitespace, token.LParen}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadTokenStringLiteral(t *testing.T) {
	tbl := BuildTable()
	toks := readAll(t, tbl, `"hello\nworld"`)
	if len(toks) != 1 || toks[0].Kind != token.StringLit {
		t.Fatalf("got %v, want a single StringLit", kinds(toks))
	}
}

func TestReadTokenNewlineCountsAsOneToken(t *testing.T) {
	tbl := BuildTable()
	toks := readAll(t, tbl, "a\nb")
	got := kinds(toks)
	want := []token.Kind{token.Identifier, token.Newline, token.Identifier}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDefaultIsCachedAcrossCalls(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same cached *Table pointer on every call")
	}
}
