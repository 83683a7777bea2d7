package source

import (
	"errors"
	"testing"

	"github.com/ImOnALampshade/brandy/internal/lexer"
	"github.com/ImOnALampshade/brandy/internal/token"
)

func TestTokenizeLineNumbers(t *testing.T) {
	tbl := lexer.BuildTable()
	tu := &TranslationUnit{Path: "t.bd", Bytes: []byte("var a\nvar b\n")}

	toks, err := Tokenize(tu, tbl)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	var lines []int
	for _, tok := range toks {
		if tok.Kind == token.Identifier {
			lines = append(lines, tok.Line)
		}
	}
	want := []int{1, 2}
	if len(lines) != len(want) {
		t.Fatalf("got identifiers on lines %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("identifier %d on line %d, want %d", i, lines[i], want[i])
		}
	}
}

func TestTokenizeInvalidByteSequence(t *testing.T) {
	tbl := lexer.BuildTable()
	tu := &TranslationUnit{Path: "t.bd", Bytes: []byte("\x01")}

	_, err := Tokenize(tu, tbl)
	if err == nil {
		t.Fatal("Tokenize() error = nil, want an error for an unrecognized byte")
	}
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Tokenize() error = %v, want it to wrap *LexError", err)
	}
	if lexErr.Offset != 0 {
		t.Errorf("LexError.Offset = %d, want 0", lexErr.Offset)
	}
}
