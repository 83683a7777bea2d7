package token

import "testing"

func TestKindFamilyPredicates(t *testing.T) {
	cases := []struct {
		kind        Kind
		isLiteral   bool
		isKeyword   bool
		isOperator  bool
	}{
		{IntLit, true, false, false},
		{StringLit, true, false, false},
		{KwFunc, false, true, false},
		{KwFor, false, true, false},
		{Plus, false, false, true},
		{ShiftLeft, false, false, true},
	}
	for _, c := range cases {
		if got := c.kind.IsLiteral(); got != c.isLiteral {
			t.Errorf("%v.IsLiteral() = %v, want %v", c.kind, got, c.isLiteral)
		}
		if got := c.kind.IsKeyword(); got != c.isKeyword {
			t.Errorf("%v.IsKeyword() = %v, want %v", c.kind, got, c.isKeyword)
		}
		if got := c.kind.IsOperator(); got != c.isOperator {
			t.Errorf("%v.IsOperator() = %v, want %v", c.kind, got, c.isOperator)
		}
	}
}

func TestTokenTextAndEnd(t *testing.T) {
	src := []byte("  foobar  ")
	tok := Token{Start: 2, Length: 6, Kind: Identifier, Line: 1}

	if got, want := string(tok.Text(src)), "foobar"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if got, want := tok.End(), 8; got != want {
		t.Errorf("End() = %d, want %d", got, want)
	}
}

func TestTokenHashCodeStableAndDistinct(t *testing.T) {
	src := []byte("foo bar foo")
	foo1 := Token{Start: 0, Length: 3, Kind: Identifier, Line: 1}
	bar := Token{Start: 4, Length: 3, Kind: Identifier, Line: 1}
	foo2 := Token{Start: 8, Length: 3, Kind: Identifier, Line: 1}

	if foo1.HashCode(src) != foo2.HashCode(src) {
		t.Error("identical token text hashed to different values")
	}
	if foo1.HashCode(src) == bar.HashCode(src) {
		t.Error("distinct token text hashed to the same value")
	}
}

func TestKeywordsMapRoundTrip(t *testing.T) {
	for word, kind := range Keywords {
		if word == "true" || word == "false" {
			// reserved spellings that lex as boolean literals
			if kind != BoolLit {
				t.Errorf("Keywords[%q] = %v, want BOOL_LIT", word, kind)
			}
			continue
		}
		if !kind.IsKeyword() {
			t.Errorf("Keywords[%q] = %v, which is not classified as a keyword", word, kind)
		}
		if kind.String() != word {
			t.Errorf("Keywords[%q] = %v, which does not round-trip through String()", word, kind)
		}
	}
	if _, ok := Keywords["func"]; !ok {
		t.Error(`Keywords["func"] missing`)
	}
}
