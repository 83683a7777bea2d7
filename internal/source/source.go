// Package source owns the translation unit (a file path and its byte
// contents) and the tokenizer driver that walks the shared lexer table
// over that buffer.
package source

import (
	"github.com/pkg/errors"

	"github.com/ImOnALampshade/brandy/internal/lexer"
	"github.com/ImOnALampshade/brandy/internal/token"
)

// TranslationUnit is the input to the whole front-end: a file path (used
// only for diagnostics) and its byte contents. The buffer is expected to
// already end in a newline — appending one if absent is the loader's
// job, not this package's (spec.md §6 treats file I/O as an external
// collaborator).
type TranslationUnit struct {
	Path  string
	Bytes []byte
}

// LexError is an unrecoverable lexing failure, anchored at the byte
// offset where no token could be recognized.
type LexError struct {
	Offset int
	Line   int
}

func (e *LexError) Error() string {
	return errors.Errorf("lex error at offset %d (line %d): unrecognized byte sequence", e.Offset, e.Line).Error()
}

// Tokenize walks tu's buffer end-to-end with tbl, producing every token
// including whitespace, newlines, comments, and a shebang line — the
// parser is responsible for filtering those out later. Returns an error
// wrapping *LexError if any byte sequence can't be recognized.
func Tokenize(tu *TranslationUnit, tbl *lexer.Table) ([]token.Token, error) {
	src := tu.Bytes
	var toks []token.Token

	line := 1
	offset := 0
	for offset < len(src) {
		kind, length := tbl.ReadToken(src, offset)
		if kind == token.Invalid {
			return nil, errors.WithStack(&LexError{Offset: offset, Line: line})
		}

		tok := token.Token{Start: offset, Length: length, Kind: kind, Line: line}
		toks = append(toks, tok)

		switch kind {
		case token.Newline, token.LineComment:
			line++
		case token.BlockComment:
			line += countNewlines(src[offset : offset+length])
		}

		offset += length
		if length == 0 {
			// Defensive: ReadToken only returns a zero length alongside
			// token.Invalid, which is handled above, but guard against an
			// infinite loop if that contract is ever violated.
			return nil, errors.WithStack(&LexError{Offset: offset, Line: line})
		}
	}

	toks = append(toks, token.Token{Start: len(src), Length: 0, Kind: token.EOF, Line: line})
	return toks, nil
}

func countNewlines(text []byte) int {
	n := 0
	for _, b := range text {
		if b == '\n' {
			n++
		}
	}
	return n
}
