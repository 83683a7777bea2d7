// Package parser implements Brandy's hand-written recursive-descent
// parser: speculative backtracking over a flat token slice, with a
// newline-sensitivity stack so call arguments and index brackets can
// span lines that a bare statement sequence would treat as terminators.
package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/token"
)

// parser holds all mutable parse state. Every accept* method is a
// method on *parser so speculation state is threaded implicitly rather
// than passed around explicitly.
type parser struct {
	src  []byte
	toks []token.Token
	pos  int

	// skipNewlines is a stack of newline-sensitivity contexts; top()
	// reports whether Newline tokens are currently invisible to
	// next/peek. Pushed true on entry to "(...)" and "[...]" contexts,
	// popped on exit.
	skipNewlines []bool
}

// parseError is panicked by expect/fail and recovered once at the top
// of Parse, mirroring the original compiler's ENTER_RULE/REJECT_RULE
// unwind-to-top-level discipline without needing a matching macro at
// every call site.
type parseError struct {
	tokenIndex int
	msg        string
}

func (e *parseError) Error() string { return e.msg }

// Parse consumes toks (as produced by source.Tokenize, including
// trivia) and produces a *ast.Module, or an error if no valid parse was
// found anywhere in the token stream.
func Parse(src []byte, toks []token.Token) (module *ast.Module, err error) {
	p := &parser{src: src, toks: toks, skipNewlines: []bool{false}}

	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*parseError)
			if !ok {
				panic(r)
			}
			line := 0
			if pe.tokenIndex >= 0 && pe.tokenIndex < len(toks) {
				line = toks[pe.tokenIndex].Line
			}
			err = errors.Errorf("parse error at line %d: %s", line, pe.msg)
		}
	}()

	return p.acceptModule(), nil
}

func (p *parser) fail(msg string, args ...interface{}) {
	panic(&parseError{tokenIndex: p.pos, msg: fmt.Sprintf(msg, args...)})
}

// save/restore/commit implement the speculation protocol every accept*
// rule that may backtrack is structured around:
//
//	mark := p.save()
//	if !p.attempt() { p.restore(mark); return nil, false }
//	p.commit()
func (p *parser) save() int { return p.pos }

func (p *parser) restore(mark int) { p.pos = mark }

// commit is a no-op placeholder kept for symmetry with save/restore —
// nothing needs to happen on success since pos has already advanced.
func (p *parser) commit() {}

func (p *parser) pushSkipNewlines(skip bool) {
	p.skipNewlines = append(p.skipNewlines, skip)
}

func (p *parser) popSkipNewlines() {
	p.skipNewlines = p.skipNewlines[:len(p.skipNewlines)-1]
}

func (p *parser) skippingNewlines() bool {
	return p.skipNewlines[len(p.skipNewlines)-1]
}

// isSignificant reports whether a token is visible to next/peek under
// the current newline-sensitivity context.
func (p *parser) isSignificant(tok token.Token) bool {
	if tok.Kind.IsTrivia() {
		if tok.Kind == token.Newline && !p.skippingNewlines() {
			return true
		}
		return false
	}
	return true
}

// peek returns the next significant token without consuming it.
func (p *parser) peek() token.Token {
	i := p.pos
	for i < len(p.toks) && !p.isSignificant(p.toks[i]) {
		i++
	}
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF sentinel
	}
	return p.toks[i]
}

// peekAt returns the nth significant token ahead of the cursor without
// consuming anything (peekAt(0) == peek()).
func (p *parser) peekAt(n int) token.Token {
	i := p.pos
	seen := -1
	for i < len(p.toks) {
		if p.isSignificant(p.toks[i]) {
			seen++
			if seen == n {
				return p.toks[i]
			}
		}
		i++
	}
	return p.toks[len(p.toks)-1]
}

// next consumes and returns the next significant token.
func (p *parser) next() token.Token {
	for p.pos < len(p.toks) && !p.isSignificant(p.toks[p.pos]) {
		p.pos++
	}
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

func (p *parser) at(kind token.Kind) bool { return p.peek().Kind == kind }

func (p *parser) atEnd() bool { return p.peek().Kind == token.EOF }

// accept consumes and returns the next token if it matches kind,
// reporting ok=false and leaving the cursor untouched otherwise.
func (p *parser) accept(kind token.Kind) (token.Token, bool) {
	if p.peek().Kind != kind {
		return token.Token{}, false
	}
	return p.next(), true
}

// expect consumes a token of the given kind or fails the parse.
func (p *parser) expect(kind token.Kind, what string) token.Token {
	tok, ok := p.accept(kind)
	if !ok {
		p.fail("expected %s, found %q", what, p.peek().Kind)
	}
	return tok
}

// expectSemicolon consumes a statement terminator: an explicit ";" or
// a single Newline token; an upcoming "}" or end of input also ends the
// statement and is left unconsumed (mirroring the original's
// expect_semicolon, which treats newline-as-terminator the same as an
// explicit semicolon whenever newlines are currently significant).
func (p *parser) expectSemicolon() {
	if _, ok := p.accept(token.Semicolon); ok {
		return
	}
	if p.peek().Kind == token.Newline {
		p.next()
		return
	}
	if p.atEnd() || p.peek().Kind == token.RBrace {
		return
	}
	p.fail("expected statement terminator, found %q", p.peek().Kind)
}

// skipNewlineTokens consumes any run of pending Newline tokens, used at
// the top of block-parsing loops so blank lines between statements
// don't need special-casing in every caller.
func (p *parser) skipNewlineTokens() {
	for p.peek().Kind == token.Newline {
		p.next()
	}
}

func span(first, last ast.Node) ast.Base {
	f, _ := first.NodeBase().Span()
	_, l := last.NodeBase().Span()
	return ast.Base{FirstToken: f, LastToken: l}
}
