package parser

import (
	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/token"
)

// acceptModule parses an entire translation unit: a flat sequence of
// top-level symbols and statements, in source order, terminated by EOF.
// Top-level symbols and statements are kept in separate slices on
// *ast.Module (mirroring module_node's NODE_METHODS walk order,
// "symbols..., statements..."), but source order between the two lists
// is not otherwise significant at the top level.
func (p *parser) acceptModule() *ast.Module {
	mod := &ast.Module{Base: ast.Base{FirstToken: p.pos}}

	if tok, ok := p.accept(token.Shebang); ok {
		_ = tok // shebang carries no semantic content once skipped
	}

	p.skipNewlineTokens()
	for !p.atEnd() {
		if sym, ok := p.trySymbol(); ok {
			mod.Symbols = append(mod.Symbols, sym)
			p.skipNewlineTokens()
			continue
		}
		mod.Statements = append(mod.Statements, p.acceptStatement())
		p.skipNewlineTokens()
	}

	mod.LastToken = p.pos
	return mod
}

// acceptScope parses a "{" ... "}" braced statement sequence.
func (p *parser) acceptScope() *ast.Scope {
	open := p.expect(token.LBrace, "'{'")
	sc := &ast.Scope{Base: ast.Base{FirstToken: p.pos - 1}}
	_ = open

	p.skipNewlineTokens()
	for !p.at(token.RBrace) && !p.atEnd() {
		if sym, ok := p.trySymbol(); ok {
			sc.Statements = append(sc.Statements, sym)
			p.skipNewlineTokens()
			continue
		}
		sc.Statements = append(sc.Statements, p.acceptStatement())
		p.skipNewlineTokens()
	}
	close := p.expect(token.RBrace, "'}'")
	sc.LastToken = close.Start
	return sc
}

// acceptArrowBody parses either a "{ ... }" scope or a "=>" followed by
// a single expression, used by function and getter bodies. The
// single-expression form is rewritten into a Return statement by the
// returnrewrite semantic pass, not here, so the parser's output keeps
// Scope as the uniform InnerScope shape for every callable.
func (p *parser) acceptArrowBody() ast.Node {
	if p.at(token.LBrace) {
		return p.acceptScope()
	}
	fat := p.expect(token.ArrowRightFat, "'=>' or '{'")
	expr := p.acceptExpression()
	sc := &ast.Scope{Base: ast.Base{FirstToken: fat.Start}}
	sc.Statements = []ast.Node{expr}
	_, last := expr.NodeBase().Span()
	sc.LastToken = last
	return sc
}

// trySymbol speculatively parses a leading attribute list (if any)
// followed by a function, class, property, var, label, or typedef
// declaration. A trailing
// attribute list with nothing following it is a parse error per
// spec.md §4.4, so once any "[" attribute is consumed this no longer
// backtracks to statement parsing on failure.
func (p *parser) trySymbol() (ast.Node, bool) {
	mark := p.save()

	var attrs []ast.Node
	sawAttrs := false
	for p.at(token.LBracket) {
		attrs = append(attrs, p.acceptAttribute())
		sawAttrs = true
	}

	switch p.peek().Kind {
	case token.KwFunc:
		return p.acceptFunction(attrs), true
	case token.KwClass:
		return p.acceptClass(attrs), true
	case token.KwProperty:
		return p.acceptProperty(attrs), true
	case token.KwVar:
		return p.acceptVar(attrs), true
	case token.KwLabel:
		return p.acceptLabel(attrs), true
	case token.KwTypedef:
		return p.acceptTypedef(), true
	}

	if sawAttrs {
		p.fail("expected a declaration after attribute list, found %q", p.peek().Kind)
	}

	p.restore(mark)
	return nil, false
}

func (p *parser) acceptAttribute() *ast.Attribute {
	open := p.expect(token.LBracket, "'['")
	attr := &ast.Attribute{Base: ast.Base{FirstToken: open.Start}}

	p.pushSkipNewlines(true)
	if !p.at(token.RBracket) {
		attr.Entries = append(attr.Entries, p.acceptExpression())
		for {
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
			attr.Entries = append(attr.Entries, p.acceptExpression())
		}
	}
	p.popSkipNewlines()

	close := p.expect(token.RBracket, "']'")
	attr.LastToken = close.Start
	return attr
}
