package parser

import (
	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/token"
)

// acceptStatement dispatches on the leading token: if/unless,
// while/until, for, import, meta-block, return, break and goto each have
// a keyword case, and anything else is parsed as an expression.
// var/function/class/property/label/typedef are handled by trySymbol
// before acceptStatement is ever reached (see acceptModule/acceptScope).
func (p *parser) acceptStatement() ast.Node {
	switch p.peek().Kind {
	case token.KwIf, token.KwUnless:
		return p.acceptIf()
	case token.KwWhile, token.KwUntil:
		return p.acceptWhile()
	case token.KwFor:
		return p.acceptFor()
	case token.KwImport:
		return p.acceptImport()
	case token.KwMeta:
		return p.acceptMetaBlock()
	case token.KwReturn:
		return p.acceptReturn()
	case token.KwBreak:
		return p.acceptBreak()
	case token.KwGoto:
		return p.acceptGoto()
	default:
		expr := p.acceptExpression()
		p.expectSemicolon()
		return expr
	}
}

func (p *parser) acceptLabel(attrs []ast.Node) *ast.Label {
	kw := p.expect(token.KwLabel, "'label'")
	name := p.expect(token.Identifier, "label name")
	p.expectSemicolon()
	return &ast.Label{
		Base:       ast.Base{FirstToken: kw.Start, LastToken: name.Start},
		Name:       name,
		Attributes: attrs,
	}
}

func (p *parser) acceptImport() *ast.Import {
	kw := p.expect(token.KwImport, "'import'")
	path := p.expect(token.StringLit, "import path")
	imp := &ast.Import{Base: ast.Base{FirstToken: kw.Start, LastToken: path.Start}, Path: path}
	if _, ok := p.accept(token.KwAs); ok {
		alias := p.expect(token.Identifier, "import alias")
		imp.As = alias
		imp.LastToken = alias.Start
	}
	p.expectSemicolon()
	return imp
}

func (p *parser) acceptTypedef() *ast.Typedef {
	kw := p.expect(token.KwTypedef, "'typedef'")
	name := p.expect(token.Identifier, "typedef name")
	p.expect(token.Colon, "':'")
	target := p.acceptTypeRef()
	p.expectSemicolon()
	_, last := target.NodeBase().Span()
	return &ast.Typedef{
		Base:   ast.Base{FirstToken: kw.Start, LastToken: last},
		Name:   name,
		Target: target,
	}
}

func (p *parser) acceptMetaBlock() *ast.MetaBlock {
	kw := p.expect(token.KwMeta, "'meta'")
	inner := p.acceptScope()
	return &ast.MetaBlock{
		Base:       ast.Base{FirstToken: kw.Start, LastToken: inner.LastToken},
		InnerScope: inner,
	}
}

func (p *parser) acceptReturn() *ast.Return {
	kw := p.expect(token.KwReturn, "'return'")
	ret := &ast.Return{Base: ast.Base{FirstToken: kw.Start, LastToken: kw.Start}}
	if !p.atStatementEnd() {
		ret.Value = p.acceptExpression()
		_, last := ret.Value.NodeBase().Span()
		ret.LastToken = last
	}
	p.expectSemicolon()
	return ret
}

func (p *parser) acceptBreak() *ast.Break {
	kw := p.expect(token.KwBreak, "'break'")
	p.expectSemicolon()
	return &ast.Break{Base: ast.Base{FirstToken: kw.Start, LastToken: kw.Start}}
}

func (p *parser) acceptGoto() *ast.Goto {
	kw := p.expect(token.KwGoto, "'goto'")
	label := p.expect(token.Identifier, "label name")
	p.expectSemicolon()
	return &ast.Goto{Base: ast.Base{FirstToken: kw.Start, LastToken: label.Start}, Label: label}
}

// atStatementEnd reports whether the cursor sits at a statement
// terminator, used to distinguish a bare "return" from "return expr".
func (p *parser) atStatementEnd() bool {
	k := p.peek().Kind
	return k == token.Semicolon || k == token.Newline || k == token.RBrace || k == token.EOF
}

// acceptIf parses "if cond { ... }", chained "else if cond { ... }",
// and a trailing conditionless "else { ... }", threading them together via
// ElseClause exactly as spec.md §3 describes. "unless cond" desugars to
// "if !(cond)" by wrapping the parsed condition in a synthesized
// UnaryOp whose span equals the condition's own span.
func (p *parser) acceptIf() *ast.If {
	var kw token.Token
	negate := false
	if t, ok := p.accept(token.KwUnless); ok {
		kw = t
		negate = true
	} else {
		kw = p.expect(token.KwIf, "'if' or 'unless'")
	}

	cond := p.acceptExpression()
	if negate {
		cond = negateCondition(cond)
	}
	body := p.acceptScope()

	node := &ast.If{
		Base:       ast.Base{FirstToken: kw.Start, LastToken: body.LastToken},
		Condition:  cond,
		InnerScope: body,
	}

	if _, ok := p.accept(token.KwElse); ok {
		if p.at(token.KwIf) || p.at(token.KwUnless) {
			elseClause := p.acceptIf()
			node.ElseClause = elseClause
			node.LastToken = elseClause.LastToken
		} else {
			elseBody := p.acceptScope()
			node.ElseClause = &ast.If{
				Base:       ast.Base{FirstToken: elseBody.FirstToken, LastToken: elseBody.LastToken},
				InnerScope: elseBody,
			}
			node.LastToken = elseBody.LastToken
		}
	}
	return node
}

func (p *parser) acceptWhile() *ast.While {
	var kw token.Token
	negate := false
	if t, ok := p.accept(token.KwUntil); ok {
		kw = t
		negate = true
	} else {
		kw = p.expect(token.KwWhile, "'while' or 'until'")
	}

	cond := p.acceptExpression()
	if negate {
		cond = negateCondition(cond)
	}
	body := p.acceptScope()

	return &ast.While{
		Base:       ast.Base{FirstToken: kw.Start, LastToken: body.LastToken},
		Condition:  cond,
		InnerScope: body,
	}
}

// acceptFor parses both loop forms named in spec.md §4.4:
// "for x in expr { ... }" and
// "for x from start to end [every step] { ... }",
// each with an optional trailing "if cond" guard before the body.
func (p *parser) acceptFor() *ast.For {
	kw := p.expect(token.KwFor, "'for'")
	variable := p.expect(token.Identifier, "loop variable")

	node := &ast.For{Base: ast.Base{FirstToken: kw.Start}, Variable: variable}

	switch {
	case p.at(token.KwIn):
		p.next()
		node.Expression = p.acceptExpression()
	case p.at(token.KwFrom):
		p.next()
		node.IsRange = true
		node.RangeStart = p.acceptExpression()
		p.expect(token.KwTo, "'to'")
		node.RangeEnd = p.acceptExpression()
		if _, ok := p.accept(token.KwEvery); ok {
			node.RangeStep = p.acceptExpression()
		}
	default:
		p.fail("expected 'in' or 'from' in for-loop, found %q", p.peek().Kind)
	}

	if _, ok := p.accept(token.KwIf); ok {
		node.Guard = p.acceptExpression()
	}

	body := p.acceptScope()
	node.InnerScope = body
	node.LastToken = body.LastToken
	return node
}

// negateCondition wraps cond in a logical-not UnaryOp, used to desugar
// "unless"/"until" into "if"/"while". Its span mirrors cond's own span
// per spec.md §4.4, since the synthesized "!" was never lexed.
func negateCondition(cond ast.Node) ast.Node {
	first, last := cond.NodeBase().Span()
	return &ast.UnaryOp{
		Base:       ast.Base{FirstToken: first, LastToken: last},
		Operation:  token.Token{Kind: token.LogicalNot, Start: first},
		Expression: cond,
	}
}
