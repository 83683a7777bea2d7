package parser

import (
	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/token"
)

// acceptTypeRef parses a dotted type name: Components holds one token
// per identifier, joined by "."; resolution to an actual type symbol is
// the resolver pass's job, not the parser's.
func (p *parser) acceptTypeRef() *ast.TypeRef {
	first := p.expect(token.Identifier, "type name")
	ref := &ast.TypeRef{Base: ast.Base{FirstToken: first.Start, LastToken: first.Start}}
	ref.Components = append(ref.Components, first)
	for p.at(token.Dot) {
		p.next()
		part := p.expect(token.Identifier, "type name component")
		ref.Components = append(ref.Components, part)
		ref.LastToken = part.Start
	}
	return ref
}

// acceptVar parses "var name [: type] [= expr] ;" as a standalone
// statement/symbol. A parameter list entry shares the Var shape but is
// built by acceptParameter, which does not call this function.
func (p *parser) acceptVar(attrs []ast.Node) *ast.Var {
	kw := p.expect(token.KwVar, "'var'")
	name := p.expect(token.Identifier, "variable name")

	v := &ast.Var{
		Base:       ast.Base{FirstToken: kw.Start, LastToken: name.Start},
		Name:       name,
		Attributes: attrs,
	}

	if _, ok := p.accept(token.Colon); ok {
		v.Type = p.acceptTypeRef()
		_, last := v.Type.NodeBase().Span()
		v.LastToken = last
	}
	if _, ok := p.accept(token.Assign); ok {
		v.InitialValue = p.acceptExpression()
		_, last := v.InitialValue.NodeBase().Span()
		v.LastToken = last
	}

	p.expectSemicolon()
	return v
}

// acceptParameter parses one entry of a function/lambda parameter list:
// "name [: type] [= default]", with no leading "var" keyword and no
// trailing terminator — the caller (acceptParameterList) owns the
// comma/")" delimiting.
func (p *parser) acceptParameter() *ast.Parameter {
	name := p.expect(token.Identifier, "parameter name")
	param := &ast.Parameter{Var: ast.Var{
		Base: ast.Base{FirstToken: name.Start, LastToken: name.Start},
		Name: name,
	}}

	if _, ok := p.accept(token.Colon); ok {
		param.Type = p.acceptTypeRef()
		_, last := param.Type.NodeBase().Span()
		param.LastToken = last
	}
	if _, ok := p.accept(token.Assign); ok {
		param.InitialValue = p.acceptExpression()
		_, last := param.InitialValue.NodeBase().Span()
		param.LastToken = last
	}
	return param
}

func (p *parser) acceptParameterList() []ast.Node {
	p.expect(token.LParen, "'('")
	p.pushSkipNewlines(true)
	defer p.popSkipNewlines()

	var params []ast.Node
	if !p.at(token.RParen) {
		params = append(params, p.acceptParameter())
		for {
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
			params = append(params, p.acceptParameter())
		}
	}
	p.expect(token.RParen, "')'")
	return params
}

// acceptFunction parses "func name ( params ) [: returnType] <body>",
// where <body> is a braced scope or a "=> expr" single-expression form
// (see acceptArrowBody; the single-expression case is normalized into a
// Return by the returnrewrite semantic pass, not here).
func (p *parser) acceptFunction(attrs []ast.Node) *ast.Function {
	kw := p.expect(token.KwFunc, "'func'")
	name := p.expect(token.Identifier, "function name")

	fn := &ast.Function{
		Base:       ast.Base{FirstToken: kw.Start},
		Name:       name,
		Attributes: attrs,
		Parameters: p.acceptParameterList(),
	}

	if _, ok := p.accept(token.Colon); ok {
		fn.ReturnType = p.acceptTypeRef()
	}

	body := p.acceptArrowBody()
	fn.InnerScope = body
	_, last := body.NodeBase().Span()
	fn.LastToken = last
	return fn
}

// acceptClass parses "class Name [: Base (, Base)*] { members }". Each
// member is parsed through trySymbol, matching the original compiler's
// reuse of the same symbol grammar inside a class body.
func (p *parser) acceptClass(attrs []ast.Node) *ast.Class {
	kw := p.expect(token.KwClass, "'class'")
	name := p.expect(token.Identifier, "class name")

	cls := &ast.Class{
		Base:       ast.Base{FirstToken: kw.Start},
		Name:       name,
		Attributes: attrs,
	}

	if _, ok := p.accept(token.Colon); ok {
		cls.BaseClasses = append(cls.BaseClasses, p.acceptTypeRef())
		for {
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
			cls.BaseClasses = append(cls.BaseClasses, p.acceptTypeRef())
		}
	}

	open := p.expect(token.LBrace, "'{'")
	_ = open
	p.skipNewlineTokens()
	for !p.at(token.RBrace) && !p.atEnd() {
		member, ok := p.trySymbol()
		if !ok {
			p.fail("expected a class member declaration, found %q", p.peek().Kind)
		}
		cls.Members = append(cls.Members, member)
		p.skipNewlineTokens()
	}
	close := p.expect(token.RBrace, "'}'")
	cls.LastToken = close.Start
	return cls
}

// acceptProperty parses "property name [: type] { get ... set ... }",
// with get/set in either order, each as either a braced scope (stored
// as a synthetic Function, with parameters only for a setter that
// declares an explicit "(...)" list, so getter/setter share the
// Function shape the rest of the compiler already knows how to walk)
// or, for a getter only, a "=> expr" single-expression form. A setter
// written with "=>" is a parse error, per spec.md §4.4.
func (p *parser) acceptProperty(attrs []ast.Node) *ast.Property {
	kw := p.expect(token.KwProperty, "'property'")
	name := p.expect(token.Identifier, "property name")

	prop := &ast.Property{
		Base:       ast.Base{FirstToken: kw.Start},
		Name:       name,
		Attributes: attrs,
	}

	if _, ok := p.accept(token.Colon); ok {
		prop.Type = p.acceptTypeRef()
	}

	open := p.expect(token.LBrace, "'{'")
	_ = open
	p.skipNewlineTokens()
	for !p.at(token.RBrace) && !p.atEnd() {
		switch p.peek().Kind {
		case token.KwGet:
			getKw := p.next()
			isExpr := p.at(token.ArrowRightFat)
			body := p.acceptArrowBody()
			_, last := body.NodeBase().Span()
			prop.Getter = &ast.Function{
				Base:       ast.Base{FirstToken: getKw.Start, LastToken: last},
				InnerScope: body,
			}
			prop.GetterIsExpr = isExpr
		case token.KwSet:
			setKw := p.next()
			if p.at(token.ArrowRightFat) {
				p.fail("setter cannot use '=>' single-expression form")
			}
			params := p.tryImplicitSetterParam()
			body := p.acceptArrowBody()
			_, last := body.NodeBase().Span()
			prop.Setter = &ast.Function{
				Base:       ast.Base{FirstToken: setKw.Start, LastToken: last},
				Parameters: params,
				InnerScope: body,
			}
		default:
			p.fail("expected 'get' or 'set' in property body, found %q", p.peek().Kind)
		}
		p.skipNewlineTokens()
	}
	close := p.expect(token.RBrace, "'}'")
	prop.LastToken = close.Start
	return prop
}

// tryImplicitSetterParam parses an optional explicit "(value[: type])"
// parameter list on a setter. If absent, the symtabfiller semantic pass
// injects the implicit single "value" parameter (spec.md §4.5), so the
// parser leaves the slice empty rather than guessing a name here.
func (p *parser) tryImplicitSetterParam() []ast.Node {
	if !p.at(token.LParen) {
		return nil
	}
	return p.acceptParameterList()
}
