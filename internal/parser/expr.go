package parser

import (
	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/token"
)

// acceptExpression is the expression grammar's single entry point,
// starting at the lowest-precedence tier (assignment).
func (p *parser) acceptExpression() ast.Node {
	return p.acceptAssignment()
}

// assignmentOps is right-associative and handled separately from every
// other tier (which are all left-associative and funnel through
// binary), exactly as original_source/src/parser.cpp's accept_assignment
// does.
var assignmentOps = []token.Kind{
	token.Assign, token.AssignCreate,
	token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
	token.PercentAssign, token.DoublePercentAssign, token.CaretAssign,
	token.ShiftLeftAssign, token.ShiftRightAssign,
	token.LogicalShiftLeftAssign, token.LogicalShiftRightAssign,
	token.BitAndAssign, token.BitOrAssign, token.BitXorAssign,
	token.LogicalAndAssign, token.LogicalOrAssign,
}

func (p *parser) acceptAssignment() ast.Node {
	left := p.acceptPipe()
	op, ok := p.acceptAnyOf(assignmentOps)
	if !ok {
		return left
	}
	right := p.acceptAssignment() // right-associative: recurse on self, not the next tier down
	return &ast.BinaryOp{
		Base:      span(left, right),
		Left:      left,
		Right:     right,
		Operation: op,
	}
}

// binary implements one left-associative precedence tier, shared by
// every tier below assignment: parse a left-hand operand via the next
// tier down, then greedily consume (operator, right-operand) pairs at
// this tier's own level, left-folding into nested BinaryOp nodes. This
// single generic routine stands in for original_source's
// accept_generic_expression + BINARY_EXPRESSION macro cascade, which
// instantiated one C++ function per tier from the same shape.
func (p *parser) binary(next func() ast.Node, ops []token.Kind) ast.Node {
	left := next()
	for {
		op, ok := p.acceptAnyOf(ops)
		if !ok {
			return left
		}
		right := next()
		left = &ast.BinaryOp{Base: span(left, right), Left: left, Right: right, Operation: op}
	}
}

func (p *parser) acceptAnyOf(kinds []token.Kind) (token.Token, bool) {
	for _, k := range kinds {
		if tok, ok := p.accept(k); ok {
			return tok, true
		}
	}
	return token.Token{}, false
}

var pipeOps = []token.Kind{
	token.PipeRight, token.PipeLeft,
	token.PipeDoubleRight, token.PipeDoubleLeft,
	token.PipeTripleRight, token.PipeTripleLeft,
}
var logicalOrOps = []token.Kind{token.LogicalOr, token.KwOr}
var logicalAndOps = []token.Kind{token.LogicalAnd, token.KwAnd}
var bitOrOps = []token.Kind{token.BitOr}
var bitXorOps = []token.Kind{token.BitXor}
var bitAndOps = []token.Kind{token.BitAnd}
var equalityOps = []token.Kind{
	token.Equal, token.NotEqual, token.ApproxEqual, token.ApproxNotEqual,
}
var comparisonOps = []token.Kind{
	token.Less, token.Greater, token.LessEqual, token.GreaterEqual,
	token.ApproxLess, token.ApproxGreater, token.ApproxLessEqual, token.ApproxGreaterEqual,
}
var shiftOps = []token.Kind{
	token.ShiftLeft, token.ShiftRight, token.LogicalShiftLeft, token.LogicalShiftRight,
}
var additiveOps = []token.Kind{token.Plus, token.Minus}
var multiplicativeOps = []token.Kind{token.Star, token.Slash, token.Percent, token.DoublePercent}
var exponentOps = []token.Kind{token.Caret}
var nullCoalesceOps = []token.Kind{token.DoubleQuestion}
var rangeOps = []token.Kind{token.DoubleDot, token.TripleDot}
var arrowOps = []token.Kind{
	token.ArrowRight, token.ArrowLeft, token.ArrowRightLong, token.ArrowLeftLong,
	token.ArrowBidirectional, token.ArrowRightFat, token.ArrowRightLongFat,
	token.ArrowLeftLongFat, token.ArrowBidirectionalFat,
}

func (p *parser) acceptPipe() ast.Node          { return p.binary(p.acceptLogicalOr, pipeOps) }
func (p *parser) acceptLogicalOr() ast.Node     { return p.binary(p.acceptLogicalAnd, logicalOrOps) }
func (p *parser) acceptLogicalAnd() ast.Node    { return p.binary(p.acceptBitOr, logicalAndOps) }
func (p *parser) acceptBitOr() ast.Node         { return p.binary(p.acceptBitXor, bitOrOps) }
func (p *parser) acceptBitXor() ast.Node        { return p.binary(p.acceptBitAnd, bitXorOps) }
func (p *parser) acceptBitAnd() ast.Node        { return p.binary(p.acceptEquality, bitAndOps) }
func (p *parser) acceptEquality() ast.Node      { return p.binary(p.acceptComparison, equalityOps) }
func (p *parser) acceptComparison() ast.Node    { return p.binary(p.acceptShift, comparisonOps) }
func (p *parser) acceptShift() ast.Node         { return p.binary(p.acceptAddition, shiftOps) }
func (p *parser) acceptAddition() ast.Node      { return p.binary(p.acceptMultiplication, additiveOps) }
func (p *parser) acceptMultiplication() ast.Node { return p.binary(p.acceptExponent, multiplicativeOps) }
func (p *parser) acceptExponent() ast.Node      { return p.binary(p.acceptNullCoalesce, exponentOps) }
func (p *parser) acceptNullCoalesce() ast.Node  { return p.binary(p.acceptRange, nullCoalesceOps) }
func (p *parser) acceptRange() ast.Node         { return p.binary(p.acceptArrow, rangeOps) }
func (p *parser) acceptArrow() ast.Node         { return p.binary(p.acceptUnary, arrowOps) }

// unaryPrefixOps is the closed set of prefix operators, transcribed from
// original_source/src/parser.cpp's unary_operators table.
var unaryPrefixOps = []token.Kind{
	token.Increment, token.Decrement,
	token.Plus, token.Minus, token.Caret,
	token.DoubleDot, token.TripleDot,
	token.LogicalNot, token.BitNot,
	token.Star, token.BitAnd,
	token.KwSizeof, token.KwAlignof,
	token.KwNot,
}

// acceptUnary recurses on itself so a run of prefix operators (e.g.
// "!!x", "--*p") nests correctly, bottoming out at post-expression.
func (p *parser) acceptUnary() ast.Node {
	op, ok := p.acceptAnyOf(unaryPrefixOps)
	if !ok {
		return p.acceptPostExpression()
	}
	operand := p.acceptUnary()
	_, last := operand.NodeBase().Span()
	return &ast.UnaryOp{
		Base:       ast.Base{FirstToken: op.Start, LastToken: last},
		Operation:  op,
		Expression: operand,
	}
}

// acceptPostExpression parses a primary expression followed by a greedy
// chain of ".ident", "(args)", "as type", and "[expr]" suffixes. "(" and
// "[" only extend the chain when they immediately follow the primary on
// the same logical line — a Newline between them ends the chain instead
// (spec.md §4.4's "no newline between primary and '('" rule) — so this
// loop deliberately inspects the raw next token rather than peek(),
// which would already have skipped an intervening newline.
func (p *parser) acceptPostExpression() ast.Node {
	expr := p.acceptPrimary()
	for {
		switch {
		case p.rawAt(token.Dot):
			p.next()
			member := p.expect(token.Identifier, "member name")
			expr = &ast.MemberAccess{
				Base:       ast.Base{FirstToken: expr.NodeBase().FirstToken, LastToken: member.Start},
				Expression: expr,
				Member:     member,
			}
		case p.rawAt(token.LParen):
			args := p.acceptCallArguments()
			expr = &ast.Call{
				Base:       ast.Base{FirstToken: expr.NodeBase().FirstToken, LastToken: p.pos - 1},
				Expression: expr,
				Arguments:  args,
			}
		case p.at(token.KwAs):
			p.next()
			castTo := p.acceptTypeRef()
			_, last := castTo.NodeBase().Span()
			expr = &ast.Cast{
				Base:       ast.Base{FirstToken: expr.NodeBase().FirstToken, LastToken: last},
				Expression: expr,
				CastTo:     castTo,
			}
		case p.rawAt(token.LBracket):
			p.next()
			p.pushSkipNewlines(true)
			idx := p.acceptExpression()
			p.popSkipNewlines()
			close := p.expect(token.RBracket, "']'")
			expr = &ast.Index{
				Base:       ast.Base{FirstToken: expr.NodeBase().FirstToken, LastToken: close.Start},
				Expression: expr,
				IndexExpr:  idx,
			}
		default:
			return expr
		}
	}
}

// rawAt reports whether the very next raw token (not skipping an
// intervening newline, unlike peek) has the given kind.
func (p *parser) rawAt(kind token.Kind) bool {
	if p.pos >= len(p.toks) {
		return false
	}
	return p.toks[p.pos].Kind == kind
}

func (p *parser) acceptCallArguments() []ast.Node {
	p.expect(token.LParen, "'('")
	p.pushSkipNewlines(true)
	defer p.popSkipNewlines()

	var args []ast.Node
	if !p.at(token.RParen) {
		args = append(args, p.acceptExpression())
		for {
			if _, ok := p.accept(token.Comma); !ok {
				break
			}
			args = append(args, p.acceptExpression())
		}
	}
	p.expect(token.RParen, "')'")
	return args
}

// acceptPrimary parses the atoms expressions bottom out on: literals,
// name references, parenthesized/tuple expressions, dict literals,
// lambdas, and the "|expr|" absolute-value form.
func (p *parser) acceptPrimary() ast.Node {
	switch p.peek().Kind {
	case token.IntLit, token.UIntLit, token.FloatLit, token.StringLit,
		token.CharLit, token.RegexLit, token.BoolLit, token.KwNull:
		tok := p.next()
		return &ast.Literal{Base: ast.Base{FirstToken: tok.Start, LastToken: tok.Start}, Value: tok}

	case token.Identifier:
		tok := p.next()
		return &ast.NameReference{Base: ast.Base{FirstToken: tok.Start, LastToken: tok.Start}, Name: tok}

	case token.LParen:
		return p.acceptParenOrTuple()

	case token.LBrace:
		return p.acceptDictLiteral()

	case token.BitOr:
		return p.acceptAbsoluteValue()

	case token.KwFunc:
		return p.acceptLambda()

	default:
		p.fail("expected an expression, found %q", p.peek().Kind)
		return nil
	}
}

// acceptParenOrTuple parses "(expr)" as a plain grouped expression, or
// "(expr, expr, ...)" (including a single trailing comma, "(expr,)") as
// a TupleLiteral.
func (p *parser) acceptParenOrTuple() ast.Node {
	open := p.expect(token.LParen, "'('")
	p.pushSkipNewlines(true)
	defer p.popSkipNewlines()

	first := p.acceptExpression()
	if !p.at(token.Comma) {
		p.expect(token.RParen, "')'")
		return first
	}

	tup := &ast.TupleLiteral{Base: ast.Base{FirstToken: open.Start}, Values: []ast.Node{first}}
	for p.at(token.Comma) {
		p.next()
		if p.at(token.RParen) {
			break
		}
		tup.Values = append(tup.Values, p.acceptExpression())
	}
	close := p.expect(token.RParen, "')'")
	tup.LastToken = close.Start
	return tup
}

func (p *parser) acceptDictLiteral() *ast.DictLiteral {
	open := p.expect(token.LBrace, "'{'")
	dict := &ast.DictLiteral{Base: ast.Base{FirstToken: open.Start}}

	p.pushSkipNewlines(true)
	defer p.popSkipNewlines()

	if !p.at(token.RBrace) {
		k, v := p.acceptDictEntry()
		dict.Keys = append(dict.Keys, k)
		dict.Values = append(dict.Values, v)
		for p.at(token.Comma) {
			p.next()
			if p.at(token.RBrace) {
				break
			}
			k, v := p.acceptDictEntry()
			dict.Keys = append(dict.Keys, k)
			dict.Values = append(dict.Values, v)
		}
	}
	close := p.expect(token.RBrace, "'}'")
	dict.LastToken = close.Start
	return dict
}

func (p *parser) acceptDictEntry() (ast.Node, ast.Node) {
	key := p.acceptExpression()
	p.expect(token.Colon, "':'")
	value := p.acceptExpression()
	return key, value
}

func (p *parser) acceptAbsoluteValue() *ast.AbsoluteValue {
	open := p.expect(token.BitOr, "'|'")
	inner := p.acceptExpression()
	close := p.expect(token.BitOr, "closing '|'")
	return &ast.AbsoluteValue{
		Base:       ast.Base{FirstToken: open.Start, LastToken: close.Start},
		Expression: inner,
	}
}

// acceptLambda parses "func ( params ) [: returnType] <body>" in
// expression position — syntactically identical to acceptFunction minus
// the name, per spec.md §3's lambda_node shape.
func (p *parser) acceptLambda() *ast.Lambda {
	kw := p.expect(token.KwFunc, "'func'")
	lam := &ast.Lambda{
		Base:       ast.Base{FirstToken: kw.Start},
		Parameters: p.acceptParameterList(),
	}
	if _, ok := p.accept(token.Colon); ok {
		lam.ReturnType = p.acceptTypeRef()
	}
	body := p.acceptArrowBody()
	lam.InnerScope = body
	_, last := body.NodeBase().Span()
	lam.LastToken = last
	return lam
}
