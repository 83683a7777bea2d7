package sema

import (
	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/visitor"
)

// returnRewriter normalizes a single-expression-statement callable body
// (the "=> expr" form the parser already wraps in a one-statement
// Scope, see parser.acceptArrowBody) into an explicit Return statement,
// so every later pass only ever has to deal with one callable-body
// shape. It is idempotent: running it again finds the lone statement is
// already an *ast.Return and leaves it untouched, matching spec.md §8's
// property 5.
type returnRewriter struct {
	ast.BaseVisitor
}

func rewriteReturns(mod *ast.Module) {
	v := &returnRewriter{}
	v.Self = v
	var slot ast.Node = mod
	ast.Walk(&slot, v)
}

func normalizeBody(scope ast.Node) {
	sc, ok := scope.(*ast.Scope)
	if !ok || len(sc.Statements) != 1 {
		return
	}
	only := sc.Statements[0]
	if _, alreadyReturn := only.(*ast.Return); alreadyReturn {
		return
	}
	switch only.(type) {
	case *ast.If, *ast.While, *ast.For, *ast.Goto, *ast.Break,
		*ast.Label, *ast.Class, *ast.Function, *ast.Var, *ast.Property,
		*ast.Import, *ast.Typedef, *ast.MetaBlock:
		return // not an expression-shaped body; leave as a plain statement
	}
	first, last := only.NodeBase().Span()
	sc.Statements[0] = &ast.Return{Base: ast.Base{FirstToken: first, LastToken: last}, Value: only}
}

func (v *returnRewriter) VisitFunction(n *ast.Function) visitor.Result {
	normalizeBody(n.InnerScope)
	return visitor.Resume
}

func (v *returnRewriter) VisitLambda(n *ast.Lambda) visitor.Result {
	normalizeBody(n.InnerScope)
	return visitor.Resume
}

func (v *returnRewriter) VisitProperty(n *ast.Property) visitor.Result {
	if n.Getter != nil {
		if getter, ok := n.Getter.(*ast.Function); ok {
			normalizeBody(getter.InnerScope)
		}
	}
	return visitor.Resume
}
