package ast

import "github.com/ImOnALampshade/brandy/internal/visitor"

// Visitor is implemented by anything that walks a Brandy syntax tree. It
// has one method per concrete node variant plus the family-level
// defaults (VisitStatement, VisitSymbol, VisitExpr, VisitMeta,
// VisitPostExpr) and the terminal default VisitAbstract. A type that
// embeds BaseVisitor and overrides only a family method — say VisitExpr
// — catches every expression variant, because every concrete expression
// Visit method falls through to VisitExpr unless also overridden.
type Visitor interface {
	VisitAbstract(Node) visitor.Result
	VisitModule(*Module) visitor.Result
	VisitScope(*Scope) visitor.Result
	VisitTypeRef(*TypeRef) visitor.Result

	VisitStatement(Node) visitor.Result
	VisitSymbol(Node) visitor.Result
	VisitExpr(Node) visitor.Result
	VisitMeta(Node) visitor.Result
	VisitPostExpr(Node) visitor.Result

	VisitLabel(*Label) visitor.Result
	VisitClass(*Class) visitor.Result
	VisitFunction(*Function) visitor.Result
	VisitVar(*Var) visitor.Result
	VisitParameter(*Parameter) visitor.Result
	VisitProperty(*Property) visitor.Result
	VisitImport(*Import) visitor.Result
	VisitTypedef(*Typedef) visitor.Result

	VisitReturn(*Return) visitor.Result
	VisitBreak(*Break) visitor.Result
	VisitGoto(*Goto) visitor.Result
	VisitIf(*If) visitor.Result
	VisitWhile(*While) visitor.Result
	VisitFor(*For) visitor.Result
	VisitMetaBlock(*MetaBlock) visitor.Result
	VisitAttribute(*Attribute) visitor.Result

	VisitBinaryOp(*BinaryOp) visitor.Result
	VisitUnaryOp(*UnaryOp) visitor.Result
	VisitAbsoluteValue(*AbsoluteValue) visitor.Result
	VisitLiteral(*Literal) visitor.Result
	VisitTupleLiteral(*TupleLiteral) visitor.Result
	VisitDictLiteral(*DictLiteral) visitor.Result
	VisitLambda(*Lambda) visitor.Result
	VisitNameReference(*NameReference) visitor.Result
	VisitMemberAccess(*MemberAccess) visitor.Result
	VisitCall(*Call) visitor.Result
	VisitCast(*Cast) visitor.Result
	VisitIndex(*Index) visitor.Result
}

// BaseVisitor implements every Visitor method as a forward to its parent
// variant's method, bottoming out at VisitAbstract's Resume default. A
// visitor type embeds this and sets Self to itself so the forwarding
// chain dispatches dynamically against any methods the embedder
// overrides — Go's embedding alone can't do that (a promoted method
// can't see an override), so the indirection through Self stands in for
// it.
type BaseVisitor struct {
	Self        Visitor
	replacement Node
}

// SetReplacement records the node a Replace result will swap in. Call it
// immediately before returning visitor.Replace from any Visit method.
func (b *BaseVisitor) SetReplacement(n Node) { b.replacement = n }

func (b *BaseVisitor) takeReplacement() Node {
	n := b.replacement
	b.replacement = nil
	return n
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) VisitAbstract(Node) visitor.Result { return visitor.Resume }
func (b *BaseVisitor) VisitModule(n *Module) visitor.Result  { return b.self().VisitAbstract(n) }
func (b *BaseVisitor) VisitScope(n *Scope) visitor.Result    { return b.self().VisitAbstract(n) }
func (b *BaseVisitor) VisitTypeRef(n *TypeRef) visitor.Result { return b.self().VisitAbstract(n) }

func (b *BaseVisitor) VisitStatement(n Node) visitor.Result { return b.self().VisitAbstract(n) }
func (b *BaseVisitor) VisitSymbol(n Node) visitor.Result    { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitExpr(n Node) visitor.Result      { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitMeta(n Node) visitor.Result      { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitPostExpr(n Node) visitor.Result  { return b.self().VisitExpr(n) }

func (b *BaseVisitor) VisitLabel(n *Label) visitor.Result       { return b.self().VisitSymbol(n) }
func (b *BaseVisitor) VisitClass(n *Class) visitor.Result       { return b.self().VisitSymbol(n) }
func (b *BaseVisitor) VisitFunction(n *Function) visitor.Result { return b.self().VisitSymbol(n) }
func (b *BaseVisitor) VisitVar(n *Var) visitor.Result           { return b.self().VisitSymbol(n) }
func (b *BaseVisitor) VisitParameter(n *Parameter) visitor.Result {
	return b.self().VisitVar(&n.Var)
}
func (b *BaseVisitor) VisitProperty(n *Property) visitor.Result { return b.self().VisitSymbol(n) }
func (b *BaseVisitor) VisitImport(n *Import) visitor.Result     { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitTypedef(n *Typedef) visitor.Result   { return b.self().VisitSymbol(n) }

func (b *BaseVisitor) VisitReturn(n *Return) visitor.Result       { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitBreak(n *Break) visitor.Result         { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitGoto(n *Goto) visitor.Result           { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitIf(n *If) visitor.Result               { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitWhile(n *While) visitor.Result         { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitFor(n *For) visitor.Result             { return b.self().VisitStatement(n) }
func (b *BaseVisitor) VisitMetaBlock(n *MetaBlock) visitor.Result { return b.self().VisitMeta(n) }
func (b *BaseVisitor) VisitAttribute(n *Attribute) visitor.Result { return b.self().VisitMeta(n) }

func (b *BaseVisitor) VisitBinaryOp(n *BinaryOp) visitor.Result { return b.self().VisitExpr(n) }
func (b *BaseVisitor) VisitUnaryOp(n *UnaryOp) visitor.Result   { return b.self().VisitExpr(n) }
func (b *BaseVisitor) VisitAbsoluteValue(n *AbsoluteValue) visitor.Result {
	return b.self().VisitExpr(n)
}
func (b *BaseVisitor) VisitLiteral(n *Literal) visitor.Result { return b.self().VisitExpr(n) }
func (b *BaseVisitor) VisitTupleLiteral(n *TupleLiteral) visitor.Result {
	return b.self().VisitExpr(n)
}
func (b *BaseVisitor) VisitDictLiteral(n *DictLiteral) visitor.Result { return b.self().VisitExpr(n) }
func (b *BaseVisitor) VisitLambda(n *Lambda) visitor.Result           { return b.self().VisitExpr(n) }
func (b *BaseVisitor) VisitNameReference(n *NameReference) visitor.Result {
	return b.self().VisitExpr(n)
}
func (b *BaseVisitor) VisitMemberAccess(n *MemberAccess) visitor.Result {
	return b.self().VisitPostExpr(n)
}
func (b *BaseVisitor) VisitCall(n *Call) visitor.Result { return b.self().VisitPostExpr(n) }
func (b *BaseVisitor) VisitCast(n *Cast) visitor.Result { return b.self().VisitPostExpr(n) }
func (b *BaseVisitor) VisitIndex(n *Index) visitor.Result { return b.self().VisitPostExpr(n) }
