package ast

import "github.com/ImOnALampshade/brandy/internal/visitor"

func (n *Module) Accept(v Visitor) visitor.Result { return v.VisitModule(n) }
func (n *Module) WalkChildren(v Visitor) {
	WalkSlice(n.Symbols, v)
	WalkSlice(n.Statements, v)
}

func (n *Scope) Accept(v Visitor) visitor.Result { return v.VisitScope(n) }
func (n *Scope) WalkChildren(v Visitor) {
	WalkSlice(n.Statements, v)
}

func (n *TypeRef) Accept(v Visitor) visitor.Result { return v.VisitTypeRef(n) }
func (n *TypeRef) WalkChildren(v Visitor)          {}

func (n *Label) Accept(v Visitor) visitor.Result { return v.VisitLabel(n) }
func (n *Label) WalkChildren(v Visitor) {
	WalkSlice(n.Attributes, v)
}

func (n *Class) Accept(v Visitor) visitor.Result { return v.VisitClass(n) }
func (n *Class) WalkChildren(v Visitor) {
	WalkSlice(n.Attributes, v)
	WalkSlice(n.BaseClasses, v)
	WalkSlice(n.Members, v)
}

func (n *Function) Accept(v Visitor) visitor.Result { return v.VisitFunction(n) }
func (n *Function) WalkChildren(v Visitor) {
	WalkSlice(n.Attributes, v)
	WalkSlice(n.Parameters, v)
	Walk(&n.ReturnType, v)
	Walk(&n.InnerScope, v)
}

func (n *Var) Accept(v Visitor) visitor.Result { return v.VisitVar(n) }
func (n *Var) WalkChildren(v Visitor) {
	WalkSlice(n.Attributes, v)
	Walk(&n.Type, v)
	Walk(&n.InitialValue, v)
}

// Parameter overrides Var's promoted Accept/WalkChildren so that it
// dispatches through VisitParameter instead of VisitVar, while reusing
// Var's child order exactly (the original compiler's parameter_node
// adds no fields of its own).
func (n *Parameter) Accept(v Visitor) visitor.Result { return v.VisitParameter(n) }
func (n *Parameter) WalkChildren(v Visitor) {
	WalkSlice(n.Attributes, v)
	Walk(&n.Type, v)
	Walk(&n.InitialValue, v)
}

func (n *Property) Accept(v Visitor) visitor.Result { return v.VisitProperty(n) }
func (n *Property) WalkChildren(v Visitor) {
	WalkSlice(n.Attributes, v)
	Walk(&n.Type, v)
	Walk(&n.Getter, v)
	Walk(&n.Setter, v)
}

func (n *Import) Accept(v Visitor) visitor.Result { return v.VisitImport(n) }
func (n *Import) WalkChildren(v Visitor)          {}

func (n *Typedef) Accept(v Visitor) visitor.Result { return v.VisitTypedef(n) }
func (n *Typedef) WalkChildren(v Visitor) {
	Walk(&n.Target, v)
}

func (n *Return) Accept(v Visitor) visitor.Result { return v.VisitReturn(n) }
func (n *Return) WalkChildren(v Visitor) {
	Walk(&n.Value, v)
}

func (n *Break) Accept(v Visitor) visitor.Result { return v.VisitBreak(n) }
func (n *Break) WalkChildren(v Visitor)          {}

func (n *Goto) Accept(v Visitor) visitor.Result { return v.VisitGoto(n) }
func (n *Goto) WalkChildren(v Visitor)          {}

func (n *If) Accept(v Visitor) visitor.Result { return v.VisitIf(n) }
func (n *If) WalkChildren(v Visitor) {
	Walk(&n.Condition, v)
	Walk(&n.InnerScope, v)
	Walk(&n.ElseClause, v)
}

func (n *While) Accept(v Visitor) visitor.Result { return v.VisitWhile(n) }
func (n *While) WalkChildren(v Visitor) {
	Walk(&n.Condition, v)
	Walk(&n.InnerScope, v)
}

func (n *For) Accept(v Visitor) visitor.Result { return v.VisitFor(n) }
func (n *For) WalkChildren(v Visitor) {
	if n.IsRange {
		Walk(&n.RangeStart, v)
		Walk(&n.RangeEnd, v)
		Walk(&n.RangeStep, v)
	} else {
		Walk(&n.Expression, v)
	}
	Walk(&n.Guard, v)
	Walk(&n.InnerScope, v)
}

func (n *MetaBlock) Accept(v Visitor) visitor.Result { return v.VisitMetaBlock(n) }
func (n *MetaBlock) WalkChildren(v Visitor) {
	Walk(&n.InnerScope, v)
}

func (n *Attribute) Accept(v Visitor) visitor.Result { return v.VisitAttribute(n) }
func (n *Attribute) WalkChildren(v Visitor) {
	WalkSlice(n.Entries, v)
}

func (n *BinaryOp) Accept(v Visitor) visitor.Result { return v.VisitBinaryOp(n) }
func (n *BinaryOp) WalkChildren(v Visitor) {
	Walk(&n.Left, v)
	Walk(&n.Right, v)
}

func (n *UnaryOp) Accept(v Visitor) visitor.Result { return v.VisitUnaryOp(n) }
func (n *UnaryOp) WalkChildren(v Visitor) {
	Walk(&n.Expression, v)
}

func (n *AbsoluteValue) Accept(v Visitor) visitor.Result { return v.VisitAbsoluteValue(n) }
func (n *AbsoluteValue) WalkChildren(v Visitor) {
	Walk(&n.Expression, v)
}

func (n *Literal) Accept(v Visitor) visitor.Result { return v.VisitLiteral(n) }
func (n *Literal) WalkChildren(v Visitor)          {}

func (n *TupleLiteral) Accept(v Visitor) visitor.Result { return v.VisitTupleLiteral(n) }
func (n *TupleLiteral) WalkChildren(v Visitor) {
	WalkSlice(n.Values, v)
}

func (n *DictLiteral) Accept(v Visitor) visitor.Result { return v.VisitDictLiteral(n) }
func (n *DictLiteral) WalkChildren(v Visitor) {
	WalkSlice(n.Keys, v)
	WalkSlice(n.Values, v)
}

func (n *Lambda) Accept(v Visitor) visitor.Result { return v.VisitLambda(n) }
func (n *Lambda) WalkChildren(v Visitor) {
	WalkSlice(n.Parameters, v)
	Walk(&n.ReturnType, v)
	Walk(&n.InnerScope, v)
}

func (n *NameReference) Accept(v Visitor) visitor.Result { return v.VisitNameReference(n) }
func (n *NameReference) WalkChildren(v Visitor)          {}

func (n *MemberAccess) Accept(v Visitor) visitor.Result { return v.VisitMemberAccess(n) }
func (n *MemberAccess) WalkChildren(v Visitor) {
	Walk(&n.Expression, v)
}

func (n *Call) Accept(v Visitor) visitor.Result { return v.VisitCall(n) }
func (n *Call) WalkChildren(v Visitor) {
	Walk(&n.Expression, v)
	WalkSlice(n.Arguments, v)
}

func (n *Cast) Accept(v Visitor) visitor.Result { return v.VisitCast(n) }
func (n *Cast) WalkChildren(v Visitor) {
	Walk(&n.Expression, v)
	Walk(&n.CastTo, v)
}

func (n *Index) Accept(v Visitor) visitor.Result { return v.VisitIndex(n) }
func (n *Index) WalkChildren(v Visitor) {
	Walk(&n.Expression, v)
	Walk(&n.IndexExpr, v)
}
