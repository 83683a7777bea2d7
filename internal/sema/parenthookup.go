package sema

import (
	"github.com/ImOnALampshade/brandy/internal/ast"
	"github.com/ImOnALampshade/brandy/internal/visitor"
)

// parentSetter assigns Base.Parent pre-order. It can't rely on the
// usual single-pass Resume-then-auto-recurse behavior of ast.Walk,
// because that gives no hook to pop back to the grandparent once a
// node's children are done — so each visit constructs a fresh child
// setter carrying the current node as its fixed parent, drives
// WalkChildren with it directly, and reports Stop so the driver doesn't
// also recurse with the (wrong, un-popped) parent context.
type parentSetter struct {
	ast.BaseVisitor
	parent ast.Node
}

func hookupParents(mod *ast.Module) {
	root := &parentSetter{}
	root.Self = root
	root.VisitAbstract(mod)
}

func (s *parentSetter) VisitAbstract(n ast.Node) visitor.Result {
	n.NodeBase().Parent = s.parent

	child := &parentSetter{parent: n}
	child.Self = child
	n.WalkChildren(child)

	return visitor.Stop
}
